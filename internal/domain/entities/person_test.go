package entities_test

import (
	"testing"

	"github.com/encapsulab/encapsulab/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestPerson_Accessors(t *testing.T) {
	t.Parallel()

	p := entities.NewPerson("Alice")
	assert.Equal(t, "Alice", p.Name())

	p.SetName("Bob")
	assert.Equal(t, "Bob", p.Name())

	p.SetName("")
	assert.Empty(t, p.Name())
}
