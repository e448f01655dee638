package entities_test

import (
	"testing"

	"github.com/encapsulab/encapsulab/internal/domain/entities"
	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonBuilder_Build(t *testing.T) {
	t.Parallel()

	p, err := entities.NewPersonBuilder().
		Name("  Ada  ").
		Age(36).
		Hobbies("math", "poetry").
		AddHobby("engines").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name())
	assert.Equal(t, 36, p.Age())
	assert.Equal(t, []string{"math", "poetry", "engines"}, p.Hobbies())
	assert.True(t, p.HasHobby("poetry"))
	assert.False(t, p.HasHobby("chess"))
}

func TestPersonBuilder_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		builder  func() *entities.PersonBuilder
		wantRule domainerrors.Rule
		wantMsg  string
	}{
		{
			name:     "missing name",
			builder:  func() *entities.PersonBuilder { return entities.NewPersonBuilder().Age(30) },
			wantRule: domainerrors.RuleRequired,
			wantMsg:  "name was never set",
		},
		{
			name:     "empty name",
			builder:  func() *entities.PersonBuilder { return entities.NewPersonBuilder().Name("   ").Age(30) },
			wantRule: domainerrors.RuleRequired,
			wantMsg:  "invalid person",
		},
		{
			name:     "negative age",
			builder:  func() *entities.PersonBuilder { return entities.NewPersonBuilder().Name("Ada").Age(-1) },
			wantRule: domainerrors.RuleNonNegative,
			wantMsg:  "invalid person",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.builder().Build()

			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
			assert.Contains(t, err.Error(), tt.wantMsg)

			rule, ok := domainerrors.RuleOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}

func TestPersonBuilder_ReportsEveryInvalidField(t *testing.T) {
	t.Parallel()

	_, err := entities.NewPersonBuilder().Name("").Age(-3).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be empty")
	assert.Contains(t, err.Error(), "age cannot be negative")
}

func TestPersonBuilder_SingleUse(t *testing.T) {
	t.Parallel()

	b := entities.NewPersonBuilder().Name("Ada").Age(36)
	_, err := b.Build()
	require.NoError(t, err)

	p, err := b.Build()
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
	rule, _ := domainerrors.RuleOf(err)
	assert.Equal(t, domainerrors.RuleFinalized, rule)
}

func TestPersonBuilder_FailedBuildCanBeRetried(t *testing.T) {
	t.Parallel()

	b := entities.NewPersonBuilder().Age(20)
	_, err := b.Build()
	require.Error(t, err)

	p, err := b.Name("Ada").Build()
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name())
}

func TestImmutablePerson_DefensiveCopies(t *testing.T) {
	t.Parallel()

	supplied := []string{"chess", "go"}
	b := entities.NewPersonBuilder().Name("Ada").Age(36).Hobbies(supplied...)
	p, err := b.Build()
	require.NoError(t, err)

	supplied[0] = "mutated"
	assert.Equal(t, []string{"chess", "go"}, p.Hobbies())

	first := p.Hobbies()
	first[1] = "mutated"
	second := p.Hobbies()
	assert.Equal(t, []string{"chess", "go"}, second)
	assert.NotSame(t, &first[0], &second[0])

	b.AddHobby("later")
	assert.Equal(t, []string{"chess", "go"}, p.Hobbies())
}

func TestImmutablePerson_With(t *testing.T) {
	t.Parallel()

	p, err := entities.NewPersonBuilder().Name("Ada").Age(36).Hobbies("chess").Build()
	require.NoError(t, err)

	older, err := p.WithAge(37)
	require.NoError(t, err)
	assert.Equal(t, 37, older.Age())
	assert.Equal(t, 36, p.Age())

	_, err = p.WithAge(-1)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	hobbyist := p.WithHobby("go")
	assert.Equal(t, []string{"chess", "go"}, hobbyist.Hobbies())
	assert.Equal(t, []string{"chess"}, p.Hobbies())
}
