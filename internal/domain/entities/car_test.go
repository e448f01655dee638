package entities_test

import (
	"testing"

	"github.com/encapsulab/encapsulab/internal/domain/entities"
	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		make      string
		model     string
		year      int
		wantField string
		wantRule  domainerrors.Rule
	}{
		{name: "first model year", make: "Benz", model: "Patent-Motorwagen", year: 1886},
		{name: "trims make and model", make: " Ford ", model: " Model T ", year: 1908},
		{name: "year before first car", make: "Benz", model: "Prototype", year: 1885, wantField: "year", wantRule: domainerrors.RuleMinYear},
		{name: "empty make", make: "", model: "Civic", year: 2020, wantField: "make", wantRule: domainerrors.RuleRequired},
		{name: "whitespace make", make: "   ", model: "Civic", year: 2020, wantField: "make", wantRule: domainerrors.RuleRequired},
		{name: "whitespace model", make: "Honda", model: "\t", year: 2020, wantField: "model", wantRule: domainerrors.RuleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car, err := entities.NewCar(tt.make, tt.model, tt.year)

			if tt.wantField != "" {
				require.Error(t, err)
				assert.Nil(t, car)
				var validationErr *domainerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
				assert.Equal(t, tt.wantRule, validationErr.Rule)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, car.Make())
			assert.NotEmpty(t, car.Model())
			assert.Equal(t, tt.year, car.Year())
		})
	}
}

func TestNewCar_Trimmed(t *testing.T) {
	t.Parallel()

	car, err := entities.NewCar(" Ford ", " Model T ", 1908)
	require.NoError(t, err)
	assert.Equal(t, "Ford", car.Make())
	assert.Equal(t, "Model T", car.Model())
}
