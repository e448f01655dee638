package entities

import (
	"github.com/encapsulab/encapsulab/internal/domain/values"
)

// Car is immutable after construction; it has no mutators.
type Car struct {
	make  values.Name
	model values.Name
	year  values.ModelYear
}

// NewCar validates every argument before building the car.
func NewCar(manufacturer, model string, year int) (*Car, error) {
	mk, err := values.NewName("make", manufacturer)
	if err != nil {
		return nil, err
	}
	md, err := values.NewName("model", model)
	if err != nil {
		return nil, err
	}
	y, err := values.NewModelYear(year)
	if err != nil {
		return nil, err
	}
	return &Car{make: mk, model: md, year: y}, nil
}

// Make returns the manufacturer.
func (c *Car) Make() string {
	return c.make.String()
}

// Model returns the model name.
func (c *Car) Model() string {
	return c.model.String()
}

// Year returns the model year.
func (c *Car) Year() int {
	return c.year.Int()
}
