package regionfactory

import (
	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// US builds vehicles to the US spec.
type US struct{}

func (US) CreateCar(mk, model string) domain.Vehicle {
	return domain.NewCar(mk, model, domain.SpecUS)
}

func (US) CreateMotorcycle(mk, model string) domain.Vehicle {
	return domain.NewMotorcycle(mk, model, domain.SpecUS)
}

// EU builds vehicles to the EU spec.
type EU struct{}

func (EU) CreateCar(mk, model string) domain.Vehicle {
	return domain.NewCar(mk, model, domain.SpecEU)
}

func (EU) CreateMotorcycle(mk, model string) domain.Vehicle {
	return domain.NewMotorcycle(mk, model, domain.SpecEU)
}

var (
	_ ports.VehicleFactory = US{}
	_ ports.VehicleFactory = EU{}
)
