package ports

import "github.com/aalvaropc/solidlab/internal/domain"

// VehicleFactory produces vehicles built to one regional spec.
type VehicleFactory interface {
	CreateCar(make, model string) domain.Vehicle
	CreateMotorcycle(make, model string) domain.Vehicle
}
