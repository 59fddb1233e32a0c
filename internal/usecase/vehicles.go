package usecase

import (
	"fmt"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

// CreateAndStart asks factory for a vehicle of kind and reports its start line.
// Kinds other than car and motorcycle fail with KindUnknownKind and report nothing.
func CreateAndStart(factory ports.VehicleFactory, kind domain.VehicleKind, mk, model string, sink ports.Reporter) error {
	var v domain.Vehicle
	switch kind {
	case domain.KindCar:
		v = factory.CreateCar(mk, model)
	case domain.KindMotorcycle:
		v = factory.CreateMotorcycle(mk, model)
	default:
		return &domain.OpError{
			Op:   "usecase.create_and_start",
			Kind: domain.KindUnknownKind,
			Err:  fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind),
		}
	}

	sink.Report(v.Start())
	return nil
}

type demoOrder struct {
	kind  domain.VehicleKind
	make  string
	model string
}

type demoBatch struct {
	heading string
	factory ports.VehicleFactory
	orders  []demoOrder
}

// RunVehicleDemo starts a fixed line-up from the us and eu factories:
//
//	US Vehicles:
//	Ford Mustang (US Spec): Engine started
//	Harley-Davidson Sportster (US Spec): Motor running
//
//	EU Vehicles:
//	...
func RunVehicleDemo(us, eu ports.VehicleFactory, sink ports.Reporter) error {
	batches := []demoBatch{
		{
			heading: "US Vehicles:",
			factory: us,
			orders: []demoOrder{
				{domain.KindCar, "Ford", "Mustang"},
				{domain.KindMotorcycle, "Harley-Davidson", "Sportster"},
			},
		},
		{
			heading: "EU Vehicles:",
			factory: eu,
			orders: []demoOrder{
				{domain.KindCar, "Audi", "A4 AllRoad"},
				{domain.KindMotorcycle, "Ventus", "VT-200"},
			},
		},
	}

	for i, b := range batches {
		if i > 0 {
			sink.Report("")
		}
		sink.Report(b.heading)
		for _, o := range b.orders {
			if err := CreateAndStart(b.factory, o.kind, o.make, o.model, sink); err != nil {
				return err
			}
		}
	}
	return nil
}
