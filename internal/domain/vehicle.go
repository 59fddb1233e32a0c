package domain

import (
	"fmt"
	"strings"
)

// VehicleKind names a vehicle variant a factory can produce.
type VehicleKind string

const (
	KindCar        VehicleKind = "car"
	KindMotorcycle VehicleKind = "motorcycle"
)

// SpecTag is the regional specification a vehicle was built to (e.g. US, EU).
type SpecTag string

const (
	SpecUS SpecTag = "US"
	SpecEU SpecTag = "EU"
)

// Vehicle is anything a factory produces. Start returns the line that
// reports the engine starting; it has no other effect.
type Vehicle interface {
	Make() string
	Model() string
	Spec() SpecTag
	Kind() VehicleKind
	Start() string
}

const (
	carStartPhrase        = "Engine started"
	motorcycleStartPhrase = "Motor running"
)

type vehicleBase struct {
	make  string
	model string
	spec  SpecTag
}

func (v vehicleBase) Make() string  { return v.make }
func (v vehicleBase) Model() string { return v.model }
func (v vehicleBase) Spec() SpecTag { return v.spec }

func (v vehicleBase) report(phrase string) string {
	return fmt.Sprintf("%s %s (%s Spec): %s", v.make, v.model, v.spec, phrase)
}

// Car is a four-wheeled vehicle.
type Car struct {
	vehicleBase
}

// NewCar builds a car. Factories are the intended callers.
func NewCar(mk, model string, spec SpecTag) Car {
	return Car{vehicleBase{make: mk, model: model, spec: spec}}
}

func (Car) Kind() VehicleKind { return KindCar }

func (c Car) Start() string { return c.report(carStartPhrase) }

// Motorcycle is a two-wheeled vehicle.
type Motorcycle struct {
	vehicleBase
}

// NewMotorcycle builds a motorcycle. Factories are the intended callers.
func NewMotorcycle(mk, model string, spec SpecTag) Motorcycle {
	return Motorcycle{vehicleBase{make: mk, model: model, spec: spec}}
}

func (Motorcycle) Kind() VehicleKind { return KindMotorcycle }

func (m Motorcycle) Start() string { return m.report(motorcycleStartPhrase) }

var (
	_ Vehicle = Car{}
	_ Vehicle = Motorcycle{}
)

// ParseVehicleKind normalizes user input (trim + lower-case) into a kind.
// It does not validate: CreateAndStart owns the unknown-kind decision.
func ParseVehicleKind(s string) VehicleKind {
	return VehicleKind(strings.ToLower(strings.TrimSpace(s)))
}
