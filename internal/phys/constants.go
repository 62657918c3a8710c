package phys

// Physical constants used across the simulation. Values match CODATA to the
// precision the engine carries.
const (
	// VacuumPermittivity is ε₀ in F/m.
	VacuumPermittivity = 8.8542e-12

	// ElectronMass and friends are in kg.
	ElectronMass = 9.109e-31
	ProtonMass   = 1.673e-27
	NeutronMass  = 1.675e-27

	// ElementaryCharge is in C.
	ElementaryCharge = 1.602e-19
)

// DefaultTimeScale divides dt inside the integrator so that particle motion at
// atomic masses and screen-scale distances stays visible.
const DefaultTimeScale = 10e4
