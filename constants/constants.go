// Package constants provides named physical and mathematical constants in
// SI units for use in student simulation scripts. Pure data, no behavior.
package constants

import "math"

// Mathematical constants.
const (
	Pi = math.Pi
	E  = math.E
)

// Physical constants, SI units.
const (
	// GEarth is the standard gravitational acceleration at the Earth's
	// surface (m/s^2).
	GEarth = 9.81

	// GUniversal is the Newtonian constant of gravitation (N m^2 / kg^2).
	GUniversal = 6.67430e-11

	// SpeedOfLight is the speed of light in vacuum (m/s).
	SpeedOfLight = 299792458

	// Planck is the Planck constant (J s).
	Planck = 6.62607015e-34

	// Boltzmann is the Boltzmann constant (J/K).
	Boltzmann = 1.380649e-23

	// Avogadro is the Avogadro number (mol^-1).
	Avogadro = 6.02214076e23

	// GasConstant is the molar gas constant (J / mol K).
	GasConstant = 8.314462618
)

// Entry is one row of the constants table.
type Entry struct {
	Name  string
	Value float64
	Unit  string
}

// Table lists every constant with its unit, in a stable order, for
// display purposes.
func Table() []Entry {
	return []Entry{
		{"pi", Pi, ""},
		{"e", E, ""},
		{"g_earth", GEarth, "m/s^2"},
		{"G", GUniversal, "N m^2 / kg^2"},
		{"c", SpeedOfLight, "m/s"},
		{"h", Planck, "J s"},
		{"k_B", Boltzmann, "J/K"},
		{"N_A", Avogadro, "1/mol"},
		{"R", GasConstant, "J / (mol K)"},
	}
}
