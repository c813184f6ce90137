// Package scenario bundles small demonstration simulations for the coachgo
// CLI. Each scenario owns its own integration loop (plain Euler steps, the
// kind of code students write themselves) and records into a Recorder; the
// recorder library stays free of any numerics.
package scenario

import (
	"fmt"
	"sort"

	"github.com/coachgo/coachgo/constants"
	"github.com/coachgo/coachgo/recorder"
)

// Params are the shared knobs of the bundled scenarios. Zero values fall
// back to per-scenario defaults.
type Params struct {
	Dt       float64
	Duration float64
	Height   float64
	Velocity float64
}

// Scenario is one runnable demonstration.
type Scenario struct {
	Name        string
	Description string
	Run         func(rec *recorder.Recorder, p Params) error
}

var registry = map[string]Scenario{
	"freefall": {
		Name:        "freefall",
		Description: "free fall with upward launch, tracked until the ground",
		Run:         runFreefall,
	},
	"spring": {
		Name:        "spring",
		Description: "damped spring-mass oscillator, energy sampled sparsely",
		Run:         runSpring,
	},
	"cooling": {
		Name:        "cooling",
		Description: "Newton's law of cooling towards room temperature",
		Run:         runCooling,
	},
}

// Get looks up a scenario by name.
func Get(name string) (Scenario, error) {
	s, ok := registry[name]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario: unknown scenario %q", name)
	}
	return s, nil
}

// Names lists the bundled scenarios in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p Params) dt() float64 {
	if p.Dt > 0 {
		return p.Dt
	}
	return 0.01
}

func (p Params) duration() float64 {
	if p.Duration > 0 {
		return p.Duration
	}
	return 10.0
}

func runFreefall(rec *recorder.Recorder, p Params) error {
	rec.SetMetadata("t", "s", "time")
	rec.SetMetadata("y", "m", "height")
	rec.SetMetadata("v", "m/s", "velocity")

	dt := p.dt()
	y := p.Height
	if y <= 0 {
		y = 1.8
	}
	v := p.Velocity
	if v == 0 {
		v = 5
	}
	t := 0.0
	maxSteps := int(p.duration() / dt)

	for i := 0; y > 0 && i < maxSteps; i++ {
		a := -constants.GEarth
		v += a * dt
		y += v * dt
		t += dt
		if err := rec.Track(
			recorder.V("t", t),
			recorder.V("y", y),
			recorder.V("v", v),
		); err != nil {
			return err
		}
	}
	return nil
}

func runSpring(rec *recorder.Recorder, p Params) error {
	rec.SetMetadata("t", "s", "time")
	rec.SetMetadata("x", "m", "displacement")
	rec.SetMetadata("v", "m/s", "velocity")
	rec.SetMetadata("E", "J", "energy")

	const (
		mass      = 1.0
		stiffness = 20.0
		damping   = 0.4
	)

	dt := p.dt()
	steps := int(p.duration() / dt)
	x := p.Height
	if x == 0 {
		x = 1.0
	}
	v := p.Velocity
	t := 0.0

	for i := 0; i < steps; i++ {
		a := (-stiffness*x - damping*v) / mass
		v += a * dt
		x += v * dt
		t += dt

		samples := []recorder.Sample{
			recorder.V("t", t),
			recorder.V("x", x),
			recorder.V("v", v),
		}
		// Energy only every tenth step; the recorder pads the gaps.
		if i%10 == 0 {
			e := 0.5*mass*v*v + 0.5*stiffness*x*x
			samples = append(samples, recorder.V("E", e))
		}
		if err := rec.Track(samples...); err != nil {
			return err
		}
	}
	return nil
}

func runCooling(rec *recorder.Recorder, p Params) error {
	rec.SetMetadata("t", "s", "time")
	rec.SetMetadata("T", "°C", "temperature")

	const (
		ambient = 20.0
		rate    = 0.25
	)

	dt := p.dt()
	steps := int(p.duration() / dt)
	temp := p.Height
	if temp == 0 {
		temp = 90.0
	}
	t := 0.0

	for i := 0; i < steps; i++ {
		temp += -rate * (temp - ambient) * dt
		t += dt
		if err := rec.Track(
			recorder.V("t", t),
			recorder.V("T", temp),
		); err != nil {
			return err
		}
	}
	return nil
}
