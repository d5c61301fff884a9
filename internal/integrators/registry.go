package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/dragsim/internal/dynamo"
)

const (
	NameSemiImplicitEuler = "euler"
	NameRK4               = "rk4"
)

var registry = map[string]func() dynamo.Integrator{
	NameSemiImplicitEuler: func() dynamo.Integrator { return NewSemiImplicitEuler() },
	NameRK4:               func() dynamo.Integrator { return NewRK4() },
}

func ByName(name string) (dynamo.Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
