// Package registry provides a global registry for controller drivers.
// Drivers register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/device"
)

// Options carries everything a driver may need to build its controller.
type Options struct {
	Config config.Config
	Logger *log.Logger
	Seed   int64     // RNG seed for drivers with randomness, 0 = time based
	Out    io.Writer // Where text-mode drivers print frames
}

// DriverInfo contains metadata about a registered driver.
type DriverInfo struct {
	Name        string
	Description string
}

// Factory creates a new controller.
type Factory func(opts Options) (device.Controller, error)

type entry struct {
	description string
	factory     Factory
}

var (
	drivers = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a driver factory to the registry.
// Typically called from a driver's init() function.
// Panics if a driver with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := drivers[name]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", name))
	}

	drivers[name] = entry{description: description, factory: f}
}

// List returns information about all registered drivers, sorted by name.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(drivers))
	for name, e := range drivers {
		result = append(result, DriverInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a controller by driver name.
// Returns an error if the driver is not registered.
func Create(name string, opts Options) (device.Controller, error) {
	mu.RLock()
	e, ok := drivers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown driver %q", name)
	}

	ctrl, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: driver %q: %w", name, err)
	}
	return ctrl, nil
}

// Exists checks if a driver with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := drivers[name]
	return ok
}
