// seehuhn.de/go/plot - a 2D plotting library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package device

import (
	"fmt"
	"slices"
	"sync"
)

// Factory opens a new device.
type Factory func(cfg Config) (Device, error)

// registry holds the installed drivers.
var (
	registryMu sync.RWMutex
	drivers    = make(map[string]Factory)
)

// Register installs a driver under the given name.
// This is typically called from init() functions in backend packages.
// If a driver with the same name is already registered, it is replaced.
// Register panics if factory is nil.
func Register(name string, factory Factory) {
	if factory == nil {
		panic("device: Register factory is nil for driver " + name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = factory
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Available returns the names of all registered drivers, in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a driver with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := drivers[name]
	return ok
}

// Open opens a device using the named driver.
// The configuration is checked before the driver is called.
func Open(name string, cfg Config) (Device, error) {
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("device %q: %w", name, err)
	}

	registryMu.RLock()
	factory, ok := drivers[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDriver, name)
	}
	d, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("device %q: %w", name, err)
	}
	return d, nil
}
