package module

import "sync"

// Process-global registry of module port sets, filled during bootstrap
// It lets one module reach another without the two importing each other
var (
	regMu    sync.RWMutex
	registry = map[string]any{}
)

// Register stores the port set published by the named module
func Register(name string, ports any) {
	regMu.Lock()
	registry[name] = ports
	regMu.Unlock()
}

// PortsAs looks up the named module's ports and asserts them to T
func PortsAs[T any](name string) (T, bool) {
	regMu.RLock()
	v, ok := registry[name]
	regMu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset empties the registry between tests
func Reset() {
	regMu.Lock()
	registry = map[string]any{}
	regMu.Unlock()
}
