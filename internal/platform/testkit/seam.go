package testkit

import "testing"

// Swap replaces *target for the duration of the test and restores it on cleanup
// Typical use is pinning a service's clock seam to a fixed time
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}
