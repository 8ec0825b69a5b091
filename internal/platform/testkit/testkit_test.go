package testkit

import "testing"

func TestMustPanicPasses(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() { panic("store is nil") })
}

func TestMustContainPasses(t *testing.T) {
	t.Parallel()

	MustContain(t, `{"level":"info","msg":"server started"}`, "server started")
}
