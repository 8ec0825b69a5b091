package storekit

import (
	"testing"

	kit "issuehound/internal/platform/testkit"
	"issuehound/internal/platform/store/kv"
)

type fakeRepo struct{ s kv.Store }

func TestBindFuncAndMustBind(t *testing.T) {
	t.Parallel()

	b := BindFunc[*fakeRepo](func(s kv.Store) *fakeRepo { return &fakeRepo{s: s} })

	mem := kv.NewMemory()
	r := MustBind[*fakeRepo](b, mem)
	if r == nil || r.s != mem {
		t.Fatalf("MustBind did not bind the store")
	}
}

func TestRequireStorePanicsOnNil(t *testing.T) {
	t.Parallel()

	kit.MustPanic(t, func() { _ = RequireStore(nil) })
}
