package module

import "testing"

type greeter interface{ Greet() string }

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hello" }

func TestRegisterAndLookup(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("greetings", englishGreeter{})

	g, ok := PortsAs[greeter]("greetings")
	if !ok {
		t.Fatal("expected registered ports to resolve")
	}
	if g.Greet() != "hello" {
		t.Fatalf("Greet() = %q", g.Greet())
	}
}

func TestLookupMisses(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := PortsAs[greeter]("absent"); ok {
		t.Fatal("unregistered name must not resolve")
	}

	Register("greetings", struct{}{})
	if _, ok := PortsAs[greeter]("greetings"); ok {
		t.Fatal("wrong port type must not assert")
	}
}
