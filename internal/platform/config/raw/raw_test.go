package raw

import (
	"testing"
)

func TestGet(t *testing.T) {
	t.Setenv("IH_LOG_SERVICE", " issuehound ")
	t.Setenv("IH_LOG_FORMAT", "json")

	c := New().Prefix("IH_LOG_")

	if got := c.Get("SERVICE", "fallback"); got != "issuehound" {
		t.Fatalf("Get(SERVICE) = %q, want trimmed env value", got)
	}
	if got := c.Get("FORMAT", "console"); got != "json" {
		t.Fatalf("Get(FORMAT) = %q", got)
	}
	if got := c.Get("MISSING", "console"); got != "console" {
		t.Fatalf("Get(MISSING) = %q, want default", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("IH_LOG_")

	cases := []struct {
		name string
		env  string
		def  bool
		want bool
	}{
		{"true", "true", false, true},
		{"one", "1", false, true},
		{"yes upper", "YES", false, true},
		{"false", "false", true, false},
		{"zero", "0", true, false},
		{"no", "no", true, false},
		{"whitespace trimmed", "   true   ", false, true},
	}

	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key := "CALLER" + string(rune('A'+i))
			t.Setenv("IH_LOG_"+key, tc.env)
			if got := c.GetBool(key, tc.def); got != tc.want {
				t.Fatalf("GetBool(%q=%q) = %v, want %v", key, tc.env, got, tc.want)
			}
		})
	}

	if !c.GetBool("ABSENT", true) || c.GetBool("ABSENT", false) {
		t.Fatal("missing key must return the default")
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("IH_LOG_")

	t.Setenv("IH_LOG_SAMPLE_EVERY", "  5  ")
	if got := c.GetInt("SAMPLE_EVERY", 0); got != 5 {
		t.Fatalf("GetInt = %d, want 5", got)
	}

	t.Setenv("IH_LOG_BAD", "five")
	if got := c.GetInt("BAD", 2); got != 2 {
		t.Fatalf("unparseable must fall back, got %d", got)
	}

	// sample rates and sizes are never negative, the parser rejects them
	t.Setenv("IH_LOG_NEG", "-1")
	if got := c.GetInt("NEG", 3); got != 3 {
		t.Fatalf("negative must fall back, got %d", got)
	}

	if got := c.GetInt("ABSENT", 7); got != 7 {
		t.Fatalf("missing key = %d, want default", got)
	}
}

func TestPrefixNesting(t *testing.T) {
	root := New()
	log := root.Prefix("IH_LOG_")
	nested := root.Prefix("IH_").Prefix("LOG_")

	t.Setenv("IH_LOG_LEVEL", "warn")

	if got := log.Get("LEVEL", ""); got != "warn" {
		t.Fatalf("flat prefix = %q", got)
	}
	if got := nested.Get("LEVEL", ""); got != "warn" {
		t.Fatalf("nested prefix = %q", got)
	}
}
