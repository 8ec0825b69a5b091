package config

import (
	"testing"
	"time"
)

func TestPrefixComposition(t *testing.T) {
	root := New()
	gh := root.Prefix("IH_GITHUB_")
	if got := gh.key("TIMEOUT"); got != "IH_GITHUB_TIMEOUT" {
		t.Fatalf("key() = %q", got)
	}

	nested := root.Prefix("IH_").Prefix("STORE_")
	if got := nested.key("PATH"); got != "IH_STORE_PATH" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "./data"); got != "./data" {
		t.Fatalf("default = %q", got)
	}
	t.Setenv("S_PATH", "  /var/lib/issuehound  ")
	if got := c.MayString("PATH", "x"); got != "/var/lib/issuehound" {
		t.Fatalf("value = %q, want trimmed env", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 6); got != 6 {
		t.Fatalf("default = %d", got)
	}
	t.Setenv("I_PER_PAGE", " 12 ")
	if got := c.MayInt("PER_PAGE", 6); got != 12 {
		t.Fatalf("value = %d", got)
	}
	t.Setenv("I_BAD", "dozen")
	if got := c.MayInt("BAD", 6); got != 6 {
		t.Fatalf("unparseable must fall back, got %d", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if !c.MayBool("MISSING", true) {
		t.Fatal("default true expected")
	}
	t.Setenv("B_MEMORY", "true")
	if !c.MayBool("MEMORY", false) {
		t.Fatal("env true expected")
	}
	t.Setenv("B_BAD", "maybe")
	if c.MayBool("BAD", false) {
		t.Fatal("unparseable must fall back")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("D_")
	if got := c.MayDuration("MISSING", 60*time.Second); got != 60*time.Second {
		t.Fatalf("default = %v", got)
	}
	t.Setenv("D_REFRESH", "90s")
	if got := c.MayDuration("REFRESH", time.Second); got != 90*time.Second {
		t.Fatalf("value = %v", got)
	}
	t.Setenv("D_BAD", "soon")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("unparseable must fall back, got %v", got)
	}
}
