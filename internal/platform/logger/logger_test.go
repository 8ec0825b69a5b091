package logger

import (
	"bytes"
	"context"
	"testing"

	kit "issuehound/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"  Info  ", zerolog.InfoLevel},
		{"", zerolog.DebugLevel},
		{"verbose", zerolog.DebugLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRootAndChildren(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:       "info",
		Format:      "console",
		Service:     "issuehound",
		Component:   "root",
		Writer:      &buf,
		WithCaller:  true,
		SampleEvery: 2,
		StaticFields: map[string]string{
			"build": "dev",
		},
	})

	// re-sample to N=1 so every line emits regardless of Init's sampler
	rv := Get().Sample(&zerolog.BasicSampler{N: 1})
	rp := &rv
	rp.Info().Str("query", "memory leak").Msg("search started")

	nv := Named("gate").Sample(&zerolog.BasicSampler{N: 1})
	np := &nv
	np.Info().Msg("window hydrated")

	ctx := WithRequest(context.Background(), "req-42")
	cv := C(ctx).Sample(&zerolog.BasicSampler{N: 1})
	cp := &cv
	cp.Info().Msg("bookmark toggled")

	out := buf.String()

	kit.MustContain(t, out, "search started")
	kit.MustContain(t, out, "window hydrated")
	kit.MustContain(t, out, "bookmark toggled")
	kit.MustContain(t, out, "component=")
	kit.MustContain(t, out, "gate")
	kit.MustContain(t, out, "request_id=")
	kit.MustContain(t, out, "req-42")
	kit.MustContain(t, out, "build=")
	kit.MustContain(t, out, "service=")
	kit.MustContain(t, out, "issuehound")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("IH_LOG_LEVEL", "warn")
	t.Setenv("IH_LOG_FORMAT", "json")
	t.Setenv("IH_LOG_SERVICE", "issuehound-api")
	t.Setenv("IH_LOG_CALLER", "true")
	t.Setenv("IH_LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Service != "issuehound-api" {
		t.Fatalf("FromEnv = %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("caller/sample mismatch: %+v", opt)
	}
}

func TestChildWithoutRequestID(t *testing.T) {
	v := C(context.Background()).Sample(&zerolog.BasicSampler{N: 1})
	p := &v
	p.Debug().Msg("no request scope")
}
