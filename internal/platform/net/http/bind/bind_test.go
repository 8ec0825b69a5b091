package bind

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "issuehound/internal/platform/errors"
)

type queryPayload struct {
	Q     string `json:"q" validate:"max=256"`
	State string `json:"state" validate:"omitempty,oneof=open closed"`
	Page  int    `json:"page" validate:"min=0"`
}

func TestParseJSONSuccess(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"q":"race condition","state":"open","page":2}`))
	got, err := ParseJSON[queryPayload](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Q != "race condition" || got.State != "open" || got.Page != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", http.NoBody)
	if _, err := ParseJSON[queryPayload](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSONEmptyBodyOnDelete(t *testing.T) {
	req := httptest.NewRequest("DELETE", "/", http.NoBody)
	got, err := ParseJSON[queryPayload](req)
	if err != nil {
		t.Fatalf("DELETE without body must bind the zero value, got %v", err)
	}
	if got != (queryPayload{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseJSONAllowEmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", http.NoBody)
	got, err := ParseJSON[queryPayload](req, JSONOptions{AllowEmptyBody: true})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != (queryPayload{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"q":`))
	if _, err := ParseJSON[queryPayload](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"q":"x","surprise":1}`))
	if _, err := ParseJSON[queryPayload](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected rejection of unknown field, got %v", err)
	}
}

func TestParseJSONUnknownFieldTolerated(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"q":"x","surprise":1}`))
	got, err := ParseJSON[queryPayload](req, JSONOptions{DisallowUnknown: false})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got.Q != "x" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	orig := jsonMore
	jsonMore = func(_ *json.Decoder) bool { return true }
	defer func() { jsonMore = orig }()

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"q":"x"}`))
	if _, err := ParseJSON[queryPayload](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error for trailing data, got %v", err)
	}
}

func TestParseJSONMaxBytes(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"q":"a fairly long search query"}`))
	if _, err := ParseJSON[queryPayload](req, JSONOptions{MaxBytes: 5}); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error from size cap, got %v", err)
	}
}

func TestParseJSONValidation(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"q":"x","state":"merged"}`))
	_, err := ParseJSON[queryPayload](req)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error code, got %v (%v)", perr.CodeOf(err), err)
	}
	if !strings.Contains(err.Error(), "state must be one of") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestParseJSONNonStructTarget(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`5`))
	if _, err := ParseJSON[int](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON-coded error for non struct target, got %v", err)
	}
}

func TestFieldNamesComeFromJSONTags(t *testing.T) {
	Init()
	type s struct {
		PerPage int `json:"per_page,omitempty" validate:"min=1"`
	}
	field, msg := ValidationFieldAndMessage(Get().Validator.Struct(s{}))
	if field != "per_page" {
		t.Fatalf("expected wire name per_page, got %s", field)
	}
	if !strings.Contains(msg, "at least") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestFieldNameFallsBackWithoutTag(t *testing.T) {
	Init()
	type s struct {
		Plain int `validate:"min=1"`
	}
	if field, _ := ValidationFieldAndMessage(Get().Validator.Struct(s{})); field != "Plain" {
		t.Fatalf("expected struct field name, got %s", field)
	}
}

func TestValidationFieldAndMessagePassthrough(t *testing.T) {
	field, msg := ValidationFieldAndMessage(errors.New("socket closed"))
	if field != "" || msg != "socket closed" {
		t.Fatalf("expected passthrough, got field=%q msg=%q", field, msg)
	}
}
