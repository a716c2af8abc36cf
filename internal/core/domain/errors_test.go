package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_RetryableAndConnectivity(t *testing.T) {
	tests := []struct {
		name         string
		err          *Error
		retryable    bool
		connectivity bool
	}{
		{"network", NetworkError("dial failed", nil), true, true},
		{"timeout", TimeoutError("deadline", nil), true, true},
		{"offline", OfflineError("no link"), false, true},
		{"server", ServerError(502, "bad gateway"), true, false},
		{"unknown", UnknownError("surprise", nil), true, false},
		{"not found", NotFoundError("missing"), false, false},
		{"parse", ParseError("bad json", nil), false, false},
		{"database", DatabaseError("insert failed", nil), false, false},
		{"invalid input", InvalidInputError("empty barcode"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Retryable(); got != tt.retryable {
				t.Errorf("Retryable() = %v, want %v", got, tt.retryable)
			}
			if got := tt.err.Connectivity(); got != tt.connectivity {
				t.Errorf("Connectivity() = %v, want %v", got, tt.connectivity)
			}
		})
	}
}

func TestError_IsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("resolve: %w", NetworkError("dial failed", nil))

	if !errors.Is(err, NetworkError("", nil)) {
		t.Error("errors.Is must match on kind across wrapping")
	}
	if errors.Is(err, TimeoutError("", nil)) {
		t.Error("errors.Is must not match a different kind")
	}
}

func TestError_UnwrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NetworkError("dial failed", cause)

	if !errors.Is(err, cause) {
		t.Error("the original cause must remain reachable")
	}
}

func TestError_Messages(t *testing.T) {
	err := ServerError(503, "upstream returned 503")
	if err.UserMessage == "" {
		t.Error("user message must be set")
	}
	if err.StatusCode != 503 {
		t.Errorf("status code = %d, want 503", err.StatusCode)
	}

	in := InvalidInputError("Barcode cannot be empty")
	if in.UserMessage != "Barcode cannot be empty" {
		t.Errorf("invalid input must surface the caller message, got %q", in.UserMessage)
	}
}

func TestAsError(t *testing.T) {
	if AsError(nil) != nil {
		t.Error("nil must stay nil")
	}

	taxonomy := NotFoundError("missing")
	if got := AsError(fmt.Errorf("wrap: %w", taxonomy)); got.Kind != KindNotFound {
		t.Errorf("wrapped taxonomy error must pass through, got %s", got.Kind)
	}

	foreign := errors.New("boom")
	got := AsError(foreign)
	if got.Kind != KindUnknown {
		t.Errorf("foreign error must become unknown, got %s", got.Kind)
	}
	if !errors.Is(got, foreign) {
		t.Error("foreign cause must remain reachable")
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", OfflineError("no link"))
	if !IsKind(err, KindOffline) {
		t.Error("expected kind match through wrapping")
	}
	if IsKind(err, KindNetwork) {
		t.Error("unexpected kind match")
	}
	if IsKind(errors.New("plain"), KindOffline) {
		t.Error("plain errors carry no kind")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNetwork, "network"},
		{KindNotFound, "not_found"},
		{KindParse, "parse"},
		{KindDatabase, "database"},
		{KindOffline, "offline"},
		{KindTimeout, "timeout"},
		{KindServer, "server"},
		{KindInvalidInput, "invalid_input"},
		{KindUnknown, "unknown"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
