package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestPipelineError_Error(t *testing.T) {
	e := NewInvalidInput("nil source raster", nil)
	want := "invalid_input: nil source raster"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}

	cause := fmt.Errorf("decode failed")
	e = NewComputation("clustering diverged", cause)
	want = "computation: clustering diverged: decode failed"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestPipelineError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	e := NewComputation("stage failed", cause)
	if !stderrors.Is(e, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestKindsAndCodes(t *testing.T) {
	tests := []struct {
		err  *PipelineError
		kind ErrorKind
		code int
	}{
		{NewInvalidInput("x", nil), KindInvalidInput, -32602},
		{NewUnavailableAlgorithm("x", nil), KindUnavailableAlgorithm, -32001},
		{NewComputation("x", nil), KindComputation, -32000},
	}
	for _, tt := range tests {
		if tt.err.Kind != tt.kind {
			t.Errorf("kind = %v, want %v", tt.err.Kind, tt.kind)
		}
		if tt.err.Code != tt.code {
			t.Errorf("code = %d, want %d", tt.err.Code, tt.code)
		}
		if !IsKind(tt.err, tt.kind) {
			t.Errorf("IsKind(%v, %v) = false", tt.err, tt.kind)
		}
	}
}

func TestIsKind_ForeignError(t *testing.T) {
	if IsKind(fmt.Errorf("plain"), KindInvalidInput) {
		t.Error("IsKind should be false for untyped errors")
	}
}

func TestKindAndCodeSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading config: %w", NewUnavailableAlgorithm("unknown thinning", nil))

	if !IsKind(wrapped, KindUnavailableAlgorithm) {
		t.Error("IsKind should unwrap fmt.Errorf chains")
	}
	if got := RPCCode(wrapped); got != -32001 {
		t.Errorf("RPCCode for wrapped error = %d, want -32001", got)
	}
}

func TestRPCCode(t *testing.T) {
	if got := RPCCode(NewInvalidInput("x", nil)); got != -32602 {
		t.Errorf("RPCCode = %d, want -32602", got)
	}
	if got := RPCCode(fmt.Errorf("plain")); got != -32000 {
		t.Errorf("RPCCode for untyped error = %d, want -32000", got)
	}
}
