package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError(ErrMsgAPIKeyNotSet)

	if !IsConfigurationError(err) {
		t.Error("Expected IsConfigurationError to be true")
	}
	if IsUpstreamError(err) {
		t.Error("Expected IsUpstreamError to be false")
	}
	if !strings.Contains(err.Error(), ErrMsgAPIKeyNotSet) {
		t.Errorf("Expected message in error string, got '%s'", err.Error())
	}
	if !strings.Contains(err.Error(), ErrCodeConfiguration) {
		t.Errorf("Expected code in error string, got '%s'", err.Error())
	}
}

func TestUpstreamError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUpstreamError(ErrMsgUpstreamGenerate, cause)

	if !IsUpstreamError(err) {
		t.Error("Expected IsUpstreamError to be true")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to match the wrapped cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Expected cause in error string, got '%s'", err.Error())
	}
}

func TestIsPredicates_WrappedError(t *testing.T) {
	inner := NewConfigurationError(ErrMsgAPIKeyNotSet)
	wrapped := fmt.Errorf("handler: %w", inner)

	if !IsConfigurationError(wrapped) {
		t.Error("Predicate should see through fmt.Errorf wrapping")
	}
}

func TestIsPredicates_PlainError(t *testing.T) {
	plain := errors.New("something else")
	if IsConfigurationError(plain) || IsUpstreamError(plain) {
		t.Error("Plain errors should not match either predicate")
	}
}
