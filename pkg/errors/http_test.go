package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestHTTPError(t *testing.T) {
	err := NewHTTPError(409, "conflict")
	if err.Error() != "409: conflict" {
		t.Errorf("unexpected message %q", err.Error())
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var target *HTTPError
	if !stdErrors.As(wrapped, &target) || target.StatusCode != 409 {
		t.Errorf("expected wrapped HTTPError to be recoverable, got %v", target)
	}
}
