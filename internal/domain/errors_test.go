package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_FormatAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("pq: boom")
	e := ErrStoreFailed(cause)

	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if e.Kind != KindInternal {
		t.Fatalf("expected internal kind, got %s", e.Kind)
	}
	if want := "internal (store_failed): storage failure: pq: boom"; e.Error() != want {
		t.Fatalf("unexpected error string: %q", e.Error())
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("handler: %w", ErrCredentialsTaken())

	if !Is(err, "credentials_taken") {
		t.Fatalf("expected code match through wrapping")
	}
	if Is(err, "invalid_credentials") {
		t.Fatalf("unexpected code match")
	}
	if Is(errors.New("plain"), "credentials_taken") {
		t.Fatalf("plain error must not match")
	}
}

func TestCredentialErrors_ShareKindAndDifferOnlyByCode(t *testing.T) {
	t.Parallel()

	login := ErrInvalidCredentials()
	signup := ErrCredentialsTaken()

	if login.Kind != KindForbidden || signup.Kind != KindForbidden {
		t.Fatalf("credential errors must map to 403")
	}
	if login.Message != "Invalid credentials" {
		t.Fatalf("login message is part of the API contract, got %q", login.Message)
	}
	if signup.Message != "Credentials already taken" {
		t.Fatalf("signup message is part of the API contract, got %q", signup.Message)
	}
}
