package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croftbar/authd/internal/domain"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteError_KindToStatus(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.ErrInvalidJSON(errors.New("bad")), http.StatusBadRequest, "invalid_json"},
		{"auth", domain.ErrTokenExpired(), http.StatusUnauthorized, "token_expired"},
		{"forbidden_credentials", domain.ErrInvalidCredentials(), http.StatusForbidden, "invalid_credentials"},
		{"forbidden_taken", domain.ErrCredentialsTaken(), http.StatusForbidden, "credentials_taken"},
		{"not_found", domain.ErrUserNotFound(), http.StatusNotFound, "user_not_found"},
		{"internal", domain.ErrStoreFailed(errors.New("down")), http.StatusInternalServerError, "store_failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", nil)

			WriteError(rec, req, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			body := decodeErrorBody(t, rec)
			assert.Equal(t, tc.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestWriteError_NonDomainError_Is500WithoutDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rec, req, errors.New("pq: password authentication failed for user postgres"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "internal_error", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "postgres")
}

func TestWriteError_CredentialErrorsShareShape(t *testing.T) {
	// Unknown email and bad password must be indistinguishable on the wire.
	recA := httptest.NewRecorder()
	recB := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)

	WriteError(recA, req, domain.ErrInvalidCredentials())
	WriteError(recB, req, domain.ErrInvalidCredentials())

	assert.Equal(t, recA.Code, recB.Code)
	assert.Equal(t, recA.Body.String(), recB.Body.String())
	assert.Equal(t, http.StatusForbidden, recA.Code)
	assert.Contains(t, recA.Body.String(), "Invalid credentials")
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com"}`))
		var p payload
		require.NoError(t, DecodeJSON(req, &p))
		assert.Equal(t, "a@x.com", p.Email)
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com","admin":true}`))
		var p payload
		err := DecodeJSON(req, &p)
		assert.True(t, domain.Is(err, "invalid_json"), "got %v", err)
	})

	t.Run("trailing value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com"}{"email":"b@x.com"}`))
		var p payload
		err := DecodeJSON(req, &p)
		assert.True(t, domain.Is(err, "invalid_json"), "got %v", err)
	})

	t.Run("garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
		var p payload
		err := DecodeJSON(req, &p)
		assert.True(t, domain.Is(err, "invalid_json"), "got %v", err)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(nil))
		var p payload
		err := DecodeJSON(req, &p)
		assert.True(t, domain.Is(err, "invalid_json"), "got %v", err)
	})
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, map[string]string{"access_token": "tok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"access_token":"tok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	OK(rec, map[string]string{"status": "ok"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
