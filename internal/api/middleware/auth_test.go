package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func callAuth(t *testing.T, headers map[string]string) (*httptest.ResponseRecorder, *domain.Actor) {
	t.Helper()

	var captured *domain.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor, ok := ActorFromContext(r.Context()); ok {
			captured = &actor
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/hair-tanaka/config", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	Auth(nopLogger{})(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestAuth_ValidHeaders(t *testing.T) {
	rec, actor := callAuth(t, map[string]string{
		"X-User-ID":   "42",
		"X-User-Role": "owner",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, actor)
	assert.Equal(t, int64(42), actor.UserID)
	assert.Equal(t, domain.RoleOwner, actor.Role)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "no headers", headers: nil},
		{name: "missing role", headers: map[string]string{"X-User-ID": "42"}},
		{name: "missing id", headers: map[string]string{"X-User-Role": "owner"}},
		{name: "non-numeric id", headers: map[string]string{"X-User-ID": "abc", "X-User-Role": "owner"}},
		{name: "zero id", headers: map[string]string{"X-User-ID": "0", "X-User-Role": "owner"}},
		{name: "negative id", headers: map[string]string{"X-User-ID": "-5", "X-User-Role": "owner"}},
		{name: "unknown role", headers: map[string]string{"X-User-ID": "42", "X-User-Role": "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, actor := callAuth(t, tt.headers)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, actor)
		})
	}
}

func TestActorFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := ActorFromContext(req.Context())

	assert.False(t, ok)
}
