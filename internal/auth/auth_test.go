package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/workflow"
)

func TestVerifier_SignAndParse(t *testing.T) {
	v := auth.NewVerifier("test-secret", "infratrack")

	want := auth.Actor{
		UserID: uuid.New(),
		Role:   workflow.RoleBudgetOfficer,
		Email:  "budget@lgu.gov.ph",
	}

	token, err := v.Sign(want, time.Hour)
	require.NoError(t, err)

	got, err := v.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVerifier_Parse_Invalid(t *testing.T) {
	v := auth.NewVerifier("test-secret", "infratrack")
	actor := auth.Actor{UserID: uuid.New(), Role: workflow.RolePlanner}

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := auth.NewVerifier("other-secret", "infratrack").Sign(actor, time.Hour)
		require.NoError(t, err)

		_, err = v.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := v.Sign(actor, -time.Minute)
		require.NoError(t, err)

		_, err = v.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		token, err := v.Sign(auth.Actor{UserID: uuid.New(), Role: "superuser"}, time.Hour)
		require.NoError(t, err)

		_, err = v.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := v.Parse("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	v := auth.NewVerifier("test-secret", "infratrack")
	actor := auth.Actor{UserID: uuid.New(), Role: workflow.RoleBACSecretariat, Email: "bac@lgu.gov.ph"}

	var seen *auth.Actor

	handler := v.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a, ok := auth.FromContext(r.Context()); ok {
			seen = &a
		}
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("ValidToken", func(t *testing.T) {
		token, err := v.Sign(actor, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, actor, *seen)
	})

	t.Run("MissingToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
