package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	var gotOK bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	call := func(header string) *httptest.ResponseRecorder {
		gotUserID, gotOK = 0, false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/calendars", nil)
		if header != "" {
			req.Header.Set("X-User-ID", header)
		}
		rec := httptest.NewRecorder()
		Auth(next).ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid user id passes through", func(t *testing.T) {
		rec := call("42")
		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, gotOK)
		assert.Equal(t, int64(42), gotUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := call("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, gotOK)
	})

	t.Run("non-numeric header", func(t *testing.T) {
		rec := call("abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-positive user id", func(t *testing.T) {
		rec := call("0")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		rec = call("-5")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
