package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathangtg/jangular-auth/pkg/constant"
)

// TestRegisterRoutes verifies that every route is mounted. A 404 means the
// route is missing; any other status is the handler doing its job.
func TestRegisterRoutes(t *testing.T) {
	f := newHandlerFixture(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/register"},
		{http.MethodPost, "/api/v1/login"},
		{http.MethodPost, "/api/v1/refresh"},
		{http.MethodDelete, "/api/v1/session"},
		{http.MethodPost, "/api/v1/me/password"},
		{http.MethodGet, "/api/v1/me/history"},
		{http.MethodGet, "/api/v1/me/sessions"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)

			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	f := newHandlerFixture(t)

	t.Run("fails without auth header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/history", nil)
		resp, _ := f.app.Test(req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("fails with malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/history", nil)
		req.Header.Set("Authorization", "BearerNoSpace")
		resp, _ := f.app.Test(req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("fails with garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/history", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		resp, _ := f.app.Test(req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects a refresh token on a protected route", func(t *testing.T) {
		refreshToken, err := f.tokens.IssueRefresh("alice", f.clock.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/history", nil)
		req.Header.Set("Authorization", "Bearer "+refreshToken)
		resp, _ := f.app.Test(req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("admin role passes the permission gate", func(t *testing.T) {
		token, err := f.tokens.IssueAccess(9, "root", []string{constant.RoleAdmin}, f.clock.Now())
		require.NoError(t, err)

		f.repo.EXPECT().LoginEventsByAccount(gomock.Any(), int64(9)).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/history", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("token expiry follows the injected clock", func(t *testing.T) {
		token, err := f.tokens.IssueAccess(9, "root", []string{constant.RoleAdmin}, f.clock.Now())
		require.NoError(t, err)

		f.repo.EXPECT().LoginEventsByAccount(gomock.Any(), int64(9)).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/history", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// Same token, clock advanced past the 15-minute access TTL.
		f.clock.now = f.clock.now.Add(16 * time.Minute)

		req = httptest.NewRequest(http.MethodGet, "/api/v1/me/history", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err = f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
