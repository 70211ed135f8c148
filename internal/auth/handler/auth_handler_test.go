package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nathangtg/jangular-auth/internal/auth/domain"
	"github.com/nathangtg/jangular-auth/internal/auth/dto"
	"github.com/nathangtg/jangular-auth/internal/auth/handler"
	"github.com/nathangtg/jangular-auth/internal/auth/service"
	"github.com/nathangtg/jangular-auth/internal/mocks"
	"github.com/nathangtg/jangular-auth/pkg/constant"
)

// testClock is a mutable injected clock; tests advance it between requests.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

type handlerFixture struct {
	app    *fiber.App
	repo   *mocks.MockRepository
	tokens *service.TokenService
	hasher *service.PasswordService
	clock  *testClock
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, fn func(domain.Repository) error) error {
			return fn(mockRepo)
		}).
		AnyTimes()

	tokens := service.NewTokenService("handler-test-secret", 15*time.Minute, 7*24*time.Hour)
	hasher := service.NewPasswordService(bcrypt.MinCost)
	clock := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	authService := service.NewAuthService(
		mockRepo,
		tokens,
		hasher,
		service.NewLockoutGuard(5, 15*time.Minute),
		service.NewPasswordHistoryGuard(hasher, constant.PasswordHistoryDepth),
		clock,
		nil,
	)

	app := fiber.New()
	handler.RegisterRoutes(app, handler.NewAuthHandler(authService, service.NewLoginHistoryService(mockRepo), tokens, clock, nil))

	return &handlerFixture{app: app, repo: mockRepo, tokens: tokens, hasher: hasher, clock: clock}
}

func (f *handlerFixture) account(t *testing.T, password string) *domain.Account {
	t.Helper()

	hash, err := f.hasher.Hash(password)
	require.NoError(t, err)

	return &domain.Account{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Active:       true,
	}
}

func (f *handlerFixture) accessToken(t *testing.T, acc *domain.Account, roles []string) string {
	t.Helper()

	token, err := f.tokens.IssueAccess(acc.ID, acc.Username, roles, f.clock.Now())
	require.NoError(t, err)

	return token
}

func TestLoginEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	t.Run("success returns token pair", func(t *testing.T) {
		acc := f.account(t, "correct-horse")

		f.repo.EXPECT().GetAccountByUsername(gomock.Any(), "alice").Return(acc, nil)
		f.repo.EXPECT().UpdateAccount(gomock.Any(), acc).Return(nil)
		f.repo.EXPECT().GetRolesByAccountID(gomock.Any(), acc.ID).
			Return([]domain.Role{{ID: 1, Name: constant.RoleUser}}, nil)
		f.repo.EXPECT().LatestOpenLoginEvent(gomock.Any(), acc.ID).Return(nil, nil)
		f.repo.EXPECT().AppendLoginEvent(gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(dto.LoginInput{Username: "alice", Password: "correct-horse"})
		req := httptest.NewRequest("POST", "/api/v1/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "go-test")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var tokenPair dto.TokenResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&tokenPair))
		assert.NotEmpty(t, tokenPair.AccessToken)
		assert.NotEmpty(t, tokenPair.RefreshToken)
	})

	t.Run("wrong password returns 401 with generic body", func(t *testing.T) {
		acc := f.account(t, "correct-horse")

		f.repo.EXPECT().GetAccountByUsername(gomock.Any(), "alice").Return(acc, nil)
		f.repo.EXPECT().UpdateAccount(gomock.Any(), acc).Return(nil)
		f.repo.EXPECT().AppendLoginEvent(gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(dto.LoginInput{Username: "alice", Password: "wrong"})
		req := httptest.NewRequest("POST", "/api/v1/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		payload, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(payload), "invalid username or password")
	})

	t.Run("unknown username returns same 401 body", func(t *testing.T) {
		f.repo.EXPECT().GetAccountByUsername(gomock.Any(), "nobody").Return(nil, nil)

		body, _ := json.Marshal(dto.LoginInput{Username: "nobody", Password: "whatever"})
		req := httptest.NewRequest("POST", "/api/v1/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		payload, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(payload), "invalid username or password")
	})

	t.Run("locked account returns 423 with retry hint", func(t *testing.T) {
		acc := f.account(t, "correct-horse")
		lockedAt := f.clock.Now().Add(-time.Minute)
		acc.Locked = true
		acc.LockedAt = &lockedAt
		acc.FailedAttempts = 5

		f.repo.EXPECT().GetAccountByUsername(gomock.Any(), "alice").Return(acc, nil)

		body, _ := json.Marshal(dto.LoginInput{Username: "alice", Password: "correct-horse"})
		req := httptest.NewRequest("POST", "/api/v1/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusLocked, resp.StatusCode)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "account locked", payload["error"])
		assert.Greater(t, payload["retry_after_seconds"].(float64), float64(0))
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/login", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("repository error returns 500", func(t *testing.T) {
		f.repo.EXPECT().GetAccountByUsername(gomock.Any(), "alice").
			Return(nil, errors.New("connection refused"))

		body, _ := json.Marshal(dto.LoginInput{Username: "alice", Password: "correct-horse"})
		req := httptest.NewRequest("POST", "/api/v1/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestRegisterEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	input := dto.RegisterInput{
		Username:        "alice",
		FirstName:       "Alice",
		LastName:        "Smith",
		Email:           "alice@example.com",
		Password:        "correct-horse",
		PasswordConfirm: "correct-horse",
	}

	t.Run("success returns created account", func(t *testing.T) {
		f.repo.EXPECT().GetAccountByUsername(gomock.Any(), "alice").Return(nil, nil)
		f.repo.EXPECT().GetAccountByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		f.repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, acc *domain.Account) error {
				acc.ID = 7

				return nil
			})
		f.repo.EXPECT().GetRoleByName(gomock.Any(), constant.RoleUser).
			Return(&domain.Role{ID: 2, Name: constant.RoleUser}, nil)
		f.repo.EXPECT().AddRoleToAccount(gomock.Any(), int64(7), int64(2)).Return(nil)
		f.repo.EXPECT().AppendPasswordHistory(gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/api/v1/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var out dto.AccountOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, int64(7), out.ID)
		assert.Equal(t, "alice", out.Username)
	})

	t.Run("username taken returns 400", func(t *testing.T) {
		f.repo.EXPECT().GetAccountByUsername(gomock.Any(), "alice").
			Return(&domain.Account{ID: 1, Username: "alice"}, nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/api/v1/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("password mismatch returns 400", func(t *testing.T) {
		bad := input
		bad.PasswordConfirm = "different"

		body, _ := json.Marshal(bad)
		req := httptest.NewRequest("POST", "/api/v1/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	t.Run("valid refresh token yields access token", func(t *testing.T) {
		acc := f.account(t, "correct-horse")
		refreshToken, err := f.tokens.IssueRefresh("alice", f.clock.Now())
		require.NoError(t, err)

		f.repo.EXPECT().GetAccountByUsername(gomock.Any(), "alice").Return(acc, nil)
		f.repo.EXPECT().GetRolesByAccountID(gomock.Any(), acc.ID).
			Return([]domain.Role{{ID: 1, Name: constant.RoleUser}}, nil)

		body, _ := json.Marshal(dto.RefreshInput{RefreshToken: refreshToken})
		req := httptest.NewRequest("POST", "/api/v1/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.RefreshResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.NotEmpty(t, out.AccessToken)
	})

	t.Run("access token in refresh slot returns 401", func(t *testing.T) {
		acc := f.account(t, "correct-horse")
		accessToken := f.accessToken(t, acc, []string{constant.RoleUser})

		body, _ := json.Marshal(dto.RefreshInput{RefreshToken: accessToken})
		req := httptest.NewRequest("POST", "/api/v1/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		body, _ := json.Marshal(dto.RefreshInput{RefreshToken: "not-a-token"})
		req := httptest.NewRequest("POST", "/api/v1/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	t.Run("closes the open session", func(t *testing.T) {
		acc := f.account(t, "correct-horse")
		token := f.accessToken(t, acc, []string{constant.RoleUser})

		open := &domain.LoginEvent{ID: uuid.NewString(), AccountID: acc.ID, Successful: true}
		f.repo.EXPECT().LatestOpenLoginEvent(gomock.Any(), acc.ID).Return(open, nil)
		f.repo.EXPECT().CloseLoginEvent(gomock.Any(), open.ID, gomock.Any()).Return(nil)

		req := httptest.NewRequest("DELETE", "/api/v1/session", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("missing bearer token returns 401", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/session", nil)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestChangePasswordEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	t.Run("success", func(t *testing.T) {
		acc := f.account(t, "old-password")
		token := f.accessToken(t, acc, []string{constant.RoleUser})

		f.repo.EXPECT().GetAccountByID(gomock.Any(), acc.ID).Return(acc, nil)
		f.repo.EXPECT().RecentPasswordHistory(gomock.Any(), acc.ID, constant.PasswordHistoryDepth).
			Return(nil, nil)
		f.repo.EXPECT().AppendPasswordHistory(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().UpdateAccount(gomock.Any(), acc).Return(nil)

		body, _ := json.Marshal(dto.ChangePasswordInput{OldPassword: "old-password", NewPassword: "new-password"})
		req := httptest.NewRequest("POST", "/api/v1/me/password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("wrong old password returns 401", func(t *testing.T) {
		acc := f.account(t, "old-password")
		token := f.accessToken(t, acc, []string{constant.RoleUser})

		f.repo.EXPECT().GetAccountByID(gomock.Any(), acc.ID).Return(acc, nil)

		body, _ := json.Marshal(dto.ChangePasswordInput{OldPassword: "not-it", NewPassword: "new-password"})
		req := httptest.NewRequest("POST", "/api/v1/me/password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("reused password returns 400", func(t *testing.T) {
		acc := f.account(t, "old-password")
		token := f.accessToken(t, acc, []string{constant.RoleUser})

		reusedHash, err := f.hasher.Hash("new-password")
		require.NoError(t, err)

		f.repo.EXPECT().GetAccountByID(gomock.Any(), acc.ID).Return(acc, nil)
		f.repo.EXPECT().RecentPasswordHistory(gomock.Any(), acc.ID, constant.PasswordHistoryDepth).
			Return([]domain.PasswordHistoryEntry{{ID: uuid.NewString(), AccountID: acc.ID, PasswordHash: reusedHash}}, nil)

		body, _ := json.Marshal(dto.ChangePasswordInput{OldPassword: "old-password", NewPassword: "new-password"})
		req := httptest.NewRequest("POST", "/api/v1/me/password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("no token returns 401", func(t *testing.T) {
		body, _ := json.Marshal(dto.ChangePasswordInput{OldPassword: "old-password", NewPassword: "new-password"})
		req := httptest.NewRequest("POST", "/api/v1/me/password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestHistoryEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	acc := &domain.Account{ID: 1, Username: "alice"}
	events := []domain.LoginEvent{
		{ID: uuid.NewString(), AccountID: 1, IPAddress: "203.0.113.7", LoginAt: time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC), Successful: true},
	}

	t.Run("full history", func(t *testing.T) {
		token := f.accessToken(t, acc, []string{constant.RoleUser})
		f.repo.EXPECT().LoginEventsByAccount(gomock.Any(), acc.ID).Return(events, nil)

		req := httptest.NewRequest("GET", "/api/v1/me/history", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out []dto.LoginEventOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Len(t, out, 1)
		assert.Equal(t, "203.0.113.7", out[0].IPAddress)
	})

	t.Run("filtered by success flag", func(t *testing.T) {
		token := f.accessToken(t, acc, []string{constant.RoleUser})
		f.repo.EXPECT().LoginEventsBySuccess(gomock.Any(), acc.ID, false).Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/v1/me/history?successful=false", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("filtered by time range", func(t *testing.T) {
		token := f.accessToken(t, acc, []string{constant.RoleUser})
		f.repo.EXPECT().LoginEventsBetween(gomock.Any(), acc.ID, gomock.Any(), gomock.Any()).Return(events, nil)

		req := httptest.NewRequest("GET", "/api/v1/me/history?from=2025-06-01T00:00:00Z&to=2025-06-02T00:00:00Z", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bad time range returns 400", func(t *testing.T) {
		token := f.accessToken(t, acc, []string{constant.RoleUser})

		req := httptest.NewRequest("GET", "/api/v1/me/history?from=yesterday&to=today", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("expired token returns 401", func(t *testing.T) {
		expired, err := f.tokens.IssueAccess(acc.ID, acc.Username, []string{constant.RoleUser}, f.clock.Now().Add(-time.Hour))
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/me/history", nil)
		req.Header.Set("Authorization", "Bearer "+expired)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestActiveSessionsEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	acc := &domain.Account{ID: 1, Username: "alice"}

	t.Run("returns open sessions", func(t *testing.T) {
		token := f.accessToken(t, acc, []string{constant.RoleUser})
		f.repo.EXPECT().OpenSessionsByAccount(gomock.Any(), acc.ID).
			Return([]domain.LoginEvent{{ID: uuid.NewString(), AccountID: 1, Successful: true}}, nil)

		req := httptest.NewRequest("GET", "/api/v1/me/sessions", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("principal without a known role is forbidden", func(t *testing.T) {
		token := f.accessToken(t, acc, []string{"ROLE_VISITOR"})

		req := httptest.NewRequest("GET", "/api/v1/me/sessions", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
