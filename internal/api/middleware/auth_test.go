package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

type stubUserRepo struct {
	byID map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Get(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Upsert(_ context.Context, in ports.UpsertUserInput) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	return nil, errors.New("not implemented")
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func httpStatusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	users := newStubUserRepo()
	users.byID["u1"] = &domain.User{ID: "u1", Role: domain.RoleFreelancer, IsActive: true}

	signed := signToken(t, "secret", jwt.MapClaims{
		"sub":        "u1",
		"email":      "alice@example.com",
		"first_name": "Alice",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret", users)(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "u1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("email") != "alice@example.com" {
			t.Fatalf("email not set")
		}
		u, _ := c.Get("user").(*domain.User)
		if u == nil || u.ID != "u1" {
			t.Fatalf("stored user not loaded")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_FirstLoginPassesWithoutRow(t *testing.T) {
	e := echo.New()
	users := newStubUserRepo()

	signed := signToken(t, "secret", jwt.MapClaims{"sub": "new-user"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", users)(func(c echo.Context) error {
		if c.Get("user") != nil {
			t.Fatalf("no stored user expected on first login")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_DeactivatedUser(t *testing.T) {
	e := echo.New()
	users := newStubUserRepo()
	users.byID["u1"] = &domain.User{ID: "u1", Role: domain.RoleFreelancer, IsActive: false}

	signed := signToken(t, "secret", jwt.MapClaims{"sub": "u1"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", users)(func(c echo.Context) error {
		t.Fatalf("next must not be called for a deactivated user")
		return nil
	})

	if code := httpStatusOf(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", newStubUserRepo())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if code := httpStatusOf(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "other-secret", jwt.MapClaims{"sub": "u1"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", newStubUserRepo())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if code := httpStatusOf(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_MissingSubject(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret", jwt.MapClaims{"email": "x@example.com"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", newStubUserRepo())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if code := httpStatusOf(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
