package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRBAC(t *testing.T, userRoles []string, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userRoles != nil {
		c.Set("roles", userRoles)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := RBAC(allowed...)(next)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestRBAC_AllowsMatchingRole(t *testing.T) {
	rec := runRBAC(t, []string{"Employee", "Manager"}, "Manager", "Admin")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_ForbidsWithoutMatch(t *testing.T) {
	rec := runRBAC(t, []string{"Employee"}, "Manager", "Admin")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Forbidden") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRBAC_ForbidsWithoutRoles(t *testing.T) {
	rec := runRBAC(t, nil, "Manager")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
