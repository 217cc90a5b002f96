package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runWithRole(t *testing.T, role interface{}, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	h := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	rec := runWithRole(t, "OWNER", "OWNER", "PLAYER")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	rec := runWithRole(t, "PLAYER", "OWNER")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	rec := runWithRole(t, nil, "OWNER", "PLAYER")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireRoleRejectsNonStringRole(t *testing.T) {
	rec := runWithRole(t, 42, "OWNER")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestCurrentUserIDForms(t *testing.T) {
	e := echo.New()
	cases := []struct {
		name string
		val  interface{}
		want string
	}{
		{"string", "17", "17"},
		{"float64 from jwt claims", float64(17), "17"},
		{"uint64", uint64(17), "17"},
		{"missing", nil, "anon"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			c := e.NewContext(req, httptest.NewRecorder())
			if tc.val != nil {
				c.Set("user_id", tc.val)
			}
			if got := currentUserID(c); got != tc.want {
				t.Errorf("currentUserID = %q, want %q", got, tc.want)
			}
		})
	}
}
