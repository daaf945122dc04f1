package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"curatorMarket/pkg/logger"
	"curatorMarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAuthMiddleware(t *testing.T) {
	utils.InitJWT("middleware-secret")

	valid, err := utils.GenerateJWT(7, "customer", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotID uint
			h := AuthMiddleware()(func(c echo.Context) error {
				gotID, _ = c.Get("user_id").(uint)
				return okHandler(c)
			})
			if err := h(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK && gotID != 7 {
				t.Fatalf("user_id = %d, want 7", gotID)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		role any
		want int
	}{
		{role: "admin", want: http.StatusOK},
		{role: "ADMIN", want: http.StatusOK},
		{role: "customer", want: http.StatusForbidden},
		{role: nil, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		if tt.role != nil {
			c.Set("role", tt.role)
		}

		if err := AdminOnly()(okHandler)(c); err != nil {
			t.Fatal(err)
		}
		if rec.Code != tt.want {
			t.Fatalf("role %v: status = %d, want %d", tt.role, rec.Code, tt.want)
		}
	}
}

func TestSelfOrAdmin(t *testing.T) {
	tests := []struct {
		name  string
		user  uint
		role  string
		param string
		want  int
	}{
		{name: "self", user: 3, role: "customer", param: "3", want: http.StatusOK},
		{name: "other", user: 3, role: "customer", param: "4", want: http.StatusForbidden},
		{name: "admin", user: 1, role: "admin", param: "4", want: http.StatusOK},
		{name: "bad id", user: 3, role: "customer", param: "x", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)
			c.Set("user_id", tt.user)
			c.Set("role", tt.role)

			if err := SelfOrAdmin()(okHandler)(c); err != nil {
				t.Fatal(err)
			}
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestTraceID(t *testing.T) {
	e := echo.New()

	t.Run("reuses caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var seen string
		err := TraceID()(func(c echo.Context) error {
			seen = logger.TraceIDFromContext(c.Request().Context())
			return nil
		})(c)
		if err != nil {
			t.Fatal(err)
		}
		if seen != "abc-123" || rec.Header().Get(HeaderRequestID) != "abc-123" {
			t.Fatalf("trace id = %q, header = %q", seen, rec.Header().Get(HeaderRequestID))
		}
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		var seen string
		_ = TraceID()(func(c echo.Context) error {
			seen = logger.TraceIDFromContext(c.Request().Context())
			return nil
		})(c)
		if seen == "" || seen != rec.Header().Get(HeaderRequestID) {
			t.Fatalf("trace id = %q, header = %q", seen, rec.Header().Get(HeaderRequestID))
		}
	})
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "http error", err: echo.NewHTTPError(http.StatusNotFound, "no route"), wantCode: http.StatusNotFound, wantBody: "no route"},
		{name: "plain error", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			ErrorHandler(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Fatalf("body %q does not contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
