package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/handler/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type parserFunc func(string) (domain.Identity, error)

func (f parserFunc) ParseToken(token string) (domain.Identity, error) { return f(token) }

var staticParser = parserFunc(func(token string) (domain.Identity, error) {
	switch token {
	case "admin":
		return domain.Identity{MemberID: "m-9", BuildingID: "b1", Role: domain.RoleAdmin}, nil
	case "member":
		return domain.Identity{MemberID: "m-1", BuildingID: "b1", Role: domain.RoleMember}, nil
	}
	return domain.Identity{}, errors.New("bad token")
})

func newTestEngine(t *testing.T) *ginext.Engine {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))

	r.GET("/me", Auth(staticParser), func(c *ginext.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, dto.OK(id.MemberID))
	})
	r.GET("/admin", Auth(staticParser), RequireAdmin(), func(c *ginext.Context) {
		c.JSON(http.StatusOK, dto.OK("ok"))
	})
	r.GET("/panic", func(*ginext.Context) { panic("boom") })

	return r
}

func serve(t *testing.T, r http.Handler, path, auth string, header map[string]string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestAuth(t *testing.T) {
	r := newTestEngine(t)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"member", "Bearer member", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := serve(t, r, "/me", tt.header, nil)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "m-1", resp.Data)
				return
			}
			assert.Equal(t, "UNAUTHORIZED", resp.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	r := newTestEngine(t)

	w, resp := serve(t, r, "/admin", "Bearer member", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Code)

	w, _ = serve(t, r, "/admin", "Bearer admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	r := newTestEngine(t)

	w, _ := serve(t, r, "/me", "Bearer member", map[string]string{"X-Request-ID": "req-42"})
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))

	w, _ = serve(t, r, "/me", "Bearer member", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRecovery(t *testing.T) {
	r := newTestEngine(t)

	w, resp := serve(t, r, "/panic", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "INTERNAL", resp.Code)
}
