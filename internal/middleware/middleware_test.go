package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"painterflow/internal/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts map[string]bool

func (f fakeAccounts) Exists(_ context.Context, id string) (bool, error) {
	return f[id], nil
}

func newRouter(accounts Accounts) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.Use(InjectSession(accounts))

	r.GET("/signin/:id", func(c *gin.Context) {
		_ = auth.Save(c, &auth.Session{UserID: c.Param("id"), Email: "a@example.com", SignedInAt: time.Now()})
		c.Status(http.StatusNoContent)
	})
	r.GET("/login", RedirectSignedIn("/app"), func(c *gin.Context) { c.String(http.StatusOK, "login") })
	app := r.Group("/app", RequireAuth())
	app.GET("", func(c *gin.Context) {
		s, _ := auth.FromContext(c)
		c.String(http.StatusOK, s.Email)
	})
	return r
}

func signIn(t *testing.T, r *gin.Engine, id string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/signin/"+id, nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestRequireAuthAnonymous(t *testing.T) {
	r := newRouter(fakeAccounts{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	req.Header.Set("Accept", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}

func TestSessionCookieGrantsAccess(t *testing.T) {
	r := newRouter(fakeAccounts{"u1": true})
	ck := signIn(t, r, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	req.AddCookie(ck)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@example.com", w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(ck)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/app", w.Header().Get("Location"))
}

func TestSessionForDeletedAccountIsDropped(t *testing.T) {
	r := newRouter(fakeAccounts{})
	ck := signIn(t, r, "gone")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	req.AddCookie(ck)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
}
