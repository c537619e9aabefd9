package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patient-vitals-service/config"
	"patient-vitals-service/internal/session"
	"patient-vitals-service/pkg/sessiontoken"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "session_token"

func newTestMiddleware(t *testing.T) (*SessionMiddleware, *session.Manager) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	tokens := sessiontoken.NewService(config.SessionConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
	manager := session.NewManager(client, tokens, time.Hour)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return NewSessionMiddleware(manager, testCookieName, log), manager
}

func sessionEcho(t *testing.T, got **session.Session) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSession(r.Context())
		require.True(t, ok, "session must always be in the request context")
		*got = sess
		w.WriteHeader(http.StatusOK)
	})
}

func TestAttach_NewVisitorGetsCookie(t *testing.T) {
	mw, _ := newTestMiddleware(t)

	var sess *session.Session
	handler := mw.Attach(sessionEcho(t, &sess))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sess)
	assert.False(t, sess.IsAuthenticated())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestAttach_ExistingSessionIsResolved(t *testing.T) {
	mw, manager := newTestMiddleware(t)

	stored := manager.New()
	stored.Attach(uuid.New(), "alice")
	require.NoError(t, manager.Save(context.Background(), stored))
	token, err := manager.Token(stored)
	require.NoError(t, err)

	var sess *session.Session
	handler := mw.Attach(sessionEcho(t, &sess))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sess)
	assert.Equal(t, stored.ID, sess.ID)
	assert.Equal(t, "alice", sess.Username)
	assert.Empty(t, rec.Result().Cookies(), "a resolved session must not reissue the cookie")
}

func TestAttach_TamperedCookieStartsFresh(t *testing.T) {
	mw, _ := newTestMiddleware(t)

	var sess *session.Session
	handler := mw.Attach(sessionEcho(t, &sess))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "tampered"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sess)
	assert.False(t, sess.IsAuthenticated())
	require.Len(t, rec.Result().Cookies(), 1, "a fresh cookie replaces the tampered one")
}

func TestRequireAuth_AnonymousIsRedirected(t *testing.T) {
	mw, _ := newTestMiddleware(t)

	handler := mw.Attach(mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("protected handler must not run for anonymous visitors")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuth_AuthenticatedPassesThrough(t *testing.T) {
	mw, manager := newTestMiddleware(t)

	stored := manager.New()
	stored.Attach(uuid.New(), "alice")
	require.NoError(t, manager.Save(context.Background(), stored))
	token, err := manager.Token(stored)
	require.NoError(t, err)

	called := false
	handler := mw.Attach(mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
