package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"patient-vitals-service/config"
	"patient-vitals-service/internal/delivery/dto"
	"patient-vitals-service/internal/delivery/http/view"
	"patient-vitals-service/internal/session"
	"patient-vitals-service/internal/usecase"
	"patient-vitals-service/pkg/sessiontoken"
	"patient-vitals-service/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	registerErr error
	registered  []*dto.SignupRequest
	loginErr    error
	user        *dto.UserResponse
	loggedOut   []uuid.UUID
}

func (f *fakeAuthUsecase) Register(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = append(f.registered, req)
	return &dto.UserResponse{ID: uuid.New(), Username: req.Username, Email: req.Email}, nil
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func (f *fakeAuthUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	f.loggedOut = append(f.loggedOut, userID)
	return nil
}

func newAuthHandlerUnderTest(t *testing.T, auth *fakeAuthUsecase) (*AuthHandler, *session.Manager) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	tokens := sessiontoken.NewService(config.SessionConfig{Secret: "test-secret", Expiry: time.Hour})
	sessions := session.NewManager(client, tokens, time.Hour)

	renderer, err := view.NewRenderer(log)
	require.NoError(t, err)

	return NewAuthHandler(auth, sessions, renderer, validator.NewValidator()), sessions
}

func TestSignup_SuccessRedirectsToLogin(t *testing.T) {
	auth := &fakeAuthUsecase{}
	h, sessions := newAuthHandlerUnderTest(t, auth)
	sess := sessions.New()

	form := url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"secret123"},
	}

	rec := httptest.NewRecorder()
	h.Signup(rec, postForm("/signup", form, sess))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	require.Len(t, auth.registered, 1)
	assert.False(t, sess.IsAuthenticated(), "signup must not log the user in")

	flash := lastFlash(t, sess)
	assert.Equal(t, session.FlashSuccess, flash.Category)
	assert.Equal(t, "Sign-Up successful! Please log in.", flash.Message)
}

func TestSignup_DuplicateEmailStaysOnSignup(t *testing.T) {
	auth := &fakeAuthUsecase{registerErr: usecase.ErrEmailAlreadyExists}
	h, sessions := newAuthHandlerUnderTest(t, auth)
	sess := sessions.New()

	form := url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"secret123"},
	}

	rec := httptest.NewRecorder()
	h.Signup(rec, postForm("/signup", form, sess))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/signup", rec.Header().Get("Location"))
	assert.Equal(t, "Email already registered.", lastFlash(t, sess).Message)
}

func TestSignup_InvalidFormNeverReachesUsecase(t *testing.T) {
	auth := &fakeAuthUsecase{}
	h, sessions := newAuthHandlerUnderTest(t, auth)
	sess := sessions.New()

	form := url.Values{
		"username": {"alice"},
		"email":    {"not-an-email"},
		"password": {"secret123"},
	}

	rec := httptest.NewRecorder()
	h.Signup(rec, postForm("/signup", form, sess))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/signup", rec.Header().Get("Location"))
	assert.Empty(t, auth.registered)
	assert.Equal(t, session.FlashDanger, lastFlash(t, sess).Category)
}

func TestLogin_SuccessAttachesSession(t *testing.T) {
	userID := uuid.New()
	auth := &fakeAuthUsecase{user: &dto.UserResponse{ID: userID, Username: "alice", Email: "alice@example.com"}}
	h, sessions := newAuthHandlerUnderTest(t, auth)
	sess := sessions.New()

	form := url.Values{
		"email":    {"alice@example.com"},
		"password": {"secret123"},
	}

	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login", form, sess))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, userID, sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, "Logged in successfully.", lastFlash(t, sess).Message)
}

func TestLogin_BadCredentialsStaysOnLogin(t *testing.T) {
	auth := &fakeAuthUsecase{loginErr: usecase.ErrInvalidCredentials}
	h, sessions := newAuthHandlerUnderTest(t, auth)
	sess := sessions.New()

	form := url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	}

	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login", form, sess))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, "Invalid email or password.", lastFlash(t, sess).Message)
}

func TestLogout_DetachesButKeepsLanguage(t *testing.T) {
	auth := &fakeAuthUsecase{}
	h, sessions := newAuthHandlerUnderTest(t, auth)

	sess := sessions.New()
	userID := uuid.New()
	sess.Attach(userID, "alice")
	sess.Language = "tr"

	rec := httptest.NewRecorder()
	h.Logout(rec, getWithSession("/logout", sess))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, []uuid.UUID{userID}, auth.loggedOut)
	assert.Equal(t, "tr", sess.Language)
	assert.Equal(t, "Logged out successfully.", lastFlash(t, sess).Message)
}
