package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"patient-vitals-service/pkg/sessiontoken"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// Flash is a one-time user-visible message delivered on the next render.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Flash categories
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
)

// WaistResult is the one-shot calculator outcome stored for exactly one
// subsequent dashboard render.
type WaistResult struct {
	Estimate float64 `json:"estimate"`
	Warning  bool    `json:"warning"`
}

// Session is the per-visitor state stored in redis. A zero UserID means
// the visitor is anonymous.
type Session struct {
	ID          string       `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Username    string       `json:"username"`
	Language    string       `json:"language,omitempty"`
	Flashes     []Flash      `json:"flashes,omitempty"`
	WaistResult *WaistResult `json:"waist_result,omitempty"`
}

func (s *Session) IsAuthenticated() bool {
	return s.UserID != uuid.Nil
}

// Attach moves the session from Anonymous to Authenticated.
func (s *Session) Attach(userID uuid.UUID, username string) {
	s.UserID = userID
	s.Username = username
}

// Detach clears the authenticated attachment, keeping locale intact.
func (s *Session) Detach() {
	s.UserID = uuid.Nil
	s.Username = ""
}

func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Message: message, Category: category})
}

// PopFlashes returns the queued flashes and clears them.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// PopWaistResult returns the one-shot calculator result and clears it.
func (s *Session) PopWaistResult() *WaistResult {
	result := s.WaistResult
	s.WaistResult = nil
	return result
}

// Manager persists sessions in redis as JSON with a TTL, and issues the
// signed cookie tokens that reference them.
type Manager struct {
	redisClient *redis.Client
	tokens      *sessiontoken.Service
	expiry      time.Duration
}

func NewManager(redisClient *redis.Client, tokens *sessiontoken.Service, expiry time.Duration) *Manager {
	return &Manager{
		redisClient: redisClient,
		tokens:      tokens,
		expiry:      expiry,
	}
}

// New returns a fresh anonymous session. It is not persisted until Save.
func (m *Manager) New() *Session {
	return &Session{ID: uuid.New().String()}
}

// Load resolves a cookie token to its session. Tampered tokens and
// expired or destroyed sessions return ErrSessionNotFound.
func (m *Manager) Load(ctx context.Context, token string) (*Session, error) {
	sessionID, err := m.tokens.Validate(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	data, err := m.redisClient.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (m *Manager) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return m.redisClient.Set(ctx, sessionKey(sess.ID), data, m.expiry).Err()
}

func (m *Manager) Destroy(ctx context.Context, sess *Session) error {
	return m.redisClient.Del(ctx, sessionKey(sess.ID)).Err()
}

// Token signs the session id into an opaque cookie value.
func (m *Manager) Token(sess *Session) (string, error) {
	return m.tokens.Generate(sess.ID)
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
