package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrForbidden = errors.New("access: forbidden")

// Session is the caller's session context as presented on a request.
// The zero value is an anonymous caller.
type Session struct {
	Token string
}

// SessionStore remembers which issued session ids are still live.
type SessionStore interface {
	Put(ctx context.Context, id string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// Sessions issues and revokes the signed session flag handed to a client
// after a successful login.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	store  SessionStore
	now    func() time.Time
}

func NewSessions(secret []byte, ttl time.Duration, store SessionStore) *Sessions {
	return &Sessions{secret: secret, ttl: ttl, store: store, now: time.Now}
}

func (s *Sessions) TTL() time.Duration { return s.ttl }

// Issue records a new session id and returns the signed token for it.
func (s *Sessions) Issue(ctx context.Context) (Session, error) {
	if len(s.secret) == 0 {
		return Session{}, fmt.Errorf("session secret not configured")
	}
	id := uuid.NewString()
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}

	if err := s.store.Put(ctx, id, s.ttl); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}
	return Session{Token: signed}, nil
}

// Revoke forgets the session. Unknown, expired or malformed tokens are ignored.
func (s *Sessions) Revoke(ctx context.Context, sess Session) {
	id, ok := s.parse(sess.Token)
	if !ok {
		return
	}
	if err := s.store.Delete(ctx, id); err != nil {
		log.Warn().Err(err).Msg("session revoke failed")
	}
}

// Live reports whether the token verifies and its id is still stored.
func (s *Sessions) Live(ctx context.Context, sess Session) bool {
	id, ok := s.parse(sess.Token)
	if !ok {
		return false
	}
	live, err := s.store.Exists(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("session lookup failed")
		return false
	}
	return live
}

func (s *Sessions) parse(raw string) (string, bool) {
	if raw == "" || len(s.secret) == 0 {
		return "", false
	}
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid || claims.ID == "" {
		return "", false
	}
	return claims.ID, true
}
