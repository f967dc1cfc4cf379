package service_auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInternal = errors.New("internal error")

type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
}

// Service resolves a session token to a user identity. Session
// issuance lives in the Telegram auth service; this side only reads
// what that service has written to the shared cache.
type Service struct {
	sessionCache SessionCache
	ttl          time.Duration
}

func New(sessionCache SessionCache, ttl *time.Duration) *Service {
	if ttl == nil {
		ttl = func() *time.Duration {
			defaultTokenTTL := time.Hour * 24
			return &defaultTokenTTL
		}()
	}

	return &Service{
		sessionCache: sessionCache,
		ttl:          *ttl,
	}
}

// CurrentUser returns nil for a missing or unknown token: every room
// operation works anonymously, identity only adds slot binding.
func (s *Service) CurrentUser(token string) (*uuid.UUID, error) {
	if token == "" {
		return nil, nil
	}

	v, err := s.sessionCache.Get(token)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	if v == "" {
		return nil, nil
	}

	userID, err := uuid.Parse(v)
	if err != nil {
		return nil, nil
	}

	return &userID, nil
}

// Bind records a token -> user mapping. Used by tests and by the auth
// service sidecar in single-binary deployments.
func (s *Service) Bind(token string, userID uuid.UUID) error {
	if err := s.sessionCache.Set(token, userID.String(), s.ttl); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}
