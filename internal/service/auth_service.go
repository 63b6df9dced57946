package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/chobyoungjae/interface/internal/repository"
	"github.com/chobyoungjae/interface/internal/session"

	"github.com/rs/zerolog/log"
)

// ErrBadCredential means the password did not match the stored one.
var ErrBadCredential = errors.New("비밀번호가 올바르지 않습니다.")

// RateLimitedError reports a locked-out IP and the remaining wait.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return "로그인 시도 횟수를 초과했습니다. 잠시 후 다시 시도해주세요."
}

// AuthService gates both form apps behind the shared sheet password.
type AuthService interface {
	// Login verifies the candidate password for the given client IP and
	// returns a signed session token. Failures count toward the IP's
	// lockout budget; success clears it.
	Login(ctx context.Context, password, ip string) (string, error)

	// ValidateSession reports whether a session token is genuine and
	// unexpired.
	ValidateSession(token string) bool
}

type authService struct {
	bom      repository.BOMRepository
	attempts session.AttemptStore
	sessions *session.Manager
}

func NewAuthService(bom repository.BOMRepository, attempts session.AttemptStore, sessions *session.Manager) AuthService {
	return &authService{bom: bom, attempts: attempts, sessions: sessions}
}

func (s *authService) Login(ctx context.Context, password, ip string) (string, error) {
	blocked, retryAfter, err := s.attempts.Blocked(ctx, ip)
	if err != nil {
		// A broken attempt store must not lock everyone out.
		log.Error().Err(err).Msg("attempt store check failed")
	} else if blocked {
		return "", &RateLimitedError{RetryAfter: retryAfter}
	}

	stored := s.bom.ReadPassword(ctx)
	if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		if err := s.attempts.RecordFailure(ctx, ip); err != nil {
			log.Error().Err(err).Msg("attempt store record failed")
		}
		return "", ErrBadCredential
	}

	if err := s.attempts.Reset(ctx, ip); err != nil {
		log.Error().Err(err).Msg("attempt store reset failed")
	}
	return s.sessions.Issue()
}

func (s *authService) ValidateSession(token string) bool {
	return s.sessions.Validate(token)
}
