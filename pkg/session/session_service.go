package session

import (
	"context"
	"errors"

	"daily-diet-api/domain"
	"daily-diet-api/entities"
	"daily-diet-api/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// SessionService resolves an opaque session token to its owning user.
	// Lookups are read-only; tokens are minted by user registration.
	SessionService interface {
		Resolve(ctx context.Context, token string) (*entities.User, error)
	}

	sessionService struct {
		userRepository user.UserRepository
	}
)

func NewSessionService(userRepository user.UserRepository) SessionService {
	return &sessionService{userRepository: userRepository}
}

func (s *sessionService) Resolve(ctx context.Context, token string) (*entities.User, error) {
	sessionID, err := uuid.Parse(token)
	if err != nil {
		return nil, domain.ErrSessionInvalid
	}

	resolved, err := s.userRepository.GetUserBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return resolved, nil
}
