package user

import (
	"context"

	"daily-diet-api/domain"
	"daily-diet-api/entities"

	"github.com/google/uuid"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest, currentSession string) (domain.RegisterUserResponse, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

// Register creates a new user keyed by email. A well-formed session token
// already held by the client is reused, otherwise a fresh one is minted and
// NewSession reports that the caller must hand it back as a cookie.
func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest, currentSession string) (domain.RegisterUserResponse, error) {
	existing, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return domain.RegisterUserResponse{}, err
	}
	if existing != nil {
		return domain.RegisterUserResponse{}, domain.ErrUserAlreadyExists
	}

	sessionID, err := uuid.Parse(currentSession)
	newSession := currentSession == "" || err != nil
	if newSession {
		sessionID = uuid.New()
	}

	user := &entities.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		SessionID: &sessionID,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterUserResponse{}, err
	}

	return domain.RegisterUserResponse{
		SessionID:  sessionID,
		NewSession: newSession,
	}, nil
}
