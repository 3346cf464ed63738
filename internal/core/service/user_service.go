package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

// UserService implements account management. The transport layer has
// already established that the caller is a manager.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context, page ports.Page) (*ports.UserList, error) {
	users, total, err := s.repo.List(ctx, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	return &ports.UserList{Items: users, Total: total}, nil
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	// Pre-check is an optimization for a friendly error; the unique index
	// on users.email is the authoritative guard.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Department:   in.Department,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only a changed email needs the uniqueness check.
	if in.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
			return nil, domain.ErrEmailTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Role = in.Role
	user.Department = in.Department

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("user_id", id).Msg("user deleted")
	return nil
}
