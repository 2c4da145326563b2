package services

import (
	"context"
	"io"

	"cinehub/internal/domain"
	"cinehub/internal/storage"
	"cinehub/pkg/logger"
)

type CreateUserInput struct {
	Username string
	Password string
	Age      int
	Gender   domain.Gender
}

type UpdateUserInput struct {
	Username *string
	Password *string
	Age      *int
	Gender   *domain.Gender
}

type UserService struct {
	users domain.UserRepository
	auth  *AuthService
	media *storage.LocalStorage
	log   logger.Logger
}

func NewUserService(users domain.UserRepository, auth *AuthService,
	media *storage.LocalStorage, log logger.Logger) *UserService {
	return &UserService{
		users: users,
		auth:  auth,
		media: media,
		log:   log,
	}
}

func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (int64, error) {
	hashed, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		Username:       input.Username,
		HashedPassword: hashed,
		Age:            input.Age,
		Gender:         input.Gender,
	}
	return s.users.CreateUser(ctx, user)
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetUser(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *UserService) SearchUsers(ctx context.Context, params domain.UserSearchParams) ([]*domain.User, error) {
	return s.users.SearchUsers(ctx, params)
}

func (s *UserService) UpdateUser(ctx context.Context, userID int64, input UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Password != nil {
		hashed, err := s.auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return err
	}

	if err := s.media.Delete(user.ProfileImageURL); err != nil {
		s.log.Warn("Failed to delete profile image", "user_id", userID, "error", err)
	}
	return nil
}

// UpdateProfileImage stores the uploaded image and replaces the previous
// one, if any.
func (s *UserService) UpdateProfileImage(ctx context.Context, userID int64, filename string, file io.Reader) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	path, err := s.media.SaveImage("users", filename, file)
	if err != nil {
		return nil, err
	}

	previous := user.ProfileImageURL
	user.ProfileImageURL = path
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.media.Delete(previous); err != nil {
		s.log.Warn("Failed to delete previous profile image", "user_id", userID, "error", err)
	}
	return user, nil
}
