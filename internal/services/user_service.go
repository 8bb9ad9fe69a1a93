package services

import (
	"errors"
	"fmt"
	"time"

	"hobbyhub/internal/models"
	"hobbyhub/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for the current user's profile.
type UserService struct {
	userRepo  repositories.UserRepository
	hobbyRepo repositories.HobbyRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, hobbyRepo repositories.HobbyRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		hobbyRepo: hobbyRepo,
	}
}

// Profile is the current user's account together with their hobby set.
type Profile struct {
	User    *models.User   `json:"user"`
	Hobbies []models.Hobby `json:"hobbies"`
	Age     int            `json:"age"` // -1 when date of birth is not set
}

// ProfileUpdate carries the optional profile fields; nil means unchanged.
type ProfileUpdate struct {
	Username    *string    `json:"username"`
	Email       *string    `json:"email"`
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	DateOfBirth *time.Time `json:"-"`
}

// GetProfile returns the user's profile with hobbies and computed age.
func (s *UserService) GetProfile(userID string) (*Profile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	hobbies, err := s.hobbyRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		User:    user,
		Hobbies: hobbies,
		Age:     user.Age(time.Now()),
	}, nil
}

// UpdateProfile applies the provided fields. Username and email keep their
// uniqueness across users; taking a value already held by another account is
// a conflict, not an internal error.
func (s *UserService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if update.Username != nil && *update.Username != user.Username {
		if other, err := s.userRepo.GetByUsername(*update.Username); err == nil && other != nil && other.ID != userID {
			return nil, fmt.Errorf("username '%s': %w", *update.Username, ErrUsernameTaken)
		}
		user.Username = *update.Username
	}
	if update.Email != nil && *update.Email != user.Email {
		if other, err := s.userRepo.GetByEmail(*update.Email); err == nil && other != nil && other.ID != userID {
			return nil, fmt.Errorf("email '%s': %w", *update.Email, ErrEmailTaken)
		}
		user.Email = *update.Email
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.DateOfBirth != nil {
		user.DateOfBirth = update.DateOfBirth
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the old password and stores a hash of the new one.
func (s *UserService) ChangePassword(userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}
