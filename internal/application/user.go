package application

import (
	"errors"
	"time"

	"github.com/agrisetu/registry-go/internal/api/middleware"
	"github.com/agrisetu/registry-go/internal/domain/user"
	"github.com/agrisetu/registry-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrUsernameTaken       = errors.New("username already taken")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) error {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if err == nil {
		return ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	usr := user.User{
		Username: input.Username,
		Password: string(hashed),
		Role:     "EMPLOYEE",
		Status:   "ACTIVE",
	}
	if input.Email != nil {
		usr.Email = *input.Email
	}
	if input.FullName != nil {
		usr.FullName = *input.FullName
	}
	if input.Role != nil {
		usr.Role = *input.Role
	}
	return s.Repos.User.SaveUser(&usr)
}

func (s *UserService) LoginUser(username, password string) (user.User, string, bool, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", false, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", false, errors.New("invalid credentials")
	}

	token, isAdmin, err := middleware.GenerateToken(usr.ID, usr.Username, usr.Role, 24*time.Hour)
	if err != nil {
		return user.User{}, "", false, err
	}

	return usr, token, isAdmin, nil
}

func (s *UserService) GetUser(id uint) (user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, translateNotFound(err)
	}
	return u, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) UpdateUser(id uint, input user.UpdateUserInput) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, translateNotFound(err)
	}

	if input.NewPassword != nil {
		if input.OldPassword == nil {
			return user.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(*input.OldPassword)); err != nil {
			return user.User{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		usr.Password = string(hashed)
	}

	if input.Email != nil {
		usr.Email = *input.Email
	}
	if input.FullName != nil {
		usr.FullName = *input.FullName
	}
	if input.Status != nil {
		usr.Status = *input.Status
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.Repos.User.GetUserByID(id); err != nil {
		return translateNotFound(err)
	}
	return s.Repos.User.DeleteUser(id)
}
