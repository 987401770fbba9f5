package application_test

import (
	"testing"
	"time"

	"github.com/agrisetu/registry-go/internal/api/middleware"
	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/user"
	"github.com/agrisetu/registry-go/internal/repository"
	"github.com/agrisetu/registry-go/internal/repository/mock"
	"github.com/agrisetu/registry-go/internal/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*application.UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := repository.NewRepositories(testutils.NewTestDB(t))
	repos.User = mockUser
	return application.NewUserService(repos), mockUser
}

func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, "alice", u.Username)
		assert.NotEqual(t, "123456", u.Password) // stored hashed
		return nil
	})

	err := svc.RegisterUser(user.CreateUserInput{
		Username: "alice",
		Password: "123456",
		Email:    ptrString("alice@registry.test"),
		FullName: ptrString("Alice"),
	})
	assert.NoError(t, err)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("admin").Return(user.User{Username: "admin"}, nil)

	err := svc.RegisterUser(user.CreateUserInput{Username: "admin", Password: "123456"})
	assert.Equal(t, application.ErrUsernameTaken, err)
}

func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	stored := user.User{Username: "bob", Password: string(hashed), Role: "ADMIN"}

	mockUser.EXPECT().GetUserByUsername("bob").Return(stored, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username, role string, expire time.Duration) (string, bool, error) {
		return "token123", true, nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, isAdmin, err := svc.LoginUser("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
	assert.True(t, isAdmin)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByUsername("bob").Return(user.User{Username: "bob", Password: string(hashed)}, nil)

	_, token, isAdmin, err := svc.LoginUser("bob", "wrong")
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.False(t, isAdmin)
}

func TestUpdateUser_PasswordRequiresOld(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	stored := user.User{Username: "carol", Password: string(hashed)}

	mockUser.EXPECT().GetUserByID(uint(1)).Return(stored, nil).Times(2)

	_, err := svc.UpdateUser(1, user.UpdateUserInput{NewPassword: ptrString("newpass")})
	assert.Equal(t, application.ErrMissingOldPassword, err)

	_, err = svc.UpdateUser(1, user.UpdateUserInput{
		NewPassword: ptrString("newpass"),
		OldPassword: ptrString("wrong"),
	})
	assert.Equal(t, application.ErrIncorrectPassword, err)
}

func TestUpdateUser_PasswordChange(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	stored := user.User{Username: "carol", Password: string(hashed)}

	mockUser.EXPECT().GetUserByID(uint(1)).Return(stored, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpass")))
		return nil
	})

	_, err := svc.UpdateUser(1, user.UpdateUserInput{
		NewPassword: ptrString("newpass"),
		OldPassword: ptrString("oldpass"),
	})
	assert.NoError(t, err)
}
