package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/assignment-service/internal/models"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if r.err != nil {
		return r.err
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byEmail[email], nil
}

func registerRequest() *models.CreateUserRequest {
	return &models.CreateUserRequest{
		Email:     "jane@example.com",
		Password:  "s3cret",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestUserServiceRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NotEqual(t, "s3cret", user.Password, "password must be stored hashed")
	assert.False(t, user.AccountCreated.IsZero())
	assert.Equal(t, user.AccountCreated, user.AccountUpdated)
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserServiceRegisterValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zerolog.Nop())

	req := registerRequest()
	req.Password = ""
	_, err := svc.Register(context.Background(), req)

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUserServiceAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "jane@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "jane@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody@example.com", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserServiceRegisterRepoFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.err = errors.New("connection refused")
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), registerRequest())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}
