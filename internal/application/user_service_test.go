package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangearhq/fangear-api/internal/application"
	"github.com/fangearhq/fangear-api/internal/domain/entity"
	"github.com/fangearhq/fangear-api/internal/domain/repository"
)

type fakeUserRepo struct {
	byUsername map[string]*entity.User
	nextID     int64
	createErr  error
	getErr     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.byUsername[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byUsername[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// TestUserService_Register_HashesPassword verifies the stored credential
// is never the submitted plaintext.
func TestUserService_Register_HashesPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := application.NewUserService(repo, nil)

	u, err := svc.Register(context.Background(), application.RegisterInput{
		Username: "mike", Password: "hunter22", Birthmonth: "March",
		City: "Charlotte", State: "NC", PostalCode: "28202", Country: "USA",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, u.ID)

	stored := repo.byUsername["mike"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

// TestUserService_Login_Success verifies a correct password returns the
// stored row.
func TestUserService_Login_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := application.NewUserService(repo, nil)
	_, err := svc.Register(context.Background(), application.RegisterInput{Username: "mike", Password: "hunter22"})
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "mike", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "mike", u.Username)
}

// TestUserService_Login_NoEnumerationSignal verifies unknown-user and
// wrong-password failures are indistinguishable.
func TestUserService_Login_NoEnumerationSignal(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := application.NewUserService(repo, nil)
	_, err := svc.Register(context.Background(), application.RegisterInput{Username: "mike", Password: "hunter22"})
	require.NoError(t, err)

	_, errWrongPwd := svc.Login(context.Background(), "mike", "wrong")
	_, errNoUser := svc.Login(context.Background(), "nobody", "hunter22")

	require.ErrorIs(t, errWrongPwd, application.ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, application.ErrInvalidCredentials)
	assert.Equal(t, errWrongPwd.Error(), errNoUser.Error())
}

// TestUserService_Login_StoreFailure verifies a lookup failure is not
// reported as a credential rejection.
func TestUserService_Login_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	repo.getErr = errors.New("connection refused")
	svc := application.NewUserService(repo, nil)

	_, err := svc.Login(context.Background(), "mike", "hunter22")
	require.Error(t, err)
	assert.NotErrorIs(t, err, application.ErrInvalidCredentials)
}

// TestUserService_Register_InsertFailure verifies a store failure is
// returned, not swallowed.
func TestUserService_Register_InsertFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	repo.createErr = errors.New("connection reset")
	svc := application.NewUserService(repo, nil)

	_, err := svc.Register(context.Background(), application.RegisterInput{Username: "mike", Password: "pw"})
	require.Error(t, err)
}
