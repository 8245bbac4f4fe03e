package user

import (
	"testing"

	"stayhaven/models"
	"stayhaven/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserRepo is an in-memory UserRepository used by the service tests.
type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (f *memUserRepo) Create(u *models.User) error {
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *memUserRepo) GetByIdentifier(identifier string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == identifier || u.UserName == identifier {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func validRegistration() RegisterInput {
	return RegisterInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pw",
	}
}

func TestRegister(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	resp, err := svc.Register(validRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, models.RoleClient, resp.User.Role)
	assert.NotEmpty(t, resp.Token)
	// The password never leaves the service in the clear.
	assert.NotEqual(t, "s3cret-pw", resp.User.PasswordHash)
	assert.NotEmpty(t, resp.User.PasswordHash)

	claims, err := utils.ExtractClaims(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, models.RoleClient, claims.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	in := validRegistration()
	in.UserName = ""
	_, err := svc.Register(in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validRegistration()
	in.Email = ""
	_, err = svc.Register(in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validRegistration()
	in.Password = "short"
	_, err = svc.Register(in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validRegistration()
	in.Role = "superuser"
	_, err = svc.Register(in)
	assert.ErrorAs(t, err, &InvalidInputError{})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(validRegistration())
	assert.ErrorAs(t, err, &DuplicateEmailError{})
}

func TestAuthenticate(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}
	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	// By email.
	resp, err := svc.Authenticate("alice@example.com", "s3cret-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	// By username.
	_, err = svc.Authenticate("alice", "s3cret-pw")
	assert.NoError(t, err)

	_, err = svc.Authenticate("alice@example.com", "wrong-pw")
	assert.ErrorAs(t, err, &AuthError{})

	_, err = svc.Authenticate("nobody@example.com", "s3cret-pw")
	assert.ErrorAs(t, err, &AuthError{})
}

func TestGetUserByID(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}
	resp, err := svc.Register(validRegistration())
	require.NoError(t, err)

	u, err := svc.GetUserByID(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)

	_, err = svc.GetUserByID("missing")
	assert.ErrorAs(t, err, &NotFoundError{})
}
