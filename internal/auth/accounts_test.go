package auth_test

import (
	"context"
	"pragency/internal/auth"
	"pragency/pkg/serrors"
	"pragency/pkg/storage/memory"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAccounts(t *testing.T) (*auth.Accounts, *memory.Memory) {
	t.Helper()

	mem := memory.New()

	return auth.NewAccounts(mem, newTestTokens(t, defaultOptions())), mem
}

func registerParams() auth.RegisterParams {
	return auth.RegisterParams{
		Email:    "pr@acme.example",
		Password: "hunter22",
		FullName: "Road Runner",
		Company:  "Acme",
	}
}

func TestRegister(t *testing.T) {
	accounts, _ := newTestAccounts(t)

	user, token, err := accounts.Register(context.Background(), registerParams())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "pr@acme.example", user.Email)
	require.Equal(t, "Road Runner", user.FullName)
	require.Equal(t, "Acme", user.Company)
	require.False(t, user.CreatedAt.IsZero())

	// The password is stored hashed, never verbatim.
	require.NotEqual(t, "hunter22", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))

	// The issued token resolves back to the registered user.
	resolved, err := accounts.Authenticate(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	accounts, _ := newTestAccounts(t)

	_, _, err := accounts.Register(context.Background(), registerParams())
	require.NoError(t, err)

	_, _, err = accounts.Register(context.Background(), registerParams())
	require.ErrorIs(t, err, auth.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	accounts, _ := newTestAccounts(t)

	user, _, err := accounts.Register(context.Background(), registerParams())
	require.NoError(t, err)

	token, err := accounts.Login(context.Background(), "pr@acme.example", "hunter22")
	require.NoError(t, err)

	resolved, err := accounts.Authenticate(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	accounts, _ := newTestAccounts(t)

	_, _, err := accounts.Register(context.Background(), registerParams())
	require.NoError(t, err)

	_, wrongPassword := accounts.Login(context.Background(), "pr@acme.example", "wrong")
	require.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)

	_, unknownEmail := accounts.Login(context.Background(), "nobody@acme.example", "hunter22")
	require.ErrorIs(t, unknownEmail, auth.ErrInvalidCredentials)

	// Same message for both so callers cannot probe which emails exist.
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthenticateDeletedUser(t *testing.T) {
	accounts, mem := newTestAccounts(t)

	user, token, err := accounts.Register(context.Background(), registerParams())
	require.NoError(t, err)

	mem.DeleteUser(user.ID)

	_, err = accounts.Authenticate(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAuthenticateBadToken(t *testing.T) {
	accounts, _ := newTestAccounts(t)

	_, err := accounts.Authenticate(context.Background(), "not-a-token")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestUserByID(t *testing.T) {
	accounts, _ := newTestAccounts(t)

	user, _, err := accounts.Register(context.Background(), registerParams())
	require.NoError(t, err)

	got, err := accounts.UserByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, got.Email)
}
