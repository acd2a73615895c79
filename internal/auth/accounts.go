package auth

import (
	"context"
	"errors"
	"fmt"
	"pragency/pkg/domain"
	"pragency/pkg/serrors"
	"pragency/pkg/storage"

	"golang.org/x/crypto/bcrypt"
)

// Semantic error kinds for the authentication flows. Handlers map both to
// client-error responses.
var (
	// ErrDuplicateEmail indicates a registration attempt with an email that is
	// already taken.
	ErrDuplicateEmail = serrors.NewKind("EMAIL_TAKEN")
	// ErrInvalidCredentials indicates a failed login. Unknown email and wrong
	// password are deliberately indistinguishable.
	ErrInvalidCredentials = serrors.NewKind("INVALID_CREDENTIALS")
)

// RegisterParams carries the fields required to create an account.
type RegisterParams struct {
	Email    string
	Password string
	FullName string
	Company  string
}

// Accounts implements registration, login and bearer-token resolution against
// the credential store.
type Accounts struct {
	storage storage.Storage
	tokens  *Tokens
}

// NewAccounts creates an Accounts service backed by the provided storage and
// token service.
func NewAccounts(storage storage.Storage, tokens *Tokens) *Accounts {
	return &Accounts{
		storage: storage,
		tokens:  tokens,
	}
}

// invalidCredentials builds the login failure error. A single constructor
// keeps the unknown-email and wrong-password paths byte-identical.
func invalidCredentials() error {
	return serrors.With(ErrInvalidCredentials, "incorrect email or password")
}

// Register creates a new user with a bcrypt-hashed password and issues an
// access token for it. The email uniqueness check and the insert run in one
// transaction; a concurrent duplicate insert is caught by the unique index
// and reported identically.
func (a *Accounts) Register(ctx context.Context, params RegisterParams) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("could not hash password: %w", err)
	}

	var user *domain.User
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.UserByEmail(ctx, params.Email)
		if err != nil {
			return fmt.Errorf("could not check email uniqueness: %w", err)
		}
		if existing != nil {
			return serrors.With(ErrDuplicateEmail, "email already registered")
		}

		stored, err := tx.StoreUser(ctx, domain.User{
			Email:        params.Email,
			PasswordHash: string(hash),
			FullName:     params.FullName,
			Company:      params.Company,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateEmail) {
				return serrors.Wrap(ErrDuplicateEmail, err, "email already registered")
			}

			return fmt.Errorf("could not store user: %w", err)
		}
		user = stored

		return nil
	}); err != nil {
		return nil, "", err
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies the password against the stored bcrypt hash and issues an
// access token. A nonexistent email and a wrong password return the same
// error by design.
func (a *Accounts) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return "", invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", invalidCredentials()
	}

	return a.tokens.Issue(user.ID)
}

// Authenticate validates a bearer token and resolves the embedded user. A user
// deleted after token issuance fails exactly like a bad token; no distinct
// error class exists.
func (a *Accounts) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := a.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "could not validate credentials")
	}

	return user, nil
}

// UserByID fetches a user profile, failing with a not-found error when the
// user does not exist.
func (a *Accounts) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}
