// Package memory provides an in-memory storage.Storage implementation. It is
// used by tests as a deterministic stand-in for PostgreSQL and keeps the same
// observable semantics: generated identifiers and timestamps on insert,
// duplicate-email detection, descending activity ordering.
//
// Transactions are simulated: every operation is already atomic under one
// mutex, Commit is a no-op and Rollback does not undo completed operations.
package memory

import (
	"context"
	"pragency/pkg/domain"
	"pragency/pkg/storage"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory implements storage.Storage over process-local maps.
type Memory struct {
	mu         sync.Mutex
	users      map[uuid.UUID]domain.User
	activities []domain.Activity
}

// New returns an empty in-memory storage.
func New() *Memory {
	return &Memory{
		users: make(map[uuid.UUID]domain.User),
	}
}

// Close releases nothing; it exists to satisfy storage.Storage.
func (m *Memory) Close() error { return nil }

// Begin returns a handle sharing the same state. See the package comment for
// the transaction semantics.
func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	return &memTx{Memory: m}, nil
}

// WithTx runs cb against the shared state and returns its error.
func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// memTx adds no-op Commit/Rollback to the shared state.
type memTx struct {
	*Memory
}

func (t *memTx) Commit() error   { return nil }
func (t *memTx) Rollback() error { return nil }

// StoreUser inserts a user, assigning an ID and creation timestamp. A taken
// email is reported as storage.ErrDuplicateEmail.
func (m *Memory) StoreUser(_ context.Context, user domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return nil, storage.ErrDuplicateEmail
		}
	}

	user.ID = domain.UserID(uuid.New())
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	m.users[uuid.UUID(user.ID)] = user

	return &user, nil
}

// UserByEmail fetches a user by email. Returns nil when not found.
func (m *Memory) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			u := user

			return &u, nil
		}
	}

	return nil, nil
}

// UserByID fetches a user by ID. Returns nil when not found.
func (m *Memory) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[uuid.UUID(id)]
	if !ok {
		return nil, nil
	}

	return &user, nil
}

// DeleteUser removes a user. It exists so tests can exercise the
// "user vanished after token issuance" path.
func (m *Memory) DeleteUser(id domain.UserID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, uuid.UUID(id))
}

// StoreActivities appends activity entries, assigning IDs and timestamps.
func (m *Memory) StoreActivities(_ context.Context, activities ...domain.Activity) ([]domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Activity, 0, len(activities))
	for _, activity := range activities {
		activity.ID = domain.ActivityID(uuid.New())
		if activity.CreatedAt.IsZero() {
			activity.CreatedAt = time.Now().UTC()
		}
		m.activities = append(m.activities, activity)
		out = append(out, activity)
	}

	return out, nil
}

// UserActivities returns up to limit entries for the user ordered by creation
// time descending. An empty kind matches all kinds.
func (m *Memory) UserActivities(_ context.Context,
	userID domain.UserID,
	kind domain.AgentKind,
	limit uint) ([]domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Activity
	for _, activity := range m.activities {
		if activity.UserID != userID {
			continue
		}
		if kind != "" && activity.Kind != kind {
			continue
		}
		out = append(out, activity)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if uint(len(out)) > limit {
		out = out[:limit]
	}

	return out, nil
}

// ActivityCountsByKind counts the user's entries per agent kind.
func (m *Memory) ActivityCountsByKind(_ context.Context,
	userID domain.UserID) (map[domain.AgentKind]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[domain.AgentKind]int64)
	for _, activity := range m.activities {
		if activity.UserID == userID {
			counts[activity.Kind]++
		}
	}

	return counts, nil
}

// Ensure Memory conforms to storage.Storage at compile time.
var _ storage.Storage = (*Memory)(nil)
