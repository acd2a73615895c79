package storage

import (
	"context"
	"pragency/pkg/domain"
)

// ActivityStorage defines persistence operations for the append-only per-user
// activity log. Entries are immutable once stored.
type ActivityStorage interface {
	// StoreActivities inserts one or more activity entries and returns the
	// stored rows as they exist in the database (including generated fields).
	StoreActivities(ctx context.Context, activities ...domain.Activity) ([]domain.Activity, error)
	// UserActivities returns up to limit entries for that user and kind,
	// ordered by creation time descending. An empty kind matches all kinds.
	UserActivities(ctx context.Context,
		userID domain.UserID,
		kind domain.AgentKind,
		limit uint) ([]domain.Activity, error)
	// ActivityCountsByKind returns the number of entries the user has recorded
	// per agent kind. Kinds with no entries are absent from the map.
	ActivityCountsByKind(ctx context.Context, userID domain.UserID) (map[domain.AgentKind]int64, error)
}
