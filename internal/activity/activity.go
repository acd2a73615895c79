// Package activity records agent results in the per-user activity log and
// builds the dashboard overview from it.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"pragency/pkg/domain"
	"pragency/pkg/storage"
	"sort"
)

// recentLimit is how many entries the dashboard overview returns after
// merging the per-kind feeds.
const recentLimit = 10

// Overview is the per-user dashboard summary.
type Overview struct {
	// Counts holds the number of recorded entries per agent kind. Every kind
	// is present, zero when the user has no entries of that kind.
	Counts map[domain.AgentKind]int64
	// Recent holds the most recent entries across all kinds, newest first.
	Recent []domain.Activity
}

// Log is the activity log service.
type Log struct {
	storage storage.Storage
}

// New creates an activity log service backed by the given storage.
func New(storage storage.Storage) *Log {
	return &Log{storage: storage}
}

// Record appends one entry for the user with the result's kind tag, its
// one-line description and the full serialized payload.
func (l *Log) Record(ctx context.Context,
	userID domain.UserID,
	result domain.AgentResult) (*domain.Activity, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal %s result: %w", result.Kind(), err)
	}

	stored, err := l.storage.StoreActivities(ctx, domain.Activity{
		UserID:      userID,
		Kind:        result.Kind(),
		Description: result.Describe(),
		Result:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot store activity: %w", err)
	}

	return &stored[0], nil
}

// Recent returns up to limit entries for the user ordered newest first. An
// empty kind matches all kinds.
func (l *Log) Recent(ctx context.Context,
	userID domain.UserID,
	kind domain.AgentKind,
	limit uint) ([]domain.Activity, error) {
	activities, err := l.storage.UserActivities(ctx, userID, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("cannot list activities: %w", err)
	}

	return activities, nil
}

// BuildOverview assembles the dashboard summary: per-kind counts plus the
// most recent entries merged across every kind and re-sorted newest first.
func (l *Log) BuildOverview(ctx context.Context, userID domain.UserID) (*Overview, error) {
	stored, err := l.storage.ActivityCountsByKind(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cannot count activities: %w", err)
	}

	counts := make(map[domain.AgentKind]int64, len(domain.AgentKinds()))
	for _, kind := range domain.AgentKinds() {
		counts[kind] = stored[kind]
	}

	recent := make([]domain.Activity, 0, recentLimit*len(domain.AgentKinds()))
	for _, kind := range domain.AgentKinds() {
		activities, err := l.storage.UserActivities(ctx, userID, kind, recentLimit)
		if err != nil {
			return nil, fmt.Errorf("cannot list recent %s activities: %w", kind, err)
		}
		recent = append(recent, activities...)
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return &Overview{Counts: counts, Recent: recent}, nil
}
