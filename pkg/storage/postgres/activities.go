package postgres

import (
	"context"
	"fmt"
	"pragency/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	activitiesTable = "activities"
)

// StoreActivities inserts one or more activity entries and returns the stored
// rows with their generated identifiers and timestamps.
func (p *PgSQL) StoreActivities(ctx context.Context, activities ...domain.Activity) ([]domain.Activity, error) {
	if len(activities) == 0 {
		return nil, nil
	}

	pgActivities := domainActivitiesToPg(activities)

	var result []PgActivity
	if err := p.Builder.Insert(activitiesTable).
		Rows(pgActivities).
		Returning(&PgActivity{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store activities into pg: %w", err)
	}

	return pgActivitiesToDomain(result), nil
}

// UserActivities returns up to limit entries for the user ordered by
// created_at DESC, id DESC. If kind is non-empty, results are filtered to
// entries with the given kind.
func (p *PgSQL) UserActivities(ctx context.Context,
	userID domain.UserID,
	kind domain.AgentKind,
	limit uint) ([]domain.Activity, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if kind != "" {
		w = append(w, goqu.I("kind").Eq(string(kind)))
	}

	ds := p.Builder.From(activitiesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit)

	var rows []PgActivity
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user activities from pg: %w", err)
	}

	return pgActivitiesToDomain(rows), nil
}

// ActivityCountsByKind aggregates the user's entry counts per agent kind.
func (p *PgSQL) ActivityCountsByKind(ctx context.Context,
	userID domain.UserID) (map[domain.AgentKind]int64, error) {
	var rows []struct {
		Kind  string `db:"kind"`
		Count int64  `db:"count"`
	}
	if err := p.Builder.From(activitiesTable).
		Select(goqu.I("kind"), goqu.COUNT("*").As("count")).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		GroupBy(goqu.I("kind")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count user activities in pg: %w", err)
	}

	counts := make(map[domain.AgentKind]int64, len(rows))
	for _, row := range rows {
		counts[domain.AgentKind(row.Kind)] = row.Count
	}

	return counts, nil
}
