package postgres

import (
	"database/sql"
	"encoding/json"
	"pragency/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	FullName     string         `db:"full_name"`
	Company      sql.NullString `db:"company"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		FullName:     p.FullName,
		Company:      p.Company.String,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FullName:     user.FullName,
		Company: sql.NullString{
			String: user.Company,
			Valid:  user.Company != "",
		},
		CreatedAt: user.CreatedAt,
	}
}

type PgActivity struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Kind        string          `db:"kind"`
	Description string          `db:"description"`
	Result      json.RawMessage `db:"result"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgActivity) ToDomain() *domain.Activity {
	return &domain.Activity{
		ID:          domain.ActivityID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Kind:        domain.AgentKind(p.Kind),
		Description: p.Description,
		Result:      p.Result,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgActivity) FromDomain(activity domain.Activity) {
	*p = PgActivity{
		ID:          uuid.UUID(activity.ID),
		UserID:      uuid.UUID(activity.UserID),
		Kind:        string(activity.Kind),
		Description: activity.Description,
		Result:      activity.Result,
		CreatedAt:   activity.CreatedAt,
	}
}

func domainActivitiesToPg(activities []domain.Activity) []PgActivity {
	out := make([]PgActivity, len(activities))
	for i := range out {
		out[i].FromDomain(activities[i])
	}

	return out
}

func pgActivitiesToDomain(activities []PgActivity) []domain.Activity {
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		out = append(out, *a.ToDomain())
	}

	return out
}
