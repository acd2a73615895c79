package activity_test

import (
	"context"
	"encoding/json"
	"pragency/internal/activity"
	"pragency/pkg/domain"
	"pragency/pkg/storage/memory"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func storeUser(t *testing.T, mem *memory.Memory) domain.UserID {
	t.Helper()

	user, err := mem.StoreUser(context.Background(), domain.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		FullName:     "Test User",
	})
	require.NoError(t, err)

	return user.ID
}

func TestRecord(t *testing.T) {
	mem := memory.New()
	log := activity.New(mem)
	userID := storeUser(t, mem)

	result := domain.BriefResult{
		CompanyName:  "Acme",
		BriefID:      uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		BriefContent: "the brief",
	}

	entry, err := log.Record(context.Background(), userID, result)
	require.NoError(t, err)
	require.Equal(t, userID, entry.UserID)
	require.Equal(t, domain.AgentKindBrief, entry.Kind)
	require.Equal(t, "Generated brief for Acme", entry.Description)
	require.False(t, entry.CreatedAt.IsZero())

	var stored domain.BriefResult
	require.NoError(t, json.Unmarshal(entry.Result, &stored))
	require.Equal(t, result.BriefContent, stored.BriefContent)
}

func TestRecentFiltersByKind(t *testing.T) {
	mem := memory.New()
	log := activity.New(mem)
	userID := storeUser(t, mem)

	ctx := context.Background()

	_, err := log.Record(ctx, userID, domain.BriefResult{CompanyName: "Acme"})
	require.NoError(t, err)
	_, err = log.Record(ctx, userID, domain.StressTestResult{CompanyName: "Acme"})
	require.NoError(t, err)

	briefs, err := log.Recent(ctx, userID, domain.AgentKindBrief, 10)
	require.NoError(t, err)
	require.Len(t, briefs, 1)
	require.Equal(t, domain.AgentKindBrief, briefs[0].Kind)

	all, err := log.Recent(ctx, userID, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestBuildOverview(t *testing.T) {
	mem := memory.New()
	log := activity.New(mem)
	userID := storeUser(t, mem)
	otherID := storeUser(t, mem)

	ctx := context.Background()

	// Interleave twelve entries with distinct timestamps so the merged feed
	// has a well-defined order.
	base := time.Now().UTC().Add(-time.Hour)
	results := []domain.AgentResult{
		domain.ReputationScanResult{CompanyName: "Acme"},
		domain.BriefResult{CompanyName: "Acme"},
		domain.StressTestResult{CompanyName: "Acme"},
		domain.RepurposedContentResult{TargetFormat: "reel"},
	}
	for i := 0; i < 12; i++ {
		result := results[i%len(results)]
		payload, err := json.Marshal(result)
		require.NoError(t, err)

		_, err = mem.StoreActivities(ctx, domain.Activity{
			UserID:      userID,
			Kind:        result.Kind(),
			Description: result.Describe(),
			Result:      payload,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	// Another user's entries must not leak into the overview.
	_, err := log.Record(ctx, otherID, domain.BriefResult{CompanyName: "Other"})
	require.NoError(t, err)

	overview, err := log.BuildOverview(ctx, userID)
	require.NoError(t, err)

	require.Equal(t, int64(3), overview.Counts[domain.AgentKindReputationScan])
	require.Equal(t, int64(3), overview.Counts[domain.AgentKindBrief])
	require.Equal(t, int64(3), overview.Counts[domain.AgentKindStressTest])
	require.Equal(t, int64(3), overview.Counts[domain.AgentKindContentRepurpose])

	require.Len(t, overview.Recent, 10)
	for i := 1; i < len(overview.Recent); i++ {
		require.False(t, overview.Recent[i].CreatedAt.After(overview.Recent[i-1].CreatedAt))
	}
	// The two oldest entries fall off.
	require.Equal(t, base.Add(11*time.Minute), overview.Recent[0].CreatedAt)
	require.Equal(t, base.Add(2*time.Minute), overview.Recent[9].CreatedAt)
}

func TestBuildOverviewEmpty(t *testing.T) {
	mem := memory.New()
	log := activity.New(mem)
	userID := storeUser(t, mem)

	overview, err := log.BuildOverview(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, overview.Counts, 4)
	for kind, count := range overview.Counts {
		require.Zero(t, count, kind)
	}
	require.Empty(t, overview.Recent)
}
