package v1handler

import (
	"net/http"
	"pragency/pkg/domain"
	"time"

	"github.com/gin-gonic/gin"
)

// dashboardResponse is the overview payload: who the user is, how many
// results each agent produced for them and their latest activity entries.
type dashboardResponse struct {
	User             dashboardUser       `json:"user"`
	Stats            dashboardStats      `json:"stats"`
	RecentActivities []dashboardActivity `json:"recent_activities"`
}

type dashboardUser struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

type dashboardStats struct {
	TotalAnalyses      int64 `json:"total_analyses"`
	TotalBriefs        int64 `json:"total_briefs"`
	TotalStressTests   int64 `json:"total_stress_tests"`
	TotalContentPieces int64 `json:"total_content_pieces"`
}

type dashboardActivity struct {
	ID          domain.ActivityID `json:"id"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
}

// dashboardOverview returns per-kind activity counts and the most recent
// entries across all agents.
func (h *Handler) dashboardOverview(c *gin.Context) {
	user := currentUser(c)

	overview, err := h.deps.Activities.BuildOverview(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)

		return
	}

	company := user.Company
	if company == "" {
		company = "Not specified"
	}

	recent := make([]dashboardActivity, 0, len(overview.Recent))
	for _, entry := range overview.Recent {
		recent = append(recent, dashboardActivity{
			ID:          entry.ID,
			Type:        entry.Kind.DisplayName(),
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, dashboardResponse{
		User: dashboardUser{
			Name:    user.FullName,
			Company: company,
		},
		Stats: dashboardStats{
			TotalAnalyses:      overview.Counts[domain.AgentKindReputationScan],
			TotalBriefs:        overview.Counts[domain.AgentKindBrief],
			TotalStressTests:   overview.Counts[domain.AgentKindStressTest],
			TotalContentPieces: overview.Counts[domain.AgentKindContentRepurpose],
		},
		RecentActivities: recent,
	})
}
