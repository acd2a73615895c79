package v1handler

import (
	"net/http"
	"pragency/internal/agent"
	"pragency/pkg/domain"

	"github.com/gin-gonic/gin"
)

type reputationScanRequest struct {
	CompanyName string   `json:"company_name" binding:"required"`
	URLs        []string `json:"urls" binding:"required,min=1"`
	Keywords    []string `json:"keywords"`
}

type briefGenerationRequest struct {
	CompanyName        string   `json:"company_name" binding:"required"`
	ProductDescription string   `json:"product_description" binding:"required"`
	TargetAudience     string   `json:"target_audience" binding:"required"`
	KeyMessages        []string `json:"key_messages" binding:"required,min=1"`
	CampaignGoals      []string `json:"campaign_goals" binding:"required,min=1"`
}

type stressTestRequest struct {
	BriefContent string `json:"brief_content" binding:"required"`
	CompanyName  string `json:"company_name" binding:"required"`
	Industry     string `json:"industry" binding:"required"`
}

type contentRepurposeRequest struct {
	OriginalContent string `json:"original_content" binding:"required"`
	TargetFormat    string `json:"target_format" binding:"required"`
	BrandVoice      string `json:"brand_voice" binding:"required"`
}

// runAgent persists a successful result to the activity log and returns it to
// the caller verbatim. Nothing is recorded when the agent failed.
func (h *Handler) runAgent(c *gin.Context, result domain.AgentResult, err error) {
	if err != nil {
		respondError(c, err)

		return
	}

	if _, err := h.deps.Activities.Record(c.Request.Context(), currentUser(c).ID, result); err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, result)
}

// reputationScan analyzes media sentiment for a company.
func (h *Handler) reputationScan(c *gin.Context) {
	var req reputationScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	result, err := h.deps.Agents.ScanReputation(c.Request.Context(), agent.ReputationScanRequest{
		CompanyName: req.CompanyName,
		URLs:        req.URLs,
		Keywords:    req.Keywords,
	})
	h.runAgent(c, deref(result), err)
}

// briefGeneration produces a PR brief.
func (h *Handler) briefGeneration(c *gin.Context) {
	var req briefGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	result, err := h.deps.Agents.GenerateBrief(c.Request.Context(), agent.BriefRequest{
		CompanyName:        req.CompanyName,
		ProductDescription: req.ProductDescription,
		TargetAudience:     req.TargetAudience,
		KeyMessages:        req.KeyMessages,
		CampaignGoals:      req.CampaignGoals,
	})
	h.runAgent(c, deref(result), err)
}

// stressTest generates journalist questions against a brief.
func (h *Handler) stressTest(c *gin.Context) {
	var req stressTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	result, err := h.deps.Agents.StressTest(c.Request.Context(), agent.StressTestRequest{
		BriefContent: req.BriefContent,
		CompanyName:  req.CompanyName,
		Industry:     req.Industry,
	})
	h.runAgent(c, deref(result), err)
}

// contentRepurpose rewrites content for a social media format.
func (h *Handler) contentRepurpose(c *gin.Context) {
	var req contentRepurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	result, err := h.deps.Agents.RepurposeContent(c.Request.Context(), agent.RepurposeRequest{
		OriginalContent: req.OriginalContent,
		TargetFormat:    req.TargetFormat,
		BrandVoice:      req.BrandVoice,
	})
	h.runAgent(c, deref(result), err)
}

// deref converts a typed result pointer to the AgentResult interface without
// wrapping a typed nil when the agent failed.
func deref[T domain.AgentResult](result *T) domain.AgentResult {
	if result == nil {
		return nil
	}

	return *result
}
