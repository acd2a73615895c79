package agent

import (
	"context"
	"fmt"
	"pragency/pkg/domain"
	"strings"
	"time"

	"github.com/google/uuid"
)

const briefPromptTemplate = `Create a comprehensive PR brief for:
Company: %s
Product/Service: %s
Target Audience: %s
Key Messages: %s
Campaign Goals: %s

Generate a professional PR brief including:
1. Executive Summary
2. Background & Context
3. Objectives & Goals
4. Target Audience Analysis
5. Key Messages & Positioning
6. Media Strategy & Tactics
7. Timeline & Milestones
8. Success Metrics
9. Potential Story Angles (5-7 unique angles)
10. Media Contact Strategy

Make it comprehensive and actionable for PR professionals.`

func briefStoryAngles() []string {
	return []string{
		"Innovation leadership angle",
		"Customer success story angle",
		"Industry transformation angle",
		"Founder journey angle",
		"Future trend angle",
	}
}

func briefRecommendedMedia() []string {
	return []string{
		"TechCrunch", "Forbes", "Industry publications",
		"Local business journals", "Podcasts",
	}
}

// GenerateBrief produces a PR brief for a campaign. The story angles and
// recommended media lists are fixed.
func (a *Agents) GenerateBrief(ctx context.Context, req BriefRequest) (*domain.BriefResult, error) {
	if err := requireFields(
		stringField("company_name", req.CompanyName),
		stringField("product_description", req.ProductDescription),
		stringField("target_audience", req.TargetAudience),
		listField("key_messages", req.KeyMessages),
		listField("campaign_goals", req.CampaignGoals),
	); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(briefPromptTemplate,
		req.CompanyName,
		req.ProductDescription,
		req.TargetAudience,
		strings.Join(req.KeyMessages, ", "),
		strings.Join(req.CampaignGoals, ", "))

	content, err := a.generate(ctx, domain.AgentKindBrief, prompt)
	if err != nil {
		return nil, err
	}

	return &domain.BriefResult{
		CompanyName:      req.CompanyName,
		BriefID:          uuid.NewString(),
		CreatedAt:        time.Now().UTC(),
		BriefContent:     content,
		StoryAngles:      briefStoryAngles(),
		RecommendedMedia: briefRecommendedMedia(),
	}, nil
}
