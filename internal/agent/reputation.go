package agent

import (
	"context"
	"fmt"
	"pragency/pkg/domain"
	"strings"
	"time"
)

const reputationPromptTemplate = `Analyze the media sentiment for company: %s
Keywords to focus on: %s

Provide a detailed sentiment analysis including:
1. Overall sentiment score (1-10, where 10 is most positive)
2. Key themes mentioned
3. Positive mentions
4. Negative mentions
5. Neutral mentions
6. Recommendations for improvement

Format the response as JSON with clear sections.`

const reputationSentimentScore = 7.5

// Mention counts are partitioned from the source URL count by fixed ratios.
// Each share is truncated independently, so the three shares may not sum to
// the total. That is intentional and part of the recorded payload shape.
const (
	positiveMentionRatio = 0.6
	negativeMentionRatio = 0.2
	neutralMentionRatio  = 0.2
)

func reputationKeyThemes() []string {
	return []string{"innovation", "customer service", "product quality"}
}

func reputationRecommendations() []string {
	return []string{
		"Amplify positive customer service stories",
		"Address pricing concerns proactively",
		"Leverage innovation narrative in tech publications",
	}
}

// ScanReputation analyzes media sentiment for a company. The sentiment score
// and the mention counts are placeholders derived from the request shape; only
// DetailedAnalysis carries generated text.
func (a *Agents) ScanReputation(ctx context.Context,
	req ReputationScanRequest) (*domain.ReputationScanResult, error) {
	if err := requireFields(
		stringField("company_name", req.CompanyName),
		listField("urls", req.URLs),
	); err != nil {
		return nil, err
	}

	keywords := "general sentiment"
	if len(req.Keywords) > 0 {
		keywords = strings.Join(req.Keywords, ", ")
	}

	prompt := fmt.Sprintf(reputationPromptTemplate, req.CompanyName, keywords)

	analysis, err := a.generate(ctx, domain.AgentKindReputationScan, prompt)
	if err != nil {
		return nil, err
	}

	total := len(req.URLs)

	return &domain.ReputationScanResult{
		CompanyName:      req.CompanyName,
		AnalysisDate:     time.Now().UTC(),
		SentimentScore:   reputationSentimentScore,
		TotalMentions:    total,
		PositiveMentions: int(float64(total) * positiveMentionRatio),
		NegativeMentions: int(float64(total) * negativeMentionRatio),
		NeutralMentions:  int(float64(total) * neutralMentionRatio),
		KeyThemes:        reputationKeyThemes(),
		DetailedAnalysis: analysis,
		Recommendations:  reputationRecommendations(),
	}, nil
}
