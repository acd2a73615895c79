package agent

import (
	"context"
	"fmt"
	"pragency/pkg/domain"
	"time"

	"github.com/google/uuid"
)

const stressTestPromptTemplate = `You are an experienced investigative journalist. Review this PR brief and create tough but fair questions:

Company: %s
Industry: %s
Brief Content: %s

Generate 10 challenging questions that a journalist might ask, including:
- Skeptical questions about claims
- Competitive positioning challenges
- Potential controversy areas
- Market validation questions
- Financial sustainability questions

For each question, also provide:
1. The question category (skeptical, competitive, financial, etc.)
2. Difficulty level (1-5)
3. Suggested response strategy

Format as JSON for easy parsing.`

const stressTestDifficulty = "Medium-High"

func stressTestPreparationTips() []string {
	return []string{
		"Prepare specific examples and case studies",
		"Have financial metrics ready",
		"Practice concise, confident responses",
		"Anticipate follow-up questions",
	}
}

// StressTest generates journalist-style questions challenging a PR brief. The
// difficulty label and preparation tips are fixed.
func (a *Agents) StressTest(ctx context.Context,
	req StressTestRequest) (*domain.StressTestResult, error) {
	if err := requireFields(
		stringField("brief_content", req.BriefContent),
		stringField("company_name", req.CompanyName),
		stringField("industry", req.Industry),
	); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(stressTestPromptTemplate, req.CompanyName, req.Industry, req.BriefContent)

	questions, err := a.generate(ctx, domain.AgentKindStressTest, prompt)
	if err != nil {
		return nil, err
	}

	return &domain.StressTestResult{
		CompanyName:       req.CompanyName,
		TestID:            uuid.NewString(),
		CreatedAt:         time.Now().UTC(),
		Industry:          req.Industry,
		Questions:         questions,
		OverallDifficulty: stressTestDifficulty,
		PreparationTips:   stressTestPreparationTips(),
	}, nil
}
