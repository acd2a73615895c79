// Package agent implements the four PR agents. Each agent validates its
// request, interpolates the fields into a fixed prompt template, calls the
// text-completion provider once, and wraps the generated text together with
// deterministic locally computed metadata into a result.
//
// The placeholder statistics (sentiment score, mention counts, engagement
// estimate) are derived from the request shape only, never from the generated
// text.
package agent

import (
	"context"
	"pragency/pkg/domain"
	"pragency/pkg/serrors"
)

// ErrGeneration indicates the text-completion provider failed or is not
// configured. No partial result is produced and nothing is retried.
var ErrGeneration = serrors.NewKind("GENERATION_FAILED")

// ReputationScanRequest asks for a media sentiment analysis of a company.
type ReputationScanRequest struct {
	CompanyName string
	// URLs are the media sources to cover. Only their count feeds the
	// mention statistics.
	URLs []string
	// Keywords optionally focus the analysis. Empty means general sentiment.
	Keywords []string
}

// BriefRequest asks for a PR brief.
type BriefRequest struct {
	CompanyName        string
	ProductDescription string
	TargetAudience     string
	KeyMessages        []string
	CampaignGoals      []string
}

// StressTestRequest asks for journalist-style questions against a brief.
type StressTestRequest struct {
	BriefContent string
	CompanyName  string
	Industry     string
}

// RepurposeRequest asks for content rewritten for a social media format.
type RepurposeRequest struct {
	OriginalContent string
	// TargetFormat is one of reel, carousel, thread or linkedin_post. Unknown
	// values are accepted and get a generic instruction.
	TargetFormat string
	BrandVoice   string
}

// Service runs the four agents. Implementations are stateless between calls;
// every invocation is independent.
type Service interface {
	// ScanReputation analyzes media sentiment for a company.
	ScanReputation(ctx context.Context, req ReputationScanRequest) (*domain.ReputationScanResult, error)
	// GenerateBrief produces a PR brief.
	GenerateBrief(ctx context.Context, req BriefRequest) (*domain.BriefResult, error)
	// StressTest generates tough journalist questions for a brief.
	StressTest(ctx context.Context, req StressTestRequest) (*domain.StressTestResult, error)
	// RepurposeContent rewrites content for a target social format.
	RepurposeContent(ctx context.Context, req RepurposeRequest) (*domain.RepurposedContentResult, error)
}
