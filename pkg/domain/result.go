package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ActivityID uniquely identifies one recorded agent invocation.
type ActivityID uuid.UUID

func (id ActivityID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in the canonical UUID form for JSON and text
// encodings.
func (id ActivityID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a canonical UUID form.
func (id *ActivityID) UnmarshalText(data []byte) error {
	parsed, err := uuid.ParseBytes(data)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = ActivityID(parsed)

	return nil
}

// AgentKind tags which agent produced a result. It doubles as the
// discriminator for the activity log.
type AgentKind string

const (
	// AgentKindReputationScan tags media reputation analyses.
	AgentKindReputationScan AgentKind = "reputation_scan"
	// AgentKindBrief tags generated PR briefs.
	AgentKindBrief AgentKind = "pr_brief"
	// AgentKindStressTest tags message stress tests.
	AgentKindStressTest AgentKind = "stress_test"
	// AgentKindContentRepurpose tags repurposed content pieces.
	AgentKindContentRepurpose AgentKind = "content_repurpose"
)

// AgentKinds lists every known kind in a stable order. Dashboard counts and
// recent-activity merging iterate over this.
func AgentKinds() []AgentKind {
	return []AgentKind{
		AgentKindReputationScan,
		AgentKindBrief,
		AgentKindStressTest,
		AgentKindContentRepurpose,
	}
}

// DisplayName returns the human-readable label used in dashboard activity feeds.
func (k AgentKind) DisplayName() string {
	switch k {
	case AgentKindReputationScan:
		return "Reputation Scan"
	case AgentKindBrief:
		return "PR Brief"
	case AgentKindStressTest:
		return "Stress Test"
	case AgentKindContentRepurpose:
		return "Content Repurpose"
	default:
		return string(k)
	}
}

// AgentResult is implemented by every agent result variant. The set of
// implementations is closed; results are validated at construction and never
// mutated afterwards.
type AgentResult interface {
	// Kind returns the discriminator tag of the variant.
	Kind() AgentKind
	// Describe returns a one-line human summary for the activity feed.
	Describe() string
}

// ReputationScanResult is the outcome of a media reputation scan.
//
// SentimentScore and the mention counts are deterministic placeholders
// computed from the request shape, not from the generated text. The mention
// partition intentionally does not always sum to TotalMentions; callers must
// not "fix" this.
type ReputationScanResult struct {
	CompanyName  string    `json:"company_name"`
	AnalysisDate time.Time `json:"analysis_date"`

	SentimentScore   float64 `json:"sentiment_score"`
	TotalMentions    int     `json:"total_mentions"`
	PositiveMentions int     `json:"positive_mentions"`
	NegativeMentions int     `json:"negative_mentions"`
	NeutralMentions  int     `json:"neutral_mentions"`

	KeyThemes        []string `json:"key_themes"`
	DetailedAnalysis string   `json:"detailed_analysis"`
	Recommendations  []string `json:"recommendations"`
}

func (ReputationScanResult) Kind() AgentKind { return AgentKindReputationScan }

func (r ReputationScanResult) Describe() string { return "Analyzed " + r.CompanyName }

// BriefResult is a generated PR brief.
type BriefResult struct {
	CompanyName string    `json:"company_name"`
	BriefID     string    `json:"brief_id"`
	CreatedAt   time.Time `json:"created_at"`

	BriefContent     string   `json:"brief_content"`
	StoryAngles      []string `json:"story_angles"`
	RecommendedMedia []string `json:"recommended_media"`
}

func (BriefResult) Kind() AgentKind { return AgentKindBrief }

func (r BriefResult) Describe() string { return "Generated brief for " + r.CompanyName }

// StressTestResult is a generated set of journalist questions for a brief.
type StressTestResult struct {
	CompanyName string    `json:"company_name"`
	TestID      string    `json:"test_id"`
	CreatedAt   time.Time `json:"created_at"`
	Industry    string    `json:"industry"`

	Questions         string   `json:"questions"`
	OverallDifficulty string   `json:"overall_difficulty"`
	PreparationTips   []string `json:"preparation_tips"`
}

func (StressTestResult) Kind() AgentKind { return AgentKindStressTest }

func (r StressTestResult) Describe() string { return "Stress tested messaging for " + r.CompanyName }

// RepurposedContentResult is a piece of content rewritten for a social format.
type RepurposedContentResult struct {
	OriginalContentPreview string    `json:"original_content_preview"`
	TargetFormat           string    `json:"target_format"`
	BrandVoice             string    `json:"brand_voice"`
	RepurposedContent      string    `json:"repurposed_content"`
	CreatedAt              time.Time `json:"created_at"`

	EstimatedEngagement string   `json:"estimated_engagement"`
	PlatformTips        []string `json:"platform_tips"`
}

func (RepurposedContentResult) Kind() AgentKind { return AgentKindContentRepurpose }

func (r RepurposedContentResult) Describe() string { return "Repurposed content for " + r.TargetFormat }

// Activity is one entry in the per-user activity log: a recorded agent
// invocation together with its full result payload. Entries are append-only
// and owned by exactly one user.
type Activity struct {
	// ID is the unique identifier of the entry.
	ID ActivityID `json:"id"`
	// UserID is the owner; it references an existing user at creation time.
	UserID UserID `json:"user_id"`

	// Kind tags which agent produced the payload.
	Kind AgentKind `json:"kind"`
	// Description is the one-line summary derived from the result at record time.
	Description string `json:"description"`
	// Result is the full result variant, serialized as JSON.
	Result json.RawMessage `json:"result"`

	// CreatedAt is the time the entry was recorded.
	CreatedAt time.Time `json:"created_at"`
}
