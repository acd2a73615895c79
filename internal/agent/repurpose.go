package agent

import (
	"context"
	"fmt"
	"pragency/pkg/domain"
	"time"
)

const repurposePromptTemplate = `Repurpose this content for %s:
Original Content: %s
Brand Voice: %s

Instructions: %s

Make it engaging, platform-appropriate, and maintain the brand voice.
Include relevant hashtags and engagement strategies.`

// contentPreviewLength is the size of the original-content preview in runes.
const contentPreviewLength = 200

// formatInstructions maps target formats to per-platform prompt instructions.
// Unknown formats fall back to the generic instruction.
var formatInstructions = map[string]string{
	"reel":          "Create a 30-60 second video script with hooks, key points, and call-to-action",
	"carousel":      "Create 5-7 slides with headlines and key points for each slide",
	"thread":        "Create a Twitter/X thread with 8-12 tweets, including hooks and engagement",
	"linkedin_post": "Create a professional LinkedIn post with storytelling and clear value proposition",
}

const genericFormatInstruction = "Create engaging social media content"

func repurposePlatformTips(targetFormat string) []string {
	return []string{
		"Optimized for " + targetFormat + " format",
		"Includes engagement hooks",
		"Brand voice maintained",
		"Call-to-action included",
	}
}

// estimatedEngagement labels short-form viral formats High and everything
// else Medium.
func estimatedEngagement(targetFormat string) string {
	if targetFormat == "reel" || targetFormat == "thread" {
		return "High"
	}

	return "Medium"
}

// contentPreview truncates content to contentPreviewLength runes. The ellipsis
// is appended unconditionally.
func contentPreview(content string) string {
	runes := []rune(content)
	if len(runes) > contentPreviewLength {
		runes = runes[:contentPreviewLength]
	}

	return string(runes) + "..."
}

// RepurposeContent rewrites a piece of content for a social media format.
func (a *Agents) RepurposeContent(ctx context.Context,
	req RepurposeRequest) (*domain.RepurposedContentResult, error) {
	if err := requireFields(
		stringField("original_content", req.OriginalContent),
		stringField("target_format", req.TargetFormat),
		stringField("brand_voice", req.BrandVoice),
	); err != nil {
		return nil, err
	}

	instruction, ok := formatInstructions[req.TargetFormat]
	if !ok {
		instruction = genericFormatInstruction
	}

	prompt := fmt.Sprintf(repurposePromptTemplate,
		req.TargetFormat, req.OriginalContent, req.BrandVoice, instruction)

	content, err := a.generate(ctx, domain.AgentKindContentRepurpose, prompt)
	if err != nil {
		return nil, err
	}

	return &domain.RepurposedContentResult{
		OriginalContentPreview: contentPreview(req.OriginalContent),
		TargetFormat:           req.TargetFormat,
		BrandVoice:             req.BrandVoice,
		RepurposedContent:      content,
		CreatedAt:              time.Now().UTC(),
		EstimatedEngagement:    estimatedEngagement(req.TargetFormat),
		PlatformTips:           repurposePlatformTips(req.TargetFormat),
	}, nil
}
