// Package generator wraps the LLM behind the two calls the campaign
// workflow needs: writing campaign copy and rating a submitted campaign.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// CampaignRequest carries everything the prompt builder needs to ask the
// model for campaign copy.
type CampaignRequest struct {
	StaffName      string
	PromotionType  string
	Goal           string
	TargetAudience string
	Duration       string
	MonthName      string
	Dishes         []string
}

// Generator produces and rates marketing campaigns through a single LLM
type Generator struct {
	llm llms.Model
}

// NewGenerator creates a generator backed by the given model
func NewGenerator(llm llms.Model) *Generator {
	return &Generator{llm: llm}
}

// GenerateCampaign asks the model for campaign copy built around the dishes
// the kitchen can prepare today. The returned text is stored verbatim on the
// campaign record; a failed call is surfaced to the caller, never replaced
// with placeholder text.
func (g *Generator) GenerateCampaign(ctx context.Context, req CampaignRequest) (string, error) {
	completion, err := llms.GenerateFromSinglePrompt(ctx, g.llm, buildCampaignPrompt(req))
	if err != nil {
		return "", fmt.Errorf("campaign generation failed: %w", err)
	}
	return strings.TrimSpace(completion), nil
}

// RateCampaign asks the model to rate campaign text out of 10 and extracts
// the numeric score from its reply.
func (g *Generator) RateCampaign(ctx context.Context, campaignText string) (float64, error) {
	completion, err := llms.GenerateFromSinglePrompt(ctx, g.llm, buildScoringPrompt(campaignText))
	if err != nil {
		return 0, fmt.Errorf("campaign rating failed: %w", err)
	}
	return ExtractScore(completion)
}
