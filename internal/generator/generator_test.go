package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tmc/langchaingo/llms"
)

// MockLLM is a mock implementation of the LLM interface
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llms.ContentResponse), args.Error(1)
}

func textResponse(text string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: text}},
	}
}

func TestGenerateCampaign(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("GenerateContent", mock.Anything, mock.Anything).
		Return(textResponse("  Two-for-one pizza week!  "), nil)

	g := NewGenerator(mockLLM)
	text, err := g.GenerateCampaign(context.Background(), CampaignRequest{
		StaffName:     "Priya",
		PromotionType: "Buy 1 Get 1",
		Goal:          "Reduce Food Wastage",
		MonthName:     "July 2025",
		Dishes:        []string{"Margherita Pizza", "Garlic Bread"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Two-for-one pizza week!", text, "output is trimmed")
}

func TestGenerateCampaignError(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("GenerateContent", mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded"))

	g := NewGenerator(mockLLM)
	_, err := g.GenerateCampaign(context.Background(), CampaignRequest{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestRateCampaign(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("GenerateContent", mock.Anything, mock.Anything).
		Return(textResponse("I would give this 7.333 overall."), nil)

	g := NewGenerator(mockLLM)
	score, err := g.RateCampaign(context.Background(), "some campaign text")

	assert.NoError(t, err)
	assert.Equal(t, 7.33, score)
}

func TestRateCampaignNoNumber(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("GenerateContent", mock.Anything, mock.Anything).
		Return(textResponse("excellent work"), nil)

	g := NewGenerator(mockLLM)
	_, err := g.RateCampaign(context.Background(), "some campaign text")

	assert.ErrorIs(t, err, ErrNoScore)
}

func TestCampaignPromptContents(t *testing.T) {
	prompt := buildCampaignPrompt(CampaignRequest{
		StaffName:     "Priya",
		PromotionType: "Happy Hour",
		Goal:          "Boost Weekend Sales",
		MonthName:     "July 2025",
		Dishes:        []string{"Tomato Soup", "Beef Burger"},
	})

	assert.Contains(t, prompt, "Priya")
	assert.Contains(t, prompt, "Happy Hour")
	assert.Contains(t, prompt, "Tomato Soup, Beef Burger")
	assert.Contains(t, prompt, "All Customers", "audience defaults when unset")
	assert.Contains(t, prompt, "Limited Time", "duration defaults when unset")
	assert.True(t, strings.Contains(prompt, "ONLY the dishes listed above"))
}
