package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mcirin3/sports-info/internal/models"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"

	systemPrompt = "You are a concise basketball analyst. Write a short matchup preview " +
		"grounded only in the numbers provided. No betting advice, no hedging filler."
)

// Config holds client settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float32
	MaxTokens   int
}

// Client wraps an OpenAI-compatible chat API for matchup previews.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

// New creates a client from config.
func New(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("insight: API key is required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	temp := cfg.Temperature
	if temp < 0 {
		temp = 0
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 400
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	openaiCfg := openai.DefaultConfig(apiKey)
	openaiCfg.BaseURL = baseURL

	return &Client{
		api:         openai.NewClientWithConfig(openaiCfg),
		model:       model,
		temperature: temp,
		maxTokens:   maxTokens,
		timeout:     timeout,
	}, nil
}

// MatchupInput is everything the preview prompt gets to see.
type MatchupInput struct {
	HomeName     string
	AwayName     string
	Home         models.TeamFormSummary
	Away         models.TeamFormSummary
	HomeStanding *models.StandingRow
	AwayStanding *models.StandingRow
	Estimate     models.WinProbabilityEstimate
}

// Preview generates a short matchup writeup from the aggregated numbers.
func (c *Client) Preview(ctx context.Context, in MatchupInput) (string, error) {
	if c == nil {
		return "", fmt.Errorf("insight: client is nil")
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(in)},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	resp, err := c.api.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("insight: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(in MatchupInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matchup: %s (away) at %s (home).\n\n", in.AwayName, in.HomeName)
	writeTeamLines(&b, in.HomeName, in.Home, in.HomeStanding)
	writeTeamLines(&b, in.AwayName, in.Away, in.AwayStanding)
	fmt.Fprintf(&b, "Model win probability: %s %.0f%%, %s %.0f%%.\n",
		in.HomeName, in.Estimate.Home*100, in.AwayName, in.Estimate.Away*100)
	b.WriteString("\nWrite 3-4 sentences on how these teams match up.")
	return b.String()
}

func writeTeamLines(b *strings.Builder, name string, form models.TeamFormSummary, standing *models.StandingRow) {
	fmt.Fprintf(b, "%s last %d: %s, %.1f points for, %.1f against.\n",
		name, form.Sample, form.RecordLastN, form.PFAvg, form.PAAvg)
	if standing != nil {
		fmt.Fprintf(b, "%s season record %d-%d", name, standing.Wins, standing.Losses)
		if standing.ConfRank > 0 {
			fmt.Fprintf(b, ", conference seed %d", standing.ConfRank)
		}
		b.WriteString(".\n")
	}
	b.WriteString("\n")
}
