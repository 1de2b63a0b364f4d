package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// OpenAIProvider implements Provider on top of the OpenAI chat API via
// langchaingo.
type OpenAIProvider struct {
	llm *openai.LLM
}

func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize openai client: %w", err)
	}
	return &OpenAIProvider{llm: llm}, nil
}

func (p *OpenAIProvider) GenerateProject(ctx context.Context, interests, preferredStack string) (*GeneratedProject, error) {
	raw, err := llms.GenerateFromSinglePrompt(ctx, p.llm, buildProjectPrompt(interests, preferredStack),
		llms.WithTemperature(0.8),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, fmt.Errorf("project generation failed: %w", err)
	}

	var generated GeneratedProject
	if err := decodeJSON(raw, &generated); err != nil {
		return nil, err
	}
	if generated.Title == "" || len(generated.Tasks) == 0 {
		return nil, fmt.Errorf("incomplete project payload from model")
	}
	return &generated, nil
}

func (p *OpenAIProvider) ChatWithMentor(ctx context.Context, messages []ChatMessage, project ProjectContext) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, buildMentorSystemPrompt(project)),
	}
	for _, m := range messages {
		role := schema.ChatMessageTypeHuman
		if m.Role == "assistant" {
			role = schema.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, m.Content))
	}

	resp, err := p.llm.GenerateContent(ctx, content,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(1000),
	)
	if err != nil {
		return "", fmt.Errorf("mentor chat failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return resp.Choices[0].Content, nil
}

func (p *OpenAIProvider) GeneratePortfolio(ctx context.Context, project ProjectContext, tasksCompleted, totalTasks int) (*PortfolioData, error) {
	raw, err := llms.GenerateFromSinglePrompt(ctx, p.llm, buildPortfolioPrompt(project, tasksCompleted, totalTasks),
		llms.WithTemperature(0.6),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, fmt.Errorf("portfolio generation failed: %w", err)
	}

	var data PortfolioData
	if err := decodeJSON(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (p *OpenAIProvider) GenerateSkillScore(ctx context.Context, studentName string, projects []ProjectSummary) (*SkillScoreData, error) {
	raw, err := llms.GenerateFromSinglePrompt(ctx, p.llm, buildSkillScorePrompt(studentName, projects),
		llms.WithTemperature(0.5),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, fmt.Errorf("skill score generation failed: %w", err)
	}

	var data SkillScoreData
	if err := decodeJSON(raw, &data); err != nil {
		return nil, err
	}
	if data.Score < 0 || data.Score > 100 {
		return nil, fmt.Errorf("skill score out of range: %d", data.Score)
	}
	return &data, nil
}

// decodeJSON parses model output into dst. Models occasionally wrap JSON
// in a markdown fence even in JSON mode; strip it before decoding.
func decodeJSON(raw string, dst interface{}) error {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), dst); err != nil {
		return fmt.Errorf("malformed JSON from model: %w", err)
	}
	return nil
}
