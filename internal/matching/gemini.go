package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jobproj/resume-builder/internal/types"
)

// DefaultModel is the Gemini model used for skill extraction.
const DefaultModel = "gemini-1.5-flash"

const extractPrompt = `You are a job posting analyzer. Extract the technical skills, tools,
frameworks and languages this job posting requires or prefers.

Return JSON only, in this exact shape:
{"skills": ["skill1", "skill2"]}

Rules:
- Use canonical short names ("PostgreSQL", not "PostgreSQL database experience").
- Include both required and preferred skills.
- Do not include soft skills or years of experience.

Job posting:
%s`

// GeminiMatcher extracts required skills from a job posting with Gemini and
// scores resumes against them.
type GeminiMatcher struct {
	client *genai.Client
	model  string
}

// NewGeminiMatcher creates a matcher backed by the Gemini API.
func NewGeminiMatcher(ctx context.Context, apiKey string) (*GeminiMatcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiMatcher{client: client, model: DefaultModel}, nil
}

// Close releases resources held by the matcher.
func (m *GeminiMatcher) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

// ExtractSkills asks the model for the posting's required skills.
func (m *GeminiMatcher) ExtractSkills(ctx context.Context, jobText string) ([]string, error) {
	model := m.client.GenerativeModel(m.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(extractPrompt, jobText)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	return parseSkillsResponse(cleanJSONBlock(text))
}

// Match extracts skills from the posting and scores the resume against them.
func (m *GeminiMatcher) Match(ctx context.Context, doc *types.ResumeDocument, jobText string) (Result, error) {
	required, err := m.ExtractSkills(ctx, jobText)
	if err != nil {
		return Result{}, err
	}
	return Score(doc, required), nil
}

// parseSkillsResponse decodes the model's JSON and drops blank entries.
func parseSkillsResponse(text string) ([]string, error) {
	var payload struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse skills response: %w", err)
	}

	skills := make([]string, 0, len(payload.Skills))
	for _, s := range payload.Skills {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills, nil
}

// extractTextFromResponse joins the text parts of a Gemini response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock strips markdown code fences the model sometimes adds even in
// JSON mode.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
