package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/skillforge/skillforge/config"
	"github.com/skillforge/skillforge/internal/apperror"
	"github.com/skillforge/skillforge/internal/model"
)

// AnalysisEngine is the injected AI capability consumed by the report
// aggregator and the skill test engine. Implementations must return
// structured (JSON-decoded) results and wrap failures in AnalysisError.
type AnalysisEngine interface {
	AnalyzeResume(ctx context.Context, text string) (map[string]any, error)
	AnalyzeProfile(ctx context.Context, profile string) (map[string]any, error)
	Summarize(ctx context.Context, resumeAnalysis, githubAnalysis map[string]any) (map[string]any, error)
	GenerateTest(ctx context.Context, resumeCtx, githubCtx, summaryCtx string, numQuestions int, roleHint string) ([]model.GeneratedQuestion, error)
	FinalAnalysis(ctx context.Context, resumeCtx, githubCtx, summaryCtx string, percentage float64, verdict string) (map[string]any, error)
}

type geminiAnalysisEngine struct {
	client  *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiAnalysisEngine(cfg *config.Config) (AnalysisEngine, error) {
	timeout := time.Duration(cfg.AITimeoutSec) * time.Second

	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. AnalysisEngine will be non-functional.")
		return &geminiAnalysisEngine{client: nil, timeout: timeout}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	return &geminiAnalysisEngine{
		client:  client.GenerativeModel(cfg.GeminiModel),
		timeout: timeout,
	}, nil
}

func (e *geminiAnalysisEngine) AnalyzeResume(ctx context.Context, text string) (map[string]any, error) {
	var prompt strings.Builder
	prompt.WriteString("You are a technical recruiter reviewing a candidate's resume.\n")
	prompt.WriteString("Analyze the resume text below and return ONLY a JSON object with the keys: ")
	prompt.WriteString(`"skills" (array of strings), "experience_years" (number), "strengths" (array of strings), "weaknesses" (array of strings), "summary" (string).`)
	prompt.WriteString("\n\nResume text:\n---\n")
	prompt.WriteString(text)
	prompt.WriteString("\n---\n")

	return e.generateJSON(ctx, prompt.String())
}

func (e *geminiAnalysisEngine) AnalyzeProfile(ctx context.Context, profile string) (map[string]any, error) {
	var prompt strings.Builder
	prompt.WriteString("You are a technical recruiter reviewing a candidate's GitHub profile data.\n")
	prompt.WriteString("Analyze the raw profile data below and return ONLY a JSON object with the keys: ")
	prompt.WriteString(`"activity_level" (string), "main_languages" (array of strings), "notable_projects" (array of strings), "summary" (string).`)
	prompt.WriteString("\n\nProfile data:\n---\n")
	prompt.WriteString(profile)
	prompt.WriteString("\n---\n")

	return e.generateJSON(ctx, prompt.String())
}

func (e *geminiAnalysisEngine) Summarize(ctx context.Context, resumeAnalysis, githubAnalysis map[string]any) (map[string]any, error) {
	resumeJSON, _ := json.Marshal(resumeAnalysis)
	githubJSON, _ := json.Marshal(githubAnalysis)

	var prompt strings.Builder
	prompt.WriteString("You are evaluating a candidate from two evidence sources. Either may be empty.\n")
	prompt.WriteString("Combine them into a single assessment and return ONLY a JSON object with the keys: ")
	prompt.WriteString(`"overall_assessment" (string), "recommended_roles" (array of strings), "confidence" (string: low|medium|high).`)
	prompt.WriteString("\n\nResume analysis:\n")
	prompt.Write(resumeJSON)
	prompt.WriteString("\n\nGitHub analysis:\n")
	prompt.Write(githubJSON)
	prompt.WriteString("\n")

	return e.generateJSON(ctx, prompt.String())
}

// generateTestPayload mirrors the JSON shape the model is asked to produce.
type generateTestPayload struct {
	Questions []model.GeneratedQuestion `json:"questions"`
}

func (e *geminiAnalysisEngine) GenerateTest(ctx context.Context, resumeCtx, githubCtx, summaryCtx string, numQuestions int, roleHint string) ([]model.GeneratedQuestion, error) {
	var prompt strings.Builder
	prompt.WriteString("You are an expert technical interviewer.\n")
	prompt.WriteString(fmt.Sprintf("Create exactly %d multiple-choice questions assessing a candidate for the role: %s.\n", numQuestions, roleHint))
	prompt.WriteString("Use the candidate context below to calibrate difficulty; the context may be empty.\n\n")
	prompt.WriteString("Candidate resume analysis:\n")
	prompt.WriteString(resumeCtx)
	prompt.WriteString("\n\nCandidate GitHub analysis:\n")
	prompt.WriteString(githubCtx)
	prompt.WriteString("\n\nRecommendation summary:\n")
	prompt.WriteString(summaryCtx)
	prompt.WriteString("\n\nReturn ONLY JSON in this exact shape:\n")
	prompt.WriteString(`{"questions": [{"prompt": "...", "options": {"A": "...", "B": "...", "C": "...", "D": "..."}, "correct_answer": "A"}]}`)
	prompt.WriteString("\n")

	raw, err := e.generateText(ctx, prompt.String())
	if err != nil {
		return nil, err
	}

	var payload generateTestPayload
	if err := json.Unmarshal([]byte(stripJSONWrapping(raw)), &payload); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Failed to parse generated test payload")
		return nil, apperror.NewAnalysis(fmt.Errorf("unparsable test payload: %w", err))
	}
	if len(payload.Questions) == 0 {
		return nil, apperror.NewAnalysis(fmt.Errorf("model returned no questions"))
	}
	return payload.Questions, nil
}

func (e *geminiAnalysisEngine) FinalAnalysis(ctx context.Context, resumeCtx, githubCtx, summaryCtx string, percentage float64, verdict string) (map[string]any, error) {
	var prompt strings.Builder
	prompt.WriteString("You are producing a final verification verdict for a candidate.\n")
	prompt.WriteString(fmt.Sprintf("The candidate scored %.1f%% on a proctored skill test and the verdict is %s.\n", percentage, verdict))
	prompt.WriteString("Considering the evidence below, return ONLY a JSON object with the keys: ")
	prompt.WriteString(`"verdict" (string), "skill_level" (string), "recommendation" (string), "improvement_areas" (array of strings).`)
	prompt.WriteString("\n\nResume analysis:\n")
	prompt.WriteString(resumeCtx)
	prompt.WriteString("\n\nGitHub analysis:\n")
	prompt.WriteString(githubCtx)
	prompt.WriteString("\n\nPrior summary:\n")
	prompt.WriteString(summaryCtx)
	prompt.WriteString("\n")

	return e.generateJSON(ctx, prompt.String())
}

func (e *geminiAnalysisEngine) generateJSON(ctx context.Context, prompt string) (map[string]any, error) {
	raw, err := e.generateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stripJSONWrapping(raw)), &result); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Failed to parse model output as JSON")
		return nil, apperror.NewAnalysis(fmt.Errorf("unparsable model output: %w", err))
	}
	return result, nil
}

func (e *geminiAnalysisEngine) generateText(ctx context.Context, prompt string) (string, error) {
	if e.client == nil {
		return "", apperror.NewAnalysis(fmt.Errorf("gemini client not initialized"))
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API call failed")
		return "", apperror.NewAnalysis(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", apperror.NewAnalysis(fmt.Errorf("gemini returned no content"))
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", apperror.NewAnalysis(fmt.Errorf("gemini returned no text content"))
	}
	return text.String(), nil
}

// stripJSONWrapping removes markdown code fences and any prose surrounding
// the first JSON object or array in a model response.
func stripJSONWrapping(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	var end int
	if s[start] == '{' {
		end = strings.LastIndex(s, "}")
	} else {
		end = strings.LastIndex(s, "]")
	}
	if end <= start {
		return s
	}
	return s[start : end+1]
}
