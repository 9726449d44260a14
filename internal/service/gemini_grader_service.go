package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Lorikeets/config"
	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// FallbackFeedback is returned whenever grading cannot be completed.
const FallbackFeedback = "Unable to generate feedback."

// GraderService grades a finalized user answer against the question's
// reference answer.
type GraderService interface {
	// GradeAnswer always returns a usable GradeResult. When the AI call or
	// response parsing fails, the result is the fallback grade
	// {0, FallbackFeedback} and the returned error says why the fallback
	// was substituted; the error is informational and must not be treated
	// as a failed evaluation.
	GradeAnswer(ctx context.Context, question, referenceAnswer, userAnswer string) (model.GradeResult, error)
}

// contentGenerator is the single-shot text generation call behind the
// grader, kept narrow so tests can substitute a fake for the live client.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	model *genai.GenerativeModel
}

func (g *geminiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}

type graderService struct {
	generator contentGenerator
	cfg       *config.Config
}

func NewGeminiGraderService(cfg *config.Config) (GraderService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GraderService will return fallback grades only.")
		return &graderService{cfg: cfg}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	gm := client.GenerativeModel("gemini-1.5-flash")
	return &graderService{generator: &geminiGenerator{model: gm}, cfg: cfg}, nil
}

// buildGradingPrompt instructs the model to compare the user's answer to the
// reference answer and reply with nothing but a minified single-line JSON
// object carrying "ratings" (0-10 integer) and "feedback".
func buildGradingPrompt(question, userAnswer, referenceAnswer string) string {
	return fmt.Sprintf(`Question: %q
User Answer: %q
Correct Answer: %q

Compare the user's answer to the correct answer.
Give a score out of 10 as "ratings" and detailed feedback as "feedback".

ONLY return valid minified JSON. Do NOT include newlines in the JSON.
Example: {"ratings":8,"feedback":"Good answer but expand more."}
`, question, userAnswer, referenceAnswer)
}

func fallbackGrade() model.GradeResult {
	return model.GradeResult{Rating: 0, Feedback: FallbackFeedback}
}

func (s *graderService) GradeAnswer(ctx context.Context, question, referenceAnswer, userAnswer string) (model.GradeResult, error) {
	if s.generator == nil {
		err := fmt.Errorf("gemini client not initialized")
		log.Warn().Msg("GradeAnswer: Gemini client missing, returning fallback grade.")
		return fallbackGrade(), err
	}

	raw, err := s.generator.GenerateContent(ctx, buildGradingPrompt(question, userAnswer, referenceAnswer))
	if err != nil {
		log.Error().Err(err).Msg("GradeAnswer: AI service call failed, returning fallback grade.")
		return fallbackGrade(), err
	}

	obj, err := ExtractJSONObject(raw)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("GradeAnswer: could not extract JSON from AI response, returning fallback grade.")
		return fallbackGrade(), err
	}

	grade, err := gradeFromFields(obj)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("GradeAnswer: AI response fields invalid, returning fallback grade.")
		return fallbackGrade(), err
	}
	return grade, nil
}

// gradeFromFields maps the extracted object's "ratings"/"feedback" fields
// onto a GradeResult, rejecting anything outside the response contract.
func gradeFromFields(obj map[string]any) (model.GradeResult, error) {
	ratingsVal, ok := obj["ratings"]
	if !ok {
		return model.GradeResult{}, fmt.Errorf(`response is missing the "ratings" field`)
	}
	ratingsNum, ok := ratingsVal.(float64)
	if !ok {
		return model.GradeResult{}, fmt.Errorf(`"ratings" is not a number: %v`, ratingsVal)
	}
	if ratingsNum != math.Trunc(ratingsNum) {
		return model.GradeResult{}, fmt.Errorf(`"ratings" is not an integer: %v`, ratingsNum)
	}
	rating := int(ratingsNum)
	if rating < 0 || rating > 10 {
		return model.GradeResult{}, fmt.Errorf(`"ratings" is out of the 0-10 range: %d`, rating)
	}

	feedback, ok := obj["feedback"].(string)
	if !ok {
		return model.GradeResult{}, fmt.Errorf(`response is missing a string "feedback" field`)
	}

	return model.GradeResult{Rating: rating, Feedback: feedback}, nil
}
