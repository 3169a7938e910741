package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Dosada05/debate-arena/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient talks to the Gemini REST API. It is the only place in the
// codebase that builds prompts or parses model output.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
}

func NewGeminiClient(cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &GeminiClient{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     cfg.Logger,
	}, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("gemini: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func (c *GeminiClient) GenerateSpeech(ctx context.Context, sc SpeechContext) (string, error) {
	text, err := c.generate(ctx, buildDebaterPrompt(sc))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini: blank speech")
	}
	return text, nil
}

func (c *GeminiClient) Evaluate(ctx context.Context, speechText string, ec EvaluationContext) (Evaluation, error) {
	text, err := c.generate(ctx, buildEvaluationPrompt(speechText, ec))
	if err != nil {
		return Evaluation{}, err
	}

	var eval Evaluation
	if err := json.Unmarshal([]byte(extractJSON(text)), &eval); err != nil {
		return Evaluation{}, fmt.Errorf("gemini: parse evaluation: %w", err)
	}
	if eval.OverallScore < 1 || eval.OverallScore > 100 {
		return Evaluation{}, fmt.Errorf("gemini: overall score %d out of range", eval.OverallScore)
	}
	return eval, nil
}

func (c *GeminiClient) JudgePOI(ctx context.Context, poiText string, pc POIContext) (POIRuling, error) {
	text, err := c.generate(ctx, buildPOIPrompt(poiText, pc))
	if err != nil {
		return POIRuling{}, err
	}
	return parsePOIResponse(text, c.logger), nil
}

func (c *GeminiClient) GenerateMotion(ctx context.Context, format, skillLevel string) (string, error) {
	prompt := fmt.Sprintf(
		"Generate one debate motion suitable for a %s-level %s debate. Respond with the motion only, starting with 'This house'.",
		skillLevel, format,
	)
	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	motion := strings.TrimSpace(strings.Split(text, "\n")[0])
	if motion == "" {
		return "", fmt.Errorf("gemini: blank motion")
	}
	return motion, nil
}

func (c *GeminiClient) EvaluateLesson(ctx context.Context, lesson models.Lesson, answer string) (LessonFeedback, error) {
	text, err := c.generate(ctx, buildLessonPrompt(lesson, answer))
	if err != nil {
		return LessonFeedback{}, err
	}
	var fb LessonFeedback
	if err := json.Unmarshal([]byte(extractJSON(text)), &fb); err != nil {
		return LessonFeedback{}, fmt.Errorf("gemini: parse lesson feedback: %w", err)
	}
	if fb.Points < 0 {
		fb.Points = 0
	}
	if fb.Points > lesson.PointsPossible {
		fb.Points = lesson.PointsPossible
	}
	return fb, nil
}

// parsePOIResponse extracts the DECISION/RESPONSE lines from the model's
// reply. Anything it cannot understand becomes a polite decline, so a
// malformed reply can never block the debate.
func parsePOIResponse(text string, logger *slog.Logger) POIRuling {
	ruling := DeclinedPOI()

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "DECISION:"):
			decision := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, "DECISION:")))
			decision = strings.Trim(decision, "[]")
			if decision == string(models.POIAccept) || decision == string(models.POIDecline) {
				ruling.Decision = models.POIDecision(decision)
			} else {
				logger.Warn("invalid POI decision, defaulting to DECLINE", slog.String("decision", decision))
			}
		case strings.HasPrefix(line, "RESPONSE:"):
			if resp := strings.TrimSpace(strings.TrimPrefix(line, "RESPONSE:")); resp != "" {
				ruling.Response = resp
			}
		}
	}
	return ruling
}

// extractJSON strips markdown code fences the model sometimes wraps
// around JSON payloads.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if i := strings.LastIndex(text, "```"); i >= 0 {
			text = text[:i]
		}
	}
	return strings.TrimSpace(text)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
