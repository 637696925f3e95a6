package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"chatfuture/internal/catalog"
	"chatfuture/internal/config"
	"chatfuture/internal/logging"
	"chatfuture/internal/model"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrMalformedReport means the model replied but no report JSON could be extracted
var ErrMalformedReport = errors.New("malformed report response")

var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// ReportGenerator produces the career narrative for a scored assessment.
// fallback is true when the returned report is built in rather than generated.
type ReportGenerator interface {
	Generate(ctx context.Context, result *model.AssessmentResult, info *model.BasicInfo) (report *model.CareerReport, fallback bool, err error)
}

// LLMReportGenerator calls an OpenAI-compatible chat completion API (DeepSeek by default)
type LLMReportGenerator struct {
	config  config.AIConfig
	client  *openai.Client
	catalog *catalog.Catalog
	logger  *logging.Logger
}

// NewLLMReportGenerator creates a generator. Without an API key it serves mock reports.
func NewLLMReportGenerator(cfg config.AIConfig, c *catalog.Catalog, logger *logging.Logger) *LLMReportGenerator {
	g := &LLMReportGenerator{config: cfg, catalog: c, logger: logger.Named("report_generator")}
	if cfg.IsEnabled() {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		clientCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
		clientCfg.HTTPClient = &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond}
		g.client = openai.NewClientWithConfig(clientCfg)
	}
	return g
}

// Generate builds the prompt, calls the model and parses the reply.
// Transport errors are returned; unparseable replies fall back to DefaultReport.
func (g *LLMReportGenerator) Generate(ctx context.Context, result *model.AssessmentResult, info *model.BasicInfo) (*model.CareerReport, bool, error) {
	if g.client == nil {
		g.logger.Info(ctx, "no AI API key configured, serving mock report")
		return mockReport(g.catalog, result), true, nil
	}

	prompt := BuildReportPrompt(g.catalog, result, info)
	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.config.Temperature,
		MaxTokens:   g.config.MaxTokens,
	})
	if err != nil {
		g.logger.Error(ctx, "report generation call failed",
			zap.String("provider", g.config.Provider),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, false, fmt.Errorf("%s API call failed: %w", g.config.Provider, err)
	}
	if len(resp.Choices) == 0 {
		return nil, false, fmt.Errorf("%s returned no choices", g.config.Provider)
	}

	g.logger.Debug(ctx, "report generated",
		zap.String("model", g.config.Model),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("finish_reason", string(resp.Choices[0].FinishReason)))

	report, err := ParseReport(resp.Choices[0].Message.Content)
	if err != nil {
		g.logger.Warn(ctx, "failed to parse report response, using default report", zap.Error(err))
		return DefaultReport(), true, nil
	}
	return report, false, nil
}

// ParseReport extracts the outermost JSON object from a model reply
func ParseReport(content string) (*model.CareerReport, error) {
	match := jsonObjectPattern.FindString(strings.TrimSpace(content))
	if match == "" {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedReport)
	}
	var report model.CareerReport
	if err := json.Unmarshal([]byte(match), &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}
	return &report, nil
}
