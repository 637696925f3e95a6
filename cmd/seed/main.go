// Command seed fills a complete assessment for one identity and prints the
// scored result. It uses the configured storage backend, so the data is
// visible to a running server sharing that backend.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"chatfuture/internal/app"
	"chatfuture/internal/config"
	"chatfuture/internal/logging"
	"chatfuture/internal/model"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", os.Getenv("CHATFUTURE_CONFIG"), "path to YAML config file")
	userID := flag.String("user", "demo", "identity to seed")
	seed := flag.Int64("seed", 1, "random seed for answer selection")
	withReport := flag.Bool("report", false, "also generate the career report (uses the configured AI provider)")
	flag.Parse()

	if err := run(*configPath, *userID, *seed, *withReport); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath, userID string, seed int64, withReport bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	rng := rand.New(rand.NewSource(seed))
	a.Scoring.StartAssessment(ctx, userID)

	for _, id := range a.Catalog.InstrumentIDs() {
		questions, err := a.Catalog.Questions(id)
		if err != nil {
			return err
		}
		for _, q := range questions {
			opt := q.Options[rng.Intn(len(q.Options))]
			if _, err := a.Answers.SaveAnswer(ctx, userID, &model.AnswerRequest{
				QuestionID:   q.ID,
				OptionID:     opt.ID,
				InstrumentID: id,
			}); err != nil {
				return fmt.Errorf("answer %s: %w", q.ID, err)
			}
		}
		if _, err := a.Answers.CompleteInstrument(ctx, userID, id); err != nil {
			return err
		}
	}
	if err := a.Sessions.MarkCompleted(ctx, userID); err != nil {
		return err
	}

	result, err := a.Scoring.Calculate(ctx, userID)
	if err != nil {
		return err
	}
	logger.Info(ctx, "seeded assessment",
		zap.String("user_id", userID),
		zap.Float64("overall_score", result.OverallScore))

	out := struct {
		Result  *model.AssessmentResult `json:"result"`
		Summary *model.ResultSummary    `json:"summary"`
		Report  *model.ReportRecord     `json:"report,omitempty"`
	}{Result: result, Summary: a.Scoring.Summarize(result)}

	if withReport {
		out.Report, err = a.Reports.Generate(ctx, userID)
		if err != nil {
			return err
		}
		if out.Report.Status == model.ReportFailed {
			logger.Warn(ctx, "report generation failed", zap.String("error", out.Report.Error))
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
