package service

import (
	"context"

	"chatfuture/internal/catalog"
	"chatfuture/internal/logging"
	"chatfuture/internal/model"
	"chatfuture/internal/scoring"
	"chatfuture/internal/storage"

	"go.uber.org/zap"
)

// ScoringService turns the active session into an AssessmentResult and keeps the latest one
type ScoringService struct {
	sessions *SessionService
	engine   *scoring.Engine
	catalog  *catalog.Catalog
	store    storage.Store
	logger   *logging.Logger

	freshStart []func(ctx context.Context, userID string)
}

// NewScoringService creates a new scoring service
func NewScoringService(sessions *SessionService, c *catalog.Catalog, store storage.Store, logger *logging.Logger) *ScoringService {
	return &ScoringService{
		sessions: sessions,
		engine:   scoring.NewEngine(c),
		catalog:  c,
		store:    store,
		logger:   logger.Named("scoring"),
	}
}

// Calculate scores the active session and stores the result.
// Partial sessions are allowed; a session without any answer is not.
func (s *ScoringService) Calculate(ctx context.Context, userID string) (*model.AssessmentResult, error) {
	sess := s.sessions.Current(ctx, userID)
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	result, err := s.engine.Evaluate(sess)
	if err != nil {
		s.logger.Warn(ctx, "scoring failed", zap.String("session_id", sess.ID), zap.Error(err))
		return nil, err
	}

	if err := storage.NewUserData(s.store, userID).Save(ctx, storage.KeyResults, result); err != nil {
		s.logger.Error(ctx, "failed to persist result", zap.String("session_id", sess.ID), zap.Error(err))
	}

	s.logger.Info(ctx, "assessment scored",
		zap.String("session_id", sess.ID),
		zap.Int("answers", len(sess.Answers)),
		zap.Float64("overall_score", result.OverallScore))
	return result, nil
}

// LatestResult returns the stored result, or nil when there is none or it cannot be read
func (s *ScoringService) LatestResult(ctx context.Context, userID string) *model.AssessmentResult {
	var result model.AssessmentResult
	ok, err := storage.NewUserData(s.store, userID).Get(ctx, storage.KeyResults, &result)
	if err != nil {
		s.logger.Warn(ctx, "failed to load result", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	return &result
}

// ClearResults removes the stored result
func (s *ScoringService) ClearResults(ctx context.Context, userID string) {
	if err := storage.NewUserData(s.store, userID).Delete(ctx, storage.KeyResults); err != nil {
		s.logger.Error(ctx, "failed to delete result", zap.Error(err))
	}
}

// OnFreshStart registers fn to run when StartAssessment discards a user's data.
// Register during setup only.
func (s *ScoringService) OnFreshStart(fn func(ctx context.Context, userID string)) {
	s.freshStart = append(s.freshStart, fn)
}

// StartAssessment discards the previous session, result and derived data and starts fresh
func (s *ScoringService) StartAssessment(ctx context.Context, userID string) *model.Session {
	s.ClearResults(ctx, userID)
	for _, fn := range s.freshStart {
		fn(ctx, userID)
	}
	return s.sessions.Reset(ctx, userID)
}

// Summarize builds the results page view of a result
func (s *ScoringService) Summarize(result *model.AssessmentResult) *model.ResultSummary {
	return Summarize(s.catalog, result)
}
