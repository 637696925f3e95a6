package service

import (
	"context"
	"fmt"
	"time"

	"chatfuture/internal/catalog"
	"chatfuture/internal/logging"
	"chatfuture/internal/model"

	"go.uber.org/zap"
)

// AnswerService records answers against the active session
type AnswerService struct {
	sessions *SessionService
	catalog  *catalog.Catalog
	logger   *logging.Logger
	notifier Notifier
	now      func() time.Time
}

// NewAnswerService creates a new answer service
func NewAnswerService(sessions *SessionService, c *catalog.Catalog, logger *logging.Logger) *AnswerService {
	return &AnswerService{
		sessions: sessions,
		catalog:  c,
		logger:   logger.Named("answer"),
		now:      time.Now,
	}
}

// SetNotifier sets the notifier for WebSocket progress events
func (s *AnswerService) SetNotifier(n Notifier) {
	s.notifier = n
}

// SaveAnswer stores the choice for a question, replacing any earlier answer to it.
// The session must exist and the option must belong to the question.
func (s *AnswerService) SaveAnswer(ctx context.Context, userID string, req *model.AnswerRequest) (*model.Session, error) {
	sess, err := s.sessions.Update(ctx, userID, func(sess *model.Session) error {
		if _, err := s.catalog.Option(req.InstrumentID, req.QuestionID, req.OptionID); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
		}

		now := s.now()
		kept := sess.Answers[:0]
		for _, a := range sess.Answers {
			if a.QuestionID != req.QuestionID {
				kept = append(kept, a)
			}
		}
		sess.Answers = append(kept, model.Answer{
			QuestionID:   req.QuestionID,
			OptionID:     req.OptionID,
			InstrumentID: req.InstrumentID,
			Timestamp:    now,
		})
		sess.LastUpdateTime = now
		return nil
	})
	if err != nil {
		s.logger.Debug(ctx, "answer rejected",
			zap.String("question_id", req.QuestionID),
			zap.String("option_id", req.OptionID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug(ctx, "answer saved",
		zap.String("session_id", sess.ID),
		zap.String("instrument", string(req.InstrumentID)),
		zap.String("question_id", req.QuestionID))

	if s.notifier != nil {
		s.notifier.NotifyUser(sess.UserID, MsgAnswerSaved, map[string]interface{}{
			"sessionId":  sess.ID,
			"questionId": req.QuestionID,
			"answered":   len(sess.AnswersFor(req.InstrumentID)),
		})
	}
	return sess, nil
}

// CompleteInstrument marks an instrument completed and notifies listeners
func (s *AnswerService) CompleteInstrument(ctx context.Context, userID string, instrument model.InstrumentID) (*model.Progress, error) {
	if err := s.sessions.MarkInstrumentCompleted(ctx, userID, instrument); err != nil {
		return nil, err
	}
	progress, err := s.sessions.Progress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.NotifyUser(userID, MsgInstrumentCompleted, map[string]interface{}{
			"instrument":   instrument,
			"allCompleted": progress.AllCompleted,
		})
	}
	return progress, nil
}
