package scoring

import (
	"errors"
	"fmt"
	"time"

	"chatfuture/internal/catalog"
	"chatfuture/internal/model"
)

// ErrNoAnswers is returned when a session has no answers in any instrument
var ErrNoAnswers = errors.New("no answers recorded")

// Engine scores sessions against a catalog
type Engine struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewEngine creates a scoring engine
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c, now: time.Now}
}

// Score computes the four ScoreSets in catalog order. Partial sessions give
// zero-filled sets for unanswered instruments.
func (e *Engine) Score(answers []model.Answer) ([]model.ScoreSet, error) {
	ids := e.catalog.InstrumentIDs()
	sets := make([]model.ScoreSet, 0, len(ids))
	for _, id := range ids {
		inst, err := e.catalog.Instrument(id)
		if err != nil {
			return nil, err
		}
		scorer, err := ForKind(inst.Kind)
		if err != nil {
			return nil, fmt.Errorf("instrument %s: %w", id, err)
		}
		sets = append(sets, scorer.Score(inst, answers))
	}
	return sets, nil
}

// Evaluate scores a session and aggregates the result
func (e *Engine) Evaluate(session *model.Session) (*model.AssessmentResult, error) {
	sets, err := e.Score(session.Answers)
	if err != nil {
		return nil, err
	}

	answered := 0
	for _, s := range sets {
		answered += s.Answered
	}
	if answered == 0 {
		return nil, ErrNoAnswers
	}

	result := &model.AssessmentResult{
		SessionID:    session.ID,
		UserID:       session.UserID,
		CalculatedAt: e.now(),
	}
	for _, s := range sets {
		switch s.Instrument {
		case model.InstrumentInterest:
			result.Interest = s
		case model.InstrumentPersonality:
			result.Personality = s
		case model.InstrumentValues:
			result.Values = s
		case model.InstrumentAptitude:
			result.Aptitude = s
		}
	}
	result.OverallScore = OverallScore(sets)
	result.Observations = Observations(e.catalog, sets)
	return result, nil
}
