// Package scoring turns recorded answers into per-dimension scores.
//
// Each instrument declares a ScoringKind and exactly one Scorer exists per kind.
// Scorers are pure: the same answers in any order always give the same ScoreSet.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"chatfuture/internal/model"
)

var ErrUnknownKind = errors.New("unknown scoring kind")

// likertSpan is the distance between the lowest (-2) and highest (+2) Likert value
const likertSpan = 4

// Scorer computes a ScoreSet for one instrument. Answers of other instruments,
// unknown questions and unknown options are ignored.
type Scorer interface {
	Kind() model.ScoringKind
	Score(inst *model.Instrument, answers []model.Answer) model.ScoreSet
}

// ForKind returns the scorer for a scoring kind
func ForKind(kind model.ScoringKind) (Scorer, error) {
	switch kind {
	case model.ScoringLikertPercent:
		return likertPercent{}, nil
	case model.ScoringLikertReversible:
		return reversibleLikert{}, nil
	case model.ScoringWeighted:
		return weighted{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// resolved is an answer matched against the catalog
type resolved struct {
	question *model.Question
	option   *model.Option
}

func resolve(inst *model.Instrument, answers []model.Answer) []resolved {
	out := make([]resolved, 0, len(answers))
	for _, a := range answers {
		if a.InstrumentID != inst.ID {
			continue
		}
		q, ok := inst.Question(a.QuestionID)
		if !ok {
			continue
		}
		o, ok := q.Option(a.OptionID)
		if !ok {
			continue
		}
		out = append(out, resolved{question: q, option: o})
	}
	return out
}

func emptySet(inst *model.Instrument) model.ScoreSet {
	scores := make(map[string]int, len(inst.Dimensions))
	for _, d := range inst.Dimensions {
		scores[d.Key] = 0
	}
	return model.ScoreSet{Instrument: inst.ID, Scores: scores}
}

// likertPercent scores single-dimension Likert items and normalises each dimension
// to 0..100 against the range its answered items could reach.
type likertPercent struct{}

func (likertPercent) Kind() model.ScoringKind { return model.ScoringLikertPercent }

func (likertPercent) Score(inst *model.Instrument, answers []model.Answer) model.ScoreSet {
	set := emptySet(inst)
	raw := make(map[string]int, len(inst.Dimensions))
	count := make(map[string]int, len(inst.Dimensions))
	for _, r := range resolve(inst, answers) {
		dim := r.question.Dimension
		if _, ok := set.Scores[dim]; !ok {
			continue
		}
		raw[dim] += r.option.Value
		count[dim]++
		set.Answered++
	}
	for dim := range set.Scores {
		set.Scores[dim] = Percent(raw[dim], count[dim])
	}
	return set
}

// Percent maps a raw Likert sum over n items onto 0..100.
// Each item spans likertSpan points, so the sum ranges over [-2n, 2n].
func Percent(raw, n int) int {
	if n <= 0 {
		return 0
	}
	p := int(math.Round(float64(raw+2*n) / float64(likertSpan*n) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// reversibleLikert sums signed Likert values, negating reverse-keyed items
type reversibleLikert struct{}

func (reversibleLikert) Kind() model.ScoringKind { return model.ScoringLikertReversible }

func (reversibleLikert) Score(inst *model.Instrument, answers []model.Answer) model.ScoreSet {
	set := emptySet(inst)
	for _, r := range resolve(inst, answers) {
		dim := r.question.Dimension
		if _, ok := set.Scores[dim]; !ok {
			continue
		}
		v := r.option.Value
		if r.question.Reverse {
			v = -v
		}
		set.Scores[dim] += v
		set.Answered++
	}
	return set
}

// weighted adds every weight of the chosen option to its dimension
type weighted struct{}

func (weighted) Kind() model.ScoringKind { return model.ScoringWeighted }

func (weighted) Score(inst *model.Instrument, answers []model.Answer) model.ScoreSet {
	set := emptySet(inst)
	for _, r := range resolve(inst, answers) {
		for dim, w := range r.option.Scores {
			if _, ok := set.Scores[dim]; ok {
				set.Scores[dim] += w
			}
		}
		set.Answered++
	}
	return set
}
