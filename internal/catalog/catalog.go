// Package catalog holds the static definition of the four assessment instruments.
package catalog

import (
	"errors"
	"fmt"

	"chatfuture/internal/model"
)

var (
	ErrUnknownInstrument = errors.New("unknown instrument")
	ErrUnknownQuestion   = errors.New("unknown question")
	ErrUnknownOption     = errors.New("unknown option")
)

// order is the fixed catalog order; ties between observations are broken by it
var order = []model.InstrumentID{
	model.InstrumentInterest,
	model.InstrumentPersonality,
	model.InstrumentValues,
	model.InstrumentAptitude,
}

// Catalog is an immutable, read-only set of instruments
type Catalog struct {
	instruments map[model.InstrumentID]*model.Instrument
}

// New builds the catalog with the built-in question content
func New() *Catalog {
	return newCatalog(
		interestInstrument(),
		personalityInstrument(),
		valuesInstrument(),
		aptitudeInstrument(),
	)
}

func newCatalog(instruments ...*model.Instrument) *Catalog {
	c := &Catalog{instruments: make(map[model.InstrumentID]*model.Instrument, len(instruments))}
	for _, inst := range instruments {
		for i := range inst.Questions {
			inst.Questions[i].Instrument = inst.ID
		}
		c.instruments[inst.ID] = inst
	}
	return c
}

// InstrumentIDs returns the four instrument ids in catalog order
func (c *Catalog) InstrumentIDs() []model.InstrumentID {
	return append([]model.InstrumentID(nil), order...)
}

// Instrument returns a copy of the instrument header and questions
func (c *Catalog) Instrument(id model.InstrumentID) (*model.Instrument, error) {
	inst, ok := c.instruments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, id)
	}
	cp := *inst
	cp.Dimensions = append([]model.Dimension(nil), inst.Dimensions...)
	cp.Questions = copyQuestions(inst.Questions)
	return &cp, nil
}

// Questions returns the ordered questions of an instrument
func (c *Catalog) Questions(id model.InstrumentID) ([]model.Question, error) {
	inst, ok := c.instruments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, id)
	}
	return copyQuestions(inst.Questions), nil
}

// Question resolves a question within an instrument
func (c *Catalog) Question(id model.InstrumentID, questionID string) (*model.Question, error) {
	inst, ok := c.instruments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, id)
	}
	q, ok := inst.Question(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownQuestion, questionID, id)
	}
	cp := copyQuestions([]model.Question{*q})[0]
	return &cp, nil
}

// Option resolves an option of a question within an instrument
func (c *Catalog) Option(id model.InstrumentID, questionID, optionID string) (*model.Option, error) {
	q, err := c.Question(id, questionID)
	if err != nil {
		return nil, err
	}
	opt, ok := q.Option(optionID)
	if !ok {
		return nil, fmt.Errorf("%w: %q for question %q", ErrUnknownOption, optionID, questionID)
	}
	return opt, nil
}

// TotalQuestions returns the number of questions of an instrument, 0 for unknown ids
func (c *Catalog) TotalQuestions(id model.InstrumentID) int {
	inst, ok := c.instruments[id]
	if !ok {
		return 0
	}
	return len(inst.Questions)
}

// AllTotalQuestions sums the questions of every instrument
func (c *Catalog) AllTotalQuestions() int {
	total := 0
	for _, id := range order {
		total += c.TotalQuestions(id)
	}
	return total
}

func copyQuestions(in []model.Question) []model.Question {
	out := make([]model.Question, len(in))
	for i, q := range in {
		out[i] = q
		out[i].Options = make([]model.Option, len(q.Options))
		for j, o := range q.Options {
			out[i].Options[j] = o
			if o.Scores != nil {
				scores := make(map[string]int, len(o.Scores))
				for k, v := range o.Scores {
					scores[k] = v
				}
				out[i].Options[j].Scores = scores
			}
		}
	}
	return out
}

// likertOptions builds the five ordinal options -2..+2 with the given id prefix and labels
func likertOptions(prefix string, labels [5]string) []model.Option {
	opts := make([]model.Option, 5)
	for i, label := range labels {
		v := i - 2
		opts[i] = model.Option{ID: fmt.Sprintf("%s%d", prefix, v), Text: label, Value: v}
	}
	return opts
}

type likertItem struct {
	id        string
	dimension string
	text      string
	reverse   bool
}

func likertQuestions(items []likertItem, options []model.Option) []model.Question {
	out := make([]model.Question, len(items))
	for i, it := range items {
		out[i] = model.Question{
			ID:        it.id,
			Text:      it.text,
			Dimension: it.dimension,
			Reverse:   it.reverse,
			Weight:    1.0,
			Options:   options,
		}
	}
	return out
}
