package model

// InstrumentID identifies one of the four questionnaires
type InstrumentID string

const (
	InstrumentInterest    InstrumentID = "riasec"        // RIASEC career interest
	InstrumentPersonality InstrumentID = "big_five"      // Big Five personality traits
	InstrumentValues      InstrumentID = "career_values" // Work values
	InstrumentAptitude    InstrumentID = "aptitude"      // Self-rated aptitude
)

// ScoringKind selects how answers of an instrument are turned into scores
type ScoringKind string

const (
	ScoringLikertPercent    ScoringKind = "likert_percent"    // per-dimension Likert, normalised to 0..100
	ScoringLikertReversible ScoringKind = "likert_reversible" // signed Likert sum, reverse-keyed items negated
	ScoringWeighted         ScoringKind = "weighted"          // option carries a weight per dimension
)

// Dimension is one axis an instrument scores on (e.g. "R", "O", "achievement")
type Dimension struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Option is a selectable answer. Likert options use Value, weighted options use Scores.
type Option struct {
	ID     string         `json:"id" bson:"id"`
	Text   string         `json:"text" bson:"text"`
	Value  int            `json:"value" bson:"value"`
	Scores map[string]int `json:"scores,omitempty" bson:"scores,omitempty"`
}

// Question is a single catalog item
type Question struct {
	ID         string       `json:"id"`
	Instrument InstrumentID `json:"instrumentId"`
	Category   string       `json:"category,omitempty"`  // Values only, e.g. "工作环境"
	Text       string       `json:"text"`
	Dimension  string       `json:"dimension,omitempty"` // empty for weighted questions
	Reverse    bool         `json:"reverse,omitempty"`
	Weight     float64      `json:"weight"`
	Options    []Option     `json:"options"`
}

// Option looks up an option of the question by id
func (q *Question) Option(optionID string) (*Option, bool) {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return &q.Options[i], true
		}
	}
	return nil, false
}

// Instrument is a complete questionnaire
type Instrument struct {
	ID          InstrumentID `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Kind        ScoringKind  `json:"kind"`
	Dimensions  []Dimension  `json:"dimensions"`
	Questions   []Question   `json:"questions,omitempty"`
}

// DimensionKeys returns the dimension keys in declaration order
func (i *Instrument) DimensionKeys() []string {
	keys := make([]string, len(i.Dimensions))
	for idx, d := range i.Dimensions {
		keys[idx] = d.Key
	}
	return keys
}

// DimensionName returns the display name of a dimension, or the key itself
func (i *Instrument) DimensionName(key string) string {
	for _, d := range i.Dimensions {
		if d.Key == key {
			return d.Name
		}
	}
	return key
}

// Question looks up a question of the instrument by id
func (i *Instrument) Question(questionID string) (*Question, bool) {
	for idx := range i.Questions {
		if i.Questions[idx].ID == questionID {
			return &i.Questions[idx], true
		}
	}
	return nil, false
}
