package model

import "time"

// ScoreSet holds the per-dimension scores of one instrument
type ScoreSet struct {
	Instrument InstrumentID   `json:"instrumentId" bson:"instrumentId"`
	Scores     map[string]int `json:"scores" bson:"scores"`
	Answered   int            `json:"answered" bson:"answered"` // answers that contributed
}

// Observation is a rule-based finding derived from a ScoreSet
type Observation struct {
	Instrument InstrumentID `json:"instrumentId" bson:"instrumentId"`
	Dimension  string       `json:"dimension" bson:"dimension"`
	Score      int          `json:"score" bson:"score"`
	Text       string       `json:"text" bson:"text"`
}

// AssessmentResult is the aggregated outcome of a session
type AssessmentResult struct {
	SessionID    string        `json:"sessionId" bson:"sessionId"`
	UserID       string        `json:"userId,omitempty" bson:"userId,omitempty"`
	Interest     ScoreSet      `json:"riasec" bson:"riasec"`
	Personality  ScoreSet      `json:"bigFive" bson:"bigFive"`
	Values       ScoreSet      `json:"careerValues" bson:"careerValues"`
	Aptitude     ScoreSet      `json:"aptitude" bson:"aptitude"`
	OverallScore float64       `json:"overallScore" bson:"overallScore"`
	Observations []Observation `json:"observations" bson:"observations"`
	CalculatedAt time.Time     `json:"calculatedAt" bson:"calculatedAt"`
}

// ScoreSets returns the four sets in catalog order
func (r *AssessmentResult) ScoreSets() []ScoreSet {
	return []ScoreSet{r.Interest, r.Personality, r.Values, r.Aptitude}
}

// ScoreSet returns the set for an instrument
func (r *AssessmentResult) ScoreSet(instrument InstrumentID) (ScoreSet, bool) {
	for _, s := range r.ScoreSets() {
		if s.Instrument == instrument {
			return s, true
		}
	}
	return ScoreSet{}, false
}

// ResultSummary is the presentation view shown on the results page
type ResultSummary struct {
	DominantInterest  *RankedDimension  `json:"dominantInterest,omitempty"`
	PersonalityLevels []RankedDimension `json:"personalityLevels"`
	TopValues         []RankedDimension `json:"topValues"`
	Strengths         []RankedDimension `json:"strengths"`
}

// RankedDimension is a dimension with its score and display label
type RankedDimension struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Level string `json:"level,omitempty"`
}
