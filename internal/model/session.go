package model

import "time"

// Session is one user's assessment run across all four instruments
type Session struct {
	ID                   string         `json:"id" bson:"id"`
	UserID               string         `json:"userId,omitempty" bson:"userId,omitempty"`
	Answers              []Answer       `json:"answers" bson:"answers"`
	CompletedInstruments []InstrumentID `json:"completedTypes" bson:"completedTypes"`
	StartTime            time.Time      `json:"startTime" bson:"startTime"`
	LastUpdateTime       time.Time      `json:"lastUpdateTime" bson:"lastUpdateTime"`
	Completed            bool           `json:"completed" bson:"completed"`
}

// AnswersFor returns the answers recorded for one instrument, in recording order
func (s *Session) AnswersFor(instrument InstrumentID) []Answer {
	var out []Answer
	for _, a := range s.Answers {
		if a.InstrumentID == instrument {
			out = append(out, a)
		}
	}
	return out
}

// AnswerFor returns the current answer to a question, if any
func (s *Session) AnswerFor(questionID string) (*Answer, bool) {
	for i := range s.Answers {
		if s.Answers[i].QuestionID == questionID {
			return &s.Answers[i], true
		}
	}
	return nil, false
}

// IsInstrumentCompleted reports whether the instrument was marked completed
func (s *Session) IsInstrumentCompleted(instrument InstrumentID) bool {
	for _, id := range s.CompletedInstruments {
		if id == instrument {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can read without holding the session lock
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Answers = append([]Answer(nil), s.Answers...)
	c.CompletedInstruments = append([]InstrumentID(nil), s.CompletedInstruments...)
	return &c
}

// InstrumentProgress is the answering progress of a single instrument
type InstrumentProgress struct {
	Instrument   InstrumentID `json:"instrumentId"`
	Answered     int          `json:"answered"`
	Total        int          `json:"total"`
	NextQuestion int          `json:"nextQuestionIndex"` // index of the first unanswered question, Total when all are answered
	Completed    bool         `json:"completed"`
	Percent      int          `json:"percent"`
}

// Progress summarises a session for the assessment page
type Progress struct {
	SessionID    string               `json:"sessionId"`
	Instruments  []InstrumentProgress `json:"instruments"`
	Answered     int                  `json:"answered"`
	Total        int                  `json:"total"`
	Percent      int                  `json:"percent"`
	AllCompleted bool                 `json:"allCompleted"`
	Completed    bool                 `json:"completed"`
}
