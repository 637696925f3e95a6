package model

import "time"

// Answer is the user's selection for one question. At most one exists per QuestionID in a session.
type Answer struct {
	QuestionID   string       `json:"questionId" bson:"questionId"`
	OptionID     string       `json:"optionId" bson:"optionId"`
	InstrumentID InstrumentID `json:"questionnaireType" bson:"questionnaireType"`
	Timestamp    time.Time    `json:"timestamp" bson:"timestamp"`
}

// AnswerRequest is the body of POST /v1/session/answers
type AnswerRequest struct {
	QuestionID   string       `json:"questionId" validate:"required"`
	OptionID     string       `json:"optionId" validate:"required"`
	InstrumentID InstrumentID `json:"questionnaireType" validate:"required"`
}
