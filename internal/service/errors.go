package service

import (
	"errors"

	"chatfuture/internal/scoring"
	"chatfuture/internal/storage"
)

var (
	ErrNoActiveSession        = errors.New("no active session")
	ErrInvalidAnswer          = errors.New("invalid answer")
	ErrInvalidProfile         = errors.New("invalid basic info")
	ErrScoringPrecondition    = scoring.ErrNoAnswers
	ErrPersistenceUnavailable = storage.ErrUnavailable
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrNoResult               = errors.New("no assessment result")
)
