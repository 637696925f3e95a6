package service

import (
	"context"
	"fmt"
	"time"

	"chatfuture/internal/logging"
	"chatfuture/internal/model"
	"chatfuture/internal/storage"

	"go.uber.org/zap"
)

// ProfileService stores the demographic form filled in before the assessment
type ProfileService struct {
	store  storage.Store
	logger *logging.Logger
	now    func() time.Time
}

// NewProfileService creates a new profile service
func NewProfileService(store storage.Store, logger *logging.Logger) *ProfileService {
	return &ProfileService{store: store, logger: logger.Named("profile"), now: time.Now}
}

// SaveBasicInfo validates and stores the form. Unlike session writes, a storage
// failure is returned since there is no in-memory copy to fall back on.
func (s *ProfileService) SaveBasicInfo(ctx context.Context, userID string, info model.BasicInfo) (*model.BasicInfo, error) {
	info.Normalize()
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	info.CompletedAt = s.now()

	if err := storage.NewUserData(s.store, userID).Save(ctx, storage.KeyBasicInfo, &info); err != nil {
		s.logger.Error(ctx, "failed to persist basic info", zap.Error(err))
		return nil, err
	}
	s.logger.Info(ctx, "basic info saved", zap.Strings("occupation_categories", model.OccupationCategories(info.Occupation)))
	return &info, nil
}

// BasicInfo returns the stored form, or nil when there is none
func (s *ProfileService) BasicInfo(ctx context.Context, userID string) (*model.BasicInfo, error) {
	var info model.BasicInfo
	ok, err := storage.NewUserData(s.store, userID).Get(ctx, storage.KeyBasicInfo, &info)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// HasBasicInfo reports whether the form was completed. Read failures count as not completed.
func (s *ProfileService) HasBasicInfo(ctx context.Context, userID string) bool {
	info, err := s.BasicInfo(ctx, userID)
	if err != nil {
		s.logger.Warn(ctx, "failed to load basic info", zap.Error(err))
		return false
	}
	return info != nil
}

// ClearBasicInfo removes the stored form
func (s *ProfileService) ClearBasicInfo(ctx context.Context, userID string) error {
	return storage.NewUserData(s.store, userID).Delete(ctx, storage.KeyBasicInfo)
}
