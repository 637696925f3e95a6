package service

import (
	"context"
	"sync"
	"time"

	"chatfuture/internal/logging"
	"chatfuture/internal/model"
	"chatfuture/internal/storage"

	"go.uber.org/zap"
)

// ReportService runs narrative generation in the background and stores its state
type ReportService struct {
	scoring   *ScoringService
	profiles  *ProfileService
	generator ReportGenerator
	store     storage.Store
	logger    *logging.Logger
	notifier  Notifier
	timeout   time.Duration
	now       func() time.Time

	mu       sync.Mutex
	inflight map[string]*model.ReportRecord
	epochs   map[string]uint64 // bumped by Clear; generations from an older epoch are discarded
	wg       sync.WaitGroup
}

// NewReportService creates a new report service
func NewReportService(
	scoring *ScoringService,
	profiles *ProfileService,
	generator ReportGenerator,
	store storage.Store,
	timeout time.Duration,
	logger *logging.Logger,
) *ReportService {
	s := &ReportService{
		scoring:   scoring,
		profiles:  profiles,
		generator: generator,
		store:     store,
		logger:    logger.Named("report"),
		timeout:   timeout,
		now:       time.Now,
		inflight:  make(map[string]*model.ReportRecord),
		epochs:    make(map[string]uint64),
	}
	scoring.OnFreshStart(s.Clear)
	return s
}

// SetNotifier sets the notifier for WebSocket report events
func (s *ReportService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Trigger starts async generation for the user's latest result and returns the pending record.
// A second trigger while one is running returns the running record.
func (s *ReportService) Trigger(ctx context.Context, userID string) (*model.ReportRecord, error) {
	userID = storage.UserID(userID)
	s.mu.Lock()
	epoch := s.epochs[userID]
	s.mu.Unlock()

	result := s.scoring.LatestResult(ctx, userID)
	if result == nil {
		return nil, ErrNoResult
	}

	s.mu.Lock()
	if s.epochs[userID] != epoch {
		// Cleared while the result was being read
		s.mu.Unlock()
		return nil, ErrNoResult
	}
	if running, ok := s.inflight[userID]; ok {
		s.mu.Unlock()
		return running, nil
	}
	record := &model.ReportRecord{
		UserID:    userID,
		SessionID: result.SessionID,
		Status:    model.ReportPending,
		CreatedAt: s.now(),
	}
	s.inflight[userID] = record
	s.saveLocked(ctx, record)
	s.mu.Unlock()

	s.wg.Add(1)
	go func(asyncCtx context.Context) {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error(asyncCtx, "recovered from panic in report generation", zap.Any("panic", r))
			}
			s.mu.Lock()
			if s.inflight[userID] == record {
				delete(s.inflight, userID)
			}
			s.mu.Unlock()
		}()

		if s.timeout > 0 {
			var cancel context.CancelFunc
			asyncCtx, cancel = context.WithTimeout(asyncCtx, s.timeout)
			defer cancel()
		}
		s.generate(asyncCtx, *record, result, epoch)
	}(context.WithoutCancel(ctx))

	return record, nil
}

// Generate runs generation synchronously for the latest result
func (s *ReportService) Generate(ctx context.Context, userID string) (*model.ReportRecord, error) {
	userID = storage.UserID(userID)
	s.mu.Lock()
	epoch := s.epochs[userID]
	s.mu.Unlock()

	result := s.scoring.LatestResult(ctx, userID)
	if result == nil {
		return nil, ErrNoResult
	}
	record := model.ReportRecord{
		UserID:    userID,
		SessionID: result.SessionID,
		Status:    model.ReportPending,
		CreatedAt: s.now(),
	}
	return s.generate(ctx, record, result, epoch), nil
}

func (s *ReportService) generate(ctx context.Context, record model.ReportRecord, result *model.AssessmentResult, epoch uint64) *model.ReportRecord {
	record.Status = model.ReportGenerating
	if !s.saveIfCurrent(ctx, &record, epoch) {
		return &record
	}

	info, err := s.profiles.BasicInfo(ctx, record.UserID)
	if err != nil {
		s.logger.Warn(ctx, "generating report without basic info", zap.Error(err))
	}

	report, fallback, err := s.generator.Generate(ctx, result, info)
	if err != nil {
		record.Status = model.ReportFailed
		record.Error = err.Error()
		if s.saveIfCurrent(ctx, &record, epoch) {
			s.notify(record.UserID, MsgReportFailed, &record)
		}
		return &record
	}

	readyAt := s.now()
	record.Status = model.ReportReady
	record.Report = report
	record.Fallback = fallback
	record.ReadyAt = &readyAt
	if !s.saveIfCurrent(ctx, &record, epoch) {
		return &record
	}

	s.logger.Info(ctx, "report ready",
		zap.String("session_id", record.SessionID),
		zap.Bool("fallback", fallback))
	s.notify(record.UserID, MsgReportReady, &record)
	return &record
}

// Get returns the stored report record, or nil when none exists
func (s *ReportService) Get(ctx context.Context, userID string) (*model.ReportRecord, error) {
	var record model.ReportRecord
	ok, err := storage.NewUserData(s.store, userID).Get(ctx, storage.KeyReport, &record)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Clear removes the stored report. Generations already running for the
// identity finish without storing or announcing their outcome.
func (s *ReportService) Clear(ctx context.Context, userID string) {
	userID = storage.UserID(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epochs[userID]++
	delete(s.inflight, userID)
	if err := storage.NewUserData(s.store, userID).Delete(ctx, storage.KeyReport); err != nil {
		s.logger.Error(ctx, "failed to delete report", zap.Error(err))
	}
}

// Wait blocks until background generations finish
func (s *ReportService) Wait() {
	s.wg.Wait()
}

// saveIfCurrent stores the record unless the identity was cleared since epoch
func (s *ReportService) saveIfCurrent(ctx context.Context, record *model.ReportRecord, epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epochs[record.UserID] != epoch {
		s.logger.Info(ctx, "discarding report for a superseded session",
			zap.String("session_id", record.SessionID),
			zap.String("status", string(record.Status)))
		return false
	}
	s.saveLocked(ctx, record)
	return true
}

func (s *ReportService) saveLocked(ctx context.Context, record *model.ReportRecord) {
	if err := storage.NewUserData(s.store, record.UserID).Save(ctx, storage.KeyReport, record); err != nil {
		s.logger.Error(ctx, "failed to persist report", zap.String("status", string(record.Status)), zap.Error(err))
	}
}

func (s *ReportService) notify(userID, msgType string, record *model.ReportRecord) {
	if s.notifier != nil {
		s.notifier.NotifyUser(userID, msgType, record)
	}
}
