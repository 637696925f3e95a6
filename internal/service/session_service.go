package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"chatfuture/internal/catalog"
	"chatfuture/internal/logging"
	"chatfuture/internal/model"
	"chatfuture/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService keeps exactly one active session per user identity.
// The in-memory copy is authoritative; persistence is best effort.
type SessionService struct {
	store   storage.Store
	catalog *catalog.Catalog
	logger  *logging.Logger
	now     func() time.Time
	newID   func() string

	mu    sync.Mutex
	slots map[string]*sessionSlot // identities with a live or deliberately absent session
}

// sessionSlot serialises all reads and writes of one identity's session
type sessionSlot struct {
	mu      sync.Mutex
	session *model.Session
	loaded  bool // persistence was consulted, or the session was set explicitly
	evicted bool // removed from slots; holders must look the identity up again
}

// NewSessionService creates a new session service
func NewSessionService(store storage.Store, c *catalog.Catalog, logger *logging.Logger) *SessionService {
	return &SessionService{
		store:   store,
		catalog: c,
		logger:  logger.Named("session"),
		now:     time.Now,
		newID:   func() string { return "session_" + uuid.NewString() },
		slots:   make(map[string]*sessionSlot),
	}
}

// lockSlot returns the identity's slot with its lock held
func (s *SessionService) lockSlot(userID string) *sessionSlot {
	for {
		s.mu.Lock()
		sl, ok := s.slots[userID]
		if !ok {
			sl = &sessionSlot{}
			s.slots[userID] = sl
		}
		s.mu.Unlock()

		sl.mu.Lock()
		if !sl.evicted {
			return sl
		}
		sl.mu.Unlock()
	}
}

// evictLocked drops a slot whose identity has nothing left in memory or persistence
func (s *SessionService) evictLocked(sl *sessionSlot, userID string) {
	s.mu.Lock()
	if s.slots[userID] == sl {
		delete(s.slots, userID)
	}
	s.mu.Unlock()
	sl.evicted = true
}

// currentLocked rehydrates from persistence on first access. Read failures count as no session.
func (s *SessionService) currentLocked(ctx context.Context, sl *sessionSlot, userID string) *model.Session {
	if sl.session != nil || sl.loaded {
		return sl.session
	}
	var sess model.Session
	ok, err := storage.NewUserData(s.store, userID).Get(ctx, storage.KeySession, &sess)
	if err != nil {
		s.logger.Warn(ctx, "failed to load session, treating as absent", zap.String("user_id", userID), zap.Error(err))
		s.evictLocked(sl, userID)
		return nil
	}
	if !ok {
		s.evictLocked(sl, userID)
		return nil
	}
	sl.loaded = true
	sl.session = &sess
	s.logger.Debug(ctx, "session rehydrated", zap.String("session_id", sess.ID))
	return sl.session
}

func (s *SessionService) persist(ctx context.Context, sess *model.Session) {
	if err := storage.NewUserData(s.store, sess.UserID).Save(ctx, storage.KeySession, sess); err != nil {
		s.logger.Error(ctx, "failed to persist session", zap.String("session_id", sess.ID), zap.Error(err))
	}
}

// Create starts a new empty session for the identity, replacing any active one
func (s *SessionService) Create(ctx context.Context, userID string) *model.Session {
	userID = storage.UserID(userID)
	sl := s.lockSlot(userID)
	defer sl.mu.Unlock()

	now := s.now()
	sess := &model.Session{
		ID:                   s.newID(),
		UserID:               userID,
		Answers:              []model.Answer{},
		CompletedInstruments: []model.InstrumentID{},
		StartTime:            now,
		LastUpdateTime:       now,
	}
	sl.session = sess
	sl.loaded = true
	s.persist(ctx, sess)

	s.logger.Info(ctx, "session created", zap.String("session_id", sess.ID))
	return sess.Clone()
}

// Current returns a snapshot of the active session, or nil
func (s *SessionService) Current(ctx context.Context, userID string) *model.Session {
	userID = storage.UserID(userID)
	sl := s.lockSlot(userID)
	defer sl.mu.Unlock()
	return s.currentLocked(ctx, sl, userID).Clone()
}

// Save writes the active session to persistence; a no-op without one
func (s *SessionService) Save(ctx context.Context, userID string) {
	userID = storage.UserID(userID)
	sl := s.lockSlot(userID)
	defer sl.mu.Unlock()
	if sess := s.currentLocked(ctx, sl, userID); sess != nil {
		s.persist(ctx, sess)
	}
}

// Clear drops the active session from memory and persistence
func (s *SessionService) Clear(ctx context.Context, userID string) {
	userID = storage.UserID(userID)
	sl := s.lockSlot(userID)
	defer sl.mu.Unlock()

	sl.session = nil
	sl.loaded = true
	if err := storage.NewUserData(s.store, userID).Delete(ctx, storage.KeySession); err != nil {
		// The slot stays so the stale persisted copy is not rehydrated
		s.logger.Error(ctx, "failed to delete persisted session", zap.String("user_id", userID), zap.Error(err))
	} else {
		s.evictLocked(sl, userID)
	}
	s.logger.Info(ctx, "session cleared", zap.String("user_id", userID))
}

// Reset clears the session and starts a fresh one for the same identity
func (s *SessionService) Reset(ctx context.Context, userID string) *model.Session {
	s.Clear(ctx, userID)
	return s.Create(ctx, userID)
}

// Update applies fn to a copy of the active session under the identity lock.
// The copy replaces the session only when fn succeeds; it is then persisted.
func (s *SessionService) Update(ctx context.Context, userID string, fn func(*model.Session) error) (*model.Session, error) {
	userID = storage.UserID(userID)
	sl := s.lockSlot(userID)
	defer sl.mu.Unlock()

	current := s.currentLocked(ctx, sl, userID)
	if current == nil {
		return nil, ErrNoActiveSession
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	sl.session = next
	s.persist(ctx, next)
	return next.Clone(), nil
}

// MarkInstrumentCompleted records that an instrument was finished. Repeated calls are no-ops.
func (s *SessionService) MarkInstrumentCompleted(ctx context.Context, userID string, instrument model.InstrumentID) error {
	if _, err := s.catalog.Instrument(instrument); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}
	_, err := s.Update(ctx, userID, func(sess *model.Session) error {
		if !sess.IsInstrumentCompleted(instrument) {
			sess.CompletedInstruments = append(sess.CompletedInstruments, instrument)
		}
		return nil
	})
	if err == nil {
		s.logger.Info(ctx, "instrument completed", zap.String("instrument", string(instrument)))
	}
	return err
}

// MarkCompleted flags the whole assessment as finished
func (s *SessionService) MarkCompleted(ctx context.Context, userID string) error {
	_, err := s.Update(ctx, userID, func(sess *model.Session) error {
		sess.Completed = true
		sess.LastUpdateTime = s.now()
		return nil
	})
	return err
}

// IsInstrumentCompleted reports whether the active session marked the instrument completed
func (s *SessionService) IsInstrumentCompleted(ctx context.Context, userID string, instrument model.InstrumentID) bool {
	sess := s.Current(ctx, userID)
	return sess != nil && sess.IsInstrumentCompleted(instrument)
}

// AllCompleted reports whether every catalog instrument was marked completed
func (s *SessionService) AllCompleted(ctx context.Context, userID string) bool {
	sess := s.Current(ctx, userID)
	if sess == nil {
		return false
	}
	for _, id := range s.catalog.InstrumentIDs() {
		if !sess.IsInstrumentCompleted(id) {
			return false
		}
	}
	return true
}

// Progress reports answered counts and the next unanswered question per instrument
func (s *SessionService) Progress(ctx context.Context, userID string) (*model.Progress, error) {
	sess := s.Current(ctx, userID)
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	answered := make(map[string]bool, len(sess.Answers))
	for _, a := range sess.Answers {
		answered[a.QuestionID] = true
	}

	p := &model.Progress{SessionID: sess.ID, Completed: sess.Completed, AllCompleted: true}
	for _, id := range s.catalog.InstrumentIDs() {
		questions, err := s.catalog.Questions(id)
		if err != nil {
			return nil, err
		}
		ip := model.InstrumentProgress{
			Instrument:   id,
			Total:        len(questions),
			NextQuestion: len(questions),
			Completed:    sess.IsInstrumentCompleted(id),
		}
		for i, q := range questions {
			if answered[q.ID] {
				ip.Answered++
			} else if ip.NextQuestion == len(questions) {
				ip.NextQuestion = i
			}
		}
		ip.Percent = percentOf(ip.Answered, ip.Total)

		p.Instruments = append(p.Instruments, ip)
		p.Answered += ip.Answered
		p.Total += ip.Total
		p.AllCompleted = p.AllCompleted && ip.Completed
	}
	p.Percent = percentOf(p.Answered, p.Total)
	return p, nil
}

func percentOf(n, total int) int {
	if total == 0 {
		return 0
	}
	return n * 100 / total
}

// IsNoActiveSession reports whether err means the caller has to start an assessment first
func IsNoActiveSession(err error) bool {
	return errors.Is(err, ErrNoActiveSession)
}
