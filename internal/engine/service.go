package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jaev1996/atria-fitness/internal/model"
	"github.com/jaev1996/atria-fitness/internal/store"
)

// ChangeEvent describes a successful state write for observers: the
// broker publisher and the response-cache invalidation hang off it.
type ChangeEvent struct {
	Entity string // "session", "student", "instructor", "settings", "payroll"
	Action string // "created", "updated", "deleted"
	ID     string
}

// Notifier receives a ChangeEvent after every successful write.  It must
// be fast and must not fail the write; implementations log their own
// errors.
type Notifier func(ctx context.Context, ev ChangeEvent)

// Service owns the read-modify-write cycle against the store.  The design
// assumes at most one logical writer at a time; the mutex serializes
// writers within this process so collision and capacity checks cannot race
// each other.
type Service struct {
	store    store.Store
	matcher  DisciplineMatcher
	notifier Notifier

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

// NewService builds a Service on the given store with the default
// discipline matcher.
func NewService(st store.Store) *Service {
	return &Service{
		store:   st,
		matcher: DefaultMatcher(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// SetNotifier registers the change observer.  Pass nil to disable.
func (s *Service) SetNotifier(n Notifier) { s.notifier = n }

// Document exposes a point-in-time copy of the whole state for read-only
// views.
func (s *Service) Document(ctx context.Context) (*model.Document, error) {
	return s.store.Load(ctx)
}

// update runs fn inside the locked load/save cycle.  fn mutates the
// document in place and may fill in ev.ID for records it creates;
// returning an error aborts the write.  The notifier fires only after a
// successful save.
func (s *Service) update(ctx context.Context, ev *ChangeEvent, fn func(doc *model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return err
	}
	if s.notifier != nil && ev != nil {
		s.notifier(ctx, *ev)
	}
	return nil
}

// today renders the current calendar day the way the document stores dates.
func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}
