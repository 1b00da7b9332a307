package session

import (
	"log/slog"
	"sync"
	"time"

	"stayops/internal/pkg/clock"
	"stayops/internal/usecase"

	"github.com/google/uuid"
)

// MemoryRepository keeps live wizard sessions in process memory. Sessions are
// per-run working state; the only durable store for booking data is the
// channel-manager API itself.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*usecase.Session
	clock    clock.Clock
	ttl      time.Duration
	logger   *slog.Logger
}

func NewMemoryRepository(clock clock.Clock, ttl time.Duration, logger *slog.Logger) *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[uuid.UUID]*usecase.Session),
		clock:    clock,
		ttl:      ttl,
		logger:   logger,
	}
}

func (r *MemoryRepository) Save(s *usecase.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *MemoryRepository) Find(id uuid.UUID) (*usecase.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *MemoryRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Sweep drops sessions idle longer than the TTL and returns how many were
// removed. Intended to be called periodically from the bootstrap lifecycle.
func (r *MemoryRepository) Sweep() int {
	cutoff := r.clock.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Info("swept expired wizard sessions", "count", removed)
	}
	return removed
}
