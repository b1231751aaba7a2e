package session

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/google/uuid"
)

// Session is a machine owned by the store.
type Session struct {
	ID        uuid.UUID
	Name      string
	Input     string
	CreatedAt time.Time
	Machine   *machine.Machine

	mu  sync.Mutex
	seq uint64
}

func (s *Session) info() Info {
	return Info{
		ID:        s.ID,
		Name:      s.Name,
		Input:     s.Input,
		CreatedAt: s.CreatedAt,
		Snapshot:  s.Machine.Snapshot(),
	}
}

type InMemStore struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]*Session
	seq         uint64
}

func NewInMemStore() *InMemStore {
	return &InMemStore{
		storage: make(map[uuid.UUID]*Session),
	}
}

func (s *InMemStore) Create(ctx context.Context, name, input string, m *machine.Machine) (Info, error) {
	sess := &Session{
		ID:        uuid.New(),
		Name:      name,
		Input:     input,
		CreatedAt: time.Now().UTC(),
		Machine:   m,
	}

	s.storageLock.Lock()
	s.seq++
	sess.seq = s.seq
	s.storage[sess.ID] = sess
	s.storageLock.Unlock()

	slog.Debug("Session created", "id", sess.ID, "name", name)
	return sess.info(), nil
}

func (s *InMemStore) lookup(id uuid.UUID) (*Session, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	sess, ok := s.storage[id]
	if !ok {
		return nil, apperr.NewNotFound("session", id.String())
	}
	return sess, nil
}

func (s *InMemStore) Get(ctx context.Context, id uuid.UUID) (Info, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return Info{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.info(), nil
}

func (s *InMemStore) Do(ctx context.Context, id uuid.UUID, fn func(s *Session) error) (Info, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return Info{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Info{}, err
	}
	if err := fn(sess); err != nil {
		return Info{}, err
	}
	return sess.info(), nil
}

func (s *InMemStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.storage[id]; !ok {
		return apperr.NewNotFound("session", id.String())
	}
	delete(s.storage, id)
	slog.Debug("Session deleted", "id", id)
	return nil
}

// List returns all sessions, oldest first.
func (s *InMemStore) List(ctx context.Context) ([]Info, error) {
	s.storageLock.RLock()
	sessions := make([]*Session, 0, len(s.storage))
	for _, sess := range s.storage {
		sessions = append(sessions, sess)
	}
	s.storageLock.RUnlock()

	slices.SortFunc(sessions, func(a, b *Session) int {
		return cmp.Compare(a.seq, b.seq)
	})

	infos := make([]Info, 0, len(sessions))
	for _, sess := range sessions {
		sess.mu.Lock()
		infos = append(infos, sess.info())
		sess.mu.Unlock()
	}
	return infos, nil
}
