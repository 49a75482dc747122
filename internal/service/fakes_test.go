package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/petwatch/petwatch/internal/domain"
)

// fakeCatRepo is an in-memory CatRepository. Setting failInsert makes every
// Insert return that error.
type fakeCatRepo struct {
	mu         sync.Mutex
	cats       []*domain.Cat
	failInsert error
	inserts    int
}

func (r *fakeCatRepo) Insert(ctx context.Context, cat *domain.Cat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserts++
	if r.failInsert != nil {
		return r.failInsert
	}
	stored := *cat
	r.cats = append(r.cats, &stored)
	return nil
}

func (r *fakeCatRepo) ListAll(ctx context.Context) ([]*domain.Cat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Cat, len(r.cats))
	copy(out, r.cats)
	return out, nil
}

func (r *fakeCatRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cat := range r.cats {
		if cat.ID == id {
			return cat, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// fakeNotifier records broadcasts.
type fakeNotifier struct {
	mu     sync.Mutex
	events []string
	last   interface{}
}

func (n *fakeNotifier) Broadcast(event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	n.last = payload
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}
