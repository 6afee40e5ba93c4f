package database

import (
	"context"
	"sync"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// MemoryPromptRepository keeps templates in process memory, seeded with the defaults.
// Delete removes the template for good.
type MemoryPromptRepository struct {
	mu      sync.RWMutex
	order   []string
	prompts map[string]*entity.PromptTemplate
}

func NewMemoryPromptRepository(seed []*entity.PromptTemplate) *MemoryPromptRepository {
	r := &MemoryPromptRepository{prompts: make(map[string]*entity.PromptTemplate)}
	for _, p := range seed {
		cp := *p
		r.prompts[cp.ID] = &cp
		r.order = append(r.order, cp.ID)
	}
	return r
}

func (r *MemoryPromptRepository) List(ctx context.Context) ([]*entity.PromptTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.PromptTemplate, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.prompts[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemoryPromptRepository) FindByID(ctx context.Context, id string) (*entity.PromptTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.prompts[id]
	if !ok {
		return nil, entity.ErrPromptNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemoryPromptRepository) FindByName(ctx context.Context, name string) (*entity.PromptTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p := r.byName(name); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, entity.ErrPromptNotFound
}

func (r *MemoryPromptRepository) Create(ctx context.Context, p *entity.PromptTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byName(p.Name) != nil {
		return entity.ErrPromptNameTaken
	}

	cp := *p
	cp.Active = true
	r.prompts[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *MemoryPromptRepository) Update(ctx context.Context, p *entity.PromptTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.prompts[p.ID]; !ok {
		return entity.ErrPromptNotFound
	}
	if other := r.byName(p.Name); other != nil && other.ID != p.ID {
		return entity.ErrPromptNameTaken
	}

	cp := *p
	r.prompts[cp.ID] = &cp
	return nil
}

func (r *MemoryPromptRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.prompts[id]; !ok {
		return entity.ErrPromptNotFound
	}
	if len(r.order) <= 1 {
		return entity.ErrLastPrompt
	}

	delete(r.prompts, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryPromptRepository) byName(name string) *entity.PromptTemplate {
	for _, id := range r.order {
		if p := r.prompts[id]; p.Name == name {
			return p
		}
	}
	return nil
}
