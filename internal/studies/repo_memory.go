package studies

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Study
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Study),
	}
}

// Create stores a new study.
func (r *MemoryRepo) Create(ctx context.Context, study Study) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if study.ID == "" {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[study.ID] = study.clone()
	return nil
}

// GetByID returns a copy of the stored study.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Study, error) {
	if err := ctx.Err(); err != nil {
		return Study{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	study, ok := r.data[id]
	if !ok {
		return Study{}, ErrNotFound
	}
	return study.clone(), nil
}

// List returns studies newest first, honoring limit/offset. A limit of zero
// means no limit.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Study, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	all := make([]Study, 0, len(r.data))
	for _, study := range r.data {
		all = append(all, study.clone())
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []Study{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

// Update replaces a stored study.
func (r *MemoryRepo) Update(ctx context.Context, study Study) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[study.ID]; !ok {
		return ErrNotFound
	}
	r.data[study.ID] = study.clone()
	return nil
}

// Delete removes a study.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
