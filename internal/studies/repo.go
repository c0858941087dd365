package studies

import "context"

// Repo defines persistence operations for studies.
type Repo interface {
	Create(ctx context.Context, study Study) error
	GetByID(ctx context.Context, id string) (Study, error)
	// List returns studies newest first.
	List(ctx context.Context, limit, offset int) ([]Study, error)
	Update(ctx context.Context, study Study) error
	Delete(ctx context.Context, id string) error
}
