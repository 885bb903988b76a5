package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/formwork-lab/formwork/pkg/domain/model"
)

type submissionRepository struct {
	mu      sync.RWMutex
	entries map[string]*model.Submission
}

func newSubmissionRepository() *submissionRepository {
	return &submissionRepository{
		entries: make(map[string]*model.Submission),
	}
}

func (r *submissionRepository) Put(ctx context.Context, sub *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[sub.ID] = sub.Clone()
	return nil
}

func (r *submissionRepository) Get(ctx context.Context, id string) (*model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	return sub.Clone(), nil
}

func (r *submissionRepository) List(ctx context.Context) ([]*model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Submission, 0, len(r.entries))
	for _, sub := range r.entries {
		out = append(out, sub.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
