package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/model"
)

// configStore keeps the draft/published pair under one mutex so Promote is
// atomic: readers see either the pre-publish or the post-publish state.
type configStore struct {
	mu        sync.RWMutex
	draft     *model.FormConfiguration
	published *model.FormConfiguration
	version   int
}

func newConfigStore() *configStore {
	return &configStore{}
}

func (s *configStore) GetDraft(ctx context.Context) (*model.FormConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.draft == nil {
		return nil, nil
	}
	return s.draft.Clone(), nil
}

func (s *configStore) PutDraft(ctx context.Context, cfg *model.FormConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = cfg.Clone()
	return nil
}

func (s *configStore) GetPublished(ctx context.Context) (*model.FormConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.published == nil {
		return nil, nil
	}
	return s.published.Clone(), nil
}

func (s *configStore) PutPublished(ctx context.Context, cfg *model.FormConfiguration, version int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.published = cfg.Clone()
	s.version = version
	return nil
}

func (s *configStore) PublishedVersion(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version, nil
}

func (s *configStore) HasUnpublishedChanges(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.draft == nil {
		return false, nil
	}
	if s.published == nil {
		return true, nil
	}
	return !s.draft.Equal(s.published), nil
}

// Promote copies the draft into the published slot and bumps the version.
// The bootstrap configuration counts as version 1, so the first promote
// yields version 2.
func (s *configStore) Promote(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return 0, goerr.New("no draft configuration to promote")
	}

	s.published = s.draft.Clone()
	if s.version == 0 {
		s.version = 2
	} else {
		s.version++
	}
	return s.version, nil
}
