// Package memory provides an in-memory Repository used in tests and for
// local development. All values are deep-copied on the way in and out so
// callers never share state with the store.
package memory

import (
	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	config     *configStore
	submission *submissionRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		config:     newConfigStore(),
		submission: newSubmissionRepository(),
	}
}

func (m *Memory) Config() interfaces.ConfigStore {
	return m.config
}

func (m *Memory) Submission() interfaces.SubmissionRepository {
	return m.submission
}

func (m *Memory) Close() error {
	return nil
}
