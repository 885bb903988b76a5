package upload

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// StoredFile is one upload kept by the in-memory uploader
type StoredFile struct {
	OwnerID  string
	FieldKey types.FieldKey
	FileName string
	MIMEType string
	Data     []byte
}

// Memory keeps uploaded bytes in process memory. Used in tests and for
// local development without cloud credentials.
type Memory struct {
	mu    sync.RWMutex
	files map[string]StoredFile
}

var _ interfaces.Uploader = &Memory{}

func NewMemory() *Memory {
	return &Memory{files: make(map[string]StoredFile)}
}

func (s *Memory) ProcessUploads(ctx context.Context, ownerID string, fileFields []model.FieldDefinition, uploads []model.RawUpload) (map[types.FieldKey][]string, error) {
	declared := fieldKeySet(fileFields)

	refs := make(map[types.FieldKey][]string)
	for _, up := range uploads {
		if _, ok := declared[up.FieldKey]; !ok {
			continue
		}

		var buf bytes.Buffer
		if up.Content != nil {
			if _, err := io.Copy(&buf, up.Content); err != nil {
				return nil, goerr.Wrap(err, "failed to read upload",
					goerr.V("file_name", up.FileName))
			}
		}

		ref := uuid.NewString()
		s.mu.Lock()
		s.files[ref] = StoredFile{
			OwnerID:  ownerID,
			FieldKey: up.FieldKey,
			FileName: up.FileName,
			MIMEType: up.MIMEType,
			Data:     buf.Bytes(),
		}
		s.mu.Unlock()

		refs[up.FieldKey] = append(refs[up.FieldKey], ref)
	}

	return refs, nil
}

// Get returns a stored file by its reference ID
func (s *Memory) Get(ref string) (StoredFile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[ref]
	return f, ok
}

// Len reports how many files are stored
func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.files)
}
