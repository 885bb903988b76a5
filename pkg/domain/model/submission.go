package model

import (
	"io"
	"time"

	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// Submission is one accepted, sanitized form submission. ConfigVersion pins
// the published configuration version the submission was validated against
// so in-flight submissions stay consistent across publishes.
type Submission struct {
	ID            string    `json:"id"`
	ConfigVersion int       `json:"config_version"`
	Values        FormData  `json:"values" masq:"secret"`
	CreatedAt     time.Time `json:"created_at"`
}

// Clone creates a deep copy of the submission
func (s *Submission) Clone() *Submission {
	out := *s
	if s.Values != nil {
		out.Values = make(FormData, len(s.Values))
		for k, v := range s.Values {
			out.Values[k] = v
		}
	}
	return &out
}

// RawUpload is the metadata of one incoming multipart file. The core only
// inspects the declared metadata; bytes are consumed by the upload
// collaborator alone.
type RawUpload struct {
	FieldKey types.FieldKey `json:"field_key"`
	FileName string         `json:"file_name"`
	Size     int64          `json:"size"`
	MIMEType string         `json:"mime_type"`
	Content  io.Reader      `json:"-"`
}

// UploadsByField groups raw uploads by their target field key, preserving
// arrival order within each field
func UploadsByField(uploads []RawUpload) map[types.FieldKey][]RawUpload {
	out := make(map[types.FieldKey][]RawUpload)
	for _, u := range uploads {
		out[u.FieldKey] = append(out[u.FieldKey], u)
	}
	return out
}
