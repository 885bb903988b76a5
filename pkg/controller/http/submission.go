package http

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
	"github.com/formwork-lab/formwork/pkg/usecase"
	"github.com/formwork-lab/formwork/pkg/utils/errutil"
	"github.com/formwork-lab/formwork/pkg/utils/safe"
)

// maxSubmissionMemory bounds the in-memory portion of multipart parsing;
// larger file parts spill to disk
const maxSubmissionMemory = 16 << 20

// createSubmission accepts either a JSON body {"values": {...}} or a
// multipart form with a "values" JSON part plus file parts named by their
// field key.
func (s *Server) createSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, uploads, err := decodeSubmissionRequest(r)
	if err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{
			"error": "invalid submission body",
		})
		return
	}
	defer func() {
		for _, up := range uploads {
			if closer, ok := up.Content.(io.Closer); ok {
				safe.Close(ctx, closer)
			}
		}
	}()

	sub, fieldErrs, err := s.uc.Submission.Submit(ctx, data, uploads)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	if fieldErrs != nil {
		respondFieldErrors(ctx, w, fieldErrs)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, map[string]any{
		"id":             sub.ID,
		"config_version": sub.ConfigVersion,
	})
}

func decodeSubmissionRequest(r *http.Request) (model.FormData, []model.RawUpload, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = "application/json"
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		var body struct {
			Values model.FormData `json:"values"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, nil, goerr.Wrap(err, "failed to decode submission body")
		}
		return body.Values, nil, nil
	}

	if err := r.ParseMultipartForm(maxSubmissionMemory); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to parse multipart form")
	}

	var data model.FormData
	if raw := r.FormValue("values"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, nil, goerr.Wrap(err, "failed to decode values part")
		}
	}
	if data == nil {
		data = model.FormData{}
	}

	var uploads []model.RawUpload
	for key, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				return nil, nil, goerr.Wrap(err, "failed to open upload part",
					goerr.V("field_key", key))
			}
			uploads = append(uploads, model.RawUpload{
				FieldKey: types.FieldKey(key),
				FileName: fh.Filename,
				Size:     fh.Size,
				MIMEType: fh.Header.Get("Content-Type"),
				Content:  f,
			})
		}
	}

	return data, uploads, nil
}

func (s *Server) getSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	view, err := s.uc.Submission.Display(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrSubmissionNotFound) {
			respondJSON(ctx, w, http.StatusNotFound, map[string]string{
				"error": "submission not found",
			})
			return
		}
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, view)
}

// exportSubmissions streams all submissions as CSV
func (s *Server) exportSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	headers, err := s.uc.Submission.ExportHeaders(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	rows, err := s.uc.Submission.ExportRows(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="submissions.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		_ = errutil.Handle(ctx, err, "failed to write export header")
		return
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			_ = errutil.Handle(ctx, err, "failed to write export row")
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = errutil.Handle(ctx, err, "failed to flush export")
	}
}
