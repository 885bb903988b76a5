package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

func TestSubmissionCloneIsDeep(t *testing.T) {
	original := &model.Submission{
		ID:            "sub-1",
		ConfigVersion: 2,
		Values: model.FormData{
			"first_name": "Ada",
		},
		CreatedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}

	clone := original.Clone()
	clone.Values["first_name"] = "changed"

	gt.Value(t, original.Values["first_name"]).Equal("Ada")
	gt.Value(t, clone.ID).Equal(original.ID)
	gt.Value(t, clone.CreatedAt).Equal(original.CreatedAt)
}

func TestUploadsByField(t *testing.T) {
	uploads := []model.RawUpload{
		{FieldKey: "file_upload", FileName: "a.pdf"},
		{FieldKey: "portfolio", FileName: "b.png"},
		{FieldKey: "file_upload", FileName: "c.pdf"},
	}

	grouped := model.UploadsByField(uploads)
	gt.Map(t, grouped).HasKey(types.FieldKey("file_upload"))
	gt.Map(t, grouped).HasKey(types.FieldKey("portfolio"))

	// arrival order within a field is preserved
	gt.Array(t, grouped["file_upload"]).Length(2)
	gt.Value(t, grouped["file_upload"][0].FileName).Equal("a.pdf")
	gt.Value(t, grouped["file_upload"][1].FileName).Equal("c.pdf")

	gt.Value(t, len(model.UploadsByField(nil))).Equal(0)
}
