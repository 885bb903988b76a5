package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/repository/firestore"
	"github.com/formwork-lab/formwork/pkg/repository/memory"
)

func testSubmission(id string, createdAt time.Time) *model.Submission {
	return &model.Submission{
		ID:            id,
		ConfigVersion: 1,
		Values: model.FormData{
			"first_name": "Ada",
			"email":      "ada@example.com",
		},
		CreatedAt: createdAt,
	}
}

func runSubmissionRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("put and get round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		in := testSubmission(uuid.NewString(), time.Now().UTC().Truncate(time.Millisecond))
		gt.NoError(t, repo.Submission().Put(ctx, in)).Required()

		out, err := repo.Submission().Get(ctx, in.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, out).NotNil()
		gt.Value(t, out.ID).Equal(in.ID)
		gt.Value(t, out.ConfigVersion).Equal(in.ConfigVersion)
		gt.Value(t, out.Values["first_name"]).Equal("Ada")
	})

	t.Run("get unknown id returns nil", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		out, err := repo.Submission().Get(ctx, uuid.NewString())
		gt.NoError(t, err).Required()
		gt.Value(t, out).Nil()
	})

	t.Run("list orders by creation time", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC().Truncate(time.Millisecond)
		second := testSubmission(uuid.NewString(), base.Add(time.Second))
		first := testSubmission(uuid.NewString(), base)
		third := testSubmission(uuid.NewString(), base.Add(2*time.Second))

		for _, sub := range []*model.Submission{second, first, third} {
			gt.NoError(t, repo.Submission().Put(ctx, sub)).Required()
		}

		out, err := repo.Submission().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, out).Length(3).Required()
		gt.Value(t, out[0].ID).Equal(first.ID)
		gt.Value(t, out[1].ID).Equal(second.ID)
		gt.Value(t, out[2].ID).Equal(third.ID)
	})

	t.Run("stored submission is isolated from caller", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		in := testSubmission(uuid.NewString(), time.Now().UTC().Truncate(time.Millisecond))
		gt.NoError(t, repo.Submission().Put(ctx, in)).Required()

		in.Values["first_name"] = "mutated"

		out, err := repo.Submission().Get(ctx, in.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, out.Values["first_name"]).Equal("Ada")
	})
}

func TestSubmissionRepository_Memory(t *testing.T) {
	runSubmissionRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestSubmissionRepository_Firestore(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	runSubmissionRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, databaseID,
			firestore.WithCollectionPrefix("test_"+uuid.NewString()+"_"))
		gt.NoError(t, err).Required()
		return repo
	})
}
