package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/repository/firestore"
	"github.com/formwork-lab/formwork/pkg/repository/memory"
)

func testConfiguration(title string) *model.FormConfiguration {
	cfg := model.DefaultConfiguration()
	cfg.Settings.Title = title
	return cfg
}

func runConfigStoreTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("empty slots return nil", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		draft, err := repo.Config().GetDraft(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, draft).Nil()

		published, err := repo.Config().GetPublished(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, published).Nil()

		version, err := repo.Config().PublishedVersion(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, version).Equal(0)
	})

	t.Run("draft round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		in := testConfiguration("Draft title")
		gt.NoError(t, repo.Config().PutDraft(ctx, in)).Required()

		out, err := repo.Config().GetDraft(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, out).NotNil()
		gt.Bool(t, out.Equal(in)).True()

		// mutating the loaded copy must not affect the stored document
		out.Settings.Title = "mutated"
		again, err := repo.Config().GetDraft(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, again.Settings.Title).Equal("Draft title")
	})

	t.Run("promote without draft fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Config().Promote(ctx)
		gt.Error(t, err)
	})

	t.Run("promote copies draft and bumps version", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Config().PutDraft(ctx, testConfiguration("v2 title"))).Required()

		// the built-in bootstrap counts as version 1
		version, err := repo.Config().Promote(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, version).Equal(2)

		published, err := repo.Config().GetPublished(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, published.Settings.Title).Equal("v2 title")

		stored, err := repo.Config().PublishedVersion(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, stored).Equal(2)

		gt.NoError(t, repo.Config().PutDraft(ctx, testConfiguration("v3 title"))).Required()
		version, err = repo.Config().Promote(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, version).Equal(3)
	})

	t.Run("unpublished change detection", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		changed, err := repo.Config().HasUnpublishedChanges(ctx)
		gt.NoError(t, err).Required()
		gt.Bool(t, changed).False()

		gt.NoError(t, repo.Config().PutDraft(ctx, testConfiguration("pending"))).Required()
		changed, err = repo.Config().HasUnpublishedChanges(ctx)
		gt.NoError(t, err).Required()
		gt.Bool(t, changed).True()

		_, err = repo.Config().Promote(ctx)
		gt.NoError(t, err).Required()

		changed, err = repo.Config().HasUnpublishedChanges(ctx)
		gt.NoError(t, err).Required()
		gt.Bool(t, changed).False()

		gt.NoError(t, repo.Config().PutDraft(ctx, testConfiguration("changed again"))).Required()
		changed, err = repo.Config().HasUnpublishedChanges(ctx)
		gt.NoError(t, err).Required()
		gt.Bool(t, changed).True()
	})
}

func TestConfigStore_Memory(t *testing.T) {
	runConfigStoreTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestConfigStore_Firestore(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	runConfigStoreTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, databaseID,
			firestore.WithCollectionPrefix("test_"+uuid.NewString()+"_"))
		gt.NoError(t, err).Required()
		return repo
	})
}
