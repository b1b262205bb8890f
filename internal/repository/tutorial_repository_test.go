package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"tutorials-be/internal/entities"
	"tutorials-be/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newTestRepository connects to the Mongo instance named by MONGO_TEST_URI
// and hands back a repository over a dropped-clean test database. The whole
// test file is skipped when the variable is unset.
func newTestRepository(t *testing.T) repository.TutorialRepository {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set; skipping Mongo integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	db := client.Database("tutorials_test")
	require.NoError(t, db.Collection("tutorials").Drop(ctx))

	return repository.NewTutorialRepository(db)
}

func createTutorial(t *testing.T, repo repository.TutorialRepository, title, description string, published bool) *entities.Tutorial {
	t.Helper()
	created, err := repo.Create(context.Background(), &entities.Tutorial{
		Title:       title,
		Description: description,
		Published:   published,
	})
	require.NoError(t, err)
	return created
}

func TestRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created := createTutorial(t, repo, "Go Tutorial", "learn Go", false)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	found, err := repo.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Go Tutorial", found.Title)
	assert.Equal(t, "learn Go", found.Description)
	assert.False(t, found.Published)
}

func TestRepositoryIDClassification(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, repository.ErrInvalidID)

		assert.ErrorIs(t, repo.Delete(ctx, "not-an-id"), repository.ErrInvalidID)
	})

	t.Run("well-formed but unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "65a1b2c3d4e5f6a7b8c9d0e1")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, "65a1b2c3d4e5f6a7b8c9d0e1"), repository.ErrNotFound)
	})
}

func TestRepositoryTitleFilter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	createTutorial(t, repo, "Angular Basics", "", false)
	createTutorial(t, repo, "Advanced angular", "", false)
	createTutorial(t, repo, "React Hooks", "", false)

	all, err := repo.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Case-insensitive substring match
	filtered, err := repo.FindAll(ctx, "Angular")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	filtered, err = repo.FindAll(ctx, "hooks")
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	filtered, err = repo.FindAll(ctx, "Vue")
	require.NoError(t, err)
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestRepositoryFindPublished(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	createTutorial(t, repo, "Draft", "", false)
	published := createTutorial(t, repo, "Live", "", true)

	list, err := repo.FindPublished(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, published.ID, list[0].ID)
}

func TestRepositoryUpdate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created := createTutorial(t, repo, "Go Tutorial", "learn Go", false)

	// BSON datetimes carry millisecond precision; give updatedAt room to move
	time.Sleep(5 * time.Millisecond)

	created.Title = "Go Tutorial, revised"
	created.Published = true
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Go Tutorial, revised", found.Title)
	assert.Equal(t, "learn Go", found.Description)
	assert.True(t, found.Published)
	assert.True(t, found.UpdatedAt.After(found.CreatedAt))

	t.Run("unknown id", func(t *testing.T) {
		ghost := *created
		ghost.ID = created.ID
		require.NoError(t, repo.Delete(ctx, created.ID.Hex()))
		assert.ErrorIs(t, repo.Update(ctx, &ghost), repository.ErrNotFound)
	})
}

func TestRepositoryDeleteAll(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	createTutorial(t, repo, "One", "", false)
	createTutorial(t, repo, "Two", "", false)
	createTutorial(t, repo, "Three", "", true)

	count, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	// Repeating on an empty collection reports zero
	count, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	all, err := repo.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}
