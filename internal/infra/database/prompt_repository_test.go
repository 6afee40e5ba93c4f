package database

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// openTestDB usa TEST_DATABASE_URL; sem ela os testes de Postgres são pulados.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := NewDBConnection(url)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, db))
	_, err = db.ExecContext(ctx, "TRUNCATE prompts")
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func TestPromptRepository_SeedAndSoftDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewPromptRepository(db)
	ctx := context.Background()

	require.NoError(t, SeedDefaults(ctx, repo))
	require.NoError(t, SeedDefaults(ctx, repo)) // segunda vez não duplica

	prompts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, prompts, 4)

	cold, err := repo.FindByName(ctx, "Cold Outreach")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, cold.ID))

	_, err = repo.FindByID(ctx, cold.ID)
	assert.ErrorIs(t, err, entity.ErrPromptNotFound)

	var total int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM prompts").Scan(&total))
	assert.Equal(t, 4, total)

	// o nome volta a ficar livre depois do soft delete
	again, _ := entity.NewPromptTemplate("Cold Outreach", "system", "Hi {name}", "")
	assert.NoError(t, repo.Create(ctx, again))
}

func TestPromptRepository_UniqueName(t *testing.T) {
	db := openTestDB(t)
	repo := NewPromptRepository(db)
	ctx := context.Background()

	a, _ := entity.NewPromptTemplate("Intro", "system", "Hi {name}", "gpt-4o")
	b, _ := entity.NewPromptTemplate("Intro", "system", "Hi {name}", "")

	require.NoError(t, repo.Create(ctx, a))
	assert.ErrorIs(t, repo.Create(ctx, b), entity.ErrPromptNameTaken)

	a.UserPrompt = "Hello {name}"
	require.NoError(t, repo.Update(ctx, a))

	found, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello {name}", found.UserPrompt)
	assert.Equal(t, "gpt-4o", found.Model)

	_, err = repo.FindByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrPromptNotFound)
}

func TestPromptRepository_KeepsLastPrompt(t *testing.T) {
	db := openTestDB(t)
	repo := NewPromptRepository(db)
	ctx := context.Background()

	a, _ := entity.NewPromptTemplate("Intro", "system", "Hi {name}", "")
	b, _ := entity.NewPromptTemplate("Outro", "system", "Bye {name}", "")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	errs := make(chan error, 2)
	for _, id := range []string{a.ID, b.ID} {
		go func(id string) { errs <- repo.Delete(ctx, id) }(id)
	}

	var lastPrompt int
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			assert.ErrorIs(t, err, entity.ErrLastPrompt)
			lastPrompt++
		}
	}
	assert.Equal(t, 1, lastPrompt)

	prompts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, prompts, 1)

	assert.ErrorIs(t, repo.Delete(ctx, "not-a-uuid"), entity.ErrPromptNotFound)
}
