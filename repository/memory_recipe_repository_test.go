package repository

import (
	"context"
	"fmt"
	"os"
	"recipe-api/logger"
	"recipe-api/model"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init(logger.WithLevel("error"))
	os.Exit(m.Run())
}

func sampleDraft() model.RecipeDraft {
	return model.RecipeDraft{
		Title:        "Pancakes",
		Ingredients:  []string{"flour", "eggs", "milk"},
		Instructions: "Mix and fry.",
		Tags:         []string{"süß"},
	}
}

func TestMemoryRecipeRepository_CreateAndList(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	empty, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	created, err := repo.Create(ctx, "alice", sampleDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.OwnerID)
	assert.False(t, created.IsFavorite)

	second, err := repo.Create(ctx, "alice", sampleDraft())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)

	list, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMemoryRecipeRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", sampleDraft())
	require.NoError(t, err)
	created.Ingredients[0] = "sand"
	created.IsFavorite = true

	list, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "flour", list[0].Ingredients[0])
	assert.False(t, list[0].IsFavorite)
}

func TestMemoryRecipeRepository_OwnerIsolation(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	rec, err := repo.Create(ctx, "alice", sampleDraft())
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.Update(ctx, "bob", rec.ID, sampleDraft())
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	_, err = repo.ToggleFavorite(ctx, "bob", rec.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	err = repo.Delete(ctx, "bob", rec.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	// Alice's recipe is untouched.
	list, err = repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec, list[0])
}

func TestMemoryRecipeRepository_UpdatePreservesFavorite(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	rec, err := repo.Create(ctx, "alice", sampleDraft())
	require.NoError(t, err)

	same, err := repo.Update(ctx, "alice", rec.ID, sampleDraft())
	require.NoError(t, err)
	assert.Equal(t, rec, same)

	_, err = repo.ToggleFavorite(ctx, "alice", rec.ID)
	require.NoError(t, err)

	changed := model.RecipeDraft{
		Title:        "Crêpes",
		Ingredients:  []string{"flour"},
		Instructions: "Thin.",
		Tags:         []string{},
	}
	updated, err := repo.Update(ctx, "alice", rec.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, updated.ID)
	assert.Equal(t, "alice", updated.OwnerID)
	assert.Equal(t, "Crêpes", updated.Title)
	assert.Empty(t, updated.Tags)
	assert.True(t, updated.IsFavorite)
}

func TestMemoryRecipeRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	_, err := repo.Update(context.Background(), "alice", "nope", sampleDraft())
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestMemoryRecipeRepository_ToggleIsInvolution(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	rec, err := repo.Create(ctx, "alice", sampleDraft())
	require.NoError(t, err)

	first, err := repo.ToggleFavorite(ctx, "alice", rec.ID)
	require.NoError(t, err)
	assert.True(t, first.IsFavorite)

	second, err := repo.ToggleFavorite(ctx, "alice", rec.ID)
	require.NoError(t, err)
	assert.False(t, second.IsFavorite)
	assert.Equal(t, rec, second)
}

func TestMemoryRecipeRepository_Delete(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	rec, err := repo.Create(ctx, "alice", sampleDraft())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "alice", rec.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "alice", rec.ID), ErrRecipeNotFound)

	list, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryRecipeRepository_ConcurrentToggles(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	rec, err := repo.Create(ctx, "alice", sampleDraft())
	require.NoError(t, err)

	const n = 101
	results := make(chan bool, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := repo.ToggleFavorite(ctx, "alice", rec.ID)
			if assert.NoError(t, err) {
				results <- got.IsFavorite
			}
		}()
	}
	wg.Wait()
	close(results)

	// Strict alternation: false -> true -> false ... yields ceil(n/2) trues.
	trues := 0
	for v := range results {
		if v {
			trues++
		}
	}
	assert.Equal(t, (n+1)/2, trues)

	list, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, n%2 == 1, list[0].IsFavorite)
}

func TestMemoryRecipeRepository_ConcurrentUpdatesAndToggles(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	rec, err := repo.Create(ctx, "alice", sampleDraft())
	require.NoError(t, err)

	const toggles, updates = 51, 50
	drafts := make(map[string]model.RecipeDraft, updates)
	for i := 0; i < updates; i++ {
		title := fmt.Sprintf("Pancakes v%d", i)
		drafts[title] = model.RecipeDraft{
			Title:        title,
			Ingredients:  []string{fmt.Sprintf("flour %d", i), "milk"},
			Instructions: fmt.Sprintf("Step %d.", i),
			Tags:         []string{fmt.Sprintf("tag-%d", i)},
		}
	}

	results := make(chan bool, toggles)
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := repo.ToggleFavorite(ctx, "alice", rec.ID)
			if assert.NoError(t, err) {
				results <- got.IsFavorite
			}
		}()
	}
	for _, d := range drafts {
		wg.Add(1)
		go func(d model.RecipeDraft) {
			defer wg.Done()
			_, err := repo.Update(ctx, "alice", rec.ID, d)
			assert.NoError(t, err)
		}(d)
	}
	wg.Wait()
	close(results)

	// Updates keep the flag, so toggles still alternate strictly.
	trues := 0
	for v := range results {
		if v {
			trues++
		}
	}
	assert.Equal(t, (toggles+1)/2, trues)

	list, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	final := list[0]
	assert.Equal(t, toggles%2 == 1, final.IsFavorite)

	// The stored fields all come from one update, never a mix.
	want, ok := drafts[final.Title]
	require.True(t, ok, "unexpected title %q", final.Title)
	assert.Equal(t, want.Ingredients, final.Ingredients)
	assert.Equal(t, want.Instructions, final.Instructions)
	assert.Equal(t, want.Tags, final.Tags)
	assert.Equal(t, rec.ID, final.ID)
	assert.Empty(t, repo.locks.locks)
}

func TestMemoryRecipeRepository_ConcurrentDifferentKeys(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	ids := make([]string, 20)
	for i := range ids {
		rec, err := repo.Create(ctx, "alice", sampleDraft())
		require.NoError(t, err)
		ids[i] = rec.ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := repo.ToggleFavorite(ctx, "alice", id)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	list, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	for _, rec := range list {
		assert.True(t, rec.IsFavorite)
	}
	assert.Empty(t, repo.locks.locks)
}
