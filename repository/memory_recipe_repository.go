package repository

import (
	"context"
	"recipe-api/logger"
	"recipe-api/model"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MemoryRecipeRepository keeps recipes in a map partitioned by owner.
// The RWMutex only guards map access; read-modify-write sequences on one
// recipe are serialized by a per-key lock so different recipes never wait on
// each other for longer than a map lookup.
type MemoryRecipeRepository struct {
	mu    sync.RWMutex
	data  map[string]map[string]*model.Recipe
	locks *keyedMutex
}

func NewMemoryRecipeRepository() *MemoryRecipeRepository {
	return &MemoryRecipeRepository{
		data:  make(map[string]map[string]*model.Recipe),
		locks: newKeyedMutex(),
	}
}

func recipeKey(ownerID, id string) string {
	return RecipeNamespace + "/" + ownerID + "/" + id
}

// ListByOwner returns copies of every recipe under ownerID in no particular order.
func (r *MemoryRecipeRepository) ListByOwner(ctx context.Context, ownerID string) ([]*model.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	partition := r.data[ownerID]
	recipes := make([]*model.Recipe, 0, len(partition))
	for _, rec := range partition {
		recipes = append(recipes, rec.Clone())
	}
	return recipes, nil
}

// Create stores a new recipe under a freshly generated id.
func (r *MemoryRecipeRepository) Create(ctx context.Context, ownerID string, draft model.RecipeDraft) (*model.Recipe, error) {
	rec := &model.Recipe{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		IsFavorite: false,
	}
	rec.Apply(draft)

	r.mu.Lock()
	partition, ok := r.data[ownerID]
	if !ok {
		partition = make(map[string]*model.Recipe)
		r.data[ownerID] = partition
	}
	partition[rec.ID] = rec
	r.mu.Unlock()

	logger.Log.WithFields(logrus.Fields{
		"owner_id":  ownerID,
		"recipe_id": rec.ID,
	}).Debug("Recipe stored in memory")

	return rec.Clone(), nil
}

// Update replaces the mutable fields of an existing recipe, keeping its
// favorite flag.
func (r *MemoryRecipeRepository) Update(ctx context.Context, ownerID, id string, draft model.RecipeDraft) (*model.Recipe, error) {
	return r.modify(ownerID, id, func(rec *model.Recipe) {
		rec.Apply(draft)
	})
}

// ToggleFavorite flips the favorite flag under the recipe's key lock.
func (r *MemoryRecipeRepository) ToggleFavorite(ctx context.Context, ownerID, id string) (*model.Recipe, error) {
	return r.modify(ownerID, id, func(rec *model.Recipe) {
		rec.IsFavorite = !rec.IsFavorite
	})
}

func (r *MemoryRecipeRepository) Delete(ctx context.Context, ownerID, id string) error {
	unlock := r.locks.Lock(recipeKey(ownerID, id))
	defer unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	partition := r.data[ownerID]
	if _, ok := partition[id]; !ok {
		return ErrRecipeNotFound
	}
	delete(partition, id)
	if len(partition) == 0 {
		delete(r.data, ownerID)
	}
	return nil
}

// modify runs a read-modify-write cycle on one key. The stored value is
// replaced by a modified copy, so readers holding earlier copies are unaffected.
func (r *MemoryRecipeRepository) modify(ownerID, id string, mutate func(*model.Recipe)) (*model.Recipe, error) {
	unlock := r.locks.Lock(recipeKey(ownerID, id))
	defer unlock()

	r.mu.RLock()
	current, ok := r.data[ownerID][id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrRecipeNotFound
	}

	next := current.Clone()
	mutate(next)
	next.ID = current.ID
	next.OwnerID = current.OwnerID

	r.mu.Lock()
	r.data[ownerID][id] = next
	r.mu.Unlock()

	return next.Clone(), nil
}
