package repository

import (
	"context"
	"errors"
	"recipe-api/model"
)

// RecipeNamespace is the first key component of every stored recipe.
const RecipeNamespace = "recipes"

// ErrRecipeNotFound is returned when no recipe exists under the given owner
// and id. A recipe owned by someone else is reported the same way.
var ErrRecipeNotFound = errors.New("recipe not found")

// IRecipeRepository defines the owner-scoped recipe store. No method
// crosses owner partitions.
type IRecipeRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Recipe, error)
	Create(ctx context.Context, ownerID string, draft model.RecipeDraft) (*model.Recipe, error)
	Update(ctx context.Context, ownerID, id string, draft model.RecipeDraft) (*model.Recipe, error)
	Delete(ctx context.Context, ownerID, id string) error
	ToggleFavorite(ctx context.Context, ownerID, id string) (*model.Recipe, error)
}
