// file: service/recipe_service.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"recipe-api/logger"
	"recipe-api/model"
	"recipe-api/repository"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RecipeService applies the recipe rules on top of the owner-scoped store
// and keeps the optional listing cache coherent.
type RecipeService struct {
	repo     repository.IRecipeRepository
	cache    ICacheClient
	cacheTTL time.Duration
}

// NewRecipeService creates a RecipeService. cache may be nil to disable caching.
func NewRecipeService(repo repository.IRecipeRepository, cache ICacheClient, cacheTTL time.Duration) *RecipeService {
	return &RecipeService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// ListRecipes returns the owner's recipes, using cache-aside when a cache
// is configured.
func (s *RecipeService) ListRecipes(ctx context.Context, ownerID string) ([]*model.Recipe, error) {
	log := logger.Log.WithField("owner_id", ownerID)

	// The generation must be read before the store so a concurrent mutation
	// moves the key away from whatever this call writes back.
	cacheKey := s.listingKey(ctx, ownerID)
	if cacheKey != "" {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var recipes []*model.Recipe
			if err := json.Unmarshal([]byte(cached), &recipes); err == nil {
				return recipes, nil
			}
			log.Warn("Discarding undecodable cached recipe list")
		}
	}

	recipes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		if data, err := json.Marshal(recipes); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				log.WithError(err).Warn("Failed to cache recipe list")
			}
		}
	}

	return recipes, nil
}

// CreateRecipe stores a new recipe for ownerID. The draft is normalized again
// so callers other than the HTTP layer (the seeder) get the same rules.
func (s *RecipeService) CreateRecipe(ctx context.Context, ownerID string, draft model.RecipeDraft) (*model.Recipe, error) {
	recipe, err := s.repo.Create(ctx, ownerID, normalizeDraft(draft))
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"owner_id":  ownerID,
		"recipe_id": recipe.ID,
	}).Info("Recipe created")

	s.invalidate(ctx, ownerID)
	return recipe, nil
}

// UpdateRecipe replaces the editable fields of one of the owner's recipes.
func (s *RecipeService) UpdateRecipe(ctx context.Context, ownerID, id string, draft model.RecipeDraft) (*model.Recipe, error) {
	if !validRecipeID(id) {
		return nil, repository.ErrRecipeNotFound
	}
	recipe, err := s.repo.Update(ctx, ownerID, id, normalizeDraft(draft))
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, ownerID)
	return recipe, nil
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, ownerID, id string) error {
	if !validRecipeID(id) {
		return repository.ErrRecipeNotFound
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"owner_id":  ownerID,
		"recipe_id": id,
	}).Info("Recipe deleted")

	s.invalidate(ctx, ownerID)
	return nil
}

func (s *RecipeService) ToggleFavorite(ctx context.Context, ownerID, id string) (*model.Recipe, error) {
	if !validRecipeID(id) {
		return nil, repository.ErrRecipeNotFound
	}
	recipe, err := s.repo.ToggleFavorite(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, ownerID)
	return recipe, nil
}

// listingKey returns the cache key of the owner's current generation, or ""
// when there is no cache or it cannot be reached.
func (s *RecipeService) listingKey(ctx context.Context, ownerID string) string {
	if s.cache == nil {
		return ""
	}
	version, err := s.cache.Get(ctx, recipesVersionKey(ownerID)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		version = "0"
	case err != nil:
		logger.Log.WithError(err).WithField("owner_id", ownerID).Warn("Recipe cache unavailable, reading from store")
		return ""
	}
	return recipesCacheKey(ownerID, version)
}

// invalidate starts a new listing generation for ownerID.
func (s *RecipeService) invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Incr(ctx, recipesVersionKey(ownerID)).Err(); err != nil {
		logger.Log.WithError(err).WithField("owner_id", ownerID).Warn("Failed to invalidate recipe cache")
	}
}

// Ids are always server-generated UUIDs in canonical form. Other spellings
// the parser accepts (urn:uuid:, braces, upper case) cannot exist.
func validRecipeID(id string) bool {
	u, err := uuid.Parse(id)
	return err == nil && u.String() == id
}

func normalizeDraft(d model.RecipeDraft) model.RecipeDraft {
	req := model.RecipeRequest{
		Title:        d.Title,
		Ingredients:  d.Ingredients,
		Instructions: d.Instructions,
		Tags:         d.Tags,
	}
	req.Normalize()
	draft := req.Draft()
	if draft.Ingredients == nil {
		draft.Ingredients = []string{}
	}
	return draft
}
