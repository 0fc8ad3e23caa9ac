package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"recipe-api/logger"
	"recipe-api/model"
	"sync"

	"github.com/sirupsen/logrus"
)

// RecipeBook is the client-side copy of the user's recipes. Mutations go to
// the server first and are applied locally only on success.
type RecipeBook struct {
	client *Client

	mu      sync.RWMutex
	recipes []model.Recipe
	loading bool
	lastErr error
}

func NewRecipeBook(c *Client) *RecipeBook {
	return &RecipeBook{client: c}
}

// Recipes returns a snapshot of the local list.
func (b *RecipeBook) Recipes() []model.Recipe {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.Recipe, len(b.recipes))
	copy(out, b.recipes)
	return out
}

func (b *RecipeBook) Loading() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loading
}

// Err is the error of the last operation, nil after a success.
func (b *RecipeBook) Err() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastErr
}

// Visible applies filter to the local list.
func (b *RecipeBook) Visible(filter *TagFilter) []model.Recipe {
	return filter.Apply(b.Recipes())
}

func (b *RecipeBook) begin() {
	b.mu.Lock()
	b.loading = true
	b.lastErr = nil
	b.mu.Unlock()
}

// finish records err and runs apply under the lock when err is nil.
func (b *RecipeBook) finish(err error, apply func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false
	b.lastErr = err
	if err == nil && apply != nil {
		apply()
	}
	if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrNotLoggedIn) {
		b.recipes = nil
	}
	return err
}

// Fetch replaces the local list with the server's.
func (b *RecipeBook) Fetch(ctx context.Context) error {
	b.begin()
	var recipes []model.Recipe
	err := b.client.do(ctx, http.MethodGet, "/api/recipes", nil, &recipes)
	if err != nil {
		b.mu.Lock()
		b.recipes = nil
		b.mu.Unlock()
	}
	return b.finish(err, func() {
		b.recipes = recipes
		logger.Log.WithField("count", len(recipes)).Debug("Recipes loaded")
	})
}

// Add creates a recipe and puts it at the top of the local list.
func (b *RecipeBook) Add(ctx context.Context, req model.RecipeRequest) (*model.Recipe, error) {
	b.begin()
	var created model.Recipe
	err := b.client.do(ctx, http.MethodPost, "/api/recipes", req, &created)
	if err := b.finish(err, func() {
		b.recipes = append([]model.Recipe{created}, b.recipes...)
	}); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a recipe and its local copy.
func (b *RecipeBook) Update(ctx context.Context, id string, req model.RecipeRequest) (*model.Recipe, error) {
	b.begin()
	var updated model.Recipe
	err := b.client.do(ctx, http.MethodPut, recipePath(id), req, &updated)
	if isStatus(err, http.StatusNotFound) {
		err = b.dropGone(id)
	}
	if err := b.finish(err, func() { b.replace(updated) }); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a recipe. A 404 removes the local copy as well and
// reports ErrRecipeGone.
func (b *RecipeBook) Delete(ctx context.Context, id string) error {
	b.begin()
	err := b.client.do(ctx, http.MethodDelete, recipePath(id), nil, nil)
	if isStatus(err, http.StatusNotFound) {
		err = b.dropGone(id)
	}
	return b.finish(err, func() { b.remove(id) })
}

// ToggleFavorite flips the favorite flag and stores the server's answer.
func (b *RecipeBook) ToggleFavorite(ctx context.Context, id string) (*model.Recipe, error) {
	b.begin()
	var toggled model.Recipe
	err := b.client.do(ctx, http.MethodPatch, recipePath(id)+"/favorite", nil, &toggled)
	if isStatus(err, http.StatusNotFound) {
		err = b.dropGone(id)
	}
	if err := b.finish(err, func() { b.replace(toggled) }); err != nil {
		return nil, err
	}
	return &toggled, nil
}

func (b *RecipeBook) dropGone(id string) error {
	logger.Log.WithFields(logrus.Fields{"recipe_id": id}).Info("Recipe is gone on the server, dropping local copy")
	b.mu.Lock()
	b.remove(id)
	b.mu.Unlock()
	return ErrRecipeGone
}

// remove and replace expect b.mu to be held.
func (b *RecipeBook) remove(id string) {
	kept := b.recipes[:0]
	for _, r := range b.recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	b.recipes = kept
}

func (b *RecipeBook) replace(r model.Recipe) {
	for i := range b.recipes {
		if b.recipes[i].ID == r.ID {
			b.recipes[i] = r
			return
		}
	}
}

func recipePath(id string) string {
	return "/api/recipes/" + url.PathEscape(id)
}
