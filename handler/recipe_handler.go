package handler

import (
	"context"
	"errors"
	"net/http"
	"recipe-api/common"
	"recipe-api/logger"
	"recipe-api/model"
	"recipe-api/repository"

	"github.com/sirupsen/logrus"
)

// RecipeUseCases is implemented by service.RecipeService.
type RecipeUseCases interface {
	ListRecipes(ctx context.Context, ownerID string) ([]*model.Recipe, error)
	CreateRecipe(ctx context.Context, ownerID string, draft model.RecipeDraft) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, ownerID, id string, draft model.RecipeDraft) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, ownerID, id string) error
	ToggleFavorite(ctx context.Context, ownerID, id string) (*model.Recipe, error)
}

// RecipeHandler holds dependencies for recipe-related handlers. The owner is
// always taken from the authenticated context, never from the request.
type RecipeHandler struct {
	service RecipeUseCases
}

func NewRecipeHandler(s RecipeUseCases) *RecipeHandler {
	return &RecipeHandler{service: s}
}

const recipeNotFoundMessage = "Recipe not found"

func ownerFrom(r *http.Request) (string, *common.AppError) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		return "", common.NewUnauthorized(unauthorizedMessage, nil)
	}
	return ownerID, nil
}

// storeError maps store outcomes to responses. Not-found covers recipes of
// other owners as well.
func storeError(err error, message string) *common.AppError {
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return common.NewNotFound(recipeNotFoundMessage, nil)
	}
	return common.NewInternal(message, err)
}

// ListRecipes godoc
// @Summary      List recipes
// @Description  Returns every recipe owned by the authenticated user.
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Recipe
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      500  {object}  common.AppError "Internal server error while retrieving recipes"
// @Router       /api/recipes [get]
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) *common.AppError {
	ownerID, appErr := ownerFrom(r)
	if appErr != nil {
		return appErr
	}

	recipes, err := h.service.ListRecipes(r.Context(), ownerID)
	if err != nil {
		return common.NewInternal("Could not retrieve recipes", err)
	}

	common.WriteJSON(w, http.StatusOK, recipes)
	return nil
}

// CreateRecipe godoc
// @Summary      Create a recipe
// @Description  Stores a new recipe for the authenticated user. Ingredients and tags are trimmed and blank entries dropped.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        recipe body model.RecipeRequest true "Recipe fields"
// @Success      201  {object}  model.Recipe
// @Failure      400  {object}  common.AppError "Missing title or instructions, or malformed body"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      500  {object}  common.AppError "Internal server error while saving the recipe"
// @Router       /api/recipes [post]
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) *common.AppError {
	ownerID, appErr := ownerFrom(r)
	if appErr != nil {
		return appErr
	}

	var req model.RecipeRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	recipe, err := h.service.CreateRecipe(r.Context(), ownerID, req.Draft())
	if err != nil {
		return common.NewInternal("Could not save recipe", err)
	}

	common.WriteJSON(w, http.StatusCreated, recipe)
	return nil
}

// UpdateRecipe godoc
// @Summary      Update a recipe
// @Description  Replaces title, ingredients, instructions and tags. The favorite flag is kept.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string              true  "Recipe ID"
// @Param        recipe body  model.RecipeRequest true  "Recipe fields"
// @Success      200  {object}  model.Recipe
// @Failure      400  {object}  common.AppError "Missing title or instructions, or malformed body"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      404  {object}  common.AppError "Recipe not found"
// @Failure      500  {object}  common.AppError "Internal server error while updating the recipe"
// @Router       /api/recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) *common.AppError {
	ownerID, appErr := ownerFrom(r)
	if appErr != nil {
		return appErr
	}

	var req model.RecipeRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	recipe, err := h.service.UpdateRecipe(r.Context(), ownerID, r.PathValue("id"), req.Draft())
	if err != nil {
		return storeError(err, "Could not update recipe")
	}

	common.WriteJSON(w, http.StatusOK, recipe)
	return nil
}

// DeleteRecipe godoc
// @Summary      Delete a recipe
// @Tags         recipes
// @Security     BearerAuth
// @Param        id   path  string  true  "Recipe ID"
// @Success      204
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      404  {object}  common.AppError "Recipe not found"
// @Failure      500  {object}  common.AppError "Internal server error while deleting the recipe"
// @Router       /api/recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) *common.AppError {
	ownerID, appErr := ownerFrom(r)
	if appErr != nil {
		return appErr
	}

	id := r.PathValue("id")
	if err := h.service.DeleteRecipe(r.Context(), ownerID, id); err != nil {
		return storeError(err, "Could not delete recipe")
	}

	logger.Log.WithFields(logrus.Fields{
		"owner_id":  ownerID,
		"recipe_id": id,
	}).Debug("Delete recipe request completed")

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// ToggleFavorite godoc
// @Summary      Toggle favorite
// @Description  Flips the favorite flag of a recipe and returns the updated recipe.
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Recipe ID"
// @Success      200  {object}  model.Recipe
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      404  {object}  common.AppError "Recipe not found"
// @Failure      500  {object}  common.AppError "Internal server error while updating the recipe"
// @Router       /api/recipes/{id}/favorite [patch]
func (h *RecipeHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) *common.AppError {
	ownerID, appErr := ownerFrom(r)
	if appErr != nil {
		return appErr
	}

	recipe, err := h.service.ToggleFavorite(r.Context(), ownerID, r.PathValue("id"))
	if err != nil {
		return storeError(err, "Could not update favorite")
	}

	common.WriteJSON(w, http.StatusOK, recipe)
	return nil
}
