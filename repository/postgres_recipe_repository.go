package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"recipe-api/logger"
	"recipe-api/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PostgresRecipeRepository stores recipes in the kv_entries table, keyed by
// (namespace, owner_id, entry_id) with the full record as JSONB value.
type PostgresRecipeRepository struct {
	DB *sql.DB
}

func NewPostgresRecipeRepository(db *sql.DB) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{DB: db}
}

const (
	listEntriesQuery     = `SELECT value FROM kv_entries WHERE namespace = $1 AND owner_id = $2`
	insertEntryQuery     = `INSERT INTO kv_entries (namespace, owner_id, entry_id, value) VALUES ($1, $2, $3, $4)`
	selectForUpdateQuery = `SELECT value FROM kv_entries WHERE namespace = $1 AND owner_id = $2 AND entry_id = $3 FOR UPDATE`
	replaceEntryQuery    = `UPDATE kv_entries SET value = $4, updated_at = now() WHERE namespace = $1 AND owner_id = $2 AND entry_id = $3`
	deleteEntryQuery     = `DELETE FROM kv_entries WHERE namespace = $1 AND owner_id = $2 AND entry_id = $3`
)

// ListByOwner retrieves every recipe in the owner's partition.
func (r *PostgresRecipeRepository) ListByOwner(ctx context.Context, ownerID string) ([]*model.Recipe, error) {
	log := logger.Log.WithField("owner_id", ownerID)
	log.Debug("Executing query to list recipes by owner")

	rows, err := r.DB.QueryContext(ctx, listEntriesQuery, RecipeNamespace, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to execute list recipes query")
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]*model.Recipe, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			log.WithError(err).Error("Failed to scan recipe row")
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		rec, err := decodeRecipe(raw)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return recipes, nil
}

// Create inserts a new recipe row with a server-assigned id.
func (r *PostgresRecipeRepository) Create(ctx context.Context, ownerID string, draft model.RecipeDraft) (*model.Recipe, error) {
	rec := &model.Recipe{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
	}
	rec.Apply(draft)

	log := logger.Log.WithFields(logrus.Fields{
		"owner_id":  ownerID,
		"recipe_id": rec.ID,
	})
	log.Debug("Executing query to create a new recipe")

	value, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode recipe: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, insertEntryQuery, RecipeNamespace, ownerID, rec.ID, value); err != nil {
		log.WithError(err).Error("Failed to execute create recipe query")
		return nil, fmt.Errorf("insert recipe: %w", err)
	}
	return rec, nil
}

func (r *PostgresRecipeRepository) Update(ctx context.Context, ownerID, id string, draft model.RecipeDraft) (*model.Recipe, error) {
	return r.modify(ctx, ownerID, id, func(rec *model.Recipe) {
		rec.Apply(draft)
	})
}

func (r *PostgresRecipeRepository) ToggleFavorite(ctx context.Context, ownerID, id string) (*model.Recipe, error) {
	return r.modify(ctx, ownerID, id, func(rec *model.Recipe) {
		rec.IsFavorite = !rec.IsFavorite
	})
}

// Delete removes the row; zero affected rows means it did not exist for this owner.
func (r *PostgresRecipeRepository) Delete(ctx context.Context, ownerID, id string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"owner_id":  ownerID,
		"recipe_id": id,
	})
	log.Debug("Executing query to delete a recipe")

	res, err := r.DB.ExecContext(ctx, deleteEntryQuery, RecipeNamespace, ownerID, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete recipe query")
		return fmt.Errorf("delete recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if n == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// modify locks the row with SELECT ... FOR UPDATE, applies mutate and writes
// the result back inside one transaction.
func (r *PostgresRecipeRepository) modify(ctx context.Context, ownerID, id string, mutate func(*model.Recipe)) (*model.Recipe, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"owner_id":  ownerID,
		"recipe_id": id,
	})

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	var raw []byte
	err = tx.QueryRowContext(ctx, selectForUpdateQuery, RecipeNamespace, ownerID, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("Recipe not found for update")
			return nil, ErrRecipeNotFound
		}
		log.WithError(err).Error("Failed to execute select recipe for update query")
		return nil, fmt.Errorf("select recipe: %w", err)
	}

	current, err := decodeRecipe(raw)
	if err != nil {
		return nil, err
	}
	next := current.Clone()
	mutate(next)
	next.ID = current.ID
	next.OwnerID = current.OwnerID

	value, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("encode recipe: %w", err)
	}
	if _, err := tx.ExecContext(ctx, replaceEntryQuery, RecipeNamespace, ownerID, id, value); err != nil {
		log.WithError(err).Error("Failed to execute replace recipe query")
		return nil, fmt.Errorf("replace recipe: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}
	return next, nil
}

func decodeRecipe(raw []byte) (*model.Recipe, error) {
	var rec model.Recipe
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode recipe: %w", err)
	}
	if rec.Ingredients == nil {
		rec.Ingredients = []string{}
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	return &rec, nil
}
