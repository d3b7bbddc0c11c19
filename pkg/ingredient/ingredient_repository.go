package ingredient

import (
	"context"
	"strings"

	"foodgram/entities"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=../../internal/mocks/ingredient/ingredient_repository.go -package=mockingredient foodgram/pkg/ingredient IngredientRepository

type (
	IngredientRepository interface {
		SearchIngredients(ctx context.Context, prefix string) ([]entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error)
		GetIngredientsByIDs(ctx context.Context, ids []uint) ([]entities.Ingredient, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// SearchIngredients matches names starting with prefix, case-insensitively.
func (r *ingredientRepository) SearchIngredients(ctx context.Context, prefix string) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	q := r.db.WithContext(ctx)
	if prefix != "" {
		q = q.Where("LOWER(name) LIKE ?", escapeLike(strings.ToLower(prefix))+"%")
	}
	if err := q.Order("name").Order("id").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredientsByIDs(ctx context.Context, ids []uint) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
