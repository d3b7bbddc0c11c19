package migration

import (
	"fmt"
	"os"

	"foodgram/entities"
	"foodgram/internal/utils"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []any{
		&entities.User{},
		&entities.Subscribe{},
		&entities.Tag{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Favorite{},
		&entities.ShoppingCart{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	log.Info("Database migration complete")
	return nil
}

type (
	ingredientSeed struct {
		Name            string `json:"name" validate:"required,max=200"`
		MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
	}

	tagSeed struct {
		Name  string `json:"name" validate:"required,max=200"`
		Color string `json:"color" validate:"required,hexcolor"`
		Slug  string `json:"slug" validate:"required,max=200"`
	}
)

func readSeed[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	utils.InitValidator()
	for i := range items {
		if err := utils.Validate.Struct(items[i]); err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", path, i, err)
		}
	}
	return items, nil
}

func isEmpty(db *gorm.DB, model any) (bool, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// SeedIngredients loads the ingredient catalog from a JSON array of
// {name, measurement_unit}. It does nothing when the table already has rows.
func SeedIngredients(db *gorm.DB, path string) (int, error) {
	empty, err := isEmpty(db, &entities.Ingredient{})
	if err != nil || !empty {
		return 0, err
	}

	seeds, err := readSeed[ingredientSeed](path)
	if err != nil {
		return 0, err
	}
	if len(seeds) == 0 {
		return 0, nil
	}

	rows := make([]entities.Ingredient, 0, len(seeds))
	for _, s := range seeds {
		rows = append(rows, entities.Ingredient{Name: s.Name, MeasurementUnit: s.MeasurementUnit})
	}
	if err := db.CreateInBatches(&rows, 500).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

// SeedTags loads tags from a JSON array of {name, color, slug}. It does
// nothing when the table already has rows.
func SeedTags(db *gorm.DB, path string) (int, error) {
	empty, err := isEmpty(db, &entities.Tag{})
	if err != nil || !empty {
		return 0, err
	}

	seeds, err := readSeed[tagSeed](path)
	if err != nil {
		return 0, err
	}
	if len(seeds) == 0 {
		return 0, nil
	}

	rows := make([]entities.Tag, 0, len(seeds))
	for _, s := range seeds {
		rows = append(rows, entities.Tag{Name: s.Name, Color: s.Color, Slug: s.Slug})
	}
	if err := db.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}
