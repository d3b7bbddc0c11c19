package recipe

import (
	"context"

	"foodgram/domain"
	"foodgram/entities"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=../../internal/mocks/recipe/recipe_repository.go -package=mockrecipe foodgram/pkg/recipe RecipeRepository

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, tags []entities.Tag, items []entities.RecipeIngredient) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags []entities.Tag, items []entities.RecipeIngredient) error
		DeleteRecipe(ctx context.Context, id uint) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesByAuthor(ctx context.Context, authorID uint, limit int) ([]*entities.Recipe, error)
		CountRecipesByAuthor(ctx context.Context, authorID uint) (int64, error)

		AddFavorite(ctx context.Context, userID, recipeID uint) error
		RemoveFavorite(ctx context.Context, userID, recipeID uint) (bool, error)
		IsFavorited(ctx context.Context, userID, recipeID uint) (bool, error)
		GetFavoritedRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error)

		AddToShoppingCart(ctx context.Context, userID, recipeID uint) error
		RemoveFromShoppingCart(ctx context.Context, userID, recipeID uint) (bool, error)
		IsInShoppingCart(ctx context.Context, userID, recipeID uint) (bool, error)
		GetShoppingCartRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error)
		GetShoppingListRows(ctx context.Context, userID uint) ([]entities.ShoppingListRow, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id") }).
		Preload("RecipeIngredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id") }).
		Preload("RecipeIngredients.Ingredient")
}

// CreateRecipe inserts the recipe, its tag links and ingredient lines in one
// transaction.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, tags []entities.Tag, items []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe.Tags = tags
		recipe.RecipeIngredients = nil
		if err := tx.Omit("Author", "Tags.*").Create(recipe).Error; err != nil {
			return err
		}
		return insertItems(tx, recipe.ID, items)
	})
}

// UpdateRecipe rewrites the scalar fields and replaces every tag link and
// ingredient line. Readers never observe a partially replaced set.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags []entities.Tag, items []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{ID: recipe.ID}).
			Updates(map[string]any{
				"name":         recipe.Name,
				"image":        recipe.Image,
				"text":         recipe.Text,
				"cooking_time": recipe.CookingTime,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Recipe{ID: recipe.ID}).Association("Tags").Replace(tags); err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return insertItems(tx, recipe.ID, items)
	})
}

func insertItems(tx *gorm.DB, recipeID uint, items []entities.RecipeIngredient) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]entities.RecipeIngredient, 0, len(items))
	for _, item := range items {
		rows = append(rows, entities.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: item.IngredientID,
			Amount:       item.Amount,
		})
	}
	return tx.Omit("Ingredient").Create(&rows).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		for _, model := range []any{&entities.RecipeIngredient{}, &entities.Favorite{}, &entities.ShoppingCart{}} {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(&entities.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := withDetails(r.db.WithContext(ctx)).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func applyRecipeFilter(db *gorm.DB, filter domain.RecipeFilter) *gorm.DB {
	if len(filter.Tags) > 0 {
		db = db.Where("recipes.id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.Tags))
	}
	if filter.AuthorID != 0 {
		db = db.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if filter.ViewerID != 0 && filter.IsFavorited {
		db = db.Where("recipes.id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Model(&entities.Favorite{}).
			Select("recipe_id").
			Where("user_id = ?", filter.ViewerID))
	}
	if filter.ViewerID != 0 && filter.IsInShoppingCart {
		db = db.Where("recipes.id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Model(&entities.ShoppingCart{}).
			Select("recipe_id").
			Where("user_id = ?", filter.ViewerID))
	}
	return db
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := applyRecipeFilter(r.db.WithContext(ctx).Model(&entities.Recipe{}), filter).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := withDetails(applyRecipeFilter(r.db.WithContext(ctx).Model(&entities.Recipe{}), filter)).
		Offset(offset).
		Limit(limit).
		Order("recipes.id desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// GetRecipesByAuthor returns the author's newest recipes first. A negative
// limit returns all of them.
func (r *recipeRepository) GetRecipesByAuthor(ctx context.Context, authorID uint, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if limit == 0 {
		return recipes, nil
	}
	q := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CountRecipesByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) AddFavorite(ctx context.Context, userID, recipeID uint) error {
	return r.db.WithContext(ctx).Create(&entities.Favorite{UserID: userID, RecipeID: recipeID}).Error
}

func (r *recipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{})
	return res.RowsAffected > 0, res.Error
}

func (r *recipeRepository) IsFavorited(ctx context.Context, userID, recipeID uint) (bool, error) {
	return r.exists(ctx, &entities.Favorite{}, userID, recipeID)
}

func (r *recipeRepository) GetFavoritedRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	return r.memberIDs(ctx, &entities.Favorite{}, userID, recipeIDs)
}

func (r *recipeRepository) AddToShoppingCart(ctx context.Context, userID, recipeID uint) error {
	return r.db.WithContext(ctx).Create(&entities.ShoppingCart{UserID: userID, RecipeID: recipeID}).Error
}

func (r *recipeRepository) RemoveFromShoppingCart(ctx context.Context, userID, recipeID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.ShoppingCart{})
	return res.RowsAffected > 0, res.Error
}

func (r *recipeRepository) IsInShoppingCart(ctx context.Context, userID, recipeID uint) (bool, error) {
	return r.exists(ctx, &entities.ShoppingCart{}, userID, recipeID)
}

func (r *recipeRepository) GetShoppingCartRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	return r.memberIDs(ctx, &entities.ShoppingCart{}, userID, recipeIDs)
}

// GetShoppingListRows joins the user's cart to ingredient lines, in cart
// order then line order.
func (r *recipeRepository) GetShoppingListRows(ctx context.Context, userID uint) ([]entities.ShoppingListRow, error) {
	var rows []entities.ShoppingListRow
	if err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, recipe_ingredients.amount AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Order("shopping_carts.id").
		Order("recipe_ingredients.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) exists(ctx context.Context, model any, userID, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) memberIDs(ctx context.Context, model any, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	res := make(map[uint]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return res, nil
	}

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		res[id] = true
	}
	return res, nil
}
