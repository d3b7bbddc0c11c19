//go:build integration

package recipe

import (
	"context"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/testinfra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type dbFixture struct {
	db         *gorm.DB
	repo       RecipeRepository
	alice, bob entities.User
	salt, eggs entities.Ingredient
	breakfast  entities.Tag
	lunch      entities.Tag
}

func newDBFixture(t *testing.T) *dbFixture {
	db := testinfra.NewPostgres(t)
	f := &dbFixture{db: db, repo: NewRecipeRepository(db)}

	f.alice = entities.User{Email: "alice@example.com", Username: "alice", Password: "x"}
	f.bob = entities.User{Email: "bob@example.com", Username: "bob", Password: "x"}
	f.salt = entities.Ingredient{Name: "Salt", MeasurementUnit: "g"}
	f.eggs = entities.Ingredient{Name: "Eggs", MeasurementUnit: "pcs"}
	f.breakfast = entities.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}
	f.lunch = entities.Tag{Name: "Lunch", Color: "#49B64E", Slug: "lunch"}
	for _, row := range []any{&f.alice, &f.bob, &f.salt, &f.eggs, &f.breakfast, &f.lunch} {
		require.NoError(t, db.Create(row).Error)
	}
	return f
}

func (f *dbFixture) create(t *testing.T, name string, tags []entities.Tag, items ...entities.RecipeIngredient) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{AuthorID: f.alice.ID, Name: name, Image: "img", Text: "text", CookingTime: 5}
	require.NoError(t, f.repo.CreateRecipe(context.Background(), recipe, tags, items))
	return recipe
}

func TestRecipeRepositoryCreateAndUpdate(t *testing.T) {
	f := newDBFixture(t)
	ctx := context.Background()

	recipe := f.create(t, "Omelette", []entities.Tag{f.breakfast},
		entities.RecipeIngredient{IngredientID: f.eggs.ID, Amount: 3},
		entities.RecipeIngredient{IngredientID: f.salt.ID, Amount: 1},
	)

	got, err := f.repo.GetRecipeByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Author.Username)
	require.Len(t, got.Tags, 1)
	require.Len(t, got.RecipeIngredients, 2)
	assert.Equal(t, "Eggs", got.RecipeIngredients[0].Ingredient.Name)

	got.Name = "Big omelette"
	require.NoError(t, f.repo.UpdateRecipe(ctx, got, []entities.Tag{f.lunch},
		[]entities.RecipeIngredient{{IngredientID: f.eggs.ID, Amount: 6}}))

	got, err = f.repo.GetRecipeByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Big omelette", got.Name)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "lunch", got.Tags[0].Slug)
	require.Len(t, got.RecipeIngredients, 1)
	assert.Equal(t, 6, got.RecipeIngredients[0].Amount)
}

func TestRecipeRepositoryRejectsDuplicateLines(t *testing.T) {
	f := newDBFixture(t)

	recipe := &entities.Recipe{AuthorID: f.alice.ID, Name: "Bad", Image: "img", Text: "text", CookingTime: 5}
	err := f.repo.CreateRecipe(context.Background(), recipe, []entities.Tag{f.breakfast}, []entities.RecipeIngredient{
		{IngredientID: f.salt.ID, Amount: 1},
		{IngredientID: f.salt.ID, Amount: 2},
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, f.db.Model(&entities.Recipe{}).Count(&count).Error)
	assert.Zero(t, count, "transaction rolled back")
}

func TestRecipeRepositoryMembership(t *testing.T) {
	f := newDBFixture(t)
	ctx := context.Background()
	recipe := f.create(t, "Omelette", []entities.Tag{f.breakfast},
		entities.RecipeIngredient{IngredientID: f.eggs.ID, Amount: 3})

	require.NoError(t, f.repo.AddFavorite(ctx, f.bob.ID, recipe.ID))
	require.ErrorIs(t, f.repo.AddFavorite(ctx, f.bob.ID, recipe.ID), gorm.ErrDuplicatedKey)

	ids, err := f.repo.GetFavoritedRecipeIDs(ctx, f.bob.ID, []uint{recipe.ID})
	require.NoError(t, err)
	assert.True(t, ids[recipe.ID])

	recipes, count, err := f.repo.GetRecipes(ctx, domain.RecipeFilter{IsFavorited: true, ViewerID: f.alice.ID}, 1, 6)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, recipes)

	recipes, count, err = f.repo.GetRecipes(ctx, domain.RecipeFilter{IsFavorited: true, ViewerID: f.bob.ID, Tags: []string{"breakfast"}}, 1, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, recipes, 1)

	removed, err := f.repo.RemoveFavorite(ctx, f.bob.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = f.repo.RemoveFavorite(ctx, f.bob.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRecipeRepositoryShoppingListRows(t *testing.T) {
	f := newDBFixture(t)
	ctx := context.Background()
	first := f.create(t, "Omelette", []entities.Tag{f.breakfast},
		entities.RecipeIngredient{IngredientID: f.salt.ID, Amount: 5},
		entities.RecipeIngredient{IngredientID: f.eggs.ID, Amount: 2})
	second := f.create(t, "Soup", []entities.Tag{f.lunch},
		entities.RecipeIngredient{IngredientID: f.salt.ID, Amount: 3})

	require.NoError(t, f.repo.AddToShoppingCart(ctx, f.bob.ID, first.ID))
	require.NoError(t, f.repo.AddToShoppingCart(ctx, f.bob.ID, second.ID))

	rows, err := f.repo.GetShoppingListRows(ctx, f.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []entities.ShoppingListRow{
		{Name: "Salt", MeasurementUnit: "g", Amount: 5},
		{Name: "Eggs", MeasurementUnit: "pcs", Amount: 2},
		{Name: "Salt", MeasurementUnit: "g", Amount: 3},
	}, rows)
	assert.Equal(t, "Shopping list:\n1. Salt - 8 g\n2. Eggs - 2 pcs\n", RenderShoppingList(AggregateShoppingList(rows)))
}

func TestRecipeRepositoryDelete(t *testing.T) {
	f := newDBFixture(t)
	ctx := context.Background()
	recipe := f.create(t, "Omelette", []entities.Tag{f.breakfast},
		entities.RecipeIngredient{IngredientID: f.eggs.ID, Amount: 3})
	require.NoError(t, f.repo.AddToShoppingCart(ctx, f.bob.ID, recipe.ID))

	require.NoError(t, f.repo.DeleteRecipe(ctx, recipe.ID))
	require.ErrorIs(t, f.repo.DeleteRecipe(ctx, recipe.ID), gorm.ErrRecordNotFound)

	var lines, carts int64
	require.NoError(t, f.db.Model(&entities.RecipeIngredient{}).Count(&lines).Error)
	require.NoError(t, f.db.Model(&entities.ShoppingCart{}).Count(&carts).Error)
	assert.Zero(t, lines)
	assert.Zero(t, carts)
}
