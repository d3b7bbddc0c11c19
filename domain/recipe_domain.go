package domain

import (
	"errors"
)

const ShoppingListFilename = "buying_list.txt"

var (
	MessageSuccessGetRecipes          = "success get recipes"
	MessageSuccessGetRecipeDetail     = "success get recipe detail"
	MessageSuccessCreateRecipe        = "recipe created successfully"
	MessageSuccessUpdateRecipe        = "recipe updated successfully"
	MessageSuccessDeleteRecipe        = "recipe deleted successfully"
	MessageSuccessAddFavorite         = "recipe added to favorites"
	MessageSuccessRemoveFavorite      = "recipe removed from favorites"
	MessageSuccessAddShoppingCart     = "recipe added to shopping cart"
	MessageSuccessRemoveShoppingCart  = "recipe removed from shopping cart"
	MessageFailedGetRecipes           = "failed to get recipes"
	MessageFailedGetRecipeDetail      = "failed to get recipe detail"
	MessageFailedCreateRecipe         = "failed to create recipe"
	MessageFailedUpdateRecipe         = "failed to update recipe"
	MessageFailedDeleteRecipe         = "failed to delete recipe"
	MessageFailedAddFavorite          = "failed to add recipe to favorites"
	MessageFailedRemoveFavorite       = "failed to remove recipe from favorites"
	MessageFailedAddShoppingCart      = "failed to add recipe to shopping cart"
	MessageFailedRemoveShoppingCart   = "failed to remove recipe from shopping cart"
	MessageFailedDownloadShoppingList = "failed to download shopping list"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("only the author can modify this recipe")
	ErrEmptyIngredients         = errors.New("add at least one ingredient")
	ErrDuplicateIngredients     = errors.New("ingredients must not repeat")
	ErrInvalidAmount            = errors.New("ingredient amount must be at least 1")
	ErrEmptyTags                = errors.New("add at least one tag")
	ErrDuplicateTags            = errors.New("tags must not repeat")
	ErrUnknownTag               = errors.New("tag does not exist")
	ErrInvalidCookingTime       = errors.New("cooking time must be at least 1 minute")
	ErrInvalidImage             = errors.New("image must be a base64 encoded data uri")
	ErrAlreadyFavorited         = errors.New("recipe already in favorites")
	ErrNotFavorited             = errors.New("recipe is not in favorites")
	ErrAlreadyInShoppingCart    = errors.New("recipe already in shopping cart")
	ErrNotInShoppingCart        = errors.New("recipe is not in shopping cart")
)

type (
	RecipeIngredientRequest struct {
		ID     uint `json:"id" validate:"required"`
		Amount int  `json:"amount" validate:"required,min=1,max=32000"`
	}

	RecipeCreateRequest struct {
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,dive"`
		Tags        []uint                    `json:"tags" validate:"required,dive,required"`
		Image       string                    `json:"image" validate:"required"`
		Name        string                    `json:"name" validate:"required,max=200"`
		Text        string                    `json:"text" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required,min=1,max=32000"`
	}

	// RecipeUpdateRequest replaces ingredients and tags wholesale; empty
	// scalar fields keep their stored values.
	RecipeUpdateRequest struct {
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,dive"`
		Tags        []uint                    `json:"tags" validate:"required,dive,required"`
		Image       string                    `json:"image" validate:"omitempty"`
		Name        string                    `json:"name" validate:"omitempty,max=200"`
		Text        string                    `json:"text" validate:"omitempty"`
		CookingTime int                       `json:"cooking_time" validate:"omitempty,min=1,max=32000"`
	}

	RecipeFilter struct {
		Tags             []string
		AuthorID         uint
		IsFavorited      bool
		IsInShoppingCart bool
		// ViewerID scopes IsFavorited and IsInShoppingCart; 0 means anonymous.
		ViewerID uint
	}

	RecipeIngredientResponse struct {
		ID              uint   `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               uint                       `json:"id"`
		Tags             []TagResponse              `json:"tags"`
		Author           UserResponse               `json:"author"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
		Name             string                     `json:"name"`
		Image            string                     `json:"image"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
	}

	RecipeMinifiedResponse struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	ShoppingListItem struct {
		Name            string
		MeasurementUnit string
		Amount          int
	}
)
