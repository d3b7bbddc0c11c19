package domain

import "foodgram/entities"

func NewUserResponse(user *entities.User, isSubscribed bool) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		Email:        user.Email,
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}
}

func NewTagResponse(tag entities.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}

func NewIngredientResponse(ingredient entities.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

func NewRecipeMinifiedResponse(recipe *entities.Recipe) RecipeMinifiedResponse {
	return RecipeMinifiedResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}
