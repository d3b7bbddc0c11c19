package domain

import "errors"

var (
	MessageSuccessRegister     = "user registered successfully"
	MessageSuccessLogin        = "login success"
	MessageSuccessLogout       = "logout success"
	MessageSuccessGetUsers     = "success get users"
	MessageSuccessGetUser      = "success get user"
	MessageSuccessSetPassword  = "password changed successfully"
	MessageSuccessSubscribe    = "subscribed successfully"
	MessageSuccessUnsubscribe  = "unsubscribed successfully"
	MessageSuccessGetFollowing = "success get subscriptions"

	MessageFailedRegister     = "failed to register user"
	MessageFailedLogin        = "failed to login"
	MessageFailedGetUsers     = "failed to get users"
	MessageFailedGetUser      = "failed to get user"
	MessageFailedSetPassword  = "failed to change password"
	MessageFailedSubscribe    = "failed to subscribe"
	MessageFailedUnsubscribe  = "failed to unsubscribe"
	MessageFailedGetFollowing = "failed to get subscriptions"

	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("user with this email already exists")
	ErrUsernameTaken       = errors.New("user with this username already exists")
	ErrInvalidCredentials  = errors.New("unable to log in with provided credentials")
	ErrWrongPassword       = errors.New("current password is incorrect")
	ErrSelfSubscription    = errors.New("cannot subscribe to yourself")
	ErrAlreadySubscribed   = errors.New("already subscribed to this author")
	ErrNotSubscribed       = errors.New("not subscribed to this author")
	ErrInvalidRecipesLimit = errors.New("recipes_limit must be a non-negative integer")
)

type (
	UserRegisterRequest struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Username  string `json:"username" validate:"required,max=150,username"`
		FirstName string `json:"first_name" validate:"required,max=150"`
		LastName  string `json:"last_name" validate:"required,max=150"`
		Password  string `json:"password" validate:"required,min=8,max=150"`
	}

	UserRegisterResponse struct {
		Email     string `json:"email"`
		ID        uint   `json:"id"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	UserResponse struct {
		Email        string `json:"email"`
		ID           uint   `json:"id"`
		Username     string `json:"username"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		IsSubscribed bool   `json:"is_subscribed"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	TokenResponse struct {
		AuthToken string `json:"auth_token"`
	}

	SetPasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8,max=150"`
	}

	// SubscriptionResponse is a followed author together with a slice of
	// their recipes.
	SubscriptionResponse struct {
		UserResponse
		Recipes      []RecipeMinifiedResponse `json:"recipes"`
		RecipesCount int64                    `json:"recipes_count"`
	}
)
