package handlers

import (
	"errors"
	"strconv"

	"foodgram/domain"
	"foodgram/internal/api/presenters"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	badRequestErrors = []error{
		domain.ErrEmailAlreadyExists,
		domain.ErrUsernameTaken,
		domain.ErrInvalidCredentials,
		domain.ErrWrongPassword,
		domain.ErrSelfSubscription,
		domain.ErrAlreadySubscribed,
		domain.ErrNotSubscribed,
		domain.ErrInvalidRecipesLimit,
		domain.ErrEmptyIngredients,
		domain.ErrDuplicateIngredients,
		domain.ErrInvalidAmount,
		domain.ErrEmptyTags,
		domain.ErrDuplicateTags,
		domain.ErrUnknownTag,
		domain.ErrInvalidCookingTime,
		domain.ErrInvalidImage,
		domain.ErrAlreadyFavorited,
		domain.ErrNotFavorited,
		domain.ErrAlreadyInShoppingCart,
		domain.ErrNotInShoppingCart,
	}

	unauthorizedErrors = []error{
		domain.ErrTokenNotFound,
		domain.ErrTokenInvalid,
		domain.ErrTokenExpired,
	}

	forbiddenErrors = []error{
		domain.ErrUnauthorizedRecipeAccess,
		domain.ErrUserNotAllowed,
	}

	notFoundErrors = []error{
		domain.ErrInvalidID,
		domain.ErrUserNotFound,
		domain.ErrRecipeNotFound,
		domain.ErrTagNotFound,
		domain.ErrIngredientNotFound,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFor maps a service error to its HTTP status. Anything unrecognised
// is a store failure.
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs), isAny(err, badRequestErrors):
		return fiber.StatusBadRequest
	case isAny(err, unauthorizedErrors):
		return fiber.StatusUnauthorized
	case isAny(err, forbiddenErrors):
		return fiber.StatusForbidden
	case isAny(err, notFoundErrors):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, message string, err error) error {
	return presenters.ErrorResponse(c, statusFor(err), message, err)
}

// paramID reads a positive numeric path parameter. Anything else cannot name
// an existing row, so it is reported as not found.
func paramID(c *fiber.Ctx, key string) (uint, error) {
	id, err := c.ParamsInt(key)
	if err != nil || id < 1 {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

func pagination(c *fiber.Ctx) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil || limit < 1 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}
	return page, limit
}

// queryFlag reports whether a boolean filter such as is_favorited=1 is set.
func queryFlag(c *fiber.Ctx, key string) bool {
	switch c.Query(key) {
	case "1", "true", "True":
		return true
	default:
		return false
	}
}
