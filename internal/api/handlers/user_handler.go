package handlers

import (
	"strconv"

	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/internal/middleware"
	"foodgram/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetUser(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		SetPassword(c *fiber.Ctx) error

		Subscribe(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
		GetSubscriptions(c *fiber.Ctx) error
	}

	userHandler struct {
		userService         user.UserService
		subscriptionService user.SubscriptionService
		validator           *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, subscriptionService user.SubscriptionService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService:         userService,
		subscriptionService: subscriptionService,
		validator:           validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.UserRegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return errorResponse(c, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return errorResponse(c, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

// Logout only acknowledges an authenticated request; tokens are stateless
// and expire on their own.
func (h *userHandler) Logout(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessLogout)
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	page, limit := pagination(c)

	users, count, err := h.userService.GetUsers(c.Context(), page, limit, middleware.UserID(c))
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, domain.NewPaginatedResponse(users, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetUser, domain.ErrUserNotFound)
	}

	res, err := h.userService.GetUserByID(c.Context(), id, middleware.UserID(c))
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	res, err := h.userService.Me(c.Context(), middleware.UserID(c))
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) SetPassword(c *fiber.Ctx) error {
	req := new(domain.SetPasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPassword, err)
	}

	if err := h.userService.SetPassword(c.Context(), middleware.UserID(c), *req); err != nil {
		return errorResponse(c, domain.MessageFailedSetPassword, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessSetPassword)
}

// recipesLimit reads the recipes_limit query parameter. Absent means no
// truncation.
func recipesLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("recipes_limit")
	if raw == "" {
		return user.NoRecipesLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.ErrInvalidRecipesLimit
	}
	return n, nil
}

func (h *userHandler) Subscribe(c *fiber.Ctx) error {
	authorID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, domain.MessageFailedSubscribe, domain.ErrUserNotFound)
	}

	limit, err := recipesLimit(c)
	if err != nil {
		return errorResponse(c, domain.MessageFailedSubscribe, err)
	}

	res, err := h.subscriptionService.Subscribe(c.Context(), middleware.UserID(c), authorID, limit)
	if err != nil {
		return errorResponse(c, domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}

func (h *userHandler) Unsubscribe(c *fiber.Ctx) error {
	authorID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, domain.MessageFailedUnsubscribe, domain.ErrUserNotFound)
	}

	if err := h.subscriptionService.Unsubscribe(c.Context(), middleware.UserID(c), authorID); err != nil {
		return errorResponse(c, domain.MessageFailedUnsubscribe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessUnsubscribe)
}

func (h *userHandler) GetSubscriptions(c *fiber.Ctx) error {
	page, limit := pagination(c)

	recipes, err := recipesLimit(c)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetFollowing, err)
	}

	res, count, err := h.subscriptionService.GetSubscriptions(c.Context(), middleware.UserID(c), page, limit, recipes)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetFollowing, err)
	}

	return presenters.SuccessResponse(c, domain.NewPaginatedResponse(res, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetFollowing)
}
