package config

import (
	"context"
	"errors"
	"os"
	"time"

	"foodgram/domain"
	"foodgram/internal/api/handlers"
	"foodgram/internal/api/presenters"
	"foodgram/internal/api/routes"
	"foodgram/internal/middleware"
	"foodgram/internal/utils"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/jwt"
	"foodgram/pkg/recipe"
	"foodgram/pkg/tag"
	"foodgram/pkg/user"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

type Repositories struct {
	User         user.UserRepository
	Subscription user.SubscriptionRepository
	Tag          tag.TagRepository
	Ingredient   ingredient.IngredientRepository
	Recipe       recipe.RecipeRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		User:         user.NewUserRepository(db),
		Subscription: user.NewSubscriptionRepository(db),
		Tag:          tag.NewTagRepository(db),
		Ingredient:   ingredient.NewIngredientRepository(db),
		Recipe:       recipe.NewRecipeRepository(db),
	}
}

// NewFiber returns a bare app that speaks the JSON envelope for errors no
// handler caught.
func NewFiber() *fiber.App {
	return fiber.New(fiber.Config{
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return presenters.ErrorResponse(c, code, domain.MessageFailedProcessRequest, err)
		},
	})
}

// Register wires services, handlers and routes onto app.
func Register(app *fiber.App, repos Repositories, imageStorage storage.ImageStorage, jwtService jwt.JWTService) {
	utils.InitValidator()
	validator := utils.Validate
	middlewares := middleware.NewMiddleware()

	// Service
	userService := user.NewUserService(repos.User, repos.Subscription, jwtService)
	subscriptionService := user.NewSubscriptionService(repos.Subscription, repos.User, repos.Recipe)
	tagService := tag.NewTagService(repos.Tag)
	ingredientService := ingredient.NewIngredientService(repos.Ingredient)
	recipeService := recipe.NewRecipeService(repos.Recipe, repos.Ingredient, repos.Tag, repos.Subscription, imageStorage)

	// Handler
	userHandler := handlers.NewUserHandler(userService, subscriptionService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	tagHandler := handlers.NewTagHandler(tagService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		TagHandler:        tagHandler,
		IngredientHandler: ingredientHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
}

func newImageStorage(ctx context.Context) (storage.ImageStorage, error) {
	cfg := storage.LoadS3Config()
	if cfg.Bucket == "" {
		log.Info("AWS_S3_BUCKET not set, storing images inline")
		return storage.NewPassthrough(), nil
	}
	return storage.NewAwsS3(ctx, cfg)
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	secret := utils.GetConfig("JWT_SECRET")
	if secret == "" {
		return nil, domain.ErrJWTSecretMissing
	}

	app := NewFiber()
	middlewares := middleware.NewMiddleware()

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     file,
	}))
	app.Use(middlewares.MetricsMiddleware())
	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_PER_SECOND"),
		Expiration: 1 * time.Second,
		LimitReached: func(c *fiber.Ctx) error {
			return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, domain.MessageFailedProcessRequest, fiber.ErrTooManyRequests)
		},
	}))

	// utils
	imageStorage, err := newImageStorage(context.Background())
	if err != nil {
		return nil, err
	}
	jwtService := jwt.NewJWTService(
		secret,
		time.Duration(utils.GetConfigInt("JWT_TTL_MINUTES"))*time.Minute,
	)

	Register(app, NewRepositories(db), imageStorage, jwtService)
	return app, nil
}
