package recipe

import (
	"context"
	"errors"
	"fmt"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/metrics"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/tag"
	"foodgram/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID uint, viewerID uint) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.RecipeCreateRequest, authorID uint) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID uint, req domain.RecipeUpdateRequest, userID uint) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID uint, userID uint) error

		AddFavorite(ctx context.Context, recipeID uint, userID uint) (domain.RecipeMinifiedResponse, error)
		RemoveFavorite(ctx context.Context, recipeID uint, userID uint) error
		AddToShoppingCart(ctx context.Context, recipeID uint, userID uint) (domain.RecipeMinifiedResponse, error)
		RemoveFromShoppingCart(ctx context.Context, recipeID uint, userID uint) error
		DownloadShoppingList(ctx context.Context, userID uint) (string, error)
	}

	recipeService struct {
		recipeRepository       RecipeRepository
		ingredientRepository   ingredient.IngredientRepository
		tagRepository          tag.TagRepository
		subscriptionRepository user.SubscriptionRepository
		imageStorage           storage.ImageStorage
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	tagRepository tag.TagRepository,
	subscriptionRepository user.SubscriptionRepository,
	imageStorage storage.ImageStorage,
) RecipeService {
	return &recipeService{
		recipeRepository:       recipeRepository,
		ingredientRepository:   ingredientRepository,
		tagRepository:          tagRepository,
		subscriptionRepository: subscriptionRepository,
		imageStorage:           imageStorage,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list recipes: %w", err)
	}

	res, err := s.toResponses(ctx, recipes, filter.ViewerID)
	if err != nil {
		return nil, 0, err
	}
	return res, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID uint, viewerID uint) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	res, err := s.toResponses(ctx, []*entities.Recipe{recipe}, viewerID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return res[0], nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeCreateRequest, authorID uint) (domain.RecipeResponse, error) {
	if req.CookingTime < 1 {
		return domain.RecipeResponse{}, domain.ErrInvalidCookingTime
	}
	tags, items, err := s.resolveAssociations(ctx, req.Ingredients, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	image, err := s.imageStorage.SaveImage(ctx, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, fmt.Errorf("save image: %w", err)
	}

	recipe := &entities.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe, tags, items); err != nil {
		log.Errorf("create recipe for author %d: %v", authorID, err)
		s.discardImage(ctx, image)
		return domain.RecipeResponse{}, fmt.Errorf("create recipe: %w", err)
	}
	metrics.RecipeWrites.WithLabelValues("create").Inc()

	return s.GetRecipeDetail(ctx, recipe.ID, authorID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID uint, req domain.RecipeUpdateRequest, userID uint) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.CookingTime < 0 {
		return domain.RecipeResponse{}, domain.ErrInvalidCookingTime
	}
	tags, items, err := s.resolveAssociations(ctx, req.Ingredients, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	oldImage := recipe.Image
	if req.Image != "" {
		image, err := s.imageStorage.SaveImage(ctx, req.Image)
		if err != nil {
			return domain.RecipeResponse{}, fmt.Errorf("save image: %w", err)
		}
		recipe.Image = image
	}
	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Text != "" {
		recipe.Text = req.Text
	}
	if req.CookingTime != 0 {
		recipe.CookingTime = req.CookingTime
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tags, items); err != nil {
		log.Errorf("update recipe %d: %v", recipeID, err)
		if recipe.Image != oldImage {
			s.discardImage(ctx, recipe.Image)
		}
		return domain.RecipeResponse{}, fmt.Errorf("update recipe %d: %w", recipeID, err)
	}
	if recipe.Image != oldImage {
		s.discardImage(ctx, oldImage)
	}
	metrics.RecipeWrites.WithLabelValues("update").Inc()

	return s.GetRecipeDetail(ctx, recipe.ID, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID uint, userID uint) error {
	recipe, err := s.getOwnRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return fmt.Errorf("delete recipe %d: %w", recipe.ID, err)
	}
	s.discardImage(ctx, recipe.Image)
	metrics.RecipeWrites.WithLabelValues("delete").Inc()
	return nil
}

func (s *recipeService) AddFavorite(ctx context.Context, recipeID uint, userID uint) (domain.RecipeMinifiedResponse, error) {
	return s.addMembership(ctx, recipeID, userID, membership{
		exists:  s.recipeRepository.IsFavorited,
		add:     s.recipeRepository.AddFavorite,
		errDupe: domain.ErrAlreadyFavorited,
		label:   "favorite",
	})
}

func (s *recipeService) RemoveFavorite(ctx context.Context, recipeID uint, userID uint) error {
	return s.removeMembership(ctx, recipeID, userID, s.recipeRepository.RemoveFavorite, domain.ErrNotFavorited)
}

func (s *recipeService) AddToShoppingCart(ctx context.Context, recipeID uint, userID uint) (domain.RecipeMinifiedResponse, error) {
	return s.addMembership(ctx, recipeID, userID, membership{
		exists:  s.recipeRepository.IsInShoppingCart,
		add:     s.recipeRepository.AddToShoppingCart,
		errDupe: domain.ErrAlreadyInShoppingCart,
		label:   "shopping_cart",
	})
}

func (s *recipeService) RemoveFromShoppingCart(ctx context.Context, recipeID uint, userID uint) error {
	return s.removeMembership(ctx, recipeID, userID, s.recipeRepository.RemoveFromShoppingCart, domain.ErrNotInShoppingCart)
}

func (s *recipeService) DownloadShoppingList(ctx context.Context, userID uint) (string, error) {
	rows, err := s.recipeRepository.GetShoppingListRows(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load shopping list: %w", err)
	}
	metrics.ShoppingListDownloads.Inc()
	return RenderShoppingList(AggregateShoppingList(rows)), nil
}

type membership struct {
	exists  func(ctx context.Context, userID, recipeID uint) (bool, error)
	add     func(ctx context.Context, userID, recipeID uint) error
	errDupe error
	label   string
}

func (s *recipeService) addMembership(ctx context.Context, recipeID, userID uint, m membership) (domain.RecipeMinifiedResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeMinifiedResponse{}, err
	}

	exists, err := m.exists(ctx, userID, recipe.ID)
	if err != nil {
		return domain.RecipeMinifiedResponse{}, fmt.Errorf("check %s: %w", m.label, err)
	}
	if exists {
		return domain.RecipeMinifiedResponse{}, m.errDupe
	}

	if err := m.add(ctx, userID, recipe.ID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeMinifiedResponse{}, m.errDupe
		}
		return domain.RecipeMinifiedResponse{}, fmt.Errorf("add %s: %w", m.label, err)
	}
	metrics.RecipeWrites.WithLabelValues(m.label).Inc()
	return domain.NewRecipeMinifiedResponse(recipe), nil
}

func (s *recipeService) removeMembership(
	ctx context.Context,
	recipeID, userID uint,
	remove func(ctx context.Context, userID, recipeID uint) (bool, error),
	errMissing error,
) error {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	removed, err := remove(ctx, userID, recipe.ID)
	if err != nil {
		return fmt.Errorf("remove recipe %d: %w", recipe.ID, err)
	}
	if !removed {
		return errMissing
	}
	return nil
}

func (s *recipeService) getRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe %d: %w", recipeID, err)
	}
	return recipe, nil
}

func (s *recipeService) getOwnRecipe(ctx context.Context, recipeID, userID uint) (*entities.Recipe, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

// resolveAssociations validates the submitted ingredient and tag references
// and loads them. Nothing is written.
func (s *recipeService) resolveAssociations(ctx context.Context, reqItems []domain.RecipeIngredientRequest, tagIDs []uint) ([]entities.Tag, []entities.RecipeIngredient, error) {
	if len(reqItems) == 0 {
		return nil, nil, domain.ErrEmptyIngredients
	}
	ingredientIDs := make([]uint, 0, len(reqItems))
	seen := make(map[uint]struct{}, len(reqItems))
	for _, item := range reqItems {
		if _, ok := seen[item.ID]; ok {
			return nil, nil, domain.ErrDuplicateIngredients
		}
		if item.Amount < 1 {
			return nil, nil, domain.ErrInvalidAmount
		}
		seen[item.ID] = struct{}{}
		ingredientIDs = append(ingredientIDs, item.ID)
	}

	if len(tagIDs) == 0 {
		return nil, nil, domain.ErrEmptyTags
	}
	seenTags := make(map[uint]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := seenTags[id]; ok {
			return nil, nil, domain.ErrDuplicateTags
		}
		seenTags[id] = struct{}{}
	}

	ingredients, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("load ingredients: %w", err)
	}
	if len(ingredients) != len(ingredientIDs) {
		return nil, nil, domain.ErrIngredientNotFound
	}

	tags, err := s.tagRepository.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("load tags: %w", err)
	}
	if len(tags) != len(tagIDs) {
		return nil, nil, domain.ErrUnknownTag
	}

	items := make([]entities.RecipeIngredient, 0, len(reqItems))
	for _, item := range reqItems {
		items = append(items, entities.RecipeIngredient{
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}
	return tags, items, nil
}

func (s *recipeService) discardImage(ctx context.Context, ref string) {
	if err := s.imageStorage.DeleteImage(ctx, ref); err != nil {
		log.Warnf("discard recipe image: %v", err)
	}
}

// toResponses builds read representations with the viewer's favorite, cart
// and subscription flags, using one membership query per flag.
func (s *recipeService) toResponses(ctx context.Context, recipes []*entities.Recipe, viewerID uint) ([]domain.RecipeResponse, error) {
	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	favorited, err := s.recipeRepository.GetFavoritedRecipeIDs(ctx, viewerID, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	inCart, err := s.recipeRepository.GetShoppingCartRecipeIDs(ctx, viewerID, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("load shopping cart: %w", err)
	}
	subscribed, err := s.subscriptionRepository.GetSubscribedAuthorIDs(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("load subscriptions: %w", err)
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		tags := make([]domain.TagResponse, 0, len(r.Tags))
		for _, t := range r.Tags {
			tags = append(tags, domain.NewTagResponse(t))
		}

		ingredients := make([]domain.RecipeIngredientResponse, 0, len(r.RecipeIngredients))
		for _, item := range r.RecipeIngredients {
			line := domain.RecipeIngredientResponse{
				ID:     item.IngredientID,
				Amount: item.Amount,
			}
			if item.Ingredient != nil {
				line.Name = item.Ingredient.Name
				line.MeasurementUnit = item.Ingredient.MeasurementUnit
			}
			ingredients = append(ingredients, line)
		}

		res = append(res, domain.RecipeResponse{
			ID:               r.ID,
			Tags:             tags,
			Author:           domain.NewUserResponse(r.Author, subscribed[r.AuthorID]),
			Ingredients:      ingredients,
			IsFavorited:      viewerID != 0 && favorited[r.ID],
			IsInShoppingCart: viewerID != 0 && inCart[r.ID],
			Name:             r.Name,
			Image:            r.Image,
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		})
	}
	return res, nil
}
