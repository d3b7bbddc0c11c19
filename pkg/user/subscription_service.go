package user

import (
	"context"
	"errors"
	"fmt"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// NoRecipesLimit disables recipes_limit truncation.
const NoRecipesLimit = -1

type (
	// AuthorRecipeReader is the slice of the recipe store the subscription
	// listing needs.
	AuthorRecipeReader interface {
		GetRecipesByAuthor(ctx context.Context, authorID uint, limit int) ([]*entities.Recipe, error)
		CountRecipesByAuthor(ctx context.Context, authorID uint) (int64, error)
	}

	SubscriptionService interface {
		Subscribe(ctx context.Context, userID, authorID uint, recipesLimit int) (domain.SubscriptionResponse, error)
		Unsubscribe(ctx context.Context, userID, authorID uint) error
		GetSubscriptions(ctx context.Context, userID uint, page, limit, recipesLimit int) ([]domain.SubscriptionResponse, int64, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         UserRepository
		recipeReader           AuthorRecipeReader
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, userRepository UserRepository, recipeReader AuthorRecipeReader) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		recipeReader:           recipeReader,
	}
}

func (s *subscriptionService) getAuthor(ctx context.Context, authorID uint) (*entities.User, error) {
	author, err := s.userRepository.GetUserByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get author %d: %w", authorID, err)
	}
	return author, nil
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID, authorID uint, recipesLimit int) (domain.SubscriptionResponse, error) {
	author, err := s.getAuthor(ctx, authorID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	if userID == author.ID {
		return domain.SubscriptionResponse{}, domain.ErrSelfSubscription
	}

	exists, err := s.subscriptionRepository.IsSubscribed(ctx, userID, author.ID)
	if err != nil {
		return domain.SubscriptionResponse{}, fmt.Errorf("check subscription: %w", err)
	}
	if exists {
		return domain.SubscriptionResponse{}, domain.ErrAlreadySubscribed
	}

	if err := s.subscriptionRepository.CreateSubscription(ctx, userID, author.ID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.SubscriptionResponse{}, domain.ErrAlreadySubscribed
		}
		log.Errorf("create subscription %d->%d: %v", userID, author.ID, err)
		return domain.SubscriptionResponse{}, fmt.Errorf("create subscription: %w", err)
	}

	return s.buildSubscription(ctx, author, true, recipesLimit)
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, userID, authorID uint) error {
	author, err := s.getAuthor(ctx, authorID)
	if err != nil {
		return err
	}

	deleted, err := s.subscriptionRepository.DeleteSubscription(ctx, userID, author.ID)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	if !deleted {
		return domain.ErrNotSubscribed
	}
	return nil
}

func (s *subscriptionService) GetSubscriptions(ctx context.Context, userID uint, page, limit, recipesLimit int) ([]domain.SubscriptionResponse, int64, error) {
	authors, count, err := s.subscriptionRepository.GetSubscribedAuthors(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list subscriptions: %w", err)
	}

	res := make([]domain.SubscriptionResponse, 0, len(authors))
	for _, author := range authors {
		sub, err := s.buildSubscription(ctx, author, true, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, sub)
	}
	return res, count, nil
}

func (s *subscriptionService) buildSubscription(ctx context.Context, author *entities.User, isSubscribed bool, recipesLimit int) (domain.SubscriptionResponse, error) {
	recipes, err := s.recipeReader.GetRecipesByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return domain.SubscriptionResponse{}, fmt.Errorf("load recipes of author %d: %w", author.ID, err)
	}
	count, err := s.recipeReader.CountRecipesByAuthor(ctx, author.ID)
	if err != nil {
		return domain.SubscriptionResponse{}, fmt.Errorf("count recipes of author %d: %w", author.ID, err)
	}

	minified := make([]domain.RecipeMinifiedResponse, 0, len(recipes))
	for _, r := range recipes {
		minified = append(minified, domain.NewRecipeMinifiedResponse(r))
	}

	return domain.SubscriptionResponse{
		UserResponse: domain.NewUserResponse(author, isSubscribed),
		Recipes:      minified,
		RecipesCount: count,
	}, nil
}
