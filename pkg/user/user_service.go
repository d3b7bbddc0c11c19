package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error)
		GetUsers(ctx context.Context, page, limit int, viewerID uint) ([]domain.UserResponse, int64, error)
		GetUserByID(ctx context.Context, id uint, viewerID uint) (domain.UserResponse, error)
		Me(ctx context.Context, userID uint) (domain.UserResponse, error)
		SetPassword(ctx context.Context, userID uint, req domain.SetPasswordRequest) error
	}

	userService struct {
		userRepository         UserRepository
		subscriptionRepository SubscriptionRepository
		jwtService             jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, subscriptionRepository SubscriptionRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository:         userRepository,
		subscriptionRepository: subscriptionRepository,
		jwtService:             jwtService,
	}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func CheckPassword(password, hashed string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error) {
	email := strings.TrimSpace(req.Email)

	taken, err := s.userRepository.IsEmailTaken(ctx, email)
	if err != nil {
		return domain.UserRegisterResponse{}, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return domain.UserRegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	taken, err = s.userRepository.IsUsernameTaken(ctx, req.Username)
	if err != nil {
		return domain.UserRegisterResponse{}, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return domain.UserRegisterResponse{}, domain.ErrUsernameTaken
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return domain.UserRegisterResponse{}, err
	}

	user := &entities.User{
		Email:     email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hashed,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserRegisterResponse{}, s.duplicateUserError(ctx, email)
		}
		log.Errorf("create user %q: %v", req.Username, err)
		return domain.UserRegisterResponse{}, fmt.Errorf("create user: %w", err)
	}

	return domain.UserRegisterResponse{
		Email:     user.Email,
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TokenResponse{}, domain.ErrInvalidCredentials
		}
		return domain.TokenResponse{}, fmt.Errorf("get user by email: %w", err)
	}

	if err := CheckPassword(req.Password, user.Password); err != nil {
		return domain.TokenResponse{}, domain.ErrInvalidCredentials
	}

	return domain.TokenResponse{
		AuthToken: s.jwtService.GenerateTokenUser(user.ID),
	}, nil
}

func (s *userService) GetUsers(ctx context.Context, page, limit int, viewerID uint) ([]domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	subscribed, err := s.subscriptionRepository.GetSubscribedAuthorIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("load subscriptions: %w", err)
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, domain.NewUserResponse(u, subscribed[u.ID]))
	}
	return res, count, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint, viewerID uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, fmt.Errorf("get user %d: %w", id, err)
	}

	isSubscribed := false
	if viewerID != 0 {
		isSubscribed, err = s.subscriptionRepository.IsSubscribed(ctx, viewerID, user.ID)
		if err != nil {
			return domain.UserResponse{}, fmt.Errorf("check subscription: %w", err)
		}
	}
	return domain.NewUserResponse(user, isSubscribed), nil
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.UserResponse, error) {
	return s.GetUserByID(ctx, userID, userID)
}

func (s *userService) SetPassword(ctx context.Context, userID uint, req domain.SetPasswordRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("get user %d: %w", userID, err)
	}

	if err := CheckPassword(req.CurrentPassword, user.Password); err != nil {
		return domain.ErrWrongPassword
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.userRepository.UpdatePassword(ctx, userID, hashed); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// duplicateUserError resolves a unique-index violation from a concurrent
// registration to the field that collided.
func (s *userService) duplicateUserError(ctx context.Context, email string) error {
	taken, err := s.userRepository.IsEmailTaken(ctx, email)
	if err == nil && taken {
		return domain.ErrEmailAlreadyExists
	}
	return domain.ErrUsernameTaken
}
