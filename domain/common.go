package domain

import (
	"errors"
)

const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedAuthRequired   = "authentication credentials were not provided"
	MessageFailedNotFound       = "not found"

	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidID      = errors.New("invalid identifier")

	ErrJWTSecretMissing = errors.New("JWT_SECRET is not configured")
)

type (
	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}

	PaginatedResponse[T any] struct {
		Results    []T        `json:"results"`
		Pagination Pagination `json:"pagination"`
	}
)

func NewPaginatedResponse[T any](results []T, page, limit int, total int64) PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}
	return PaginatedResponse[T]{
		Results: results,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		},
	}
}
