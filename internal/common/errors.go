package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// CMS errors
	ErrBrandNotFound             = errors.New("brand not found")
	ErrCategoryNotFound          = errors.New("category not found")
	ErrSubcategoryNotFound       = errors.New("subcategory not found")
	ErrGlobalCategoryNotFound    = errors.New("global category not found")
	ErrGlobalSubcategoryNotFound = errors.New("global subcategory not found")

	// Catalog errors
	ErrGameNotFound = errors.New("game not found")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
