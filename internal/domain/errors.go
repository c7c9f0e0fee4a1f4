package domain

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrRecipeExists   = errors.New("recipe already registered")
)
