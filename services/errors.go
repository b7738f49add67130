package services

import "errors"

// Классы ошибок ядра. Контроллеры переводят их в HTTP-статусы через errors.Is:
// ErrValidation -> 400, ErrNotOwner -> 403, ErrNotFound -> 404,
// ErrConsistency и всё остальное -> 500.
var (
	ErrValidation  = errors.New("invalid input")
	ErrNotOwner    = errors.New("not authorized")
	ErrNotFound    = errors.New("not found")
	ErrConsistency = errors.New("consistency fault")
)
