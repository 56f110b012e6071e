// Package usecase implements the business logic for the symbol registry.
package usecase

import (
	"context"
	"errors"

	"stock_input/internal/feature/chartinput/domain/validation"
	"stock_input/internal/feature/symbollist/domain/entity"
)

// ErrInvalidSymbolCode is returned when a registered code is not 1-7 uppercase letters.
var ErrInvalidSymbolCode = errors.New("symbol code must be 1-7 uppercase letters")

// SymbolRepository abstracts the persistence layer for the symbol registry.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	IsActive(ctx context.Context, code string) (bool, error)
	Upsert(ctx context.Context, s entity.Symbol) error
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols from the repository.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// IsKnownSymbol reports whether code is an active registry entry.
// Malformed codes are never looked up.
func (u *SymbolUsecase) IsKnownSymbol(ctx context.Context, code string) (bool, error) {
	if !validation.ValidateSymbol(code) {
		return false, nil
	}
	return u.repo.IsActive(ctx, code)
}

// RegisterSymbol inserts or updates an active registry entry.
func (u *SymbolUsecase) RegisterSymbol(ctx context.Context, s entity.Symbol) error {
	if !validation.ValidateSymbol(s.Code) {
		return ErrInvalidSymbolCode
	}
	s.IsActive = true
	return u.repo.Upsert(ctx, s)
}
