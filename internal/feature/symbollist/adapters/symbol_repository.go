// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"stock_input/internal/feature/symbollist/domain/entity"
	"stock_input/internal/feature/symbollist/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// symbolRepository はSymbolRepositoryインターフェースのGORM実装です（PostgreSQL / SQLite）。
type symbolRepository struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolRepository)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolRepositoryの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolRepository {
	return &symbolRepository{db: db}
}

// ListActive はsort_key順にすべてのアクティブな銘柄を返します。
func (r *symbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// ListActiveCodes はsort_key順にアクティブな銘柄のコードのみを返します。
func (r *symbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// IsActive は指定コードの銘柄が登録済みかつアクティブかを返します。
func (r *symbolRepository) IsActive(ctx context.Context, code string) (bool, error) {
	var s entity.Symbol
	err := r.db.WithContext(ctx).
		Select("id", "is_active").
		Where("code = ?", code).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return s.IsActive, nil
}

// Upsert はコードをキーに銘柄を挿入し、既存の場合は名前・市場・状態・並び順を更新します。
func (r *symbolRepository) Upsert(ctx context.Context, s entity.Symbol) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "market", "is_active", "sort_key", "updated_at"}),
	}).Create(&s).Error
}
