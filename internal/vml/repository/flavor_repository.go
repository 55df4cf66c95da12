package repository

import (
	"context"

	"github.com/jimyag/vml/internal/vml/repository/model"
	"gorm.io/gorm"
)

// FlavorRepository 规格仓库接口
// 规格是种子数据，API 侧只读，Create 仅用于种子导入
type FlavorRepository interface {
	Create(ctx context.Context, flavor *model.Flavor) error
	GetByID(ctx context.Context, id string) (*model.Flavor, error)
	List(ctx context.Context, limit, offset int) ([]*model.Flavor, error)
	Count(ctx context.Context) (int64, error)
}

type flavorRepository struct {
	db *gorm.DB
}

// NewFlavorRepository 创建规格仓库
func NewFlavorRepository(db *gorm.DB) FlavorRepository {
	return &flavorRepository{db: db}
}

// Create 创建规格记录
func (r *flavorRepository) Create(ctx context.Context, flavor *model.Flavor) error {
	return r.db.WithContext(ctx).Create(flavor).Error
}

// GetByID 根据 ID 获取规格
func (r *flavorRepository) GetByID(ctx context.Context, id string) (*model.Flavor, error) {
	var flavor model.Flavor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&flavor).Error; err != nil {
		return nil, err
	}
	return &flavor, nil
}

// List 列出规格，按名称升序
func (r *flavorRepository) List(ctx context.Context, limit, offset int) ([]*model.Flavor, error) {
	var flavors []*model.Flavor
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&flavors).Error; err != nil {
		return nil, err
	}
	return flavors, nil
}

// Count 统计规格总数
func (r *flavorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Flavor{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
