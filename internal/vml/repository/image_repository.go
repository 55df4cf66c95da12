package repository

import (
	"context"

	"github.com/jimyag/vml/internal/vml/repository/model"
	"gorm.io/gorm"
)

// ImageRepository 镜像仓库接口
// 镜像是种子数据，API 侧只读，Create 仅用于种子导入
type ImageRepository interface {
	Create(ctx context.Context, image *model.Image) error
	GetByID(ctx context.Context, id string) (*model.Image, error)
	List(ctx context.Context, limit, offset int) ([]*model.Image, error)
	Count(ctx context.Context) (int64, error)
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository 创建镜像仓库
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// Create 创建镜像记录
func (r *imageRepository) Create(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// GetByID 根据 ID 获取镜像
func (r *imageRepository) GetByID(ctx context.Context, id string) (*model.Image, error) {
	var image model.Image
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// List 列出镜像，按名称升序
func (r *imageRepository) List(ctx context.Context, limit, offset int) ([]*model.Image, error) {
	var images []*model.Image
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// Count 统计镜像总数
func (r *imageRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Image{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
