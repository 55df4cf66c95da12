package repository

import (
	"context"

	"github.com/jimyag/vml/internal/vml/entity"
	"github.com/jimyag/vml/internal/vml/repository/model"
	"gorm.io/gorm"
)

// ServerRepository 服务器仓库接口
// 删除的服务器是墓碑记录（status = DELETED），GetByID 会返回它们，
// 由业务层决定墓碑在各个操作中的语义；ListActive/CountActive 始终排除墓碑
type ServerRepository interface {
	Create(ctx context.Context, server *model.Server) error
	GetByID(ctx context.Context, id string) (*model.Server, error)
	ListActive(ctx context.Context, limit, offset int) ([]*model.Server, error)
	CountActive(ctx context.Context) (int64, error)
	UpdateVersioned(ctx context.Context, id string, version uint64, updates map[string]any) (bool, error)
}

type serverRepository struct {
	db *gorm.DB
}

// NewServerRepository 创建服务器仓库
func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{db: db}
}

// Create 创建服务器记录
func (r *serverRepository) Create(ctx context.Context, server *model.Server) error {
	return r.db.WithContext(ctx).Create(server).Error
}

// GetByID 根据 ID 获取服务器（包含墓碑记录）
// 不存在时返回 gorm.ErrRecordNotFound
func (r *serverRepository) GetByID(ctx context.Context, id string) (*model.Server, error) {
	var server model.Server
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&server).Error; err != nil {
		return nil, err
	}
	return &server, nil
}

// ListActive 列出未删除的服务器，按创建时间倒序
func (r *serverRepository) ListActive(ctx context.Context, limit, offset int) ([]*model.Server, error) {
	var servers []*model.Server
	if err := r.db.WithContext(ctx).
		Where("status != ?", string(entity.StatusDeleted)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&servers).Error; err != nil {
		return nil, err
	}
	return servers, nil
}

// CountActive 统计未删除的服务器总数
func (r *serverRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.Server{}).
		Where("status != ?", string(entity.StatusDeleted)).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// UpdateVersioned 带版本号的条件更新（乐观并发控制）
// 只有当记录的当前版本与 version 一致时才会更新，并把版本号 +1。
// 返回 false 表示版本不匹配（记录被并发修改）或记录不存在
func (r *serverRepository) UpdateVersioned(ctx context.Context, id string, version uint64, updates map[string]any) (bool, error) {
	updates["version"] = version + 1
	result := r.db.WithContext(ctx).
		Model(&model.Server{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
