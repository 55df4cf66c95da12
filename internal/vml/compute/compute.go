// Package compute 提供计算后端抽象
// Local 后端直接在本地数据库上模拟虚拟机生命周期，Cloud 后端对接真实云平台
package compute

import (
	"context"
	"time"

	"github.com/jimyag/vml/internal/vml/entity"
)

// ServerRecord 后端侧的服务器记录
// Version 是乐观锁版本号，传回给后端的变更操作用于冲突检测
type ServerRecord struct {
	ID        string
	Name      string
	Status    entity.ServerStatus
	FlavorID  string
	ImageID   string
	IPAddress string
	Version   uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FlavorRecord 后端侧的规格记录
type FlavorRecord struct {
	ID     string
	Name   string
	VCPUs  int
	RAMMB  int
	DiskGB int
}

// ImageRecord 后端侧的镜像记录
type ImageRecord struct {
	ID        string
	Name      string
	OSDistro  string
	MinDiskGB int
	SizeBytes int64
	Status    string
}

// ActionOptions 生命周期动作的附加参数
type ActionOptions struct {
	// FlavorID 仅 resize 动作使用，目标规格
	FlavorID string
}

// Backend 计算后端接口
// GetServer/GetFlavor/GetImage 在记录不存在时返回 (nil, nil)，
// 由业务层决定对应的错误语义
type Backend interface {
	CreateServer(ctx context.Context, name, flavorID, imageID string) (*ServerRecord, error)
	GetServer(ctx context.Context, id string) (*ServerRecord, error)
	ListServers(ctx context.Context, limit, offset int) ([]*ServerRecord, int64, error)
	UpdateServer(ctx context.Context, server *ServerRecord, name *string) (*ServerRecord, error)
	DeleteServer(ctx context.Context, server *ServerRecord) error
	PerformAction(ctx context.Context, server *ServerRecord, action string, opts ActionOptions) (*ServerRecord, error)

	GetFlavor(ctx context.Context, id string) (*FlavorRecord, error)
	ListFlavors(ctx context.Context, limit, offset int) ([]*FlavorRecord, int64, error)
	GetImage(ctx context.Context, id string) (*ImageRecord, error)
	ListImages(ctx context.Context, limit, offset int) ([]*ImageRecord, int64, error)
}
