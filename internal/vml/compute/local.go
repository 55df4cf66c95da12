package compute

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jimyag/vml/internal/vml/entity"
	"github.com/jimyag/vml/internal/vml/repository"
	"github.com/jimyag/vml/internal/vml/repository/model"
	"github.com/jimyag/vml/pkg/apierror"
	"github.com/jimyag/vml/pkg/idgen"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// actionResults 每个动作完成后的目标状态
// 本地后端的所有状态变更都是瞬时完成的，不经过 BUILD/REBOOT/RESIZE 等中间状态
var actionResults = map[string]entity.ServerStatus{
	entity.ActionStart:         entity.StatusActive,
	entity.ActionStop:          entity.StatusShutoff,
	entity.ActionReboot:        entity.StatusActive,
	entity.ActionResize:        entity.StatusActive,
	entity.ActionConfirmResize: entity.StatusActive,
}

// Local 本地模拟后端
// 虚拟机只是数据库记录，创建即 ACTIVE，分配一个 10.0.0.0/8 段的随机 IP
type Local struct {
	servers repository.ServerRepository
	flavors repository.FlavorRepository
	images  repository.ImageRepository
}

var _ Backend = (*Local)(nil)

// NewLocal 创建本地模拟后端
func NewLocal(repo *repository.Repository) *Local {
	return &Local{
		servers: repository.NewServerRepository(repo.DB()),
		flavors: repository.NewFlavorRepository(repo.DB()),
		images:  repository.NewImageRepository(repo.DB()),
	}
}

// randomIP 生成 10.0.0.1 - 10.255.255.255 范围内的随机 IP
func randomIP() string {
	n := rand.Uint32N(0x00FFFFFF) + 1
	return fmt.Sprintf("10.%d.%d.%d", byte(n>>16), byte(n>>8), byte(n))
}

// CreateServer 创建服务器记录，直接进入 ACTIVE 状态
func (l *Local) CreateServer(ctx context.Context, name, flavorID, imageID string) (*ServerRecord, error) {
	id, err := idgen.GenerateServerID()
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "failed to generate server id", err)
	}

	server := &model.Server{
		ID:        id,
		Name:      name,
		Status:    string(entity.StatusActive),
		FlavorID:  flavorID,
		ImageID:   imageID,
		IPAddress: randomIP(),
	}
	if err := l.servers.Create(ctx, server); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("server_id", id).
		Str("ip_address", server.IPAddress).
		Msg("Server provisioned")
	return serverToRecord(server), nil
}

// GetServer 获取服务器记录，不存在时返回 (nil, nil)
func (l *Local) GetServer(ctx context.Context, id string) (*ServerRecord, error) {
	server, err := l.servers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return serverToRecord(server), nil
}

// ListServers 列出未删除的服务器和总数
func (l *Local) ListServers(ctx context.Context, limit, offset int) ([]*ServerRecord, int64, error) {
	servers, err := l.servers.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := l.servers.CountActive(ctx)
	if err != nil {
		return nil, 0, err
	}

	records := make([]*ServerRecord, 0, len(servers))
	for _, server := range servers {
		records = append(records, serverToRecord(server))
	}
	return records, total, nil
}

// UpdateServer 更新服务器元数据
// name 为 nil 时只刷新更新时间
func (l *Local) UpdateServer(ctx context.Context, server *ServerRecord, name *string) (*ServerRecord, error) {
	updates := map[string]any{}
	if name != nil {
		updates["name"] = *name
	}
	return l.applyVersioned(ctx, server, updates)
}

// DeleteServer 把服务器标记为 DELETED 墓碑，记录保留
func (l *Local) DeleteServer(ctx context.Context, server *ServerRecord) error {
	_, err := l.applyVersioned(ctx, server, map[string]any{
		"status": string(entity.StatusDeleted),
	})
	return err
}

// PerformAction 执行生命周期动作，状态瞬时切换到目标状态
// resize 同时改写 flavor_id
func (l *Local) PerformAction(ctx context.Context, server *ServerRecord, action string, opts ActionOptions) (*ServerRecord, error) {
	next, ok := actionResults[action]
	if !ok {
		return nil, apierror.Validation(fmt.Sprintf("unknown action %q", action))
	}

	updates := map[string]any{"status": string(next)}
	if action == entity.ActionResize {
		updates["flavor_id"] = opts.FlavorID
	}
	return l.applyVersioned(ctx, server, updates)
}

// applyVersioned 以乐观锁方式应用变更，版本冲突时返回 CONCURRENT_UPDATE
func (l *Local) applyVersioned(ctx context.Context, server *ServerRecord, updates map[string]any) (*ServerRecord, error) {
	ok, err := l.servers.UpdateVersioned(ctx, server.ID, server.Version, updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		zerolog.Ctx(ctx).Warn().
			Str("server_id", server.ID).
			Uint64("version", server.Version).
			Msg("Versioned update lost the race")
		return nil, apierror.ConcurrentUpdate(server.ID)
	}

	updated, err := l.servers.GetByID(ctx, server.ID)
	if err != nil {
		return nil, err
	}
	return serverToRecord(updated), nil
}

// GetFlavor 获取规格，不存在时返回 (nil, nil)
func (l *Local) GetFlavor(ctx context.Context, id string) (*FlavorRecord, error) {
	flavor, err := l.flavors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return flavorToRecord(flavor), nil
}

// ListFlavors 列出规格和总数
func (l *Local) ListFlavors(ctx context.Context, limit, offset int) ([]*FlavorRecord, int64, error) {
	flavors, err := l.flavors.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := l.flavors.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	records := make([]*FlavorRecord, 0, len(flavors))
	for _, flavor := range flavors {
		records = append(records, flavorToRecord(flavor))
	}
	return records, total, nil
}

// GetImage 获取镜像，不存在时返回 (nil, nil)
func (l *Local) GetImage(ctx context.Context, id string) (*ImageRecord, error) {
	image, err := l.images.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return imageToRecord(image), nil
}

// ListImages 列出镜像和总数
func (l *Local) ListImages(ctx context.Context, limit, offset int) ([]*ImageRecord, int64, error) {
	images, err := l.images.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := l.images.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	records := make([]*ImageRecord, 0, len(images))
	for _, image := range images {
		records = append(records, imageToRecord(image))
	}
	return records, total, nil
}

func serverToRecord(server *model.Server) *ServerRecord {
	return &ServerRecord{
		ID:        server.ID,
		Name:      server.Name,
		Status:    entity.ServerStatus(server.Status),
		FlavorID:  server.FlavorID,
		ImageID:   server.ImageID,
		IPAddress: server.IPAddress,
		Version:   server.Version,
		CreatedAt: server.CreatedAt,
		UpdatedAt: server.UpdatedAt,
	}
}

func flavorToRecord(flavor *model.Flavor) *FlavorRecord {
	return &FlavorRecord{
		ID:     flavor.ID,
		Name:   flavor.Name,
		VCPUs:  flavor.VCPUs,
		RAMMB:  flavor.RAMMB,
		DiskGB: flavor.DiskGB,
	}
}

func imageToRecord(image *model.Image) *ImageRecord {
	return &ImageRecord{
		ID:        image.ID,
		Name:      image.Name,
		OSDistro:  image.OSDistro,
		MinDiskGB: image.MinDiskGB,
		SizeBytes: image.SizeBytes,
		Status:    image.Status,
	}
}
