// Package service 实现业务层：生命周期状态机校验和错误语义
package service

import (
	"context"

	"github.com/jimyag/vml/internal/vml/compute"
	"github.com/jimyag/vml/internal/vml/entity"
	"github.com/jimyag/vml/pkg/apierror"
	"github.com/rs/zerolog"
)

// ServerService 服务器生命周期服务
// 负责存在性检查、墓碑语义和状态机校验，实际的状态变更交给后端执行
type ServerService struct {
	backend compute.Backend
}

// NewServerService 创建服务器服务
func NewServerService(backend compute.Backend) *ServerService {
	return &ServerService{backend: backend}
}

// Create 创建服务器
// 规格和镜像必须存在，否则返回对应的 404
func (s *ServerService) Create(ctx context.Context, req *entity.CreateServerRequest) (*entity.Server, error) {
	flavor, err := s.backend.GetFlavor(ctx, req.FlavorID)
	if err != nil {
		return nil, err
	}
	if flavor == nil {
		return nil, apierror.FlavorNotFound(req.FlavorID)
	}

	image, err := s.backend.GetImage(ctx, req.ImageID)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apierror.ImageNotFound(req.ImageID)
	}

	record, err := s.backend.CreateServer(ctx, req.Name, req.FlavorID, req.ImageID)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("server_id", record.ID).
		Str("flavor_id", record.FlavorID).
		Str("image_id", record.ImageID).
		Msg("Server created")
	return serverToEntity(record)
}

// Get 查询单个服务器
// 不存在和已删除（墓碑）都返回 404
func (s *ServerService) Get(ctx context.Context, req *entity.GetServerRequest) (*entity.Server, error) {
	record, err := s.visibleServer(ctx, req.ServerID)
	if err != nil {
		return nil, err
	}
	return serverToEntity(record)
}

// List 分页列出未删除的服务器，按创建时间倒序
func (s *ServerService) List(ctx context.Context, req *entity.PageRequest) (*entity.PaginatedResponse[*entity.Server], error) {
	records, total, err := s.backend.ListServers(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	servers, err := serversToEntities(records)
	if err != nil {
		return nil, err
	}
	return entity.NewPaginatedResponse(servers, total, req.Limit, req.Offset), nil
}

// Update 更新服务器元数据
// 不存在返回 404；已删除的服务器仍然存在，但不可修改，返回 409 SERVER_DELETED
func (s *ServerService) Update(ctx context.Context, req *entity.UpdateServerRequest) (*entity.Server, error) {
	record, err := s.backend.GetServer(ctx, req.ServerID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apierror.ServerNotFound(req.ServerID)
	}
	if record.Status == entity.StatusDeleted {
		return nil, apierror.ServerDeleted(req.ServerID)
	}

	updated, err := s.backend.UpdateServer(ctx, record, req.Name)
	if err != nil {
		return nil, err
	}
	return serverToEntity(updated)
}

// Delete 删除服务器（墓碑化）
// 重复删除返回 404：第一次删除后墓碑对删除操作不可见
func (s *ServerService) Delete(ctx context.Context, req *entity.DeleteServerRequest) error {
	record, err := s.visibleServer(ctx, req.ServerID)
	if err != nil {
		return err
	}

	if err := s.backend.DeleteServer(ctx, record); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Str("server_id", record.ID).
		Msg("Server deleted")
	return nil
}

// PerformAction 执行生命周期动作
// 存在性检查优先于状态检查：不存在或已删除一律 404，
// 之后才用状态机判断 (当前状态, 动作) 是否合法
func (s *ServerService) PerformAction(ctx context.Context, req *entity.ServerActionRequest) (*entity.Server, error) {
	record, err := s.visibleServer(ctx, req.ServerID)
	if err != nil {
		return nil, err
	}

	if !canTransition(record.Status, req.Action) {
		zerolog.Ctx(ctx).Warn().
			Str("server_id", record.ID).
			Str("current_status", string(record.Status)).
			Str("action", req.Action).
			Msg("Invalid state transition rejected")
		return nil, apierror.InvalidStateTransition(string(record.Status), req.Action)
	}

	opts := compute.ActionOptions{}
	if req.Action == entity.ActionResize {
		flavor, err := s.backend.GetFlavor(ctx, req.FlavorID)
		if err != nil {
			return nil, err
		}
		if flavor == nil {
			return nil, apierror.FlavorNotFound(req.FlavorID)
		}
		opts.FlavorID = req.FlavorID
	}

	updated, err := s.backend.PerformAction(ctx, record, req.Action, opts)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("server_id", record.ID).
		Str("action", req.Action).
		Str("status", string(updated.Status)).
		Msg("Server action performed")
	return serverToEntity(updated)
}

// visibleServer 获取对查询可见的服务器记录
// 不存在或者是墓碑都返回 SERVER_NOT_FOUND
func (s *ServerService) visibleServer(ctx context.Context, id string) (*compute.ServerRecord, error) {
	record, err := s.backend.GetServer(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil || record.Status == entity.StatusDeleted {
		return nil, apierror.ServerNotFound(id)
	}
	return record, nil
}
