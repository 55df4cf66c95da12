package service

import (
	"context"

	"github.com/jimyag/vml/internal/vml/compute"
	"github.com/jimyag/vml/internal/vml/entity"
	"github.com/jimyag/vml/pkg/apierror"
)

// FlavorService 规格目录服务，只读
type FlavorService struct {
	backend compute.Backend
}

// NewFlavorService 创建规格服务
func NewFlavorService(backend compute.Backend) *FlavorService {
	return &FlavorService{backend: backend}
}

// Get 查询单个规格
func (s *FlavorService) Get(ctx context.Context, req *entity.GetFlavorRequest) (*entity.Flavor, error) {
	record, err := s.backend.GetFlavor(ctx, req.FlavorID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apierror.FlavorNotFound(req.FlavorID)
	}
	return flavorToEntity(record)
}

// List 分页列出规格，按名称升序
func (s *FlavorService) List(ctx context.Context, req *entity.PageRequest) (*entity.PaginatedResponse[*entity.Flavor], error) {
	records, total, err := s.backend.ListFlavors(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	flavors, err := flavorsToEntities(records)
	if err != nil {
		return nil, err
	}
	return entity.NewPaginatedResponse(flavors, total, req.Limit, req.Offset), nil
}
