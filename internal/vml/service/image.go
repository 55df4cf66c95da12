package service

import (
	"context"

	"github.com/jimyag/vml/internal/vml/compute"
	"github.com/jimyag/vml/internal/vml/entity"
	"github.com/jimyag/vml/pkg/apierror"
)

// ImageService 镜像目录服务，只读
type ImageService struct {
	backend compute.Backend
}

// NewImageService 创建镜像服务
func NewImageService(backend compute.Backend) *ImageService {
	return &ImageService{backend: backend}
}

// Get 查询单个镜像
func (s *ImageService) Get(ctx context.Context, req *entity.GetImageRequest) (*entity.Image, error) {
	record, err := s.backend.GetImage(ctx, req.ImageID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apierror.ImageNotFound(req.ImageID)
	}
	return imageToEntity(record)
}

// List 分页列出镜像，按名称升序
func (s *ImageService) List(ctx context.Context, req *entity.PageRequest) (*entity.PaginatedResponse[*entity.Image], error) {
	records, total, err := s.backend.ListImages(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	images, err := imagesToEntities(records)
	if err != nil {
		return nil, err
	}
	return entity.NewPaginatedResponse(images, total, req.Limit, req.Offset), nil
}
