package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vml/internal/vml/entity"
	"github.com/jimyag/vml/internal/vml/service"
	"github.com/jimyag/vml/pkg/ginx"
)

// ImageServiceInterface 定义镜像服务的接口
type ImageServiceInterface interface {
	Get(ctx context.Context, req *entity.GetImageRequest) (*entity.Image, error)
	List(ctx context.Context, req *entity.PageRequest) (*entity.PaginatedResponse[*entity.Image], error)
}

type Image struct {
	imageService ImageServiceInterface
}

func NewImage(imageService *service.ImageService) *Image {
	return &Image{
		imageService: imageService,
	}
}

func (i *Image) RegisterRoutes(router *gin.RouterGroup) {
	imageRouter := router.Group("/images")
	imageRouter.GET("", ginx.Adapt5(i.ListImages))
	imageRouter.GET("/:image_id", ginx.Adapt5(i.GetImage))
}

func (i *Image) ListImages(ctx *gin.Context, req *entity.PageRequest) (*entity.PaginatedResponse[*entity.Image], error) {
	return i.imageService.List(ctx, req)
}

func (i *Image) GetImage(ctx *gin.Context, req *entity.GetImageRequest) (*entity.Image, error) {
	return i.imageService.Get(ctx, req)
}
