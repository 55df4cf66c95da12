package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vml/internal/vml/entity"
	"github.com/jimyag/vml/internal/vml/service"
	"github.com/jimyag/vml/pkg/ginx"
)

// FlavorServiceInterface 定义规格服务的接口
type FlavorServiceInterface interface {
	Get(ctx context.Context, req *entity.GetFlavorRequest) (*entity.Flavor, error)
	List(ctx context.Context, req *entity.PageRequest) (*entity.PaginatedResponse[*entity.Flavor], error)
}

type Flavor struct {
	flavorService FlavorServiceInterface
}

func NewFlavor(flavorService *service.FlavorService) *Flavor {
	return &Flavor{
		flavorService: flavorService,
	}
}

func (f *Flavor) RegisterRoutes(router *gin.RouterGroup) {
	flavorRouter := router.Group("/flavors")
	flavorRouter.GET("", ginx.Adapt5(f.ListFlavors))
	flavorRouter.GET("/:flavor_id", ginx.Adapt5(f.GetFlavor))
}

func (f *Flavor) ListFlavors(ctx *gin.Context, req *entity.PageRequest) (*entity.PaginatedResponse[*entity.Flavor], error) {
	return f.flavorService.List(ctx, req)
}

func (f *Flavor) GetFlavor(ctx *gin.Context, req *entity.GetFlavorRequest) (*entity.Flavor, error) {
	return f.flavorService.Get(ctx, req)
}
