package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vml/internal/vml/entity"
	"github.com/jimyag/vml/internal/vml/service"
	"github.com/jimyag/vml/pkg/ginx"
	"github.com/rs/zerolog"
)

// ServerServiceInterface 定义服务器服务的接口
type ServerServiceInterface interface {
	Create(ctx context.Context, req *entity.CreateServerRequest) (*entity.Server, error)
	Get(ctx context.Context, req *entity.GetServerRequest) (*entity.Server, error)
	List(ctx context.Context, req *entity.PageRequest) (*entity.PaginatedResponse[*entity.Server], error)
	Update(ctx context.Context, req *entity.UpdateServerRequest) (*entity.Server, error)
	Delete(ctx context.Context, req *entity.DeleteServerRequest) error
	PerformAction(ctx context.Context, req *entity.ServerActionRequest) (*entity.Server, error)
}

type Server struct {
	serverService ServerServiceInterface
}

func NewServer(serverService *service.ServerService) *Server {
	return &Server{
		serverService: serverService,
	}
}

func (s *Server) RegisterRoutes(router *gin.RouterGroup) {
	serverRouter := router.Group("/servers")
	serverRouter.POST("", ginx.Adapt5Status(http.StatusCreated, s.CreateServer))
	serverRouter.GET("", ginx.Adapt5(s.ListServers))
	serverRouter.GET("/:server_id", ginx.Adapt5(s.GetServer))
	serverRouter.PATCH("/:server_id", ginx.Adapt5(s.UpdateServer))
	serverRouter.DELETE("/:server_id", ginx.Adapt4(s.DeleteServer))
	serverRouter.POST("/:server_id/action", ginx.Adapt5Status(http.StatusAccepted, s.ServerAction))
}

func (s *Server) CreateServer(ctx *gin.Context, req *entity.CreateServerRequest) (*entity.Server, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("name", req.Name).
		Str("flavor_id", req.FlavorID).
		Str("image_id", req.ImageID).
		Msg("CreateServer called")

	server, err := s.serverService.Create(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to create server")
		return nil, err
	}
	return server, nil
}

func (s *Server) ListServers(ctx *gin.Context, req *entity.PageRequest) (*entity.PaginatedResponse[*entity.Server], error) {
	return s.serverService.List(ctx, req)
}

func (s *Server) GetServer(ctx *gin.Context, req *entity.GetServerRequest) (*entity.Server, error) {
	return s.serverService.Get(ctx, req)
}

func (s *Server) UpdateServer(ctx *gin.Context, req *entity.UpdateServerRequest) (*entity.Server, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("server_id", req.ServerID).
		Msg("UpdateServer called")

	server, err := s.serverService.Update(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("server_id", req.ServerID).
			Msg("Failed to update server")
		return nil, err
	}
	return server, nil
}

func (s *Server) DeleteServer(ctx *gin.Context, req *entity.DeleteServerRequest) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("server_id", req.ServerID).
		Msg("DeleteServer called")

	if err := s.serverService.Delete(ctx, req); err != nil {
		logger.Error().
			Err(err).
			Str("server_id", req.ServerID).
			Msg("Failed to delete server")
		return err
	}
	return nil
}

func (s *Server) ServerAction(ctx *gin.Context, req *entity.ServerActionRequest) (*entity.Server, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("server_id", req.ServerID).
		Str("action", req.Action).
		Msg("ServerAction called")

	server, err := s.serverService.PerformAction(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("server_id", req.ServerID).
			Str("action", req.Action).
			Msg("Failed to perform server action")
		return nil, err
	}
	return server, nil
}
