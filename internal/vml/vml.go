// Package vml 提供 VML 服务器的主入口和初始化逻辑
package vml

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jimmicro/grace"
	"github.com/jimyag/vml/internal/vml/api"
	"github.com/jimyag/vml/internal/vml/compute"
	"github.com/jimyag/vml/internal/vml/config"
	"github.com/jimyag/vml/internal/vml/repository"
	"github.com/jimyag/vml/internal/vml/service"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg  *config.Config
	api  *api.API
	repo *repository.Repository
}

func New(cfg *config.Config) (*Server, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	// 1. 创建 Repository 并导入种子数据
	repo, err := repository.New(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("create repository: %w", err)
	}

	ctx := logger.WithContext(context.Background())
	if err := repo.Seed(ctx); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	logger.Info().Str("db_path", cfg.DBPath()).Msg("Repository initialized")

	// 2. 选择计算后端
	var backend compute.Backend
	switch cfg.Backend {
	case config.BackendCloud:
		backend = compute.NewCloud(compute.CloudConfig{
			AuthURL:     cfg.Cloud.AuthURL,
			Region:      cfg.Cloud.Region,
			ProjectName: cfg.Cloud.ProjectName,
			Username:    cfg.Cloud.Username,
			Password:    cfg.Cloud.Password,
		})
	default:
		backend = compute.NewLocal(repo)
	}
	logger.Info().Str("backend", cfg.Backend).Msg("Compute backend selected")

	// 3. 创建业务服务
	serverService := service.NewServerService(backend)
	flavorService := service.NewFlavorService(backend)
	imageService := service.NewImageService(backend)

	// 4. 创建 API
	apiInstance, err := api.New(cfg.Address, repo, serverService, flavorService, imageService)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:  cfg,
		api:  apiInstance,
		repo: repo,
	}, nil
}

func (s *Server) Run(ctx context.Context) error {
	// 使用 grace.Shepherd 管理服务生命周期
	services := []grace.Grace{
		s.api,
	}

	shepherd := grace.NewShepherd(
		services,
		grace.WithTimeout(30*time.Second),
		grace.WithLogger(&zerologLogger{}),
	)

	shepherd.Start(ctx)
	return s.repo.Close()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.api.Shutdown(ctx); err != nil {
		return err
	}
	return s.repo.Close()
}

// Name 实现 grace.Grace 接口
func (s *Server) Name() string {
	return "VML Server"
}

// zerologLogger 实现 grace.Logger 接口
type zerologLogger struct{}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Info()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Error()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}
