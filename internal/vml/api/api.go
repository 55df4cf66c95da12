// Package api 提供 HTTP API 层
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vml/internal/vml/repository"
	"github.com/jimyag/vml/internal/vml/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type API struct {
	engine *gin.Engine
	server *http.Server

	repo      *repository.Repository
	startTime time.Time

	servers *Server
	flavors *Flavor
	images  *Image
}

func New(addr string, repo *repository.Repository, serverService *service.ServerService, flavorService *service.FlavorService, imageService *service.ImageService) (*API, error) {
	engine := gin.New()
	// 让 gin.Context 的 Value 查询回落到 request context，
	// zerolog.Ctx(ctx) 才能取到中间件注入的请求级 logger
	engine.ContextWithFallback = true
	engine.Use(RequestID(), RequestLogger(), Metrics(), gin.Recovery())

	api := &API{
		engine:    engine,
		repo:      repo,
		startTime: time.Now(),
		servers:   NewServer(serverService),
		flavors:   NewFlavor(flavorService),
		images:    NewImage(imageService),
	}

	v1 := engine.Group("/api/v1")
	api.servers.RegisterRoutes(v1)
	api.flavors.RegisterRoutes(v1)
	api.images.RegisterRoutes(v1)

	engine.GET("/health", api.health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.server = &http.Server{
		Addr:    addr,
		Handler: engine,
	}
	return api, nil
}

// Version 通过 -ldflags 注入
var Version = "dev"

// healthResponse 健康检查响应
type healthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	UptimeS float64           `json:"uptime_s"`
	Checks  map[string]string `json:"checks"`
}

// health 健康检查，数据库不可达时返回 503
func (a *API) health(ctx *gin.Context) {
	resp := healthResponse{
		Status:  "ok",
		Version: Version,
		UptimeS: time.Since(a.startTime).Seconds(),
		Checks:  map[string]string{"database": "ok"},
	}
	if a.repo != nil {
		if err := a.repo.Ping(ctx.Request.Context()); err != nil {
			resp.Status = "unavailable"
			resp.Checks["database"] = "unavailable"
			ctx.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	ctx.JSON(http.StatusOK, resp)
}

func (a *API) Run(ctx context.Context) error {
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *API) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// Name 实现 grace.Grace 接口
func (a *API) Name() string {
	return "API Server"
}
