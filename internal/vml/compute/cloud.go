package compute

import (
	"context"

	"github.com/jimyag/vml/pkg/apierror"
)

// CloudConfig 真实云平台的连接配置
type CloudConfig struct {
	AuthURL     string
	Region      string
	ProjectName string
	Username    string
	Password    string
}

// Cloud 真实云平台后端
// 目前只是占位实现，所有操作返回 NOT_IMPLEMENTED
// TODO: 基于 gophercloud 对接 OpenStack compute API
type Cloud struct {
	cfg CloudConfig
}

var _ Backend = (*Cloud)(nil)

// NewCloud 创建真实云平台后端
func NewCloud(cfg CloudConfig) *Cloud {
	return &Cloud{cfg: cfg}
}

func (c *Cloud) CreateServer(ctx context.Context, name, flavorID, imageID string) (*ServerRecord, error) {
	return nil, apierror.ErrNotImplemented
}

func (c *Cloud) GetServer(ctx context.Context, id string) (*ServerRecord, error) {
	return nil, apierror.ErrNotImplemented
}

func (c *Cloud) ListServers(ctx context.Context, limit, offset int) ([]*ServerRecord, int64, error) {
	return nil, 0, apierror.ErrNotImplemented
}

func (c *Cloud) UpdateServer(ctx context.Context, server *ServerRecord, name *string) (*ServerRecord, error) {
	return nil, apierror.ErrNotImplemented
}

func (c *Cloud) DeleteServer(ctx context.Context, server *ServerRecord) error {
	return apierror.ErrNotImplemented
}

func (c *Cloud) PerformAction(ctx context.Context, server *ServerRecord, action string, opts ActionOptions) (*ServerRecord, error) {
	return nil, apierror.ErrNotImplemented
}

func (c *Cloud) GetFlavor(ctx context.Context, id string) (*FlavorRecord, error) {
	return nil, apierror.ErrNotImplemented
}

func (c *Cloud) ListFlavors(ctx context.Context, limit, offset int) ([]*FlavorRecord, int64, error) {
	return nil, 0, apierror.ErrNotImplemented
}

func (c *Cloud) GetImage(ctx context.Context, id string) (*ImageRecord, error) {
	return nil, apierror.ErrNotImplemented
}

func (c *Cloud) ListImages(ctx context.Context, limit, offset int) ([]*ImageRecord, int64, error) {
	return nil, 0, apierror.ErrNotImplemented
}
