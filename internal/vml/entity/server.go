package entity

import (
	"fmt"
	"time"
)

// ServerStatus 服务器生命周期状态
type ServerStatus string

const (
	StatusBuild        ServerStatus = "BUILD"
	StatusActive       ServerStatus = "ACTIVE"
	StatusShutoff      ServerStatus = "SHUTOFF"
	StatusReboot       ServerStatus = "REBOOT"
	StatusResize       ServerStatus = "RESIZE"
	StatusVerifyResize ServerStatus = "VERIFY_RESIZE"
	StatusError        ServerStatus = "ERROR"
	StatusDeleted      ServerStatus = "DELETED"
)

// 生命周期动作
const (
	ActionStart         = "start"
	ActionStop          = "stop"
	ActionReboot        = "reboot"
	ActionResize        = "resize"
	ActionConfirmResize = "confirm_resize"
)

// Server 服务器记录
type Server struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Status    ServerStatus `json:"status"`
	FlavorID  string       `json:"flavor_id"`
	ImageID   string       `json:"image_id"`
	IPAddress string       `json:"ip_address,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CreateServerRequest 创建服务器请求
type CreateServerRequest struct {
	Name     string `json:"name"      binding:"required,min=1,max=255"`
	FlavorID string `json:"flavor_id" binding:"required"`
	ImageID  string `json:"image_id"  binding:"required"`
}

// GetServerRequest 查询单个服务器请求
type GetServerRequest struct {
	ServerID string `uri:"server_id" binding:"required"`
}

// UpdateServerRequest 更新服务器请求
// Name 为 nil 时不修改名称，只刷新更新时间
type UpdateServerRequest struct {
	ServerID string  `uri:"server_id" binding:"required"`
	Name     *string `json:"name"     binding:"omitempty,min=1,max=255"`
}

// DeleteServerRequest 删除服务器请求
type DeleteServerRequest struct {
	ServerID string `uri:"server_id" binding:"required"`
}

// ServerActionRequest 生命周期动作请求
type ServerActionRequest struct {
	ServerID string `uri:"server_id" binding:"required"`
	Action   string `json:"action"`
	FlavorID string `json:"flavor_id"`
}

// IsValid 校验动作请求
// flavor_id 当且仅当 action == resize 时允许出现
func (r *ServerActionRequest) IsValid() error {
	switch r.Action {
	case ActionStart, ActionStop, ActionReboot, ActionResize:
	case "":
		return fmt.Errorf("action is required")
	default:
		return fmt.Errorf("unknown action %q", r.Action)
	}

	if r.Action == ActionResize && r.FlavorID == "" {
		return fmt.Errorf("flavor_id is required for resize action")
	}
	if r.Action != ActionResize && r.FlavorID != "" {
		return fmt.Errorf("flavor_id is only allowed for resize action")
	}
	return nil
}
