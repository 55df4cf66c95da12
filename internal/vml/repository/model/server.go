package model

import (
	"time"
)

// Server 服务器表
// 删除是状态墓碑（status = DELETED），记录保留在表中，不使用 gorm 软删除
// Version 用于乐观并发控制，每次变更 +1
type Server struct {
	ID        string    `gorm:"primaryKey;type:text;column:id"                                            json:"id"` // srv-{sonyflake}
	Name      string    `gorm:"type:text;not null;column:name"                                            json:"name"`
	Status    string    `gorm:"type:text;not null;index:idx_servers_status;column:status"                 json:"status"` // BUILD, ACTIVE, SHUTOFF, REBOOT, RESIZE, VERIFY_RESIZE, ERROR, DELETED
	FlavorID  string    `gorm:"type:text;not null;index:idx_servers_flavor_id;column:flavor_id"           json:"flavor_id"` // 关联 flavors.id
	ImageID   string    `gorm:"type:text;not null;index:idx_servers_image_id;column:image_id"             json:"image_id"`  // 关联 images.id
	IPAddress string    `gorm:"type:text;column:ip_address"                                               json:"ip_address"`
	Version   uint64    `gorm:"type:integer;not null;default:0;column:version"                            json:"-"` // 乐观锁版本号
	CreatedAt time.Time `gorm:"type:datetime;not null;index:idx_servers_created_at;column:created_at"     json:"created_at"`
	UpdatedAt time.Time `gorm:"type:datetime;not null;column:updated_at"                                  json:"updated_at"`
}

// TableName 指定表名
func (Server) TableName() string {
	return "servers"
}
