package entity

// Flavor 硬件规格模板，服务器通过 ID 引用
type Flavor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	VCPUs  int    `json:"vcpus"`
	RAMMB  int    `json:"ram_mb"`
	DiskGB int    `json:"disk_gb"`
}

// GetFlavorRequest 查询单个规格请求
type GetFlavorRequest struct {
	FlavorID string `uri:"flavor_id" binding:"required"`
}
