package entity

// Image 可启动的操作系统镜像模板，服务器通过 ID 引用
type Image struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OSDistro  string `json:"os_distro"`
	MinDiskGB int    `json:"min_disk_gb"`
	SizeBytes int64  `json:"size_bytes"`
	Status    string `json:"status"`
}

// GetImageRequest 查询单个镜像请求
type GetImageRequest struct {
	ImageID string `uri:"image_id" binding:"required"`
}
