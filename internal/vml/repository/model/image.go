package model

// Image 镜像表，种子数据，只读
type Image struct {
	ID        string `gorm:"primaryKey;type:text;column:id"             json:"id"`
	Name      string `gorm:"type:text;not null;uniqueIndex;column:name" json:"name"`
	OSDistro  string `gorm:"type:text;not null;column:os_distro"        json:"os_distro"` // ubuntu, debian, ...
	MinDiskGB int    `gorm:"type:integer;not null;column:min_disk_gb"   json:"min_disk_gb"`
	SizeBytes int64  `gorm:"type:integer;not null;column:size_bytes"    json:"size_bytes"`
	Status    string `gorm:"type:text;not null;column:status"           json:"status"` // active
}

// TableName 指定表名
func (Image) TableName() string {
	return "images"
}
