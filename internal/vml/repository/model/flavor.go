package model

// Flavor 规格表，种子数据，只读
type Flavor struct {
	ID     string `gorm:"primaryKey;type:text;column:id"            json:"id"`
	Name   string `gorm:"type:text;not null;uniqueIndex;column:name" json:"name"` // m1.tiny, m1.small, ...
	VCPUs  int    `gorm:"type:integer;not null;column:vcpus"         json:"vcpus"`
	RAMMB  int    `gorm:"type:integer;not null;column:ram_mb"        json:"ram_mb"`
	DiskGB int    `gorm:"type:integer;not null;column:disk_gb"       json:"disk_gb"`
}

// TableName 指定表名
func (Flavor) TableName() string {
	return "flavors"
}
