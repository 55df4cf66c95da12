// Package config 提供服务配置
// 加载顺序：默认值 -> VML_CONFIG 指向的 YAML 文件 -> 环境变量，后者覆盖前者
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend 计算后端类型
const (
	BackendLocal = "local"
	BackendCloud = "cloud"
)

type Config struct {
	// Address 是 HTTP 服务绑定地址
	// 可以通过环境变量 VML_ADDRESS 配置
	Address string `yaml:"address"`

	// DataDir 是数据目录，SQLite 数据库放在这里
	// 可以通过环境变量 VML_DATA_DIR 配置
	// 默认：~/.local/share/vml
	DataDir string `yaml:"data_dir"`

	// Backend 选择计算后端：local（本地模拟）或 cloud（真实云平台）
	// 可以通过环境变量 VML_BACKEND 配置
	Backend string `yaml:"backend"`

	// Cloud 是 cloud 后端的连接配置
	Cloud CloudConfig `yaml:"cloud"`
}

// CloudConfig 真实云平台的连接配置
type CloudConfig struct {
	AuthURL     string `yaml:"auth_url"`
	Region      string `yaml:"region"`
	ProjectName string `yaml:"project_name"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
}

func New() (*Config, error) {
	cfg := &Config{
		Address: "0.0.0.0:8000",
		DataDir: defaultDataDir(),
		Backend: BackendLocal,
	}

	// YAML 配置文件可选
	if path := os.Getenv("VML_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	// 环境变量优先级最高
	if addr := os.Getenv("VML_ADDRESS"); addr != "" {
		cfg.Address = addr
	}
	if dir := os.Getenv("VML_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if backend := os.Getenv("VML_BACKEND"); backend != "" {
		cfg.Backend = backend
	}

	if cfg.Backend != BackendLocal && cfg.Backend != BackendCloud {
		return nil, fmt.Errorf("unknown backend %q, expected %q or %q", cfg.Backend, BackendLocal, BackendCloud)
	}
	return cfg, nil
}

// DBPath 返回 SQLite 数据库文件路径
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "vml.db")
}

// defaultDataDir 获取默认数据目录
func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "vml")
	}
	return filepath.Join(".", "data")
}
