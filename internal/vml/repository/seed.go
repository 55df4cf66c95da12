package repository

import (
	"context"
	"fmt"

	"github.com/jimyag/vml/internal/vml/repository/model"
	"github.com/rs/zerolog"
)

// 固定 UUID 的种子数据，重启不会重新生成
var seedFlavors = []model.Flavor{
	{ID: "11111111-0000-0000-0000-000000000001", Name: "m1.tiny", VCPUs: 1, RAMMB: 512, DiskGB: 1},
	{ID: "11111111-0000-0000-0000-000000000002", Name: "m1.small", VCPUs: 1, RAMMB: 2048, DiskGB: 20},
	{ID: "11111111-0000-0000-0000-000000000003", Name: "m1.medium", VCPUs: 2, RAMMB: 4096, DiskGB: 40},
	{ID: "11111111-0000-0000-0000-000000000004", Name: "m1.large", VCPUs: 4, RAMMB: 8192, DiskGB: 80},
	{ID: "11111111-0000-0000-0000-000000000005", Name: "m1.xlarge", VCPUs: 8, RAMMB: 16384, DiskGB: 160},
}

var seedImages = []model.Image{
	{ID: "22222222-0000-0000-0000-000000000001", Name: "Ubuntu 22.04 LTS", OSDistro: "ubuntu", MinDiskGB: 8, SizeBytes: 2361393152, Status: "active"},
	{ID: "22222222-0000-0000-0000-000000000002", Name: "Debian 12", OSDistro: "debian", MinDiskGB: 8, SizeBytes: 1073741824, Status: "active"},
	{ID: "22222222-0000-0000-0000-000000000003", Name: "CentOS Stream 9", OSDistro: "centos", MinDiskGB: 10, SizeBytes: 1610612736, Status: "active"},
	{ID: "22222222-0000-0000-0000-000000000004", Name: "Fedora 39", OSDistro: "fedora", MinDiskGB: 8, SizeBytes: 1879048192, Status: "active"},
}

// Seed 导入规格和镜像种子数据
// 只在对应的表为空时导入，重复调用是安全的
func (r *Repository) Seed(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	flavorRepo := NewFlavorRepository(r.db)
	count, err := flavorRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count flavors: %w", err)
	}
	if count == 0 {
		for i := range seedFlavors {
			if err := flavorRepo.Create(ctx, &seedFlavors[i]); err != nil {
				return fmt.Errorf("seed flavor %s: %w", seedFlavors[i].Name, err)
			}
		}
		logger.Info().Int("count", len(seedFlavors)).Msg("Seed flavors inserted")
	}

	imageRepo := NewImageRepository(r.db)
	count, err = imageRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count images: %w", err)
	}
	if count == 0 {
		for i := range seedImages {
			if err := imageRepo.Create(ctx, &seedImages[i]); err != nil {
				return fmt.Errorf("seed image %s: %w", seedImages[i].Name, err)
			}
		}
		logger.Info().Int("count", len(seedImages)).Msg("Seed images inserted")
	}

	return nil
}
