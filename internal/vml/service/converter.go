package service

import (
	"github.com/jimyag/vml/internal/vml/compute"
	"github.com/jimyag/vml/internal/vml/entity"
	"github.com/jinzhu/copier"
)

// serverToEntity 把后端记录转换为 API 实体
func serverToEntity(record *compute.ServerRecord) (*entity.Server, error) {
	var server entity.Server
	if err := copier.Copy(&server, record); err != nil {
		return nil, err
	}
	return &server, nil
}

func serversToEntities(records []*compute.ServerRecord) ([]*entity.Server, error) {
	servers := make([]*entity.Server, 0, len(records))
	for _, record := range records {
		server, err := serverToEntity(record)
		if err != nil {
			return nil, err
		}
		servers = append(servers, server)
	}
	return servers, nil
}

// flavorToEntity 把后端记录转换为 API 实体
func flavorToEntity(record *compute.FlavorRecord) (*entity.Flavor, error) {
	var flavor entity.Flavor
	if err := copier.Copy(&flavor, record); err != nil {
		return nil, err
	}
	return &flavor, nil
}

func flavorsToEntities(records []*compute.FlavorRecord) ([]*entity.Flavor, error) {
	flavors := make([]*entity.Flavor, 0, len(records))
	for _, record := range records {
		flavor, err := flavorToEntity(record)
		if err != nil {
			return nil, err
		}
		flavors = append(flavors, flavor)
	}
	return flavors, nil
}

// imageToEntity 把后端记录转换为 API 实体
func imageToEntity(record *compute.ImageRecord) (*entity.Image, error) {
	var image entity.Image
	if err := copier.Copy(&image, record); err != nil {
		return nil, err
	}
	return &image, nil
}

func imagesToEntities(records []*compute.ImageRecord) ([]*entity.Image, error) {
	images := make([]*entity.Image, 0, len(records))
	for _, record := range records {
		image, err := imageToEntity(record)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, nil
}
