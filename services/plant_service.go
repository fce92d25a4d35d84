package services

import (
	"context"

	"plant-store/models"
)

// PlantStore is the persistence surface the service needs. Implemented by
// repositories.PlantRepository in production and by an in-memory store in
// tests.
type PlantStore interface {
	ListPlants(ctx context.Context) ([]models.Plant, error)
	CreatePlant(ctx context.Context, plant *models.Plant) error
	GetPlantByID(ctx context.Context, id int) (*models.Plant, error)
	UpdatePlant(ctx context.Context, plant *models.Plant) error
	DeletePlant(ctx context.Context, id int) error
}

type PlantService struct {
	store PlantStore
}

func NewPlantService(store PlantStore) *PlantService {
	return &PlantService{store: store}
}

func (s *PlantService) ListPlants(ctx context.Context) ([]models.Plant, error) {
	return s.store.ListPlants(ctx)
}

func (s *PlantService) CreatePlant(ctx context.Context, req models.CreatePlantRequest) (*models.Plant, error) {
	plant := &models.Plant{
		Name:      req.Name,
		Image:     req.Image,
		Price:     *req.Price,
		IsInStock: true,
	}

	if err := s.store.CreatePlant(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (s *PlantService) GetPlantByID(ctx context.Context, id int) (*models.Plant, error) {
	return s.store.GetPlantByID(ctx, id)
}

// UpdatePlant applies a partial update. An absent is_in_stock still writes
// the record back unchanged, so the response always reflects a committed row.
func (s *PlantService) UpdatePlant(ctx context.Context, id int, req models.UpdatePlantRequest) (*models.Plant, error) {
	plant, err := s.store.GetPlantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsInStock != nil {
		plant.IsInStock = *req.IsInStock
	}

	if err := s.store.UpdatePlant(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (s *PlantService) DeletePlant(ctx context.Context, id int) error {
	return s.store.DeletePlant(ctx, id)
}
