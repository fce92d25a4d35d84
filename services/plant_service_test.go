package services

import (
	"context"
	"testing"

	"plant-store/models"
)

// recordingStore tracks which persistence calls the service makes.
type recordingStore struct {
	plants      map[int]models.Plant
	nextID      int
	updateCalls int
}

func newRecordingStore() *recordingStore {
	return &recordingStore{plants: make(map[int]models.Plant)}
}

func (s *recordingStore) ListPlants(ctx context.Context) ([]models.Plant, error) {
	plants := []models.Plant{}
	for _, p := range s.plants {
		plants = append(plants, p)
	}
	return plants, nil
}

func (s *recordingStore) CreatePlant(ctx context.Context, plant *models.Plant) error {
	s.nextID++
	plant.ID = s.nextID
	s.plants[plant.ID] = *plant
	return nil
}

func (s *recordingStore) GetPlantByID(ctx context.Context, id int) (*models.Plant, error) {
	p, ok := s.plants[id]
	if !ok {
		return nil, models.ErrPlantNotFound
	}
	return &p, nil
}

func (s *recordingStore) UpdatePlant(ctx context.Context, plant *models.Plant) error {
	s.updateCalls++
	if _, ok := s.plants[plant.ID]; !ok {
		return models.ErrPlantNotFound
	}
	s.plants[plant.ID] = *plant
	return nil
}

func (s *recordingStore) DeletePlant(ctx context.Context, id int) error {
	if _, ok := s.plants[id]; !ok {
		return models.ErrPlantNotFound
	}
	delete(s.plants, id)
	return nil
}

func price(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestCreatePlantDefaults(t *testing.T) {
	store := newRecordingStore()
	svc := NewPlantService(store)

	plant, err := svc.CreatePlant(context.Background(), models.CreatePlantRequest{
		Name:  "Fern",
		Image: "fern.jpg",
		Price: price(12.5),
	})
	if err != nil {
		t.Fatalf("CreatePlant() error = %v", err)
	}

	if !plant.IsInStock {
		t.Error("IsInStock = false, want default true")
	}
	if plant.ID == 0 {
		t.Error("plant was not assigned an id")
	}
}

func TestUpdatePlant(t *testing.T) {
	t.Run("applies present field", func(t *testing.T) {
		store := newRecordingStore()
		svc := NewPlantService(store)

		created, err := svc.CreatePlant(context.Background(), models.CreatePlantRequest{
			Name: "Fern", Image: "fern.jpg", Price: price(12.5),
		})
		if err != nil {
			t.Fatalf("CreatePlant() error = %v", err)
		}

		updated, err := svc.UpdatePlant(context.Background(), created.ID, models.UpdatePlantRequest{
			IsInStock: boolPtr(false),
		})
		if err != nil {
			t.Fatalf("UpdatePlant() error = %v", err)
		}
		if updated.IsInStock {
			t.Error("IsInStock = true, want false")
		}
	})

	t.Run("absent field still writes the row back", func(t *testing.T) {
		store := newRecordingStore()
		svc := NewPlantService(store)

		created, err := svc.CreatePlant(context.Background(), models.CreatePlantRequest{
			Name: "Fern", Image: "fern.jpg", Price: price(12.5),
		})
		if err != nil {
			t.Fatalf("CreatePlant() error = %v", err)
		}

		updated, err := svc.UpdatePlant(context.Background(), created.ID, models.UpdatePlantRequest{})
		if err != nil {
			t.Fatalf("UpdatePlant() error = %v", err)
		}
		if *updated != *created {
			t.Errorf("no-op update changed record: %+v vs %+v", updated, created)
		}
		if store.updateCalls != 1 {
			t.Errorf("updateCalls = %d, want 1", store.updateCalls)
		}
	})

	t.Run("missing id surfaces ErrPlantNotFound", func(t *testing.T) {
		svc := NewPlantService(newRecordingStore())

		_, err := svc.UpdatePlant(context.Background(), 999999, models.UpdatePlantRequest{
			IsInStock: boolPtr(false),
		})
		if err != models.ErrPlantNotFound {
			t.Errorf("error = %v, want ErrPlantNotFound", err)
		}
	})
}
