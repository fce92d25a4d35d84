package repositories

import (
	"context"
	"errors"

	"plant-store/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlantRepository struct {
	db *pgxpool.Pool
}

func NewPlantRepository(db *pgxpool.Pool) *PlantRepository {
	return &PlantRepository{db: db}
}

func (r *PlantRepository) ListPlants(ctx context.Context) ([]models.Plant, error) {
	query := `SELECT id, name, image, price, is_in_stock FROM plants ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plants := []models.Plant{}
	for rows.Next() {
		var p models.Plant
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.IsInStock); err != nil {
			return nil, err
		}
		plants = append(plants, p)
	}
	return plants, rows.Err()
}

func (r *PlantRepository) CreatePlant(ctx context.Context, plant *models.Plant) error {
	query := `
		INSERT INTO plants (name, image, price, is_in_stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		plant.Name, plant.Image, plant.Price, plant.IsInStock,
	).Scan(&plant.ID)
}

func (r *PlantRepository) GetPlantByID(ctx context.Context, id int) (*models.Plant, error) {
	query := `SELECT id, name, image, price, is_in_stock FROM plants WHERE id = $1`

	var p models.Plant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Image, &p.Price, &p.IsInStock,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrPlantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePlant writes the stock flag back. The remaining columns are
// create-only, so nothing else is touched.
func (r *PlantRepository) UpdatePlant(ctx context.Context, plant *models.Plant) error {
	query := `UPDATE plants SET is_in_stock = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, plant.IsInStock, plant.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrPlantNotFound
	}
	return nil
}

func (r *PlantRepository) DeletePlant(ctx context.Context, id int) error {
	query := `DELETE FROM plants WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrPlantNotFound
	}
	return nil
}
