package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils"
)

type MotorcycleRepository interface {
	CreateMotorcycle(ctx context.Context, motorcycle *models.Motorcycle) error
	GetMotorcycleByID(ctx context.Context, id uuid.UUID) (*models.Motorcycle, error)
	ListMotorcycles(ctx context.Context, page, size int) ([]*models.Motorcycle, int, error)
	UpdateMotorcycle(ctx context.Context, motorcycle *models.Motorcycle) error
}

type motorcycleRepository struct {
	DB *sql.DB
}

func NewMotorcycleRepo(db *sql.DB) MotorcycleRepository {
	return &motorcycleRepository{DB: db}
}

func (r *motorcycleRepository) CreateMotorcycle(ctx context.Context, motorcycle *models.Motorcycle) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	citiesJSON, err := json.Marshal(motorcycle.AvailableInCities)
	if err != nil {
		return fmt.Errorf("failed to marshal branch availability: %w", err)
	}

	query := `
		INSERT INTO motorcycles (id, make, model, description, price_per_day_mon_thu, price_per_day_fri_sun, security_deposit, available_in_cities, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		motorcycle.ID, motorcycle.Make, motorcycle.Model, motorcycle.Description,
		motorcycle.PricePerDayMonThu, motorcycle.PricePerDayFriSun, motorcycle.SecurityDeposit, citiesJSON,
	).Scan(&motorcycle.CreatedAt, &motorcycle.UpdatedAt)
}

func (r *motorcycleRepository) GetMotorcycleByID(ctx context.Context, id uuid.UUID) (*models.Motorcycle, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, make, model, description, price_per_day_mon_thu, price_per_day_fri_sun, security_deposit, available_in_cities, created_at, updated_at
		FROM motorcycles
		WHERE id = $1
	`

	motorcycle := &models.Motorcycle{}

	var citiesJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&motorcycle.ID, &motorcycle.Make, &motorcycle.Model, &motorcycle.Description,
		&motorcycle.PricePerDayMonThu, &motorcycle.PricePerDayFriSun, &motorcycle.SecurityDeposit,
		&citiesJSON, &motorcycle.CreatedAt, &motorcycle.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	if err := json.Unmarshal(citiesJSON, &motorcycle.AvailableInCities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal branch availability: %w", err)
	}

	return motorcycle, nil
}

func (r *motorcycleRepository) ListMotorcycles(ctx context.Context, page, size int) ([]*models.Motorcycle, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM motorcycles`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting motorcycles: %w", err)
	}

	query := `
		SELECT id, make, model, description, price_per_day_mon_thu, price_per_day_fri_sun, security_deposit, available_in_cities, created_at, updated_at
		FROM motorcycles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	var motorcycles []*models.Motorcycle

	for rows.Next() {
		motorcycle := &models.Motorcycle{}

		var citiesJSON []byte

		if err := rows.Scan(
			&motorcycle.ID, &motorcycle.Make, &motorcycle.Model, &motorcycle.Description,
			&motorcycle.PricePerDayMonThu, &motorcycle.PricePerDayFriSun, &motorcycle.SecurityDeposit,
			&citiesJSON, &motorcycle.CreatedAt, &motorcycle.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning motorcycle row: %w", err)
		}

		if err := json.Unmarshal(citiesJSON, &motorcycle.AvailableInCities); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal branch availability: %w", err)
		}

		motorcycles = append(motorcycles, motorcycle)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating motorcycle rows: %w", err)
	}

	return motorcycles, total, nil
}

func (r *motorcycleRepository) UpdateMotorcycle(ctx context.Context, motorcycle *models.Motorcycle) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	citiesJSON, err := json.Marshal(motorcycle.AvailableInCities)
	if err != nil {
		return fmt.Errorf("failed to marshal branch availability: %w", err)
	}

	query := `
		UPDATE motorcycles
		SET make = $1, model = $2, description = $3, price_per_day_mon_thu = $4, price_per_day_fri_sun = $5, security_deposit = $6, available_in_cities = $7, updated_at = NOW()
		WHERE id = $8
	`

	result, err := r.DB.ExecContext(dbCtx, query,
		motorcycle.Make, motorcycle.Model, motorcycle.Description,
		motorcycle.PricePerDayMonThu, motorcycle.PricePerDayFriSun, motorcycle.SecurityDeposit,
		citiesJSON, motorcycle.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update the motorcycle: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
