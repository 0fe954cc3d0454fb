package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils"
)

type PromoCodeRepository interface {
	CreatePromoCode(ctx context.Context, promoCode *models.PromoCode) error
	GetPromoCodeByID(ctx context.Context, id uuid.UUID) (*models.PromoCode, error)
	GetPromoCodeByCode(ctx context.Context, code string) (*models.PromoCode, error)
	ListPromoCodes(ctx context.Context, page, size int) ([]*models.PromoCode, int, error)
	UpdatePromoCode(ctx context.Context, promoCode *models.PromoCode) error
	UpdateActiveStatus(ctx context.Context, id uuid.UUID, isActive bool) (*models.PromoCode, error)
	DeletePromoCode(ctx context.Context, id uuid.UUID) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type promoCodeRepository struct {
	DB *sql.DB
}

func NewPromoCodeRepo(db *sql.DB) PromoCodeRepository {
	return &promoCodeRepository{DB: db}
}

const promoCodeColumns = `id, name, code, type, discount_value, minimum_cart_value, start_date, expiry_date, is_active, created_at, updated_at`

func scanPromoCode(row *sql.Row) (*models.PromoCode, error) {
	promoCode := &models.PromoCode{}

	err := row.Scan(
		&promoCode.ID, &promoCode.Name, &promoCode.Code, &promoCode.Type,
		&promoCode.DiscountValue, &promoCode.MinimumCartValue,
		&promoCode.StartDate, &promoCode.ExpiryDate, &promoCode.IsActive,
		&promoCode.CreatedAt, &promoCode.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return promoCode, nil
}

func (r *promoCodeRepository) CreatePromoCode(ctx context.Context, promoCode *models.PromoCode) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO promo_codes (id, name, code, type, discount_value, minimum_cart_value, start_date, expiry_date, is_active, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		promoCode.ID, promoCode.Name, promoCode.Code, promoCode.Type,
		promoCode.DiscountValue, promoCode.MinimumCartValue,
		promoCode.StartDate, promoCode.ExpiryDate, promoCode.IsActive,
	).Scan(&promoCode.CreatedAt, &promoCode.UpdatedAt)
}

func (r *promoCodeRepository) GetPromoCodeByID(ctx context.Context, id uuid.UUID) (*models.PromoCode, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + promoCodeColumns + `
		FROM promo_codes
		WHERE id = $1
	`

	return scanPromoCode(r.DB.QueryRowContext(dbCtx, query, id))
}

// GetPromoCodeByCode resolves a coupon by its (normalized) code. Validity of
// the active flag and the date window is the service's concern.
func (r *promoCodeRepository) GetPromoCodeByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + promoCodeColumns + `
		FROM promo_codes
		WHERE code = $1
	`

	return scanPromoCode(r.DB.QueryRowContext(dbCtx, query, strings.ToUpper(strings.TrimSpace(code))))
}

func (r *promoCodeRepository) ListPromoCodes(ctx context.Context, page, size int) ([]*models.PromoCode, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM promo_codes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting promo codes: %w", err)
	}

	query := `
		SELECT ` + promoCodeColumns + `
		FROM promo_codes
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	var promoCodes []*models.PromoCode

	for rows.Next() {
		promoCode := &models.PromoCode{}

		if err := rows.Scan(
			&promoCode.ID, &promoCode.Name, &promoCode.Code, &promoCode.Type,
			&promoCode.DiscountValue, &promoCode.MinimumCartValue,
			&promoCode.StartDate, &promoCode.ExpiryDate, &promoCode.IsActive,
			&promoCode.CreatedAt, &promoCode.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning promo code row: %w", err)
		}

		promoCodes = append(promoCodes, promoCode)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating promo code rows: %w", err)
	}

	return promoCodes, total, nil
}

func (r *promoCodeRepository) UpdatePromoCode(ctx context.Context, promoCode *models.PromoCode) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE promo_codes
		SET name = $1, code = $2, type = $3, discount_value = $4, minimum_cart_value = $5, start_date = $6, expiry_date = $7, updated_at = NOW()
		WHERE id = $8
	`

	result, err := r.DB.ExecContext(dbCtx, query,
		promoCode.Name, promoCode.Code, promoCode.Type,
		promoCode.DiscountValue, promoCode.MinimumCartValue,
		promoCode.StartDate, promoCode.ExpiryDate, promoCode.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update the promo code: %w", err)
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

func (r *promoCodeRepository) UpdateActiveStatus(ctx context.Context, id uuid.UUID, isActive bool) (*models.PromoCode, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE promo_codes
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + promoCodeColumns + `
	`

	return scanPromoCode(r.DB.QueryRowContext(dbCtx, query, isActive, id))
}

func (r *promoCodeRepository) DeletePromoCode(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM promo_codes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete the promo code: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// DeactivateExpired flips the active flag off for every coupon past its
// expiry. Run periodically by the cron job.
func (r *promoCodeRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE promo_codes
		SET is_active = FALSE, updated_at = NOW()
		WHERE is_active = TRUE AND expiry_date < $1
	`

	result, err := r.DB.ExecContext(dbCtx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired promo codes: %w", err)
	}

	return result.RowsAffected()
}
