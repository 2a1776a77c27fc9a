package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chisan-market/internal/domain"
)

type RestaurantRepository interface {
	ListBySales(ctx context.Context, salesID uuid.UUID) ([]domain.RestaurantRef, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.RestaurantProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Restaurant, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateRestaurantInput) (*domain.Restaurant, error)
}

type restaurantRepository struct {
	db *sqlx.DB
}

func NewRestaurantRepository(db *sqlx.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) ListBySales(ctx context.Context, salesID uuid.UUID) ([]domain.RestaurantRef, error) {
	var restaurants []domain.RestaurantRef
	query := `
		SELECT restaurant_id, name FROM restaurants
		WHERE managed_by_sales_id = $1
		ORDER BY name ASC`

	err := r.db.SelectContext(ctx, &restaurants, query, salesID)
	return restaurants, err
}

func (r *restaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	query := `SELECT * FROM restaurants WHERE restaurant_id = $1`

	err := r.db.GetContext(ctx, &rest, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) GetProfile(ctx context.Context, id uuid.UUID) (*domain.RestaurantProfile, error) {
	var profile domain.RestaurantProfile
	query := `
		SELECT r.restaurant_id, r.user_id, r.name, r.address, r.managed_by_sales_id,
			u.email, u.role,
			sales_user.name AS managed_by_sales_name
		FROM restaurants r
		JOIN users u ON r.user_id = u.user_id
		LEFT JOIN users sales_user ON r.managed_by_sales_id = sales_user.user_id
		WHERE r.restaurant_id = $1`

	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *restaurantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	query := `SELECT * FROM restaurants WHERE user_id = $1`

	err := r.db.GetContext(ctx, &rest, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateRestaurantInput) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	query := `
		UPDATE restaurants
		SET name = COALESCE($1, name),
			address = COALESCE($2, address),
			updated_at = NOW()
		WHERE restaurant_id = $3
		RETURNING *`

	err := r.db.GetContext(ctx, &rest, query, input.Name, input.Address, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}
