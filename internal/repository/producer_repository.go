package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chisan-market/internal/domain"
)

type ProducerRepository interface {
	List(ctx context.Context) ([]domain.ProducerRef, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Producer, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.ProducerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Producer, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateProducerInput) (*domain.Producer, error)
}

type producerRepository struct {
	db *sqlx.DB
}

func NewProducerRepository(db *sqlx.DB) ProducerRepository {
	return &producerRepository{db: db}
}

func (r *producerRepository) List(ctx context.Context) ([]domain.ProducerRef, error) {
	var producers []domain.ProducerRef
	query := `SELECT producer_id, name FROM producers ORDER BY name ASC`
	err := r.db.SelectContext(ctx, &producers, query)
	return producers, err
}

func (r *producerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Producer, error) {
	var p domain.Producer
	query := `SELECT * FROM producers WHERE producer_id = $1`

	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *producerRepository) GetProfile(ctx context.Context, id uuid.UUID) (*domain.ProducerProfile, error) {
	var profile domain.ProducerProfile
	query := `
		SELECT p.producer_id, p.user_id, p.name, p.address, u.email, u.role
		FROM producers p
		JOIN users u ON p.user_id = u.user_id
		WHERE p.producer_id = $1`

	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *producerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Producer, error) {
	var p domain.Producer
	query := `SELECT * FROM producers WHERE user_id = $1`

	err := r.db.GetContext(ctx, &p, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *producerRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateProducerInput) (*domain.Producer, error) {
	var p domain.Producer
	query := `
		UPDATE producers
		SET name = COALESCE($1, name),
			address = COALESCE($2, address),
			updated_at = NOW()
		WHERE producer_id = $3
		RETURNING *`

	err := r.db.GetContext(ctx, &p, query, input.Name, input.Address, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
