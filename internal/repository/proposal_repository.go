package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chisan-market/internal/domain"
)

// ProposalParties resolves the ownership links needed by the authorization
// predicates: the proposing sales rep and the restaurant's owning user.
type ProposalParties struct {
	ProposalID        uuid.UUID `db:"proposal_id"`
	CaseID            uuid.UUID `db:"case_id"`
	SalesID           uuid.UUID `db:"sales_id"`
	RestaurantID      uuid.UUID `db:"restaurant_id"`
	RestaurantOwnerID uuid.UUID `db:"restaurant_owner_id"`
}

type ProposalRepository interface {
	Create(ctx context.Context, tx *sqlx.Tx, p *domain.Proposal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	GetParties(ctx context.Context, id uuid.UUID) (*ProposalParties, error)
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status domain.ProposalStatus) (*domain.Proposal, error)

	// CountActiveByCase counts PROPOSED/CONSIDERING proposals inside the
	// caller's transaction so the decline fallback sees its own update.
	CountActiveByCase(ctx context.Context, tx *sqlx.Tx, caseID uuid.UUID) (int64, error)

	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.ProposalSummary, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.RestaurantProposal, error)
}

type proposalRepository struct {
	db *sqlx.DB
}

func NewProposalRepository(db *sqlx.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, tx *sqlx.Tx, p *domain.Proposal) error {
	query := `
		INSERT INTO proposals (proposal_id, case_id, restaurant_id, sales_id, status, memo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	return tx.QueryRowxContext(ctx, query,
		p.ID, p.CaseID, p.RestaurantID, p.SalesID, p.Status, p.Memo,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *proposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	var p domain.Proposal
	query := `SELECT * FROM proposals WHERE proposal_id = $1`

	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proposalRepository) GetParties(ctx context.Context, id uuid.UUID) (*ProposalParties, error) {
	var parties ProposalParties
	query := `
		SELECT p.proposal_id, p.case_id, p.sales_id, p.restaurant_id,
			r.user_id AS restaurant_owner_id
		FROM proposals p
		JOIN restaurants r ON p.restaurant_id = r.restaurant_id
		WHERE p.proposal_id = $1`

	err := r.db.GetContext(ctx, &parties, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &parties, nil
}

func (r *proposalRepository) UpdateStatus(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status domain.ProposalStatus) (*domain.Proposal, error) {
	var p domain.Proposal
	query := `
		UPDATE proposals
		SET status = $1, updated_at = NOW()
		WHERE proposal_id = $2
		RETURNING *`

	err := tx.QueryRowxContext(ctx, query, status, id).StructScan(&p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proposalRepository) CountActiveByCase(ctx context.Context, tx *sqlx.Tx, caseID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM proposals WHERE case_id = $1 AND status IN ($2, $3)`

	err := tx.QueryRowxContext(ctx, query, caseID, domain.ProposalProposed, domain.ProposalConsidering).Scan(&count)
	return count, err
}

func (r *proposalRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.ProposalSummary, error) {
	var proposals []domain.ProposalSummary
	query := `
		SELECT p.proposal_id, p.status, p.memo, p.created_at,
			r.name AS restaurant_name, r.address AS restaurant_address
		FROM proposals p
		JOIN restaurants r ON p.restaurant_id = r.restaurant_id
		WHERE p.case_id = $1
		ORDER BY p.created_at DESC`

	err := r.db.SelectContext(ctx, &proposals, query, caseID)
	return proposals, err
}

func (r *proposalRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.RestaurantProposal, error) {
	var proposals []domain.RestaurantProposal
	query := `
		SELECT
			p.proposal_id, p.status, p.memo, p.created_at,
			c.case_id, c.title AS case_title, c.status AS case_status,
			cd.item_name AS case_item_name,
			prod.name AS producer_name,
			sales_user.name AS sales_name
		FROM proposals p
		JOIN cases c ON p.case_id = c.case_id
		JOIN case_details cd ON c.case_id = cd.case_id
		JOIN producers prod ON c.producer_id = prod.producer_id
		JOIN users sales_user ON p.sales_id = sales_user.user_id
		WHERE p.restaurant_id = $1
		ORDER BY p.created_at DESC`

	err := r.db.SelectContext(ctx, &proposals, query, restaurantID)
	return proposals, err
}
