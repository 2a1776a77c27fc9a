package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"chisan-market/internal/domain"
)

type CaseRepository interface {
	Create(ctx context.Context, tx *sqlx.Tx, c *domain.Case, d *domain.CaseDetail) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	GetView(ctx context.Context, id uuid.UUID) (*domain.CaseView, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// AssignIfNew is the conditional-update primitive: the WHERE clause on
	// status is the system's sole concurrency guard for assignment. Returns
	// (nil, nil) when zero rows matched.
	AssignIfNew(ctx context.Context, caseID, salesID uuid.UUID) (*domain.Case, error)

	Update(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, input domain.UpdateCaseInput) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// Lifecycle transitions driven by proposal activity. All run inside the
	// proposal mutation's transaction.
	MarkProposing(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error
	Close(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error
	RevertAfterDecline(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error

	ListNew(ctx context.Context) ([]domain.CaseSummary, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]domain.CaseSummary, error)
	ListByAssignedSales(ctx context.Context, salesID uuid.UUID) ([]domain.CaseSummary, error)
	ListByProducer(ctx context.Context, producerID uuid.UUID) ([]domain.CaseSummary, error)
}

type caseRepository struct {
	db *sqlx.DB
}

func NewCaseRepository(db *sqlx.DB) CaseRepository {
	return &caseRepository{db: db}
}

const caseSummaryColumns = `
	c.case_id, c.title, c.status, c.created_at, c.updated_at,
	p.name AS producer_name, p.address AS producer_address,
	cd.item_name, cd.quantity, cd.desired_price,
	sales.name AS assigned_sales_name`

const caseSummaryJoins = `
	FROM cases c
	JOIN producers p ON c.producer_id = p.producer_id
	JOIN case_details cd ON c.case_id = cd.case_id
	LEFT JOIN users sales ON c.assigned_sales_id = sales.user_id`

func (r *caseRepository) Create(ctx context.Context, tx *sqlx.Tx, c *domain.Case, d *domain.CaseDetail) error {
	caseQuery := `
		INSERT INTO cases (case_id, title, status, created_by_user_id, producer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := tx.QueryRowxContext(ctx, caseQuery,
		c.ID, c.Title, c.Status, c.CreatedByUserID, c.ProducerID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}

	detailQuery := `
		INSERT INTO case_details (case_id, item_name, quantity, desired_price, description, image_urls)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	d.CaseID = c.ID
	return tx.QueryRowxContext(ctx, detailQuery,
		d.CaseID, d.ItemName, d.Quantity, d.DesiredPrice, d.Description, d.ImageURLs,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
}

func (r *caseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	var c domain.Case
	query := `SELECT * FROM cases WHERE case_id = $1`

	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseRepository) GetView(ctx context.Context, id uuid.UUID) (*domain.CaseView, error) {
	var v domain.CaseView
	query := `
		SELECT
			c.case_id, c.title, c.status, c.created_at, c.updated_at,
			c.created_by_user_id, creator.name AS created_by_user_name,
			c.producer_id, p.name AS producer_name, p.address AS producer_address,
			c.assigned_sales_id, sales.name AS assigned_sales_name,
			cd.item_name, cd.quantity, cd.desired_price, cd.description, cd.image_urls
		FROM cases c
		LEFT JOIN case_details cd ON c.case_id = cd.case_id
		LEFT JOIN producers p ON c.producer_id = p.producer_id
		LEFT JOIN users creator ON c.created_by_user_id = creator.user_id
		LEFT JOIN users sales ON c.assigned_sales_id = sales.user_id
		WHERE c.case_id = $1`

	err := r.db.GetContext(ctx, &v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *caseRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM cases WHERE case_id = $1)`
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

func (r *caseRepository) AssignIfNew(ctx context.Context, caseID, salesID uuid.UUID) (*domain.Case, error) {
	var c domain.Case
	query := `
		UPDATE cases
		SET assigned_sales_id = $1, status = $2, updated_at = NOW()
		WHERE case_id = $3 AND status = $4
		RETURNING *`

	err := r.db.GetContext(ctx, &c, query, salesID, domain.CasePending, caseID, domain.CaseNew)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseRepository) Update(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, input domain.UpdateCaseInput) error {
	caseQuery := `
		UPDATE cases
		SET title = COALESCE($1, title),
			producer_id = COALESCE($2, producer_id),
			updated_at = NOW()
		WHERE case_id = $3`

	if _, err := tx.ExecContext(ctx, caseQuery, input.Title, input.ProducerID, id); err != nil {
		return err
	}

	var imageURLs interface{}
	if input.ImageURLs != nil {
		imageURLs = pq.StringArray(input.ImageURLs)
	}

	detailQuery := `
		UPDATE case_details
		SET item_name = COALESCE($1, item_name),
			quantity = COALESCE($2, quantity),
			desired_price = COALESCE($3, desired_price),
			description = COALESCE($4, description),
			image_urls = COALESCE($5, image_urls),
			updated_at = NOW()
		WHERE case_id = $6`

	_, err := tx.ExecContext(ctx, detailQuery,
		input.ItemName, input.Quantity, input.DesiredPrice, input.Description, imageURLs, id)
	return err
}

func (r *caseRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	// Cascades to case_details, proposals and their messages.
	res, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE case_id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *caseRepository) MarkProposing(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	query := `
		UPDATE cases
		SET status = $1, updated_at = NOW()
		WHERE case_id = $2 AND status NOT IN ($3, $4)`

	_, err := tx.ExecContext(ctx, query, domain.CaseProposing, id, domain.CaseClosed, domain.CaseRejected)
	return err
}

func (r *caseRepository) Close(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	query := `UPDATE cases SET status = $1, updated_at = NOW() WHERE case_id = $2`
	_, err := tx.ExecContext(ctx, query, domain.CaseClosed, id)
	return err
}

func (r *caseRepository) RevertAfterDecline(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	query := `
		UPDATE cases
		SET status = CASE
			WHEN assigned_sales_id IS NULL THEN $1::text
			ELSE $2::text
		END,
		updated_at = NOW()
		WHERE case_id = $3`

	_, err := tx.ExecContext(ctx, query, domain.CaseNew, domain.CasePending, id)
	return err
}

func (r *caseRepository) ListNew(ctx context.Context) ([]domain.CaseSummary, error) {
	var cases []domain.CaseSummary
	query := `SELECT ` + caseSummaryColumns + caseSummaryJoins + `
		WHERE c.status = $1
		ORDER BY c.created_at DESC`

	err := r.db.SelectContext(ctx, &cases, query, domain.CaseNew)
	return cases, err
}

func (r *caseRepository) ListByCreator(ctx context.Context, userID uuid.UUID) ([]domain.CaseSummary, error) {
	var cases []domain.CaseSummary
	query := `SELECT ` + caseSummaryColumns + caseSummaryJoins + `
		WHERE c.created_by_user_id = $1
		ORDER BY c.created_at DESC`

	err := r.db.SelectContext(ctx, &cases, query, userID)
	return cases, err
}

func (r *caseRepository) ListByAssignedSales(ctx context.Context, salesID uuid.UUID) ([]domain.CaseSummary, error) {
	var cases []domain.CaseSummary
	query := `SELECT ` + caseSummaryColumns + caseSummaryJoins + `
		WHERE c.assigned_sales_id = $1
		ORDER BY c.updated_at DESC`

	err := r.db.SelectContext(ctx, &cases, query, salesID)
	return cases, err
}

func (r *caseRepository) ListByProducer(ctx context.Context, producerID uuid.UUID) ([]domain.CaseSummary, error) {
	var cases []domain.CaseSummary
	query := `SELECT ` + caseSummaryColumns + caseSummaryJoins + `
		WHERE c.producer_id = $1
		ORDER BY c.created_at DESC`

	err := r.db.SelectContext(ctx, &cases, query, producerID)
	return cases, err
}
