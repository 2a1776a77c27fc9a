package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxRunner scopes a unit of work to one database transaction. Every
// multi-statement mutation (case+detail insert, proposal creation with its
// case transition, proposal status with its case recompute) goes through it;
// the transaction is rolled back on any error and the connection is always
// returned to the pool.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type Repositories struct {
	db *sqlx.DB

	User         UserRepository
	Producer     ProducerRepository
	Restaurant   RestaurantRepository
	Case         CaseRepository
	Proposal     ProposalRepository
	Message      MessageRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		db:           db,
		User:         NewUserRepository(db),
		Producer:     NewProducerRepository(db),
		Restaurant:   NewRestaurantRepository(db),
		Case:         NewCaseRepository(db),
		Proposal:     NewProposalRepository(db),
		Message:      NewMessageRepository(db),
		Notification: NewNotificationRepository(db),
	}
}

func (r *Repositories) RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
