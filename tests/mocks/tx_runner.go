package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxRunner runs the unit of work with a nil transaction so service tests can
// exercise transactional flows against mocked repositories.
type TxRunner struct {
	// Err, when set, is returned without invoking the function, simulating a
	// failed begin/commit.
	Err error
}

func (r *TxRunner) RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	if r.Err != nil {
		return r.Err
	}
	return fn(nil)
}
