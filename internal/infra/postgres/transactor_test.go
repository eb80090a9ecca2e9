package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx records Commit and Rollback; every other pgx.Tx method is left nil.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return tx.commitErr
}

func (tx *fakeTx) Rollback(context.Context) error {
	tx.rolledBack = true
	if tx.committed {
		return pgx.ErrTxClosed
	}
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestTransactor_WithinTx(t *testing.T) {
	errStore := errors.New("store failed")
	errDown := errors.New("connection refused")

	tests := []struct {
		name          string
		beginner      *fakeBeginner
		fnErr         error
		wantErr       error
		wantCommitted bool
	}{
		{
			name:          "commits on success",
			beginner:      &fakeBeginner{tx: &fakeTx{}},
			wantCommitted: true,
		},
		{
			name:     "rolls back when fn fails",
			beginner: &fakeBeginner{tx: &fakeTx{}},
			fnErr:    errStore,
			wantErr:  errStore,
		},
		{
			name:          "commit error is returned",
			beginner:      &fakeBeginner{tx: &fakeTx{commitErr: errDown}},
			wantErr:       errDown,
			wantCommitted: true,
		},
		{
			name:     "begin error skips fn",
			beginner: &fakeBeginner{err: errDown},
			wantErr:  errDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			err := NewTransactor(tt.beginner).WithinTx(context.Background(), func(ctx context.Context, tx pgx.Tx) error {
				called = true
				return tt.fnErr
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.beginner.tx == nil {
				assert.False(t, called)
				return
			}
			assert.True(t, called)
			assert.Equal(t, tt.wantCommitted, tt.beginner.tx.committed)
			assert.True(t, tt.beginner.tx.rolledBack)
		})
	}
}
