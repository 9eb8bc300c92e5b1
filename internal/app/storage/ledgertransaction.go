package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/edbuddy/edbuddy/internal/app"
)

type CreateLedgerTransactionParams struct {
	Amount    float64
	Balance   float64
	EventType string
	Notes     string
	Time      time.Time
}

func (st *Storage) CreateLedgerTransaction(ctx context.Context, arg CreateLedgerTransactionParams) (int64, error) {
	if arg.Time.IsZero() || arg.EventType == "" {
		return 0, fmt.Errorf("create ledger transaction: %+v: invalid params", arg)
	}
	r, err := st.dbRW.ExecContext(ctx, `
		INSERT INTO ledger_transactions (event_time, event_type, notes, amount, balance)
		VALUES (?, ?, ?, ?, ?);`,
		arg.Time.UTC(),
		arg.EventType,
		arg.Notes,
		arg.Amount,
		arg.Balance,
	)
	if err != nil {
		return 0, fmt.Errorf("create ledger transaction: %w", err)
	}
	id, err := r.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create ledger transaction: %w", err)
	}
	return id, nil
}

// ListLedgerTransactions returns all ledger transactions in the order they were recorded.
func (st *Storage) ListLedgerTransactions(ctx context.Context) ([]*app.LedgerTransaction, error) {
	rows, err := st.dbRO.QueryContext(ctx, `
		SELECT id, event_time, event_type, notes, amount, balance
		FROM ledger_transactions
		ORDER BY id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("list ledger transactions: %w", err)
	}
	defer rows.Close()
	txs := make([]*app.LedgerTransaction, 0)
	for rows.Next() {
		var tx app.LedgerTransaction
		if err := rows.Scan(&tx.ID, &tx.Time, &tx.EventType, &tx.Notes, &tx.Amount, &tx.Balance); err != nil {
			return nil, fmt.Errorf("list ledger transactions: %w", err)
		}
		tx.Time = tx.Time.UTC()
		txs = append(txs, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ledger transactions: %w", err)
	}
	return txs, nil
}
