package testutil

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/icrowley/fake"

	"github.com/edbuddy/edbuddy/internal/app"
	"github.com/edbuddy/edbuddy/internal/app/storage"
)

// Factory creates test objects in the database.
type Factory struct {
	st *storage.Storage
}

func NewFactory(st *storage.Storage) Factory {
	f := Factory{st: st}
	return f
}

func (f Factory) RandomTime() time.Time {
	hours := time.Duration(rand.IntN(100_000))
	seconds := time.Duration(rand.IntN(3600))
	d := hours*time.Hour + seconds*time.Second
	return time.Now().Add(-d).UTC()
}

// CreateHistoryEntry creates and returns a new history entry. Empty values are filled with random data.
func (f Factory) CreateHistoryEntry(args ...storage.CreateHistoryEntryParams) *app.HistoryEntry {
	var arg storage.CreateHistoryEntryParams
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.EventType == "" {
		arg.EventType = "FSDJump"
	}
	if arg.System == "" {
		arg.System = fake.City()
	}
	if arg.Time.IsZero() {
		arg.Time = f.RandomTime()
	}
	if arg.Position == (app.Position{}) {
		arg.Position = app.Position{
			X: rand.Float64()*1000 - 500,
			Y: rand.Float64()*1000 - 500,
			Z: rand.Float64()*1000 - 500,
		}
	}
	ctx := context.Background()
	id, err := f.st.CreateHistoryEntry(ctx, arg)
	if err != nil {
		panic(err)
	}
	he, err := f.st.GetHistoryEntry(ctx, id)
	if err != nil {
		panic(err)
	}
	return he
}

// CreateLedgerTransaction creates and returns a new ledger transaction. Empty values are filled with random data.
func (f Factory) CreateLedgerTransaction(args ...storage.CreateLedgerTransactionParams) *app.LedgerTransaction {
	var arg storage.CreateLedgerTransactionParams
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.EventType == "" {
		arg.EventType = "MarketSell"
	}
	if arg.Notes == "" {
		arg.Notes = fake.Sentence()
	}
	if arg.Time.IsZero() {
		arg.Time = f.RandomTime()
	}
	if arg.Amount == 0 {
		arg.Amount = float64(rand.IntN(1_000_000))
	}
	ctx := context.Background()
	id, err := f.st.CreateLedgerTransaction(ctx, arg)
	if err != nil {
		panic(err)
	}
	txs, err := f.st.ListLedgerTransactions(ctx)
	if err != nil {
		panic(err)
	}
	for _, tx := range txs {
		if tx.ID == id {
			return tx
		}
	}
	panic("created ledger transaction not found")
}
