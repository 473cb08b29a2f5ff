package boltdb_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendo/infras/boltdb"
)

func openLedger(t *testing.T) boltdb.Ledger {
	t.Helper()

	ledger, err := boltdb.NewLedger(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, ledger.Close())
	})

	return ledger
}

func TestLedgerSeenAfterMarkProcessed(t *testing.T) {
	ledger := openLedger(t)

	seen, err := ledger.Seen("mercadopago", "evt-1")
	assert.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, ledger.MarkProcessed("mercadopago", "evt-1", []byte(`{"id":"evt-1"}`)))

	seen, err = ledger.Seen("mercadopago", "evt-1")
	assert.NoError(t, err)
	assert.True(t, seen)

	// Marking again keeps the first payload and stays idempotent.
	assert.NoError(t, ledger.MarkProcessed("mercadopago", "evt-1", []byte(`{"id":"evt-1","retry":true}`)))
}

func TestLedgerUnmarkedEventIsNotSeen(t *testing.T) {
	ledger := openLedger(t)

	// An event that was looked up but never marked stays invisible, so a
	// provider retry gets processed instead of skipped.
	seen, err := ledger.Seen("mercadopago", "evt-1")
	assert.NoError(t, err)
	assert.False(t, seen)

	seen, err = ledger.Seen("mercadopago", "evt-1")
	assert.NoError(t, err)
	assert.False(t, seen)
}

func TestLedgerProvidersAreIsolated(t *testing.T) {
	ledger := openLedger(t)

	require.NoError(t, ledger.MarkProcessed("mercadopago", "evt-1", nil))

	// Same event id under another provider bucket is a distinct event.
	seen, err := ledger.Seen("stripe", "evt-1")
	assert.NoError(t, err)
	assert.False(t, seen)
}
