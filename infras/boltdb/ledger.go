// Package boltdb keeps the append-only webhook event ledger in an embedded
// Bolt database. Its single job is duplicate detection: an event id is marked
// processed only after its business effect has been applied, so a retried
// delivery is skipped when the first one succeeded and re-processed when it
// did not.
package boltdb

//go:generate go run go.uber.org/mock/mockgen -source=./ledger.go -destination=./mocks/ledger_mock.go -package=mocks

import (
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"github.com/rs/zerolog/log"
)

type Ledger interface {
	// Seen reports whether the event id was already marked processed under
	// its provider bucket.
	Seen(provider, eventID string) (bool, error)
	// MarkProcessed appends the event under its provider bucket. The payload
	// is kept from the first marking only.
	MarkProcessed(provider, eventID string, payload []byte) error
	Close() error
}

type ledgerImpl struct {
	db *bolt.DB
}

func NewLedger(path string) (Ledger, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open event ledger at %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("event ledger opened")

	return &ledgerImpl{db: db}, nil
}

func (l *ledgerImpl) Seen(provider, eventID string) (seen bool, err error) {
	err = l.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(provider))
		if bucket == nil {
			return nil
		}

		seen = bucket.Get([]byte(eventID)) != nil

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to read ledger event: %w", err)
	}

	return seen, nil
}

func (l *ledgerImpl) MarkProcessed(provider, eventID string, payload []byte) error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(provider))
		if err != nil {
			return fmt.Errorf("failed to create ledger bucket %s: %w", provider, err)
		}

		if bucket.Get([]byte(eventID)) != nil {
			return nil
		}

		if err := bucket.Put([]byte(eventID), payload); err != nil {
			return fmt.Errorf("failed to append ledger event %s: %w", eventID, err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to mark ledger event processed: %w", err)
	}

	return nil
}

func (l *ledgerImpl) Close() error {
	return l.db.Close() //nolint:wrapcheck
}
