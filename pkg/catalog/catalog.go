// Package catalog keeps a local index of scanned Hobeta containers, the
// header metadata of every container seen, keyed the way TR-DOS disks
// keyed their directory entries: one entry per file.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// ErrNotFound reports a lookup for an entry that is not in the catalog.
var ErrNotFound = errors.New("catalog entry not found")

// Entry records one scanned Hobeta container.
type Entry struct {
	ID               string    `json:"id"`
	Path             string    `json:"path"`
	Name             string    `json:"name"`
	Filetype         byte      `json:"filetype"`
	Start            uint16    `json:"start"`
	Length           uint16    `json:"length"`
	FirstSector      byte      `json:"first_sector"`
	OccupiedSectors  byte      `json:"occupied_sectors"`
	StoredCheckSum   uint16    `json:"stored_check_sum"`
	ComputedCheckSum uint16    `json:"computed_check_sum"`
	PayloadBytes     int64     `json:"payload_bytes"`
	ScannedAt        time.Time `json:"scanned_at"`
}

// ChecksumOK reports whether the header checksum matched when the entry
// was scanned.
func (e Entry) ChecksumOK() bool {
	return e.StoredCheckSum == e.ComputedCheckSum
}

// Catalog is a pebble-backed store of scan entries.
type Catalog struct {
	db *pebble.DB
}

// Open opens (or creates) a catalog at the given directory.
func Open(path string) (*Catalog, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Put stores an entry and returns its ID, assigning a fresh one when the
// entry has none.
func (c *Catalog) Put(entry Entry) (string, error) {
	if entry.ID == "" {
		entry.ID = ksuid.New().String()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("failed to encode catalog entry: %w", err)
	}

	if err := c.db.Set([]byte(entry.ID), data, pebble.Sync); err != nil {
		return "", err
	}

	return entry.ID, nil
}

// Get returns the entry with the given ID.
func (c *Catalog) Get(id string) (*Entry, error) {
	data, closer, err := c.db.Get([]byte(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode catalog entry: %w", err)
	}

	return &entry, nil
}

// List returns all entries in key order.
func (c *Catalog) List() ([]Entry, error) {
	iter, err := c.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		var entry Entry
		if err := json.Unmarshal(iter.Value(), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode catalog entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete removes the entry with the given ID. Deleting an absent entry
// is not an error.
func (c *Catalog) Delete(id string) error {
	return c.db.Delete([]byte(id), pebble.Sync)
}

// Close closes the underlying store.
func (c *Catalog) Close() error {
	return c.db.Close()
}
