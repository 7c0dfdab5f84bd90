// internal/store/json_store.go
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/models"
)

// JSONStore keeps the whole collection in memory, newest first, and rewrites
// the entire data file on every mutation. The mutex serializes writers so two
// mutations cannot race on the snapshot. Persistence cost is O(records) per
// write; the collection is expected to stay small.
type JSONStore struct {
	mu      sync.Mutex
	path    string
	records []models.PaymentRecord
}

// NewJSONStore loads the collection from path, or starts empty when the file
// does not exist yet. A corrupt file is logged and treated as empty rather
// than refusing to start.
func NewJSONStore(path string) (*JSONStore, error) {
	s := &JSONStore{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payments file %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &s.records); err != nil {
		log.Printf("ERROR: Failed parsing payments file %s, starting with an empty collection: %v", path, err)
		s.records = nil
	}
	return s, nil
}

// persist rewrites the full snapshot. Callers must hold the mutex.
func (s *JSONStore) persist() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payments: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write payments file %s: %w", s.path, err)
	}
	return nil
}

// Create prepends the record and persists the collection. When the write
// fails the in-memory collection has already diverged from disk; that is
// logged as CRITICAL and surfaced to the caller.
func (s *JSONStore) Create(rec *models.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]models.PaymentRecord{*rec}, s.records...)
	if err := s.persist(); err != nil {
		log.Printf("CRITICAL: In-memory payments diverged from disk after create of %s: %v", rec.ID, err)
		return err
	}
	return nil
}

func (s *JSONStore) List() ([]models.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.PaymentRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *JSONStore) GetByID(id string) (*models.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

func (s *JSONStore) GetByEmailPlan(email, plan string) (*models.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := strings.ToLower(strings.TrimSpace(email))
	for i := range s.records {
		if strings.ToLower(strings.TrimSpace(s.records[i].Email)) == want && s.records[i].Plan == plan {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

func (s *JSONStore) Update(rec *models.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = *rec
			if err := s.persist(); err != nil {
				log.Printf("CRITICAL: In-memory payments diverged from disk after update of %s: %v", rec.ID, err)
				return err
			}
			return nil
		}
	}
	return ErrNotFound
}
