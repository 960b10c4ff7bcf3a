package datastore

import (
	"encoding/json"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// CollectionDocument is one row of the collection_documents table. Documents
// keep their collection order through the seq column.
type CollectionDocument struct {
	DocID      uint   `gorm:"primaryKey;column:doc_id"`
	Collection string `gorm:"column:collection;size:64;index:idx_collection_seq,priority:1"`
	Seq        int    `gorm:"column:seq;index:idx_collection_seq,priority:2"`
	Body       string `gorm:"column:body;type:json"`
}

// TableName specifies the table name for CollectionDocument.
func (CollectionDocument) TableName() string {
	return "collection_documents"
}

// GormStore persists collections as rows of JSON documents in MySQL. Save
// replaces a collection inside a single transaction, which gives the same
// all-or-nothing replacement the file backend gets from rename.
type GormStore struct {
	mu sync.Mutex
	db *gorm.DB
}

// NewGormStore migrates the documents table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&CollectionDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate collection_documents: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Load reads a collection into out, ordered by seq.
func (s *GormStore) Load(collection string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []CollectionDocument
	if err := s.db.Where("collection = ?", collection).Order("seq").Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load collection %s: %w", collection, err)
	}

	raw := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		raw = append(raw, json.RawMessage(row.Body))
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to assemble collection %s: %w", collection, err)
	}
	return json.Unmarshal(data, out)
}

// Save replaces the whole collection in one transaction.
func (s *GormStore) Save(collection string, docs interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to split collection %s into documents: %w", collection, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", collection).Delete(&CollectionDocument{}).Error; err != nil {
			return err
		}
		for i, body := range raw {
			row := CollectionDocument{Collection: collection, Seq: i, Body: string(body)}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
