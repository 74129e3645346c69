package repository

import (
	"context"
	"encoding/json"
	"time"

	"condo-ops-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentRepository handles database operations for store documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a document. It reports false when a row with the same id already exists.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(doc)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByID retrieves a document by collection and ID
func (r *DocumentRepository) GetByID(ctx context.Context, collection, id string) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).First(&doc, "collection = ? AND id = ?", collection, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByTenant retrieves every document of a collection for a tenant in insertion order
func (r *DocumentRepository) ListByTenant(ctx context.Context, tenantID, collection string) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND collection = ?", tenantID, collection).
		Order("created_at ASC, id ASC").
		Find(&docs).Error
	return docs, err
}

// MergeBody shallow-merges patch into the stored body and returns the number of rows touched
func (r *DocumentRepository) MergeBody(ctx context.Context, collection, id string, patch map[string]interface{}) (int64, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return 0, err
	}
	result := r.db.WithContext(ctx).Model(&models.Document{}).
		Where("collection = ? AND id = ?", collection, id).
		Updates(map[string]interface{}{
			"body":       gorm.Expr("body || ?::jsonb", string(raw)),
			"updated_at": time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}

// Delete removes a document and returns the number of rows deleted
func (r *DocumentRepository) Delete(ctx context.Context, collection, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("collection = ? AND id = ?", collection, id).Delete(&models.Document{})
	return result.RowsAffected, result.Error
}

// Transaction runs fn with a repository bound to a single database transaction
func (r *DocumentRepository) Transaction(ctx context.Context, fn func(repo DocumentRepositoryInterface) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DocumentRepository{db: tx})
	})
}

// Ping verifies the database connection
func (r *DocumentRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
