package repository

import (
	"context"

	"condo-ops-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	Create(ctx context.Context, doc *models.Document) (bool, error)
	GetByID(ctx context.Context, collection, id string) (*models.Document, error)
	ListByTenant(ctx context.Context, tenantID, collection string) ([]models.Document, error)
	MergeBody(ctx context.Context, collection, id string, patch map[string]interface{}) (int64, error)
	Delete(ctx context.Context, collection, id string) (int64, error)
	Transaction(ctx context.Context, fn func(repo DocumentRepositoryInterface) error) error
	Ping(ctx context.Context) error
}
