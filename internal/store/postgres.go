package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"condo-ops-backend/internal/database"
	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/logger"
	"condo-ops-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"
)

// PostgresStore keeps documents in the documents table through the gorm
// repository and streams changes with LISTEN/NOTIFY over a dedicated pgx
// connection per subscription.
type PostgresStore struct {
	repo repository.DocumentRepositoryInterface
	dsn  string
}

// NewPostgresStore creates a store over repo. dsn is used to open listener connections.
func NewPostgresStore(repo repository.DocumentRepositoryInterface, dsn string) *PostgresStore {
	return &PostgresStore{repo: repo, dsn: dsn}
}

// Create implements Writer
func (s *PostgresStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	return pgWriter{repo: s.repo}.Create(ctx, collection, doc)
}

// Update implements Writer
func (s *PostgresStore) Update(ctx context.Context, collection, id string, patch map[string]interface{}) error {
	return pgWriter{repo: s.repo}.Update(ctx, collection, id, patch)
}

// Delete implements Writer
func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	return pgWriter{repo: s.repo}.Delete(ctx, collection, id)
}

// Atomic runs fn inside one database transaction
func (s *PostgresStore) Atomic(ctx context.Context, fn func(w Writer) error) error {
	err := s.repo.Transaction(ctx, func(tx repository.DocumentRepositoryInterface) error {
		return fn(pgWriter{repo: tx})
	})
	if err == nil || isDomainError(err) {
		return err
	}
	return apperrors.NewPersistenceError("atomic", "", "", err)
}

// Snapshot returns the current documents of a collection for a tenant
func (s *PostgresStore) Snapshot(ctx context.Context, collection, tenantID string) (Snapshot, error) {
	rows, err := s.repo.ListByTenant(ctx, tenantID, collection)
	if err != nil {
		return Snapshot{}, apperrors.NewPersistenceError("snapshot", collection, "", err)
	}
	snap := Snapshot{
		Collection: collection,
		TenantID:   tenantID,
		TakenAt:    time.Now().UTC(),
		Documents:  make([]Document, 0, len(rows)),
	}
	for _, row := range rows {
		snap.Documents = append(snap.Documents, Document{
			ID:        row.ID,
			TenantID:  row.TenantID,
			Body:      row.Body,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return snap, nil
}

// Subscribe opens a listener connection and delivers a snapshot now and after
// every committed write to the collection for the tenant.
func (s *PostgresStore) Subscribe(ctx context.Context, collection, tenantID string) (*Subscription, error) {
	conn, err := pgx.Connect(ctx, s.dsn)
	if err != nil {
		return nil, apperrors.NewPersistenceError("subscribe", collection, "", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+database.ChangeFeedChannel); err != nil {
		_ = conn.Close(context.Background())
		return nil, apperrors.NewPersistenceError("subscribe", collection, "", err)
	}

	listenCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sub := newSubscription(func() {
		cancel()
		<-done
	})

	go s.listen(listenCtx, conn, sub, collection, tenantID, done)
	sub.bind(ctx)
	return sub, nil
}

func (s *PostgresStore) listen(ctx context.Context, conn *pgx.Conn, sub *Subscription, collection, tenantID string, done chan struct{}) {
	defer close(done)
	defer func() { _ = conn.Close(context.Background()) }()

	log := logger.New().WithFields(map[string]interface{}{
		"collection": collection,
		"tenant_id":  tenantID,
	})
	want := tenantID + ":" + collection

	push := func() bool {
		snap, err := s.Snapshot(ctx, collection, tenantID)
		if err != nil {
			if ctx.Err() == nil {
				log.WithError(err).Warn("Failed to load snapshot for subscriber")
			}
			return ctx.Err() == nil
		}
		return sub.publish(snap)
	}

	if !push() {
		return
	}
	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.WithError(err).Error("Change feed connection lost")
				go sub.Close()
			}
			return
		}
		if n.Payload != want {
			continue
		}
		if !push() {
			return
		}
	}
}

// pgWriter applies writes through a (possibly transactional) repository
type pgWriter struct {
	repo repository.DocumentRepositoryInterface
}

func (w pgWriter) Create(ctx context.Context, collection string, doc Document) (string, error) {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	body, err := stampBody(doc.Body, doc.ID, doc.TenantID)
	if err != nil {
		return "", apperrors.NewPersistenceError("create", collection, doc.ID, err)
	}
	row := &models.Document{
		ID:         doc.ID,
		TenantID:   doc.TenantID,
		Collection: collection,
		Body:       body,
	}
	inserted, err := w.repo.Create(ctx, row)
	if err != nil {
		return "", apperrors.NewPersistenceError("create", collection, doc.ID, err)
	}
	if !inserted {
		return "", apperrors.ErrDocumentExists
	}
	return row.ID, nil
}

func (w pgWriter) Update(ctx context.Context, collection, id string, patch map[string]interface{}) error {
	affected, err := w.repo.MergeBody(ctx, collection, id, sanitizePatch(patch))
	if err != nil {
		return apperrors.NewPersistenceError("update", collection, id, err)
	}
	if affected == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

func (w pgWriter) Delete(ctx context.Context, collection, id string) error {
	affected, err := w.repo.Delete(ctx, collection, id)
	if err != nil {
		return apperrors.NewPersistenceError("delete", collection, id, err)
	}
	if affected == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

// isDomainError reports errors that already carry their meaning and must not be rewrapped
func isDomainError(err error) bool {
	return apperrors.IsPersistence(err) ||
		apperrors.IsNotFound(err) ||
		apperrors.IsAlreadyExists(err) ||
		apperrors.IsValidation(err) ||
		apperrors.IsInvalidTransition(err) ||
		apperrors.IsConflict(err) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}

// Open builds the configured store
func Open(driver string, db *gorm.DB, dsn string) (Store, error) {
	switch driver {
	case "memory":
		return NewMemoryStore(), nil
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres store requires a database connection")
		}
		return NewPostgresStore(repository.NewDocumentRepository(db), dsn), nil
	default:
		return nil, apperrors.ErrUnknownStoreDriver
	}
}
