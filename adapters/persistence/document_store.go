package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

// postgresDocumentStore keeps every collection in one documents table with a
// JSONB fields column. Creation and update stamps always come from the
// database clock, never from the caller.
type postgresDocumentStore struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresDocumentStore(db *pgxpool.Pool, logger logger.Logger) store.Store {
	return &postgresDocumentStore{db: db, logger: logger}
}

var psqlDocuments = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func scanDocument(row pgx.Row, collection string, l logger.Logger) (*store.Document, error) {
	d := &store.Document{}
	var fieldsBytes []byte

	err := row.Scan(&d.ID, &fieldsBytes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound(collection, "")
		}
		return nil, apperror.NewInternal("failed to scan document row", err)
	}

	if err := json.Unmarshal(fieldsBytes, &d.Fields); err != nil {
		l.Warn("Failed to unmarshal document fields", zap.String("collection", collection), zap.String("id", d.ID), zap.Error(err))
		d.Fields = map[string]any{}
	}
	return d, nil
}

func (s *postgresDocumentStore) ListCollection(ctx context.Context, collection string, q store.Query) ([]store.Document, error) {
	builder := psqlDocuments.Select("id, fields, created_at, updated_at").
		From("documents").
		Where(sq.Eq{"collection": collection})

	for k, v := range q.Filter {
		builder = builder.Where(sq.Expr("fields->>? = ?", k, fmt.Sprintf("%v", v)))
	}

	direction := "ASC"
	if q.Descending {
		direction = "DESC"
	}
	switch q.OrderBy {
	case "", "createdAt":
		builder = builder.OrderBy("created_at " + direction)
	case "updatedAt":
		builder = builder.OrderBy("updated_at " + direction)
	default:
		builder = builder.OrderBy(fmt.Sprintf("fields->>'%s' %s", q.OrderBy, direction))
	}

	if q.Limit > 0 {
		builder = builder.Limit(uint64(q.Limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list query", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewLoadFailed(collection, err)
	}
	defer rows.Close()

	docs := make([]store.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows, collection, s.logger)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewLoadFailed(collection, err)
	}
	return docs, nil
}

func (s *postgresDocumentStore) GetDocument(ctx context.Context, collection, id string) (*store.Document, error) {
	query := `
		SELECT id, fields, created_at, updated_at
		FROM documents
		WHERE collection = $1 AND id = $2
	`
	row := s.db.QueryRow(ctx, query, collection, id)
	return scanDocument(row, collection, s.logger)
}

func (s *postgresDocumentStore) CreateDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	fieldsBytes, err := json.Marshal(fields)
	if err != nil {
		return "", apperror.NewInternal("failed to marshal document fields", err)
	}

	id := uuid.NewString()
	query := `
		INSERT INTO documents (collection, id, fields, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	_, err = s.db.Exec(ctx, query, collection, id, fieldsBytes)
	if err != nil {
		return "", apperror.NewWriteFailed(collection, err)
	}
	return id, nil
}

func (s *postgresDocumentStore) UpdateDocument(ctx context.Context, collection, id string, partial map[string]any) error {
	partialBytes, err := json.Marshal(partial)
	if err != nil {
		return apperror.NewInternal("failed to marshal partial fields", err)
	}

	query := `
		UPDATE documents
		SET fields = fields || $3::jsonb, updated_at = NOW()
		WHERE collection = $1 AND id = $2
	`
	cmdTag, err := s.db.Exec(ctx, query, collection, id, partialBytes)
	if err != nil {
		return apperror.NewWriteFailed(collection, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(collection, id)
	}
	return nil
}

func (s *postgresDocumentStore) SetDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	fieldsBytes, err := json.Marshal(fields)
	if err != nil {
		return apperror.NewInternal("failed to marshal document fields", err)
	}

	// Whole-document overwrite; created_at survives the conflict branch so a
	// singleton keeps its original creation stamp.
	query := `
		INSERT INTO documents (collection, id, fields, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (collection, id) DO UPDATE SET
			fields = EXCLUDED.fields,
			updated_at = NOW()
	`
	_, err = s.db.Exec(ctx, query, collection, id, fieldsBytes)
	if err != nil {
		return apperror.NewWriteFailed(collection, err)
	}
	return nil
}

func (s *postgresDocumentStore) DeleteDocument(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`
	cmdTag, err := s.db.Exec(ctx, query, collection, id)
	if err != nil {
		return apperror.NewWriteFailed(collection, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(collection, id)
	}
	return nil
}
