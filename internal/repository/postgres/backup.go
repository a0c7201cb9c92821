package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tenantops/tenant-admin-api/internal/domain"
)

type BackupRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBackupRepository(writerDB, readerDB *gorm.DB) *BackupRepository {
	return &BackupRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// FetchTableRows returns every row of the given table owned by the tenant.
// Rows come back as opaque column maps so the snapshot survives schema
// changes in the individual tables.
func (r *BackupRepository) FetchTableRows(ctx context.Context, table, tenantID string) ([]domain.Row, error) {
	var rows []map[string]any
	err := r.readerDB.WithContext(ctx).
		Table(table).
		Where("tenant_id = ?", tenantID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]domain.Row, len(rows))
	for i, row := range rows {
		result[i] = domain.Row(row)
	}
	return result, nil
}

// FetchTenantRow fetches the tenant's own row. Exactly one row must exist.
func (r *BackupRepository) FetchTenantRow(ctx context.Context, tenantID string) (domain.Row, error) {
	var row map[string]any
	err := r.readerDB.WithContext(ctx).
		Table(domain.Tenant{}.TableName()).
		Where("id = ?", tenantID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return domain.Row(row), nil
}

// RestoreDocument writes a snapshot back inside a single transaction: the
// tenant row first, then every table in the fixed order. Any failure rolls
// the whole restore back, so a tenant is never left in a mixed old/new
// state.
func (r *BackupRepository) RestoreDocument(ctx context.Context, doc *domain.BackupDocument) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if doc.Tenant != nil {
			if err := upsertRow(tx, domain.Tenant{}.TableName(), doc.Tenant); err != nil {
				return fmt.Errorf("failed to restore tenant: %w", err)
			}
		}

		for _, table := range domain.BackupTables {
			for _, row := range doc.Tables[table] {
				if err := upsertRow(tx, table, row); err != nil {
					return fmt.Errorf("failed to restore %s: %w", table, err)
				}
			}
		}

		return nil
	})
}

// upsertRow inserts a row keyed by its id column, replacing the remaining
// columns on conflict. Rows without an id fall back to a plain insert.
func upsertRow(tx *gorm.DB, table string, row domain.Row) error {
	values := make(map[string]any, len(row))
	assignments := make(map[string]any, len(row))
	for column, value := range row {
		values[column] = value
		if column != "id" {
			assignments[column] = value
		}
	}

	stmt := tx.Table(table)
	if _, hasID := values["id"]; hasID && len(assignments) > 0 {
		stmt = stmt.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(assignments),
		})
	}

	return stmt.Create(values).Error
}
