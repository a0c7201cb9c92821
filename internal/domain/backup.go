package domain

import (
	"encoding/json"
	"fmt"
)

// Row is one table row fetched as an opaque column map. Backup and restore
// pass rows through without interpreting their schema.
type Row map[string]any

// BackupTables is the fixed, ordered list of tenant-scoped tables included
// in a backup document. Every table here carries a tenant_id column.
var BackupTables = []string{
	"documents",
	"transactions",
	"line_items",
	"bank_accounts",
	"memberships",
	"tenant_settings",
	"tenant_statistics",
}

// BackupVersion is the current snapshot format version. Documents without a
// version tag are treated as version 1 so snapshots taken before the tag was
// introduced still restore.
const BackupVersion = 1

const (
	backupTenantKey  = "tenant"
	backupVersionKey = "backup_version"
)

// BackupDocument is the transient JSON snapshot of one tenant's rows across
// the fixed table set. On the wire it is a flat object keyed by table name,
// with the tenant's own row under "tenant" and the format version under
// "backup_version".
type BackupDocument struct {
	Version int
	Tenant  Row
	Tables  map[string][]Row
}

func NewBackupDocument() *BackupDocument {
	return &BackupDocument{
		Version: BackupVersion,
		Tables:  make(map[string][]Row, len(BackupTables)),
	}
}

func (d *BackupDocument) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Tables)+2)
	for table, rows := range d.Tables {
		out[table] = rows
	}
	if d.Tenant != nil {
		out[backupTenantKey] = d.Tenant
	}
	out[backupVersionKey] = d.Version
	return json.Marshal(out)
}

func (d *BackupDocument) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Version = BackupVersion
	d.Tenant = nil
	d.Tables = make(map[string][]Row, len(raw))

	for key, value := range raw {
		switch key {
		case backupVersionKey:
			if err := json.Unmarshal(value, &d.Version); err != nil {
				return fmt.Errorf("invalid %s: %w", backupVersionKey, err)
			}
		case backupTenantKey:
			if err := json.Unmarshal(value, &d.Tenant); err != nil {
				return fmt.Errorf("invalid tenant row: %w", err)
			}
		default:
			var rows []Row
			if err := json.Unmarshal(value, &rows); err != nil {
				return fmt.Errorf("invalid rows for table %s: %w", key, err)
			}
			d.Tables[key] = rows
		}
	}

	return nil
}

// RowCount returns the total number of table rows in the snapshot, excluding
// the tenant's own row.
func (d *BackupDocument) RowCount() int {
	count := 0
	for _, rows := range d.Tables {
		count += len(rows)
	}
	return count
}
