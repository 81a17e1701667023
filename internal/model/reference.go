package model

import (
	"time"

	"auditapi/internal/audit"
)

// ComplexAudit is a row in pf_demo_complex_audit whose auditors are
// references to pf_user rows instead of copied strings.
type ComplexAudit struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	CreatedByUser      audit.Reference `json:"created_by_user"`
	CreatedTime        time.Time       `json:"created_time"`
	LastModifiedByUser audit.Reference `json:"last_modified_by_user"`
	LastModifiedTime   time.Time       `json:"last_modified_time"`
	Version            int             `json:"version"`
}

// AuditRecord is a row in pf_audit_record describing an operation on
// another record.
type AuditRecord struct {
	ID           int64           `json:"id"`
	Operation    string          `json:"operation"`
	TargetType   string          `json:"target_type"`
	TargetID     int64           `json:"target_id"`
	Details      string          `json:"details"`
	CreatedBy    audit.Reference `json:"created_by"`
	CreatedTime  time.Time       `json:"created_time"`
	ModifiedBy   audit.Reference `json:"modified_by"`
	ModifiedTime time.Time       `json:"modified_time"`
}
