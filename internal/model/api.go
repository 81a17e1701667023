package model

import "auditapi/internal/audit"

// Api is a registered API definition in pf_api. Apiname is unique.
type Api struct {
	ID          int64  `json:"id"`
	Apiname     string `json:"apiname"`
	Description string `json:"description"`
	audit.Metadata
}

// Clamp truncates every string column to the width of its database column.
func (a *Api) Clamp() {
	a.Apiname = Truncate(a.Apiname, MaxNameLen)
	a.Description = Truncate(a.Description, MaxNameLen)

	m := &a.Metadata
	m.CreatedBy = Truncate(m.CreatedBy, MaxAuditLen)
	m.CreatedCompany = Truncate(m.CreatedCompany, MaxAuditLen)
	m.CreatedUnit = Truncate(m.CreatedUnit, MaxAuditLen)
	m.CreatedName = Truncate(m.CreatedName, MaxAuditLen)
	m.ModifiedBy = Truncate(m.ModifiedBy, MaxAuditLen)
	m.ModifiedCompany = Truncate(m.ModifiedCompany, MaxAuditLen)
	m.ModifiedUnit = Truncate(m.ModifiedUnit, MaxAuditLen)
	m.ModifiedName = Truncate(m.ModifiedName, MaxAuditLen)
}
