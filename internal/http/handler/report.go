package handler

import (
	"time"

	"auditapi/internal/audit"
	"auditapi/internal/model"
)

// auditView is audit metadata with times rendered for reports.
type auditView struct {
	CreatedBy       string `json:"created_by"`
	CreatedTime     string `json:"created_time"`
	CreatedCompany  string `json:"created_company"`
	CreatedUnit     string `json:"created_unit"`
	CreatedName     string `json:"created_name"`
	ModifiedBy      string `json:"modified_by"`
	ModifiedTime    string `json:"modified_time"`
	ModifiedCompany string `json:"modified_company"`
	ModifiedUnit    string `json:"modified_unit"`
	ModifiedName    string `json:"modified_name"`
}

func newAuditView(m audit.Metadata, loc *time.Location) auditView {
	return auditView{
		CreatedBy:       m.CreatedBy,
		CreatedTime:     audit.FormatTime(m.CreatedTime, loc),
		CreatedCompany:  m.CreatedCompany,
		CreatedUnit:     m.CreatedUnit,
		CreatedName:     m.CreatedName,
		ModifiedBy:      m.ModifiedBy,
		ModifiedTime:    audit.FormatTime(m.ModifiedTime, loc),
		ModifiedCompany: m.ModifiedCompany,
		ModifiedUnit:    m.ModifiedUnit,
		ModifiedName:    m.ModifiedName,
	}
}

type userAuditEntry struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	auditView
}

type customerAuditEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	auditView
}

func customerReport(cs []model.Customer, loc *time.Location) []customerAuditEntry {
	out := make([]customerAuditEntry, 0, len(cs))
	for _, c := range cs {
		out = append(out, customerAuditEntry{ID: c.ID, Name: c.Name, auditView: newAuditView(c.Metadata, loc)})
	}
	return out
}
