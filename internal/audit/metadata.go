package audit

import "time"

// ReportTimeLayout is the layout used by audit report endpoints.
const ReportTimeLayout = "2006-01-02 15:04:05"

// Metadata holds the audit columns shared by value-stamped records.
// Embed it in a model to make the model Auditable.
type Metadata struct {
	CreatedBy       string    `json:"created_by"`
	CreatedTime     time.Time `json:"created_time"`
	ModifiedBy      string    `json:"modified_by"`
	ModifiedTime    time.Time `json:"modified_time"`
	CreatedCompany  string    `json:"created_company"`
	CreatedUnit     string    `json:"created_unit"`
	CreatedName     string    `json:"created_name"`
	ModifiedCompany string    `json:"modified_company"`
	ModifiedUnit    string    `json:"modified_unit"`
	ModifiedName    string    `json:"modified_name"`
}

// Auditable is implemented by every model embedding Metadata.
type Auditable interface {
	AuditMetadata() *Metadata
}

// AuditMetadata returns m itself so embedding types satisfy Auditable.
func (m *Metadata) AuditMetadata() *Metadata { return m }

// MarkCreated stamps both the created and modified columns.
func (m *Metadata) MarkCreated(a Actor, at time.Time) {
	m.CreatedBy = a.UserID
	m.CreatedTime = at
	m.CreatedCompany = a.Company
	m.CreatedUnit = a.Unit
	m.CreatedName = a.Name
	m.MarkModified(a, at)
}

// MarkModified stamps the modified columns only. Created columns are immutable.
func (m *Metadata) MarkModified(a Actor, at time.Time) {
	m.ModifiedBy = a.UserID
	m.ModifiedTime = at
	m.ModifiedCompany = a.Company
	m.ModifiedUnit = a.Unit
	m.ModifiedName = a.Name
}

// FormatTime renders t in loc using ReportTimeLayout. Zero times render as "".
func FormatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(ReportTimeLayout)
}

// ParseTime parses s as ReportTimeLayout in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(ReportTimeLayout, s, loc)
}
