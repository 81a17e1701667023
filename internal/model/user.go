package model

import "auditapi/internal/audit"

// User is an account row in pf_user. ID is a UUID string.
type User struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Description     string `json:"description"`
	PasswordHash    string `json:"-"`
	Email           string `json:"email"`
	Cellphone       string `json:"cellphone"`
	CompanyID       string `json:"company_id"`
	StatusID        string `json:"status_id"`
	DefaultLanguage string `json:"default_language"`
	audit.Metadata
}

// UserInfo is a directory entry in pf_user_info used to enrich audit output.
type UserInfo struct {
	UserID  string `json:"user_id"`
	Company string `json:"company"`
	Unit    string `json:"unit"`
	Name    string `json:"name"`
}

// Actor converts the entry into an audit actor.
func (u UserInfo) Actor() audit.Actor {
	return audit.Actor{UserID: u.UserID, Name: u.Name, Company: u.Company, Unit: u.Unit}
}
