package model

import "auditapi/internal/audit"

// Customer is a row in pf_customer.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
	audit.Metadata
}
