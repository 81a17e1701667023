// Package auth resolves bearer tokens into audit actors.
package auth

import (
	"sort"

	"auditapi/internal/audit"
)

// Directory is an in-memory lookup of demo users by user id.
type Directory struct {
	users map[string]audit.Actor
}

// NewDirectory builds a Directory from actors keyed by their UserID.
func NewDirectory(actors ...audit.Actor) *Directory {
	d := &Directory{users: make(map[string]audit.Actor, len(actors))}
	for _, a := range actors {
		d.users[a.UserID] = a
	}
	return d
}

// DefaultDirectory returns the demo users shipped with the service.
func DefaultDirectory() *Directory {
	return NewDirectory(
		audit.Actor{UserID: "kenbai", Name: "肯白", Company: "拓連科技", Unit: "行銷部"},
		audit.Actor{UserID: "peter", Name: "彼得", Company: "拓連科技", Unit: "研發部"},
		audit.Actor{UserID: "shawn", Name: "肖恩", Company: "拓連科技", Unit: "產品部"},
		audit.System(),
	)
}

// Lookup returns the actor registered under userID.
func (d *Directory) Lookup(userID string) (audit.Actor, bool) {
	a, ok := d.users[userID]
	return a, ok
}

// UserIDs returns all registered ids in ascending order.
func (d *Directory) UserIDs() []string {
	ids := make([]string, 0, len(d.users))
	for id := range d.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
