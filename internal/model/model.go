// Package model contains the persisted records of the service.
// Models carry JSON tags only; persistence mapping lives in the repositories.
package model

import "unicode/utf8"

const (
	// MaxNameLen bounds names and descriptions stored in varchar(255) columns.
	MaxNameLen = 255
	// MaxAuditLen bounds audit strings stored in varchar(100) columns.
	MaxAuditLen = 100
	// MaxDetailsLen bounds AuditRecord.Details.
	MaxDetailsLen = 1000
	// MaxStatusLen bounds review and deploy status strings and versions.
	MaxStatusLen = 50
	// MaxCommentLen bounds review and deploy comments.
	MaxCommentLen = 1000
)

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
