package model

import (
	"strconv"
	"strings"
	"time"

	"auditapi/internal/audit"
)

// Environment lifecycle states.
const (
	EnvStatusDraft     = 0
	EnvStatusReviewing = 1
	EnvStatusReviewed  = 2
	EnvStatusDeployed  = 3
)

// InitialVersion is assigned to newly created environments.
const InitialVersion = "1.0"

// Environment is a configuration record in pf_environment. Besides the common
// audit columns it tracks who reviewed and who deployed it.
type Environment struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	ConfigValue string `json:"config_value"`
	Version     string `json:"version"`
	Status      int    `json:"status"`
	audit.Metadata

	ReviewedBy      string     `json:"reviewed_by"`
	ReviewedTime    *time.Time `json:"reviewed_time"`
	ReviewedCompany string     `json:"reviewed_company"`
	ReviewedUnit    string     `json:"reviewed_unit"`
	ReviewerName    string     `json:"reviewer_name"`
	ReviewStatus    string     `json:"review_status"`
	ReviewComment   string     `json:"review_comment"`

	DeployedBy      string     `json:"deployed_by"`
	DeployedTime    *time.Time `json:"deployed_time"`
	DeployedCompany string     `json:"deployed_company"`
	DeployedUnit    string     `json:"deployed_unit"`
	DeployerName    string     `json:"deployer_name"`
	DeployStatus    string     `json:"deploy_status"`
	DeployComment   string     `json:"deploy_comment"`

	// ArtifactPath is the object storage key of the last published deploy.
	ArtifactPath string `json:"artifact_path"`
}

// Reviewed reports whether a review has been recorded.
func (e *Environment) Reviewed() bool { return e.ReviewedBy != "" }

// MarkReviewed stamps the review columns and the modified columns and moves
// the environment to EnvStatusReviewed.
func (e *Environment) MarkReviewed(a audit.Actor, at time.Time, status, comment string) {
	e.ReviewedBy = a.UserID
	e.ReviewedTime = &at
	e.ReviewedCompany = a.Company
	e.ReviewedUnit = a.Unit
	e.ReviewerName = a.Name
	e.ReviewStatus = status
	e.ReviewComment = comment
	e.MarkModified(a, at)
	e.Status = EnvStatusReviewed
}

// MarkDeployed stamps the deploy columns and the modified columns, sets the
// version and moves the environment to EnvStatusDeployed. An empty version
// increments the current one.
func (e *Environment) MarkDeployed(a audit.Actor, at time.Time, version, status, comment string) {
	e.DeployedBy = a.UserID
	e.DeployedTime = &at
	e.DeployedCompany = a.Company
	e.DeployedUnit = a.Unit
	e.DeployerName = a.Name
	e.DeployStatus = status
	e.DeployComment = comment
	e.MarkModified(a, at)

	if v := strings.TrimSpace(version); v != "" {
		e.Version = v
	} else {
		e.Version = NextVersion(e.Version)
	}
	e.Status = EnvStatusDeployed
}

// NextVersion bumps the minor component of a "major.minor" version. Extra
// components are dropped, a single component gets ".1" appended, and
// versions whose leading components are not numbers are returned unchanged.
func NextVersion(v string) string {
	if v == "" {
		return InitialVersion
	}
	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return v + ".1"
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return v
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return v
	}
	return strconv.Itoa(major) + "." + strconv.Itoa(minor+1)
}
