package storage

import (
	"path"
	"strings"
)

// ArtifactContentType is the content type of published environment artifacts.
const ArtifactContentType = "application/json"

// ArtifactKey returns the object key of one deploy of an environment.
// deployID keeps keys of repeated deploys of a version apart. Path
// separators in the inputs are replaced so the key stays two levels deep.
func ArtifactKey(envName, version, deployID string) string {
	clean := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	return path.Join("environments", clean.Replace(envName), clean.Replace(version)+"-"+clean.Replace(deployID)+".json")
}
