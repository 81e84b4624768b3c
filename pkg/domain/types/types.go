package types

import "github.com/google/uuid"

// Version is the application version, overwritten at build time via -ldflags
var Version = "dev"

const (
	// ZeroSHA is the revision GitHub reports as "before" when a branch is pushed for the first time
	ZeroSHA = "0000000000000000000000000000000000000000"

	// TagRefPrefix is the prefix of fully qualified tag references
	TagRefPrefix = "refs/tags/"

	// TaskMarker embeds a task title in a commit message
	TaskMarker = "atnt:"

	// DefaultServerURL is used to build permalinks when GITHUB_SERVER_URL is not set
	DefaultServerURL = "https://github.com"
)

// RunID identifies a single pipeline execution in logs and notifications
type RunID string

// NewRunID generates a new RunID
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string { return string(x) }
