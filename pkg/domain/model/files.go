package model

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// FilesFormat selects how changed files are attached to a record
type FilesFormat string

const (
	FilesFormatTextList FilesFormat = "text-list"
	FilesFormatCSV      FilesFormat = "csv"
	FilesFormatJSON     FilesFormat = "json"
	FilesFormatNone     FilesFormat = "none"
)

// FilesFormats lists every accepted format
var FilesFormats = []FilesFormat{
	FilesFormatTextList,
	FilesFormatCSV,
	FilesFormatJSON,
	FilesFormatNone,
}

// Validate returns an error for an unknown format
func (x FilesFormat) Validate() error {
	for _, f := range FilesFormats {
		if x == f {
			return nil
		}
	}
	return goerr.New("unsupported files format", goerr.V("format", string(x)), goerr.T(TagConfig))
}

// Enabled reports whether a files block is attached to records
func (x FilesFormat) Enabled() bool {
	return x != FilesFormatNone
}

// FileChangeStatus tells why a FileChangeSet has (or has not) files
type FileChangeStatus string

const (
	// FileChangeListed means the comparison succeeded
	FileChangeListed FileChangeStatus = "listed"
	// FileChangeSkipped means no comparison applies to the event (empty by policy)
	FileChangeSkipped FileChangeStatus = "skipped"
	// FileChangeFailed means the comparison was attempted and failed (empty due to failure)
	FileChangeFailed FileChangeStatus = "failed"
)

// FileChangeSet is the list of files changed between two revisions
type FileChangeSet struct {
	Files  []string
	Status FileChangeStatus
	Reason string
}

// SkippedFiles builds an empty set that is empty by policy
func SkippedFiles(reason string) *FileChangeSet {
	return &FileChangeSet{Status: FileChangeSkipped, Reason: reason}
}

// FailedFiles builds an empty set that is empty because the comparison failed
func FailedFiles(reason string) *FileChangeSet {
	return &FileChangeSet{Status: FileChangeFailed, Reason: reason}
}

// Render formats the file list for the given format
func (x *FileChangeSet) Render(format FilesFormat) string {
	if x == nil || len(x.Files) == 0 {
		return ""
	}

	switch format {
	case FilesFormatTextList:
		return strings.Join(x.Files, " ")
	case FilesFormatCSV:
		return strings.Join(x.Files, ",")
	case FilesFormatJSON:
		raw, err := json.Marshal(x.Files)
		if err != nil {
			return ""
		}
		return string(raw)
	default:
		return ""
	}
}
