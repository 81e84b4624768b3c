package model

// GitObjectType is the type of object a git reference points to
type GitObjectType string

const (
	GitObjectCommit GitObjectType = "commit"
	GitObjectTag    GitObjectType = "tag"
)

// GitObject is a typed pointer to a git object
type GitObject struct {
	Type GitObjectType
	SHA  string
}

// Commit is the commit metadata returned by the hosting API
type Commit struct {
	SHA     string
	HTMLURL string
	Message string
}

// ComparisonStatusAhead is the only comparison status that yields a file list
const ComparisonStatusAhead = "ahead"

// Comparison is the result of comparing two revisions
type Comparison struct {
	HTTPStatus int
	Status     string
	Files      []string
}
