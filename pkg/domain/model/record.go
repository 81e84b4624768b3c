package model

// FieldNames maps record attributes to Notion property names
type FieldNames struct {
	URL         string `toml:"url" validate:"required"`
	ID          string `toml:"id" validate:"required"`
	Description string `toml:"description" validate:"required"`
	Project     string `toml:"project" validate:"required"`
	TagName     string `toml:"tag_name" validate:"required"`
	TagURL      string `toml:"tag_url" validate:"required"`
	Task        string `toml:"task" validate:"required"`
	Software    string `toml:"software" validate:"required"`
	Client      string `toml:"client" validate:"required"`

	// Property of the client page that holds the current version
	ClientVersion string `toml:"client_version" validate:"required"`

	// Lookup properties, matched by exact value
	TaskTitle        string `toml:"task_title" validate:"required"`
	SoftwareRepoName string `toml:"software_repo_name" validate:"required"`
	ClientShortName  string `toml:"client_short_name" validate:"required"`
}

// DefaultFieldNames returns the property names used when nothing is configured
func DefaultFieldNames() FieldNames {
	return FieldNames{
		URL:              "URL",
		ID:               "ID",
		Description:      "Description",
		Project:          "Project",
		TagName:          "Tag",
		TagURL:           "TagURL",
		Task:             "task",
		Software:         "Software",
		Client:           "Client",
		ClientVersion:    "Version",
		TaskTitle:        "Name",
		SoftwareRepoName: "Repository Name",
		ClientShortName:  "Short Name",
	}
}

// Merge fills empty fields of x with values from base
func (x FieldNames) Merge(base FieldNames) FieldNames {
	pick := func(v, def string) string {
		if v != "" {
			return v
		}
		return def
	}
	return FieldNames{
		URL:              pick(x.URL, base.URL),
		ID:               pick(x.ID, base.ID),
		Description:      pick(x.Description, base.Description),
		Project:          pick(x.Project, base.Project),
		TagName:          pick(x.TagName, base.TagName),
		TagURL:           pick(x.TagURL, base.TagURL),
		Task:             pick(x.Task, base.Task),
		Software:         pick(x.Software, base.Software),
		Client:           pick(x.Client, base.Client),
		ClientVersion:    pick(x.ClientVersion, base.ClientVersion),
		TaskTitle:        pick(x.TaskTitle, base.TaskTitle),
		SoftwareRepoName: pick(x.SoftwareRepoName, base.SoftwareRepoName),
		ClientShortName:  pick(x.ClientShortName, base.ClientShortName),
	}
}

// CommitRecord is the content of one record in the commit database
type CommitRecord struct {
	Title       string
	URL         string
	CommitID    string
	Description string
	Project     string

	// Optional relations; empty when not found
	TaskPageID     string
	SoftwarePageID string
	ClientPageID   string

	// Set only for tag pushes
	TagName string
	TagURL  string

	// Rendered changed-files text; the files block is omitted when empty
	Files string
}

// PublishedRecord is the outcome of publishing one commit
type PublishedRecord struct {
	CommitID      string
	PageID        string
	TaskLinked    bool
	SoftwareLink  bool
	ClientLink    bool
	VersionUpdate bool
}

// RunSummary describes what a pipeline run did
type RunSummary struct {
	Repository  string
	Kind        EventKind
	FilesStatus FileChangeStatus
	Records     []*PublishedRecord
}

// PageIDs returns the IDs of created pages in creation order
func (x *RunSummary) PageIDs() []string {
	ids := make([]string, 0, len(x.Records))
	for _, r := range x.Records {
		ids = append(ids, r.PageID)
	}
	return ids
}

// PropertyKind is the Notion property type a lookup filters on
type PropertyKind string

const (
	PropertyTitle    PropertyKind = "title"
	PropertyRichText PropertyKind = "rich_text"
)
