package config

import (
	"github.com/m-mizutani/notionlog/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Notion holds Notion configuration
type Notion struct {
	Secret string `masq:"secret" flag:"notion-secret" validate:"required_unless=DryRun true"`

	CommitDatabaseID   string `flag:"notion-database" validate:"required"`
	TaskDatabaseID     string `flag:"task-database"`
	SoftwareDatabaseID string `flag:"software-database"`
	ClientDatabaseID   string `flag:"client-database"`

	// Overrides only; empty names fall back to the config file, then to defaults
	Fields model.FieldNames `validate:"-"`

	DryRun bool `flag:"dry-run"`
}

// Flags returns CLI flags for Notion configuration
func (c *Notion) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "notion-secret",
			Usage:       "Notion integration secret",
			Destination: &c.Secret,
			Sources:     sources("NOTION_SECRET", "NOTION_SECRET"),
		},
		&cli.StringFlag{
			Name:        "notion-database",
			Usage:       "ID of the commit database",
			Destination: &c.CommitDatabaseID,
			Sources:     sources("NOTION_DATABASE", "NOTION_DATABASE"),
		},
		&cli.StringFlag{
			Name:        "task-database",
			Usage:       "ID of the task database; task linking is disabled when empty",
			Destination: &c.TaskDatabaseID,
			Sources:     sources("TASK_DATABASE", "TASK_DATABASE_ID"),
		},
		&cli.StringFlag{
			Name:        "software-database",
			Usage:       "ID of the software database; software linking is disabled when empty",
			Destination: &c.SoftwareDatabaseID,
			Sources:     sources("SOFTWARE_DATABASE", "SOFTWARE_DATABASE_ID"),
		},
		&cli.StringFlag{
			Name:        "client-database",
			Usage:       "ID of the client database; client linking is disabled when empty",
			Destination: &c.ClientDatabaseID,
			Sources:     sources("CLIENT_DATABASE", "CLIENT_DATABASE_ID"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Print records instead of writing them to Notion",
			Destination: &c.DryRun,
			Sources:     sources("DRY_RUN", "DRY_RUN"),
		},
	}

	return append(flags, c.fieldFlags()...)
}

func (c *Notion) fieldFlags() []cli.Flag {
	field := func(name, input, usage string, dst *string) cli.Flag {
		return &cli.StringFlag{
			Name:        name,
			Usage:       usage,
			Category:    "property names",
			Destination: dst,
			Sources:     sources(flagEnvName(name), input),
		}
	}

	return []cli.Flag{
		field("field-url", "COMMIT_URL", "Property for the commit URL", &c.Fields.URL),
		field("field-id", "COMMIT_ID", "Property for the commit ID", &c.Fields.ID),
		field("field-description", "COMMIT_DESCRIPTION", "Property for the commit description", &c.Fields.Description),
		field("field-project", "COMMIT_PROJECT", "Property for the project (repository name)", &c.Fields.Project),
		field("field-tag-name", "TAG_NAME", "Property for the tag name", &c.Fields.TagName),
		field("field-tag-url", "TAG_URL", "Property for the tag release URL", &c.Fields.TagURL),
		field("field-task", "TASK_PROPERTY", "Relation property to the task page", &c.Fields.Task),
		field("field-software", "SOFTWARE_PROPERTY", "Relation property to the software page", &c.Fields.Software),
		field("field-client", "CLIENT_PROPERTY", "Relation property to the client page", &c.Fields.Client),
		field("field-client-version", "CLIENT_VERSION_PROPERTY", "Version property of the client page", &c.Fields.ClientVersion),
		field("lookup-task-title", "TASK_TITLE_PROPERTY", "Title property matched against the task name", &c.Fields.TaskTitle),
		field("lookup-software-repo", "SOFTWARE_REPO_PROPERTY", "Property matched against the repository name", &c.Fields.SoftwareRepoName),
		field("lookup-client-short-name", "CLIENT_SHORT_NAME_PROPERTY", "Property matched against the client short name", &c.Fields.ClientShortName),
	}
}

// ApplyFile fills settings that were not given as flags from the config file
func (c *Notion) ApplyFile(f *File) {
	if f == nil {
		return
	}
	c.CommitDatabaseID = pick(c.CommitDatabaseID, f.Notion.CommitDatabaseID)
	c.TaskDatabaseID = pick(c.TaskDatabaseID, f.Notion.TaskDatabaseID)
	c.SoftwareDatabaseID = pick(c.SoftwareDatabaseID, f.Notion.SoftwareDatabaseID)
	c.ClientDatabaseID = pick(c.ClientDatabaseID, f.Notion.ClientDatabaseID)
	c.Fields = c.Fields.Merge(f.Notion.Fields)
}

// FieldNames returns the property names with defaults applied
func (c *Notion) FieldNames() model.FieldNames {
	return c.Fields.Merge(model.DefaultFieldNames())
}

func pick(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
