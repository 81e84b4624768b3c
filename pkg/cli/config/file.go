package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File is the optional TOML configuration file
type File struct {
	Notion struct {
		CommitDatabaseID   string           `toml:"commit_database_id"`
		TaskDatabaseID     string           `toml:"task_database_id"`
		SoftwareDatabaseID string           `toml:"software_database_id"`
		ClientDatabaseID   string           `toml:"client_database_id"`
		Fields             model.FieldNames `toml:"fields"`
	} `toml:"notion"`

	Files struct {
		Format        string `toml:"format"`
		StrictCompare bool   `toml:"strict_compare"`
	} `toml:"files"`
}

// FileLoader holds the path of the config file
type FileLoader struct {
	Path string
}

// Flags returns CLI flags for the config file
func (c *FileLoader) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to a TOML config file",
			Destination: &c.Path,
			Sources:     sources("CONFIG", "CONFIG"),
		},
	}
}

// Load reads the config file. It returns nil without error when no path is set.
func (c *FileLoader) Load() (*File, error) {
	if c.Path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", c.Path), goerr.T(model.TagConfig))
	}

	var f File
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.Path), goerr.T(model.TagConfig))
	}

	return &f, nil
}
