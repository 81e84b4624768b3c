package config

import (
	"github.com/m-mizutani/notionlog/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Publish holds settings of the publish pipeline
type Publish struct {
	FilesFormat   string `flag:"files-format" validate:"omitempty,oneof=text-list csv json none"`
	StrictCompare bool   `flag:"files-strict-compare"`
}

// Flags returns CLI flags for publish configuration
func (c *Publish) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "files-format",
			Usage:       "Changed files listing (text-list, csv, json, none); default text-list",
			Destination: &c.FilesFormat,
			Sources:     sources("FILES_FORMAT", "FILES_FORMAT"),
		},
		&cli.BoolFlag{
			Name:        "files-strict-compare",
			Usage:       "Fail the run when the comparison is not ahead instead of omitting files",
			Destination: &c.StrictCompare,
			Sources:     sources("FILES_STRICT_COMPARE", "FILES_STRICT_COMPARE"),
		},
	}
}

// ApplyFile fills settings that were not given as flags from the config file
func (c *Publish) ApplyFile(f *File) {
	if f == nil {
		return
	}
	c.FilesFormat = pick(c.FilesFormat, f.Files.Format)
	c.StrictCompare = c.StrictCompare || f.Files.StrictCompare
}

// Format returns the configured files format, text-list when unset
func (c *Publish) Format() model.FilesFormat {
	if c.FilesFormat == "" {
		return model.FilesFormatTextList
	}
	return model.FilesFormat(c.FilesFormat)
}
