package model

import "github.com/m-mizutani/goerr/v2"

var (
	// TagConfig marks configuration errors, raised before any record is written
	TagConfig = goerr.NewTag("config")

	// TagClassification marks events that cannot be resolved into commits
	TagClassification = goerr.NewTag("classification")

	// TagPublish marks failures writing records to Notion
	TagPublish = goerr.NewTag("publish")

	// TagDiff marks a changed-files comparison that cannot be trusted in strict mode
	TagDiff = goerr.NewTag("diff")
)
