package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

func TestFilesFormat_Validate(t *testing.T) {
	for _, f := range model.FilesFormats {
		t.Run(string(f), func(t *testing.T) {
			gt.NoError(t, f.Validate())
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		err := model.FilesFormat("yaml").Validate()
		gt.Error(t, err)
		gt.Value(t, goerr.HasTag(err, model.TagConfig)).Equal(true)
	})

	t.Run("enabled", func(t *testing.T) {
		gt.Value(t, model.FilesFormatTextList.Enabled()).Equal(true)
		gt.Value(t, model.FilesFormatNone.Enabled()).Equal(false)
	})
}

func TestFileChangeSet_Render(t *testing.T) {
	set := &model.FileChangeSet{
		Files:  []string{"go.mod", "pkg/a.go"},
		Status: model.FileChangeListed,
	}

	gt.Equal(t, set.Render(model.FilesFormatTextList), "go.mod pkg/a.go")
	gt.Equal(t, set.Render(model.FilesFormatCSV), "go.mod,pkg/a.go")
	gt.Equal(t, set.Render(model.FilesFormatJSON), `["go.mod","pkg/a.go"]`)
	gt.Equal(t, set.Render(model.FilesFormatNone), "")

	t.Run("empty sets render nothing", func(t *testing.T) {
		gt.Equal(t, model.SkippedFiles("tag push").Render(model.FilesFormatTextList), "")
		gt.Equal(t, model.FailedFiles("boom").Render(model.FilesFormatJSON), "")

		var nilSet *model.FileChangeSet
		gt.Equal(t, nilSet.Render(model.FilesFormatCSV), "")
	})
}
