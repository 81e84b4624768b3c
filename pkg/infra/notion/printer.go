package notion

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

// Printer is a NotionClient that writes records to w instead of calling Notion.
// Lookups never match, so no relation is set and no client version is updated.
// Safe for concurrent use; each record is printed as one block.
type Printer struct {
	w     io.Writer
	count atomic.Int64
	mu    sync.Mutex
}

// NewPrinter creates a dry-run client
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

var (
	headerColor = color.New(color.FgGreen, color.Bold)
	keyColor    = color.New(color.FgCyan)
	dimColor    = color.New(color.Faint)
)

func (x *Printer) FindPage(ctx context.Context, databaseID string, kind model.PropertyKind, property, value string) (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	dimColor.Fprintf(x.w, "lookup %s where %s = %q (dry-run, no match)\n", databaseID, property, value)
	return "", nil
}

func (x *Printer) CreateRecord(ctx context.Context, databaseID string, record *model.CommitRecord, fields model.FieldNames) (string, error) {
	pageID := fmt.Sprintf("dry-run-%d", x.count.Add(1))

	x.mu.Lock()
	defer x.mu.Unlock()

	headerColor.Fprintf(x.w, "[%s] %s\n", pageID, record.Title)

	rows := [][2]string{
		{"database", databaseID},
		{fields.ID, record.CommitID},
		{fields.URL, record.URL},
		{fields.Description, record.Description},
		{fields.Project, record.Project},
	}
	if record.TagName != "" {
		rows = append(rows,
			[2]string{fields.TagName, record.TagName},
			[2]string{fields.TagURL, record.TagURL},
		)
	}
	if record.Files != "" {
		rows = append(rows, [2]string{filesToggleLabel, record.Files})
	}

	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		keyColor.Fprintf(x.w, "  %s: ", row[0])
		fmt.Fprintln(x.w, strings.TrimSpace(row[1]))
	}

	return pageID, nil
}

func (x *Printer) UpdateText(ctx context.Context, pageID, property, value string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	dimColor.Fprintf(x.w, "update %s: %s = %q (dry-run)\n", pageID, property, value)
	return nil
}
