package notion

import (
	"github.com/jomei/notionapi"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

const (
	// Notion rejects text objects longer than this many characters
	maxTextLength = 2000

	// Key that addresses the title property of a database regardless of its display name
	titleProperty = "title"

	filesToggleLabel = "Files"
)

// titleFilter adds the title condition that notionapi.PropertyFilter lacks.
// Notion requires the filter key to match the property type.
type titleFilter struct {
	notionapi.PropertyFilter
	Title *notionapi.TextFilterCondition `json:"title,omitempty"`
}

func buildFilter(kind model.PropertyKind, property, value string) notionapi.Filter {
	cond := &notionapi.TextFilterCondition{Equals: value}
	if kind == model.PropertyTitle {
		return &titleFilter{
			PropertyFilter: notionapi.PropertyFilter{Property: property},
			Title:          cond,
		}
	}
	return &notionapi.PropertyFilter{Property: property, RichText: cond}
}

func buildProperties(record *model.CommitRecord, fields model.FieldNames) notionapi.Properties {
	props := notionapi.Properties{
		titleProperty: notionapi.TitleProperty{
			Type:  notionapi.PropertyTypeTitle,
			Title: richText(record.Title),
		},
		fields.URL: notionapi.URLProperty{
			Type: notionapi.PropertyTypeURL,
			URL:  record.URL,
		},
		fields.ID: notionapi.RichTextProperty{
			Type:     notionapi.PropertyTypeRichText,
			RichText: richText(record.CommitID),
		},
		fields.Description: notionapi.RichTextProperty{
			Type:     notionapi.PropertyTypeRichText,
			RichText: richText(record.Description),
		},
		fields.Project: notionapi.MultiSelectProperty{
			Type:        notionapi.PropertyTypeMultiSelect,
			MultiSelect: []notionapi.Option{{Name: record.Project}},
		},
	}

	if record.TaskPageID != "" {
		props[fields.Task] = relation(record.TaskPageID)
	}
	if record.SoftwarePageID != "" {
		props[fields.Software] = relation(record.SoftwarePageID)
	}
	if record.ClientPageID != "" {
		props[fields.Client] = relation(record.ClientPageID)
	}

	if record.TagName != "" {
		props[fields.TagName] = notionapi.RichTextProperty{
			Type:     notionapi.PropertyTypeRichText,
			RichText: richText(record.TagName),
		}
		props[fields.TagURL] = notionapi.URLProperty{
			Type: notionapi.PropertyTypeURL,
			URL:  record.TagURL,
		}
	}

	return props
}

// buildChildren returns the collapsible files block, or nothing when there are no files to show
func buildChildren(record *model.CommitRecord) []notionapi.Block {
	if record.Files == "" {
		return nil
	}

	label := notionapi.RichText{
		Type:        notionapi.ObjectTypeText,
		Text:        &notionapi.Text{Content: filesToggleLabel},
		Annotations: &notionapi.Annotations{Bold: true},
	}

	return []notionapi.Block{
		&notionapi.ToggleBlock{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeToggle,
			},
			Toggle: notionapi.Toggle{
				RichText: []notionapi.RichText{label},
				Children: []notionapi.Block{
					&notionapi.ParagraphBlock{
						BasicBlock: notionapi.BasicBlock{
							Object: notionapi.ObjectTypeBlock,
							Type:   notionapi.BlockTypeParagraph,
						},
						Paragraph: notionapi.Paragraph{
							RichText: richText(record.Files),
						},
					},
				},
			},
		},
	}
}

func relation(pageID string) notionapi.RelationProperty {
	return notionapi.RelationProperty{
		Type:     notionapi.PropertyTypeRelation,
		Relation: []notionapi.Relation{{ID: notionapi.PageID(pageID)}},
	}
}

// richText converts s into text objects of at most maxTextLength characters each
func richText(s string) []notionapi.RichText {
	chunks := splitText(s, maxTextLength)
	texts := make([]notionapi.RichText, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, notionapi.RichText{
			Type: notionapi.ObjectTypeText,
			Text: &notionapi.Text{Content: chunk},
		})
	}
	return texts
}

// splitText cuts s by character count, never inside a multi-byte character
func splitText(s string, size int) []string {
	runes := []rune(s)
	if len(runes) <= size {
		return []string{s}
	}

	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
