package notion

import (
	"context"
	"net/http"

	"github.com/jomei/notionapi"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/domain/interfaces"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

type client struct {
	api *notionapi.Client
}

type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient replaces the HTTP client used to call the Notion API
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// NewClient creates a Notion client authenticated with an integration secret
func NewClient(secret string, opts ...Option) interfaces.NotionClient {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var apiOpts []notionapi.ClientOption
	if o.httpClient != nil {
		apiOpts = append(apiOpts, notionapi.WithHTTPClient(o.httpClient))
	}

	return &client{
		api: notionapi.NewClient(notionapi.Token(secret), apiOpts...),
	}
}

// FindPage returns the first page whose property exactly equals value
func (c *client) FindPage(ctx context.Context, databaseID string, kind model.PropertyKind, property, value string) (string, error) {
	resp, err := c.api.Database.Query(ctx, notionapi.DatabaseID(databaseID), &notionapi.DatabaseQueryRequest{
		Filter:   buildFilter(kind, property, value),
		PageSize: 1,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to query database",
			goerr.V("database_id", databaseID),
			goerr.V("property", property),
			goerr.V("value", value),
		)
	}

	if len(resp.Results) == 0 {
		return "", nil
	}
	return resp.Results[0].ID.String(), nil
}

// CreateRecord creates one commit page in the commit database
func (c *client) CreateRecord(ctx context.Context, databaseID string, record *model.CommitRecord, fields model.FieldNames) (string, error) {
	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: buildProperties(record, fields),
		Children:   buildChildren(record),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to create page",
			goerr.V("database_id", databaseID),
			goerr.V("commit_id", record.CommitID),
		)
	}

	return page.ID.String(), nil
}

// UpdateText replaces a rich text property of a page
func (c *client) UpdateText(ctx context.Context, pageID, property, value string) error {
	_, err := c.api.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{
			property: notionapi.RichTextProperty{
				Type:     notionapi.PropertyTypeRichText,
				RichText: richText(value),
			},
		},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update page",
			goerr.V("page_id", pageID),
			goerr.V("property", property),
		)
	}
	return nil
}
