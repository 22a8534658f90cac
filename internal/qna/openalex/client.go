// Package openalex is the gateway to the OpenAlex scholarly-entity API.
// The service proxies search and detail lookups through it without holding
// any local state; remote failures surface as domain.ErrRemote.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/scholarhub/backend/internal/qna/domain"
)

// DefaultBaseURL is the public OpenAlex endpoint.
const DefaultBaseURL = "https://api.openalex.org"

// EntityType identifies an OpenAlex entity collection.
type EntityType string

const (
	EntitySource      EntityType = "source"
	EntityInstitution EntityType = "institution"
	EntityConcept     EntityType = "concept"
	EntityPublisher   EntityType = "publisher"
	EntityFunder      EntityType = "funder"
)

// collections maps entity types onto their REST collection paths.
var collections = map[EntityType]string{
	EntitySource:      "sources",
	EntityInstitution: "institutions",
	EntityConcept:     "concepts",
	EntityPublisher:   "publishers",
	EntityFunder:      "funders",
}

// ParseEntityType validates a raw entity type string.
func ParseEntityType(s string) (EntityType, bool) {
	t := EntityType(s)
	_, ok := collections[t]
	return t, ok
}

// SearchQuery is the normalized search input. Zero values are omitted from
// the remote request.
type SearchQuery struct {
	Search  string
	Filter  string
	Page    int
	PerPage int
}

// Client calls the OpenAlex API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// MailTo joins OpenAlex's polite pool when set.
	MailTo string
}

func NewClient(baseURL, mailTo string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		MailTo:     mailTo,
	}
}

// Search queries one entity collection. The decoded response body is passed
// through to the caller unchanged.
func (c *Client) Search(ctx context.Context, typ EntityType, q SearchQuery) (any, error) {
	collection, ok := collections[typ]
	if !ok {
		return nil, domain.E(domain.ErrValidation, "未知的实体类型")
	}

	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Filter != "" {
		params.Set("filter", q.Filter)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		params.Set("per-page", strconv.Itoa(q.PerPage))
	}
	if c.MailTo != "" {
		params.Set("mailto", c.MailTo)
	}

	endpoint := c.BaseURL + "/" + collection
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return c.fetch(ctx, endpoint)
}

// Get fetches a single entity by its OpenAlex id.
func (c *Client) Get(ctx context.Context, typ EntityType, id string) (any, error) {
	collection, ok := collections[typ]
	if !ok {
		return nil, domain.E(domain.ErrValidation, "未知的实体类型")
	}

	endpoint := c.BaseURL + "/" + collection + "/" + url.PathEscape(id)
	if c.MailTo != "" {
		endpoint += "?mailto=" + url.QueryEscape(c.MailTo)
	}
	return c.fetch(ctx, endpoint)
}

func (c *Client) fetch(ctx context.Context, endpoint string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, domain.E(domain.ErrRemote, "学术实体服务暂时不可用")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.E(domain.ErrNotFound, "实体不存在")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.E(domain.ErrRemote,
			fmt.Sprintf("学术实体服务返回错误（%d）", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.E(domain.ErrRemote, "学术实体服务暂时不可用")
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, domain.E(domain.ErrRemote, "学术实体服务返回了无法解析的数据")
	}
	return result, nil
}
