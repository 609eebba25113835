package highlights

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// DefaultMaxResults is the result cap used when none is given.
	DefaultMaxResults = 5

	// DefaultQualifier is appended to every query.
	DefaultQualifier = "basketball highlights"

	// NoResultsMessage is reported when a search succeeds with no items.
	NoResultsMessage = "No highlights found. Try different keywords."

	errorPrefix = "YouTube API error: "
)

var (
	// ErrMissingAPIKey is returned by every search when no API key was configured.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrMalformedItem is returned when a search item lacks its id or snippet.
	ErrMalformedItem = errors.New("malformed search item")
)

// Options configures a Client.
type Options struct {
	APIKey    string
	Endpoint  string // overrides the YouTube base URL when set
	Qualifier string // defaults to DefaultQualifier
	Logger    logrus.FieldLogger
}

// Request describes one search.
type Request struct {
	Query      string
	MaxResults int
	Order      Order
}

// Client wraps the YouTube search.list endpoint.
// It is safe for concurrent use.
type Client struct {
	service   *youtube.Service
	initErr   error
	qualifier string
	log       logrus.FieldLogger

	mu      sync.Mutex
	lastErr string
}

// New creates a client. It never fails: a missing key or a service
// construction error is kept and reported by every later search.
func New(ctx context.Context, opts Options) *Client {
	c := &Client{
		qualifier: opts.Qualifier,
		log:       opts.Logger,
	}
	if c.qualifier == "" {
		c.qualifier = DefaultQualifier
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}

	if opts.APIKey == "" {
		c.initErr = ErrMissingAPIKey
		c.log.Warn("YouTube client created without an API key")
		return c
	}

	clientOpts := []option.ClientOption{option.WithAPIKey(opts.APIKey)}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	svc, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		c.initErr = fmt.Errorf("create service: %w", err)
		c.log.WithError(err).Error("failed to initialize YouTube client")
		return c
	}
	c.service = svc
	c.log.Debug("YouTube client initialized")
	return c
}

// Fetch runs a single search.list call and maps its items to results.
func (c *Client) Fetch(ctx context.Context, req Request) ([]Result, error) {
	if c.initErr != nil {
		return nil, c.initErr
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	order := req.Order
	if order == "" {
		order = OrderRelevance
	}

	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(c.qualify(req.Query)).
		Type("video").
		MaxResults(int64(maxResults)).
		Order(order.String()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("search list: %w", err)
	}

	results := make([]Result, 0, len(resp.Items))
	for i, item := range resp.Items {
		if item == nil || item.Id == nil || item.Snippet == nil || item.Id.VideoId == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrMalformedItem)
		}
		results = append(results, Result{
			Platform:   Platform,
			Title:      item.Snippet.Title,
			URL:        WatchURL(item.Id.VideoId),
			UploadDate: item.Snippet.PublishedAt,
		})
	}
	return results, nil
}

// Search runs a search and never returns an error. Failures and empty
// result sets are reported through LastError instead. A failed request
// keeps its API error text rather than NoResultsMessage.
func (c *Client) Search(ctx context.Context, query string, maxResults int, order Order) []Result {
	c.setLastError("")

	log := c.log.WithFields(logrus.Fields{
		"query":       query,
		"order":       order,
		"max_results": maxResults,
	})
	log.Debug("starting YouTube search")

	results, err := c.Fetch(ctx, Request{Query: query, MaxResults: maxResults, Order: order})
	if err != nil {
		log.WithError(err).Error("YouTube search failed")
		c.setLastError(errorPrefix + err.Error())
		return nil
	}

	log.WithField("count", len(results)).Debug("YouTube search finished")
	if len(results) == 0 {
		c.setLastError(NoResultsMessage)
	}
	return results
}

// LastError returns the message recorded by the most recent Search,
// or an empty string if it returned results.
func (c *Client) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Client) setLastError(msg string) {
	c.mu.Lock()
	c.lastErr = msg
	c.mu.Unlock()
}

func (c *Client) qualify(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.qualifier
	}
	return query + " " + c.qualifier
}
