// Package leetcode reads interview-experience posts from a discussion forum's GraphQL API.
package leetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/pyq-scraper/internal/extraction"
	"github.com/jonathan/pyq-scraper/internal/fetch"
	"github.com/jonathan/pyq-scraper/internal/schemas"
	"github.com/jonathan/pyq-scraper/internal/sources"
	"github.com/jonathan/pyq-scraper/internal/types"
)

// Name identifies this source in logs and on the command line
const Name = "leetcode"

const (
	DefaultEndpoint       = "https://leetcode.com/graphql"
	DefaultReferer        = "https://leetcode.com"
	DefaultPostLimit      = 30
	DefaultMaxPosts       = 10
	DefaultTimeout        = 15 * time.Second
	DefaultContentTimeout = 10 * time.Second
	DefaultInterval       = 500 * time.Millisecond
	discussURLPrefix      = "https://leetcode.com/discuss/"
	interviewCategory     = "interview-experience"
)

const topicListQuery = `
query categoryTopicList($categories: [String!]!, $first: Int!, $skip: Int, $tags: [String!]) {
  categoryTopicList(categories: $categories, first: $first, skip: $skip, tags: $tags) {
    edges {
      node {
        id
        title
      }
    }
  }
}`

const topicContentQuery = `
query DiscussTopic($topicId: Int!) {
  topic(id: $topicId) {
    id
    post {
      content
    }
  }
}`

// Poster sends a JSON payload and returns the response
type Poster interface {
	PostJSON(ctx context.Context, urlStr string, payload any) (*fetch.Result, error)
}

// Config configures a Source
type Config struct {
	Endpoint  string
	Slugs     map[string]string
	PostLimit int
	MaxPosts  int

	// ContentTimeout bounds each post content query. The client timeout bounds the list query.
	ContentTimeout time.Duration
}

// DefaultConfig returns the production configuration
func DefaultConfig() Config {
	return Config{
		Endpoint:  DefaultEndpoint,
		Slugs:     DefaultSlugs(),
		PostLimit: DefaultPostLimit,
		MaxPosts:  DefaultMaxPosts,

		ContentTimeout: DefaultContentTimeout,
	}
}

// ClientOptions returns the fetch options the API expects
func ClientOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	opts.Timeout = DefaultTimeout
	opts.Interval = DefaultInterval
	opts.Headers = map[string]string{
		"Referer":      DefaultReferer,
		"Content-Type": "application/json",
	}
	return opts
}

// Post is a topic listed for a company
type Post struct {
	ID    string
	Title string
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// flexibleID accepts both string and numeric ids
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

type topicListResponse struct {
	Data struct {
		CategoryTopicList struct {
			Edges []struct {
				Node struct {
					ID    flexibleID `json:"id"`
					Title string     `json:"title"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"categoryTopicList"`
	} `json:"data"`
}

type topicContentResponse struct {
	Data struct {
		Topic struct {
			Post struct {
				Content *string `json:"content"`
			} `json:"post"`
		} `json:"topic"`
	} `json:"data"`
}

// Source fetches post lists and post contents
type Source struct {
	client Poster
	cfg    Config
	logger *zap.Logger
}

var _ sources.Source = (*Source)(nil)

// New creates a Source. Zero config fields fall back to DefaultConfig.
func New(client Poster, cfg Config, logger *zap.Logger) *Source {
	def := DefaultConfig()
	if cfg.Endpoint == "" {
		cfg.Endpoint = def.Endpoint
	}
	if cfg.Slugs == nil {
		cfg.Slugs = def.Slugs
	}
	if cfg.PostLimit <= 0 {
		cfg.PostLimit = def.PostLimit
	}
	if cfg.MaxPosts <= 0 {
		cfg.MaxPosts = def.MaxPosts
	}
	if cfg.ContentTimeout <= 0 {
		cfg.ContentTimeout = def.ContentTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{client: client, cfg: cfg, logger: logger.With(zap.String("source", Name))}
}

// Name implements sources.Source
func (s *Source) Name() string { return Name }

// Profile implements sources.Source
func (s *Source) Profile() extraction.Profile { return extraction.ForumProfile() }

// Companies returns the configured company keys, sorted
func (s *Source) Companies() []string {
	keys := make([]string, 0, len(s.cfg.Slugs))
	for k := range s.cfg.Slugs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Fetch lists the company's posts and returns the content of the first MaxPosts.
// Posts with empty content are dropped silently.
func (s *Source) Fetch(ctx context.Context, companyKey string) sources.FetchResult {
	var result sources.FetchResult
	log := s.logger.With(zap.String("company", companyKey), zap.String("stage", string(types.StageFetch)))

	slug, ok := s.cfg.Slugs[companyKey]
	if !ok {
		result.Outcomes = append(result.Outcomes, types.Skipped(types.StageFetch, companyKey, fmt.Errorf("no tag slug for company %q", companyKey)))
		return result
	}

	posts, err := s.ListPosts(ctx, slug)
	if err != nil {
		log.Warn("failed to list posts", zap.Error(err))
		result.Outcomes = append(result.Outcomes, types.Skipped(types.StageFetch, slug, err))
		return result
	}
	log.Info("found posts", zap.Int("count", len(posts)))

	if len(posts) > s.cfg.MaxPosts {
		posts = posts[:s.cfg.MaxPosts]
	}
	for _, post := range posts {
		content, err := s.PostContent(ctx, post.ID)
		if err != nil {
			log.Warn("failed to fetch post", zap.String("id", post.ID), zap.Error(err))
			result.Outcomes = append(result.Outcomes, types.Skipped(types.StageFetch, post.ID, err))
			continue
		}
		if content == "" {
			log.Debug("empty post", zap.String("id", post.ID))
			continue
		}
		result.Documents = append(result.Documents, types.RawDocument{
			ID:     post.ID,
			Source: PostURL(post.ID),
			Text:   content,
		})
	}
	return result
}

// ListPosts returns up to PostLimit interview-experience posts tagged slug
func (s *Source) ListPosts(ctx context.Context, slug string) ([]Post, error) {
	body, err := s.query(ctx, topicListQuery, map[string]any{
		"categories": []string{interviewCategory},
		"tags":       []string{slug},
		"first":      s.cfg.PostLimit,
		"skip":       0,
	})
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateTopicList(body); err != nil {
		return nil, fmt.Errorf("unexpected topic list response: %w", err)
	}

	var resp topicListResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode topic list: %w", err)
	}

	posts := make([]Post, 0, len(resp.Data.CategoryTopicList.Edges))
	for _, edge := range resp.Data.CategoryTopicList.Edges {
		posts = append(posts, Post{ID: string(edge.Node.ID), Title: edge.Node.Title})
	}
	return posts, nil
}

// PostContent returns the raw content of a post. The id must be numeric.
func (s *Source) PostContent(ctx context.Context, id string) (string, error) {
	topicID, err := strconv.Atoi(id)
	if err != nil {
		return "", fmt.Errorf("invalid topic id %q: %w", id, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ContentTimeout)
	defer cancel()

	body, err := s.query(ctx, topicContentQuery, map[string]any{"topicId": topicID})
	if err != nil {
		return "", err
	}
	if err := schemas.ValidateTopicContent(body); err != nil {
		return "", fmt.Errorf("unexpected topic response: %w", err)
	}

	var resp topicContentResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return "", fmt.Errorf("failed to decode topic: %w", err)
	}
	if resp.Data.Topic.Post.Content == nil {
		return "", nil
	}
	return *resp.Data.Topic.Post.Content, nil
}

func (s *Source) query(ctx context.Context, query string, variables map[string]any) (string, error) {
	result, err := s.client.PostJSON(ctx, s.cfg.Endpoint, graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return "", err
	}
	return result.Body, nil
}

// PostURL returns the public URL of a post
func PostURL(id string) string {
	return discussURLPrefix + id
}
