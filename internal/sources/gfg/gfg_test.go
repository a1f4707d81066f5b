package gfg

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/pyq-scraper/internal/extraction"
	"github.com/jonathan/pyq-scraper/internal/fetch"
)

const articleHTML = `
<html><body>
	<nav><p>How to navigate this site?</p></nav>
	<div class="article-page-main">
		<h1>Amazon SDE-1 Interview Experience</h1>
		<p>Round 1 was an online test.</p>
		<ul>
			<li>Given an   array of integers, find the pair with the largest sum.</li>
			<li>Explain the difference between a process and a thread.</li>
		</ul>
		<p>Overall it was a great experience and I learned a lot.</p>
	</div>
</body></html>`

// newSite serves a tag listing with pages of article links and the articles themselves
func newSite(t *testing.T, pages map[int][]string, articles map[string]string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	hits := &atomic.Int64{}
	mux := http.NewServeMux()
	mux.HandleFunc("/tag/amazon/page/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		var n int
		_, _ = fmt.Sscanf(strings.TrimPrefix(r.URL.Path, "/tag/amazon/page/"), "%d", &n)
		links, ok := pages[n]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var sb strings.Builder
		sb.WriteString("<html><body>")
		for _, l := range links {
			sb.WriteString(fmt.Sprintf(`<a href="%s">x</a>`, l))
		}
		sb.WriteString(`<a href="/tag/amazon/">tag</a></body></html>`)
		_, _ = w.Write([]byte(sb.String()))
	})
	mux.HandleFunc("/interview-experiences/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, ok := articles[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, hits
}

func newTestSource(server *httptest.Server, cfg Config) *Source {
	cfg.TagURLs = map[string]string{"amazon": server.URL + "/tag/amazon/"}
	cfg.LinkPattern = "/interview-experiences/"
	client := fetch.NewClient(&fetch.Options{Timeout: 5 * time.Second}, nil)
	return New(client, cfg, nil)
}

func TestFetch_ListingsAndArticles(t *testing.T) {
	server, _ := newSite(t,
		map[int][]string{
			1: {"/interview-experiences/a1/", "/interview-experiences/a2/"},
			2: {"/interview-experiences/a2/", "/interview-experiences/a3/"},
		},
		map[string]string{
			"/interview-experiences/a1/": articleHTML,
			"/interview-experiences/a2/": `<html><body><article><p>What is the time complexity of binary search?</p></article></body></html>`,
			"/interview-experiences/a3/": `<html><body><div>no content block</div></body></html>`,
		},
	)
	src := newTestSource(server, Config{})

	result := src.Fetch(context.Background(), "amazon")
	assert.Empty(t, result.Outcomes)
	require.Len(t, result.Documents, 3)

	first := result.Documents[0]
	assert.Equal(t, server.URL+"/interview-experiences/a1/", first.Source)
	assert.Equal(t, []string{
		"Round 1 was an online test.",
		"Given an array of integers, find the pair with the largest sum.",
		"Explain the difference between a process and a thread.",
		"Overall it was a great experience and I learned a lot.",
	}, first.Units)

	assert.Empty(t, result.Documents[2].Units)

	candidates := extraction.ExtractAll(first, src.Profile())
	require.Len(t, candidates, 2)
	assert.Equal(t, "Given an array of integers, find the pair with the largest sum.", candidates[0].Text)
}

func TestArticleLinks_DedupPreservesOrder(t *testing.T) {
	server, _ := newSite(t,
		map[int][]string{
			1: {"/interview-experiences/b/", "/interview-experiences/a/"},
			2: {"/interview-experiences/a/", "/interview-experiences/c/"},
		},
		nil,
	)
	src := newTestSource(server, Config{})

	links, outcomes := src.ArticleLinks(context.Background(), "amazon")
	assert.Empty(t, outcomes)
	assert.Equal(t, []string{
		server.URL + "/interview-experiences/b/",
		server.URL + "/interview-experiences/a/",
		server.URL + "/interview-experiences/c/",
	}, links)
}

func TestFetch_FailingPageIsSkipped(t *testing.T) {
	server, _ := newSite(t,
		map[int][]string{2: {"/interview-experiences/a1/"}},
		map[string]string{"/interview-experiences/a1/": articleHTML},
	)
	src := newTestSource(server, Config{})

	result := src.Fetch(context.Background(), "amazon")
	require.Len(t, result.Documents, 1)
	require.Len(t, result.Outcomes, 1)
	assert.Contains(t, result.Outcomes[0].Unit, "/page/1/")
}

func TestFetch_FailingArticleIsSkipped(t *testing.T) {
	server, _ := newSite(t,
		map[int][]string{1: {"/interview-experiences/missing/", "/interview-experiences/a1/"}},
		map[string]string{"/interview-experiences/a1/": articleHTML},
	)
	src := newTestSource(server, Config{Pages: 1})

	result := src.Fetch(context.Background(), "amazon")
	require.Len(t, result.Documents, 1)
	require.Len(t, result.Outcomes, 1)
	assert.Contains(t, result.Outcomes[0].Unit, "/missing/")
}

func TestFetch_CapsArticles(t *testing.T) {
	var links []string
	articles := make(map[string]string)
	for i := 0; i < 15; i++ {
		path := fmt.Sprintf("/interview-experiences/a%d/", i)
		links = append(links, path)
		articles[path] = articleHTML
	}
	server, hits := newSite(t, map[int][]string{1: links}, articles)
	src := newTestSource(server, Config{Pages: 1})

	result := src.Fetch(context.Background(), "amazon")
	assert.Len(t, result.Documents, DefaultMaxArticles)
	assert.Equal(t, int64(1+DefaultMaxArticles), hits.Load())
}

func TestFetch_UnknownCompany(t *testing.T) {
	server, hits := newSite(t, nil, nil)
	src := newTestSource(server, Config{})

	result := src.Fetch(context.Background(), "nosuchco")
	assert.Empty(t, result.Documents)
	require.Len(t, result.Outcomes, 1)
	assert.Zero(t, hits.Load())
}

func TestListingURL(t *testing.T) {
	assert.Equal(t, "https://www.geeksforgeeks.org/tag/tcs/page/1/", ListingURL("https://www.geeksforgeeks.org/tag/tcs/", 1))
	assert.Equal(t, "https://x.test/tag/a/page/2/", ListingURL("https://x.test/tag/a", 2))
}

func TestDefaultTagURLs(t *testing.T) {
	urls := DefaultTagURLs()
	assert.Len(t, urls, 18)
	assert.Equal(t, "https://www.geeksforgeeks.org/tag/jp-morgan/", urls["jpmorgan"])
	assert.Equal(t, "https://www.geeksforgeeks.org/tag/american-express/", urls["amex"])
}

func TestCompanies_Sorted(t *testing.T) {
	src := New(nil, Config{TagURLs: map[string]string{"wipro": "w", "amazon": "a", "tcs": "t"}}, nil)
	assert.Equal(t, []string{"amazon", "tcs", "wipro"}, src.Companies())
}
