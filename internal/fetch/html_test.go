package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainContent_FirstSelectorWins(t *testing.T) {
	html := `
	<html>
		<body>
			<article><p>from article</p></article>
			<div class="entry-content"><p>from entry</p></div>
		</body>
	</html>`

	sel, err := MainContent(html, ArticleSelectors())
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.Contains(t, sel.Text(), "from entry")
	assert.NotContains(t, sel.Text(), "from article")
}

func TestMainContent_Fallback(t *testing.T) {
	html := `<html><body><div class="text"><p>last resort</p></div></body></html>`

	sel, err := MainContent(html, ArticleSelectors())
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.Contains(t, sel.Text(), "last resort")
}

func TestMainContent_NoMatch(t *testing.T) {
	sel, err := MainContent(`<html><body><div>nothing here</div></body></html>`, ArticleSelectors())
	require.NoError(t, err)
	assert.Nil(t, sel)
}

func TestMainContent_OnlyFirstElement(t *testing.T) {
	html := `<html><body><article><p>one</p></article><article><p>two</p></article></body></html>`

	sel, err := MainContent(html, []string{"article"})
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.Equal(t, "one", sel.Text())
}

func TestLinks_FilterAndDedup(t *testing.T) {
	html := `
	<html><body>
		<a href="https://www.geeksforgeeks.org/interview-experiences/amazon-sde-1/">A</a>
		<a href="https://www.geeksforgeeks.org/tag/amazon/">tag</a>
		<a href="/interview-experiences/google-intern/">B</a>
		<a href="https://www.geeksforgeeks.org/interview-experiences/amazon-sde-1/#comments">A again</a>
		<a href="">empty</a>
		<a>no href</a>
	</body></html>`

	links, err := Links(html, "https://www.geeksforgeeks.org/tag/amazon/page/1/", "geeksforgeeks.org/interview-experiences/")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.geeksforgeeks.org/interview-experiences/amazon-sde-1/",
		"https://www.geeksforgeeks.org/interview-experiences/google-intern/",
	}, links)
}

func TestLinks_NoMatches(t *testing.T) {
	links, err := Links(`<a href="/about">about</a>`, "https://example.com", "/interview-experiences/")
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestArticleSelectors(t *testing.T) {
	selectors := ArticleSelectors()
	assert.Equal(t, "div.article-page-main", selectors[0])
	assert.Contains(t, selectors, "article")
}
