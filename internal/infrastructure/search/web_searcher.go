package search

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"mbg_outreach/internal/usecase/interfaces"
)

const DefaultSearchURL = "https://www.google.com/search"

// WebSearcher scrapes organic results from a search result page.
type WebSearcher struct {
	client  *Client
	baseURL string
}

var _ interfaces.ISearchEngine = (*WebSearcher)(nil)

func NewWebSearcher(client *Client, baseURL string) *WebSearcher {
	if baseURL == "" {
		baseURL = DefaultSearchURL
	}
	return &WebSearcher{client: client, baseURL: baseURL}
}

func (s *WebSearcher) Search(ctx context.Context, query string) ([]interfaces.SearchResult, error) {
	u := s.baseURL + "?" + url.Values{"q": {query}, "gl": {"id"}}.Encode()
	doc, err := s.client.getHTML(ctx, u, map[string]string{
		"Accept-Language": "id-ID,id;q=0.9,en-US;q=0.8,en;q=0.7",
	})
	if err != nil {
		return nil, err
	}
	return ParseResults(doc), nil
}

// ParseResults collects the first absolute link and h3 title of every div.g block.
func ParseResults(doc *html.Node) []interfaces.SearchResult {
	var out []interfaces.SearchResult
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Div && hasClass(n, "g") {
			href := attr(findFirst(n, atom.A), "href")
			if strings.HasPrefix(href, "http") {
				out = append(out, interfaces.SearchResult{
					Title: strings.TrimSpace(textOf(findFirst(n, atom.H3))),
					URL:   href,
				})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attr(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}
