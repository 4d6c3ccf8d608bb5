package search

import (
	"context"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"mbg_outreach/internal/usecase/interfaces"
)

// PageFetcher returns the visible body text of a page.
type PageFetcher struct {
	client *Client
}

var _ interfaces.IPageFetcher = (*PageFetcher)(nil)

func NewPageFetcher(client *Client) *PageFetcher {
	return &PageFetcher{client: client}
}

func (f *PageFetcher) FetchText(ctx context.Context, url string) (string, error) {
	doc, err := f.client.getHTML(ctx, url, nil)
	if err != nil {
		return "", err
	}
	body := findFirst(doc, atom.Body)
	if body == nil {
		body = doc
	}
	return textOf(body), nil
}

// textOf joins text nodes with single spaces, skipping script and style.
func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style || n.DataAtom == atom.Noscript):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
