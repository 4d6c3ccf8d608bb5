package interfaces

import "context"

type SearchResult struct {
	Title string
	URL   string
}

// ISearchEngine runs a web search and returns result links in rank order.
type ISearchEngine interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// IPageFetcher returns the visible text of a web page.
type IPageFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}
