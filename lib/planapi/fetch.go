package planapi

import (
	"context"
	"net/url"
)

// DefaultMaxPages is the hard safety cap on cursor following. It protects
// against cursor loops and pathological collection sizes; callers must
// tolerate truncated results beyond it.
const DefaultMaxPages = 10

type page[T any] struct {
	Values     []T    `json:"values"`
	NextCursor string `json:"nextCursor"`
}

// fetchAll follows the page cursor until exhausted or the page cap is hit,
// concatenating values in page order. The bool result reports whether the
// cap truncated the collection.
func fetchAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, bool, error) {
	var result []T

	cursor := ""
	for pageNum := 1; ; pageNum++ {
		q := url.Values{}
		for k, vs := range query {
			q[k] = vs
		}
		if cursor != "" {
			q.Set("cursor", cursor)
		}

		var p page[T]
		if err := c.doJSON(ctx, path, q, &p); err != nil {
			return nil, false, err
		}

		result = append(result, p.Values...)
		if c.onPage != nil {
			c.onPage(path, pageNum, len(p.Values))
		}

		cursor = p.NextCursor
		if cursor == "" {
			return result, false, nil
		}

		if pageNum >= c.maxPages {
			c.log.WithField("path", path).
				Warnf("pagination stopped after %v pages, results truncated", c.maxPages)
			return result, true, nil
		}
	}
}
