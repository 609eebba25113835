// Package highlights searches the YouTube Data API for basketball highlight videos.
package highlights

import (
	"fmt"
	"slices"
)

// Platform is the source label stamped on every result.
const Platform = "YouTube"

const watchURLPrefix = "https://www.youtube.com/watch?v="

// Result is a single highlight video returned by a search.
type Result struct {
	Platform   string
	Title      string
	URL        string // watch page
	UploadDate string // provider publishedAt, verbatim
	Score      int    // always 0, never used for ranking
}

// WatchURL returns the watch page URL for a video ID.
func WatchURL(videoID string) string {
	return watchURLPrefix + videoID
}

// Order is the sort criterion sent to the provider.
type Order string

const (
	OrderRelevance Order = "relevance"
	OrderDate      Order = "date"
	OrderViewCount Order = "viewCount"
	OrderRating    Order = "rating"
	OrderTitle     Order = "title"
)

// Orders lists every supported order in selector order.
var Orders = []Order{
	OrderRelevance,
	OrderDate,
	OrderViewCount,
	OrderRating,
	OrderTitle,
}

// ParseOrder validates s against the supported orders.
func ParseOrder(s string) (Order, error) {
	o := Order(s)
	if !slices.Contains(Orders, o) {
		return "", fmt.Errorf("unknown order %q", s)
	}
	return o, nil
}

func (o Order) String() string {
	return string(o)
}

// Next returns the order after o, wrapping around.
func (o Order) Next() Order {
	return Orders[(o.index()+1)%len(Orders)]
}

// Prev returns the order before o, wrapping around.
func (o Order) Prev() Order {
	return Orders[(o.index()-1+len(Orders))%len(Orders)]
}

// index returns the position of o in Orders, 0 for unknown values.
func (o Order) index() int {
	if i := slices.Index(Orders, o); i >= 0 {
		return i
	}
	return 0
}
