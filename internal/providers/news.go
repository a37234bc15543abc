package providers

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/chronois/avrora/internal/domain"
)

// News scrapes headlines: the link texts inside div elements of a class.
type News struct {
	client *Client
}

// NewNews returns a headline scraper.
func NewNews(client *Client) *News {
	return &News{client: client}
}

// Headlines implements domain.NewsProvider.
func (n *News) Headlines(ctx context.Context, url, class string) ([]string, error) {
	body, err := n.client.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("news: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("news: parse: %w", err)
	}

	var headlines []string
	doc.Find("div." + class).Each(func(_ int, div *goquery.Selection) {
		div.Find("a").Each(func(_ int, a *goquery.Selection) {
			if text := strings.Join(strings.Fields(a.Text()), " "); text != "" {
				headlines = append(headlines, text)
			}
		})
	})

	n.client.log.Info("found %d headlines at %s", len(headlines), url)
	return headlines, nil
}

var _ domain.NewsProvider = (*News)(nil)
