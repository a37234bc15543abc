package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/chronois/avrora/internal/domain"
)

const (
	// DefaultSongSearchURL is the YouTube results page. The query is appended.
	DefaultSongSearchURL = "https://www.youtube.com/results?search_query="

	songWatchURL = "https://music.youtube.com/watch?v="

	songCacheSize = 128
)

var initialDataPattern = regexp.MustCompile(`var ytInitialData = (\{.*?\});`)

// Songs finds the first YouTube video for a query and links it on
// YouTube Music. Resolved queries are cached.
type Songs struct {
	client    *Client
	searchURL string
	cache     *lru.Cache[string, string]
}

// NewSongs returns a song resolver. An empty searchURL means YouTube.
func NewSongs(client *Client, searchURL string) (*Songs, error) {
	if searchURL == "" {
		searchURL = DefaultSongSearchURL
	}
	cache, err := lru.New[string, string](songCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create song cache: %w", err)
	}
	return &Songs{client: client, searchURL: searchURL, cache: cache}, nil
}

type initialData struct {
	Contents struct {
		TwoColumnSearchResultsRenderer struct {
			PrimaryContents struct {
				SectionListRenderer struct {
					Contents []struct {
						ItemSectionRenderer *struct {
							Contents []struct {
								VideoRenderer *struct {
									VideoID string `json:"videoId"`
								} `json:"videoRenderer"`
							} `json:"contents"`
						} `json:"itemSectionRenderer"`
					} `json:"contents"`
				} `json:"sectionListRenderer"`
			} `json:"primaryContents"`
		} `json:"twoColumnSearchResultsRenderer"`
	} `json:"contents"`
}

// ResolveSong implements domain.SongResolver. A page without results is
// not an error.
func (s *Songs) ResolveSong(ctx context.Context, query string) (string, bool, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return "", false, nil
	}
	if link, ok := s.cache.Get(key); ok {
		return link, true, nil
	}

	body, err := s.client.get(ctx, s.searchURL+url.QueryEscape(key))
	if err != nil {
		return "", false, fmt.Errorf("song search: %w", err)
	}

	id, err := firstVideoID(body)
	if err != nil {
		return "", false, fmt.Errorf("song search %q: %w", key, err)
	}
	if id == "" {
		s.client.log.Warn("no video found for %q", key)
		return "", false, nil
	}

	link := songWatchURL + id
	s.cache.Add(key, link)
	return link, true, nil
}

// firstVideoID extracts the first video id from a results page. It returns
// "" when the page lists no videos.
func firstVideoID(page []byte) (string, error) {
	m := initialDataPattern.FindSubmatch(page)
	if m == nil {
		return "", errors.New("ytInitialData not found")
	}

	var data initialData
	if err := json.Unmarshal(m[1], &data); err != nil {
		return "", fmt.Errorf("decode ytInitialData: %w", err)
	}

	for _, section := range data.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer.Contents {
		if section.ItemSectionRenderer == nil {
			continue
		}
		for _, item := range section.ItemSectionRenderer.Contents {
			if item.VideoRenderer != nil && item.VideoRenderer.VideoID != "" {
				return item.VideoRenderer.VideoID, nil
			}
		}
	}
	return "", nil
}

var _ domain.SongResolver = (*Songs)(nil)
