package youtubeclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vfg2006/godcrm-api/internal/config"
)

// OEmbedResponse é o payload retornado pelo endpoint público de oEmbed do YouTube
type OEmbedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	AuthorURL    string `json:"author_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	ProviderName string `json:"provider_name"`
}

type Client interface {
	FetchOEmbed(videoURL string) (*OEmbedResponse, error)
}

type YoutubeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &YoutubeClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		config: cfg,
	}
}

func (c *YoutubeClient) FetchOEmbed(videoURL string) (*OEmbedResponse, error) {
	endpoint := fmt.Sprintf("%s?url=%s&format=json", c.config.Youtube.OEmbedURL, url.QueryEscape(videoURL))

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oembed respondeu com status %s", resp.Status)
	}

	var oembed OEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&oembed); err != nil {
		return nil, err
	}

	return &oembed, nil
}
