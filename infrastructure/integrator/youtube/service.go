package youtube

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/infrastructure/integrator/youtube/youtubeclient"
)

// Metadata é o resultado do enriquecimento de um link do YouTube.
// Available=false representa o estado fixo "indisponível" exibido pela UI:
// qualquer falha (URL malformada, rede, resposta não-OK) degrada para ele.
type Metadata struct {
	Available    bool   `json:"available"`
	Title        string `json:"title,omitempty"`
	AuthorName   string `json:"author_name,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{6,})`),
		regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{6,})`),
		regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{6,})`),
		regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{6,})`),
	}

	channelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`youtube\.com/channel/([A-Za-z0-9_-]+)`),
		regexp.MustCompile(`youtube\.com/@([A-Za-z0-9_.-]+)`),
	}
)

type YoutubeIntegrator interface {
	FetchMetadata(rawURL string) Metadata
}

type Service struct {
	client youtubeclient.Client
}

func New(client youtubeclient.Client) YoutubeIntegrator {
	return &Service{
		client: client,
	}
}

// FetchMetadata tenta enriquecer um link do YouTube via oEmbed.
// Nunca retorna erro e nunca tenta novamente: em qualquer falha o resultado
// degrada para Metadata{Available: false}.
func (s *Service) FetchMetadata(rawURL string) Metadata {
	if !looksLikeYoutubeURL(rawURL) {
		return Metadata{}
	}

	if _, ok := ExtractVideoID(rawURL); !ok {
		if _, ok := ExtractChannelID(rawURL); !ok {
			return Metadata{}
		}
	}

	oembed, err := s.client.FetchOEmbed(rawURL)
	if err != nil {
		logrus.WithError(err).Debug("Metadados do YouTube indisponíveis")
		return Metadata{}
	}

	return Metadata{
		Available:    true,
		Title:        oembed.Title,
		AuthorName:   oembed.AuthorName,
		ThumbnailURL: oembed.ThumbnailURL,
	}
}

// ExtractVideoID extrai o identificador de vídeo de uma URL do YouTube
func ExtractVideoID(rawURL string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// ExtractChannelID extrai o identificador ou handle de canal de uma URL do YouTube
func ExtractChannelID(rawURL string) (string, bool) {
	for _, pattern := range channelPatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return match[1], true
		}
	}
	return "", false
}

func looksLikeYoutubeURL(rawURL string) bool {
	return strings.Contains(rawURL, "youtube.com/") || strings.Contains(rawURL, "youtu.be/")
}
