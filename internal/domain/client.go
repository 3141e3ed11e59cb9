package domain

import "time"

// Temperaturas de lead aceitas
const (
	TemperatureCold = "cold"
	TemperatureWarm = "warm"
	TemperatureHot  = "hot"
)

// Status de ciclo de vida do cliente
const (
	StatusActive  = "active"
	StatusOngoing = "ongoing"
	StatusClosed  = "closed"
	StatusDead    = "dead"
)

// Client representa um lead/prospect da agência
type Client struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Company           string     `json:"company"`
	Contact           string     `json:"contact"`
	YoutubeLink       string     `json:"youtube_link"`
	InstagramLink     string     `json:"instagram_link"`
	TiktokLink        string     `json:"tiktok_link"`
	TwitterLink       string     `json:"twitter_link"`
	LinkedinLink      string     `json:"linkedin_link"`
	Subscribers       int        `json:"subscribers"`
	OutreachType      string     `json:"outreach_type"`
	OutreachPlatform  string     `json:"outreach_platform"`
	OutreachDate      *time.Time `json:"outreach_date"`
	OutreachNotes     string     `json:"outreach_notes"`
	LinkSent          string     `json:"link_sent"`
	LeadTemperature   string     `json:"lead_temperature"`
	Replied           bool       `json:"replied"`
	FollowUpStatus    string     `json:"follow_up_status"`
	FollowUpCount     int        `json:"follow_up_count"`
	NextFollowUpAt    *time.Time `json:"next_follow_up_at"`
	FollowUpPlatforms string     `json:"follow_up_platforms"`
	Tags              string     `json:"tags"`
	Notes             string     `json:"notes"`
	Status            string     `json:"status"`
	CreatedBy         int        `json:"created_by"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// UpdateClientRequest carrega apenas os campos enviados pelo formulário de edição.
// Campos nulos não foram enviados e não devem ser alterados.
type UpdateClientRequest struct {
	ID                string     `json:"id"`
	Name              *string    `json:"name"`
	Email             *string    `json:"email"`
	Company           *string    `json:"company"`
	Contact           *string    `json:"contact"`
	YoutubeLink       *string    `json:"youtube_link"`
	InstagramLink     *string    `json:"instagram_link"`
	TiktokLink        *string    `json:"tiktok_link"`
	TwitterLink       *string    `json:"twitter_link"`
	LinkedinLink      *string    `json:"linkedin_link"`
	Subscribers       *int       `json:"subscribers"`
	OutreachType      *string    `json:"outreach_type"`
	OutreachPlatform  *string    `json:"outreach_platform"`
	OutreachDate      *time.Time `json:"outreach_date"`
	OutreachNotes     *string    `json:"outreach_notes"`
	LinkSent          *string    `json:"link_sent"`
	LeadTemperature   *string    `json:"lead_temperature"`
	Replied           *bool      `json:"replied"`
	FollowUpStatus    *string    `json:"follow_up_status"`
	FollowUpCount     *int       `json:"follow_up_count"`
	NextFollowUpAt    *time.Time `json:"next_follow_up_at"`
	FollowUpPlatforms *string    `json:"follow_up_platforms"`
	Tags              *string    `json:"tags"`
	Notes             *string    `json:"notes"`
	Status            *string    `json:"status"`
}

// ValidTemperature verifica se a temperatura informada é aceita
func ValidTemperature(t string) bool {
	switch t {
	case TemperatureCold, TemperatureWarm, TemperatureHot:
		return true
	}
	return false
}

// ValidStatus verifica se o status informado é aceito.
// Transições entre status não são validadas: qualquer valor pode mudar para qualquer outro.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusOngoing, StatusClosed, StatusDead:
		return true
	}
	return false
}

// FieldMap converte o cliente para um mapa campo → valor, usado pelo diff
// do log de edições. Datas são serializadas em RFC3339 para comparação estável.
func (c *Client) FieldMap() map[string]any {
	m := map[string]any{
		"id":                  c.ID,
		"name":                c.Name,
		"email":               c.Email,
		"company":             c.Company,
		"contact":             c.Contact,
		"youtube_link":        c.YoutubeLink,
		"instagram_link":      c.InstagramLink,
		"tiktok_link":         c.TiktokLink,
		"twitter_link":        c.TwitterLink,
		"linkedin_link":       c.LinkedinLink,
		"subscribers":         c.Subscribers,
		"outreach_type":       c.OutreachType,
		"outreach_platform":   c.OutreachPlatform,
		"outreach_date":       formatTime(c.OutreachDate),
		"outreach_notes":      c.OutreachNotes,
		"link_sent":           c.LinkSent,
		"lead_temperature":    c.LeadTemperature,
		"replied":             c.Replied,
		"follow_up_status":    c.FollowUpStatus,
		"follow_up_count":     c.FollowUpCount,
		"next_follow_up_at":   formatTime(c.NextFollowUpAt),
		"follow_up_platforms": c.FollowUpPlatforms,
		"tags":                c.Tags,
		"notes":               c.Notes,
		"status":              c.Status,
		"created_by":          c.CreatedBy,
		"created_at":          c.CreatedAt.Format(time.RFC3339),
	}
	return m
}

// FieldMap converte a requisição de edição para um mapa contendo apenas
// os campos efetivamente enviados.
func (r *UpdateClientRequest) FieldMap() map[string]any {
	m := map[string]any{}

	putString := func(key string, v *string) {
		if v != nil {
			m[key] = *v
		}
	}

	putString("name", r.Name)
	putString("email", r.Email)
	putString("company", r.Company)
	putString("contact", r.Contact)
	putString("youtube_link", r.YoutubeLink)
	putString("instagram_link", r.InstagramLink)
	putString("tiktok_link", r.TiktokLink)
	putString("twitter_link", r.TwitterLink)
	putString("linkedin_link", r.LinkedinLink)
	putString("outreach_type", r.OutreachType)
	putString("outreach_platform", r.OutreachPlatform)
	putString("outreach_notes", r.OutreachNotes)
	putString("link_sent", r.LinkSent)
	putString("lead_temperature", r.LeadTemperature)
	putString("follow_up_status", r.FollowUpStatus)
	putString("follow_up_platforms", r.FollowUpPlatforms)
	putString("tags", r.Tags)
	putString("notes", r.Notes)
	putString("status", r.Status)

	if r.Subscribers != nil {
		m["subscribers"] = *r.Subscribers
	}
	if r.Replied != nil {
		m["replied"] = *r.Replied
	}
	if r.FollowUpCount != nil {
		m["follow_up_count"] = *r.FollowUpCount
	}
	if r.OutreachDate != nil {
		m["outreach_date"] = formatTime(r.OutreachDate)
	}
	if r.NextFollowUpAt != nil {
		m["next_follow_up_at"] = formatTime(r.NextFollowUpAt)
	}

	return m
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
