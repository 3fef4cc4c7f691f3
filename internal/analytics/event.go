package analytics

import "time"

const (
	TopicLinkRegistered = "shortlink.registered"
	TopicLinkResolved   = "shortlink.resolved"
)

// LinkRegisteredEvent is emitted after a short link has been stored.
type LinkRegisteredEvent struct {
	Code        string    `json:"code"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	ClientIP    string    `json:"clientIp"`
	UserAgent   string    `json:"userAgent"`
}

// LinkResolvedEvent is emitted each time a short link is followed.
type LinkResolvedEvent struct {
	Code        string    `json:"code"`
	OriginalURL string    `json:"originalUrl"`
	ResolvedAt  time.Time `json:"resolvedAt"`
	ClientIP    string    `json:"clientIp"`
	UserAgent   string    `json:"userAgent"`
	Referrer    string    `json:"referrer,omitempty"`
}
