package spam

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		isSpam bool
		reason Reason
	}{
		{
			name:   "keyword crypto",
			text:   "Check crypto investment opportunity now",
			isSpam: true,
			reason: ReasonSpamKeyword,
		},
		{
			name:   "keyword is case-insensitive",
			text:   "BUY FOLLOWERS today",
			isSpam: true,
			reason: ReasonSpamKeyword,
		},
		{
			name:   "repeated characters",
			text:   strings.Repeat("a", 15),
			isSpam: true,
			reason: ReasonRepeatedChars,
		},
		{
			name:   "ten repeats is still fine",
			text:   strings.Repeat("a", 10),
			isSpam: false,
		},
		{
			name:   "eleven repeats trips",
			text:   strings.Repeat("1", 11),
			isSpam: true,
			reason: ReasonRepeatedChars,
		},
		{
			name:   "three urls",
			text:   "http://a.com http://b.com https://c.com",
			isSpam: true,
			reason: ReasonTooManyURLs,
		},
		{
			name:   "two urls pass",
			text:   "see http://a.com and https://b.com",
			isSpam: false,
		},
		{
			name:   "url check is case-insensitive",
			text:   "HTTP://a.com HTTPS://b.com HtTp://c.com",
			isSpam: true,
			reason: ReasonTooManyURLs,
		},
		{
			name:   "url rule wins over keyword rule",
			text:   "casino http://a.com http://b.com http://c.com",
			isSpam: true,
			reason: ReasonTooManyURLs,
		},
		{
			name:   "ordinary note",
			text:   "Please deliver by noon, thanks!",
			isSpam: false,
		},
		{
			name:   "empty text",
			text:   "",
			isSpam: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Detect(tt.text)
			assert.Equal(t, tt.isSpam, v.IsSpam)
			assert.Equal(t, tt.reason, v.Reason)
		})
	}
}

func TestAllowedOrigin(t *testing.T) {
	allowed := []string{"sabordeemociones.com", "www.sabordeemociones.com", "localhost:3000", "localhost"}

	tests := []struct {
		name    string
		origin  string
		referer string
		want    bool
	}{
		{name: "both absent", origin: "", referer: "", want: false},
		{name: "production origin", origin: "https://sabordeemociones.com", referer: "", want: true},
		{name: "www origin", origin: "https://www.sabordeemociones.com", referer: "", want: true},
		{name: "referer only", origin: "", referer: "https://sabordeemociones.com/order", want: true},
		{name: "localhost dev", origin: "http://localhost:3000", referer: "", want: true},
		{name: "unknown origin", origin: "https://evil.example.com", referer: "", want: false},
		{name: "origin takes precedence over referer", origin: "https://evil.example.com", referer: "https://sabordeemociones.com", want: false},
		// Substring containment is the documented looseness: a hostile URL
		// embedding the allowed host anywhere still passes.
		{name: "allowed host embedded in path", origin: "https://evil.example.com/sabordeemociones.com", referer: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedOrigin(tt.origin, tt.referer, allowed))
		})
	}
}
