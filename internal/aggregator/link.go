package aggregator

import (
	"fmt"
	"strings"
)

// ResolveLink derives the apply link for a job record.
// Without a redirect URL a canonical listing link is synthesized from
// the title and id. Sponsored redirects through the ad network carry
// the destination after the last ';' segment of the same URL, prefixed
// by a two-character marker.
func ResolveLink(title, id, redirectURL string) string {
	if redirectURL == "" {
		slug := strings.ToLower(strings.ReplaceAll(title, " ", "—"))
		return fmt.Sprintf("%s/%s/%s", jobLinkBase, slug, id)
	}
	if strings.Contains(redirectURL, adRedirectHost) {
		tail := redirectURL[strings.LastIndex(redirectURL, ";")+1:]
		if len(tail) > 2 {
			return tail[2:]
		}
		return redirectURL
	}
	return redirectURL
}
