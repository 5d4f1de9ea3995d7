package aggregator

import "time"

const (
	// DefaultFetchTimeout bounds each provider call independently so one
	// slow upstream cannot stall the whole fan-out.
	DefaultFetchTimeout = 10 * time.Second

	// JobItemCap and SessionItemCap limit how many records of each kind
	// reach the grounding context.
	JobItemCap     = 5
	SessionItemCap = 3
)

const (
	jobLinkBase     = "https://www.herkey.com/jobs"
	sessionLinkBase = "https://www.herkey.com/sessions"

	// adRedirectHost marks sponsored redirect links that wrap the real
	// destination inside the URL itself.
	adRedirectHost = "ad.doubleclick.net"
)
