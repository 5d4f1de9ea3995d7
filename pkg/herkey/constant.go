package herkey

import "time"

const (
	// DefaultBaseURL is the production HerKey API endpoint
	DefaultBaseURL = "https://api-prod.herkey.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// DefaultJobPageSize is the number of job records requested per search
	DefaultJobPageSize = 5

	// DefaultEventPageSize is the number of event records requested
	DefaultEventPageSize = 10
)
