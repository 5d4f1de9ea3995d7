package intent

// Fuzzy cutoffs. Job-title matching is stricter than the session-word
// matching so that generic words don't trigger listing lookups.
const (
	JobTitleCutoff    = 0.85
	SessionWordCutoff = 0.8
)

var (
	jobLiterals  = []string{"job", "jobs", "jbs", "jbos"}
	mentorWords  = []string{"mentor", "mentorship"}
	eventWords   = []string{"event", "events", "workshop"}
	sessionKinds = []string{"mentorship", "mentorships", "events", "event"}
)

// defaultJobTitles is the built-in role vocabulary used for per-token
// fuzzy extraction. Overridable via intent.job_titles in config.
var defaultJobTitles = []string{
	"developer", "engineer", "designer", "analyst", "manager",
	"consultant", "architect", "scientist", "tester", "recruiter",
	"accountant", "teacher", "writer", "marketer", "nurse",
	"lawyer", "intern", "data", "software", "frontend",
	"backend", "fullstack", "devops", "product", "sales",
}
