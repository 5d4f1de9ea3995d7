package herkey

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Config holds HerKey client configuration.
// The API uses static anonymous bearer credentials; jobs and the two
// session endpoint groups are issued separate tokens.
type Config struct {
	BaseURL       string
	JobsToken     string
	SessionsToken string
	EventsToken   string
	HTTPClient    *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JobsToken == "" {
		return fmt.Errorf("herkey: JobsToken is required")
	}
	if c.SessionsToken == "" {
		c.SessionsToken = c.JobsToken
	}
	if c.EventsToken == "" {
		c.EventsToken = c.SessionsToken
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// herkeyImpl is the internal implementation of IHerKey
type herkeyImpl struct {
	baseURL       string
	jobsToken     string
	sessionsToken string
	eventsToken   string
	httpClient    *http.Client
}

// bodyEnvelope is the common HerKey response wrapper.
type bodyEnvelope struct {
	Body json.RawMessage `json:"body"`
}

// Job is a HerKey candidate job record. Field shapes vary between
// listings, so the loose fields decode through the Flex types.
type Job struct {
	ID           FlexString  `json:"id"`
	Title        string      `json:"title"`
	CompanyName  string      `json:"company_name"`
	Skills       FlexStrings `json:"skills"`
	WorkMode     FlexStrings `json:"work_mode"`
	LocationName string      `json:"location_name"`
	MinYear      FlexString  `json:"min_year"`
	MaxYear      FlexString  `json:"max_year"`
	RedirectURL  string      `json:"redirect_url"`
}

// Session is a HerKey mentorship or event session record.
type Session struct {
	PostID      FlexString  `json:"post_id"`
	PostInfo    PostInfo    `json:"post_info"`
	PostContent PostContent `json:"post_content"`
}

type PostInfo struct {
	UserShortProfile UserShortProfile `json:"user_short_profile"`
}

type UserShortProfile struct {
	Username string `json:"username"`
}

type PostContent struct {
	PostTopicText      string     `json:"post_topic_text"`
	DiscussionDateTime string     `json:"discussion_date_time"`
	Duration           FlexString `json:"duration"`
}

// FlexString decodes a JSON string or number into a string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler for FlexString.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*f = FlexString(num.String())
	return nil
}

// String returns the underlying string value.
func (f FlexString) String() string { return string(f) }

// FlexStrings decodes a JSON array of strings or a single string into a
// string slice. Numbers inside arrays are stringified.
type FlexStrings []string

// UnmarshalJSON implements json.Unmarshaler for FlexStrings.
func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			var fs FlexString
			if err := fs.UnmarshalJSON(item); err != nil {
				return err
			}
			out = append(out, fs.String())
		}
		*f = out
		return nil
	}
	var single FlexString
	if err := single.UnmarshalJSON(data); err != nil {
		return err
	}
	*f = []string{single.String()}
	return nil
}

// Join joins the values with ", ".
func (f FlexStrings) Join() string {
	return strings.Join(f, ", ")
}
