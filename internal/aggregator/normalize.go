package aggregator

import (
	"fmt"

	"asha-assistant/internal/model"
	"asha-assistant/pkg/herkey"
)

// jobItem normalizes one job record. Every absent field is defaulted so
// rendering never breaks on sparse records.
func jobItem(job herkey.Job) model.ListingItem {
	return model.ListingItem{
		Title:     orNA(job.Title),
		Organizer: orNA(job.CompanyName),
		Location:  orNA(job.LocationName),
		WorkMode:  orNA(job.WorkMode.Join()),
		Skills:    orNA(job.Skills.Join()),
		Experience: fmt.Sprintf("%s - %s years",
			orNA(job.MinYear.String()), orNA(job.MaxYear.String())),
		Link: ResolveLink(job.Title, job.ID.String(), job.RedirectURL),
	}
}

// sessionItem normalizes one mentorship/event session record. Hosts
// without a profile render as "Unknown" rather than the N/A sentinel.
func sessionItem(session herkey.Session) model.ListingItem {
	username := session.PostInfo.UserShortProfile.Username
	if username == "" {
		username = "Unknown"
	}
	return model.ListingItem{
		Title:     orNA(session.PostContent.PostTopicText),
		Organizer: username,
		Schedule:  orNA(session.PostContent.DiscussionDateTime),
		Duration:  orNA(session.PostContent.Duration.String()),
		Link:      fmt.Sprintf("%s/%s", sessionLinkBase, session.PostID.String()),
	}
}

func orNA(s string) string {
	if s == "" {
		return model.FieldNotAvailable
	}
	return s
}

func jobItems(jobs []herkey.Job) []model.ListingItem {
	if len(jobs) > JobItemCap {
		jobs = jobs[:JobItemCap]
	}
	items := make([]model.ListingItem, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, jobItem(j))
	}
	return items
}

func sessionItems(sessions []herkey.Session) []model.ListingItem {
	if len(sessions) > SessionItemCap {
		sessions = sessions[:SessionItemCap]
	}
	items := make([]model.ListingItem, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, sessionItem(s))
	}
	return items
}
