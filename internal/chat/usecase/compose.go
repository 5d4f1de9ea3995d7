package usecase

import (
	"fmt"
	"strings"

	"asha-assistant/internal/aggregator"
	"asha-assistant/internal/model"
)

const itemSeparator = "\n---\n"

// composeContext merges aggregator results into one grounding blob.
// Sections keep trigger order; a failed or empty provider contributes a
// short note line instead of listings.
func composeContext(results []aggregator.Result) string {
	var sb strings.Builder
	for _, result := range results {
		sb.WriteString(renderSection(result))
	}
	return sb.String()
}

func renderSection(result aggregator.Result) string {
	switch result.Kind {
	case model.ProviderJobs:
		if result.Err != nil {
			return fmt.Sprintf("\nError retrieving job data: %v", result.Err)
		}
		if len(result.Items) == 0 {
			return "\nNo job listings found at the moment."
		}
		return "\nHere are some job listings based on your interest:\n" + joinItems(result.Items, renderJob)

	case model.ProviderMentorship:
		if result.Err != nil {
			return fmt.Sprintf("\nError fetching mentorships: %v", result.Err)
		}
		if len(result.Items) == 0 {
			return "\nNo mentorship sessions found at the moment."
		}
		return "\nHere are some mentorship sessions:\n" + joinItems(result.Items, renderSession)

	case model.ProviderEvents:
		if result.Err != nil {
			return fmt.Sprintf("\nError fetching events: %v", result.Err)
		}
		if len(result.Items) == 0 {
			return "\nNo upcoming events found at the moment."
		}
		return "\nHere are some upcoming events:\n" + joinItems(result.Items, renderSession)

	case model.ProviderKeywordSession:
		if result.Err != nil {
			return fmt.Sprintf("\nError fetching session search results: %v", result.Err)
		}
		if len(result.Items) == 0 {
			return fmt.Sprintf("\nNo sessions found for '%s'.", strings.ReplaceAll(result.Query, "%20", " "))
		}
		return "\nHere are some sessions based on your interest:\n" + joinItems(result.Items, renderSession)
	}
	return ""
}

func joinItems(items []model.ListingItem, render func(model.ListingItem) string) string {
	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, render(item))
	}
	return strings.Join(blocks, itemSeparator)
}

func renderJob(item model.ListingItem) string {
	return fmt.Sprintf(`%s
🏢 Company: %s
📍 Location: %s
💼 Work Mode: %s
🛠️ Skills: %s
🧠 Experience: %s
🔗 [Apply Here](%s)`,
		item.Title, item.Organizer, item.Location, item.WorkMode,
		item.Skills, item.Experience, item.Link)
}

func renderSession(item model.ListingItem) string {
	return fmt.Sprintf(`**%s**
👤 Host: _%s_
🗓️ Date & Time: %s
⏱️ Duration: %s
🔗 [Join Session](%s)`,
		item.Title, item.Organizer, item.Schedule, item.Duration, item.Link)
}
