package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/cortex/pkg/usecase/task"
)

// listBatch is how many tasks are read out before asking whether to
// continue. Long listings are tiring to listen to in one go.
const listBatch = 3

var affirmatives = []string{"yes", "yeah", "sure", "okay"}

// taskListing is a paused read-out waiting for a yes/no answer
type taskListing struct {
	entries []task.Entry
	cursor  int
}

func (u *UseCase) viewTasks() Reply {
	entries := u.tasks.List()
	if len(entries) == 0 {
		return say("You don't have any tasks yet.")
	}
	return u.listTasks(fmt.Sprintf("You have %d tasks.", len(entries)), entries)
}

func (u *UseCase) searchTasks(query string) Reply {
	if query == "" {
		return say("What keyword would you like to search your tasks for?")
	}
	entries := u.tasks.Search(query)
	if len(entries) == 0 {
		return say("No tasks found matching %q.", query)
	}
	return u.listTasks(fmt.Sprintf("Found %d tasks matching %q.", len(entries), query), entries)
}

func (u *UseCase) listTasks(header string, entries []task.Entry) Reply {
	var b strings.Builder
	b.WriteString(header)
	end := min(listBatch, len(entries))
	for _, e := range entries[:end] {
		b.WriteString(" ")
		b.WriteString(formatTask(e))
	}
	if end < len(entries) {
		u.pending = &taskListing{entries: entries, cursor: end}
		fmt.Fprintf(&b, " And %d more. Would you like to hear the rest?", len(entries)-end)
	}
	return Reply{Text: b.String()}
}

// continueListing resumes or abandons a paused read-out based on the
// user's answer
func (u *UseCase) continueListing(utterance string) Reply {
	listing := u.pending
	answer := strings.ToLower(strings.TrimSpace(utterance))

	affirmed := false
	for _, word := range affirmatives {
		if strings.Contains(answer, word) {
			affirmed = true
			break
		}
	}
	if !affirmed {
		u.pending = nil
		return say("Okay, let me know if you need anything else.")
	}

	var b strings.Builder
	end := min(listing.cursor+listBatch, len(listing.entries))
	for i, e := range listing.entries[listing.cursor:end] {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(formatTask(e))
	}
	if end < len(listing.entries) {
		listing.cursor = end
		fmt.Fprintf(&b, " And %d more. Would you like to hear the rest?", len(listing.entries)-end)
	} else {
		u.pending = nil
	}
	return Reply{Text: b.String()}
}

func formatTask(e task.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task ID %d: %s", e.ID, e.Task.Description)
	if e.Task.DueAt != nil {
		fmt.Fprintf(&b, ", due %s", e.Task.DueAt.Format("January 2 at 3:04 PM"))
	}
	fmt.Fprintf(&b, ", priority %s, status %s.", e.Task.Priority, e.Task.Status)
	return b.String()
}

// speakTimeOfDay renders a stored HH:MM:SS time in spoken form
func speakTimeOfDay(timeOfDay string) string {
	t, err := time.Parse("15:04:05", timeOfDay)
	if err != nil {
		return timeOfDay
	}
	return t.Format("3:04 PM")
}
