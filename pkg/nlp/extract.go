package nlp

import (
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/cortex/pkg/model"
)

var (
	dueRe      = regexp.MustCompile(`(?i)due\s+(?:on\s+)?(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{4}|\d{1,2}/\d{1,2}/\d{2})\s+(?:at\s+)?(\d{1,2}:\d{2}(?:\s*[ap]m)?)`)
	priorityRe = regexp.MustCompile(`(?i)(?:with\s+)?priority\s+(low|medium|high)`)
	statusRe   = regexp.MustCompile(`(?i)status\s+(completed|pending|in progress)`)
)

// ExtractTaskFields parses free-form task details into a description,
// an optional due timestamp and a priority. The description is whatever
// remains after the matched due/priority fragments are removed. A due
// date or time that fails to parse drops only the due date; priority
// defaults to medium.
func ExtractTaskFields(text string) model.TaskFields {
	fields := model.TaskFields{Priority: model.PriorityMedium}
	desc := text

	if m := dueRe.FindStringSubmatch(text); m != nil {
		desc = strings.Replace(desc, m[0], "", 1)
		if due, err := parseDueAt(m[1], m[2]); err == nil {
			fields.DueAt = &due
		}
	}

	if m := priorityRe.FindStringSubmatch(text); m != nil {
		desc = strings.Replace(desc, m[0], "", 1)
		fields.Priority = model.Priority(strings.ToLower(m[1]))
	}

	fields.Description = strings.TrimSpace(desc)
	return fields
}

// ExtractTaskUpdates parses task update details into a merge patch
// holding only the fields that were explicitly present: a due fragment,
// a priority fragment, or a status fragment.
func ExtractTaskUpdates(text string) model.TaskPatch {
	var patch model.TaskPatch

	if m := dueRe.FindStringSubmatch(text); m != nil {
		if due, err := parseDueAt(m[1], m[2]); err == nil {
			patch.DueAt = &due
		}
	}

	if m := priorityRe.FindStringSubmatch(text); m != nil {
		p := model.Priority(strings.ToLower(m[1]))
		patch.Priority = &p
	}

	if m := statusRe.FindStringSubmatch(text); m != nil {
		s := parseStatus(m[1])
		patch.Status = &s
	}

	return patch
}

func parseStatus(s string) model.Status {
	if strings.EqualFold(s, "in progress") {
		return model.StatusInProgress
	}
	return model.Status(strings.ToLower(s))
}

// parseDueAt combines a date fragment and a time fragment into a local
// timestamp. Dates accept 2006-01-02, 1/2/2006 and 1/2/06; times accept
// 24-hour 15:04 or 3:04pm.
func parseDueAt(dateStr, timeStr string) (time.Time, error) {
	var layout string
	switch {
	case strings.Contains(dateStr, "-"):
		layout = "2006-01-02"
	case len(dateStr[strings.LastIndex(dateStr, "/")+1:]) == 4:
		layout = "1/2/2006"
	default:
		layout = "1/2/06"
	}

	date, err := time.Parse(layout, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	timeStr = strings.ReplaceAll(strings.ToLower(timeStr), " ", "")
	timeLayout := "15:04"
	if strings.HasSuffix(timeStr, "am") || strings.HasSuffix(timeStr, "pm") {
		timeLayout = "3:04pm"
	}

	clock, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}
