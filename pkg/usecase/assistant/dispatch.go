package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/nlp"
	"github.com/m-mizutani/cortex/pkg/utils/logging"
)

func (u *UseCase) dispatch(ctx context.Context, cmd *model.Command) Reply {
	switch cmd.Intent {
	case model.IntentGreeting:
		return u.greet()

	case model.IntentNameQuery:
		return say("My name is %s. And you are %s.", u.prefs.AssistantName(), u.prefs.UserName())

	case model.IntentNameUpdate:
		return u.updateName(ctx, cmd.Param("name"))

	case model.IntentTimeQuery:
		return say("It's %s.", u.now().Format("3:04 PM"))

	case model.IntentDateQuery:
		return say("Today is %s.", u.now().Format("January 2, 2006"))

	case model.IntentDayQuery:
		return say("It's %s.", u.now().Format("Monday"))

	case model.IntentSearchGoogle:
		return u.search(ctx, cmd.Param("query"), "Google",
			"https://google.com/search?q="+url.QueryEscape(cmd.Param("query")))

	case model.IntentSearchYouTube:
		return u.search(ctx, cmd.Param("query"), "YouTube",
			"https://www.youtube.com/results?search_query="+url.QueryEscape(cmd.Param("query")))

	case model.IntentSearchMaps:
		return u.search(ctx, cmd.Param("query"), "Maps",
			"https://google.com/maps/place/"+url.PathEscape(cmd.Param("query")))

	case model.IntentWeatherQuery:
		return u.weather(ctx, cmd.Param("location"))

	case model.IntentTaskAdd:
		return u.addTask(ctx, cmd.Param("details"))

	case model.IntentTaskUpdate:
		return u.updateTask(ctx, cmd.Param("task_id"), cmd.Param("details"))

	case model.IntentTaskDelete:
		return u.deleteTask(ctx, cmd.Param("task_id"))

	case model.IntentTaskView:
		return u.viewTasks()

	case model.IntentTaskSearch:
		return u.searchTasks(cmd.Param("query"))

	case model.IntentAdviceQuery:
		return say("Here's some advice: %s", u.advice.Random())

	case model.IntentReminderAdd:
		return u.addReminder(ctx, cmd.Param("text"), cmd.Param("time"))

	case model.IntentExit:
		return Reply{Text: "Goodbye! Have a great day.", Done: true}

	default:
		return say("I'm not sure how to help with that. Could you try rephrasing?")
	}
}

func say(format string, args ...any) Reply {
	return Reply{Text: fmt.Sprintf(format, args...)}
}

func (u *UseCase) greet() Reply {
	name := u.prefs.UserName()
	greetings := []string{
		fmt.Sprintf("Hey %s, how can I help you?", name),
		fmt.Sprintf("Hello %s! What can I do for you?", name),
		"I'm here to help. What do you need?",
		"How can I assist you today?",
	}
	return Reply{Text: greetings[u.pick(len(greetings))]}
}

func (u *UseCase) updateName(ctx context.Context, name string) Reply {
	if name == "" {
		return say("What should I call you?")
	}
	if err := u.prefs.SetUserName(ctx, name); err != nil {
		logging.From(ctx).Error("failed to update user name", "error", err)
		return say("Sorry, I couldn't save your name.")
	}
	return say("Okay, I'll remember that your name is %s.", name)
}

func (u *UseCase) search(ctx context.Context, query, site, searchURL string) Reply {
	if query == "" {
		return say("What would you like me to search for?")
	}
	if err := u.searcher.Open(ctx, searchURL); err != nil {
		logging.From(ctx).Error("failed to open search", "error", err, "url", searchURL)
		return say("Sorry, I couldn't open the browser for that search.")
	}
	return say("Here is what I found for %s on %s.", query, site)
}

func (u *UseCase) weather(ctx context.Context, location string) Reply {
	if location == "" {
		return say("Which location's weather would you like?")
	}
	searchURL := "https://google.com/search?q=" + url.QueryEscape(location+" weather")
	if err := u.searcher.Open(ctx, searchURL); err != nil {
		logging.From(ctx).Error("failed to open weather search", "error", err, "url", searchURL)
		return say("Sorry, I couldn't look up the weather right now.")
	}
	return say("Here is the weather for %s.", location)
}

func (u *UseCase) addReminder(ctx context.Context, text, timeOfDay string) Reply {
	if text == "" || timeOfDay == "" {
		return say("Please tell me what to remind you about and at what time.")
	}
	r, err := u.reminders.Add(ctx, text, timeOfDay)
	if err != nil {
		if errors.Is(err, model.ErrInvalidTimeFormat) {
			return say("I couldn't understand the time %q. Please use the HH:MM format, like 14:30.", timeOfDay)
		}
		logging.From(ctx).Error("failed to add reminder", "error", err)
		return say("Sorry, I couldn't save that reminder.")
	}
	return say("Okay, I'll remind you to %s at %s.", r.Text, speakTimeOfDay(r.TimeOfDay))
}

func parseTaskID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func (u *UseCase) addTask(ctx context.Context, details string) Reply {
	fields := nlp.ExtractTaskFields(details)
	if fields.Description == "" {
		return say("I couldn't understand the task details. Please try again.")
	}
	id, err := u.tasks.Add(ctx, fields.Description, fields.DueAt, fields.Priority)
	if err != nil {
		logging.From(ctx).Error("failed to add task", "error", err)
		return say("Sorry, I couldn't add that task.")
	}
	return say("Task added with ID %d.", id)
}

func (u *UseCase) updateTask(ctx context.Context, rawID, details string) Reply {
	id, ok := parseTaskID(rawID)
	if !ok {
		return say("Please give me a valid task ID.")
	}
	patch := nlp.ExtractTaskUpdates(details)
	if patch.Empty() {
		return say("I couldn't understand the update details. Please try again.")
	}
	if _, err := u.tasks.Update(ctx, id, patch); err != nil {
		if errors.Is(err, model.ErrTaskNotFound) {
			return say("I couldn't find a task with ID %d.", id)
		}
		logging.From(ctx).Error("failed to update task", "error", err, "task_id", id)
		return say("Sorry, I couldn't update that task.")
	}
	return say("Task %d updated successfully.", id)
}

func (u *UseCase) deleteTask(ctx context.Context, rawID string) Reply {
	id, ok := parseTaskID(rawID)
	if !ok {
		return say("Please give me a valid task ID.")
	}
	if _, err := u.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrTaskNotFound) {
			return say("I couldn't find a task with ID %d.", id)
		}
		logging.From(ctx).Error("failed to delete task", "error", err, "task_id", id)
		return say("Sorry, I couldn't delete that task.")
	}
	return say("Task %d deleted successfully.", id)
}
