package model

// Intent is the classification label assigned to a user utterance
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentNameQuery     Intent = "name_query"
	IntentNameUpdate    Intent = "name_update"
	IntentTimeQuery     Intent = "time_query"
	IntentDateQuery     Intent = "date_query"
	IntentDayQuery      Intent = "day_query"
	IntentTaskSearch    Intent = "task_search"
	IntentSearchYouTube Intent = "search_youtube"
	IntentSearchGoogle  Intent = "search_google"
	IntentSearchMaps    Intent = "search_maps"
	IntentWeatherQuery  Intent = "weather_query"
	IntentTaskAdd       Intent = "task_add"
	IntentTaskUpdate    Intent = "task_update"
	IntentTaskDelete    Intent = "task_delete"
	IntentTaskView      Intent = "task_view"
	IntentAdviceQuery   Intent = "advice_query"
	IntentReminderAdd   Intent = "reminder_add"
	IntentExit          Intent = "exit"
	IntentUnknown       Intent = "unknown"
)

// Command is a classified utterance with its extracted parameters
type Command struct {
	Intent Intent
	Params map[string]string
}

// Param returns the named parameter or an empty string
func (c *Command) Param(key string) string {
	return c.Params[key]
}
