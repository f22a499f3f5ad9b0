package model

// DocumentName identifies a logical persisted document. Each document
// maps to one JSON file owned by the repository.
type DocumentName string

const (
	DocumentTasks       DocumentName = "tasks"
	DocumentReminders   DocumentName = "reminders"
	DocumentAdvice      DocumentName = "advice"
	DocumentPreferences DocumentName = "preferences"
)
