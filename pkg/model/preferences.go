package model

import "time"

// Preferences holds user-tunable settings. Persisted values override the
// defaults field by field; fields absent on disk keep their default.
type Preferences struct {
	UserName         string `json:"name"`
	AssistantName    string `json:"assistant_name"`
	VoiceLanguage    string `json:"voice_language"`
	VoiceGender      string `json:"voice_gender"`
	WakeWord         string `json:"wake_word"`
	ReminderInterval int    `json:"reminder_check_interval"` // seconds
	Timezone         string `json:"timezone"`
}

// DefaultPreferences returns the built-in settings
func DefaultPreferences() Preferences {
	return Preferences{
		UserName:         "User",
		AssistantName:    "Cortex",
		VoiceLanguage:    "en",
		VoiceGender:      "female",
		WakeWord:         "hey cortex",
		ReminderInterval: 30,
		Timezone:         "local",
	}
}

// CheckInterval returns the reminder polling interval as a duration,
// falling back to the default when the stored value is not positive.
func (p Preferences) CheckInterval() time.Duration {
	if p.ReminderInterval <= 0 {
		return 30 * time.Second
	}
	return time.Duration(p.ReminderInterval) * time.Second
}
