package nlp

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/cortex/pkg/model"
)

// rule binds an intent to its utterance pattern. Capture groups map
// positionally onto params.
type rule struct {
	intent model.Intent
	re     *regexp.Regexp
	params []string
}

// Parser classifies utterances with a fixed, ordered rule table. The
// first matching rule wins, and the order is a deliberate priority:
// task_search precedes the web search rules so "search task foo" never
// reaches Google, and search_youtube precedes search_google because the
// generic pattern would also match YouTube phrasing (RE2 has no
// lookahead, so the ordering carries that distinction alone).
type Parser struct {
	rules []rule
}

// New creates a Parser with the built-in rule table
func New() *Parser {
	return &Parser{
		rules: []rule{
			{model.IntentGreeting, regexp.MustCompile(`\b(?:hey|hi|hello)\b`), nil},
			{model.IntentNameQuery, regexp.MustCompile(`\b(?:what is your name|what's your name|tell me your name)\b`), nil},
			{model.IntentNameUpdate, regexp.MustCompile(`\bmy name is\s+([\w\s]+)`), []string{"name"}},
			{model.IntentTimeQuery, regexp.MustCompile(`\b(?:what's the time|what is the time|time please|current time)\b`), nil},
			{model.IntentDateQuery, regexp.MustCompile(`\b(?:what's the date|what is the date|date please|current date)\b`), nil},
			{model.IntentDayQuery, regexp.MustCompile(`\b(?:what's the day|what is the day|day please|current day)\b`), nil},
			{model.IntentTaskSearch, regexp.MustCompile(`\b(?:search|find|look for)\s+task\s+(.+)`), []string{"query"}},
			{model.IntentSearchYouTube, regexp.MustCompile(`\b(?:search|look up|find)\s+(?:on\s+)?youtube\s+(?:for|about\s+)?(.+)`), []string{"query"}},
			{model.IntentSearchGoogle, regexp.MustCompile(`\b(?:search|look up|google)\s+(?:for|about\s+)?(.+)`), []string{"query"}},
			{model.IntentSearchMaps, regexp.MustCompile(`\b(?:find|locate|show|search)\s+(?:location|place|address|directions|map)\s+(?:for|to|of\s+)?(.+)`), []string{"query"}},
			{model.IntentWeatherQuery, regexp.MustCompile(`\b(?:weather|temperature|forecast)\s+(?:for|in\s+)?(.+)`), []string{"location"}},
			{model.IntentTaskAdd, regexp.MustCompile(`\b(?:add|create|new)\s+task\s+(.+)`), []string{"details"}},
			{model.IntentTaskUpdate, regexp.MustCompile(`\b(?:update|modify|change|edit)\s+task\s+(\d+)\s+(.+)`), []string{"task_id", "details"}},
			{model.IntentTaskDelete, regexp.MustCompile(`\b(?:delete|remove)\s+task\s+(\d+)\b`), []string{"task_id"}},
			{model.IntentTaskView, regexp.MustCompile(`\b(?:view|show|list|get)\s+(?:all\s+)?tasks\b`), nil},
			{model.IntentAdviceQuery, regexp.MustCompile(`\b(?:give|tell|share)\s+(?:me\s+)?(?:some\s+)?advice\b`), nil},
			{model.IntentReminderAdd, regexp.MustCompile(`\b(?:set|add|create)\s+(?:a\s+)?reminder\s+(?:for|to\s+)?(.+)\s+at\s+(\d{1,2}:\d{2})\b`), []string{"text", "time"}},
			{model.IntentExit, regexp.MustCompile(`\b(?:exit|quit|goodbye|bye|stop|end)\b`), nil},
		},
	}
}

// Parse classifies an utterance into a command. Unmatched input yields
// IntentUnknown with the raw text as the "text" parameter.
func (p *Parser) Parse(utterance string) *model.Command {
	text := strings.ToLower(strings.TrimSpace(utterance))

	for _, r := range p.rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		params := make(map[string]string, len(r.params))
		for i, name := range r.params {
			if i+1 < len(m) {
				params[name] = strings.TrimSpace(m[i+1])
			}
		}
		return &model.Command{Intent: r.intent, Params: params}
	}

	return &model.Command{
		Intent: model.IntentUnknown,
		Params: map[string]string{"text": utterance},
	}
}
