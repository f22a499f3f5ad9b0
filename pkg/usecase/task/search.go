package task

import (
	"regexp"
	"strings"
)

// Search returns the tasks whose description matches the pattern, in
// their stored order. The pattern is compiled as a case-insensitive
// regular expression; if it does not compile, it degrades to plain
// case-insensitive substring containment, so user input never fails a
// search.
func (u *UseCase) Search(pattern string) []Entry {
	u.mu.Lock()
	defer u.mu.Unlock()

	re, err := regexp.Compile("(?i)" + pattern)
	match := func(desc string) bool {
		return strings.Contains(strings.ToLower(desc), strings.ToLower(pattern))
	}
	if err == nil {
		match = func(desc string) bool { return re.MatchString(desc) }
	}

	var found []Entry
	for i, t := range u.tasks {
		if match(t.Description) {
			found = append(found, Entry{ID: i, Task: t})
		}
	}
	return found
}
