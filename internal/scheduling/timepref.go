// Package scheduling places tasks onto a day's calendar as non-overlapping
// time blocks. It covers hint extraction from task titles, batch allocation,
// and the interactive placement session behind drag and resize.
package scheduling

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/flownote/flownote/internal/domain/entities"
)

var clockTimePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)?`)

var (
	eveningKeywords   = []string{"after 8", "8 pm", "8pm", "evening", "night", "8 o'clock"}
	morningKeywords   = []string{"morning", "early", "9 am", "9am"}
	afternoonKeywords = []string{"afternoon", "lunch", "2 pm", "2pm"}
)

// ExtractTimePreference parses a task title for an embedded scheduling hint.
// Matching is case-insensitive and the first rule that fires wins: an explicit
// clock time ("10:30am"), then evening, morning, and afternoon keywords.
// Titles without a hint return nil. The function is pure and never fails on
// arbitrary input.
func ExtractTimePreference(title string) *entities.TimePreference {
	lower := strings.ToLower(title)

	if m := clockTimePattern.FindStringSubmatch(lower); m != nil {
		// A malformed clock match is discarded outright rather than
		// falling through to the keyword rules.
		return specificTime(m)
	}

	for _, kw := range eveningKeywords {
		if strings.Contains(lower, kw) {
			return &entities.TimePreference{PreferredHour: 20, Kind: entities.PreferenceEvening}
		}
	}
	for _, kw := range morningKeywords {
		if strings.Contains(lower, kw) {
			return &entities.TimePreference{PreferredHour: 9, Kind: entities.PreferenceMorning}
		}
	}
	for _, kw := range afternoonKeywords {
		if strings.Contains(lower, kw) {
			return &entities.TimePreference{PreferredHour: 14, Kind: entities.PreferenceAfternoon}
		}
	}

	return nil
}

func specificTime(match []string) *entities.TimePreference {
	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	minutes, err := strconv.Atoi(match[2])
	if err != nil {
		return nil
	}

	switch match[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	// Round minutes to the nearest quarter hour, half up, rolling any
	// overflow into the hour.
	minutes = ((minutes + 7) / 15) * 15
	hour += minutes / 60
	minutes %= 60

	if hour < 0 || hour > 23 {
		return nil
	}

	return &entities.TimePreference{
		PreferredHour:    hour,
		PreferredMinutes: minutes,
		Kind:             entities.PreferenceSpecific,
	}
}
