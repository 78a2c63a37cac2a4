package scheduling

import (
	"testing"

	"github.com/flownote/flownote/internal/domain/entities"
)

func TestExtractTimePreference_SpecificTimes(t *testing.T) {
	tests := []struct {
		title   string
		hour    int
		minutes int
	}{
		{"Call client at 10:30am", 10, 30},
		{"standup at 9:15", 9, 15},
		{"Dinner at 7:00pm", 19, 0},
		{"overnight export 12:00am", 0, 0},
		{"Lunch sync 12:30PM", 12, 30},
		{"review at 3:07pm", 15, 0},  // rounds down
		{"review at 3:08pm", 15, 15}, // rounds up
		{"ship at 4:53pm", 17, 0},    // rounds into next hour
	}

	for _, tt := range tests {
		pref := ExtractTimePreference(tt.title)
		if pref == nil {
			t.Errorf("%q: expected a preference, got nil", tt.title)
			continue
		}
		if pref.Kind != entities.PreferenceSpecific {
			t.Errorf("%q: expected kind specific, got %s", tt.title, pref.Kind)
		}
		if pref.PreferredHour != tt.hour || pref.PreferredMinutes != tt.minutes {
			t.Errorf("%q: expected %02d:%02d, got %02d:%02d",
				tt.title, tt.hour, tt.minutes, pref.PreferredHour, pref.PreferredMinutes)
		}
	}
}

func TestExtractTimePreference_RejectsOutOfRangeClockTime(t *testing.T) {
	// 23:55 rounds up past midnight; the match is discarded, not coerced.
	if pref := ExtractTimePreference("wrap up at 11:55pm"); pref != nil {
		t.Errorf("expected nil for out-of-range rounded time, got %+v", pref)
	}
	if pref := ExtractTimePreference("raw 25:00 timestamp"); pref != nil {
		t.Errorf("expected nil for hour 25, got %+v", pref)
	}
}

func TestExtractTimePreference_Keywords(t *testing.T) {
	tests := []struct {
		title string
		hour  int
		kind  entities.PreferenceKind
	}{
		{"Evening walk", 20, entities.PreferenceEvening},
		{"wind down for the night", 20, entities.PreferenceEvening},
		{"call mom after 8", 20, entities.PreferenceEvening},
		{"meet at 8 o'clock", 20, entities.PreferenceEvening},
		{"gym in the morning", 9, entities.PreferenceMorning},
		{"early run", 9, entities.PreferenceMorning},
		{"Lunch with Sam", 14, entities.PreferenceAfternoon},
		{"free afternoon slot", 14, entities.PreferenceAfternoon},
	}

	for _, tt := range tests {
		pref := ExtractTimePreference(tt.title)
		if pref == nil {
			t.Errorf("%q: expected a preference, got nil", tt.title)
			continue
		}
		if pref.PreferredHour != tt.hour || pref.PreferredMinutes != 0 {
			t.Errorf("%q: expected %02d:00, got %02d:%02d",
				tt.title, tt.hour, pref.PreferredHour, pref.PreferredMinutes)
		}
		if pref.Kind != tt.kind {
			t.Errorf("%q: expected kind %s, got %s", tt.title, tt.kind, pref.Kind)
		}
	}
}

func TestExtractTimePreference_SpecificWinsOverKeywords(t *testing.T) {
	pref := ExtractTimePreference("morning review at 4:45pm")
	if pref == nil {
		t.Fatal("expected a preference, got nil")
	}
	if pref.Kind != entities.PreferenceSpecific {
		t.Errorf("expected specific to win over morning keyword, got %s", pref.Kind)
	}
	if pref.PreferredHour != 16 || pref.PreferredMinutes != 45 {
		t.Errorf("expected 16:45, got %02d:%02d", pref.PreferredHour, pref.PreferredMinutes)
	}
}

func TestExtractTimePreference_NoHint(t *testing.T) {
	for _, title := range []string{"", "buy groceries", "write the quarterly report", "42"} {
		if pref := ExtractTimePreference(title); pref != nil {
			t.Errorf("%q: expected nil, got %+v", title, pref)
		}
	}
}
