package assistant

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/flownote/flownote/internal/domain/entities"
)

func TestParseResponse_NoBlock(t *testing.T) {
	p := NewParser(nil)

	text, tasks := p.ParseResponse("no special block here")
	if text != "no special block here" {
		t.Errorf("expected text unchanged, got %q", text)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestParseResponse_NeverPanics(t *testing.T) {
	p := NewParser(nil)

	inputs := []string{
		"",
		"[[tasks]]",                          // opening marker only
		"[[tasks]] not json [[/tasks]]",      // invalid payload
		"[[tasks]]{\"tasks\": 42}[[/tasks]]", // wrong payload shape
		"[[/tasks]] before [[tasks]]",        // closing before opening
		strings.Repeat("[[tasks]]", 100),
	}

	for _, raw := range inputs {
		text, tasks := p.ParseResponse(raw)
		if text != raw {
			t.Errorf("%q: expected raw text back on degraded parse, got %q", raw, text)
		}
		if len(tasks) != 0 {
			t.Errorf("%q: expected no tasks, got %d", raw, len(tasks))
		}
	}
}

func TestParseResponse_ExtractsTasksAndTrimsText(t *testing.T) {
	p := NewParser(nil)

	raw := "Here is your plan for tomorrow.\n\n[[tasks]]\n" +
		`{"tasks": [` +
		`{"title": "Write report", "priority": "high", "effort": "large"},` +
		`{"title": "Morning run", "tags": ["physical", "health"], "effort": "large"},` +
		`{"title": "Stretch"},` +
		`{"priority": "bogus", "effort": "huge"}` +
		`]}` +
		"\n[[/tasks]]\n\nLet me know if you want changes."

	text, tasks := p.ParseResponse(raw)

	want := "Here is your plan for tomorrow.\n\n\n\nLet me know if you want changes."
	if text != strings.TrimSpace(want) {
		t.Errorf("unexpected remainder text: %q", text)
	}
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}

	report := tasks[0]
	if report.Title != "Write report" || report.Priority != entities.PriorityHigh {
		t.Errorf("unexpected first task: %+v", report)
	}
	if report.Effort == nil || *report.Effort != entities.EffortLarge {
		t.Errorf("expected large effort, got %v", report.Effort)
	}

	// The "physical" tag wins over any provided effort.
	run := tasks[1]
	if run.Effort != nil {
		t.Errorf("physical task: expected nil effort, got %v", *run.Effort)
	}

	// Missing effort also marks a physical activity.
	stretch := tasks[2]
	if stretch.Effort != nil {
		t.Errorf("effortless task: expected nil effort, got %v", *stretch.Effort)
	}
	if stretch.Priority != entities.PriorityMedium {
		t.Errorf("expected default medium priority, got %s", stretch.Priority)
	}

	// Invalid fields fall back to defaults rather than failing.
	fallback := tasks[3]
	if fallback.Title != "" {
		t.Errorf("expected empty default title, got %q", fallback.Title)
	}
	if fallback.Priority != entities.PriorityMedium {
		t.Errorf("expected default medium priority, got %s", fallback.Priority)
	}
	if fallback.Effort == nil || *fallback.Effort != entities.EffortMedium {
		t.Errorf("expected medium effort fallback, got %v", fallback.Effort)
	}
}

func TestParseResponse_UniqueTaskIDs(t *testing.T) {
	p := NewParser(nil)

	raw := `[[tasks]]{"tasks": [{"title": "a", "effort": "small"}, {"title": "b", "effort": "small"}, {"title": "c", "effort": "small"}]}[[/tasks]]`
	_, tasks := p.ParseResponse(raw)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	seen := make(map[string]bool)
	for _, task := range tasks {
		if task.ID == "" {
			t.Error("task with empty id")
		}
		if seen[task.ID] {
			t.Errorf("duplicate task id %s", task.ID)
		}
		seen[task.ID] = true
	}
}

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) Chat(_ context.Context, _ []Message) (string, error) {
	return s.reply, s.err
}

func TestAssistantChat_SplitsReplyAndTasks(t *testing.T) {
	client := &stubClient{
		reply: `Sure!` + "\n" + `[[tasks]]{"tasks": [{"title": "Plan sprint", "priority": "high", "effort": "medium"}]}[[/tasks]]`,
	}
	a := New(client, nil)

	result, err := a.Chat(context.Background(), "plan my sprint", time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if result.Reply != "Sure!" {
		t.Errorf("expected reply %q, got %q", "Sure!", result.Reply)
	}
	if len(result.Tasks) != 1 || result.Tasks[0].Title != "Plan sprint" {
		t.Errorf("unexpected tasks: %+v", result.Tasks)
	}
}
