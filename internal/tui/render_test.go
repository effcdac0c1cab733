package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/testutil"
	"github.com/akyairhashvil/kidquest/internal/tracker"
)

type failingBackend struct{}

func (failingBackend) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (failingBackend) Set(context.Context, string, []byte) error { return errors.New("disk full") }

func restore(m Model, state models.TrackerState) {
	m.store.Dispatch(context.Background(), tracker.RestoreState{State: state})
}

func TestRenderHeader(t *testing.T) {
	m := setupTestModel(t)
	out := m.renderHeader()
	for _, want := range []string{
		"Missions left: 6", "(25% complete)", "High-five streak: 8 days", "Points bank: 135 pts",
		"Next up", "Make your bed · Luna · Before school +5 pts", "Kindness high-five", "Sort the art shelf",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected header to contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Pack homework folder") {
		t.Fatalf("header should only preview the three oldest open missions")
	}
}

func TestRenderHeaderAllDone(t *testing.T) {
	m := setupTestModel(t)
	restore(m, models.TrackerState{
		Kids:  []models.Kid{testutil.NewKid("ada").WithName("Ada").Build()},
		Tasks: []models.Task{testutil.NewTask("t1", "ada").Done().Build()},
	})
	if out := m.renderHeader(); !strings.Contains(out, "time for a dance party!") {
		t.Fatalf("expected celebration in header:\n%s", out)
	}
}

func TestRenderKidCards(t *testing.T) {
	m := setupTestModel(t)
	out := m.renderKids()
	for _, want := range []string{"Luna", "Milo", "Nova", "Level 3", "★ Leader", "Next up: Make your bed", "Early Bird"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected kid cards to contain %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "★ Leader") != 1 {
		t.Fatalf("expected exactly one leader")
	}
}

func TestRenderKidCardAllDone(t *testing.T) {
	m := setupTestModel(t)
	restore(m, models.TrackerState{
		Kids:  []models.Kid{testutil.NewKid("ada").WithName("Ada").Build()},
		Tasks: []models.Task{testutil.NewTask("t1", "ada").Done().Build()},
	})
	if out := m.renderKids(); !strings.Contains(out, "cue the confetti!") {
		t.Fatalf("expected finished card:\n%s", out)
	}
}

func TestRenderKidsCompact(t *testing.T) {
	m := setupTestModel(t)
	m.width = 60
	out := m.renderKids()
	lunaLine, novaLine := -1, -1
	for i, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Luna") && lunaLine < 0 {
			lunaLine = i
		}
		if strings.Contains(line, "Nova") && novaLine < 0 {
			novaLine = i
		}
	}
	if lunaLine < 0 || novaLine <= lunaLine {
		t.Fatalf("expected stacked cards in compact mode:\n%s", out)
	}
}

func TestRenderKidsEmptyCrew(t *testing.T) {
	m := setupTestModel(t)
	restore(m, models.TrackerState{})
	if out := m.renderKids(); !strings.Contains(out, "No kids on the crew yet") {
		t.Fatalf("expected empty crew message:\n%s", out)
	}
}

func TestRenderBoard(t *testing.T) {
	m := setupTestModel(t)
	out := m.renderBoard()
	for _, want := range []string{"[1] Today 6", "[2] High fives 2", "[3] Bonus boosts 2", "Active missions", "Make your bed", "[Complete]", "›"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected board to contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Feed Pixel the cat") {
		t.Fatalf("today board should hide finished missions")
	}

	m = press(t, m, "2")
	out = m.renderBoard()
	if !strings.Contains(out, "Feed Pixel the cat") || !strings.Contains(out, "[Undo]") {
		t.Fatalf("expected finished missions on high fives:\n%s", out)
	}
}

func TestRenderBoardEmptyStates(t *testing.T) {
	m := setupTestModel(t)
	restore(m, models.TrackerState{
		Kids:  []models.Kid{testutil.NewKid("ada").Build()},
		Tasks: []models.Task{testutil.NewTask("t1", "ada").Done().Build()},
	})
	if out := m.renderBoard(); !strings.Contains(out, "Everything is wrapped!") || !strings.Contains(out, "[b]") {
		t.Fatalf("expected celebration:\n%s", out)
	}
	m = press(t, m, "b")
	if out := m.renderBoard(); !strings.Contains(out, "No tasks here yet") {
		t.Fatalf("expected empty bonus board:\n%s", out)
	}
}

func TestRenderBoardScrollHints(t *testing.T) {
	m := setupTestModel(t)
	var tasks []models.Task
	for i := 0; i < 12; i++ {
		tasks = append(tasks, testutil.NewTask(string(rune('a'+i)), "ada").Build())
	}
	restore(m, models.TrackerState{Kids: []models.Kid{testutil.NewKid("ada").Build()}, Tasks: tasks})
	if out := m.renderBoard(); !strings.Contains(out, "↓ 4 more") {
		t.Fatalf("expected scroll hint:\n%s", out)
	}
	for i := 0; i < 11; i++ {
		m = press(t, m, "down")
	}
	if out := m.renderBoard(); !strings.Contains(out, "↑ 4 more") {
		t.Fatalf("expected upward scroll hint:\n%s", out)
	}
}

func TestRenderFooterHelpAndStatus(t *testing.T) {
	m := setupTestModel(t)
	out := m.renderFooter()
	for _, want := range []string{"[n]New", "[p]Report", "[q]Quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected footer to contain %q:\n%s", want, out)
		}
	}
	m.setStatusError("boom")
	if out := m.renderFooter(); !strings.Contains(out, "boom") {
		t.Fatalf("expected status in footer")
	}
	m.clearStatus()
	if m.statusMessage != "" || m.statusIsError {
		t.Fatalf("expected status cleared")
	}
}

func TestRenderFooterPersistError(t *testing.T) {
	store := tracker.New(context.Background(), failingBackend{})
	m := New(context.Background(), store, Options{})
	m = press(t, m, "enter")
	if out := m.View(); !strings.Contains(out, "Progress not saved: disk full") {
		t.Fatalf("expected persistence warning:\n%s", out)
	}
}

func TestViewShowsBuilder(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, m, "n")
	out := m.View()
	for _, want := range []string{"Mission builder", "Task name", "Luna", "Preview: Give your mission a name · +5 pts"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected builder view to contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Mission board") {
		t.Fatalf("builder replaces the board while open")
	}
}
