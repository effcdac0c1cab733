package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/util"
)

type formField int

const (
	fieldTitle formField = iota
	fieldKid
	fieldDetails
	fieldCategory
	fieldReward
	fieldDue
	fieldTimeOfDay
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTitle:     "Task name",
	fieldKid:       "Assign to",
	fieldDetails:   "Details",
	fieldCategory:  "Category",
	fieldReward:    "Reward",
	fieldDue:       "Due reminder",
	fieldTimeOfDay: "Time of day",
}

const previewPlaceholder = "Give your mission a name"

// missionForm is the mission builder. It edits a copy of the store's draft;
// the model pushes every change back with tracker.UpdateDraft.
type missionForm struct {
	focus formField

	title     textinput.Model
	details   textinput.Model
	reward    textinput.Model
	due       textinput.Model
	timeOfDay textinput.Model

	kids   []models.Kid
	kidIdx int
	catIdx int
}

func newInput(placeholder, value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Prompt = ""
	ti.SetValue(value)
	return ti
}

func newMissionForm(draft models.Draft, kids []models.Kid) missionForm {
	f := missionForm{
		title:     newInput("Feed the puppy", draft.Title, config.MaxTitleLength),
		details:   newInput(config.DefaultDescription, draft.Description, config.MaxDescriptionLength),
		reward:    newInput(strconv.Itoa(config.DefaultReward), strconv.Itoa(draft.Reward), 2),
		due:       newInput(config.DefaultDueLabel, draft.DueLabel, config.MaxLabelLength),
		timeOfDay: newInput(config.DefaultTimeOfDay, draft.TimeOfDay, config.MaxLabelLength),
		kids:      kids,
	}
	for i, kid := range kids {
		if kid.ID == draft.AssignedKidID {
			f.kidIdx = i
		}
	}
	for i, c := range models.Categories {
		if c == draft.Category {
			f.catIdx = i
		}
	}
	f.title.Focus()
	return f
}

func (f *missionForm) input(field formField) *textinput.Model {
	switch field {
	case fieldTitle:
		return &f.title
	case fieldDetails:
		return &f.details
	case fieldReward:
		return &f.reward
	case fieldDue:
		return &f.due
	case fieldTimeOfDay:
		return &f.timeOfDay
	}
	return nil
}

func (f *missionForm) setFocus(field formField) tea.Cmd {
	if in := f.input(f.focus); in != nil {
		in.Blur()
	}
	f.focus = (field + fieldCount) % fieldCount
	if in := f.input(f.focus); in != nil {
		return in.Focus()
	}
	return nil
}

func (f *missionForm) cycle(delta int) {
	switch f.focus {
	case fieldKid:
		if len(f.kids) > 0 {
			f.kidIdx = (f.kidIdx + delta + len(f.kids)) % len(f.kids)
		}
	case fieldCategory:
		n := len(models.Categories)
		f.catIdx = (f.catIdx + delta + n) % n
	}
}

func digitsOnly(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Update handles the keys that stay inside the form. Enter and esc are
// handled by the model.
func (f missionForm) Update(msg tea.Msg) (missionForm, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if in := f.input(f.focus); in != nil {
			var cmd tea.Cmd
			*in, cmd = in.Update(msg)
			return f, cmd
		}
		return f, nil
	}
	switch keyMsg.String() {
	case "tab", "down":
		return f, f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return f, f.setFocus(f.focus - 1)
	case "left":
		if f.input(f.focus) == nil {
			f.cycle(-1)
			return f, nil
		}
	case "right":
		if f.input(f.focus) == nil {
			f.cycle(1)
			return f, nil
		}
	}
	in := f.input(f.focus)
	if in == nil {
		return f, nil
	}
	if f.focus == fieldReward && keyMsg.Type == tea.KeyRunes && !digitsOnly(keyMsg.Runes) {
		return f, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(keyMsg)
	return f, cmd
}

// clampReward reads the reward field, clamped to the range the builder
// offers. Anything unparsable counts as the minimum.
func clampReward(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return config.MinReward
	}
	return util.Clamp(n, config.MinReward, config.MaxFormReward)
}

func (f missionForm) kidID() string {
	if f.kidIdx < 0 || f.kidIdx >= len(f.kids) {
		return ""
	}
	return f.kids[f.kidIdx].ID
}

func (f missionForm) Draft() models.Draft {
	return models.Draft{
		Title:         f.title.Value(),
		Description:   f.details.Value(),
		Category:      models.Categories[f.catIdx],
		Reward:        clampReward(f.reward.Value()),
		AssignedKidID: f.kidID(),
		DueLabel:      f.due.Value(),
		TimeOfDay:     f.timeOfDay.Value(),
	}
}

func (f missionForm) preview() string {
	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		title = previewPlaceholder
	}
	return fmt.Sprintf("%s · +%d pts", title, clampReward(f.reward.Value()))
}

func (f missionForm) selector(field formField) string {
	switch field {
	case fieldKid:
		if len(f.kids) == 0 {
			return "nobody on the crew yet"
		}
		kid := f.kids[f.kidIdx]
		return fmt.Sprintf("‹ %s %s ›", kid.Icon, kid.Name)
	case fieldCategory:
		c := models.Categories[f.catIdx]
		return fmt.Sprintf("‹ %s %s ›", c.Icon(), c)
	}
	return ""
}

func (f missionForm) View(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Header.Render("Mission builder") + "\n")
	b.WriteString(theme.Dim.Render("Create a new quest for the crew") + "\n\n")
	for field := formField(0); field < fieldCount; field++ {
		label := fmt.Sprintf("%-13s", fieldLabels[field])
		marker := "  "
		labelStyle := theme.Dim
		if field == f.focus {
			marker = theme.Focused.Render("> ")
			labelStyle = theme.Focused
		}
		value := f.selector(field)
		if in := f.input(field); in != nil {
			value = in.View()
		}
		b.WriteString(marker + labelStyle.Render(label) + value + "\n")
	}
	b.WriteString("\n" + theme.Reward.Render("Preview: "+f.preview()) + "\n")
	b.WriteString(theme.Dim.Render("[enter] Add | [tab] Next | [←/→] Change | [esc] Cancel"))
	return theme.Input.Render(b.String())
}
