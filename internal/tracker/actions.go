package tracker

import (
	"strings"
	"time"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/util"
)

// change reports what an action touched.
type change struct {
	applied bool
	kids    bool
	tasks   bool
}

// Action is a state transition applied by Store.Dispatch.
type Action interface {
	apply(s *Store, now time.Time) change
}

// ToggleTask flips a task between todo and done and moves the owner's points
// and streak with it. Unknown ids are ignored.
type ToggleTask struct {
	ID string
}

func (a ToggleTask) apply(s *Store, now time.Time) change {
	idx := s.taskIndex(a.ID)
	if idx < 0 {
		return change{}
	}
	target := s.tasks[idx]
	next := target.Status.Next()

	updated := target
	updated.Status = next
	pointsDelta, streakDelta := target.Reward, 1
	if next == models.StatusDone {
		stamp := now.UTC()
		updated.CompletedAt = &stamp
	} else {
		updated.CompletedAt = nil
		pointsDelta, streakDelta = -pointsDelta, -streakDelta
	}

	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	tasks[idx] = updated

	kids := make([]models.Kid, len(s.kids))
	copy(kids, s.kids)
	for i := range kids {
		if kids[i].ID != target.AssignedKidID {
			continue
		}
		kids[i].Points = util.FloorZero(kids[i].Points + pointsDelta)
		kids[i].Streak = util.FloorZero(kids[i].Streak + streakDelta)
	}

	s.tasks, s.kids = tasks, kids
	return change{applied: true, kids: true, tasks: true}
}

// CreateTask submits the current draft as a new mission. It is rejected
// when the title is blank or no kid is assigned.
type CreateTask struct{}

func (CreateTask) apply(s *Store, now time.Time) change {
	draft := s.draft
	title := strings.TrimSpace(draft.Title)
	if title == "" || draft.AssignedKidID == "" {
		return change{}
	}
	description := strings.TrimSpace(draft.Description)
	if description == "" {
		description = config.DefaultDescription
	}
	category := draft.Category
	if !category.Valid() {
		category = models.CategoryMorning
	}
	reward := draft.Reward
	if reward < config.MinReward {
		reward = config.MinReward
	}

	task := models.Task{
		ID:            s.newTaskID(),
		Title:         title,
		Description:   description,
		Category:      category,
		Reward:        reward,
		Status:        models.StatusTodo,
		AssignedKidID: draft.AssignedKidID,
		DueLabel:      draft.DueLabel,
		TimeOfDay:     draft.TimeOfDay,
		Icon:          category.Icon(),
		CreatedAt:     now.UTC(),
	}

	tasks := make([]models.Task, 0, len(s.tasks)+1)
	tasks = append(tasks, task)
	tasks = append(tasks, s.tasks...)
	s.tasks = tasks

	s.draft.Title = ""
	s.draft.Description = ""
	s.filter = models.FilterToday
	return change{applied: true, tasks: true}
}

// SetFilter switches the mission board tab. Unknown filters select today.
type SetFilter struct {
	Filter models.FilterID
}

func (a SetFilter) apply(s *Store, _ time.Time) change {
	s.filter = a.Filter.Normalize()
	return change{applied: true}
}

// UpdateDraft replaces the mission builder's draft. The assigned kid is
// reconciled against the crew afterwards.
type UpdateDraft struct {
	Draft models.Draft
}

func (a UpdateDraft) apply(s *Store, _ time.Time) change {
	s.draft = reconcileDraft(a.Draft, s.kids)
	return change{applied: true}
}

// RestoreState replaces both collections, as when importing a backup.
type RestoreState struct {
	State models.TrackerState
}

func (a RestoreState) apply(s *Store, _ time.Time) change {
	kids := make([]models.Kid, len(a.State.Kids))
	copy(kids, a.State.Kids)
	tasks := make([]models.Task, len(a.State.Tasks))
	copy(tasks, a.State.Tasks)
	s.kids, s.tasks = kids, tasks
	return change{applied: true, kids: true, tasks: true}
}
