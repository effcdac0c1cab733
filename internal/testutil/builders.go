package testutil

import (
	"time"

	"github.com/akyairhashvil/kidquest/internal/models"
)

// Epoch is the fixed creation time builders start from.
var Epoch = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

// KidBuilder provides fluent API for creating test kids.
type KidBuilder struct {
	kid models.Kid
}

func NewKid(id string) *KidBuilder {
	return &KidBuilder{
		kid: models.Kid{
			ID:     id,
			Name:   id,
			Age:    8,
			Icon:   "🦊",
			Badges: []string{},
		},
	}
}

func (b *KidBuilder) WithName(name string) *KidBuilder {
	b.kid.Name = name
	return b
}

func (b *KidBuilder) WithPoints(p int) *KidBuilder {
	b.kid.Points = p
	return b
}

func (b *KidBuilder) WithStreak(s int) *KidBuilder {
	b.kid.Streak = s
	return b
}

func (b *KidBuilder) WithBadges(badges ...string) *KidBuilder {
	b.kid.Badges = badges
	return b
}

func (b *KidBuilder) Build() models.Kid {
	return b.kid
}

// TaskBuilder provides fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask(id, kidID string) *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:            id,
			Title:         "Test Task",
			Description:   "Test description",
			Category:      models.CategoryChores,
			Reward:        5,
			Status:        models.StatusTodo,
			AssignedKidID: kidID,
			Icon:          models.CategoryChores.Icon(),
			CreatedAt:     Epoch,
		},
	}
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithReward(r int) *TaskBuilder {
	b.task.Reward = r
	return b
}

func (b *TaskBuilder) WithCategory(c models.Category) *TaskBuilder {
	b.task.Category = c
	b.task.Icon = c.Icon()
	return b
}

// Done marks the task finished a minute after creation.
func (b *TaskBuilder) Done() *TaskBuilder {
	b.task.Status = models.StatusDone
	completed := b.task.CreatedAt.Add(time.Minute)
	b.task.CompletedAt = &completed
	return b
}

// CreatedAfter offsets creation from Epoch.
func (b *TaskBuilder) CreatedAfter(d time.Duration) *TaskBuilder {
	b.task.CreatedAt = Epoch.Add(d)
	if b.task.CompletedAt != nil {
		completed := b.task.CreatedAt.Add(time.Minute)
		b.task.CompletedAt = &completed
	}
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}
