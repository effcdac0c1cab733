package models

import "time"

// TaskStatus enumerates the two states of a mission.
type TaskStatus string

const (
	StatusTodo TaskStatus = "todo"
	StatusDone TaskStatus = "done"
)

// Next returns the status a toggle moves to.
func (s TaskStatus) Next() TaskStatus {
	if s == StatusDone {
		return StatusTodo
	}
	return StatusDone
}

// Category groups missions by when or why they happen.
type Category string

const (
	CategoryMorning     Category = "Morning"
	CategoryAfterSchool Category = "After School"
	CategoryChores      Category = "Chores"
	CategoryBonus       Category = "Bonus"
)

// Categories lists every category in picker order.
var Categories = []Category{CategoryMorning, CategoryAfterSchool, CategoryChores, CategoryBonus}

var categoryIcons = map[Category]string{
	CategoryMorning:     "🌅",
	CategoryAfterSchool: "🎒",
	CategoryChores:      "🧹",
	CategoryBonus:       "⭐",
}

// Icon returns the fixed icon for the category, or "" for unknown values.
func (c Category) Icon() string {
	return categoryIcons[c]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryIcons[c]
	return ok
}

// Slug is the lowercase, hyphenated form used for styling lookups.
func (c Category) Slug() string {
	switch c {
	case CategoryMorning:
		return "morning"
	case CategoryAfterSchool:
		return "after-school"
	case CategoryChores:
		return "chores"
	case CategoryBonus:
		return "bonus"
	}
	return ""
}

// Kid is a child on the crew. Points and Streak never go below zero.
type Kid struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Icon          string   `json:"icon"`
	FavoriteColor string   `json:"favoriteColor"`
	Focus         string   `json:"focus"`
	Badges        []string `json:"badges"`
	Points        int      `json:"points"`
	Streak        int      `json:"streak"`
}

// Task is a single mission owned by one kid. CompletedAt is set exactly when
// Status is StatusDone.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      Category   `json:"category"`
	Reward        int        `json:"reward"`
	Status        TaskStatus `json:"status"`
	AssignedKidID string     `json:"assignedKidId"`
	DueLabel      string     `json:"dueLabel"`
	TimeOfDay     string     `json:"timeOfDay"`
	Icon          string     `json:"icon"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// Done reports whether the mission is finished.
func (t Task) Done() bool {
	return t.Status == StatusDone
}

// TrackerState is the persisted blob: both collections, serialized together.
type TrackerState struct {
	Kids  []Kid  `json:"kids"`
	Tasks []Task `json:"tasks"`
}

// FilterID selects which tasks the mission board shows.
type FilterID string

const (
	FilterToday     FilterID = "today"
	FilterCompleted FilterID = "completed"
	FilterBonus     FilterID = "bonus"
)

// FilterOption describes a mission board tab.
type FilterOption struct {
	ID    FilterID
	Label string
	Hint  string
}

// FilterOptions lists the board tabs in display order.
var FilterOptions = []FilterOption{
	{ID: FilterToday, Label: "Today", Hint: "Active missions"},
	{ID: FilterCompleted, Label: "High fives", Hint: "Finished tasks"},
	{ID: FilterBonus, Label: "Bonus boosts", Hint: "Extra rewards"},
}

// Normalize maps unknown filters to FilterToday.
func (f FilterID) Normalize() FilterID {
	switch f {
	case FilterCompleted, FilterBonus:
		return f
	}
	return FilterToday
}

// Draft is the mission builder's working copy of a new task.
type Draft struct {
	Title         string
	Description   string
	Category      Category
	Reward        int
	AssignedKidID string
	DueLabel      string
	TimeOfDay     string
}
