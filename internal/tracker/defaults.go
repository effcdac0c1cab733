package tracker

import (
	"time"

	"github.com/akyairhashvil/kidquest/internal/models"
)

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func seedTimePtr(value string) *time.Time {
	t := seedTime(value)
	return &t
}

// DefaultKids returns a fresh copy of the built-in crew.
func DefaultKids() []models.Kid {
	return []models.Kid{
		{
			ID:            "luna",
			Name:          "Luna",
			Age:           9,
			Icon:          "🦊",
			FavoriteColor: "#7c8dff",
			Focus:         "Morning hero",
			Badges:        []string{"Early Bird", "Laundry Star"},
			Points:        45,
			Streak:        6,
		},
		{
			ID:            "milo",
			Name:          "Milo",
			Age:           7,
			Icon:          "🐻",
			FavoriteColor: "#ffb973",
			Focus:         "After-school ace",
			Badges:        []string{"Homework Pro", "Snack Helper"},
			Points:        38,
			Streak:        4,
		},
		{
			ID:            "nova",
			Name:          "Nova",
			Age:           11,
			Icon:          "🐯",
			FavoriteColor: "#53e0c0",
			Focus:         "Bedtime boss",
			Badges:        []string{"Plant Whisperer", "Reading Rocket"},
			Points:        52,
			Streak:        8,
		},
	}
}

// DefaultTasks returns a fresh copy of the built-in missions.
func DefaultTasks() []models.Task {
	return []models.Task{
		{
			ID:            "task-bed",
			Title:         "Make your bed",
			Description:   "Smooth the sheets, fluff the pillows, and line up plushies.",
			Category:      models.CategoryMorning,
			Reward:        5,
			Status:        models.StatusTodo,
			AssignedKidID: "luna",
			DueLabel:      "Before breakfast",
			TimeOfDay:     "Sunrise",
			Icon:          "🛏️",
			CreatedAt:     seedTime("2024-05-01T08:00:00.000Z"),
		},
		{
			ID:            "task-pet",
			Title:         "Feed Pixel the cat",
			Description:   "Scoop 1 cup of food and refresh the water dish.",
			Category:      models.CategoryMorning,
			Reward:        7,
			Status:        models.StatusDone,
			AssignedKidID: "luna",
			DueLabel:      "7:15 am sharp",
			TimeOfDay:     "Sunrise",
			Icon:          "🐱",
			CreatedAt:     seedTime("2024-05-01T07:50:00.000Z"),
			CompletedAt:   seedTimePtr("2024-05-01T07:52:00.000Z"),
		},
		{
			ID:            "task-pack",
			Title:         "Pack homework folder",
			Description:   "Check the planner and tuck finished sheets inside.",
			Category:      models.CategoryAfterSchool,
			Reward:        6,
			Status:        models.StatusTodo,
			AssignedKidID: "milo",
			DueLabel:      "Before dinner",
			TimeOfDay:     "Afternoon",
			Icon:          "📚",
			CreatedAt:     seedTime("2024-05-01T18:00:00.000Z"),
		},
		{
			ID:            "task-snack",
			Title:         "Prep fruit snack bowls",
			Description:   "Rinse berries and split them into two small bowls.",
			Category:      models.CategoryChores,
			Reward:        4,
			Status:        models.StatusTodo,
			AssignedKidID: "milo",
			DueLabel:      "After homework",
			TimeOfDay:     "Afternoon",
			Icon:          "🍓",
			CreatedAt:     seedTime("2024-05-01T18:05:00.000Z"),
		},
		{
			ID:            "task-plants",
			Title:         "Water the plant wall",
			Description:   "Give each plant 1 squeeze bottle and mist the mint leaves.",
			Category:      models.CategoryChores,
			Reward:        8,
			Status:        models.StatusTodo,
			AssignedKidID: "nova",
			DueLabel:      "Before sunset",
			TimeOfDay:     "Evening",
			Icon:          "🪴",
			CreatedAt:     seedTime("2024-05-01T17:00:00.000Z"),
		},
		{
			ID:            "task-reading",
			Title:         "Read for 20 minutes",
			Description:   "Pick a graphic novel and curl up on the beanbag.",
			Category:      models.CategoryAfterSchool,
			Reward:        9,
			Status:        models.StatusDone,
			AssignedKidID: "nova",
			DueLabel:      "7:30 pm lights-out",
			TimeOfDay:     "Evening",
			Icon:          "📖",
			CreatedAt:     seedTime("2024-05-01T19:00:00.000Z"),
			CompletedAt:   seedTimePtr("2024-05-01T19:25:00.000Z"),
		},
		{
			ID:            "task-kindness",
			Title:         "Kindness high-five",
			Description:   "Leave a sticky note compliment for someone in the house.",
			Category:      models.CategoryBonus,
			Reward:        10,
			Status:        models.StatusTodo,
			AssignedKidID: "milo",
			DueLabel:      "Anytime today",
			TimeOfDay:     "All day",
			Icon:          "💌",
			CreatedAt:     seedTime("2024-05-01T12:00:00.000Z"),
		},
		{
			ID:            "task-art",
			Title:         "Sort the art shelf",
			Description:   "Snap markers closed and recycle dry ones.",
			Category:      models.CategoryBonus,
			Reward:        7,
			Status:        models.StatusTodo,
			AssignedKidID: "luna",
			DueLabel:      "Weekend bonus",
			TimeOfDay:     "Weekend",
			Icon:          "🎨",
			CreatedAt:     seedTime("2024-05-01T16:00:00.000Z"),
		},
	}
}

// DefaultState bundles the default crew and missions.
func DefaultState() models.TrackerState {
	return models.TrackerState{Kids: DefaultKids(), Tasks: DefaultTasks()}
}
