package tracker

import (
	"sort"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/util"
)

// Stats are the household-wide numbers shown in the header.
type Stats struct {
	Total         int
	Completed     int
	Remaining     int
	Progress      int // percent, 0..100
	TotalPoints   int
	HighestStreak int
}

// ComputeStats aggregates over both collections.
func ComputeStats(kids []models.Kid, tasks []models.Task) Stats {
	completed := 0
	for _, task := range tasks {
		if task.Done() {
			completed++
		}
	}
	stats := Stats{
		Total:     len(tasks),
		Completed: completed,
		Remaining: util.FloorZero(len(tasks) - completed),
		Progress:  util.Percent(completed, len(tasks)),
	}
	for _, kid := range kids {
		stats.TotalPoints += kid.Points
		if kid.Streak > stats.HighestStreak {
			stats.HighestStreak = kid.Streak
		}
	}
	return stats
}

// FilterCounts are the badge numbers on the mission board tabs.
type FilterCounts struct {
	Today     int
	Completed int
	Bonus     int
}

// For returns the count shown on filter's tab.
func (c FilterCounts) For(filter models.FilterID) int {
	switch filter.Normalize() {
	case models.FilterCompleted:
		return c.Completed
	case models.FilterBonus:
		return c.Bonus
	}
	return c.Today
}

func CountFilters(tasks []models.Task) FilterCounts {
	var c FilterCounts
	for _, task := range tasks {
		if task.Done() {
			c.Completed++
		} else {
			c.Today++
		}
		if task.Category == models.CategoryBonus {
			c.Bonus++
		}
	}
	return c
}

// Leaderboard orders kids by points, highest first. Ties keep crew order.
func Leaderboard(kids []models.Kid) []models.Kid {
	out := make([]models.Kid, len(kids))
	copy(out, kids)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out
}

// LeaderID is the id of the top kid, or "" for an empty crew.
func LeaderID(kids []models.Kid) string {
	board := Leaderboard(kids)
	if len(board) == 0 {
		return ""
	}
	return board[0].ID
}

// VisibleTasks selects the tasks filter shows, in sequence order.
func VisibleTasks(tasks []models.Task, filter models.FilterID) []models.Task {
	var keep func(models.Task) bool
	switch filter.Normalize() {
	case models.FilterCompleted:
		keep = func(t models.Task) bool { return t.Done() }
	case models.FilterBonus:
		keep = func(t models.Task) bool { return t.Category == models.CategoryBonus }
	default:
		keep = func(t models.Task) bool { return !t.Done() }
	}
	out := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if keep(task) {
			out = append(out, task)
		}
	}
	return out
}

// Upcoming returns up to limit open tasks, oldest first.
func Upcoming(tasks []models.Task, limit int) []models.Task {
	open := VisibleTasks(tasks, models.FilterToday)
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].CreatedAt.Before(open[j].CreatedAt)
	})
	if limit >= 0 && len(open) > limit {
		open = open[:limit]
	}
	return open
}

// Level is 1 plus one per PointsPerLevel points, never below 1.
func Level(points int) int {
	level := points/config.PointsPerLevel + 1
	if level < 1 {
		return 1
	}
	return level
}

// KidRollup is one kid card on the dashboard.
type KidRollup struct {
	Kid         models.Kid
	Tasks       []models.Task
	Completed   int
	Remaining   int
	Progress    int
	NextMission *models.Task
	Level       int
	Leader      bool
}

// KidRollups builds a card per kid in crew order.
func KidRollups(kids []models.Kid, tasks []models.Task) []KidRollup {
	leader := LeaderID(kids)
	out := make([]KidRollup, 0, len(kids))
	for _, kid := range kids {
		r := KidRollup{Kid: kid, Level: Level(kid.Points), Leader: kid.ID == leader}
		for i := range tasks {
			task := tasks[i]
			if task.AssignedKidID != kid.ID {
				continue
			}
			r.Tasks = append(r.Tasks, task)
			if task.Done() {
				r.Completed++
			} else if r.NextMission == nil {
				next := task
				r.NextMission = &next
			}
		}
		r.Remaining = util.FloorZero(len(r.Tasks) - r.Completed)
		r.Progress = util.Percent(r.Completed, len(r.Tasks))
		out = append(out, r)
	}
	return out
}
