package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/akyairhashvil/kidquest/internal/tracker"
)

// writeSummary prints the dashboard as plain text for pipes and scripts.
func writeSummary(w io.Writer, store *tracker.Store) error {
	bw := bufio.NewWriter(w)
	stats := store.Stats()

	fmt.Fprintln(bw, "KidQuest mission summary")
	fmt.Fprintf(bw, "Missions: %d of %d complete (%d%%), %d left\n",
		stats.Completed, stats.Total, stats.Progress, stats.Remaining)
	fmt.Fprintf(bw, "Points bank: %d pts\n", stats.TotalPoints)
	fmt.Fprintf(bw, "High-five streak: %d days\n", stats.HighestStreak)

	fmt.Fprintln(bw, "\nLeaderboard")
	for i, kid := range store.Leaderboard() {
		fmt.Fprintf(bw, "  %d. %s  Level %d  %d pts  %d day streak\n",
			i+1, kid.Name, tracker.Level(kid.Points), kid.Points, kid.Streak)
	}

	fmt.Fprintln(bw, "\nNext up")
	upcoming := store.Upcoming()
	if len(upcoming) == 0 {
		fmt.Fprintln(bw, "  All missions completed — time for a dance party!")
	}
	for _, task := range upcoming {
		fmt.Fprintf(bw, "  - %s · %s · %s +%d pts\n",
			task.Title, store.KidName(task.AssignedKidID), task.DueLabel, task.Reward)
	}
	return bw.Flush()
}
