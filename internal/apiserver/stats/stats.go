// Package stats computes the dashboard aggregates. All functions are pure:
// they take rows already loaded from the database and a reference time, so
// the numbers are reproducible in tests.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/cnst"
)

// ProcessStats summarizes one user's call progress across a set of process rows.
type ProcessStats struct {
	UniqueSheets         int `json:"uniqueSheets"`
	TotalTasks           int `json:"totalTasks"`
	CompletedTasks       int `json:"completedTasks"`
	RemainingTasks       int `json:"remainingTasks"`
	CompletionPercentage int `json:"completionPercentage"`
}

// TaskStats summarizes the tasks visible to one user.
type TaskStats struct {
	TotalTasks           int `json:"totalTasks"`
	DueTasks             int `json:"dueTasks"`
	CompleteTasks        int `json:"completeTasks"`
	CompleteOnTimeTasks  int `json:"completeOnTimeTasks"`
	CompletionPercentage int `json:"completionPercentage"`
}

// ProcessSummary counts each distinct non-empty sheet as three expected calls
// and each attended flag set to true as one completed call.
func ProcessSummary(rows []*database.Process) ProcessStats {
	sheets := make(map[string]struct{})
	completed := 0
	for _, p := range rows {
		if p.SheetName != "" {
			sheets[p.SheetName] = struct{}{}
		}
		for _, flag := range []*bool{p.Call1Attended, p.Call2Attended, p.Call3Attended} {
			if flag != nil && *flag {
				completed++
			}
		}
	}
	total := len(sheets) * 3
	remaining := total - completed
	if remaining < 0 {
		remaining = 0
	}
	return ProcessStats{
		UniqueSheets:         len(sheets),
		TotalTasks:           total,
		CompletedTasks:       completed,
		RemainingTasks:       remaining,
		CompletionPercentage: percentage(completed, total),
	}
}

// TaskSummary aggregates the given tasks against the reference time. Due
// means the deadline is still ahead and the task is not done; on time means
// the last update landed before the deadline.
func TaskSummary(tasks []*database.Task, now time.Time) TaskStats {
	s := TaskStats{TotalTasks: len(tasks)}
	for _, t := range tasks {
		done := t.TaskStatus == cnst.TaskStatusDone
		if !done && t.DueTime.After(now) {
			s.DueTasks++
		}
		if done {
			s.CompleteTasks++
			if !t.UpdatedAt.After(t.DueTime) {
				s.CompleteOnTimeTasks++
			}
		}
	}
	s.CompletionPercentage = percentage(s.CompleteTasks, s.TotalTasks)
	return s
}

// Ranking orders task creators by how many of their tasks are done and
// returns the 1-based rank of userID, or 0 when the user created no tasks.
// Ties keep the order in which creators first appear in the input.
func Ranking(allTasks []*database.Task, userID string) int {
	counts := make(map[string]int)
	var order []string
	for _, t := range allTasks {
		if _, seen := counts[t.UserID]; !seen {
			counts[t.UserID] = 0
			order = append(order, t.UserID)
		}
		if t.TaskStatus == cnst.TaskStatusDone {
			counts[t.UserID]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	for i, id := range order {
		if id == userID {
			return i + 1
		}
	}
	return 0
}

// percentage rounds completed/total to the nearest whole percent, 0 when the
// denominator is 0.
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
