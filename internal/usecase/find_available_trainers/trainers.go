package find_available_trainers

import (
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

// windowCovers reports whether one availability window covers the
// requested interval on its day. The interval must fit inside a single
// window; adjacent windows do not merge.
func windowCovers(w *domain.TrainerAvailability, start, end time.Time) bool {
	startTod := types.NewTimeString(start)
	endTod := types.NewTimeString(end)

	return !w.StartTime.IsAfter(startTod) && !w.EndTime.IsBefore(endTod)
}

// groupWindowsByTrainer indexes the day's windows by trainer id
func groupWindowsByTrainer(windows []*domain.TrainerAvailability) map[int64][]*domain.TrainerAvailability {
	grouped := make(map[int64][]*domain.TrainerAvailability, len(windows))
	for _, w := range windows {
		grouped[w.TrainerID] = append(grouped[w.TrainerID], w)
	}
	return grouped
}

// groupConflictsByTrainer indexes the overlapping active appointments by
// trainer id. The repository already filtered by status and interval, so
// presence of any entry means the trainer is not free.
func groupConflictsByTrainer(appointments []*domain.Appointment) map[int64]int {
	grouped := make(map[int64]int, len(appointments))
	for _, ap := range appointments {
		grouped[ap.TrainerID]++
	}
	return grouped
}

// selectBookable evaluates the available and free predicates per eligible
// trainer, preserving the repository's name order so the result order is
// deterministic and total
func selectBookable(
	eligible []*domain.Trainer,
	windows map[int64][]*domain.TrainerAvailability,
	conflicts map[int64]int,
	start, end time.Time,
) []Trainer {
	result := make([]Trainer, 0, len(eligible))

	for _, t := range eligible {
		covered := false
		for _, w := range windows[t.ID] {
			if windowCovers(w, start, end) {
				covered = true
				break
			}
		}
		if !covered {
			continue
		}

		if conflicts[t.ID] > 0 {
			continue
		}

		result = append(result, Trainer{ID: t.ID, FullName: t.FullName})
	}

	return result
}
