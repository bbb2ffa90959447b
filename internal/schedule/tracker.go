package schedule

import "github.com/m4tyn0/HAL9001/internal/domain"

// CompletionRate returns the fraction of completed items in [0, 1].
// A schedule with no items has rate 0.
func CompletionRate(s *domain.DaySchedule) float64 {
	if len(s.Items) == 0 {
		return 0
	}
	done := 0
	for i := range s.Items {
		if s.Items[i].Completed {
			done++
		}
	}
	return float64(done) / float64(len(s.Items))
}
