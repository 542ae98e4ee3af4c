package allowance

import (
	"sort"
	"time"

	domain "github.com/nurihr/allowance-backend-go/internal/domain/allowance"
	"github.com/nurihr/allowance-backend-go/internal/domain/movement"
	"github.com/nurihr/allowance-backend-go/internal/pkg/dateutil"
)

// employmentState tags the state machine driven by the movement log.
type employmentState int

const (
	stateActive employmentState = iota
	stateInactive
	stateOnStudy
)

const studyRemark = "on study leave"

// ResolveWorkPeriods derives the active-employment date ranges within
// [monthStart, monthEnd] from the citizen's movement log, plus an optional
// remark explaining an inactive month (study leave).
//
// Events before the month are replayed to find the month-start state; a
// citizen with history but no prior ENTRY is presumed active, and a citizen
// with no movement history at all is active for the whole month. In-month
// events are applied in (effective date, creation order):
//
//   - STUDY closes any open period the day before and remarks the result.
//   - An exit (RESIGN, RETIRE, DEATH, TRANSFER_OUT) closes the open period
//     the day before the event.
//   - ENTRY opens a new period, unless it lands within one calendar day of
//     a RESIGN or TRANSFER_OUT, in which case the just-closed period is
//     resumed so the pair reads as continuous service.
//
// Returned periods are sorted, non-overlapping, and clamped to the month.
func ResolveWorkPeriods(events []movement.Event, monthStart, monthEnd time.Time) ([]domain.WorkPeriod, string) {
	if len(events) == 0 {
		return []domain.WorkPeriod{{Start: monthStart, End: monthEnd}}, ""
	}

	sorted := make([]movement.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].EffectiveDate.Equal(sorted[j].EffectiveDate) {
			return sorted[i].Seq < sorted[j].Seq
		}
		return sorted[i].EffectiveDate.Before(sorted[j].EffectiveDate)
	})

	state := stateActive
	remark := ""

	var inMonth []movement.Event
	for _, ev := range sorted {
		ev.EffectiveDate = dateutil.Normalize(ev.EffectiveDate)
		if ev.EffectiveDate.Before(monthStart) {
			switch {
			case ev.Type == movement.EventEntry:
				state = stateActive
				remark = ""
			case ev.Type == movement.EventStudy:
				state = stateOnStudy
				remark = studyRemark
			case ev.Type.IsExit():
				state = stateInactive
				remark = ""
			}
			continue
		}
		if !ev.EffectiveDate.After(monthEnd) {
			inMonth = append(inMonth, ev)
		}
	}

	var periods []domain.WorkPeriod
	var openStart *time.Time
	if state == stateActive {
		s := monthStart
		openStart = &s
	}

	closePeriod := func(end time.Time) {
		if openStart == nil {
			return
		}
		// an exit on the opening day leaves nothing to keep
		if !end.Before(*openStart) {
			periods = append(periods, domain.WorkPeriod{Start: *openStart, End: end})
		}
		openStart = nil
	}

	var lastExit *movement.Event
	for i := range inMonth {
		ev := inMonth[i]
		day := ev.EffectiveDate

		switch {
		case ev.Type == movement.EventStudy:
			closePeriod(day.AddDate(0, 0, -1))
			state = stateOnStudy
			remark = studyRemark
			lastExit = nil

		case ev.Type == movement.EventEntry:
			if state == stateActive {
				break
			}
			if lastExit != nil && lastExit.Type.Swappable() &&
				dateutil.DaysBetween(lastExit.EffectiveDate, day) <= 1 &&
				len(periods) > 0 {
				// same-day or next-day re-entry: resume the period the
				// exit just closed instead of leaving a gap
				resumed := periods[len(periods)-1]
				periods = periods[:len(periods)-1]
				openStart = &resumed.Start
			} else {
				start := day
				if start.Before(monthStart) {
					start = monthStart
				}
				openStart = &start
			}
			state = stateActive
			remark = ""
			lastExit = nil

		case ev.Type.IsExit():
			end := day.AddDate(0, 0, -1)
			if end.After(monthEnd) {
				end = monthEnd
			}
			closePeriod(end)
			state = stateInactive
			lastExit = &inMonth[i]
		}
	}

	if openStart != nil {
		closePeriod(monthEnd)
	}

	return periods, remark
}
