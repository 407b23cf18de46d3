package analytics

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
)

// Phase boundaries are cycle days on a 28-day reference cycle. They are not scaled
// for other cycle lengths.
const (
	menstruationLastDay = 5
	follicularLastDay   = 13
	ovulationLastDay    = 16
)

// PhaseOf maps date to a phase of the cycle that started at start. Callers without
// a known start must report models.PhaseUnknown instead of calling this.
func PhaseOf(date, start time.Time, length int) models.Phase {
	return PhaseForDay(CycleDayOf(date, start, length))
}

// PhaseForDay maps a 1-based cycle day to its phase.
func PhaseForDay(cycleDay int) models.Phase {
	switch {
	case cycleDay < 1:
		return models.PhaseLuteal
	case cycleDay <= menstruationLastDay:
		return models.PhaseMenstruation
	case cycleDay <= follicularLastDay:
		return models.PhaseFollicular
	case cycleDay <= ovulationLastDay:
		return models.PhaseOvulation
	default:
		return models.PhaseLuteal
	}
}

// PhaseDescription is the user facing copy for a phase.
type PhaseDescription struct {
	Name         string
	Description  string
	ExpectedMood string
}

var phaseCopy = map[models.Phase]PhaseDescription{
	models.PhaseMenstruation: {
		Description:  "Menstruation phase - period is active",
		ExpectedMood: "May feel tired, irritable, or experience physical discomfort",
	},
	models.PhaseFollicular: {
		Description:  "Follicular phase - energy typically increasing",
		ExpectedMood: "Usually feel more energetic, positive, and social",
	},
	models.PhaseOvulation: {
		Description:  "Ovulation phase - peak fertility",
		ExpectedMood: "Often feel confident, outgoing, and energetic",
	},
	models.PhaseLuteal: {
		Description:  "Luteal phase - approaching next period",
		ExpectedMood: "May experience PMS symptoms, mood swings, anxiety",
	},
}

// DescribePhase returns the display copy of a phase. Unknown phases get only a name.
func DescribePhase(phase models.Phase) PhaseDescription {
	d := phaseCopy[phase]
	d.Name = cases.Title(language.English).String(string(phase))
	return d
}

// CurrentPhase describes where asOf falls in the profile's cycle. The phase is
// models.PhaseUnknown when tracking is off or no period start was logged.
func CurrentPhase(profile *models.CycleProfile, asOf time.Time) models.PhaseInfo {
	if profile == nil || !profile.IsTracking || profile.LastPeriodStart == nil {
		return models.PhaseInfo{Phase: models.PhaseUnknown}
	}

	length := profile.CycleLength()
	cycleDay := CycleDayOf(asOf, *profile.LastPeriodStart, length)
	phase := PhaseForDay(cycleDay)
	d := DescribePhase(phase)

	return models.PhaseInfo{
		Phase:               phase,
		CycleDay:            cycleDay,
		Description:         d.Description,
		ExpectedMood:        d.ExpectedMood,
		NextPeriod:          profile.NextPredictedPeriod,
		DaysUntilNextPeriod: max(0, length-cycleDay),
	}
}
