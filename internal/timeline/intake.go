package timeline

import (
	"time"

	"career-pivot/internal/model"
)

// IntakeMonth is the only month graduate programs admit students.
const IntakeMonth = time.September

// NextIntake returns the first program start a person can make after the
// given date. A date anywhere in September or later has missed that year's
// intake, including September 1 itself.
func NextIntake(after model.Date) model.Date {
	y := after.Year()
	if after.Month() >= IntakeMonth {
		y++
	}
	return model.NewDate(y, IntakeMonth, 1)
}
