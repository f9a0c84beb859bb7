package domain

import (
	"errors"
	"math"
	"time"

	"cloud.google.com/go/civil"
)

// ErrInvalidTZOffset смещение часового пояса не является конечным числом (или вне ±24ч)
var ErrInvalidTZOffset = errors.New("domain: invalid timezone offset")

// WorkWeek даты понедельник..пятница текущей недели пользователя
type WorkWeek [WorkWeekDays]civil.Date

// ComputeWorkWeek вычисляет рабочую неделю пользователя.
// tzOffsetMinutes - разница UTC - local в минутах (как getTimezoneOffset() в браузере).
// Локальная дата = дата (now в UTC - смещение); понедельник = сегодня + (вс ? -6 : 1 - деньНедели).
func ComputeWorkWeek(now time.Time, tzOffsetMinutes float64) (WorkWeek, error) {
	if math.IsNaN(tzOffsetMinutes) || math.IsInf(tzOffsetMinutes, 0) || math.Abs(tzOffsetMinutes) > MaxTZOffsetMinutes {
		return WorkWeek{}, ErrInvalidTZOffset
	}

	local := now.UTC().Add(-time.Duration(tzOffsetMinutes * float64(time.Minute)))
	today := civil.DateOf(local)

	dayOfWeek := int(local.Weekday())
	mondayOffset := 1 - dayOfWeek
	if dayOfWeek == 0 {
		mondayOffset = -6
	}
	monday := today.AddDays(mondayOffset)

	var week WorkWeek
	for i := range week {
		week[i] = monday.AddDays(i)
	}
	return week, nil
}

// Start понедельник
func (w WorkWeek) Start() civil.Date {
	return w[0]
}

// End пятница
func (w WorkWeek) End() civil.Date {
	return w[WorkWeekDays-1]
}

// Contains проверяет, что date входит в [Start, End] включительно
func (w WorkWeek) Contains(date civil.Date) bool {
	return !date.Before(w.Start()) && !date.After(w.End())
}

// Strings даты недели в формате YYYY-MM-DD
func (w WorkWeek) Strings() []string {
	result := make([]string, len(w))
	for i, d := range w {
		result[i] = d.String()
	}
	return result
}

// IndexOf возвращает индекс даты в неделе или -1
func (w WorkWeek) IndexOf(date civil.Date) int {
	for i, d := range w {
		if d == date {
			return i
		}
	}
	return -1
}

// ParseDate разбирает строгую дату YYYY-MM-DD
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, err
	}
	if !d.IsValid() {
		return civil.Date{}, errors.New("domain: invalid calendar date")
	}
	return d, nil
}
