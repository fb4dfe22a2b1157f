package period

import "time"

// BeginningOfDay возвращает 00:00:00 календарного дня t в зоне loc.
func BeginningOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDay возвращает 23:59:59 календарного дня t в зоне loc (без долей секунды).
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 23, 59, 59, 0, loc)
}

// FirstDayOfMonth возвращает начало первого дня месяца, в который попадает t.
func FirstDayOfMonth(t time.Time, loc *time.Location) time.Time {
	y, m, _ := t.In(loc).Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, loc)
}

// LastDayOfMonth возвращает конец последнего дня месяца, в который попадает t.
// Нулевой день следующего месяца нормализуется time.Date в последний день текущего.
func LastDayOfMonth(t time.Time, loc *time.Location) time.Time {
	y, m, _ := t.In(loc).Date()
	return time.Date(y, m+1, 0, 23, 59, 59, 0, loc)
}

// WeekStart возвращает начало понедельника недели, содержащей t.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	day := BeginningOfDay(t, loc)
	offset := int(day.Weekday())
	if offset == 0 {
		offset = 7
	}
	return day.AddDate(0, 0, 1-offset)
}

// QuarterFirstMonth возвращает первый месяц квартала: январь, апрель, июль или октябрь.
func QuarterFirstMonth(m time.Month) time.Month {
	return time.Month((int(m)-1)/3*3 + 1)
}

// QuarterStart возвращает 00:00:00 первого дня квартала, содержащего t.
func QuarterStart(t time.Time, loc *time.Location) time.Time {
	y, m, _ := t.In(loc).Date()
	return time.Date(y, QuarterFirstMonth(m), 1, 0, 0, 0, 0, loc)
}

// QuarterEnd возвращает 23:59:59 последнего дня третьего месяца квартала.
func QuarterEnd(t time.Time, loc *time.Location) time.Time {
	y, m, _ := t.In(loc).Date()
	return time.Date(y, QuarterFirstMonth(m)+3, 0, 23, 59, 59, 0, loc)
}

// DaysBetween считает разницу в календарных днях между датами from и to в зоне loc.
// Переходы на летнее время не влияют на результат. Разница считается в секундах Unix,
// а не через time.Duration, которая переполняется на диапазонах длиннее ~292 лет.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
