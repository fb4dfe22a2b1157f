// Package period вычисляет границы календарных периодов для отчётов и графиков:
// неделя, месяц, квартал, год и произвольный диапазон. Конец любого периода
// не может быть позже текущего момента.
package period

import (
	"strings"
	"time"
)

// DefaultFormat используется, когда формат отображения дат не задан.
const DefaultFormat = "2006-01-02"

// Clock отдаёт текущий момент. Calculator запрашивает его при каждой операции.
type Clock interface {
	Now() time.Time
}

// ClockFunc позволяет использовать обычную функцию как Clock.
type ClockFunc func() time.Time

// Now реализует Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock возвращает системное время.
var SystemClock Clock = ClockFunc(time.Now)

// Range — неизменяемый снимок вычисленного периода.
type Range struct {
	Type  Type
	Start time.Time
	End   time.Time
}

// Calculator хранит границы периода и изменяет их методами Set*/Apply.
// Экземпляр живёт в рамках одного запроса и не рассчитан на конкурентный доступ.
type Calculator struct {
	start  time.Time
	end    time.Time
	typ    Type
	format string
	loc    *time.Location
	clock  Clock
}

// New создаёт калькулятор с периодом "сегодня" и типом None.
// Пустой format заменяется на DefaultFormat, nil loc на UTC, nil clock на SystemClock.
func New(format string, loc *time.Location, clock Clock) *Calculator {
	if format == "" {
		format = DefaultFormat
	}
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = SystemClock
	}
	c := &Calculator{format: format, loc: loc, clock: clock, typ: None}
	now := c.now()
	c.start = BeginningOfDay(now, loc)
	c.end = EndOfDay(now, loc)
	return c
}

func (c *Calculator) now() time.Time {
	return c.clock.Now().In(c.loc).Truncate(time.Second)
}

func (c *Calculator) week(ref time.Time, weeksBack int) {
	if weeksBack < 1 {
		weeksBack = 1
	}
	c.start = WeekStart(ref, c.loc)
	sunday := c.start.AddDate(0, 0, 7*(weeksBack-1)+6)
	c.end = minTime(EndOfDay(sunday, c.loc), c.now())
}

func (c *Calculator) month(ref time.Time) {
	c.start = FirstDayOfMonth(ref, c.loc)
	c.end = minTime(LastDayOfMonth(ref, c.loc), c.now())
}

func (c *Calculator) quarter(ref time.Time) {
	c.start = QuarterStart(ref, c.loc)
	c.end = minTime(QuarterEnd(ref, c.loc), c.now())
}

func (c *Calculator) year(ref time.Time) {
	y := ref.In(c.loc).Year()
	c.start = time.Date(y, time.January, 1, 0, 0, 0, 0, c.loc)
	c.end = minTime(time.Date(y, time.December, 31, 23, 59, 59, 0, c.loc), c.now())
}

// monthsBack сдвигает ref на n месяцев назад от первого числа месяца,
// чтобы 31 марта минус месяц давало февраль, а не 3 марта.
func (c *Calculator) monthsBack(ref time.Time, n int) time.Time {
	return FirstDayOfMonth(ref, c.loc).AddDate(0, -n, 0)
}

// SetWeek: с понедельника недели ref по воскресенье недели, отстоящей на weeksBack-1 вперёд.
func (c *Calculator) SetWeek(ref time.Time, weeksBack int) {
	c.week(ref, weeksBack)
	c.typ = ArbitraryDates
}

// SetThisWeek выставляет текущую неделю целиком, с обрезкой конца по текущему моменту.
func (c *Calculator) SetThisWeek() {
	c.SetWeek(c.now(), 1)
}

// SetLastWeek отсчитывает weeksBack недель, начиная с прошлой.
func (c *Calculator) SetLastWeek(weeksBack int) {
	c.week(c.now().AddDate(0, 0, -7), weeksBack)
	switch weeksBack {
	case 0, 1:
		c.typ = WeekPrevious
	case 2:
		c.typ = WeekLastTwo
	default:
		c.typ = ArbitraryDates
	}
}

// SetWeekToDate: с понедельника текущей недели до текущего момента.
func (c *Calculator) SetWeekToDate() {
	c.week(c.now(), 1)
	c.end = c.now()
	c.typ = WeekToDate
}

// SetMonth выставляет месяц, содержащий ref.
func (c *Calculator) SetMonth(ref time.Time) {
	c.month(ref)
	c.typ = ArbitraryDates
}

// SetThisMonth выставляет текущий месяц.
func (c *Calculator) SetThisMonth() {
	c.SetMonth(c.now())
}

// SetLastMonth выставляет предыдущий полный месяц.
func (c *Calculator) SetLastMonth() {
	c.month(c.monthsBack(c.now(), 1))
	c.typ = MonthPrevious
}

// SetMonthToDate: с первого числа месяца до текущего момента.
func (c *Calculator) SetMonthToDate() {
	c.month(c.now())
	c.end = c.now()
	c.typ = MonthToDate
}

// SetQuarter выставляет квартал, содержащий ref.
func (c *Calculator) SetQuarter(ref time.Time) {
	c.quarter(ref)
	c.typ = ArbitraryDates
}

// SetThisQuarter выставляет текущий квартал.
func (c *Calculator) SetThisQuarter() {
	c.SetQuarter(c.now())
}

// SetLastQuarter выставляет предыдущий полный квартал.
func (c *Calculator) SetLastQuarter() {
	c.quarter(c.monthsBack(c.now(), 3))
	c.typ = QuarterPrevious
}

// SetQuarterToDate: с начала квартала до текущего момента.
func (c *Calculator) SetQuarterToDate() {
	c.quarter(c.now())
	c.end = c.now()
	c.typ = QuarterToDate
}

// SetYear выставляет календарный год, содержащий ref.
func (c *Calculator) SetYear(ref time.Time) {
	c.year(ref)
	c.typ = ArbitraryDates
}

// SetThisYear выставляет текущий год.
func (c *Calculator) SetThisYear() {
	c.SetYear(c.now())
}

// SetLastYear выставляет предыдущий год.
func (c *Calculator) SetLastYear() {
	c.year(c.monthsBack(c.now(), 12))
	c.typ = YearPrevious
}

// SetYearToDate: с 1 января до текущего момента.
func (c *Calculator) SetYearToDate() {
	c.year(c.now())
	c.end = c.now()
	c.typ = YearToDate
}

// Apply выбирает операцию по типу периода.
//
// ref задаёт точку отсчёта для "прошлых" периодов (нулевое значение — текущий момент).
// Периоды "to date" всегда считаются от текущего момента. Для ArbitraryDates границы
// берутся из start и end в формате отображения; пустая или нераспознанная строка
// оставляет соответствующую границу без изменений.
func (c *Calculator) Apply(typ Type, ref time.Time, start, end string) {
	if ref.IsZero() {
		ref = c.now()
	}

	switch typ {
	case None:
	case WeekToDate:
		c.SetWeekToDate()
	case WeekPrevious:
		c.week(ref.AddDate(0, 0, -7), 1)
	case WeekLastTwo:
		c.week(ref.AddDate(0, 0, -7), 2)
	case MonthToDate:
		c.SetMonthToDate()
	case MonthPrevious:
		c.month(c.monthsBack(ref, 1))
	case QuarterToDate:
		c.SetQuarterToDate()
	case QuarterPrevious:
		c.quarter(c.monthsBack(ref, 3))
	case YearToDate:
		c.SetYearToDate()
	case YearPrevious:
		c.year(c.monthsBack(ref, 12))
	case ArbitraryDates:
		c.arbitrary(start, end)
	}
	c.typ = typ
}

func (c *Calculator) arbitrary(start, end string) {
	if t, ok := c.parse(start); ok {
		c.start = BeginningOfDay(t, c.loc)
	}
	if t, ok := c.parse(end); ok {
		c.end = minTime(EndOfDay(t, c.loc), c.now())
	}
}

func (c *Calculator) parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(c.format, s, c.loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Type возвращает активный тип периода.
func (c *Calculator) Type() Type { return c.typ }

// Format возвращает формат отображения дат.
func (c *Calculator) Format() string { return c.format }

// Location возвращает часовой пояс калькулятора.
func (c *Calculator) Location() *time.Location { return c.loc }

// Start возвращает начало периода.
func (c *Calculator) Start() time.Time { return c.start }

// End возвращает конец периода.
func (c *Calculator) End() time.Time { return c.end }

// Range возвращает снимок текущего состояния.
func (c *Calculator) Range() Range {
	return Range{Type: c.typ, Start: c.start, End: c.end}
}

// StartTimestamp возвращает начало периода в секундах Unix.
func (c *Calculator) StartTimestamp() int64 { return c.start.Unix() }

// EndTimestamp возвращает конец периода в секундах Unix.
func (c *Calculator) EndTimestamp() int64 { return c.end.Unix() }

// StartFormatted форматирует начало периода; для None всегда пустая строка.
func (c *Calculator) StartFormatted() string {
	if c.typ == None {
		return ""
	}
	return c.start.Format(c.format)
}

// EndFormatted форматирует конец периода; для None всегда пустая строка.
func (c *Calculator) EndFormatted() string {
	if c.typ == None {
		return ""
	}
	return c.end.Format(c.format)
}

// ElapsedDays возвращает число календарных дней между началом и концом.
func (c *Calculator) ElapsedDays() int {
	return DaysBetween(c.start, c.end, c.loc)
}
