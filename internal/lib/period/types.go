package period

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType возвращается, когда имя периода не соответствует ни одному Type.
var ErrUnknownType = errors.New("unknown period type")

// Type задаёт шаблон календарного периода, выбираемый в интерфейсе отчётов.
type Type int

// Значения совпадают с номерами пунктов селектора периода.
const (
	None Type = iota
	WeekToDate
	WeekPrevious
	WeekLastTwo
	MonthToDate
	MonthPrevious
	QuarterToDate
	QuarterPrevious
	YearToDate
	YearPrevious
	ArbitraryDates
)

var names = [...]string{
	None:            "none",
	WeekToDate:      "week_to_date",
	WeekPrevious:    "week_previous",
	WeekLastTwo:     "week_last_two",
	MonthToDate:     "month_to_date",
	MonthPrevious:   "month_previous",
	QuarterToDate:   "quarter_to_date",
	QuarterPrevious: "quarter_previous",
	YearToDate:      "year_to_date",
	YearPrevious:    "year_previous",
	ArbitraryDates:  "arbitrary",
}

var labels = [...]string{
	None:            "None",
	WeekToDate:      "Week to date",
	WeekPrevious:    "Last full week",
	WeekLastTwo:     "Last two weeks",
	MonthToDate:     "Month to date",
	MonthPrevious:   "Last full month",
	QuarterToDate:   "Quarter to date",
	QuarterPrevious: "Last full quarter",
	YearToDate:      "Year to date",
	YearPrevious:    "Last full year",
	ArbitraryDates:  "Arbitrary dates",
}

// Valid сообщает, входит ли t в перечисление.
func (t Type) Valid() bool {
	return t >= None && t <= ArbitraryDates
}

// String возвращает имя периода в формате, принятом в API.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("period(%d)", int(t))
	}
	return names[t]
}

// Label возвращает подпись для пункта селектора.
func (t Type) Label() string {
	if !t.Valid() {
		return t.String()
	}
	return labels[t]
}

// ParseType разбирает имя периода без учёта регистра. Пустая строка означает None.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return None, nil
	}
	for i, name := range names {
		if name == s {
			return Type(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Option описывает один пункт селектора периода для слоя отображения.
type Option struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Options возвращает все пункты селектора в порядке отображения.
func Options() []Option {
	opts := make([]Option, 0, len(names))
	for i := range names {
		t := Type(i)
		opts = append(opts, Option{Value: i, Name: t.String(), Label: t.Label()})
	}
	return opts
}
