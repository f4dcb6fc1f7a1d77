// Package calendar lays out a month grid with the habits scheduled on each day.
package calendar

import (
	"fmt"
	"time"

	"github.com/brk3/habitflow/pkg/habit"
)

// MaxDots caps how many habit markers a single day cell carries.
const MaxDots = 3

type Month struct {
	Year          int          `json:"year"`
	Month         time.Month   `json:"month"`
	Title         string       `json:"title"`
	LeadingBlanks int          `json:"leading_blanks"`
	Days          []Day        `json:"days"`
	Prev          MonthRef     `json:"prev"`
	Next          MonthRef     `json:"next"`
	Legend        []LegendItem `json:"legend"`
}

type MonthRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

type Day struct {
	Date    string       `json:"date"`
	Day     int          `json:"day"`
	Weekday time.Weekday `json:"weekday"`
	IsToday bool         `json:"is_today"`
	Dots    []Dot        `json:"dots"`
}

type Dot struct {
	HabitID   string      `json:"habit_id"`
	Color     habit.Color `json:"color"`
	Completed bool        `json:"completed"`
}

type LegendItem struct {
	HabitID string      `json:"habit_id"`
	Name    string      `json:"name"`
	Color   habit.Color `json:"color"`
	Streak  int         `json:"streak"`
}

// Build lays out the given month. Blank cells precede the 1st so that it falls
// under its weekday column (weeks start on Sunday). today only decides IsToday.
func Build(year int, month time.Month, today time.Time, habits []habit.Habit) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// normalize out-of-range months
	year, month = first.Year(), first.Month()
	daysIn := first.AddDate(0, 1, -1).Day()
	ty, tm, td := today.Date()

	m := Month{
		Year:          year,
		Month:         month,
		Title:         Title(year, month),
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]Day, 0, daysIn),
		Legend:        make([]LegendItem, 0, len(habits)),
	}
	m.Prev.Year, m.Prev.Month = Prev(year, month)
	m.Next.Year, m.Next.Month = Next(year, month)

	for i := 0; i < daysIn; i++ {
		d := first.AddDate(0, 0, i)
		date := d.Format(habit.DateLayout)
		cell := Day{
			Date:    date,
			Day:     d.Day(),
			Weekday: d.Weekday(),
			IsToday: d.Year() == ty && d.Month() == tm && d.Day() == td,
			Dots:    []Dot{},
		}
		for _, h := range habits {
			if len(cell.Dots) == MaxDots {
				break
			}
			if !h.ActiveOn(d.Weekday()) {
				continue
			}
			cell.Dots = append(cell.Dots, Dot{HabitID: h.ID, Color: h.Color, Completed: h.CompletedOn(date)})
		}
		m.Days = append(m.Days, cell)
	}

	for _, h := range habits {
		m.Legend = append(m.Legend, LegendItem{HabitID: h.ID, Name: h.Name, Color: h.Color, Streak: h.Streak})
	}
	return m
}

// Weeks splits the grid into rows of seven cells; nil entries are blanks.
func (m Month) Weeks() [][]*Day {
	cells := make([]*Day, m.LeadingBlanks, m.LeadingBlanks+len(m.Days))
	for i := range m.Days {
		cells = append(cells, &m.Days[i])
	}
	var weeks [][]*Day
	for len(cells) > 0 {
		n := min(7, len(cells))
		weeks = append(weeks, cells[:n])
		cells = cells[n:]
	}
	return weeks
}

func Prev(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month-1, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

func Next(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// Title formats the month heading, e.g. "October 2026".
func Title(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}
