package server

import (
	"github.com/brk3/habitflow/pkg/habit"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type HabitListResponse struct {
	Habits []habit.Habit `json:"habits"`
}

type TodayResponse struct {
	Date    string        `json:"date"`
	Weekday int           `json:"weekday"`
	Habits  []habit.Habit `json:"habits"`
}

type HabitSummaryResponse struct {
	HabitID      string             `json:"habit_id"`
	HabitSummary habit.HabitSummary `json:"habit_summary"`
}

type StatisticsResponse struct {
	Date       string           `json:"date"`
	Statistics habit.Statistics `json:"statistics"`
}

type ColorResponse struct {
	Name  habit.Color `json:"name"`
	Class string      `json:"class"`
	Hex   string      `json:"hex"`
}
