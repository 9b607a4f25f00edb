package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/singhAyush18/progress-tracker/models"
)

// MonthlyStat is one display-ready entry of the fixed 12-month projection.
type MonthlyStat struct {
	Month     int     `json:"month"`
	MonthName string  `json:"monthName"`
	AvgHours  float64 `json:"avgHours"`
	DayCount  int     `json:"dayCount"`
}

type YearlyStat struct {
	Year     int     `json:"year"`
	AvgHours float64 `json:"avgHours"`
	DayCount int     `json:"dayCount"`
}

// MonthlyProjection returns exactly 12 entries, January through December,
// for tasks whose date falls in the given year. AvgHours is total study
// time divided by the number of distinct active days in the month;
// months with no tasks are zero-filled.
func MonthlyProjection(tasks []models.Task, year int) []MonthlyStat {
	type monthAcc struct {
		seconds int
		days    map[string]struct{}
	}
	months := make(map[int]*monthAcc)

	prefix := fmt.Sprintf("%04d-", year)
	for _, task := range tasks {
		if !strings.HasPrefix(task.Date, prefix) || len(task.Date) < 10 {
			continue
		}
		month := atoiOrZero(task.Date[5:7])
		if month < 1 || month > 12 {
			continue
		}
		acc, ok := months[month]
		if !ok {
			acc = &monthAcc{days: make(map[string]struct{})}
			months[month] = acc
		}
		acc.seconds += ParseDuration(task.Duration)
		acc.days[task.Date[:10]] = struct{}{}
	}

	out := make([]MonthlyStat, 0, 12)
	for month := 1; month <= 12; month++ {
		stat := MonthlyStat{
			Month:     month,
			MonthName: time.Month(month).String()[:3],
		}
		if acc, ok := months[month]; ok && len(acc.days) > 0 {
			stat.AvgHours = round2(float64(acc.seconds) / float64(len(acc.days)) / 3600)
			stat.DayCount = len(acc.days)
		}
		out = append(out, stat)
	}
	return out
}

// YearlyProjection covers every year from fromYear through toYear
// inclusive, zero-filled for years with no tasks.
func YearlyProjection(tasks []models.Task, fromYear, toYear int) []YearlyStat {
	type yearAcc struct {
		seconds int
		days    map[string]struct{}
	}
	years := make(map[int]*yearAcc)

	for _, task := range tasks {
		if len(task.Date) < 10 {
			continue
		}
		year := atoiOrZero(task.Date[:4])
		if year < fromYear || year > toYear {
			continue
		}
		acc, ok := years[year]
		if !ok {
			acc = &yearAcc{days: make(map[string]struct{})}
			years[year] = acc
		}
		acc.seconds += ParseDuration(task.Duration)
		acc.days[task.Date[:10]] = struct{}{}
	}

	out := make([]YearlyStat, 0, toYear-fromYear+1)
	for year := fromYear; year <= toYear; year++ {
		stat := YearlyStat{Year: year}
		if acc, ok := years[year]; ok && len(acc.days) > 0 {
			stat.AvgHours = round2(float64(acc.seconds) / float64(len(acc.days)) / 3600)
			stat.DayCount = len(acc.days)
		}
		out = append(out, stat)
	}
	return out
}
