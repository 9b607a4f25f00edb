package services

import (
	"math"
	"sort"
	"time"

	"github.com/singhAyush18/progress-tracker/models"
)

// Bucket accumulates study time and task count for one time bucket.
type Bucket struct {
	Seconds int `json:"seconds"`
	Tasks   int `json:"tasks"`
}

// Hours is the bucket total as decimal hours.
func (b Bucket) Hours() float64 {
	return float64(b.Seconds) / 3600
}

type PeakHour struct {
	Hour  int     `json:"hour"`
	Hours float64 `json:"hours"`
	Tasks int     `json:"tasks"`
}

type StudyPatterns struct {
	PeakHours      []PeakHour `json:"peakHours"`
	AvgDailyHours  float64    `json:"avgDailyHours"`
	AvgDailyTasks  float64    `json:"avgDailyTasks"`
	TotalStudyDays int        `json:"totalStudyDays"`
}

type TimeIntervals struct {
	Hourly     map[string]*Bucket `json:"hourly"`
	Daily      map[string]*Bucket `json:"daily"`
	Weekly     map[string]*Bucket `json:"weekly"`
	Monthly    map[string]*Bucket `json:"monthly"`
	SixMonthly map[string]*Bucket `json:"sixMonthly"`
	Yearly     map[string]*Bucket `json:"yearly"`
}

type Totals struct {
	Seconds int     `json:"seconds"`
	Hours   float64 `json:"hours"`
	Tasks   int     `json:"tasks"`
}

// IntervalAverages holds the mean hours per populated bucket for each
// interval kind, for trend analysis in the insight prompt.
type IntervalAverages struct {
	Weekly     float64 `json:"weekly"`
	Monthly    float64 `json:"monthly"`
	SixMonthly float64 `json:"sixMonthly"`
	Yearly     float64 `json:"yearly"`
}

type StudyStats struct {
	TimeIntervals     TimeIntervals    `json:"timeIntervals"`
	Totals            Totals           `json:"totals"`
	ProductivityScore int              `json:"productivityScore"`
	ConsistencyLevel  string           `json:"consistencyLevel"`
	StudyPatterns     StudyPatterns    `json:"studyPatterns"`
	Averages          IntervalAverages `json:"averages"`
	LastUpdated       time.Time        `json:"lastUpdated"`
}

// BuildStudyStats folds tasks into every interval kind and derives the
// scalar metrics. Tasks with unusable dates are skipped; malformed
// durations count as 0 seconds. All numeric outputs are finite.
func BuildStudyStats(tasks []models.Task) StudyStats {
	stats := StudyStats{
		TimeIntervals: TimeIntervals{
			Hourly:     make(map[string]*Bucket),
			Daily:      make(map[string]*Bucket),
			Weekly:     make(map[string]*Bucket),
			Monthly:    make(map[string]*Bucket),
			SixMonthly: make(map[string]*Bucket),
			Yearly:     make(map[string]*Bucket),
		},
		ConsistencyLevel: "Low",
		LastUpdated:      time.Now(),
	}

	for _, task := range tasks {
		keys, ok := taskBucketKeys(task)
		if !ok {
			continue
		}
		seconds := ParseDuration(task.Duration)

		if keys.Hour != "" {
			foldInto(stats.TimeIntervals.Hourly, keys.Hour, seconds)
		}
		foldInto(stats.TimeIntervals.Daily, keys.Day, seconds)
		foldInto(stats.TimeIntervals.Weekly, keys.Week, seconds)
		foldInto(stats.TimeIntervals.Monthly, keys.Month, seconds)
		foldInto(stats.TimeIntervals.SixMonthly, keys.HalfYear, seconds)
		foldInto(stats.TimeIntervals.Yearly, keys.Year, seconds)

		stats.Totals.Seconds += seconds
		stats.Totals.Tasks++
	}

	stats.Totals.Hours = round2(float64(stats.Totals.Seconds) / 3600)
	stats.ProductivityScore = productivityScore(stats.TimeIntervals.Daily)
	stats.ConsistencyLevel = consistencyLevel(stats.ProductivityScore)
	stats.StudyPatterns = studyPatterns(stats.TimeIntervals)
	stats.Averages = IntervalAverages{
		Weekly:     averageBucketHours(stats.TimeIntervals.Weekly),
		Monthly:    averageBucketHours(stats.TimeIntervals.Monthly),
		SixMonthly: averageBucketHours(stats.TimeIntervals.SixMonthly),
		Yearly:     averageBucketHours(stats.TimeIntervals.Yearly),
	}

	return stats
}

func foldInto(buckets map[string]*Bucket, key string, seconds int) {
	b, ok := buckets[key]
	if !ok {
		b = &Bucket{}
		buckets[key] = b
	}
	b.Seconds += seconds
	b.Tasks++
}

// productivityScore blends day-level consistency (60%) with average tasks
// per active day (40%), clamped to 0-100. No daily data scores 0.
func productivityScore(daily map[string]*Bucket) int {
	if len(daily) == 0 {
		return 0
	}

	activeDays := 0
	totalTasks := 0
	for _, day := range daily {
		if day.Tasks > 0 {
			activeDays++
		}
		totalTasks += day.Tasks
	}

	consistency := float64(activeDays) / float64(len(daily))
	avgTasksPerDay := float64(totalTasks) / float64(len(daily))

	score := math.Round((0.6*consistency + 0.4*avgTasksPerDay) * 100)
	return clampScore(score)
}

func consistencyLevel(score int) string {
	switch {
	case score > 70:
		return "High"
	case score > 40:
		return "Medium"
	default:
		return "Low"
	}
}

// studyPatterns derives peak hours and per-active-day averages. Days with
// zero tasks never appear in the daily map, so the divisor is the count of
// active days, not calendar days.
func studyPatterns(intervals TimeIntervals) StudyPatterns {
	patterns := StudyPatterns{PeakHours: []PeakHour{}}

	hours := make([]PeakHour, 0, len(intervals.Hourly))
	for key, b := range intervals.Hourly {
		hour := atoiOrZero(key)
		hours = append(hours, PeakHour{Hour: hour, Hours: b.Hours(), Tasks: b.Tasks})
	}
	sort.Slice(hours, func(i, j int) bool {
		if hours[i].Hours != hours[j].Hours {
			return hours[i].Hours > hours[j].Hours
		}
		return hours[i].Hour < hours[j].Hour
	})
	if len(hours) > 3 {
		hours = hours[:3]
	}
	patterns.PeakHours = hours

	if len(intervals.Daily) > 0 {
		totalHours := 0.0
		totalTasks := 0
		for _, day := range intervals.Daily {
			totalHours += day.Hours()
			totalTasks += day.Tasks
			if day.Tasks > 0 {
				patterns.TotalStudyDays++
			}
		}
		patterns.AvgDailyHours = round1(totalHours / float64(len(intervals.Daily)))
		patterns.AvgDailyTasks = round1(float64(totalTasks) / float64(len(intervals.Daily)))
	}

	return patterns
}

func averageBucketHours(buckets map[string]*Bucket) float64 {
	if len(buckets) == 0 {
		return 0
	}
	total := 0.0
	for _, b := range buckets {
		total += b.Hours()
	}
	return round1(total / float64(len(buckets)))
}

// CurrentStreak counts consecutive calendar days with at least one task,
// ending today. A day still in progress does not break the streak: when
// today has no entry yet, counting starts at yesterday.
func CurrentStreak(tasks []models.Task, today time.Time) int {
	days := studyDaySet(tasks)
	if len(days) == 0 {
		return 0
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if _, ok := days[day.Format(dayLayout)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[day.Format(dayLayout)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// MaxStreak is the longest run of consecutive study days anywhere in the
// dataset.
func MaxStreak(tasks []models.Task) int {
	days := studyDaySet(tasks)
	if len(days) == 0 {
		return 0
	}

	dates := make([]time.Time, 0, len(days))
	for key := range days {
		d, err := time.ParseInLocation(dayLayout, key, time.Local)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	best, run := 0, 0
	for i, d := range dates {
		if i > 0 && dates[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

func studyDaySet(tasks []models.Task) map[string]struct{} {
	days := make(map[string]struct{})
	for _, task := range tasks {
		keys, ok := taskBucketKeys(task)
		if !ok {
			continue
		}
		days[keys.Day] = struct{}{}
	}
	return days
}

func clampScore(score float64) int {
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}

func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}
