package services

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/singhAyush18/progress-tracker/models"
)

const dayLayout = "2006-01-02"

// bucketKeys identifies the one bucket a task belongs to per interval
// kind. The user-entered date drives all calendar buckets; created_at is
// only consulted for the hour-of-day bucket, so Hour is empty for tasks
// without a creation timestamp. Returns false when no usable date exists,
// which excludes the task from aggregation entirely.
type bucketKeys struct {
	Hour     string
	Day      string
	Week     string
	Month    string
	HalfYear string
	Year     string
}

func taskBucketKeys(task models.Task) (bucketKeys, bool) {
	var keys bucketKeys

	day, err := time.ParseInLocation(dayLayout, task.Date, time.Local)
	if err != nil {
		// Fall back to the creation timestamp's calendar day.
		if task.CreatedAt.IsZero() {
			log.Printf("skipping task %s: unparseable date %q", task.ID.Hex(), task.Date)
			return keys, false
		}
		day = task.CreatedAt
	}

	keys.Day = day.Format(dayLayout)
	isoYear, isoWeek := day.ISOWeek()
	keys.Week = fmt.Sprintf("%d-W%02d", isoYear, isoWeek)
	keys.Month = day.Format("2006-01")
	keys.HalfYear = fmt.Sprintf("%d-H%d", day.Year(), (int(day.Month())-1)/6+1)
	keys.Year = strconv.Itoa(day.Year())

	if !task.CreatedAt.IsZero() {
		keys.Hour = strconv.Itoa(task.CreatedAt.Hour())
	}

	return keys, true
}
