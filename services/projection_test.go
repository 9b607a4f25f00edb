package services

import (
	"testing"

	"github.com/singhAyush18/progress-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyProjectionZeroFill(t *testing.T) {
	tasks := []models.Task{
		task("2025-03-10", "02:00:00"),
		task("2025-03-11", "01:00:00"),
	}

	projection := MonthlyProjection(tasks, 2025)
	require.Len(t, projection, 12)

	for i, stat := range projection {
		assert.Equal(t, i+1, stat.Month)
		if stat.Month == 3 {
			continue
		}
		assert.Equal(t, 0.0, stat.AvgHours, "month %d", stat.Month)
		assert.Equal(t, 0, stat.DayCount, "month %d", stat.Month)
	}

	march := projection[2]
	assert.Equal(t, "Mar", march.MonthName)
	assert.Equal(t, 1.5, march.AvgHours)
	assert.Equal(t, 2, march.DayCount)
}

func TestMonthlyProjectionDistinctDayDenominator(t *testing.T) {
	// Three records over two distinct days: divide by 2, and the day count
	// is 2, not 3.
	tasks := []models.Task{
		task("2025-05-01", "01:00:00"),
		task("2025-05-01", "02:00:00"),
		task("2025-05-02", "01:00:00"),
	}

	may := MonthlyProjection(tasks, 2025)[4]
	assert.Equal(t, 2, may.DayCount)
	assert.Equal(t, 2.0, may.AvgHours)
}

func TestMonthlyProjectionYearFilter(t *testing.T) {
	tasks := []models.Task{
		task("2024-06-01", "05:00:00"),
		task("2025-06-01", "01:00:00"),
	}

	june := MonthlyProjection(tasks, 2025)[5]
	assert.Equal(t, 1.0, june.AvgHours)
	assert.Equal(t, 1, june.DayCount)
}

func TestMonthlyProjectionRounding(t *testing.T) {
	// 10 minutes over one day = 0.1666... hours → 0.17.
	tasks := []models.Task{task("2025-08-15", "00:10:00")}
	august := MonthlyProjection(tasks, 2025)[7]
	assert.Equal(t, 0.17, august.AvgHours)
}

func TestMonthlyProjectionMonthNames(t *testing.T) {
	projection := MonthlyProjection(nil, 2025)
	names := make([]string, 0, 12)
	for _, stat := range projection {
		names = append(names, stat.MonthName)
	}
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}, names)
}

func TestYearlyProjection(t *testing.T) {
	tasks := []models.Task{
		task("2023-06-01", "02:00:00"),
		task("2023-06-02", "04:00:00"),
		task("2025-01-01", "01:00:00"),
	}

	projection := YearlyProjection(tasks, 2023, 2025)
	require.Len(t, projection, 3)

	assert.Equal(t, 2023, projection[0].Year)
	assert.Equal(t, 3.0, projection[0].AvgHours)
	assert.Equal(t, 2, projection[0].DayCount)

	// 2024 has no tasks and is zero-filled.
	assert.Equal(t, 2024, projection[1].Year)
	assert.Equal(t, 0.0, projection[1].AvgHours)
	assert.Equal(t, 0, projection[1].DayCount)

	assert.Equal(t, 2025, projection[2].Year)
	assert.Equal(t, 1.0, projection[2].AvgHours)
}
