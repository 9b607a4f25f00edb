package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/singhAyush18/progress-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text    string
	err     error
	prompts []string
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.text, s.err
}

func testUser() models.User {
	first, last, email := "Ada", "Lovelace", "ada@example.com"
	return models.User{
		First_name: &first,
		Last_name:  &last,
		Email:      &email,
		Created_at: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func assertCompleteInsights(t *testing.T, insights Insights) {
	t.Helper()
	assert.NotEmpty(t, insights.PerformanceOverview.TotalStudyHours)
	assert.NotEmpty(t, insights.PerformanceOverview.Summary)
	assert.NotEmpty(t, insights.StrengthsWeaknesses.Strengths)
	assert.NotEmpty(t, insights.StrengthsWeaknesses.Weaknesses)
	assert.NotEmpty(t, insights.ProductivityInsights.DataDrivenInsights)
	assert.NotEmpty(t, insights.LearningEfficiency.Retention)
	assert.NotEmpty(t, insights.AIFeedback.Recommendations)
	assert.NotEmpty(t, insights.CompetitiveBenchmarking.CurrentRank)
}

func TestGenerateInsightsNoData(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewInsightService(gen)

	report := svc.GenerateInsights(context.Background(), testUser(), nil)

	assert.False(t, report.HasData)
	assert.Empty(t, gen.prompts, "no external call for empty data")
	assertCompleteInsights(t, report.Insights)
	assert.Equal(t, "0 hours", report.Insights.PerformanceOverview.TotalStudyHours)
}

func TestGenerateInsightsFallbackOnError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := NewInsightService(gen)
	tasks := []models.Task{task("2025-06-01", "02:00:00")}

	report := svc.GenerateInsights(context.Background(), testUser(), tasks)

	assert.True(t, report.HasData)
	require.Len(t, gen.prompts, 1)
	assertCompleteInsights(t, report.Insights)
	assert.Equal(t, "2 hours", report.Insights.PerformanceOverview.TotalStudyHours)
	require.NotNil(t, report.DataSummary)
	assert.Equal(t, 1, report.DataSummary.TotalTasks)
}

func TestGenerateInsightsFallbackOnUnparseableReply(t *testing.T) {
	gen := &stubGenerator{text: "I'm sorry, I can't help with that."}
	svc := NewInsightService(gen)
	tasks := []models.Task{task("2025-06-01", "02:00:00")}

	report := svc.GenerateInsights(context.Background(), testUser(), tasks)

	assert.True(t, report.HasData)
	assertCompleteInsights(t, report.Insights)
}

func TestGenerateInsightsParsesWrappedJSON(t *testing.T) {
	reply := "Here are your insights:\n```json\n" + `{
		"performanceOverview": {"totalStudyHours": "2 hours", "summary": "Solid week."},
		"strengthsWeaknesses": {"strengths": ["Math"], "weaknesses": ["History"], "analysis": "ok"},
		"productivityInsights": {"dataDrivenInsights": "x", "studyPatterns": "y", "recommendations": "z"},
		"learningEfficiency": {"retention": "High", "efficiencyScore": "80%", "improvementAreas": "none"},
		"aiFeedback": {"recommendations": ["keep going"], "strategies": "steady"},
		"competitiveBenchmarking": {"currentRank": "Top 10%", "improvementAreas": ["pace"], "top1PercentPath": "practice"}
	}` + "\n```\nGood luck!"
	gen := &stubGenerator{text: reply}
	svc := NewInsightService(gen)
	tasks := []models.Task{task("2025-06-01", "02:00:00")}

	report := svc.GenerateInsights(context.Background(), testUser(), tasks)

	assert.Equal(t, "Solid week.", report.Insights.PerformanceOverview.Summary)
	assert.Equal(t, []string{"Math"}, report.Insights.StrengthsWeaknesses.Strengths)
	assert.Equal(t, "Top 10%", report.Insights.CompetitiveBenchmarking.CurrentRank)
}

func TestInsightPromptContainsData(t *testing.T) {
	gen := &stubGenerator{err: errors.New("skip")}
	svc := NewInsightService(gen)
	tasks := []models.Task{
		{Date: "2025-06-01", Tasks: []string{"calculus revision"}, Duration: "01:30:00"},
	}

	svc.GenerateInsights(context.Background(), testUser(), tasks)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Ada Lovelace")
	assert.Contains(t, prompt, "calculus revision")
	assert.Contains(t, prompt, "performanceOverview")
	assert.Contains(t, prompt, "competitiveBenchmarking")
}

func TestDefaultInsightsThresholds(t *testing.T) {
	low := defaultInsights(StudyStats{ProductivityScore: 30})
	assert.Equal(t, "Low", low.LearningEfficiency.Retention)
	assert.Equal(t, "Top 60%", low.CompetitiveBenchmarking.CurrentRank)

	mid := defaultInsights(StudyStats{ProductivityScore: 65})
	assert.Equal(t, "Medium", mid.LearningEfficiency.Retention)
	assert.Equal(t, "Top 40%", mid.CompetitiveBenchmarking.CurrentRank)

	high := defaultInsights(StudyStats{ProductivityScore: 85})
	assert.Equal(t, "High", high.LearningEfficiency.Retention)
	assert.Equal(t, "Top 20%", high.CompetitiveBenchmarking.CurrentRank)
}

func TestChatPrompts(t *testing.T) {
	gen := &stubGenerator{text: "Take regular breaks."}
	svc := NewInsightService(gen)

	response, err := svc.Chat(context.Background(), nil, nil, "How should I study?")
	require.NoError(t, err)
	assert.Equal(t, "Take regular breaks.", response)
	assert.Contains(t, gen.prompts[0], "not logged in")

	user := testUser()
	_, err = svc.Chat(context.Background(), &user, []models.Task{task("2025-06-01", "01:00:00")}, "How am I doing?")
	require.NoError(t, err)
	assert.Contains(t, gen.prompts[1], "logged in")
	assert.Contains(t, gen.prompts[1], "ada@example.com")
}

func TestChatSurfacesErrors(t *testing.T) {
	gen := &stubGenerator{err: errors.New("network down")}
	svc := NewInsightService(gen)

	_, err := svc.Chat(context.Background(), nil, nil, "hello")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "network down"))
}
