package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/singhAyush18/progress-tracker/models"

	"github.com/bytedance/sonic"
)

// The six insight categories returned to the dashboard. The external model
// is asked for exactly this shape; the deterministic fallback produces it
// locally.
type PerformanceOverview struct {
	TotalStudyHours  string `json:"totalStudyHours"`
	WeeklyReport     string `json:"weeklyReport"`
	MonthlyReport    string `json:"monthlyReport"`
	SixMonthlyReport string `json:"sixMonthlyReport"`
	YearlyReport     string `json:"yearlyReport"`
	Summary          string `json:"summary"`
}

type StrengthsWeaknesses struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Analysis   string   `json:"analysis"`
}

type ProductivityInsights struct {
	DataDrivenInsights string `json:"dataDrivenInsights"`
	StudyPatterns      string `json:"studyPatterns"`
	Recommendations    string `json:"recommendations"`
}

type LearningEfficiency struct {
	Retention        string `json:"retention"`
	EfficiencyScore  string `json:"efficiencyScore"`
	ImprovementAreas string `json:"improvementAreas"`
}

type AIFeedback struct {
	Recommendations []string `json:"recommendations"`
	Strategies      string   `json:"strategies"`
}

type CompetitiveBenchmarking struct {
	CurrentRank      string   `json:"currentRank"`
	ImprovementAreas []string `json:"improvementAreas"`
	Top1PercentPath  string   `json:"top1PercentPath"`
}

type Insights struct {
	PerformanceOverview     PerformanceOverview     `json:"performanceOverview"`
	StrengthsWeaknesses     StrengthsWeaknesses     `json:"strengthsWeaknesses"`
	ProductivityInsights    ProductivityInsights    `json:"productivityInsights"`
	LearningEfficiency      LearningEfficiency      `json:"learningEfficiency"`
	AIFeedback              AIFeedback              `json:"aiFeedback"`
	CompetitiveBenchmarking CompetitiveBenchmarking `json:"competitiveBenchmarking"`
}

type DataSummary struct {
	TotalTasks     int       `json:"totalTasks"`
	TotalStudyTime float64   `json:"totalStudyTime"`
	LastActivity   time.Time `json:"lastActivity"`
}

type InsightReport struct {
	Message     string       `json:"message"`
	Insights    Insights     `json:"insights"`
	HasData     bool         `json:"hasData"`
	DataSummary *DataSummary `json:"dataSummary,omitempty"`
}

// InsightService assembles the prompt payload and delegates text
// generation to the injected collaborator.
type InsightService struct {
	gen TextGenerator
}

func NewInsightService(gen TextGenerator) *InsightService {
	return &InsightService{gen: gen}
}

// GenerateInsights never fails: any problem with the external call (or its
// response) degrades to the deterministic fallback derived from the stats.
func (s *InsightService) GenerateInsights(ctx context.Context, user models.User, tasks []models.Task) InsightReport {
	if len(tasks) == 0 {
		return InsightReport{
			Message:  "No study data available yet. Start adding tasks to get AI insights!",
			Insights: defaultInsights(BuildStudyStats(nil)),
			HasData:  false,
		}
	}

	stats := BuildStudyStats(tasks)
	report := InsightReport{
		Message: "AI insights generated successfully",
		HasData: true,
		DataSummary: &DataSummary{
			TotalTasks:     len(tasks),
			TotalStudyTime: stats.Totals.Hours,
			LastActivity:   lastActivity(tasks),
		},
	}

	prompt, err := buildInsightPrompt(user, stats, tasks)
	if err != nil {
		log.Printf("insight prompt build failed: %v", err)
		report.Insights = defaultInsights(stats)
		return report
	}

	text, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("AI insights generation failed: %v", err)
		report.Insights = defaultInsights(stats)
		return report
	}

	insights, err := extractInsights(text)
	if err != nil {
		log.Printf("AI response did not parse: %v", err)
		report.Insights = defaultInsights(stats)
		return report
	}

	report.Insights = insights
	return report
}

// taskDetail is the per-task slice of the prompt payload.
type taskDetail struct {
	Date      string    `json:"date"`
	Tasks     []string  `json:"tasks"`
	Duration  string    `json:"duration"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

func buildInsightPrompt(user models.User, stats StudyStats, tasks []models.Task) (string, error) {
	details := make([]taskDetail, 0, len(tasks))
	for _, t := range tasks {
		details = append(details, taskDetail{
			Date:      t.Date,
			Tasks:     t.Tasks,
			Duration:  t.Duration,
			CreatedAt: t.CreatedAt,
		})
	}

	statsJSON, err := sonic.MarshalIndent(stats, "", "  ")
	if err != nil {
		return "", err
	}
	detailsJSON, err := sonic.MarshalIndent(details, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following comprehensive study statistics and provide insights in these 6 categories:\n\n")
	fmt.Fprintf(&b, "USER DATA:\n- Name: %s %s\n- Email: %s\n- Member since: %s\n\n",
		deref(user.First_name), deref(user.Last_name), deref(user.Email),
		user.Created_at.Format("2006-01-02"))
	fmt.Fprintf(&b, "TASK DETAILS (%d tasks):\n%s\n\n", len(tasks), detailsJSON)
	fmt.Fprintf(&b, "STUDY STATISTICS DATA (Structured by time intervals):\n%s\n\n", statsJSON)
	b.WriteString(`Please provide insights in this exact JSON format:
{
  "performanceOverview": {
    "totalStudyHours": "X hours",
    "weeklyReport": "Analysis of weekly study patterns and trends",
    "monthlyReport": "Analysis of monthly study patterns and trends",
    "sixMonthlyReport": "Analysis of 6-month study patterns and trends",
    "yearlyReport": "Analysis of yearly study patterns and trends",
    "summary": "Brief overview of performance based on time intervals"
  },
  "strengthsWeaknesses": {
    "strengths": ["Subject 1", "Subject 2"],
    "weaknesses": ["Subject 1", "Subject 2"],
    "analysis": "Analysis of strengths and areas for improvement based on patterns"
  },
  "productivityInsights": {
    "dataDrivenInsights": "Specific insights derived from the actual study data patterns",
    "studyPatterns": "Detailed analysis of study patterns from the data",
    "recommendations": "Actionable recommendations based on data analysis"
  },
  "learningEfficiency": {
    "retention": "High/Medium/Low based on data patterns",
    "efficiencyScore": "Calculated efficiency score from study data",
    "improvementAreas": "Specific areas for improvement based on data analysis"
  },
  "aiFeedback": {
    "recommendations": ["Recommendation 1", "Recommendation 2", "Recommendation 3"],
    "strategies": "Personalized study strategy suggestions based on patterns"
  },
  "competitiveBenchmarking": {
    "currentRank": "Top X%",
    "improvementAreas": ["Area 1", "Area 2"],
    "top1PercentPath": "Steps to reach top 1% based on current performance"
  }
}

Focus on providing actionable, specific insights based on the actual data provided.
Use the actual numbers from the data. If data is limited, provide general recommendations.
`)
	return b.String(), nil
}

// extractInsights pulls the first JSON object out of the model's reply.
// Replies wrapped in prose or code fences still parse as long as a
// matching six-key object is present somewhere in the text.
func extractInsights(text string) (Insights, error) {
	var insights Insights

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return insights, fmt.Errorf("no JSON object in response")
	}

	if err := sonic.Unmarshal([]byte(text[start:end+1]), &insights); err != nil {
		return insights, err
	}
	if insights.PerformanceOverview.Summary == "" && insights.PerformanceOverview.TotalStudyHours == "" &&
		len(insights.AIFeedback.Recommendations) == 0 {
		return insights, fmt.Errorf("response JSON missing insight categories")
	}
	return insights, nil
}

// defaultInsights is the deterministic fallback: a complete six-category
// result computed purely from the stats, valid for any input including
// all-zero stats.
func defaultInsights(stats StudyStats) Insights {
	score := stats.ProductivityScore
	patterns := stats.StudyPatterns

	retention := "Low"
	if score > 70 {
		retention = "High"
	} else if score > 40 {
		retention = "Medium"
	}

	rank := "Top 60%"
	if score > 80 {
		rank = "Top 20%"
	} else if score > 60 {
		rank = "Top 40%"
	}

	return Insights{
		PerformanceOverview: PerformanceOverview{
			TotalStudyHours:  fmt.Sprintf("%g hours", stats.Totals.Hours),
			WeeklyReport:     "Weekly study patterns show consistent engagement",
			MonthlyReport:    "Monthly trends indicate steady progress",
			SixMonthlyReport: "6-month overview shows sustained study habits",
			YearlyReport:     "Yearly progress demonstrates commitment to learning",
			Summary:          fmt.Sprintf("You have studied %g hours with %d tasks completed.", stats.Totals.Hours, stats.Totals.Tasks),
		},
		StrengthsWeaknesses: StrengthsWeaknesses{
			Strengths:  []string{"Study consistency", "Task management"},
			Weaknesses: []string{"Time optimization", "Study depth"},
			Analysis:   "Focus on optimizing study time distribution and deepening subject understanding.",
		},
		ProductivityInsights: ProductivityInsights{
			DataDrivenInsights: fmt.Sprintf("Based on your data: %d active study days with %gh average per day", patterns.TotalStudyDays, patterns.AvgDailyHours),
			StudyPatterns:      fmt.Sprintf("Your study patterns show %g tasks per day with peak activity during focused hours", patterns.AvgDailyTasks),
			Recommendations:    "Optimize your peak study hours and maintain consistent daily engagement",
		},
		LearningEfficiency: LearningEfficiency{
			Retention:        retention,
			EfficiencyScore:  fmt.Sprintf("%d%% based on consistency and task distribution", score),
			ImprovementAreas: "Focus on consistent daily study habits and optimal time management",
		},
		AIFeedback: AIFeedback{
			Recommendations: []string{
				"Set smaller, achievable study goals",
				"Use the Pomodoro technique for better focus",
				"Study during your peak hours consistently",
				"Maintain daily study routines",
			},
			Strategies: "Focus on consistency and gradual improvement in study habits.",
		},
		CompetitiveBenchmarking: CompetitiveBenchmarking{
			CurrentRank:      rank,
			ImprovementAreas: []string{"Study consistency", "Time optimization"},
			Top1PercentPath:  "Maintain 90%+ daily consistency and optimize study time distribution for 6 months",
		},
	}
}

// Chat answers a free-form study question, adding the user's tasks as
// context when logged in. Unlike GenerateInsights this surfaces errors,
// since there is no meaningful fallback answer.
func (s *InsightService) Chat(ctx context.Context, user *models.User, tasks []models.Task, message string) (string, error) {
	var prompt string
	if user != nil {
		payload, err := sonic.Marshal(map[string]interface{}{
			"user":  map[string]string{"first_name": deref(user.First_name), "last_name": deref(user.Last_name), "email": deref(user.Email)},
			"tasks": tasks,
		})
		if err != nil {
			return "", err
		}
		prompt = fmt.Sprintf("You are a study assistant. The user is logged in. Here is their data: %s.\nUser: %s\nAssistant:", payload, message)
	} else {
		prompt = fmt.Sprintf("You are a study assistant for a study tracking app. The user is not logged in. Answer questions about the app or general study tips.\nUser: %s\nAssistant:", message)
	}
	return s.gen.GenerateText(ctx, prompt)
}

func lastActivity(tasks []models.Task) time.Time {
	var latest time.Time
	for _, t := range tasks {
		if t.CreatedAt.After(latest) {
			latest = t.CreatedAt
		}
	}
	return latest
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
