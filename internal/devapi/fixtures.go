package devapi

import (
	"context"

	"github.com/dmitrijs2005/studydash/internal/client/models"
)

// Source supplies the payloads for one user.
type Source interface {
	DashboardStats(ctx context.Context, uid string) (*models.DashboardStats, error)
	Notes(ctx context.Context, uid string) ([]models.NoteSummary, error)
}

// Fixed returns the same data for every user.
type Fixed struct {
	Stats    *models.DashboardStats
	NoteList []models.NoteSummary
}

func (f Fixed) DashboardStats(context.Context, string) (*models.DashboardStats, error) {
	return f.Stats, nil
}

func (f Fixed) Notes(context.Context, string) ([]models.NoteSummary, error) {
	if f.NoteList == nil {
		return []models.NoteSummary{}, nil
	}
	return f.NoteList, nil
}

// Sample is the mock data of the production backend's placeholder endpoints.
func Sample() Fixed {
	return Fixed{
		Stats: &models.DashboardStats{
			NotesUploaded:   models.Ptr(2),
			QuizzesSolved:   models.Ptr(0),
			AverageAccuracy: models.Ptr(0.0),
			DaysStreak:      models.Ptr(0),
			StudyTimeHours:  models.Ptr(87.5),
			WeeklyProgress: []models.WeeklyProgress{
				{Day: "Mon", TimeH: 2.5, Accuracy: 85},
				{Day: "Tue", TimeH: 3.2, Accuracy: 76},
				{Day: "Wed", TimeH: 1.8, Accuracy: 92},
				{Day: "Thu", TimeH: 4.1, Accuracy: 88},
				{Day: "Fri", TimeH: 2.9, Accuracy: 76},
				{Day: "Sat", TimeH: 5.0, Accuracy: 90},
				{Day: "Sun", TimeH: 3.5, Accuracy: 82},
			},
			TopicMastery: []models.TopicMastery{
				{Topic: "Linear Algebra", Percentage: 92, Change: models.Ptr(5.0)},
				{Topic: "Operating Systems", Percentage: 88, Change: models.Ptr(3.0)},
				{Topic: "Machine Learning", Percentage: 85, Change: models.Ptr(-2.0)},
				{Topic: "Database Systems", Percentage: 91, Change: models.Ptr(7.0)},
			},
		},
		NoteList: []models.NoteSummary{
			{
				ID:          "6650f1a2c4e1",
				Filename:    "eigenvalues.pdf",
				PreviewText: "An eigenvector of a square matrix A is a non-zero vector v such that Av = λv...",
				Topics:      []string{"Linear Algebra", "Eigenvalues"},
				UploadDate:  "2026-10-12T09:30:00Z",
			},
			{
				ID:          "6650f1a2c4e2",
				Filename:    "scheduling.png",
				PreviewText: "Round-robin scheduling assigns each process a fixed time quantum.",
				Topics:      []string{},
				UploadDate:  "2026-10-10T17:05:00Z",
			},
		},
	}
}
