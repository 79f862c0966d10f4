package models

// DashboardStats is the `stats` object of GET /api/dashboard-stats.
type DashboardStats struct {
	StudyTimeHours  *float64 `json:"study_time_hours,omitempty"`
	AverageAccuracy *float64 `json:"average_accuracy,omitempty"`
	DaysStreak      *int     `json:"days_streak,omitempty"`
	NotesUploaded   *int     `json:"notes_uploaded,omitempty"`
	QuizzesSolved   *int     `json:"quizzes_solved,omitempty"`

	WeeklyProgress []WeeklyProgress `json:"weekly_progress,omitempty"`
	TopicMastery   []TopicMastery   `json:"topic_mastery,omitempty"`
}

// WeeklyProgress is one day of study time and quiz accuracy.
type WeeklyProgress struct {
	Day      string  `json:"day"`
	TimeH    float64 `json:"time_h"`
	Accuracy float64 `json:"accuracy"`
}

// TopicMastery is the mastery percentage of one topic. Percentage is in
// [0,100] as delivered by the backend; Change is the signed difference to the
// previous period and may be absent.
type TopicMastery struct {
	Topic      string   `json:"topic"`
	Percentage float64  `json:"percentage"`
	Change     *float64 `json:"change,omitempty"`
}
