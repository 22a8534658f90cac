package domain

import "time"

type Question struct {
	ID        string
	Title     string
	Content   string
	AskerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuestionWithAsker joins the asker's username onto the question for list
// projections, so callers don't re-query users per row.
type QuestionWithAsker struct {
	Question
	AskerUsername string
}
