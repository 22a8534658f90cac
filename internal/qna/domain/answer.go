package domain

import "time"

type Answer struct {
	ID         string
	QuestionID string
	Content    string
	AnswererID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AnswerWithAnswerer joins the answerer's username onto the answer.
type AnswerWithAnswerer struct {
	Answer
	AnswererUsername string
}
