package qnasdk

// TimeLayout is the timestamp format used in all records.
const TimeLayout = "2006-01-02 15:04:05"

// Envelope is the uniform response shape: success plus either data or a
// human-readable message.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// QuestionRecord is the projection of a question returned by list, create
// and update operations.
type QuestionRecord struct {
	QuestionID    string `json:"question_id"`
	Title         string `json:"title"`
	AskerID       string `json:"asker_id"`
	AskerUsername string `json:"asker_username"`
	Content       string `json:"content"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// AnswerRecord is the projection of an answer.
type AnswerRecord struct {
	AnswerID         string `json:"answer_id"`
	Content          string `json:"content"`
	AnswererID       string `json:"answerer_id"`
	AnswererUsername string `json:"answerer_username"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// MessageRecord is the projection of a notification message.
type MessageRecord struct {
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// CreateQuestionRequest is the body of POST /v1/questions.
type CreateQuestionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateQuestionRequest is the body of PUT /v1/questions.
// Nil fields retain their current value.
type UpdateQuestionRequest struct {
	QuestionID string  `json:"question_id"`
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
}

// DeleteQuestionRequest is the body of DELETE /v1/questions.
type DeleteQuestionRequest struct {
	QuestionID string `json:"question_id"`
}

// CreateAnswerRequest is the body of POST /v1/answers.
type CreateAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Content    string `json:"content"`
}

// UpdateAnswerRequest is the body of PUT /v1/answers.
// A nil content retains the current value.
type UpdateAnswerRequest struct {
	AnswerID string  `json:"answer_id"`
	Content  *string `json:"content,omitempty"`
}

// DeleteAnswerRequest is the body of DELETE /v1/answers.
type DeleteAnswerRequest struct {
	AnswerID string `json:"answer_id"`
}

// MarkMessageReadRequest is the body of POST /v1/messages/read.
type MarkMessageReadRequest struct {
	MessageID string `json:"message_id"`
}

// EntitySearchRequest is the body of POST /v1/entities/{type}/search.
// All fields are optional; zero values are omitted from the remote query.
type EntitySearchRequest struct {
	Search  string `json:"search,omitempty"`
	Filter  string `json:"filter,omitempty"`
	Page    int    `json:"page,omitempty"`
	PerPage int    `json:"per_page,omitempty"`
}

// EntityDetailRequest is the body of POST /v1/entities/{type}/detail.
type EntityDetailRequest struct {
	ID string `json:"id"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// BootstrapRequest is the body of POST /v1/bootstrap.
type BootstrapRequest struct {
	Username string `json:"username"`
}

// BootstrapResponse carries the created admin identity and its access token.
type BootstrapResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
}
