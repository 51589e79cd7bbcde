package domain

import (
	"time"

	"github.com/google/uuid"
)

// Signup is a launch-list email registration. Write-only from the site.
type Signup struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// SurveyAnswers is the interest survey as the visitor filled it in.
// Multi-select fields hold the selected catalogue entries.
type SurveyAnswers struct {
	Email              string
	Destinations       []string
	BudgetRange        string
	TravelStyle        []string
	AccessibilityNeeds []string
	AdditionalComments string
}

// SurveyResponse is the stored form of SurveyAnswers: multi-select fields
// are flattened with JoinSelections. There is no inverse; the stored text
// is for humans reading the table.
type SurveyResponse struct {
	ID                 uuid.UUID
	Email              string
	Destinations       string
	BudgetRange        string
	TravelStyle        string
	AccessibilityNeeds string
	AdditionalComments string
	CreatedAt          time.Time
}
