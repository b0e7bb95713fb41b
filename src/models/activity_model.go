package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Activity struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserId      primitive.ObjectID `json:"userId" bson:"userId"`
	Type        ActivityType       `json:"type" bson:"type"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

type ActivityType string

const (
	ActivityTypeLogin               ActivityType = "LOGIN"
	ActivityTypeAssessmentCreated   ActivityType = "ASSESSMENT_CREATED"
	ActivityTypeAssessmentCompleted ActivityType = "ASSESSMENT_COMPLETED"
	ActivityTypeSubmission          ActivityType = "SUBMISSION"
	ActivityTypePost                ActivityType = "POST"
	ActivityTypeComment             ActivityType = "COMMENT"
	ActivityTypeConnection          ActivityType = "CONNECTION"
	ActivityTypeEventRegistration   ActivityType = "EVENT_REGISTRATION"
	ActivityTypeProfileUpdate       ActivityType = "PROFILE_UPDATE"
)

var activityTypes = map[string]ActivityType{
	"LOGIN":                ActivityTypeLogin,
	"ASSESSMENT_CREATED":   ActivityTypeAssessmentCreated,
	"ASSESSMENT_COMPLETED": ActivityTypeAssessmentCompleted,
	"SUBMISSION":           ActivityTypeSubmission,
	"POST":                 ActivityTypePost,
	"COMMENT":              ActivityTypeComment,
	"CONNECTION":           ActivityTypeConnection,
	"EVENT_REGISTRATION":   ActivityTypeEventRegistration,
	"PROFILE_UPDATE":       ActivityTypeProfileUpdate,
}

// ParseActivityType matches free-text type input against the known set,
// case-insensitively. The second return is false for unrecognized input.
func ParseActivityType(s string) (ActivityType, bool) {
	t, ok := activityTypes[strings.ToUpper(strings.TrimSpace(s))]
	return t, ok
}

// HeatmapData is derived on demand from a user's activity history and never persisted.
type HeatmapData struct {
	Heatmap     map[string]map[string]int `json:"heatmap"`
	DailyTotals map[string]int            `json:"dailyTotals"`
}
