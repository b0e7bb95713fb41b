package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/lib"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/repositories"
)

const dateLayout = "2006-01-02"

// ActivityService records typed activity events per user and folds them into
// the per-date, per-type count table behind the profile heatmap.
type ActivityService struct {
	activities repositories.ActivityRepository
	users      repositories.UserRepository
}

func NewActivityService(activities repositories.ActivityRepository, users repositories.UserRepository) *ActivityService {
	return &ActivityService{activities: activities, users: users}
}

// LogActivity persists one activity event for the user behind userEmail. It is
// a side channel of unrelated user actions and must never fail them: an
// unresolved user, an unknown type or a failed write is logged and dropped.
func (s *ActivityService) LogActivity(ctx context.Context, userEmail, typeString, description string) {
	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		lib.Logger.Warn("skipping activity log, user not resolved",
			zap.String("email", userEmail),
			zap.Error(err))
		return
	}

	activityType, ok := models.ParseActivityType(typeString)
	if !ok {
		lib.Logger.Warn("skipping activity log, unknown activity type",
			zap.String("type", typeString),
			zap.String("email", userEmail))
		return
	}

	activity := &models.Activity{
		UserId:      user.Id,
		Type:        activityType,
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := s.activities.Insert(ctx, activity); err != nil {
		lib.Logger.Error("failed to persist activity",
			zap.String("type", string(activityType)),
			zap.String("user", user.Id.Hex()),
			zap.Error(err))
	}
}

// GetUserActivities returns the user's history, restricted to the inclusive
// [startDate, endDate] calendar range when both bounds are given. Malformed
// dates propagate to the caller.
func (s *ActivityService) GetUserActivities(ctx context.Context, userID primitive.ObjectID, startDate, endDate string) ([]models.Activity, error) {
	if startDate != "" && endDate != "" {
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return nil, err
		}
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return nil, err
		}
		// End bound is inclusive at day granularity
		return s.activities.FindByUserIDBetween(ctx, userID, start, end.AddDate(0, 0, 1))
	}
	return s.activities.FindByUserID(ctx, userID)
}

// GetHeatmapData recomputes the date-by-type count matrix from the user's full
// activity history on every call.
func (s *ActivityService) GetHeatmapData(ctx context.Context, userID primitive.ObjectID) (*models.HeatmapData, error) {
	activities, err := s.activities.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := &models.HeatmapData{
		Heatmap:     make(map[string]map[string]int),
		DailyTotals: make(map[string]int),
	}

	for _, activity := range activities {
		date := activity.CreatedAt.Format(dateLayout)
		day, ok := data.Heatmap[date]
		if !ok {
			day = make(map[string]int)
			data.Heatmap[date] = day
		}
		day[string(activity.Type)]++
		data.DailyTotals[date]++
	}

	return data, nil
}
