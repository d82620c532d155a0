package activity

import (
	"context"
	"time"

	"teampoints/internal/http/api"
	"teampoints/internal/models"
	"teampoints/internal/service"
	"teampoints/internal/service/access"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ActivityProvider
type ActivityProvider interface {
	Create(ctx context.Context, activity *models.Activity) (int64, error)
	Update(ctx context.Context, activity *models.Activity) error
	Delete(ctx context.Context, activityID int64) error
	GetByID(ctx context.Context, activityID int64) (*models.Activity, error)
	List(ctx context.Context) ([]*models.ActivityDetailed, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ActivityTypeProvider
type ActivityTypeProvider interface {
	GetByID(ctx context.Context, typeID int64) (*models.ActivityType, error)
}

type ActivityService struct {
	trm          service.TransactionManager
	activities   ActivityProvider
	userProvider UserProvider
	typeProvider ActivityTypeProvider
}

func NewActivityService(
	trm service.TransactionManager,
	activities ActivityProvider,
	userProvider UserProvider,
	typeProvider ActivityTypeProvider,
) *ActivityService {
	return &ActivityService{
		trm:          trm,
		activities:   activities,
		userProvider: userProvider,
		typeProvider: typeProvider,
	}
}

type CreateInput struct {
	UserID         int64
	ActivityTypeID int64
	// CreatedAt is stamped with the current time when absent.
	CreatedAt *time.Time
}

type UpdateInput struct {
	ActivityID     int64
	UserID         int64
	ActivityTypeID int64
	CreatedAt      *time.Time
}

func (s *ActivityService) Create(ctx context.Context, in CreateInput) (*api.ActivitySchema, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	resp := &api.ActivitySchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		user, err := s.userProvider.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}

		activityType, err := s.typeProvider.GetByID(ctx, in.ActivityTypeID)
		if err != nil {
			return err
		}

		activity := &models.Activity{
			UserID:         in.UserID,
			ActivityTypeID: in.ActivityTypeID,
		}
		if in.CreatedAt != nil {
			activity.CreatedAt = *in.CreatedAt
		} else {
			activity.CreatedAt = time.Now()
		}

		activityID, err := s.activities.Create(ctx, activity)
		if err != nil {
			return err
		}

		resp.ID = activityID
		resp.UserID = user.ID
		resp.UserName = user.Name
		resp.ActivityTypeID = activityType.ID
		resp.ActivityTypeName = activityType.Name
		resp.Points = activityType.Points
		resp.CreatedAt = activity.CreatedAt

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *ActivityService) Update(ctx context.Context, in UpdateInput) (*api.ActivitySchema, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	resp := &api.ActivitySchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		activity, err := s.activities.GetByID(ctx, in.ActivityID)
		if err != nil {
			return err
		}

		user, err := s.userProvider.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}

		activityType, err := s.typeProvider.GetByID(ctx, in.ActivityTypeID)
		if err != nil {
			return err
		}

		activity.UserID = in.UserID
		activity.ActivityTypeID = in.ActivityTypeID
		if in.CreatedAt != nil {
			activity.CreatedAt = *in.CreatedAt
		}

		if err := s.activities.Update(ctx, activity); err != nil {
			return err
		}

		resp.ID = activity.ID
		resp.UserID = user.ID
		resp.UserName = user.Name
		resp.ActivityTypeID = activityType.ID
		resp.ActivityTypeName = activityType.Name
		resp.Points = activityType.Points
		resp.CreatedAt = activity.CreatedAt

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *ActivityService) Delete(ctx context.Context, activityID int64) error {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return err
	}

	return s.activities.Delete(ctx, activityID)
}

func (s *ActivityService) List(ctx context.Context) (*api.ActivityListResponse, error) {
	activities, err := s.activities.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &api.ActivityListResponse{Activities: []api.ActivitySchema{}}
	for _, a := range activities {
		resp.Activities = append(resp.Activities, api.ActivitySchema{
			ID:               a.ID,
			UserID:           a.UserID,
			UserName:         a.UserName,
			ActivityTypeID:   a.ActivityTypeID,
			ActivityTypeName: a.ActivityTypeName,
			Points:           a.Points,
			CreatedAt:        a.CreatedAt,
		})
	}

	return resp, nil
}
