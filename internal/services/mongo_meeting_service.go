package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pathfinder/backend/internal/models"
)

type MongoMeetingService struct {
	meetingsCol *mongo.Collection
}

func NewMongoMeetingService(ctx context.Context, db *mongo.Database) *MongoMeetingService {
	col := db.Collection("meetings")

	// Best-effort indexes.
	_, _ = col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "mentor_id", Value: 1}, {Key: "date", Value: 1}}},
	})

	return &MongoMeetingService{meetingsCol: col}
}

var byDateAsc = options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

func (s *MongoMeetingService) Create(ctx context.Context, req *models.CreateMeetingRequest) (*models.Meeting, error) {
	meeting, err := newMeeting(uuid.New().String(), req)
	if err != nil {
		return nil, err
	}
	meeting.CreatedAt = time.Now().UTC()

	if meeting.Status == models.StatusScheduled {
		y, mo, d := meeting.Date.Date()
		dayStart := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
		n, err := s.meetingsCol.CountDocuments(ctx, bson.M{
			"mentor_id": meeting.MentorID,
			"time_slot": meeting.TimeSlot,
			"status":    models.StatusScheduled,
			"date":      bson.M{"$gte": dayStart, "$lt": dayStart.AddDate(0, 0, 1)},
		})
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrSlotTaken
		}
	}

	if _, err := s.meetingsCol.InsertOne(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *MongoMeetingService) ListByUser(ctx context.Context, userID string) ([]*models.Meeting, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

func (s *MongoMeetingService) ListByMentor(ctx context.Context, mentorID string) ([]*models.Meeting, error) {
	return s.find(ctx, bson.M{"mentor_id": mentorID})
}

func (s *MongoMeetingService) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := s.meetingsCol.FindOne(ctx, bson.M{"_id": id}).Decode(&meeting); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

func (s *MongoMeetingService) Update(ctx context.Context, mentorID, meetingID string, req *models.UpdateMeetingRequest) (*models.Meeting, error) {
	set := bson.M{}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.MeetingLink != nil {
		set["meeting_link"] = *req.MeetingLink
	}

	res := s.meetingsCol.FindOneAndUpdate(
		ctx,
		bson.M{"_id": meetingID, "mentor_id": mentorID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Meeting
	if err := res.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Distinguish not found vs unauthorized.
			n, err2 := s.meetingsCol.CountDocuments(ctx, bson.M{"_id": meetingID})
			if err2 != nil {
				return nil, err2
			}
			if n == 0 {
				return nil, ErrMeetingNotFound
			}
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return &updated, nil
}

func (s *MongoMeetingService) find(ctx context.Context, filter bson.M) ([]*models.Meeting, error) {
	cur, err := s.meetingsCol.Find(ctx, filter, byDateAsc)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	meetings := make([]*models.Meeting, 0)
	for cur.Next(ctx) {
		var m models.Meeting
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		meetings = append(meetings, &m)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return meetings, nil
}
