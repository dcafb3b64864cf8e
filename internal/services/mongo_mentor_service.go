package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pathfinder/backend/internal/auth"
	"github.com/pathfinder/backend/internal/models"
)

type MongoMentorService struct {
	mentorsCol *mongo.Collection
}

func NewMongoMentorService(ctx context.Context, db *mongo.Database) *MongoMentorService {
	col := db.Collection("mentors")

	// Best-effort indexes.
	_, _ = col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "industries", Value: 1}}},
	})

	return &MongoMentorService{mentorsCol: col}
}

var mentorSort = options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}})

func (s *MongoMentorService) Create(ctx context.Context, req *models.CreateMentorRequest) (*models.Mentor, error) {
	mentor := req.ToMentor()
	mentor.ID = uuid.New().String()
	mentor.CreatedAt = time.Now().UTC()

	if _, err := s.mentorsCol.InsertOne(ctx, mentor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrMentorExists
		}
		return nil, err
	}
	return mentor, nil
}

func (s *MongoMentorService) Claim(ctx context.Context, email, password string) (*models.Mentor, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	email = models.NormalizeEmail(email)

	res := s.mentorsCol.FindOneAndUpdate(
		ctx,
		bson.M{"email": email, "is_registered": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"password": hash, "is_registered": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Mentor
	if err := res.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Distinguish not found vs already claimed.
			n, err2 := s.mentorsCol.CountDocuments(ctx, bson.M{"email": email})
			if err2 != nil {
				return nil, err2
			}
			if n == 0 {
				return nil, ErrMentorNotFound
			}
			return nil, ErrMentorAlreadyRegistered
		}
		return nil, err
	}
	return &updated, nil
}

func (s *MongoMentorService) Authenticate(ctx context.Context, email, password string) (*models.Mentor, error) {
	var mentor models.Mentor
	err := s.mentorsCol.FindOne(ctx, bson.M{"email": models.NormalizeEmail(email)}).Decode(&mentor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return checkMentorLogin(nil, password)
	}
	if err != nil {
		return nil, err
	}
	return checkMentorLogin(&mentor, password)
}

func (s *MongoMentorService) List(ctx context.Context) ([]*models.Mentor, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoMentorService) ListByIndustry(ctx context.Context, industry string) ([]*models.Mentor, error) {
	return s.find(ctx, bson.M{"industries": models.NormalizeIndustry(industry)})
}

func (s *MongoMentorService) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	var mentor models.Mentor
	if err := s.mentorsCol.FindOne(ctx, bson.M{"_id": id}).Decode(&mentor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}
	return &mentor, nil
}

func (s *MongoMentorService) GetMany(ctx context.Context, ids []string) (map[string]*models.Mentor, error) {
	out := make(map[string]*models.Mentor, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	mentors, err := s.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, m := range mentors {
		out[m.ID] = m
	}
	return out, nil
}

// Seed upserts by email and never overwrites an existing record.
func (s *MongoMentorService) Seed(ctx context.Context, mentors []*models.Mentor) (int, error) {
	added := 0
	for _, m := range mentors {
		doc := *m
		doc.Email = models.NormalizeEmail(doc.Email)
		doc.Industries = models.NormalizeIndustries(doc.Industries)
		if doc.ID == "" {
			doc.ID = uuid.New().String()
		}
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = time.Now().UTC()
		}

		res, err := s.mentorsCol.UpdateOne(
			ctx,
			bson.M{"email": doc.Email},
			bson.M{"$setOnInsert": doc},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return added, err
		}
		if res.UpsertedCount > 0 {
			added++
		}
	}
	return added, nil
}

// DeleteAll empties the collection. Used by the seed command's reset flag.
func (s *MongoMentorService) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.mentorsCol.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *MongoMentorService) find(ctx context.Context, filter bson.M) ([]*models.Mentor, error) {
	cur, err := s.mentorsCol.Find(ctx, filter, mentorSort)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	mentors := make([]*models.Mentor, 0)
	for cur.Next(ctx) {
		var m models.Mentor
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		mentors = append(mentors, &m)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return mentors, nil
}
