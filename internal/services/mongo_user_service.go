package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pathfinder/backend/internal/auth"
	"github.com/pathfinder/backend/internal/models"
)

type MongoUserService struct {
	usersCol *mongo.Collection
}

func NewMongoUserService(ctx context.Context, db *mongo.Database) *MongoUserService {
	col := db.Collection("users")

	// Best-effort indexes.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoUserService{usersCol: col}
}

func (s *MongoUserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	user, err := buildUser(req)
	if err != nil {
		return nil, err
	}

	n, err := s.usersCol.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrEmailExists
	}

	if _, err := s.usersCol.InsertOne(ctx, user); err != nil {
		// The unique index catches a concurrent registration.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

func (s *MongoUserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.usersCol.FindOne(ctx, bson.M{"email": models.NormalizeEmail(email)}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidPassword
	}
	return &user, nil
}

func (s *MongoUserService) List(ctx context.Context) ([]*models.User, error) {
	return s.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

func (s *MongoUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.usersCol.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserService) GetMany(ctx context.Context, ids []string) (map[string]*models.User, error) {
	out := make(map[string]*models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	users, err := s.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func (s *MongoUserService) Update(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	set := bson.M{}
	if req.FullName != nil {
		set["full_name"] = *req.FullName
	}
	if req.Age != nil {
		set["age"] = *req.Age
	}
	if req.ProfileImage != nil {
		set["profile_image"] = *req.ProfileImage
	}
	if req.Education != nil {
		set["education"] = *req.Education
	}
	if req.FieldOfStudy != nil {
		set["field_of_study"] = *req.FieldOfStudy
	}
	if req.Institution != nil {
		set["institution"] = *req.Institution
	}
	if req.Certificates != nil {
		set["certificates"] = *req.Certificates
	}
	if req.TechnicalSkills != nil {
		set["technical_skills"] = *req.TechnicalSkills
	}
	if req.SoftSkills != nil {
		set["soft_skills"] = *req.SoftSkills
	}
	if req.DesiredRoles != nil {
		set["desired_roles"] = *req.DesiredRoles
	}
	if req.IndustryPreference != nil {
		set["industry_preference"] = models.NormalizeIndustries(*req.IndustryPreference)
	}
	if req.Timeline != nil {
		set["timeline"] = *req.Timeline
	}
	if req.SpecificGoal != nil {
		set["specific_goal"] = *req.SpecificGoal
	}
	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	res := s.usersCol.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.User
	if err := res.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *MongoUserService) Delete(ctx context.Context, id string) error {
	res, err := s.usersCol.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *MongoUserService) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*models.User, error) {
	cur, err := s.usersCol.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := make([]*models.User, 0)
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
