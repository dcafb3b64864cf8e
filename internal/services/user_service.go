package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pathfinder/backend/internal/auth"
	"github.com/pathfinder/backend/internal/models"
)

type MemoryUserService struct {
	mu      sync.RWMutex
	users   map[string]*models.User
	byEmail map[string]string // email -> userID mapping
}

func NewMemoryUserService() *MemoryUserService {
	return &MemoryUserService{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func copyUser(u *models.User) *models.User {
	cp := *u
	return &cp
}

// buildUser hashes the password and fills a new user from a registration.
func buildUser(req *models.RegisterRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ID:                 uuid.New().String(),
		FullName:           req.FullName,
		Email:              models.NormalizeEmail(req.Email),
		PasswordHash:       hash,
		Age:                req.Age,
		ProfileImage:       req.ProfileImage,
		Education:          req.Education,
		FieldOfStudy:       req.FieldOfStudy,
		Institution:        req.Institution,
		Certificates:       req.Certificates,
		TechnicalSkills:    req.TechnicalSkills,
		SoftSkills:         req.SoftSkills,
		DesiredRoles:       req.DesiredRoles,
		IndustryPreference: models.NormalizeIndustries(req.IndustryPreference),
		Timeline:           req.Timeline,
		SpecificGoal:       req.SpecificGoal,
		CreatedAt:          time.Now().UTC(),
	}
	if u.Certificates == nil {
		u.Certificates = []models.Certificate{}
	}
	if u.TechnicalSkills == nil {
		u.TechnicalSkills = []models.Skill{}
	}
	if u.SoftSkills == nil {
		u.SoftSkills = []models.Skill{}
	}
	if u.DesiredRoles == nil {
		u.DesiredRoles = []string{}
	}
	return u, nil
}

func (s *MemoryUserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	user, err := buildUser(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return nil, ErrEmailExists
	}

	s.users[user.ID] = user
	s.byEmail[user.Email] = user.ID

	return copyUser(user), nil
}

func (s *MemoryUserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	s.mu.RLock()
	userID, exists := s.byEmail[models.NormalizeEmail(email)]
	var user *models.User
	if exists {
		user = copyUser(s.users[userID])
	}
	s.mu.RUnlock()

	if !exists {
		return nil, ErrUserNotFound
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidPassword
	}
	return user, nil
}

func (s *MemoryUserService) List(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, copyUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}

	return copyUser(user), nil
}

func (s *MemoryUserService) GetMany(ctx context.Context, ids []string) (map[string]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*models.User, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = copyUser(u)
		}
	}
	return out, nil
}

func (s *MemoryUserService) Update(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	req.Apply(user)
	if req.IndustryPreference != nil {
		user.IndustryPreference = models.NormalizeIndustries(user.IndustryPreference)
	}
	return copyUser(user), nil
}

func (s *MemoryUserService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[id]
	if !exists {
		return ErrUserNotFound
	}
	delete(s.byEmail, user.Email)
	delete(s.users, id)
	return nil
}
