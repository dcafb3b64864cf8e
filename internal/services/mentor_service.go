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

type MemoryMentorService struct {
	mu      sync.RWMutex
	mentors map[string]*models.Mentor
	byEmail map[string]string // email -> mentorID mapping
}

func NewMemoryMentorService() *MemoryMentorService {
	return &MemoryMentorService{
		mentors: make(map[string]*models.Mentor),
		byEmail: make(map[string]string),
	}
}

func copyMentor(m *models.Mentor) *models.Mentor {
	cp := *m
	return &cp
}

// sortMentors orders by rating, best first, then name.
func sortMentors(list []*models.Mentor) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Rating != list[j].Rating {
			return list[i].Rating > list[j].Rating
		}
		return list[i].Name < list[j].Name
	})
}

func (s *MemoryMentorService) insertLocked(m *models.Mentor) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	s.mentors[m.ID] = m
	s.byEmail[m.Email] = m.ID
}

func (s *MemoryMentorService) Create(ctx context.Context, req *models.CreateMentorRequest) (*models.Mentor, error) {
	mentor := req.ToMentor()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[mentor.Email]; exists {
		return nil, ErrMentorExists
	}
	s.insertLocked(mentor)
	return copyMentor(mentor), nil
}

func (s *MemoryMentorService) Claim(ctx context.Context, email, password string) (*models.Mentor, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.byEmail[models.NormalizeEmail(email)]
	if !exists {
		return nil, ErrMentorNotFound
	}
	mentor := s.mentors[id]
	if mentor.IsRegistered {
		return nil, ErrMentorAlreadyRegistered
	}
	mentor.PasswordHash = hash
	mentor.IsRegistered = true
	return copyMentor(mentor), nil
}

func (s *MemoryMentorService) Authenticate(ctx context.Context, email, password string) (*models.Mentor, error) {
	s.mu.RLock()
	id, exists := s.byEmail[models.NormalizeEmail(email)]
	var mentor *models.Mentor
	if exists {
		mentor = copyMentor(s.mentors[id])
	}
	s.mu.RUnlock()

	return checkMentorLogin(mentor, password)
}

// checkMentorLogin applies the login rules to a looked-up mentor (nil when absent).
func checkMentorLogin(mentor *models.Mentor, password string) (*models.Mentor, error) {
	if mentor == nil {
		return nil, ErrInvalidPassword
	}
	if !mentor.IsRegistered {
		return nil, ErrMentorNotRegistered
	}
	if !auth.CheckPassword(mentor.PasswordHash, password) {
		return nil, ErrInvalidPassword
	}
	return mentor, nil
}

func (s *MemoryMentorService) List(ctx context.Context) ([]*models.Mentor, error) {
	return s.filter(func(*models.Mentor) bool { return true }), nil
}

func (s *MemoryMentorService) ListByIndustry(ctx context.Context, industry string) ([]*models.Mentor, error) {
	return s.filter(func(m *models.Mentor) bool { return m.HasIndustry(industry) }), nil
}

func (s *MemoryMentorService) filter(keep func(*models.Mentor) bool) []*models.Mentor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Mentor, 0, len(s.mentors))
	for _, m := range s.mentors {
		if keep(m) {
			out = append(out, copyMentor(m))
		}
	}
	sortMentors(out)
	return out
}

func (s *MemoryMentorService) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mentor, exists := s.mentors[id]
	if !exists {
		return nil, ErrMentorNotFound
	}
	return copyMentor(mentor), nil
}

func (s *MemoryMentorService) GetMany(ctx context.Context, ids []string) (map[string]*models.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*models.Mentor, len(ids))
	for _, id := range ids {
		if m, ok := s.mentors[id]; ok {
			out[id] = copyMentor(m)
		}
	}
	return out, nil
}

func (s *MemoryMentorService) Seed(ctx context.Context, mentors []*models.Mentor) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, m := range mentors {
		cp := copyMentor(m)
		cp.Email = models.NormalizeEmail(cp.Email)
		cp.Industries = models.NormalizeIndustries(cp.Industries)
		if _, exists := s.byEmail[cp.Email]; exists {
			continue
		}
		s.insertLocked(cp)
		added++
	}
	return added, nil
}
