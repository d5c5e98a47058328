package repository

import (
	"errors"
	"sort"
	"sync"
	"time"

	"pathiram/models"

	"golang.org/x/crypto/bcrypt"
)

// MemoryStore implements every record repository in process memory. It backs
// unit tests and makes the server runnable with DB_TYPE=memory during
// development; nothing survives a restart.
type MemoryStore struct {
	mu        sync.RWMutex
	parties   map[string]models.Party
	locations map[string]models.Location
	preparers map[string]models.DocumentPreparer
	drafts    map[string]models.DeedDraft
	users     map[string]models.AppUser
	nextUser  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		parties:   make(map[string]models.Party),
		locations: make(map[string]models.Location),
		preparers: make(map[string]models.DocumentPreparer),
		drafts:    make(map[string]models.DeedDraft),
		users:     make(map[string]models.AppUser),
	}
}

func (s *MemoryStore) SaveParty(party *models.Party) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties[party.ID] = *party
	return nil
}

func (s *MemoryStore) GetAllParties() ([]*models.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Party, 0, len(s.parties))
	for _, p := range s.parties {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) GetParty(id string) (*models.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.parties[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *MemoryStore) DeleteParty(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.parties, id)
	return nil
}

func (s *MemoryStore) SaveLocation(location *models.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[location.ID] = *location
	return nil
}

func (s *MemoryStore) GetAllLocations() ([]*models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Location, 0, len(s.locations))
	for _, l := range s.locations {
		l := l
		out = append(out, &l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].District < out[j].District })
	return out, nil
}

func (s *MemoryStore) GetLocation(id string) (*models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.locations[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (s *MemoryStore) DeleteLocation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locations, id)
	return nil
}

func (s *MemoryStore) SavePreparer(preparer *models.DocumentPreparer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preparers[preparer.ID] = *preparer
	return nil
}

func (s *MemoryStore) GetAllPreparers() ([]*models.DocumentPreparer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.DocumentPreparer, 0, len(s.preparers))
	for _, p := range s.preparers {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) GetPreparer(id string) (*models.DocumentPreparer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.preparers[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *MemoryStore) DeletePreparer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.preparers, id)
	return nil
}

func (s *MemoryStore) SaveDraft(draft *models.DeedDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now
	s.drafts[draft.ID] = *draft
	return nil
}

func (s *MemoryStore) GetAllDrafts() ([]*models.DeedDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.DeedDraft, 0, len(s.drafts))
	for _, d := range s.drafts {
		d := d
		out = append(out, &d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (s *MemoryStore) GetDraft(id string) (*models.DeedDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.drafts[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (s *MemoryStore) DeleteDraft(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

func (s *MemoryStore) CreateUser(user *models.AppUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return errors.New("email already exists")
	}
	if user.Password == "" {
		return errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	s.nextUser++
	user.ID = s.nextUser
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	s.users[user.Email] = *user
	return nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.AppUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[email]; ok {
		return &u, nil
	}
	return nil, nil
}
