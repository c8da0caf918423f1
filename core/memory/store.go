package memory

import (
	"fmt"
	"strings"
	"sync"
)

// Reserved keys seeded at store creation. No handler rewrites them.
const (
	KeyAIName       = "AI_NAME"
	KeyOwnerCreator = "OWNER_CREATOR"
	KeyRole         = "role"
	KeyDOB          = "dob"
)

// Fields of the nested user_info mapping.
const (
	UserName     = "name"
	UserGender   = "gender"
	UserBirthday = "birthday"
	UserLocation = "location"
)

// Store is everything the assistant knows: identity constants seeded at
// creation, free-form facts keyed by user phrasing, and a nested user
// profile. Entries are only ever added or overwritten, never removed.
// It is shared mutable state, so all access goes through the mutex.
type Store struct {
	mu       sync.RWMutex
	facts    map[string]string
	userInfo map[string]string
}

func NewStore(aiName, ownerCreator string) *Store {
	s := &Store{
		facts:    map[string]string{},
		userInfo: map[string]string{},
	}
	if aiName != "" {
		s.facts[KeyAIName] = aiName
	}
	if ownerCreator != "" {
		s.facts[KeyOwnerCreator] = ownerCreator
	}
	return s
}

func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.facts[key]
	return v, ok
}

func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Set stores a top-level fact. Callers pass keys already lower-cased;
// seed keys are the only upper-case entries in the store.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts[key] = value
}

func (s *Store) UserInfo(field string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.userInfo[field]
	return v, ok
}

func (s *Store) SetUserInfo(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userInfo[field] = value
}

// StoreFact appends a free-form fact under the first unused fact_N key
// and returns the key it was stored under.
func (s *Store) StoreFact(fact string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := 0
	for {
		key := fmt.Sprintf("fact_%d", i)
		if _, ok := s.facts[key]; !ok {
			s.facts[key] = fact
			return key
		}
		i++
	}
}

// Facts returns a copy of the top-level facts, mostly useful in tests.
func (s *Store) Facts() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.facts))
	for k, v := range s.facts {
		out[k] = v
	}
	return out
}

// IsInterrogative reports whether a candidate fact key is a question
// word. Assertions with such keys are questions in disguise and must be
// left to the remote model.
func IsInterrogative(key string) bool {
	switch strings.ToLower(key) {
	case "who", "what", "where", "when", "why", "how":
		return true
	}
	return false
}
