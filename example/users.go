package main

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
)

var errDuplicateEmail = errors.New("email already registered")

type user struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userStore struct {
	mu     sync.RWMutex
	nextID int
	users  map[int]user
}

func newUserStore() *userStore {
	return &userStore{nextID: 1, users: make(map[int]user)}
}

func (s *userStore) create(name, email string) (user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return user{}, errDuplicateEmail
		}
	}
	u := user{ID: s.nextID, Name: name, Email: email}
	s.users[u.ID] = u
	s.nextID++
	return u, nil
}

func (s *userStore) get(id int) (user, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

func (s *userStore) list() []user {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b user) int { return a.ID - b.ID })
	return out
}

func classifyError(err error) (int, bool) {
	if errors.Is(err, errDuplicateEmail) {
		return http.StatusConflict, true
	}
	return 0, false
}

func etag(u user) string {
	return `"user-` + strconv.Itoa(u.ID) + `"`
}
