package server

import (
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"github.com/mpsalisbury/brpts/pkg/cards"
	"github.com/mpsalisbury/brpts/pkg/table"
)

// Used when NewSessions is given no positive limit.
const DefaultMaxSessions = 1000

// Sessions gives every browser its own table. It holds at most max tables;
// adding one more evicts the least recently used.
type Sessions struct {
	mu        sync.Mutex
	tables    map[string]*session
	newDealer func() *cards.Dealer
	max       int
	clock     uint64
}

type session struct {
	table    *table.Table
	lastUsed uint64
}

func NewSessions(newDealer func() *cards.Dealer, maxSessions int) *Sessions {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Sessions{
		tables:    make(map[string]*session),
		newDealer: newDealer,
		max:       maxSessions,
	}
}

// DealerFactory returns dealers seeded from the clock when seed is zero.
// Otherwise the n-th dealer is seeded with seed+n so runs are reproducible
// while sessions still get different hands.
func DealerFactory(seed int64) func() *cards.Dealer {
	if seed == 0 {
		return cards.NewRandomDealer
	}
	var n atomic.Int64
	return func() *cards.Dealer {
		return cards.NewDealer(rand.NewSource(seed + n.Add(1) - 1))
	}
}

// Get returns the table for id. Unknown or malformed ids get a new session,
// whose id is returned.
func (s *Sessions) Get(id string) (string, *table.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock++
	if _, err := uuid.Parse(id); err == nil {
		if sn, ok := s.tables[id]; ok {
			sn.lastUsed = s.clock
			return id, sn.table
		}
	}
	for len(s.tables) >= s.max {
		s.evictOldest()
	}
	id = uuid.NewString()
	t := table.New(s.newDealer())
	s.tables[id] = &session{table: t, lastUsed: s.clock}
	return id, t
}

func (s *Sessions) evictOldest() {
	var oldestID string
	var oldest uint64
	for id, sn := range s.tables {
		if oldestID == "" || sn.lastUsed < oldest {
			oldestID, oldest = id, sn.lastUsed
		}
	}
	delete(s.tables, oldestID)
}

func (s *Sessions) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := maps.Keys(s.tables)
	sort.Strings(ids)
	return ids
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tables)
}
