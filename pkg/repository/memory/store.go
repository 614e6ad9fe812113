// Package memory is an in-process implementation of the repositories,
// used by tests and by the server when DATABASE_URL is not configured.
package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/talentmatch/pkg/candidate"
	"github.com/artem13815/talentmatch/pkg/job"
	"github.com/artem13815/talentmatch/pkg/match"
)

type pairKey struct {
	job, candidate uuid.UUID
}

// Store holds all entities behind a single lock.
type Store struct {
	mu         sync.RWMutex
	jobs       map[uuid.UUID]job.Job
	candidates map[uuid.UUID]candidate.Candidate
	matches    map[uuid.UUID]match.Match
	pairs      map[pairKey]uuid.UUID
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{
		jobs:       make(map[uuid.UUID]job.Job),
		candidates: make(map[uuid.UUID]candidate.Candidate),
		matches:    make(map[uuid.UUID]match.Match),
		pairs:      make(map[pairKey]uuid.UUID),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the timestamp source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Jobs() *JobRepository             { return &JobRepository{s: s} }
func (s *Store) Candidates() *CandidateRepository { return &CandidateRepository{s: s} }
func (s *Store) Matches() *MatchRepository        { return &MatchRepository{s: s} }
func (s *Store) Dashboard() *DashboardRepository  { return &DashboardRepository{s: s} }

func cloneJob(j job.Job) job.Job {
	j.RequiredSkills = slices.Clone(j.RequiredSkills)
	j.NiceToHaveSkills = slices.Clone(j.NiceToHaveSkills)
	j.Embedding = slices.Clone(j.Embedding)
	return j
}

func cloneCandidate(c candidate.Candidate) candidate.Candidate {
	c.ParsedSkills = slices.Clone(c.ParsedSkills)
	c.Embedding = slices.Clone(c.Embedding)
	return c
}

func cloneMatch(m match.Match) match.Match {
	m.MatchedSkills = slices.Clone(m.MatchedSkills)
	m.MissingSkills = slices.Clone(m.MissingSkills)
	m.EvidenceSnippets = slices.Clone(m.EvidenceSnippets)
	if m.Candidate != nil {
		cs := *m.Candidate
		m.Candidate = &cs
	}
	return m
}

var (
	_ job.Repository       = (*JobRepository)(nil)
	_ candidate.Repository = (*CandidateRepository)(nil)
	_ match.Repository     = (*MatchRepository)(nil)
)
