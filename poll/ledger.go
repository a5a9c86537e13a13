// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"fmt"
	"strings"
)

// state is one immutable version of the store. Mutations work on a clone
// and copy any nested map before writing to it, so a published state is
// never changed and may be read without the store lock.
type state struct {
	order []string                     // questions in creation order
	polls map[string]*Poll             // question -> poll
	votes map[string]map[string]string // participant -> question -> option
}

func newState() *state {
	return &state{
		polls: make(map[string]*Poll),
		votes: make(map[string]map[string]string),
	}
}

// clone copies the top-level containers only; nested values are shared
// until a mutation replaces them.
func (s *state) clone() *state {
	next := &state{
		order: make([]string, len(s.order)),
		polls: make(map[string]*Poll, len(s.polls)),
		votes: make(map[string]map[string]string, len(s.votes)),
	}
	copy(next.order, s.order)
	for q, p := range s.polls {
		next.polls[q] = p
	}
	for pid, choices := range s.votes {
		next.votes[pid] = choices
	}
	return next
}

func (s *state) hasVoted(participantID, question string) bool {
	_, ok := s.choice(participantID, question)
	return ok
}

func (s *state) choice(participantID, question string) (string, bool) {
	choices, ok := s.votes[participantID]
	if !ok {
		return "", false
	}
	opt, ok := choices[question]
	return opt, ok
}

// record inserts a ledger entry. The caller has already checked that no
// entry exists for the pair.
func (s *state) record(participantID, question, option string) {
	old := s.votes[participantID]
	choices := make(map[string]string, len(old)+1)
	for q, opt := range old {
		choices[q] = opt
	}
	choices[question] = option
	s.votes[participantID] = choices
}

// clearForQuestion drops every ledger entry for question
func (s *state) clearForQuestion(question string) {
	for pid, old := range s.votes {
		if _, ok := old[question]; !ok {
			continue
		}
		if len(old) == 1 {
			delete(s.votes, pid)
			continue
		}
		choices := make(map[string]string, len(old)-1)
		for q, opt := range old {
			if q != question {
				choices[q] = opt
			}
		}
		s.votes[pid] = choices
	}
}

func (s *state) clearAll() {
	s.votes = make(map[string]map[string]string)
}

// ledgerCount returns the number of ledger entries for question
func (s *state) ledgerCount(question string) int {
	n := 0
	for _, choices := range s.votes {
		if _, ok := choices[question]; ok {
			n++
		}
	}
	return n
}

func (s *state) removePoll(question string) {
	delete(s.polls, question)
	for i, q := range s.order {
		if q == question {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.clearForQuestion(question)
}

// views renders every poll in creation order
func (s *state) views() []PollView {
	views := make([]PollView, 0, len(s.order))
	for _, q := range s.order {
		views = append(views, s.polls[q].view())
	}
	return views
}

func (s *state) pollView(question string) (PollView, error) {
	p, ok := s.polls[strings.TrimSpace(question)]
	if !ok {
		return PollView{}, fmt.Errorf("%w: %q", ErrNotFound, question)
	}
	return p.view(), nil
}

func (s *state) choicesOf(participantID string) map[string]string {
	out := make(map[string]string, len(s.votes[participantID]))
	for q, opt := range s.votes[participantID] {
		out[q] = opt
	}
	return out
}
