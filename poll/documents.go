// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"context"
	"log/slog"
)

// Documents is the persisted form of a store: the poll tallies and the vote
// ledger, always written together as whole documents.
type Documents struct {
	Polls []PollRecord                  `json:"polls"`
	Votes map[string]map[string]string `json:"votes"`
}

// PollRecord is one entry of the polls document, question -> option counts
// in option order.
type PollRecord struct {
	Question string        `json:"question"`
	Tally    []OptionCount `json:"tally"`
}

// Persister stores and loads Documents
type Persister interface {
	Load(ctx context.Context) (Documents, error)
	Save(ctx context.Context, docs Documents) error
}

func (s *state) documents() Documents {
	docs := Documents{
		Polls: make([]PollRecord, 0, len(s.order)),
		Votes: make(map[string]map[string]string, len(s.votes)),
	}
	for _, q := range s.order {
		v := s.polls[q].view()
		docs.Polls = append(docs.Polls, PollRecord{Question: v.Question, Tally: v.Options})
	}
	for pid, choices := range s.votes {
		c := make(map[string]string, len(choices))
		for q, opt := range choices {
			c[q] = opt
		}
		docs.Votes[pid] = c
	}
	return docs
}

// stateFromDocuments rebuilds a state, skipping invalid polls and ledger
// entries that no longer point at a current option. Tallies that disagree
// with the ledger are recounted from it.
func stateFromDocuments(docs Documents) *state {
	s := newState()

	for _, rec := range docs.Polls {
		names := make([]string, len(rec.Tally))
		for i, oc := range rec.Tally {
			names[i] = oc.Name
		}
		p, err := NewPoll(rec.Question, names)
		if err != nil {
			slog.Warn("skipping invalid stored poll", "question", rec.Question, "error", err)
			continue
		}
		if _, exists := s.polls[p.Question]; exists {
			slog.Warn("skipping duplicate stored poll", "question", p.Question)
			continue
		}
		for _, oc := range rec.Tally {
			if p.HasOption(oc.Name) && oc.Count > 0 {
				p.Tally[oc.Name] += oc.Count
			}
		}
		s.polls[p.Question] = p
		s.order = append(s.order, p.Question)
	}

	dropped := 0
	for pid, choices := range docs.Votes {
		for q, opt := range choices {
			p, ok := s.polls[q]
			if pid == "" || !ok || !p.HasOption(opt) {
				dropped++
				continue
			}
			s.record(pid, q, opt)
		}
	}
	if dropped > 0 {
		slog.Warn("dropped dangling ledger entries", "count", dropped)
	}

	for _, q := range s.order {
		p := s.polls[q]
		if p.Total() == s.ledgerCount(q) {
			continue
		}
		slog.Warn("recounting tally from ledger", "question", q, "tally_total", p.Total())
		recounted := p.zeroed()
		for _, choices := range s.votes {
			if opt, ok := choices[q]; ok {
				recounted.Tally[opt]++
			}
		}
		s.polls[q] = recounted
	}

	return s
}
