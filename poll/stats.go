// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"math"
	"sort"
)

// Progress is a participant's position in the one-question-at-a-time flow
type Progress struct {
	Answered int               `json:"answered"`
	Total    int               `json:"total"`
	Next     *PollView         `json:"next,omitempty"` // nil once every poll is answered
	Answers  []PollView        `json:"answers"`        // answered polls in creation order
	Choices  map[string]string `json:"choices"`
}

// Done reports whether every poll has been answered
func (p Progress) Done() bool {
	return p.Next == nil
}

// Progress returns the answered count, the total number of polls and the
// first poll in creation order that participantID has not voted on. Every
// field comes from the same commit.
func (s *Store) Progress(participantID string) Progress {
	st := s.current.Load()
	prog := Progress{
		Total:   len(st.order),
		Answers: make([]PollView, 0),
		Choices: make(map[string]string),
	}

	for _, q := range st.order {
		if opt, ok := st.choice(participantID, q); ok {
			prog.Answered++
			prog.Answers = append(prog.Answers, st.polls[q].view())
			prog.Choices[q] = opt
			continue
		}
		if prog.Next == nil {
			v := st.polls[q].view()
			prog.Next = &v
		}
	}
	return prog
}

// OptionStats is one option's share of its poll
type OptionStats struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // one decimal place, 0 when the poll has no votes
	Rank    int     `json:"rank"`    // 1 for the most votes; ties share a rank
}

// PollStats summarizes one poll for administrators
type PollStats struct {
	Question string        `json:"question"`
	Total    int           `json:"total"`
	Options  []OptionStats `json:"options"` // in option order
	Leaders  []string      `json:"leaders"` // empty when the poll has no votes
}

// Summary covers every poll in the store
type Summary struct {
	Polls  int         `json:"polls"`
	Votes  int         `json:"votes"`
	Voters int         `json:"voters"` // distinct participants with at least one vote
	Stats  []PollStats `json:"stats"`
}

// Stats computes per-poll shares and rankings from one consistent state
func (s *Store) Stats() Summary {
	st := s.current.Load()
	sum := Summary{
		Polls:  len(st.order),
		Voters: len(st.votes),
		Stats:  make([]PollStats, 0, len(st.order)),
	}

	for _, q := range st.order {
		ps := pollStats(st.polls[q].view())
		sum.Votes += ps.Total
		sum.Stats = append(sum.Stats, ps)
	}
	return sum
}

func pollStats(v PollView) PollStats {
	ps := PollStats{
		Question: v.Question,
		Total:    v.Total,
		Options:  make([]OptionStats, len(v.Options)),
		Leaders:  []string{},
	}
	for i, oc := range v.Options {
		ps.Options[i] = OptionStats{
			Name:    oc.Name,
			Count:   oc.Count,
			Percent: percent(oc.Count, v.Total),
		}
	}

	// Dense ranking by count, highest first
	counts := make([]int, 0, len(v.Options))
	seen := make(map[int]bool)
	for _, oc := range v.Options {
		if !seen[oc.Count] {
			seen[oc.Count] = true
			counts = append(counts, oc.Count)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	rank := make(map[int]int, len(counts))
	for i, c := range counts {
		rank[c] = i + 1
	}
	for i := range ps.Options {
		ps.Options[i].Rank = rank[ps.Options[i].Count]
		if v.Total > 0 && ps.Options[i].Rank == 1 {
			ps.Leaders = append(ps.Leaders, ps.Options[i].Name)
		}
	}
	return ps
}

// percent returns count/total as a percentage rounded to one decimal place
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
