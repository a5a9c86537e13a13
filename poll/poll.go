// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation        = errors.New("invalid poll")
	ErrDuplicateQuestion = errors.New("question already exists")
	ErrNotFound          = errors.New("poll not found")
	ErrUnknownPoll       = fmt.Errorf("unknown poll: %w", ErrNotFound)
	ErrUnknownOption     = errors.New("unknown option")
	ErrAlreadyVoted      = errors.New("already voted")
)

// MinOptions is the smallest number of distinct options a poll may have
const MinOptions = 2

// Poll is a question with a fixed set of options and a count per option.
// Polls are built with NewPoll and never modified in place once published
// to a store state; mutations replace the whole record.
type Poll struct {
	Question string
	Options  []string
	Tally    map[string]int
}

// NewPoll trims the question and options, drops empty and duplicate options
// (first occurrence wins) and returns a poll with an all-zero tally.
func NewPoll(question string, options []string) (*Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", ErrValidation)
	}

	seen := make(map[string]bool, len(options))
	cleaned := make([]string, 0, len(options))
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" || seen[opt] {
			continue
		}
		seen[opt] = true
		cleaned = append(cleaned, opt)
	}

	if len(cleaned) < MinOptions {
		return nil, fmt.Errorf("%w: at least %d distinct options required, got %d", ErrValidation, MinOptions, len(cleaned))
	}

	tally := make(map[string]int, len(cleaned))
	for _, opt := range cleaned {
		tally[opt] = 0
	}

	return &Poll{Question: question, Options: cleaned, Tally: tally}, nil
}

// HasOption reports whether opt is one of the poll's current options
func (p *Poll) HasOption(opt string) bool {
	_, ok := p.Tally[opt]
	return ok
}

// Total returns the number of votes across all options
func (p *Poll) Total() int {
	total := 0
	for _, n := range p.Tally {
		total += n
	}
	return total
}

// withVote returns a copy of the poll with opt incremented by one
func (p *Poll) withVote(opt string) *Poll {
	next := p.zeroed()
	for k, v := range p.Tally {
		next.Tally[k] = v
	}
	next.Tally[opt]++
	return next
}

// zeroed returns a copy of the poll with every count set to zero
func (p *Poll) zeroed() *Poll {
	tally := make(map[string]int, len(p.Options))
	for _, opt := range p.Options {
		tally[opt] = 0
	}
	return &Poll{Question: p.Question, Options: p.Options, Tally: tally}
}

func (p *Poll) view() PollView {
	options := make([]OptionCount, len(p.Options))
	total := 0
	for i, opt := range p.Options {
		options[i] = OptionCount{Name: opt, Count: p.Tally[opt]}
		total += p.Tally[opt]
	}
	return PollView{Question: p.Question, Options: options, Total: total}
}

// OptionCount is one option of a poll and its current count
type OptionCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PollView is a read-only copy of a poll taken from a store snapshot
type PollView struct {
	Question string        `json:"question"`
	Options  []OptionCount `json:"options"`
	Total    int           `json:"total"`
}

// Count returns the count for opt, or 0 when opt is not an option
func (v PollView) Count(opt string) int {
	for _, o := range v.Options {
		if o.Name == opt {
			return o.Count
		}
	}
	return 0
}
