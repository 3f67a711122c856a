package models

import (
	"errors"
	"time"
)

type Method string

const (
	MethodFrequency Method = "frequency"
	MethodLookup    Method = "lookup"
	MethodSort      Method = "sort"
)

var ErrUnknownMethod = errors.New("unknown anagram method")

// Valid reports whether m names a known anagram method. The empty method is
// valid and means MethodFrequency.
func (m Method) Valid() bool {
	switch m {
	case "", MethodFrequency, MethodLookup, MethodSort:
		return true
	}
	return false
}

type AnagramRequest struct {
	ID        string `json:"id,omitempty" description:"Caller supplied request identifier"`
	Word      string `json:"word" description:"Reference word"`
	Candidate string `json:"candidate" description:"Possible rearrangement of word"`
	Method    Method `json:"method,omitempty" description:"frequency (default), lookup or sort"`
}

type AnagramResult struct {
	ID        string        `json:"id,omitempty"`
	Word      string        `json:"word"`
	Candidate string        `json:"candidate"`
	Method    Method        `json:"method"`
	IsAnagram bool          `json:"is_anagram"`
	Duration  time.Duration `json:"duration_ns"`
}

type UniqueRequest struct {
	ID      string `json:"id,omitempty" description:"Caller supplied request identifier"`
	Values  []int  `json:"values" description:"Values sorted in ascending order"`
	Checked bool   `json:"checked,omitempty" description:"Reject unsorted values instead of miscounting"`
}

type UniqueResult struct {
	ID       string        `json:"id,omitempty"`
	Values   []int         `json:"values"`
	Count    int           `json:"count"`
	Duration time.Duration `json:"duration_ns"`
}
