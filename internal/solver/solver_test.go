package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/patterns/internal/models"
	countuniquevalues "github.com/povarna/generative-ai-agents/patterns/leetcode/0026_count_unique_values"
	"github.com/rs/zerolog"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestSolver_Anagram(t *testing.T) {
	s := New(testLogger())

	tests := []struct {
		name       string
		req        models.AnagramRequest
		wantMethod models.Method
		want       bool
		wantErr    error
	}{
		{
			name:       "default method",
			req:        models.AnagramRequest{ID: "a-1", Word: "nagaram", Candidate: "anagram"},
			wantMethod: models.MethodFrequency,
			want:       true,
		},
		{
			name:       "lookup method",
			req:        models.AnagramRequest{ID: "a-2", Word: "aaz", Candidate: "zza", Method: models.MethodLookup},
			wantMethod: models.MethodLookup,
			want:       false,
		},
		{
			name:       "sort method",
			req:        models.AnagramRequest{ID: "a-3", Word: "cat", Candidate: "tac", Method: models.MethodSort},
			wantMethod: models.MethodSort,
			want:       true,
		},
		{
			name:    "unknown method",
			req:     models.AnagramRequest{ID: "a-4", Word: "cat", Candidate: "tac", Method: "bogus"},
			wantErr: models.ErrUnknownMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Anagram(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.ID != tt.req.ID {
				t.Errorf("expected ID %s, got %s", tt.req.ID, result.ID)
			}
			if result.Method != tt.wantMethod {
				t.Errorf("expected method %s, got %s", tt.wantMethod, result.Method)
			}
			if result.IsAnagram != tt.want {
				t.Errorf("expected is_anagram %v, got %v", tt.want, result.IsAnagram)
			}
			if result.Duration < 0 {
				t.Errorf("expected non-negative duration, got %v", result.Duration)
			}
		})
	}
}

func TestSolver_CountUnique(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		req     models.UniqueRequest
		want    int
		wantErr error
	}{
		{
			name: "sorted",
			req:  models.UniqueRequest{ID: "u-1", Values: []int{1, 2, 3, 4, 4, 4, 7, 7, 12, 12, 13}},
			want: 7,
		},
		{
			name: "empty",
			req:  models.UniqueRequest{ID: "u-2", Values: []int{}},
			want: 0,
		},
		{
			name: "unsorted unchecked counts runs",
			req:  models.UniqueRequest{ID: "u-3", Values: []int{2, 1, 2}},
			want: 3,
		},
		{
			name:    "unsorted checked by request",
			req:     models.UniqueRequest{ID: "u-4", Values: []int{2, 1, 2}, Checked: true},
			wantErr: countuniquevalues.ErrUnsorted,
		},
		{
			name:    "unsorted checked by default",
			opts:    []Option{WithCheckedSort(true)},
			req:     models.UniqueRequest{ID: "u-5", Values: []int{2, 1, 2}},
			wantErr: countuniquevalues.ErrUnsorted,
		},
		{
			name: "sorted checked",
			opts: []Option{WithCheckedSort(true)},
			req:  models.UniqueRequest{ID: "u-6", Values: []int{-2, -1, -1, 0, 1}},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testLogger(), tt.opts...)

			result, err := s.CountUnique(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.ID != tt.req.ID {
				t.Errorf("expected ID %s, got %s", tt.req.ID, result.ID)
			}
			if result.Count != tt.want {
				t.Errorf("expected count %d, got %d", tt.want, result.Count)
			}
		})
	}
}

func TestSolver_CountUniqueMissingValues(t *testing.T) {
	s := New(testLogger())

	result, err := s.CountUnique(context.Background(), models.UniqueRequest{ID: "u-7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Values == nil {
		t.Fatal("expected empty values, got nil")
	}
	if len(result.Values) != 0 || result.Count != 0 {
		t.Errorf("expected no values and count 0, got %v and %d", result.Values, result.Count)
	}
}

func TestSolver_ContextCancellation(t *testing.T) {
	s := New(testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Anagram(ctx, models.AnagramRequest{Word: "a", Candidate: "a"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Anagram: expected context.Canceled, got %v", err)
	}
	if _, err := s.CountUnique(ctx, models.UniqueRequest{Values: []int{1}}); !errors.Is(err, context.Canceled) {
		t.Errorf("CountUnique: expected context.Canceled, got %v", err)
	}
}
