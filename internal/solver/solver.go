package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/patterns/internal/models"
	countuniquevalues "github.com/povarna/generative-ai-agents/patterns/leetcode/0026_count_unique_values"
	validanagram "github.com/povarna/generative-ai-agents/patterns/leetcode/0242_valid_anagram"
	"github.com/rs/zerolog"
)

// Solver runs single requests against the pattern solutions. It holds no
// mutable state and can be shared between goroutines.
type Solver struct {
	checkSorted bool
	logger      *zerolog.Logger
}

type Option func(*Solver)

// WithCheckedSort makes every CountUnique call validate ordering, whatever
// the request asks for.
func WithCheckedSort(enabled bool) Option {
	return func(s *Solver) {
		s.checkSorted = enabled
	}
}

func New(logger *zerolog.Logger, opts ...Option) *Solver {
	s := &Solver{
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Solver) Anagram(ctx context.Context, req models.AnagramRequest) (models.AnagramResult, error) {
	if err := ctx.Err(); err != nil {
		return models.AnagramResult{}, err
	}

	method := req.Method
	if method == "" {
		method = models.MethodFrequency
	}

	var check func(string, string) bool
	switch method {
	case models.MethodFrequency:
		check = validanagram.IsAnagram
	case models.MethodLookup:
		check = validanagram.IsAnagramWithLookup
	case models.MethodSort:
		check = validanagram.IsAnagramSorted
	default:
		return models.AnagramResult{}, fmt.Errorf("%w: %q", models.ErrUnknownMethod, req.Method)
	}

	now := time.Now()
	result := models.AnagramResult{
		ID:        req.ID,
		Word:      req.Word,
		Candidate: req.Candidate,
		Method:    method,
		IsAnagram: check(req.Word, req.Candidate),
	}
	result.Duration = time.Since(now)

	s.logger.Debug().
		Str("id", result.ID).
		Str("method", string(result.Method)).
		Bool("is_anagram", result.IsAnagram).
		Dur("duration", result.Duration).
		Msg("Anagram checked")

	return result, nil
}

func (s *Solver) CountUnique(ctx context.Context, req models.UniqueRequest) (models.UniqueResult, error) {
	if err := ctx.Err(); err != nil {
		return models.UniqueResult{}, err
	}

	values := req.Values
	if values == nil {
		values = []int{}
	}

	result := models.UniqueResult{
		ID:     req.ID,
		Values: values,
	}

	now := time.Now()
	if req.Checked || s.checkSorted {
		count, err := countuniquevalues.CountUniqueValuesChecked(values)
		if err != nil {
			s.logger.Warn().Err(err).Str("id", req.ID).Msg("Rejected unsorted values")
			return models.UniqueResult{}, err
		}
		result.Count = count
	} else {
		result.Count = countuniquevalues.CountUniqueValues(values)
	}
	result.Duration = time.Since(now)

	s.logger.Debug().
		Str("id", result.ID).
		Int("values", len(result.Values)).
		Int("count", result.Count).
		Dur("duration", result.Duration).
		Msg("Unique values counted")

	return result, nil
}
