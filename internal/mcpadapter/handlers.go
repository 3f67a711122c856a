package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/patterns/internal/models"
)

type Solver interface {
	Anagram(ctx context.Context, req models.AnagramRequest) (models.AnagramResult, error)
	CountUnique(ctx context.Context, req models.UniqueRequest) (models.UniqueResult, error)
}

// AnagramInput is the MCP tool input schema (matches HTTP API field names).
type AnagramInput struct {
	Word      string `json:"word" jsonschema:"reference word"`
	Candidate string `json:"candidate" jsonschema:"possible rearrangement of word"`
	Method    string `json:"method,omitempty" jsonschema:"frequency (default), lookup or sort"`
}

// UniqueInput is the MCP tool input schema for counting unique values.
type UniqueInput struct {
	Values  []int `json:"values" jsonschema:"integers sorted in ascending order"`
	Checked bool  `json:"checked,omitempty" jsonschema:"reject unsorted values instead of returning a run count"`
}

// NewAnagramHandler returns a tool handler that uses the given solver.
// Pass the returned function to mcp.AddTool.
func NewAnagramHandler(s Solver) func(context.Context, *mcp.CallToolRequest, AnagramInput) (*mcp.CallToolResult, models.AnagramResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnagramInput) (*mcp.CallToolResult, models.AnagramResult, error) {
		return IsAnagram(ctx, s, req, input)
	}
}

// IsAnagram checks one word pair and returns the result as structured content.
func IsAnagram(
	ctx context.Context,
	s Solver,
	req *mcp.CallToolRequest,
	input AnagramInput,
) (*mcp.CallToolResult, models.AnagramResult, error) {
	result, err := s.Anagram(ctx, models.AnagramRequest{
		Word:      input.Word,
		Candidate: input.Candidate,
		Method:    models.Method(input.Method),
	})
	return nil, result, err
}

// NewUniqueHandler returns a tool handler that uses the given solver.
// Pass the returned function to mcp.AddTool.
func NewUniqueHandler(s Solver) func(context.Context, *mcp.CallToolRequest, UniqueInput) (*mcp.CallToolResult, models.UniqueResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input UniqueInput) (*mcp.CallToolResult, models.UniqueResult, error) {
		return CountUniqueValues(ctx, s, req, input)
	}
}

// CountUniqueValues counts the unique values of one sorted list.
func CountUniqueValues(
	ctx context.Context,
	s Solver,
	req *mcp.CallToolRequest,
	input UniqueInput,
) (*mcp.CallToolResult, models.UniqueResult, error) {
	values := input.Values
	if values == nil {
		values = []int{}
	}

	result, err := s.CountUnique(ctx, models.UniqueRequest{
		Values:  values,
		Checked: input.Checked,
	})
	return nil, result, err
}
