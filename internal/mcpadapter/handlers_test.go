package mcpadapter

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/patterns/internal/models"
	"github.com/povarna/generative-ai-agents/patterns/internal/solver"
	countuniquevalues "github.com/povarna/generative-ai-agents/patterns/leetcode/0026_count_unique_values"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSolver() *solver.Solver {
	logger := zerolog.Nop()
	return solver.New(&logger)
}

func TestIsAnagram(t *testing.T) {
	handler := NewAnagramHandler(newTestSolver())

	_, result, err := handler(context.Background(), nil, AnagramInput{Word: "nagaram", Candidate: "anagram"})
	require.NoError(t, err)
	assert.True(t, result.IsAnagram)
	assert.Equal(t, models.MethodFrequency, result.Method)

	_, result, err = handler(context.Background(), nil, AnagramInput{Word: "aaz", Candidate: "zza", Method: "lookup"})
	require.NoError(t, err)
	assert.False(t, result.IsAnagram)
	assert.Equal(t, models.MethodLookup, result.Method)

	_, _, err = handler(context.Background(), nil, AnagramInput{Word: "a", Candidate: "a", Method: "bogus"})
	assert.ErrorIs(t, err, models.ErrUnknownMethod)
}

func TestCountUniqueValues(t *testing.T) {
	handler := NewUniqueHandler(newTestSolver())

	_, result, err := handler(context.Background(), nil, UniqueInput{Values: []int{1, 2, 3, 4, 4, 4, 7, 7, 12, 12, 13}})
	require.NoError(t, err)
	assert.Equal(t, 7, result.Count)

	_, result, err = handler(context.Background(), nil, UniqueInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Values)

	_, _, err = handler(context.Background(), nil, UniqueInput{Values: []int{2, 1}, Checked: true})
	assert.True(t, errors.Is(err, countuniquevalues.ErrUnsorted))
}

func TestServer_CallTools(t *testing.T) {
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := NewServer(newTestSolver()).Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"is_anagram", "count_unique_values"}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "is_anagram",
		Arguments: map[string]any{"word": "cat", "candidate": "tac"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	structured, ok := res.StructuredContent.(map[string]any)
	require.True(t, ok, "structured content: %T", res.StructuredContent)
	assert.Equal(t, true, structured["is_anagram"])

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "count_unique_values",
		Arguments: map[string]any{"values": []int{-2, -1, -1, 0, 1}},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	structured, ok = res.StructuredContent.(map[string]any)
	require.True(t, ok, "structured content: %T", res.StructuredContent)
	assert.Equal(t, float64(4), structured["count"])

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "count_unique_values",
		Arguments: map[string]any{"values": []int{3, 1}, "checked": true},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
