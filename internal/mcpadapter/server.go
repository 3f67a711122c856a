package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "problem-solving-patterns"
	ServerVersion = "1.0.0"
)

func NewServer(s Solver) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "is_anagram",
		Description: "Check whether candidate is a letter-for-letter rearrangement of word. Case and whitespace are significant.",
	}, NewAnagramHandler(s))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "count_unique_values",
		Description: "Count the unique values in a list of integers sorted in ascending order. Set checked to reject unsorted input.",
	}, NewUniqueHandler(s))

	return server
}
