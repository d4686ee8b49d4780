package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// parsePatternTool returns the tool definition for parse_pattern
func parsePatternTool() mcp.Tool {
	return mcp.Tool{
		Name:        "parse_pattern",
		Description: "Parse a pattern into its syntax tree",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"pattern": map[string]interface{}{
					"type":        "string",
					"description": "Pattern using literals, grouping, alternation and the repetition operators *, + and ?",
				},
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Output format: 'json' for the structural tree, 'dump' for the compact debug form",
					"enum":        []string{"json", "dump"},
					"default":     "json",
				},
			},
			Required: []string{"pattern"},
		},
	}
}

// matchPatternTool returns the tool definition for match_pattern
func matchPatternTool() mcp.Tool {
	return mcp.Tool{
		Name:        "match_pattern",
		Description: "Match a pattern against an input string and report captures",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"pattern": map[string]interface{}{
					"type":        "string",
					"description": "Pattern to match with",
				},
				"input": map[string]interface{}{
					"type":        "string",
					"description": "Input string to search",
				},
			},
			Required: []string{"pattern", "input"},
		},
	}
}
