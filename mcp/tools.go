package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dhamidi/rex/format"
	"github.com/dhamidi/rex/match"
	"github.com/dhamidi/rex/syntax"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
)

// handleParsePattern handles the parse_pattern tool invocation
func (s *Server) handleParsePattern(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	pattern, ok := args["pattern"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "pattern parameter is required", map[string]interface{}{
			"param":  "pattern",
			"reason": "missing or not a string",
		})
	}

	outputFormat := getStringDefault(args, "format", "json")
	if outputFormat != "json" && outputFormat != "dump" {
		return nil, newMCPError(ErrorCodeInvalidParams, "format must be 'json' or 'dump'", map[string]interface{}{
			"param": "format",
			"value": outputFormat,
		})
	}

	re, err := syntax.Parse(pattern)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := map[string]interface{}{
		"pattern": pattern,
	}
	if outputFormat == "dump" {
		response["ast"] = syntax.Dump(re)
	} else {
		tree, err := marshalTree(re)
		if err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "encoding failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		response["ast"] = tree
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleMatchPattern handles the match_pattern tool invocation
func (s *Server) handleMatchPattern(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	pattern, ok := args["pattern"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "pattern parameter is required", map[string]interface{}{
			"param":  "pattern",
			"reason": "missing or not a string",
		})
	}

	input, ok := args["input"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "input parameter is required", map[string]interface{}{
			"param":  "input",
			"reason": "missing or not a string",
		})
	}

	re, err := syntax.Parse(pattern)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := map[string]interface{}{
		"pattern": pattern,
		"matched": false,
	}
	if m, ok := match.Find(re, input); ok {
		response["matched"] = true
		response["begin"] = m.Begin
		response["end"] = m.End
		if len(m.Groups) > 0 {
			response["groups"] = m.Groups
		}
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("mcp error %d: %s", e.Code, e.Message)
}

// marshalTree round-trips the structural encoding so the tree embeds in
// the response as an object rather than an escaped string.
func marshalTree(re syntax.Regexp) (interface{}, error) {
	var buf bytes.Buffer
	if err := format.NewJSONEncoder(&buf).Encode(re); err != nil {
		return nil, err
	}
	var tree interface{}
	if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(text)
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
