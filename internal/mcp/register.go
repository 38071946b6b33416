package mcp

import mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterAllTools wires every gocalc tool into the MCP server.
func RegisterAllTools(s *mcpsdk.Server, state *MCPServer) {
	registerSessionTools(s, state)
	registerInputTools(s, state)
	registerOperationTools(s, state)
	registerTapeTools(s, state)
}
