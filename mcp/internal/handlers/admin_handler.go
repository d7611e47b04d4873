package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/codingnoodle/speaker-tracker/client"
)

// AdminHandler exposes the test_connection tool.
type AdminHandler struct {
	client *client.Client
}

func NewAdminHandler(c *client.Client) *AdminHandler {
	return &AdminHandler{client: c}
}

// RegisterTools registers the test_connection tool on the MCP server.
func (ah *AdminHandler) RegisterTools(s *server.MCPServer) error {
	tool := mcp.NewTool("test_connection",
		mcp.WithDescription("Test the connection to the Notion database and report its title and schema status"),
	)
	s.AddTool(tool, ah.handleTestConnection)
	return nil
}

func (ah *AdminHandler) handleTestConnection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Debug().Msg("handling test_connection request")

	start := time.Now()
	st := ah.client.TestConnection(ctx)
	elapsed := time.Since(start)

	if !st.OK {
		log.Error().Str("error", st.Error).Dur("elapsed", elapsed).Msg("test_connection failed")
		return mcp.NewToolResultText(fmt.Sprintf("Connection failed: %s", st.Error)), nil
	}

	log.Debug().Str("database_title", st.DatabaseTitle).Dur("elapsed", elapsed).Msg("test_connection completed")

	msg := fmt.Sprintf("Connection successful!\nDatabase: %s\nDatabase ID: %s", st.DatabaseTitle, st.DatabaseID)
	if len(st.MissingProperties) > 0 {
		msg += "\nWarning: missing expected properties: " + strings.Join(st.MissingProperties, ", ")
	}
	return mcp.NewToolResultText(msg), nil
}
