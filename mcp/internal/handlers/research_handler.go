package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/codingnoodle/speaker-tracker/client"
)

// ResearchHandler exposes the prepare_research_summary tool.
// It formats research findings for review and never talks to Notion.
type ResearchHandler struct{}

func NewResearchHandler() *ResearchHandler {
	return &ResearchHandler{}
}

// RegisterTools registers the prepare_research_summary tool on the MCP server.
func (rh *ResearchHandler) RegisterTools(s *server.MCPServer) error {
	tool := mcp.NewTool("prepare_research_summary",
		mcp.WithDescription("Format web research results into a structured summary for review before adding a speaker to the database"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Full name of the speaker")),
		mcp.WithString("affiliation", mcp.Required(), mcp.Description("University or company")),
		mcp.WithString("position", mcp.Required(), mcp.Description("Job title")),
		mcp.WithString("field_specialty", mcp.Required(), mcp.Description("Primary field, one of: "+optionList(client.FieldSpecialties()))),
		mcp.WithString("background", mcp.Required(), mcp.Description("Brief biography and background summary")),
		mcp.WithString("notable_work", mcp.Required(), mcp.Description("Key publications, projects, or achievements")),
		mcp.WithArray("potential_topics", mcp.Required(), mcp.Description("Topics the speaker could present on"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("linkedin_url", mcp.Description("LinkedIn profile URL if found")),
		mcp.WithString("email", mcp.Description("Contact email if found")),
		mcp.WithString("priority_recommendation", mcp.Description("Suggested priority level, defaults to Medium")),
	)
	s.AddTool(tool, rh.handlePrepareResearchSummary)
	return nil
}

func (rh *ResearchHandler) handlePrepareResearchSummary(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, _ := req.RequireString("name")
	affiliation, _ := req.RequireString("affiliation")
	position, _ := req.RequireString("position")
	fieldSpecialty, _ := req.RequireString("field_specialty")
	background, _ := req.RequireString("background")
	notableWork, _ := req.RequireString("notable_work")
	args := req.GetArguments()

	topics, _, err := stringSliceArg(args, "potential_topics")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	linkedin := "Not found"
	if v, ok := stringArg(args, "linkedin_url"); ok && v != "" {
		linkedin = v
	}
	email := "Not found"
	if v, ok := stringArg(args, "email"); ok && v != "" {
		email = v
	}
	priorityRec := "Medium"
	if v, ok := stringArg(args, "priority_recommendation"); ok && v != "" {
		priorityRec = v
	}

	log.Debug().Str("name", name).Msg("handling prepare_research_summary request")

	var b strings.Builder
	fmt.Fprintf(&b, `
# Research Summary: %s

## Professional Profile
- **Name:** %s
- **Position:** %s
- **Affiliation:** %s
- **Field:** %s

## Background
%s

## Notable Work & Achievements
%s

## Potential Speaking Topics
`, name, name, position, affiliation, fieldSpecialty, background, notableWork)
	for _, t := range topics {
		b.WriteString("- " + t + "\n")
	}
	fmt.Fprintf(&b, `
## Contact Information
- **LinkedIn:** %s
- **Email:** %s

## Recommendation
- **Priority:** %s

---
**To add this speaker, confirm and I will call the add_speaker tool with the above information.**
`, linkedin, email, priorityRec)

	return mcp.NewToolResultText(b.String()), nil
}
