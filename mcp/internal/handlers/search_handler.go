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

const defaultListLimit = 50

// SearchHandler exposes the search_speakers and list_speakers tools.
type SearchHandler struct {
	client *client.Client
}

func NewSearchHandler(c *client.Client) *SearchHandler {
	return &SearchHandler{client: c}
}

// RegisterTools registers the query tools.
func (sh *SearchHandler) RegisterTools(s *server.MCPServer) error {
	searchTool := mcp.NewTool("search_speakers",
		mcp.WithDescription("Search speakers by name, field, affiliation, contact status, or priority. All criteria are combined with AND."),
		mcp.WithString("name", mcp.Description("Partial name to match")),
		mcp.WithString("field_specialty", mcp.Description("Exact field, one of: "+optionList(client.FieldSpecialties()))),
		mcp.WithString("affiliation", mcp.Description("Partial affiliation to match")),
		mcp.WithString("contact_status", mcp.Description("Exact status, one of: "+optionList(client.ContactStatuses()))),
		mcp.WithString("priority", mcp.Description("Exact priority, one of: "+optionList(client.Priorities()))),
	)
	s.AddTool(searchTool, sh.handleSearchSpeakers)

	listTool := mcp.NewTool("list_speakers",
		mcp.WithDescription("List speakers grouped by contact status (or another field) with a total count"),
		mcp.WithNumber("limit", mcp.Description("Maximum number of speakers to return (default 50)")),
		mcp.WithString("group_by", mcp.Description("Grouping field, one of: "+optionList(client.GroupFields())+". Defaults to contact_status")),
	)
	s.AddTool(listTool, sh.handleListSpeakers)

	return nil
}

func (sh *SearchHandler) handleSearchSpeakers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	filter := client.SearchFilter{}
	if v, ok := stringArg(args, "name"); ok && v != "" {
		filter.NameContains = &v
	}
	if v, ok := stringArg(args, "field_specialty"); ok && v != "" {
		fs := client.FieldSpecialty(v)
		if !fs.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid field_specialty. Valid options: %s", optionList(client.FieldSpecialties()))), nil
		}
		filter.FieldSpecialty = &fs
	}
	if v, ok := stringArg(args, "affiliation"); ok && v != "" {
		filter.AffiliationContains = &v
	}
	if v, ok := stringArg(args, "contact_status"); ok && v != "" {
		cs := client.ContactStatus(v)
		if !cs.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid contact_status. Valid options: %s", optionList(client.ContactStatuses()))), nil
		}
		filter.ContactStatus = &cs
	}
	if v, ok := stringArg(args, "priority"); ok && v != "" {
		p := client.Priority(v)
		if !p.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid priority. Valid options: %s", optionList(client.Priorities()))), nil
		}
		filter.Priority = &p
	}

	log.Debug().Msg("handling search_speakers request")

	start := time.Now()
	speakers, err := sh.client.SearchSpeakers(ctx, filter, 0)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("search_speakers failed")
		return mcp.NewToolResultError(fmt.Sprintf("Error searching speakers: %v", err)), nil
	}

	log.Debug().Int("count", len(speakers)).Dur("elapsed", elapsed).Msg("search_speakers completed")

	if len(speakers) == 0 {
		return mcp.NewToolResultText("No speakers found matching the criteria."), nil
	}

	lines := []string{fmt.Sprintf("Found %d speaker(s):\n", len(speakers))}
	for _, sp := range speakers {
		lines = append(lines, "---", "Name: "+sp.Name, "ID: "+sp.ID)
		if sp.FieldSpecialty != nil {
			lines = append(lines, "Field: "+string(*sp.FieldSpecialty))
		}
		if sp.Affiliation != nil && *sp.Affiliation != "" {
			lines = append(lines, "Affiliation: "+*sp.Affiliation)
		}
		if sp.Position != nil && *sp.Position != "" {
			lines = append(lines, "Position: "+*sp.Position)
		}
		lines = append(lines, "Status: "+string(sp.ContactStatus))
		if sp.Priority != nil {
			lines = append(lines, "Priority: "+string(*sp.Priority))
		}
		if sp.Email != nil && *sp.Email != "" {
			lines = append(lines, "Email: "+*sp.Email)
		}
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (sh *SearchHandler) handleListSpeakers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	limit := defaultListLimit
	if v, ok := args["limit"].(float64); ok { // JSON numbers decoded as float64
		limit = int(v)
	}

	groupBy := client.GroupByContactStatus
	if v, ok := stringArg(args, "group_by"); ok && v != "" {
		g := client.GroupField(v)
		if !g.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid group_by. Valid options: %s", optionList(client.GroupFields()))), nil
		}
		groupBy = g
	}

	log.Debug().Int("limit", limit).Str("group_by", string(groupBy)).Msg("handling list_speakers request")

	start := time.Now()
	groups, err := sh.client.ListSpeakersGrouped(ctx, groupBy, limit)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_speakers failed")
		return mcp.NewToolResultError(fmt.Sprintf("Error listing speakers: %v", err)), nil
	}

	total := 0
	for _, g := range groups {
		total += len(g.Speakers)
	}

	log.Debug().Int("count", total).Dur("elapsed", elapsed).Msg("list_speakers completed")

	if total == 0 {
		return mcp.NewToolResultText("No speakers in the database yet."), nil
	}

	lines := []string{fmt.Sprintf("Total speakers: %d\n", total)}
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("\n## %s (%d)", g.Key, len(g.Speakers)))
		for _, sp := range g.Speakers {
			line := "- " + sp.Name
			if sp.Affiliation != nil && *sp.Affiliation != "" {
				line += " (" + *sp.Affiliation + ")"
			}
			if sp.Priority != nil {
				line += " [" + string(*sp.Priority) + "]"
			}
			lines = append(lines, line)
		}
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}
