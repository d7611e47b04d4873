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

// SpeakerHandler exposes add_speaker, update_speaker, and get_speaker_details tools.
type SpeakerHandler struct {
	client *client.Client
}

// NewSpeakerHandler returns a new handler.
func NewSpeakerHandler(c *client.Client) *SpeakerHandler {
	return &SpeakerHandler{client: c}
}

// RegisterTools registers speaker record tools.
func (sh *SpeakerHandler) RegisterTools(s *server.MCPServer) error {
	addSpeaker := mcp.NewTool("add_speaker",
		mcp.WithDescription("Add a new speaker candidate to the speaker database"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Full name of the speaker")),
		mcp.WithString("field_specialty", mcp.Description("Primary field, one of: "+optionList(client.FieldSpecialties()))),
		mcp.WithString("affiliation", mcp.Description("University or company")),
		mcp.WithString("position", mcp.Description("Job title or role")),
		mcp.WithString("linkedin_url", mcp.Description("LinkedIn profile URL")),
		mcp.WithArray("potential_topics", mcp.Description("Topics the speaker could present on"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("contact_status", mcp.Description("Outreach status, one of: "+optionList(client.ContactStatuses())+". Defaults to Not Contacted")),
		mcp.WithString("research_notes", mcp.Description("Background summary and research findings")),
		mcp.WithString("email", mcp.Description("Contact email address")),
		mcp.WithString("priority", mcp.Description("Priority level, one of: "+optionList(client.Priorities()))),
	)
	s.AddTool(addSpeaker, sh.handleAddSpeaker)

	updateSpeaker := mcp.NewTool("update_speaker",
		mcp.WithDescription("Update fields of an existing speaker. Only supplied fields change; an empty string clears a text field."),
		mcp.WithString("speaker_id", mcp.Required(), mcp.Description("Notion page ID of the speaker")),
		mcp.WithString("name", mcp.Description("New full name")),
		mcp.WithString("field_specialty", mcp.Description("Primary field, one of: "+optionList(client.FieldSpecialties()))),
		mcp.WithString("affiliation", mcp.Description("University or company")),
		mcp.WithString("position", mcp.Description("Job title or role")),
		mcp.WithString("linkedin_url", mcp.Description("LinkedIn profile URL")),
		mcp.WithArray("potential_topics", mcp.Description("Replacement topic list; an empty array clears it"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("contact_status", mcp.Description("Outreach status, one of: "+optionList(client.ContactStatuses()))),
		mcp.WithString("research_notes", mcp.Description("Background summary and research findings")),
		mcp.WithString("email", mcp.Description("Contact email address")),
		mcp.WithString("priority", mcp.Description("Priority level, one of: "+optionList(client.Priorities()))),
	)
	s.AddTool(updateSpeaker, sh.handleUpdateSpeaker)

	getDetails := mcp.NewTool("get_speaker_details",
		mcp.WithDescription("Get the full record of a specific speaker as markdown"),
		mcp.WithString("speaker_id", mcp.Required(), mcp.Description("Notion page ID of the speaker")),
	)
	s.AddTool(getDetails, sh.handleGetSpeakerDetails)

	return nil
}

func (sh *SpeakerHandler) handleAddSpeaker(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, _ := req.RequireString("name")
	args := req.GetArguments()

	create := client.SpeakerCreate{Name: name}
	if v, ok := stringArg(args, "field_specialty"); ok && v != "" {
		fs := client.FieldSpecialty(v)
		if !fs.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid field_specialty '%s'. Valid options: %s", v, optionList(client.FieldSpecialties()))), nil
		}
		create.FieldSpecialty = &fs
	}
	if v, ok := stringArg(args, "affiliation"); ok && v != "" {
		create.Affiliation = &v
	}
	if v, ok := stringArg(args, "position"); ok && v != "" {
		create.Position = &v
	}
	if v, ok := stringArg(args, "linkedin_url"); ok && v != "" {
		create.LinkedInURL = &v
	}
	topics, ok, err := stringSliceArg(args, "potential_topics")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ok {
		create.PotentialTopics = topics
	}
	if v, ok := stringArg(args, "contact_status"); ok && v != "" {
		cs := client.ContactStatus(v)
		if !cs.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid contact_status '%s'. Valid options: %s", v, optionList(client.ContactStatuses()))), nil
		}
		create.ContactStatus = cs
	}
	if v, ok := stringArg(args, "research_notes"); ok && v != "" {
		create.ResearchNotes = &v
	}
	if v, ok := stringArg(args, "email"); ok && v != "" {
		create.Email = &v
	}
	if v, ok := stringArg(args, "priority"); ok && v != "" {
		p := client.Priority(v)
		if !p.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid priority '%s'. Valid options: %s", v, optionList(client.Priorities()))), nil
		}
		create.Priority = &p
	}

	log.Debug().Str("name", name).Msg("handling add_speaker request")

	start := time.Now()
	sp, err := sh.client.AddSpeaker(ctx, create)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("name", name).Dur("elapsed", elapsed).Msg("add_speaker failed")
		return mcp.NewToolResultError(fmt.Sprintf("Error adding speaker: %v", err)), nil
	}

	log.Debug().Str("speaker_id", sp.ID).Dur("elapsed", elapsed).Msg("add_speaker completed")

	return mcp.NewToolResultText(fmt.Sprintf(
		"Successfully added speaker '%s' to the database.\nNotion Page ID: %s\nURL: %s",
		sp.Name, sp.ID, sp.URL)), nil
}

func (sh *SpeakerHandler) handleUpdateSpeaker(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	speakerID, _ := req.RequireString("speaker_id")
	args := req.GetArguments()

	upd := client.SpeakerUpdate{}
	if v, ok := stringArg(args, "name"); ok {
		upd.Name = &v
	}
	if v, ok := stringArg(args, "field_specialty"); ok && v != "" {
		fs := client.FieldSpecialty(v)
		if !fs.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid field_specialty. Valid options: %s", optionList(client.FieldSpecialties()))), nil
		}
		upd.FieldSpecialty = &fs
	}
	if v, ok := stringArg(args, "affiliation"); ok {
		upd.Affiliation = &v
	}
	if v, ok := stringArg(args, "position"); ok {
		upd.Position = &v
	}
	if v, ok := stringArg(args, "linkedin_url"); ok {
		upd.LinkedInURL = &v
	}
	topics, ok, err := stringSliceArg(args, "potential_topics")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ok {
		upd.PotentialTopics = &topics
	}
	if v, ok := stringArg(args, "contact_status"); ok && v != "" {
		cs := client.ContactStatus(v)
		if !cs.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid contact_status. Valid options: %s", optionList(client.ContactStatuses()))), nil
		}
		upd.ContactStatus = &cs
	}
	if v, ok := stringArg(args, "research_notes"); ok {
		upd.ResearchNotes = &v
	}
	if v, ok := stringArg(args, "email"); ok {
		upd.Email = &v
	}
	if v, ok := stringArg(args, "priority"); ok && v != "" {
		p := client.Priority(v)
		if !p.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid priority. Valid options: %s", optionList(client.Priorities()))), nil
		}
		upd.Priority = &p
	}

	log.Debug().Str("speaker_id", speakerID).Msg("handling update_speaker request")

	start := time.Now()
	sp, err := sh.client.UpdateSpeaker(ctx, speakerID, upd)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("speaker_id", speakerID).Dur("elapsed", elapsed).Msg("update_speaker failed")
		return mcp.NewToolResultError(fmt.Sprintf("Error updating speaker: %v", err)), nil
	}

	log.Debug().Str("speaker_id", sp.ID).Dur("elapsed", elapsed).Msg("update_speaker completed")

	return mcp.NewToolResultText(fmt.Sprintf(
		"Successfully updated speaker '%s'.\nNotion Page ID: %s\nStatus: %s",
		sp.Name, sp.ID, sp.ContactStatus)), nil
}

func (sh *SpeakerHandler) handleGetSpeakerDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	speakerID, _ := req.RequireString("speaker_id")

	log.Debug().Str("speaker_id", speakerID).Msg("handling get_speaker_details request")

	start := time.Now()
	sp, err := sh.client.GetSpeaker(ctx, speakerID)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("speaker_id", speakerID).Dur("elapsed", elapsed).Msg("get_speaker_details failed")
		return mcp.NewToolResultError(fmt.Sprintf("Error getting speaker details: %v", err)), nil
	}

	return mcp.NewToolResultText(formatSpeakerDetails(sp)), nil
}

// formatSpeakerDetails renders one speaker as a markdown profile.
func formatSpeakerDetails(sp *client.Speaker) string {
	specialty := "Not specified"
	if sp.FieldSpecialty != nil {
		specialty = string(*sp.FieldSpecialty)
	}
	priority := "Not set"
	if sp.Priority != nil {
		priority = string(*sp.Priority)
	}
	url := sp.URL
	if url == "" {
		url = "N/A"
	}

	lines := []string{
		"# " + sp.Name,
		"",
		"**Notion ID:** " + sp.ID,
		"**Notion URL:** " + url,
		"",
		"## Professional Info",
		"- **Field/Specialty:** " + specialty,
		"- **Affiliation:** " + orFallback(sp.Affiliation, "Not specified"),
		"- **Position:** " + orFallback(sp.Position, "Not specified"),
		"- **LinkedIn:** " + orFallback(sp.LinkedInURL, "Not specified"),
		"",
		"## Contact",
		"- **Status:** " + string(sp.ContactStatus),
		"- **Priority:** " + priority,
		"- **Email:** " + orFallback(sp.Email, "Not specified"),
		"",
		"## Potential Topics",
	}
	if len(sp.PotentialTopics) > 0 {
		for _, t := range sp.PotentialTopics {
			lines = append(lines, "- "+t)
		}
	} else {
		lines = append(lines, "- None specified")
	}
	lines = append(lines, "", "## Research Notes", orFallback(sp.ResearchNotes, "No notes yet."))

	return strings.Join(lines, "\n")
}
