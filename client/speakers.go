package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codingnoodle/speaker-tracker/client/internal/mapper"
	"github.com/codingnoodle/speaker-tracker/client/internal/notion"
	"github.com/codingnoodle/speaker-tracker/client/internal/types"
)

// maxPageSize is the largest page the query endpoint serves.
const maxPageSize = 100

// --------------------------------------------------------------------
// Speaker operations
// --------------------------------------------------------------------

// AddSpeaker creates a new record and returns it as stored remotely,
// including the assigned id and page URL.
func (c *Client) AddSpeaker(ctx context.Context, create SpeakerCreate) (*Speaker, error) {
	const op = "add_speaker"
	props, err := mapper.CreateProperties(create)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	requestsTotal.WithLabelValues(op).Inc()
	page, err := c.notion.CreatePage(ctx, c.databaseID, props)
	if err != nil {
		return nil, c.fail(op, err)
	}
	sp, err := mapper.SpeakerFromPage(*page)
	if err != nil {
		return nil, c.fail(op, err)
	}
	c.log.Debug().Str("speaker_id", sp.ID).Str("name", sp.Name).Dur("elapsed", time.Since(start)).Msg("speaker added")
	return &sp, nil
}

// GetSpeaker fetches one record by its page id.
func (c *Client) GetSpeaker(ctx context.Context, speakerID string) (*Speaker, error) {
	const op = "get_speaker"
	if err := types.ValidateSpeakerID(speakerID); err != nil {
		return nil, err
	}
	requestsTotal.WithLabelValues(op).Inc()
	page, err := c.notion.GetPage(ctx, speakerID)
	if err != nil {
		return nil, c.fail(op, err)
	}
	sp, err := mapper.SpeakerFromPage(*page)
	if err != nil {
		return nil, c.fail(op, err)
	}
	return &sp, nil
}

// UpdateSpeaker applies a partial update and returns the record as stored
// after the change. Fields left nil are not touched; pointers to zero
// values clear the corresponding property. An empty update skips the write
// and reduces to a fetch.
func (c *Client) UpdateSpeaker(ctx context.Context, speakerID string, update SpeakerUpdate) (*Speaker, error) {
	const op = "update_speaker"
	if err := types.ValidateSpeakerID(speakerID); err != nil {
		return nil, err
	}
	props, err := mapper.UpdateProperties(update)
	if err != nil {
		return nil, err
	}
	if len(props) == 0 {
		c.log.Debug().Str("speaker_id", speakerID).Msg("empty update, returning current record")
		return c.GetSpeaker(ctx, speakerID)
	}
	start := time.Now()
	requestsTotal.WithLabelValues(op).Inc()
	if _, err := c.notion.UpdatePage(ctx, speakerID, props); err != nil {
		return nil, c.fail(op, err)
	}
	c.log.Debug().Str("speaker_id", speakerID).Int("fields", len(props)).Dur("elapsed", time.Since(start)).Msg("speaker updated")
	// Re-read so callers get the record exactly as the database now holds it.
	return c.GetSpeaker(ctx, speakerID)
}

// SearchSpeakers returns every record matching the filter, draining result
// pages until exhaustion or until limit records have been collected.
// limit <= 0 means no cap. Results keep the database's default sort order.
func (c *Client) SearchSpeakers(ctx context.Context, filter SearchFilter, limit int) ([]Speaker, error) {
	return c.drain(ctx, "search_speakers", filter, limit)
}

// ListSpeakers drains the database without a filter, up to limit records.
// limit <= 0 means no cap.
func (c *Client) ListSpeakers(ctx context.Context, limit int) ([]Speaker, error) {
	return c.drain(ctx, "list_speakers", types.SearchFilter{}, limit)
}

// ListSpeakersGrouped drains like ListSpeakers and buckets the result by the
// given attribute. Bucket order follows first appearance in the drained
// sequence; records keep their order inside each bucket.
func (c *Client) ListSpeakersGrouped(ctx context.Context, by GroupField, limit int) ([]SpeakerGroup, error) {
	if !by.Valid() {
		return nil, fmt.Errorf("%w: unknown group field %q", ErrValidation, by)
	}
	speakers, err := c.drain(ctx, "list_speakers", types.SearchFilter{}, limit)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int)
	groups := make([]SpeakerGroup, 0)
	for _, sp := range speakers {
		key := by.KeyFor(sp)
		i, ok := idx[key]
		if !ok {
			i = len(groups)
			idx[key] = i
			groups = append(groups, SpeakerGroup{Key: key})
		}
		groups[i].Speakers = append(groups[i].Speakers, sp)
	}
	return groups, nil
}

// ArchiveSpeaker moves the record to the workspace trash. The page stays
// recoverable from the Notion UI; the API has no hard delete.
func (c *Client) ArchiveSpeaker(ctx context.Context, speakerID string) error {
	const op = "archive_speaker"
	if err := types.ValidateSpeakerID(speakerID); err != nil {
		return err
	}
	requestsTotal.WithLabelValues(op).Inc()
	if err := c.notion.ArchivePage(ctx, speakerID); err != nil {
		return c.fail(op, err)
	}
	c.log.Debug().Str("speaker_id", speakerID).Msg("speaker archived")
	return nil
}

// TestConnection probes the configured database and reports what it found:
// reachability, the database title, and any expected properties missing
// from the schema. It is diagnostic; failures land in the status rather
// than in an error return.
func (c *Client) TestConnection(ctx context.Context) *ConnectionStatus {
	const op = "test_connection"
	st := &ConnectionStatus{DatabaseID: c.databaseID}
	requestsTotal.WithLabelValues(op).Inc()
	db, err := c.notion.GetDatabase(ctx, c.databaseID)
	if err != nil {
		requestFailuresTotal.WithLabelValues(op).Inc()
		c.log.Error().Err(err).Str("operation", op).Msg("connection probe failed")
		st.Error = classify(op, err).Error()
		return st
	}
	st.OK = true
	st.DatabaseTitle = notion.PlainText(db.Title)
	if st.DatabaseTitle == "" {
		st.DatabaseTitle = "Untitled"
	}
	for _, name := range mapper.PropertyNames() {
		if _, ok := db.Properties[name]; !ok {
			st.MissingProperties = append(st.MissingProperties, name)
		}
	}
	return st
}

// --------------------------------------------------------------------
// Internals
// --------------------------------------------------------------------

// drain pages through the query endpoint until the cursor is exhausted or
// limit records are collected. Page size is capped to what remains so a
// capped drain never over-fetches.
func (c *Client) drain(ctx context.Context, op string, filter types.SearchFilter, limit int) ([]Speaker, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	f := mapper.QueryFilter(filter)
	start := time.Now()
	var out []Speaker
	cursor := ""
	pages := 0
	for {
		size := maxPageSize
		if limit > 0 {
			if rem := limit - len(out); rem < size {
				size = rem
			}
		}
		requestsTotal.WithLabelValues(op).Inc()
		res, err := c.notion.QueryDatabase(ctx, c.databaseID, f, size, cursor)
		if err != nil {
			return nil, c.fail(op, err)
		}
		pages++
		for _, p := range res.Results {
			sp, err := mapper.SpeakerFromPage(p)
			if err != nil {
				return nil, c.fail(op, err)
			}
			out = append(out, sp)
		}
		if limit > 0 && len(out) >= limit {
			out = out[:limit]
			break
		}
		if !res.HasMore || res.NextCursor == nil || *res.NextCursor == "" {
			break
		}
		cursor = *res.NextCursor
	}
	c.log.Debug().Str("operation", op).Int("count", len(out)).Int("pages", pages).Dur("elapsed", time.Since(start)).Msg("speakers fetched")
	return out, nil
}

// fail records the failure and classifies err into the sentinel taxonomy.
func (c *Client) fail(op string, err error) error {
	requestFailuresTotal.WithLabelValues(op).Inc()
	c.log.Error().Err(err).Str("operation", op).Msg("operation failed")
	return classify(op, err)
}

// classify maps transport errors onto the sentinel taxonomy. Errors already
// carrying a sentinel pass through unchanged.
func classify(op string, err error) error {
	if errors.Is(err, types.ErrValidation) || errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrDataIntegrity) {
		return err
	}
	var apiErr *notion.APIError
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		return fmt.Errorf("%s: %w", op, types.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %v", op, types.ErrRemote, err)
}
