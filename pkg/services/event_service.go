package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hiveflow/hiveflow/ent"
	"github.com/hiveflow/hiveflow/ent/runevent"
	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

// EventService persists and reads back run event envelopes. It implements
// stream.Store for the hub/sink pipeline.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Insert writes one envelope as a durable row. The unique (run_id, sequence)
// index rejects duplicate sequence allocation.
func (s *EventService) Insert(ctx context.Context, ev *stream.Envelope) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.RunEvent.Create().
		SetID(ev.ID).
		SetRunID(ev.RunID).
		SetSequence(ev.Sequence).
		SetTimestamp(ev.Timestamp).
		SetCategory(string(ev.Category)).
		SetAction(string(ev.Action))
	if ev.Source != nil {
		create = create.SetSource(sourceToMap(ev.Source))
	}
	if ev.Data != nil {
		create = create.SetData(ev.Data)
	}

	if err := create.Exec(writeCtx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("event %s seq %d for run %s: %w", ev.Name(), ev.Sequence, ev.RunID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// MaxSequence returns the highest persisted sequence for a run, 0 if none.
func (s *EventService) MaxSequence(ctx context.Context, runID string) (int64, error) {
	last, err := s.client.RunEvent.Query().
		Where(runevent.RunIDEQ(runID)).
		Order(ent.Desc(runevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read max sequence for run %s: %w", runID, err)
	}
	return last.Sequence, nil
}

// ListByRun returns all persisted envelopes for a run in sequence order.
func (s *EventService) ListByRun(ctx context.Context, runID string) ([]*stream.Envelope, error) {
	rows, err := s.client.RunEvent.Query().
		Where(runevent.RunIDEQ(runID)).
		Order(ent.Asc(runevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for run %s: %w", runID, err)
	}

	out := make([]*stream.Envelope, len(rows))
	for i, row := range rows {
		out[i] = eventToEnvelope(row)
	}
	return out, nil
}

func eventToEnvelope(row *ent.RunEvent) *stream.Envelope {
	return &stream.Envelope{
		ID:        row.ID,
		RunID:     row.RunID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Source:    sourceFromMap(row.Source),
		Category:  stream.Category(row.Category),
		Action:    stream.Action(row.Action),
		Data:      row.Data,
	}
}

func sourceToMap(src *stream.Source) map[string]interface{} {
	m := map[string]interface{}{
		"agent_id":   src.AgentID,
		"agent_type": string(src.AgentType),
		"agent_name": src.AgentName,
	}
	if src.TeamName != nil {
		m["team_name"] = *src.TeamName
	}
	return m
}

func sourceFromMap(m map[string]interface{}) *stream.Source {
	if len(m) == 0 {
		return nil
	}
	src := &stream.Source{}
	if v, ok := m["agent_id"].(string); ok {
		src.AgentID = v
	}
	if v, ok := m["agent_type"].(string); ok {
		src.AgentType = models.AgentType(v)
	}
	if v, ok := m["agent_name"].(string); ok {
		src.AgentName = v
	}
	if v, ok := m["team_name"].(string); ok {
		src.TeamName = &v
	}
	return src
}
