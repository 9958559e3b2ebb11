package service

import (
	"context"
	"fmt"
	"io"
	"ha-sync/internal/domain/model"
	"ha-sync/internal/ports"
)

// SyncService drives one sync run: fetch each mapped entity's state from
// Home Assistant and record its location with the position tool. Entities
// are independent; one failure never blocks the rest.
type SyncService struct {
	haPort   ports.HomeAssistantPort
	recorder ports.PositionRecorder
	out      io.Writer
}

func NewSyncService(haPort ports.HomeAssistantPort, recorder ports.PositionRecorder, out io.Writer) *SyncService {
	return &SyncService{
		haPort:   haPort,
		recorder: recorder,
		out:      out,
	}
}

// Summary aggregates per-entity outcomes for one run.
type Summary struct {
	Synced int
	Total  int
}

func (s Summary) AllSynced() bool {
	return s.Synced == s.Total
}

// Run attempts every mapping exactly once, in order.
func (s *SyncService) Run(ctx context.Context, entities []model.EntityMapping) Summary {
	synced := 0
	for _, m := range entities {
		if s.syncEntity(ctx, m) {
			synced++
		}
	}
	return Summary{Synced: synced, Total: len(entities)}
}

func (s *SyncService) syncEntity(ctx context.Context, m model.EntityMapping) bool {
	state, err := s.haPort.GetState(ctx, m.EntityID)
	if err != nil {
		fmt.Fprintf(s.out, "Failed to fetch %s: %v\n", m.EntityID, err)
		return false
	}

	loc, ok := state.Location(m.EntityID)
	if !ok {
		fmt.Fprintf(s.out, "No location for %s (state: %s)\n", m.EntityID, state.Status())
		return false
	}

	if err := s.recorder.Record(ctx, m.PositionName, loc.Lat, loc.Lng, loc.Label); err != nil {
		fmt.Fprintf(s.out, "Failed to add position for %s: %v\n", m.PositionName, err)
		return false
	}

	fmt.Fprintf(s.out, "Synced %s: %s (%s, %s)\n", m.PositionName, loc.Label, loc.Lat, loc.Lng)
	return true
}
