package trace

import (
	"log/slog"

	"github.com/specialistvlad/factorygo/internal/grid"
	"github.com/specialistvlad/factorygo/internal/pallet"
)

// LogSink writes every event as a debug record.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink returns a sink that logs to logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "trace")}
}

func (s *LogSink) Station(index int, id string, span grid.Span) {
	s.logger.Debug("Station discovered.", "index", index, "id", id, "span", span.String())
}

func (s *LogSink) Belt(from, to, bay, cells int) {
	s.logger.Debug("Belt wired.", "from", from, "to", to, "bay", bay, "cells", cells)
}

func (s *LogSink) Step(step, moves int) {
	s.logger.Debug("Step started.", "step", step, "moves", moves)
}

func (s *LogSink) Fire(step, index int, id string) {
	s.logger.Debug("Station fired.", "step", step, "index", index, "id", id)
}

func (s *LogSink) Move(step int, p pallet.Pallet, to, bay int) {
	s.logger.Debug("Pallet moved.", "step", step, "pallet", p, "to", to, "bay", bay)
}

func (s *LogSink) Halt(step int, reason string) {
	s.logger.Debug("Engine halted.", "step", step, "reason", reason)
}
