package service

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("service")
	meter  = otel.Meter("service")
)

type metrics struct {
	moves metric.Int64Counter
	games metric.Int64Counter
}

func newMetrics() *metrics {
	moves, err := meter.Int64Counter("tictactoe.moves", metric.WithDescription("Committed moves"))
	if err != nil {
		otel.Handle(err)
		moves = noop.Int64Counter{}
	}

	games, err := meter.Int64Counter("tictactoe.games.finished", metric.WithDescription("Games that reached a win or a draw"))
	if err != nil {
		otel.Handle(err)
		games = noop.Int64Counter{}
	}

	return &metrics{
		moves: moves,
		games: games,
	}
}

func modeAttr(mode string) metric.AddOption {
	return metric.WithAttributes(attribute.String("mode", mode))
}

// fail marks span as failed and returns err unchanged.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
