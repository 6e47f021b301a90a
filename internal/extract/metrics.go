package extract

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/QamerHassan/Smart-Meeting/internal/extract"

// Metrics holds the extraction engine instruments.
type Metrics struct {
	meter             metric.Meter
	logger            *zap.Logger
	extractionsTotal  metric.Int64Counter
	tasksExtracted    metric.Int64Counter
	sentencesRejected metric.Int64Counter
}

// NewMetrics creates the engine metrics. Instrument creation failures
// are logged and the affected instrument stays nil (recording becomes a
// no-op for it).
func NewMetrics(logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Metrics{
		meter:  otel.Meter(instrumentationName),
		logger: logger,
	}

	var err error
	m.extractionsTotal, err = m.meter.Int64Counter(
		"meetingd.extract.extractions_total",
		metric.WithDescription("Total extraction runs over meeting notes."),
		metric.WithUnit("{extraction}"),
	)
	if err != nil {
		logger.Warn("failed to create extractions counter", zap.Error(err))
	}

	m.tasksExtracted, err = m.meter.Int64Counter(
		"meetingd.extract.tasks_total",
		metric.WithDescription("Total tasks produced across extraction runs."),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		logger.Warn("failed to create tasks counter", zap.Error(err))
	}

	m.sentencesRejected, err = m.meter.Int64Counter(
		"meetingd.extract.sentences_rejected_total",
		metric.WithDescription("Sentences rejected by the length or action-keyword gates."),
		metric.WithUnit("{sentence}"),
	)
	if err != nil {
		logger.Warn("failed to create rejected counter", zap.Error(err))
	}

	return m
}

// RecordExtraction records one extraction run.
func (m *Metrics) RecordExtraction(ctx context.Context, tasks, rejected int) {
	if m.extractionsTotal != nil {
		m.extractionsTotal.Add(ctx, 1)
	}
	if m.tasksExtracted != nil {
		m.tasksExtracted.Add(ctx, int64(tasks))
	}
	if m.sentencesRejected != nil {
		m.sentencesRejected.Add(ctx, int64(rejected))
	}
}
