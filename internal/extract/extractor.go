package extract

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/QamerHassan/Smart-Meeting/internal/nlp"
)

// Extractor orchestrates one extraction run: annotate the full text,
// collect participants from document-level entities, classify sentences
// in document order, and build the summary line.
type Extractor struct {
	pipeline   nlp.Pipeline
	classifier *Classifier
	logger     *zap.Logger
	metrics    *Metrics
}

// NewExtractor creates an extractor. The pipeline is required; a nil
// logger falls back to a no-op logger.
func NewExtractor(pipeline nlp.Pipeline, cfg Config, logger *zap.Logger) (*Extractor, error) {
	if pipeline == nil {
		return nil, fmt.Errorf("pipeline cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		pipeline:   pipeline,
		classifier: NewClassifier(cfg),
		logger:     logger,
		metrics:    NewMetrics(logger),
	}, nil
}

// Extract runs the engine over raw notes text. It fails only when
// annotation fails; classification itself is total over well-formed
// annotations, so there is no per-sentence failure path.
func (e *Extractor) Extract(ctx context.Context, rawText string) (*Result, error) {
	doc, err := e.pipeline.Annotate(rawText)
	if err != nil {
		return nil, fmt.Errorf("annotating notes: %w", err)
	}

	participants := collectParticipants(doc.Entities)

	tasks := make([]Task, 0, len(doc.Sentences))
	rejected := 0
	for _, sentence := range doc.Sentences {
		task, ok := e.classifier.ClassifySentence(sentence)
		if !ok {
			rejected++
			continue
		}
		tasks = append(tasks, task)
	}

	result := &Result{
		Tasks:        tasks,
		Summary:      fmt.Sprintf("Detected %d tasks | %d participants.", len(tasks), len(participants)),
		Participants: participants,
	}

	e.metrics.RecordExtraction(ctx, len(tasks), rejected)
	e.logger.Debug("extraction complete",
		zap.Int("sentences", len(doc.Sentences)),
		zap.Int("tasks", len(tasks)),
		zap.Int("rejected", rejected),
		zap.Int("participants", len(participants)),
	)

	return result, nil
}

// collectParticipants deduplicates the document-level PERSON mentions.
// First-occurrence order is kept for determinism, but callers must
// treat the result as an unordered set.
func collectParticipants(entities []nlp.Entity) []string {
	participants := make([]string, 0, len(entities))
	seen := make(map[string]struct{})
	for _, ent := range entities {
		if ent.Label != nlp.PersonLabel {
			continue
		}
		if _, ok := seen[ent.Text]; ok {
			continue
		}
		seen[ent.Text] = struct{}{}
		participants = append(participants, ent.Text)
	}
	return participants
}
