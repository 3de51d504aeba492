package service

import (
	"context"
	"fmt"
	"log/slog"

	"leetdeck/internal/domain/model"
	"leetdeck/internal/platform/cardsink"
	"leetdeck/internal/platform/llm"

	"golang.org/x/sync/errgroup"
)

// SubmissionService turns one accepted submission into one flashcard.
// Process runs entirely in the background; by the time it starts, the
// client has already received its acknowledgment, so every outcome here
// is logged and nothing is reported back.
type SubmissionService struct {
	llm  llm.Client
	sink cardsink.Sink
}

func NewSubmissionService(llmClient llm.Client, sink cardsink.Sink) *SubmissionService {
	return &SubmissionService{llm: llmClient, sink: sink}
}

// Process reformats the problem and extracts the solution concurrently,
// joins the two results and forwards them to the card sink.
//
// The join is all-or-nothing: if either call fails, the other result is
// discarded and no card is created. An empty reformatted problem is
// allowed through; only the extraction call requires content.
func (s *SubmissionService) Process(ctx context.Context, submissionID string, req model.SubmissionRequest) error {
	log := slog.With("submission_id", submissionID)
	log.Info("processing submission")

	var (
		problem  string
		solution model.StructuredSolution
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		problem, err = s.llm.ReformatProblem(gctx, req.Description)
		if err != nil {
			return fmt.Errorf("reformat problem: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		solution, err = s.llm.ExtractSolution(gctx, req.Message)
		if err != nil {
			return fmt.Errorf("extract solution: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error("submission pipeline aborted", "error", err)
		return err
	}

	cardID, err := s.sink.CreateCard(ctx, problem, solution.Explanation, solution.Code)
	if err != nil {
		log.Error("card creation failed", "error", err)
		return fmt.Errorf("create card: %w", err)
	}

	log.Info("submission processed", "card_id", cardID)
	return nil
}
