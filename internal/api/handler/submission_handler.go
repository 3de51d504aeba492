package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"leetdeck/internal/app/worker"
	"leetdeck/internal/common"
	"leetdeck/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubmissionProcessor is the background half of the submission flow.
// The handler never waits for it.
type SubmissionProcessor interface {
	Process(ctx context.Context, submissionID string, req model.SubmissionRequest) error
}

type SubmissionHandler struct {
	processor  SubmissionProcessor
	dispatcher *worker.Dispatcher
	validate   *validator.Validate
}

func NewSubmissionHandler(p SubmissionProcessor, d *worker.Dispatcher) *SubmissionHandler {
	return &SubmissionHandler{
		processor:  p,
		dispatcher: d,
		validate:   validator.New(),
	}
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/data", h.submitData)
}

// submitData accepts a problem description plus a solution write-up,
// acknowledges immediately and hands the rest to the dispatcher. Once
// the 202 is written the client learns nothing more about this
// submission, success or failure.
func (h *SubmissionHandler) submitData(w http.ResponseWriter, r *http.Request) {
	var req model.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(common.ErrBadRequest), "Invalid request body")
		return
	}
	defer r.Body.Close()

	req.Message = strings.TrimSpace(req.Message)
	req.Description = strings.TrimSpace(req.Description)

	if err := h.validate.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	submissionID := uuid.NewString()
	h.dispatcher.Dispatch("submission "+submissionID, func(ctx context.Context) error {
		return h.processor.Process(ctx, submissionID, req)
	})

	common.RespondWithJSON(w, http.StatusAccepted, map[string]string{
		"status":  "submitted",
		"message": "Now processing",
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Message":
				return "Message is required"
			case "Description":
				return "Description is required"
			}
		}
	}
	return "Invalid request"
}
