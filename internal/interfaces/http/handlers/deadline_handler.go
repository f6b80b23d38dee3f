package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	"github.com/sozialtools/fristenwaechter/internal/domain/deadline"
	domain "github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/pkg/errors"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// DeadlineHandler exposes the statutory deadline calculator.
type DeadlineHandler struct {
	calculator *deadline.Calculator
	service    *app.Service
}

// NewDeadlineHandler constructs a DeadlineHandler.
func NewDeadlineHandler(calculator *deadline.Calculator, service *app.Service) *DeadlineHandler {
	return &DeadlineHandler{calculator: calculator, service: service}
}

// computeRequest is the POST body of a deadline computation.
type computeRequest struct {
	Category       deadline.Category `json:"kategorie"`
	ReferenceDate  common.Date       `json:"bescheidDatum"`
	PostalDelivery bool              `json:"postzustellung"`

	// Speichern asks the engine to create a reminder for the computed
	// deadline in one step.
	Save          bool            `json:"speichern"`
	Title         string          `json:"titel"`
	Priority      domain.Priority `json:"prioritaet"`
	CaseReference string          `json:"aktenzeichen"`
}

// computeResponse pairs the computation result with the optionally created
// reminder.
type computeResponse struct {
	Result        *deadline.Result `json:"berechnung"`
	RemainingDays *int             `json:"verbleibendeTage,omitempty"`
	Reminder      *domain.Reminder `json:"erinnerung,omitempty"`
}

// Compute calculates a statutory deadline and, when requested, hands the
// result off to the reminder engine.
func (h *DeadlineHandler) Compute(c *gin.Context) {
	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid request body"))
		return
	}

	result, err := deadline.Compute(req.ReferenceDate, req.Category, req.PostalDelivery)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := computeResponse{Result: result}
	if days, ok := h.calculator.RemainingDays(result); ok {
		resp.RemainingDays = &days
	}

	if req.Save {
		if result.IsOpenEnded {
			respondError(c, errors.New(errors.ErrCodeDeadlineOpenEnded,
				"open-ended proceedings have no deadline to save"))
			return
		}
		title := req.Title
		if title == "" {
			title = result.DurationLabel
		}
		entity, err := h.service.Create(c.Request.Context(), app.Draft{
			Title:         title,
			Category:      reminderCategoryFor(req.Category),
			DeadlineDate:  result.DeadlineDate,
			Priority:      req.Priority,
			CaseReference: req.CaseReference,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		resp.Reminder = entity
		respond(c, http.StatusCreated, resp)
		return
	}

	respond(c, http.StatusOK, resp)
}

// Categories lists the supported deadline categories.
func (h *DeadlineHandler) Categories(c *gin.Context) {
	respond(c, http.StatusOK, deadline.Categories())
}

// reminderCategoryFor maps a computation category to the reminder category the
// saved entity is filed under.
func reminderCategoryFor(cat deadline.Category) domain.Category {
	switch cat {
	case deadline.CategoryObjection:
		return domain.CategoryObjectionPeriod
	case deadline.CategoryLawsuit, deadline.CategoryAppeal:
		return domain.CategoryLawsuitPeriod
	case deadline.CategoryHearing, deadline.CategoryCooperation:
		return domain.CategorySubmission
	default:
		return domain.CategoryOther
	}
}
