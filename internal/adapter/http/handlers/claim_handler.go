package handlers

import (
	"errors"
	"log"
	"net/http"

	request "warranty_intake/internal/adapter/http/dto/request"
	response "warranty_intake/internal/adapter/http/dto/response"
	"warranty_intake/internal/usecase"
	"warranty_intake/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClaimHandler handles HTTP requests for warranty-claim submissions.

type ClaimHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewClaimHandler(uc usecase.IIntakeUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

// SubmitClaim accepts a submission as JSON or form-encoded fields, validates
// it and runs the intake flow. Validation problems come back as a 400 with
// every failed check listed; an allocation failure is the only 5xx here.
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var payload request.ClaimRequest
	if err := c.ShouldBind(&payload); err != nil {
		log.Printf("[claim][handler] bind failed err=%v", err)
		c.JSON(http.StatusBadRequest, response.FromValidationErrors([]string{"request body must be valid JSON or form-encoded fields"}))
		return
	}

	if errs := payload.Validate(); len(errs) > 0 {
		log.Printf("[claim][handler] validation failed errors=%d", len(errs))
		c.JSON(http.StatusBadRequest, response.FromValidationErrors(errs))
		return
	}

	traceRef := uuid.NewString()
	sub := payload.ToSubmission(traceRef)
	log.Printf("[claim][handler] submit start ref=%s vin=%s", traceRef, sub.VIN)

	res, err := h.usecase.HandleSubmission(c.Request.Context(), sub)
	if err != nil {
		log.Printf("[claim][handler] submit failed ref=%s err=%v", traceRef, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[claim][handler] submit success ref=%s claim_number=%d email_status=%s", traceRef, res.ClaimNumber, res.EmailStatus)

	c.JSON(http.StatusOK, response.FromClaimResult(res, traceRef))
}

func mapClaimError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAllocationFailed):
		return pkg.NewDomainError("ALLOCATION_FAILED", "Could not allocate a claim number", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
