package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strconv"

	"warranty_intake/internal/domain/entities"
	"warranty_intake/internal/usecase/interfaces"
)

var (
	ErrSequencerNotConfigured = errors.New("sequencer not configured")
	// ErrAllocationFailed wraps any counter failure; it is the only error the
	// intake flow surfaces after validation, and it always means no claim
	// number exists for the submission.
	ErrAllocationFailed = errors.New("claim number allocation failed")
)

// IIntakeUseCase turns one validated submission into one claim and drives the
// best-effort downstream side effects.

type IIntakeUseCase interface {
	HandleSubmission(ctx context.Context, sub entities.Submission) (entities.ClaimResult, error)
}

// IntakeUseCase runs the fixed intake pipeline:
//
//	allocate claim number -> CRM contact upsert -> CRM ticket -> confirmation email
//
// Only the allocation step can abort the request. The later steps are
// failure-isolated: each is attempted regardless of the others' outcome, its
// error is logged and reflected as an empty field or status flag, and nothing
// ever compensates an already-allocated claim number. A claim number, once
// committed, is a permanent fact.

type IntakeUseCase struct {
	sequencer    ISequencer
	crm          interfaces.ICRMGateway
	notifier     interfaces.INotificationGateway
	emailEnabled bool
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(sequencer ISequencer, crm interfaces.ICRMGateway, notifier interfaces.INotificationGateway, emailEnabled bool) *IntakeUseCase {
	return &IntakeUseCase{
		sequencer:    sequencer,
		crm:          crm,
		notifier:     notifier,
		emailEnabled: emailEnabled,
	}
}

func (u *IntakeUseCase) HandleSubmission(ctx context.Context, sub entities.Submission) (entities.ClaimResult, error) {
	if u.sequencer == nil {
		return entities.ClaimResult{}, ErrSequencerNotConfigured
	}

	log.Printf("[intake][usecase] handle start ref=%s vin=%s", sub.TraceRef, sub.VIN)

	claimNumber, err := u.sequencer.Allocate(ctx)
	if err != nil {
		log.Printf("[intake][usecase] allocation failed ref=%s err=%v", sub.TraceRef, err)
		return entities.ClaimResult{}, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}
	log.Printf("[intake][usecase] claim number committed ref=%s claim_number=%d", sub.TraceRef, claimNumber)

	// The claim number is committed; downstream systems should still reflect
	// it even if the caller hangs up before the response is written.
	ctx = context.WithoutCancel(ctx)

	result := entities.ClaimResult{
		ClaimNumber: claimNumber,
		EmailStatus: entities.EmailStatusSkipped,
	}

	result.ContactID = u.upsertContact(ctx, sub)
	result.TicketID = u.createTicket(ctx, sub, claimNumber)
	result.EmailStatus = u.sendConfirmation(ctx, sub, claimNumber)

	log.Printf("[intake][usecase] handle success ref=%s claim_number=%d contact_id=%q ticket_id=%q email_status=%s",
		sub.TraceRef, claimNumber, result.ContactID, result.TicketID, result.EmailStatus)
	return result, nil
}

// upsertContact looks the contact up by email and creates it only on a miss,
// so repeated submissions from the same address share one CRM record.
func (u *IntakeUseCase) upsertContact(ctx context.Context, sub entities.Submission) string {
	if u.crm == nil {
		log.Printf("[intake][usecase] crm not configured; skipping contact upsert ref=%s", sub.TraceRef)
		return ""
	}

	id, err := u.crm.FindContactByEmail(ctx, sub.Email)
	if err != nil {
		log.Printf("[intake][usecase] contact lookup failed ref=%s err=%v", sub.TraceRef, err)
		return ""
	}
	if id != "" {
		log.Printf("[intake][usecase] contact found ref=%s contact_id=%s", sub.TraceRef, id)
		return id
	}

	id, err = u.crm.CreateContact(ctx, map[string]string{
		"email":          sub.Email,
		"vehicle_vin":    sub.VIN,
		"lifecyclestage": "customer",
	})
	if err != nil {
		log.Printf("[intake][usecase] contact create failed ref=%s err=%v", sub.TraceRef, err)
		return ""
	}
	log.Printf("[intake][usecase] contact created ref=%s contact_id=%s", sub.TraceRef, id)
	return id
}

func (u *IntakeUseCase) createTicket(ctx context.Context, sub entities.Submission, claimNumber int64) string {
	if u.crm == nil {
		return ""
	}

	n := strconv.FormatInt(claimNumber, 10)
	id, err := u.crm.CreateTicket(ctx, map[string]string{
		"subject":     "Warranty claim #" + n,
		"content":     fmt.Sprintf("Claim #%s\nVIN: %s\nCategory: %s\nContact: %s\nRef: %s", n, sub.VIN, sub.Category, sub.Email, sub.TraceRef),
		"claimnumber": n,
	})
	if err != nil {
		log.Printf("[intake][usecase] ticket create failed ref=%s claim_number=%d err=%v", sub.TraceRef, claimNumber, err)
		return ""
	}
	log.Printf("[intake][usecase] ticket created ref=%s ticket_id=%s", sub.TraceRef, id)
	return id
}

func (u *IntakeUseCase) sendConfirmation(ctx context.Context, sub entities.Submission, claimNumber int64) entities.EmailStatus {
	if !u.emailEnabled || u.notifier == nil {
		log.Printf("[intake][usecase] confirmation email skipped ref=%s enabled=%t configured=%t", sub.TraceRef, u.emailEnabled, u.notifier != nil)
		return entities.EmailStatusSkipped
	}

	subject := fmt.Sprintf("Warranty claim #%d received", claimNumber)
	htmlBody := fmt.Sprintf(
		"<p>Your warranty claim has been registered.</p><p>Claim number: <strong>#%d</strong><br>VIN: %s<br>Category: %s</p>",
		claimNumber, html.EscapeString(sub.VIN), html.EscapeString(sub.Category),
	)
	textBody := fmt.Sprintf("Your warranty claim has been registered.\nClaim number: #%d\nVIN: %s\nCategory: %s\n", claimNumber, sub.VIN, sub.Category)

	if err := u.notifier.Send(ctx, sub.Email, subject, htmlBody, textBody); err != nil {
		log.Printf("[intake][usecase] confirmation email failed ref=%s claim_number=%d err=%v", sub.TraceRef, claimNumber, err)
		return entities.EmailStatusFailed
	}
	log.Printf("[intake][usecase] confirmation email sent ref=%s claim_number=%d", sub.TraceRef, claimNumber)
	return entities.EmailStatusSent
}
