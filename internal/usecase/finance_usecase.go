package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"studioflow/internal/domain/entities"
	"studioflow/internal/usecase/interfaces"
)

var (
	ErrEntryNotFound    = errors.New("finance entry not found")
	ErrInvalidEntryID   = errors.New("invalid finance entry id")
	ErrEntryAlreadyPaid = errors.New("finance entry already paid")
)

// IFinanceUseCase exposes the installments of a project and their
// settlement. Values, due dates and labels are immutable after spawn.

type IFinanceUseCase interface {
	ListByProjectID(ctx context.Context, projectID string) ([]entities.FinanceEntry, error)
	Settle(ctx context.Context, entryID string, payload json.RawMessage) (entities.FinanceEntry, error)
}

type FinanceUseCase struct {
	repo    interfaces.IFinanceRepository
	gateway interfaces.IPaymentGateway
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(repo interfaces.IFinanceRepository, gateway interfaces.IPaymentGateway) *FinanceUseCase {
	return &FinanceUseCase{repo: repo, gateway: gateway}
}

func (u *FinanceUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.FinanceEntry, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

// Settle marks a pending installment as paid. When a payment payload is
// given and a gateway is configured, the charge goes through the provider
// first and its payment id is recorded; a gateway failure leaves the entry
// untouched.
func (u *FinanceUseCase) Settle(ctx context.Context, entryID string, payload json.RawMessage) (entities.FinanceEntry, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entities.FinanceEntry{}, ErrInvalidEntryID
	}

	entry, err := u.repo.GetByID(ctx, entryID)
	if err != nil {
		return entities.FinanceEntry{}, err
	}
	if entry.ID == "" {
		return entities.FinanceEntry{}, ErrEntryNotFound
	}
	if entry.Status == entities.EntryStatusPaid {
		return entities.FinanceEntry{}, ErrEntryAlreadyPaid
	}

	providerPaymentID := ""
	if u.gateway != nil && len(payload) > 0 && json.Valid(payload) {
		enriched, err := enrichPaymentPayload(payload, entry)
		if err != nil {
			return entities.FinanceEntry{}, err
		}
		id, status, _, err := u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Printf("[finance][usecase] gateway failed entry_id=%s err=%v", entryID, err)
			return entities.FinanceEntry{}, err
		}
		log.Printf("[finance][usecase] gateway success entry_id=%s provider_payment_id=%s provider_status=%s",
			entryID, id, status)
		providerPaymentID = id
	}

	updated, err := u.repo.UpdateStatusByID(ctx, entryID, entities.EntryStatusPaid, providerPaymentID)
	if err != nil {
		return entities.FinanceEntry{}, err
	}
	if updated.ID == "" {
		return entities.FinanceEntry{}, ErrEntryNotFound
	}
	log.Printf("[finance][usecase] settled entry_id=%s installment=%s value=%.2f", updated.ID, updated.Installment, updated.Value)
	return updated, nil
}

// enrichPaymentPayload pins amount and reconciliation reference to the
// stored entry; the caller's payload never decides how much is charged.
func enrichPaymentPayload(payload json.RawMessage, entry entities.FinanceEntry) (json.RawMessage, error) {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, err
	}
	m["transaction_amount"] = entry.Value
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = entry.ID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Parcela %s do projeto %s", entry.Installment, entry.ProjectID)
	}
	return json.Marshal(m)
}
