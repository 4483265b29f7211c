package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase/interfaces"
)

var (
	ErrInvalidDepositDraftID  = errors.New("invalid draft_id")
	ErrInvalidDepositAmount   = errors.New("deposit amount must be greater than zero")
	ErrInvalidGatewayPayload  = errors.New("invalid payment gateway payload")
	ErrDepositPaymentNotFound = errors.New("deposit payment not found")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
)

// IDepositPaymentUseCase collects a deposit (anticipo) against a draft
// through the payment gateway and keeps an auditable payment record. The
// collected amount is displayed against the order total, never netted from it.

type IDepositPaymentUseCase interface {
	Collect(ctx context.Context, draftID string, amount float64, gatewayPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByDraftID(ctx context.Context, draftID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo    interfaces.IDepositPaymentRepository
	gateway interfaces.IPaymentGateway
	logger  *log.Entry
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, gateway interfaces.IPaymentGateway, logger *log.Entry) *DepositPaymentUseCase {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &DepositPaymentUseCase{repo: repo, gateway: gateway, logger: logger.WithField("component", "deposit")}
}

// Collect creates the gateway payment and persists the record. The provider
// payload is stored raw for traceability alongside a parsed copy when the
// response is valid JSON.
func (u *DepositPaymentUseCase) Collect(ctx context.Context, draftID string, amount float64, gatewayPayload json.RawMessage) (entities.DepositPayment, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return entities.DepositPayment{}, ErrInvalidDepositDraftID
	}
	if amount <= 0 {
		return entities.DepositPayment{}, ErrInvalidDepositAmount
	}
	if len(gatewayPayload) > 0 && !json.Valid(gatewayPayload) {
		return entities.DepositPayment{}, ErrInvalidGatewayPayload
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, ErrGatewayNotConfigured
	}
	if len(gatewayPayload) == 0 {
		gatewayPayload = json.RawMessage("{}")
	}

	logger := u.logger.WithField("draft_id", draftID)
	logger.WithField("amount", amount).Info("collecting deposit")

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, gatewayPayload)
	if err != nil {
		logger.WithError(err).Warn("gateway payment failed")
		return entities.DepositPayment{}, err
	}

	status := entities.PaymentStatusPending
	switch strings.ToLower(providerStatus) {
	case "approved", "accredited":
		status = entities.PaymentStatusApproved
	case "rejected", "cancelled", "denied":
		status = entities.PaymentStatusDenied
	}

	p := entities.DepositPayment{
		ID:                uuid.NewString(),
		DraftID:           draftID,
		Amount:            amount,
		Date:              time.Now().UTC(),
		Status:            status,
		GatewayPayloadRaw: providerResp,
	}
	if len(providerResp) > 0 && json.Valid(providerResp) {
		var parsed map[string]interface{}
		if err := json.Unmarshal(providerResp, &parsed); err == nil {
			p.GatewayPayload = parsed
		}
	}
	if p.GatewayPayload == nil {
		p.GatewayPayload = map[string]interface{}{}
	}
	p.GatewayPayload["provider_payment_id"] = providerID

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.WithError(err).Error("failed persisting deposit payment")
		return entities.DepositPayment{}, err
	}
	logger.WithField("payment_id", created.ID).WithField("status", string(created.Status)).Info("deposit collected")
	return created, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByDraftID(ctx context.Context, draftID string) ([]entities.DepositPayment, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return nil, ErrInvalidDepositDraftID
	}
	return u.repo.ListByDraftID(ctx, draftID)
}
