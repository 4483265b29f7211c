package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mock_interfaces "taller_movil/internal/usecase/interfaces/mocks"

	"taller_movil/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestDepositPaymentCollect(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, gw, nil)

		if _, err := uc.Collect(context.Background(), "  ", 10, nil); !errors.Is(err, ErrInvalidDepositDraftID) {
			t.Fatalf("expected ErrInvalidDepositDraftID, got %v", err)
		}
		if _, err := uc.Collect(context.Background(), "draft-1", 0, nil); !errors.Is(err, ErrInvalidDepositAmount) {
			t.Fatalf("expected ErrInvalidDepositAmount, got %v", err)
		}
		if _, err := uc.Collect(context.Background(), "draft-1", 10, json.RawMessage("{broken")); !errors.Is(err, ErrInvalidGatewayPayload) {
			t.Fatalf("expected ErrInvalidGatewayPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		uc := NewDepositPaymentUseCase(repo, nil, nil)

		if _, err := uc.Collect(context.Background(), "draft-1", 10, nil); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("approved payment persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, gw, nil)

		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-1", "approved", json.RawMessage(`{"status":"approved"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
				return p, nil
			})

		got, err := uc.Collect(context.Background(), "draft-1", 50, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", got.Status)
		}
		if got.Amount != 50 || got.DraftID != "draft-1" {
			t.Fatalf("unexpected payment: %+v", got)
		}
		if got.GatewayPayload["provider_payment_id"] != "mp-1" {
			t.Fatalf("expected provider payment id preserved, got %+v", got.GatewayPayload)
		}
	})

	t.Run("rejected status mapped to denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, gw, nil)

		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-2", "rejected", nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
				return p, nil
			})

		got, err := uc.Collect(context.Background(), "draft-1", 50, json.RawMessage(`{"token":"t"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusDenied {
			t.Fatalf("expected denied, got %s", got.Status)
		}
	})

	t.Run("gateway failure surfaces without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, gw, nil)

		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New("provider down"))

		if _, err := uc.Collect(context.Background(), "draft-1", 50, nil); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestDepositPaymentGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
	uc := NewDepositPaymentUseCase(repo, nil, nil)

	if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrDepositPaymentNotFound) {
		t.Fatalf("expected ErrDepositPaymentNotFound, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.DepositPayment{}, errors.New("not found"))
	if _, err := uc.GetByID(context.Background(), "p-1"); !errors.Is(err, ErrDepositPaymentNotFound) {
		t.Fatalf("expected ErrDepositPaymentNotFound, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.DepositPayment{ID: "p-2", DraftID: "draft-1"}, nil)
	got, err := uc.GetByID(context.Background(), "p-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "p-2" {
		t.Fatalf("unexpected payment: %+v", got)
	}
}

func TestDepositPaymentListByDraftID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
	uc := NewDepositPaymentUseCase(repo, nil, nil)

	if _, err := uc.ListByDraftID(context.Background(), ""); !errors.Is(err, ErrInvalidDepositDraftID) {
		t.Fatalf("expected ErrInvalidDepositDraftID, got %v", err)
	}

	repo.EXPECT().ListByDraftID(gomock.Any(), "draft-1").Return([]entities.DepositPayment{{ID: "p-1"}, {ID: "p-2"}}, nil)
	got, err := uc.ListByDraftID(context.Background(), "draft-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(got))
	}
}
