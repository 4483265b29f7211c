package usecase

import (
	"context"
	"errors"
	"testing"

	mock_interfaces "taller_movil/internal/usecase/interfaces/mocks"

	"taller_movil/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestCatalogQueryResolveModel(t *testing.T) {
	t.Run("blank names rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockICatalogService(ctrl)
		uc := NewCatalogQueryUseCase(svc)

		if _, err := uc.ResolveModel(context.Background(), "  ", "iPhone 12"); !errors.Is(err, ErrInvalidBrandName) {
			t.Fatalf("expected ErrInvalidBrandName, got %v", err)
		}
		if _, err := uc.ResolveModel(context.Background(), "Apple", ""); !errors.Is(err, ErrInvalidModelName) {
			t.Fatalf("expected ErrInvalidModelName, got %v", err)
		}
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockICatalogService(ctrl)
		uc := NewCatalogQueryUseCase(svc)

		svc.EXPECT().ListBrands(gomock.Any()).Return([]entities.Brand{{ID: "b-1", Name: "Apple"}}, nil)
		svc.EXPECT().ListModels(gomock.Any(), "b-1").Return([]entities.Model{{ID: "m-1", BrandID: "b-1", Name: "iPhone 12"}}, nil)

		res, err := uc.ResolveModel(context.Background(), "apple", "IPHONE 12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Resolved {
			t.Fatal("expected resolution")
		}
		if res.Brand.ID != "b-1" || res.Model.ID != "m-1" {
			t.Fatalf("unexpected resolution: %+v", res)
		}
	})

	t.Run("unknown brand is informational, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockICatalogService(ctrl)
		uc := NewCatalogQueryUseCase(svc)

		svc.EXPECT().ListBrands(gomock.Any()).Return([]entities.Brand{{ID: "b-1", Name: "Apple"}}, nil)

		res, err := uc.ResolveModel(context.Background(), "Nokla", "3310")
		if err != nil {
			t.Fatalf("unresolved must not be an error: %v", err)
		}
		if res.Resolved {
			t.Fatal("expected unresolved")
		}
	})

	t.Run("unknown model under known brand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockICatalogService(ctrl)
		uc := NewCatalogQueryUseCase(svc)

		svc.EXPECT().ListBrands(gomock.Any()).Return([]entities.Brand{{ID: "b-1", Name: "Apple"}}, nil)
		svc.EXPECT().ListModels(gomock.Any(), "b-1").Return([]entities.Model{}, nil)

		res, err := uc.ResolveModel(context.Background(), "Apple", "iPhone 99")
		if err != nil {
			t.Fatalf("unresolved must not be an error: %v", err)
		}
		if res.Resolved {
			t.Fatal("expected unresolved")
		}
	})

	t.Run("service failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockICatalogService(ctrl)
		uc := NewCatalogQueryUseCase(svc)

		svc.EXPECT().ListBrands(gomock.Any()).Return(nil, errors.New("dynamo down"))

		if _, err := uc.ResolveModel(context.Background(), "Apple", "iPhone 12"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestCatalogQueryListInterventions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock_interfaces.NewMockICatalogService(ctrl)
	uc := NewCatalogQueryUseCase(svc)

	if _, err := uc.ListInterventions(context.Background(), "", "f-1"); !errors.Is(err, ErrInvalidModelID) {
		t.Fatalf("expected ErrInvalidModelID, got %v", err)
	}
	if _, err := uc.ListInterventions(context.Background(), "m-1", " "); !errors.Is(err, ErrInvalidFaultID) {
		t.Fatalf("expected ErrInvalidFaultID, got %v", err)
	}

	// An empty candidate list is a valid informational outcome.
	svc.EXPECT().ListInterventions(gomock.Any(), "m-1", "f-1").Return([]entities.InterventionTemplate{}, nil)
	got, err := uc.ListInterventions(context.Background(), "m-1", "f-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}

func TestCatalogQuerySuggestFaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock_interfaces.NewMockICatalogService(ctrl)
	uc := NewCatalogQueryUseCase(svc)

	// A non-positive limit falls back to the default.
	svc.EXPECT().SuggestFaults(gomock.Any(), "m-1", defaultSuggestionLimit).Return([]entities.FaultSuggestion{
		{Fault: entities.Fault{ID: "f-1", Name: "pantalla rota"}, Frequency: 40},
	}, nil)

	got, err := uc.SuggestFaults(context.Background(), "m-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Fault.ID != "f-1" {
		t.Fatalf("unexpected suggestions: %+v", got)
	}
}
