package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_movil/internal/adapter/http/handlers/mocks"
	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ResolveModel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogQueryUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/resolve", h.ResolveModel)

		uc.EXPECT().ResolveModel(gomock.Any(), "apple", "iphone 12").Return(usecase.ModelResolution{
			Resolved: true,
			Brand:    entities.Brand{ID: "b-1", Name: "Apple"},
			Model:    entities.Model{ID: "m-1", BrandID: "b-1", Name: "iPhone 12"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/resolve?brand=apple&model=iphone%2012", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["resolved"] != true {
			t.Fatalf("expected resolved=true, got %v", body["resolved"])
		}
	})

	t.Run("unresolved is 200, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogQueryUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/resolve", h.ResolveModel)

		uc.EXPECT().ResolveModel(gomock.Any(), "nokla", "3310").Return(usecase.ModelResolution{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/resolve?brand=nokla&model=3310", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["resolved"] != false {
			t.Fatalf("expected resolved=false, got %v", body["resolved"])
		}
	})

	t.Run("blank query rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogQueryUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/resolve", h.ResolveModel)

		uc.EXPECT().ResolveModel(gomock.Any(), "", "").Return(usecase.ModelResolution{}, usecase.ErrInvalidBrandName)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/resolve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_SuggestFaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogQueryUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/catalog/models/:model_id/fault-suggestions", h.SuggestFaults)

	// A missing limit parses to zero; the usecase applies its default.
	uc.EXPECT().SuggestFaults(gomock.Any(), "m-1", 0).Return([]entities.FaultSuggestion{
		{Fault: entities.Fault{ID: "f-1", Name: "pantalla rota"}, Frequency: 40},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/models/m-1/fault-suggestions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(body))
	}
}

func TestCatalogHandler_ListInterventions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty candidates serialize as a list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogQueryUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/models/:model_id/interventions", h.ListInterventions)

		uc.EXPECT().ListInterventions(gomock.Any(), "m-1", "f-1").Return([]entities.InterventionTemplate{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/models/m-1/interventions?fault_id=f-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); got != "[]" {
			t.Fatalf("expected empty JSON array, got %s", got)
		}
	})

	t.Run("missing fault id rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogQueryUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/models/:model_id/interventions", h.ListInterventions)

		uc.EXPECT().ListInterventions(gomock.Any(), "m-1", "").Return(nil, usecase.ErrInvalidFaultID)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/models/m-1/interventions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
