package handlers

import (
	"bytes"
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

func TestCustomerHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty term rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerDirectoryUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/customers", h.Search)

		uc.EXPECT().Search(gomock.Any(), "").Return(nil, usecase.ErrInvalidSearchTerm)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("results returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerDirectoryUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/customers", h.Search)

		uc.EXPECT().Search(gomock.Any(), "gomez").Return([]entities.Customer{
			{ID: "c-1", Name: "Ana", Surname: "Gomez", Phone: "600111222"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers?q=gomez", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "c-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCustomerHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing phone rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerDirectoryUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Ana","surname":"Gomez"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerDirectoryUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Customer{ID: "c-1", Name: "Ana", Surname: "Gomez", Phone: "600111222"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Ana","surname":"Gomez","phone":"600111222"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "c-1" {
			t.Fatalf("expected c-1, got %v", body["id"])
		}
	})
}
