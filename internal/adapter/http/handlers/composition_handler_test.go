package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_movil/internal/adapter/http/handlers/mocks"
	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func testView(draftID string) usecase.CompositionView {
	return usecase.CompositionView{
		DraftID: draftID,
		Snapshot: entities.OrderSnapshot{
			ActiveSection: entities.SectionCustomer,
		},
		SaveState: entities.SaveStateIdle,
	}
}

func TestCompositionHandler_StartOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("fresh start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.POST("/v1/orders", h.StartOrder)

		mgr.EXPECT().Start(false).Return(testView("draft-1"), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["draft_id"] != "draft-1" {
			t.Fatalf("expected draft-1, got %v", body["draft_id"])
		}
	})

	t.Run("restore with empty cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.POST("/v1/orders", h.StartOrder)

		mgr.EXPECT().Start(true).Return(usecase.CompositionView{}, usecase.ErrNoCachedDraft)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"restore_from_cache":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCompositionHandler_SetCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.PUT("/v1/orders/:id/customer", h.SetCustomer)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/draft-1/customer", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.PUT("/v1/orders/:id/customer", h.SetCustomer)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/draft-1/customer", bytes.NewBufferString(`{"name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.PUT("/v1/orders/:id/customer", h.SetCustomer)

		mgr.EXPECT().SetCustomer("nope", gomock.Any()).Return(usecase.CompositionView{}, usecase.ErrCompositionNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/nope/customer", bytes.NewBufferString(`{"name":"Ana","surname":"Gomez","phone":"600111222"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns full view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.PUT("/v1/orders/:id/customer", h.SetCustomer)

		view := testView("draft-1")
		view.Progress = 25
		mgr.EXPECT().SetCustomer("draft-1", gomock.Any()).Return(view, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/draft-1/customer", bytes.NewBufferString(`{"name":"Ana","surname":"Gomez","phone":"600111222"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["progress"] != float64(25) {
			t.Fatalf("expected progress 25, got %v", body["progress"])
		}
	})
}

func TestCompositionHandler_ReorderDevices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing index rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.PATCH("/v1/orders/:id/devices/reorder", h.ReorderDevices)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/draft-1/devices/reorder", bytes.NewBufferString(`{"from_index":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero is a valid index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.PATCH("/v1/orders/:id/devices/reorder", h.ReorderDevices)

		mgr.EXPECT().ReorderDevice("draft-1", 2, 0).Return(testView("draft-1"), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/draft-1/devices/reorder", bytes.NewBufferString(`{"from_index":2,"to_index":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCompositionHandler_Navigate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked forward navigation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.PATCH("/v1/orders/:id/section", h.Navigate)

		mgr.EXPECT().Navigate("draft-1", entities.SectionDiagnosis).Return(usecase.CompositionView{}, usecase.ErrNavigationBlocked)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/draft-1/section", bytes.NewBufferString(`{"section":"diagnosis"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid section", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.PATCH("/v1/orders/:id/section", h.Navigate)

		mgr.EXPECT().Navigate("draft-1", entities.Section("bogus")).Return(usecase.CompositionView{}, usecase.ErrInvalidSection)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/draft-1/section", bytes.NewBufferString(`{"section":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCompositionHandler_Finalize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.POST("/v1/orders/:id/finalize", h.Finalize)

		mgr.EXPECT().Finalize(gomock.Any(), "draft-1").Return("", usecase.ErrOrderNotValid)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/draft-1/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockICompositionManager(ctrl)
		h := NewCompositionHandler(mgr)

		r := gin.New()
		r.POST("/v1/orders/:id/finalize", h.Finalize)

		mgr.EXPECT().Finalize(gomock.Any(), "draft-1").Return("order-42", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/draft-1/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["order_id"] != "order-42" {
			t.Fatalf("expected order-42, got %v", body["order_id"])
		}
	})
}

func TestMapCompositionError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrCompositionNotFound, http.StatusNotFound},
		{usecase.ErrNoCachedDraft, http.StatusNotFound},
		{usecase.ErrUnknownDevice, http.StatusNotFound},
		{usecase.ErrInvalidCustomer, http.StatusBadRequest},
		{usecase.ErrInvalidDevice, http.StatusBadRequest},
		{usecase.ErrInvalidBudget, http.StatusBadRequest},
		{usecase.ErrInvalidSection, http.StatusBadRequest},
		{usecase.ErrNegativeAmount, http.StatusBadRequest},
		{usecase.ErrNavigationBlocked, http.StatusConflict},
		{usecase.ErrOrderNotValid, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapCompositionError(tc.err).HTTPStatus; got != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}
}
