package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gatewaysim/internal/adapter/http/handlers/mocks"
	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSubscriptionRouter(uc usecase.ISubscriptionUseCase) *gin.Engine {
	h := NewSubscriptionHandler(uc)
	r := gin.New()
	r.POST("/v1/preapproval_plan", h.CreatePlan)
	r.GET("/v1/preapproval_plan", h.ListPlans)
	r.GET("/v1/preapproval_plan/:id", h.GetPlan)
	r.POST("/v1/preapproval", h.CreateSubscription)
	r.GET("/v1/preapproval/:id", h.GetSubscription)
	r.PUT("/v1/preapproval/:id", h.UpdateSubscription)
	r.POST("/v1/preapproval/:id/pay", h.GeneratePayment)
	r.POST("/v1/preapproval/:id/pause", h.PauseSubscription)
	r.POST("/v1/preapproval/:id/reactivate", h.ReactivateSubscription)
	r.GET("/v1/preapproval", h.SearchSubscriptions)
	r.GET("/v1/recurring/search", h.SearchSubscriptions)
	r.POST("/v1/recurring/charge", h.ChargeRecurring)
	return r
}

func TestSubscriptionHandler_Plans(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).Return(entities.Plan{}, usecase.ErrMissingPlanReason)

		req := httptest.NewRequest(http.MethodPost, "/v1/preapproval_plan",
			bytes.NewBufferString(`{"auto_recurring":{"transaction_amount":30}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.PlanInput) (entities.Plan, error) {
				if in.Reason != "Gold tier" || in.AutoRecurring.TransactionAmount != 30 {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Plan{ID: "plan-1", Reason: in.Reason}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/preapproval_plan",
			bytes.NewBufferString(`{"reason":"Gold tier","auto_recurring":{"frequency":1,"frequency_type":"months","transaction_amount":30}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "plan-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().GetPlanByID(gomock.Any(), "missing").Return(entities.Plan{}, usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/preapproval_plan/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSubscriptionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing payer email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Subscription{}, usecase.ErrMissingPayerEmail)

		req := httptest.NewRequest(http.MethodPost, "/v1/preapproval",
			bytes.NewBufferString(`{"auto_recurring":{"transaction_amount":30}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid status carries valid list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Subscription{}, usecase.ErrInvalidSubscriptionStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/preapproval",
			bytes.NewBufferString(`{"payer_email":"payer@test.com","status":"frozen","auto_recurring":{"transaction_amount":30}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		details, ok := body["details"].(map[string]any)
		if !ok || details["valid_statuses"] == nil {
			t.Fatalf("expected valid_statuses in details, got %s", w.Body.String())
		}
	})

	t.Run("success forwards plan id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.SubscriptionInput) (entities.Subscription, error) {
				if in.PlanID != "plan-1" || in.PayerEmail != "payer@test.com" {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Subscription{ID: "sub-1", Status: entities.SubscriptionStatusAuthorized}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/preapproval",
			bytes.NewBufferString(`{"preapproval_plan_id":"plan-1","payer_email":"payer@test.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestSubscriptionHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("by external reference wraps single result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().GetByExternalReference(gomock.Any(), "order-9").
			Return(entities.Subscription{ID: "sub-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/recurring/search?external_reference=order-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "sub-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("listing endpoint serves the same handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Subscription{{ID: "a"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/preapproval", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "a" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no filter lists all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Subscription{{ID: "a"}, {ID: "b"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/recurring/search", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSubscriptionHandler_UpdateAndTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("transition denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().Update(gomock.Any(), "sub-1", gomock.Any()).
			Return(entities.Subscription{}, usecase.ErrSubscriptionTransitionDenied)

		req := httptest.NewRequest(http.MethodPut, "/v1/preapproval/sub-1",
			bytes.NewBufferString(`{"status":"authorized"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_STATE_TRANSITION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("pause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().Pause(gomock.Any(), "sub-1").
			Return(entities.Subscription{ID: "sub-1", Status: entities.SubscriptionStatusPaused}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/preapproval/sub-1/pause", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paused" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("reactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().Reactivate(gomock.Any(), "sub-1").
			Return(entities.Subscription{ID: "sub-1", Status: entities.SubscriptionStatusAuthorized}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/preapproval/sub-1/reactivate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSubscriptionHandler_Charging(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generate payment with empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().GeneratePayment(gomock.Any(), "sub-1", gomock.Any()).Return(usecase.RecurringChargeResult{
			Subscription: entities.Subscription{ID: "sub-1"},
			Payment:      entities.Payment{ID: "123456789012", Status: entities.PaymentStatusApproved},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/preapproval/sub-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("charge by external reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().ChargeRecurring(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.RecurringChargeInput) (usecase.RecurringChargeResult, error) {
				if in.ExternalReference != "order-9" {
					t.Fatalf("unexpected input %+v", in)
				}
				return usecase.RecurringChargeResult{
					Subscription: entities.Subscription{ID: "sub-1"},
					Payment:      entities.Payment{ID: "123456789012"},
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/recurring/charge",
			bytes.NewBufferString(`{"external_reference":"order-9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("charge not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := newSubscriptionRouter(uc)

		uc.EXPECT().ChargeRecurring(gomock.Any(), gomock.Any()).
			Return(usecase.RecurringChargeResult{}, usecase.ErrSubscriptionChargeNotAllowed)

		req := httptest.NewRequest(http.MethodPost, "/v1/recurring/charge",
			bytes.NewBufferString(`{"subscription_id":"sub-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapSubscriptionError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrMissingPlanReason, http.StatusUnprocessableEntity},
		{usecase.ErrMissingPayerEmail, http.StatusUnprocessableEntity},
		{usecase.ErrMissingRecurringAmount, http.StatusUnprocessableEntity},
		{usecase.ErrMissingSubscriptionReference, http.StatusUnprocessableEntity},
		{usecase.ErrInvalidSubscriptionStatus, http.StatusUnprocessableEntity},
		{usecase.ErrPlanNotFound, http.StatusNotFound},
		{usecase.ErrSubscriptionNotFound, http.StatusNotFound},
		{usecase.ErrSubscriptionTransitionDenied, http.StatusBadRequest},
		{usecase.ErrSubscriptionChargeNotAllowed, http.StatusBadRequest},
		{usecase.ErrInvalidAmount, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapSubscriptionError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
