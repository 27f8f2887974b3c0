package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/creator"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/lifecycle"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/policy"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/validation"
)

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) handleCreateReturn(w http.ResponseWriter, r *http.Request) {
	var params creator.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if key := r.Header.Get("Idempotency-Key"); key != "" && params.IdempotencyKey == "" {
		params.IdempotencyKey = key
	}

	res, err := s.creator.Create(r.Context(), params, actorFrom(r, lifecycle.ActorSystem))
	if err != nil {
		s.writeError(w, "create_return", err)
		return
	}
	respondJSON(w, res.StatusCode, res.Request)
}

func (s *Server) handleCreateBatch(w http.ResponseWriter, r *http.Request) {
	var params creator.BatchParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if key := r.Header.Get("Idempotency-Key"); key != "" && params.IdempotencyKey == "" {
		params.IdempotencyKey = key
	}

	res, err := s.creator.CreateBatch(r.Context(), params, actorFrom(r, lifecycle.ActorSystem))
	if err != nil {
		s.writeError(w, "create_batch", err)
		return
	}
	respondJSON(w, res.StatusCode, map[string]interface{}{
		"return_requests": res.Requests,
		"count":           len(res.Requests),
	})
}

func (s *Server) handleGetReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid return request ID")
		return
	}

	req, err := s.requests.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, "get_return", err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (s *Server) handleListReturns(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := pathID(r, "merchant_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid merchant ID")
		return
	}

	page, limit := 1, 20
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'page' parameter")
			return
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 || limit > 100 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'limit' parameter")
			return
		}
	}

	status := repository.ReturnStatus(r.URL.Query().Get("status"))
	requests, err := s.requests.ListByMerchant(r.Context(), merchantID, status, page, limit)
	if err != nil {
		s.writeError(w, "list_returns", err)
		return
	}
	if requests == nil {
		requests = []*repository.ReturnRequest{}
	}
	respondJSON(w, http.StatusOK, requests)
}

func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid return request ID")
		return
	}

	event := lifecycle.Event(mux.Vars(r)["event"])
	switch event {
	case lifecycle.EventApprove, lifecycle.EventReject, lifecycle.EventShip,
		lifecycle.EventMarkReceived, lifecycle.EventResolve, lifecycle.EventReset:
	default:
		respondError(w, http.StatusNotFound, "Unknown event")
		return
	}

	req, err := s.lifecycle.Fire(r.Context(), id, event, actorFrom(r, lifecycle.ActorAdmin))
	if err != nil {
		s.writeError(w, "transition", err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (s *Server) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid return request ID")
		return
	}

	recent := r.URL.Query().Get("recent") == "true"
	logs, err := s.lifecycle.AuditTrail(r.Context(), id, recent)
	if err != nil {
		s.writeError(w, "audit_trail", err)
		return
	}
	if logs == nil {
		logs = []*repository.StatusAuditLog{}
	}
	respondJSON(w, http.StatusOK, logs)
}

func (s *Server) handleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderID    int64 `json:"order_id" validate:"gt=0"`
		ProductID  int64 `json:"product_id" validate:"gt=0"`
		MerchantID int64 `json:"merchant_id" validate:"gt=0"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(body); err != nil {
		s.writeError(w, "check_eligibility", err)
		return
	}

	result, err := s.checker.Check(r.Context(), &repository.ReturnRequest{
		OrderID:       body.OrderID,
		ProductID:     body.ProductID,
		MerchantID:    body.MerchantID,
		RequestedDate: time.Now().UTC(),
	})
	if err != nil {
		s.writeError(w, "check_eligibility", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateRule(w http.ResponseWriter, r *http.Request) {
	var params policy.CreateRuleParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rule, err := s.rules.Create(r.Context(), params)
	if err != nil {
		s.writeError(w, "create_rule", err)
		return
	}
	respondJSON(w, http.StatusCreated, rule)
}

func (s *Server) handleUpdateRule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid return rule ID")
		return
	}

	var body struct {
		Configuration json.RawMessage `json:"configuration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rule, err := s.rules.UpdateConfiguration(r.Context(), id, body.Configuration)
	if err != nil {
		s.writeError(w, "update_rule", err)
		return
	}
	respondJSON(w, http.StatusOK, rule)
}

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := pathID(r, "merchant_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid merchant ID")
		return
	}

	rules, err := s.rules.List(r.Context(), merchantID)
	if err != nil {
		s.writeError(w, "list_rules", err)
		return
	}
	if rules == nil {
		rules = []*repository.ReturnRule{}
	}
	respondJSON(w, http.StatusOK, rules)
}

func (s *Server) handleCarrierWebhook(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TrackingNumber string `json:"tracking_number"`
		Status         string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.TrackingNumber == "" || body.Status == "" {
		respondError(w, http.StatusBadRequest, "Missing tracking_number or status")
		return
	}

	req, err := s.lifecycle.HandleCarrierUpdate(r.Context(), body.TrackingNumber, body.Status)
	if err != nil {
		s.writeError(w, "carrier_webhook", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":     req.ID,
		"status": req.Status,
	})
}
