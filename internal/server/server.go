//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/creator"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/eligibility"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/lifecycle"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/policy"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

type Creator interface {
	Create(ctx context.Context, params creator.CreateParams, actor string) (*creator.Result, error)
	CreateBatch(ctx context.Context, params creator.BatchParams, actor string) (*creator.BatchResult, error)
}

type Lifecycle interface {
	Fire(ctx context.Context, id int64, event lifecycle.Event, actor string) (*repository.ReturnRequest, error)
	HandleCarrierUpdate(ctx context.Context, trackingNumber, status string) (*repository.ReturnRequest, error)
	AuditTrail(ctx context.Context, id int64, recent bool) ([]*repository.StatusAuditLog, error)
}

type ReturnRequestReader interface {
	GetByID(ctx context.Context, id int64) (*repository.ReturnRequest, error)
	ListByMerchant(ctx context.Context, merchantID int64, status repository.ReturnStatus, page, limit int) ([]*repository.ReturnRequest, error)
}

type RulePolicy interface {
	Create(ctx context.Context, params policy.CreateRuleParams) (*repository.ReturnRule, error)
	UpdateConfiguration(ctx context.Context, id int64, configuration json.RawMessage) (*repository.ReturnRule, error)
	List(ctx context.Context, merchantID int64) ([]*repository.ReturnRule, error)
}

type EligibilityChecker interface {
	Check(ctx context.Context, req *repository.ReturnRequest) (eligibility.Result, error)
}

type Deps struct {
	Creator   Creator
	Lifecycle Lifecycle
	Requests  ReturnRequestReader
	Rules     RulePolicy
	Checker   EligibilityChecker
	// LabelDir, when set, is served under /labels/.
	LabelDir string
}

type Server struct {
	creator      Creator
	lifecycle    Lifecycle
	requests     ReturnRequestReader
	rules        RulePolicy
	checker      EligibilityChecker
	labelDir     string
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(deps Deps, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		creator:      deps.Creator,
		lifecycle:    deps.Lifecycle,
		requests:     deps.Requests,
		rules:        deps.Rules,
		checker:      deps.Checker,
		labelDir:     deps.LabelDir,
		logger:       logger,
		AuditManager: NewAuditManager(2, 5, 500*time.Millisecond, logger),
	}
}

// Run serves until Shutdown is called.
func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.logger.Info("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	return nil
}

func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()
	router.Use(s.auditLogMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/return_requests", s.handleCreateReturn).Methods(http.MethodPost)
	api.HandleFunc("/return_requests/batch", s.handleCreateBatch).Methods(http.MethodPost)
	api.HandleFunc("/return_requests/{id:[0-9]+}", s.handleGetReturn).Methods(http.MethodGet)
	api.HandleFunc("/return_requests/{id:[0-9]+}/audit_logs", s.handleAuditTrail).Methods(http.MethodGet)
	api.HandleFunc("/return_requests/{id:[0-9]+}/{event}", s.handleTransition).Methods(http.MethodPost)
	api.HandleFunc("/merchants/{merchant_id:[0-9]+}/return_requests", s.handleListReturns).Methods(http.MethodGet)

	api.HandleFunc("/eligibility", s.handleCheckEligibility).Methods(http.MethodPost)

	api.HandleFunc("/return_rules", s.handleCreateRule).Methods(http.MethodPost)
	api.HandleFunc("/return_rules/{id:[0-9]+}", s.handleUpdateRule).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/merchants/{merchant_id:[0-9]+}/return_rules", s.handleListRules).Methods(http.MethodGet)

	api.HandleFunc("/webhooks/carrier", s.handleCarrierWebhook).Methods(http.MethodPost)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	if s.labelDir != "" {
		router.PathPrefix("/labels/").Handler(http.StripPrefix("/labels/", http.FileServer(http.Dir(s.labelDir))))
	}

	return router
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
