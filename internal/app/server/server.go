package server

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/activity"
	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/comms"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/dashboard"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/domain/policy"
	"hrdesk/internal/domain/reports"
	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/email"
	"hrdesk/internal/platform/fixtures"
	"hrdesk/internal/platform/metrics"
	attendancehandler "hrdesk/internal/transport/http/handlers/attendance"
	authhandler "hrdesk/internal/transport/http/handlers/auth"
	commshandler "hrdesk/internal/transport/http/handlers/comms"
	corehandler "hrdesk/internal/transport/http/handlers/core"
	dashboardhandler "hrdesk/internal/transport/http/handlers/dashboard"
	leavehandler "hrdesk/internal/transport/http/handlers/leave"
	payrollhandler "hrdesk/internal/transport/http/handlers/payroll"
	policyhandler "hrdesk/internal/transport/http/handlers/policy"
	reportshandler "hrdesk/internal/transport/http/handlers/reports"
	"hrdesk/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Router http.Handler
}

// New wires the stores, services and routes. Collections start from the
// demo fixtures; state lives in memory and a restart resets everything
// except sessions, which are snapshotted to disk when configured.
func New(cfg config.Config) (*App, error) {
	coreStore := core.NewStore(core.WithLatency(cfg.SimulatedLatency))
	coreStore.Seed(fixtures.Employees(), fixtures.Departments(), fixtures.Positions())

	attendanceStore := attendance.NewStore(attendance.WithLatency(cfg.SimulatedLatency))
	attendanceStore.Seed(fixtures.Attendance())

	leaveStore := leave.NewStore(leave.WithLatency(cfg.SimulatedLatency))
	leaveStore.Seed(fixtures.LeaveRequests())

	payrollStore := payroll.NewStore(payroll.WithLatency(cfg.SimulatedLatency))
	payrollStore.Seed(fixtures.Payslips())

	policyStore := policy.NewStore(policy.WithLatency(cfg.SimulatedLatency))
	policyStore.Seed(fixtures.Policies())

	commsStore := comms.NewStore(comms.WithLatency(cfg.SimulatedLatency))
	commsStore.Seed(fixtures.CommunicationLogs())

	activityStore := activity.NewStore(50)

	attendanceService := attendance.NewService(attendanceStore, coreStore)
	leaveService := leave.NewService(leaveStore, coreStore)
	payrollService := payroll.NewService(payrollStore, coreStore)
	commsService := comms.NewService(commsStore, email.New(cfg), nil, cfg.EmailFrom)
	dashboardService := dashboard.NewService(coreStore, attendanceStore, leaveStore, payrollStore, activityStore)
	reportsService := reports.NewService(coreStore, attendanceStore, payrollStore)

	authService, err := auth.NewService(coreStore, auth.NewSessionStore(cfg.SessionFile), cfg.JWTSecret, cfg.DemoPassword, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	router.Use(middleware.Auth(authService))

	if cfg.MetricsEnabled {
		m := metrics.New()
		router.Use(m.Instrument)
		router.Method(http.MethodGet, "/metrics", m.Handler())
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api", func(r chi.Router) {
		authhandler.NewHandler(authService).RegisterRoutes(r)
		corehandler.NewHandler(coreStore, activityStore).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceService).RegisterRoutes(r)
		leavehandler.NewHandler(leaveService, activityStore).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService, activityStore).RegisterRoutes(r)
		policyhandler.NewHandler(policyStore, activityStore).RegisterRoutes(r)
		commshandler.NewHandler(commsService, activityStore).RegisterRoutes(r)
		dashboardhandler.NewHandler(dashboardService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return &App{Config: cfg, Router: router}, nil
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := New(cfg)
	if err != nil {
		log.Fatalf("server init failed: %v", err)
	}

	log.Printf("hrdesk server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// spaHandler serves the built frontend, falling back to index.html so
// client-side routes resolve on refresh.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
