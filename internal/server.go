package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/wandersoncferreira/marathon-tracker/internal/activities"
	"github.com/wandersoncferreira/marathon-tracker/internal/auth"
	"github.com/wandersoncferreira/marathon-tracker/internal/carbs"
	"github.com/wandersoncferreira/marathon-tracker/internal/config"
	"github.com/wandersoncferreira/marathon-tracker/internal/db"
	"github.com/wandersoncferreira/marathon-tracker/internal/middleware"
	"github.com/wandersoncferreira/marathon-tracker/internal/misc"
	"github.com/wandersoncferreira/marathon-tracker/internal/nutrition"
	"github.com/wandersoncferreira/marathon-tracker/internal/overview"
	"github.com/wandersoncferreira/marathon-tracker/internal/plan"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/metrics"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	dbPool   *pgxpool.Pool
	calendar *plan.Calendar
	zones    *plan.PaceZones

	stravaClient *activities.Client
	syncer       *activities.Syncer

	redisClient  *redis.Client
	admin        *auth.Admin
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config            *config.Config
	StravaAccessToken string
	VersionInfo       string
	AdminUsername     string
	AdminPasswordHash string
	RedisPassword     string
	TracingEnabled    bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("marathon", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	otelShutdown, err := tracing.Setup(params.TracingEnabled, rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	calendar, err := plan.NewCalendar(params.Config.PlanStartDate, params.Config.RaceDate)
	if err != nil {
		return nil, fmt.Errorf("new plan calendar: %w", err)
	}
	zones, err := plan.NewPaceZones(params.Config.ThresholdPace)
	if err != nil {
		return nil, fmt.Errorf("new pace zones: %w", err)
	}

	stravaClient := activities.NewClient(
		params.Config.StravaBaseURL,
		params.StravaAccessToken,
		tracedHttpClient,
	)

	s := &Server{
		config:       params.Config,
		dbPool:       dbPool,
		calendar:     calendar,
		zones:        zones,
		stravaClient: stravaClient,
		syncer: activities.NewSyncer(
			stravaClient,
			activities.NewRepo(dbPool),
			calendar.StartDate,
			metricsManager,
		),
		versionInfo: params.VersionInfo,

		redisClient: rdb,
		admin: &auth.Admin{
			Username:     params.AdminUsername,
			PasswordHash: params.AdminPasswordHash,
		},
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	// fueling analytics need guidelines to exist, seed the defaults once
	carbsRepo := carbs.NewRepo(dbPool)
	if _, err := carbsRepo.GetGuidelines(ctx); errors.Is(err, carbs.ErrGuidelinesNotFound) {
		if err := carbsRepo.SaveGuidelines(ctx, carbs.DefaultGuidelines()); err != nil {
			return nil, fmt.Errorf("seed default carb guidelines: %w", err)
		}
		log.Infoln("carb guidelines not found, seeded defaults")
	} else if err != nil {
		log.Warnf("failed to check carb guidelines: %s", err)
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService, s.admin)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	activitiesRepo := activities.NewRepo(s.dbPool)
	activitiesHandler := activities.NewHandler(activitiesRepo, s.syncer, s.zones)
	r.HandleFunc("/activities", activitiesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-activities")
	r.HandleFunc("/activities/sync", activitiesHandler.HandleSync).Methods("POST", "OPTIONS").Name("sync-activities")
	r.HandleFunc("/activities/{id}", activitiesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-activity")

	nutritionRepo := nutrition.NewRepo(s.dbPool)
	nutritionAnalyzer := nutrition.NewAnalyzer(nutritionRepo)
	nutritionHandler := nutrition.NewHandler(nutritionRepo, nutritionAnalyzer, s.calendar, s.metricsManager)
	r.HandleFunc("/nutrition", nutritionHandler.HandleSave).Methods("POST", "OPTIONS").Name("save-tracking")
	r.HandleFunc("/nutrition", nutritionHandler.HandleList).Methods("GET", "OPTIONS").Name("list-tracking")
	r.HandleFunc("/nutrition/bulk", nutritionHandler.HandleSaveAll).Methods("POST", "OPTIONS").Name("bulk-save-tracking")
	r.HandleFunc("/nutrition/stats/weekly", nutritionHandler.HandleWeeklyStats).Methods("GET", "OPTIONS").Name("weekly-nutrition-stats")
	r.HandleFunc("/nutrition/stats/cycle", nutritionHandler.HandleCycleStats).Methods("GET", "OPTIONS").Name("cycle-nutrition-stats")
	r.HandleFunc("/nutrition/meals", nutritionHandler.HandleMealPatterns).Methods("GET", "OPTIONS").Name("meal-patterns")
	r.HandleFunc("/nutrition/goals", nutritionHandler.HandleGetGoals).Methods("GET", "OPTIONS").Name("get-goals")
	r.HandleFunc("/nutrition/goals", nutritionHandler.HandleSaveGoals).Methods("PUT", "OPTIONS").Name("save-goals")
	r.HandleFunc("/nutrition/{date}", nutritionHandler.HandleGetDay).Methods("GET", "OPTIONS").Name("get-tracking-day")

	carbsRepo := carbs.NewRepo(s.dbPool)
	carbsAnalyzer := carbs.NewAnalyzer(carbsRepo, activitiesRepo)
	carbsHandler := carbs.NewHandler(carbsRepo, carbsAnalyzer, s.calendar, s.metricsManager)
	r.HandleFunc("/carbs", carbsHandler.HandleSaveIntake).Methods("POST", "OPTIONS").Name("save-carb-intake")
	r.HandleFunc("/carbs/guidelines", carbsHandler.HandleGetGuidelines).Methods("GET", "OPTIONS").Name("get-carb-guidelines")
	r.HandleFunc("/carbs/guidelines", carbsHandler.HandleSaveGuidelines).Methods("PUT", "OPTIONS").Name("save-carb-guidelines")
	r.HandleFunc("/carbs/tracking", carbsHandler.HandleTracking).Methods("GET", "OPTIONS").Name("carb-tracking")
	r.HandleFunc("/carbs/stats/weekly", carbsHandler.HandleWeeklyStats).Methods("GET", "OPTIONS").Name("weekly-carb-stats")
	r.HandleFunc("/carbs/stats/cycle", carbsHandler.HandleCycleStats).Methods("GET", "OPTIONS").Name("cycle-carb-stats")
	r.HandleFunc("/carbs/{activityId}", carbsHandler.HandleGetIntake).Methods("GET", "OPTIONS").Name("get-carb-intake")

	overviewHandler := overview.NewHandler(nutritionAnalyzer, carbsAnalyzer, s.calendar)
	r.HandleFunc("/plan", overviewHandler.HandleOverview).Methods("GET", "OPTIONS").Name("plan-overview")
	r.HandleFunc("/plan/advice", overviewHandler.HandleAdvice).Methods("GET", "OPTIONS").Name("plan-advice")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	syncInterval := time.Duration(s.config.ActivitySyncIntervalMinutes) * time.Minute
	if syncInterval <= 0 {
		syncInterval = 30 * time.Minute
	}
	go s.syncer.Run(ctx, syncInterval)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
