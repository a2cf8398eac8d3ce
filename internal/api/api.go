package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/ougirez/workforce-planner/internal/api/controller"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
	"github.com/ougirez/workforce-planner/internal/pkg/logger"
	"github.com/ougirez/workforce-planner/internal/pkg/metrics"
	"github.com/ougirez/workforce-planner/internal/pkg/store"
	"github.com/ougirez/workforce-planner/internal/planning"
	"github.com/ougirez/workforce-planner/internal/service/capacity"
)

type APIService struct {
	router          *echo.Echo
	capacityService *capacity.Service
}

func (svc *APIService) Serve(addr string) {
	ctx := context.Background()
	logger.Infof(ctx, "listening on %s", addr)
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(ctx, err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(store store.Store, engine *planning.Engine) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(echoLogLevel(viper.GetString(constants.ViperLogLevelKey)))
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Recover())
	svc.router.Use(RequestIDMiddleware())
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOriginsKey),
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type"},
	}))

	svc.capacityService = capacity.NewCapacityService(store, engine, viper.GetUint64(constants.ViperStoreFetchRetriesKey))

	cntrl := controller.NewController(svc.capacityService)

	svc.router.GET("/health", cntrl.Health)
	svc.router.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := svc.router.Group("/api/v1")

	regions := api.Group("/regions")
	regions.GET("/list", cntrl.GetRegions)
	regions.GET("/:id", cntrl.GetRegion)
	regions.GET("/:id/scenarios/compare", cntrl.CompareScenarios)

	skills := api.Group("/skills")
	skills.GET("/list", cntrl.GetSkills)

	scenarios := api.Group("/scenarios")
	scenarios.GET("/list", cntrl.GetScenarios)
	scenarios.POST("/evaluate", cntrl.EvaluateScenario)

	return svc, nil
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
