package infra

import (
	"net/http"
	"time"

	"github.com/Rohith-kulkarni/qwipo-app/internal/cache"
	"github.com/Rohith-kulkarni/qwipo-app/internal/handlers"
	"github.com/Rohith-kulkarni/qwipo-app/internal/middleware"
	"github.com/Rohith-kulkarni/qwipo-app/internal/repository"
	"github.com/Rohith-kulkarni/qwipo-app/internal/service"
	"github.com/Rohith-kulkarni/qwipo-app/internal/validation"
	"github.com/Rohith-kulkarni/qwipo-app/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type RouterCfg struct {
	APIURL        string
	APITimeout    time.Duration
	PageSize      int
	RedirectDelay time.Duration
	SecureCookie  bool
}

func Router(cfg RouterCfg, profileCache cache.ProfileCache, logger *logrus.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	validator, err := validation.New()
	if err != nil {
		return nil, err
	}
	e.Validator = validator
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(logger)

	// Middleware
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Session(cfg.SecureCookie))

	// Repositories
	restClient := repository.NewRestClient(cfg.APIURL, &http.Client{Timeout: cfg.APITimeout})
	customerRps := repository.NewRestCustomerRepository(restClient)
	addressRps := repository.NewRestAddressRepository(restClient)

	// Services
	customerSvc := service.NewCustomerService(customerRps, cfg.PageSize)
	profileSvc := service.NewProfileService(customerRps, addressRps, profileCache)

	// Handlers
	listHandler := handlers.NewListHTTPHandler(customerSvc)
	createHandler := handlers.NewCreateHTTPHandler(customerSvc, cfg.RedirectDelay)
	profileHandler := handlers.NewProfileHTTPHandler(profileSvc)

	// list
	e.GET("/", listHandler.List)

	// create
	e.GET("/create", createHandler.Form)
	e.POST("/create", createHandler.Post)

	// profile
	profile := e.Group("/customer/:id", profileHandler.KeepEdits)
	profile.GET("", profileHandler.Get)
	profile.POST("", profileHandler.Show)
	profile.POST("/edit", profileHandler.Edit)
	profile.POST("/cancel", profileHandler.Cancel)
	profile.POST("/save", profileHandler.Save)
	profile.POST("/delete", profileHandler.Delete)

	// addresses
	profile.POST("/addresses", profileHandler.AddAddress)
	profile.POST("/addresses/:addressId/field", profileHandler.EditAddressField)
	profile.POST("/addresses/:addressId/save", profileHandler.SaveAddress)
	profile.POST("/addresses/:addressId/delete", profileHandler.DeleteAddress)
	profile.POST("/addresses/:addressId/primary", profileHandler.MarkPrimary)

	return e, nil
}
