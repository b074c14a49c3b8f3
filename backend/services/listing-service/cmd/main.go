package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/harborview/realestate/backend/services/listing-service/internal/app"
	"github.com/harborview/realestate/backend/services/listing-service/internal/config"
	"github.com/harborview/realestate/backend/services/listing-service/internal/controllers"
	"github.com/harborview/realestate/backend/services/listing-service/internal/gateway"
	"github.com/harborview/realestate/backend/services/listing-service/internal/routes"
	"github.com/harborview/realestate/backend/services/listing-service/internal/search"
	"github.com/harborview/realestate/backend/services/listing-service/internal/services"
	"github.com/harborview/realestate/backend/services/listing-service/internal/session"
	"github.com/harborview/realestate/backend/services/listing-service/internal/views"
	"github.com/harborview/realestate/backend/shared/go-middleware"
	"github.com/harborview/realestate/backend/shared/go-repositories"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()
	defer cfg.Close()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize listing-service:", err)
	}
	defer application.Close()

	// Repositories
	propertyRepo := repositories.NewPropertyRepository(application.DB)
	profileRepo := repositories.NewUserProfileRepository(application.DB)
	savedRepo := repositories.NewSavedPropertyRepository(application.DB)
	inquiryRepo := repositories.NewInquiryRepository(application.DB)

	if cfg.LDFlag_SeedDbWithDemoProperties {
		if err := app.SeedDemoData(context.Background(), propertyRepo); err != nil {
			utils.Logger.Fatal("Failed to seed demo properties:", err)
		}
	}

	gw := gateway.New(propertyRepo, profileRepo, savedRepo, inquiryRepo)

	// Services
	propertyService := services.NewPropertyService(gw, cfg.LDFlag_FeaturedPropertiesLimit)
	savedService := services.NewSavedService(gw)
	profileService := services.NewProfileService(gw)
	inquiryService := services.NewInquiryService(gw, services.NewInquiryNotifier(cfg))
	pipeline := search.NewPipeline(gw, cfg.LDFlag_ListingsPageSize, routes.Properties)
	sessionLoader := session.NewLoader(gw)

	renderer, err := views.New(cfg.SiteName, cfg.AppUrl, cfg.DevMode)
	if err != nil {
		utils.Logger.Fatal("Failed to load page templates:", err)
	}
	staticHandler, err := renderer.StaticHandler()
	if err != nil {
		utils.Logger.Fatal("Failed to load static assets:", err)
	}

	// Controllers
	healthController := controllers.NewHealthController(application.DB)
	pagesController := controllers.NewPagesController(propertyService, savedService, inquiryService, pipeline, sessionLoader, renderer)
	apiController := controllers.NewAPIController(propertyService, savedService, profileService, inquiryService, pipeline, cfg.DevMode)

	// Router setup
	router := mux.NewRouter()
	router.Use(middleware.RecoverMiddlewareWith(cfg.DevMode, pagesController.PanicHandler), middleware.LoggingMiddleware)

	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.PathPrefix(routes.Static).Handler(staticHandler).Methods(http.MethodGet)

	// Secured API routes
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	secured.HandleFunc(routes.APISaved, apiController.SavedHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.APISavedToggle, apiController.ToggleSavedHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.APIProfile, apiController.GetProfileHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.APIProfile, apiController.PatchProfileHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.APIInquiries, apiController.ListInquiriesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.APIInquiries, apiController.CreateInquiryHandler).Methods(http.MethodPost)

	// Public routes; a valid token still personalizes them
	public := router.NewRoute().Subrouter()
	public.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	public.HandleFunc(routes.APIFeatured, apiController.FeaturedHandler).Methods(http.MethodGet)
	public.HandleFunc(routes.APIProperties, apiController.ListingsHandler).Methods(http.MethodGet)
	public.HandleFunc(routes.APIProperty, apiController.PropertyHandler).Methods(http.MethodGet)

	public.HandleFunc(routes.Home, pagesController.HomeHandler).Methods(http.MethodGet)
	public.HandleFunc(routes.Properties, pagesController.ListingsHandler).Methods(http.MethodGet)
	public.HandleFunc(routes.PropertyDetail, pagesController.DetailHandler).Methods(http.MethodGet)
	public.HandleFunc(routes.PropertySave, pagesController.ToggleSaveHandler).Methods(http.MethodPost)
	public.HandleFunc(routes.PropertyInquiries, pagesController.InquiryHandler).Methods(http.MethodPost)
	public.HandleFunc(routes.Saved, pagesController.SavedHandler).Methods(http.MethodGet)
	public.HandleFunc(routes.Theme, pagesController.ThemeHandler).Methods(http.MethodPost)

	router.NotFoundHandler = middleware.OptionalAuthMiddleware(cfg.JWTSecret)(http.HandlerFunc(pagesController.NotFoundHandler))

	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.LDFlag_CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, utils.CORSLowSecurityAllowedOriginLocalhost)
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           co.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := server.ListenAndServe(); err != nil {
		utils.Logger.Fatal("listing-service failed to start:", err)
	}
}
