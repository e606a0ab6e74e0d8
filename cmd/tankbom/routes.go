package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	reloadcatalog "grptank/http-server/admin/reload"
	savepart "grptank/http-server/admin/save"
	getcatalog "grptank/http-server/catalog/get"
	generate_excel "grptank/http-server/generate-report/generate-excel"
	"grptank/http-server/tank/calculate"
	"grptank/http-server/tank/capacity"
	"grptank/http-server/tank/options"
	"grptank/internal/config"
	"grptank/internal/middleware/auth"
	"grptank/internal/service/bom"
	"grptank/internal/service/catalog"
	generate_excel2 "grptank/internal/service/generate-excel"
	"grptank/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, parts *catalog.Catalog, engine *bom.Engine, quotation *generate_excel2.QuotationService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Configurator option sets for the frontend.
	router.Get("/api/tank/options", options.GetOptions(log))

	// Core calculation.
	router.Post("/api/tank/calculate", calculate.CalculateBOM(log, engine))
	router.Post("/api/tank/capacity", capacity.CalculateCapacity(log))

	// Price/weight catalog lookups.
	router.Get("/api/tank/prices", getcatalog.ListParts(log, parts))
	router.Get("/api/tank/prices/{partNo}", getcatalog.GetPart(log, parts))

	// Quotation export.
	router.Post("/api/report/excel", generate_excel.GenerateReportExcel(log, quotation))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/catalog/reload", reloadcatalog.ReloadCatalog(log, parts))
	adminRouter.Post("/catalog/part", savepart.SavePartAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return router
}
