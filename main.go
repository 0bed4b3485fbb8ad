package main

import (
	"context"
	"net/http"

	"pickem-pool-go/config"
	"pickem-pool-go/database"
	"pickem-pool-go/handlers"
	"pickem-pool-go/logging"
	"pickem-pool-go/middleware"
	"pickem-pool-go/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Configure(cfg.ToLoggingConfig())
	cfg.LogConfiguration()

	db, err := database.NewMongoConnection(cfg.ToDatabaseConfig())
	if err != nil {
		logging.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	// Repositories
	spreadRepo := database.NewMongoSpreadRepository(db)
	resultsRepo := database.NewMongoResultsRepository(db)
	picksRepo := database.NewMongoPicksRepository(db)
	standingsRepo := database.NewMongoStandingsRepository(db)
	playerRepo := database.NewMongoPlayerRepository(db)

	// Services
	matcher := services.NewMatchService()
	calculator := services.NewResultCalculationService()
	standingsService := services.NewStandingsService(standingsRepo, resultsRepo)
	poolService := services.NewPoolService(spreadRepo, resultsRepo, picksRepo, matcher, calculator, standingsService)
	ingestService := services.NewIngestService()
	authService := services.NewAuthService(playerRepo, cfg.Auth.JWTSecret)

	if cfg.App.SeedRoster {
		seeder := services.NewRosterSeeder(playerRepo)
		if err := seeder.SeedPlayers(); err != nil {
			logging.Errorf("Roster seeding failed: %v", err)
		}
	}

	if cfg.App.LegacyImportDir != "" {
		importer := services.NewLegacyImportService(ingestService, poolService, picksRepo)
		if err := importer.ImportSeason(context.Background(), cfg.App.LegacyImportDir, cfg.App.CurrentSeason); err != nil {
			logging.Errorf("Legacy import failed: %v", err)
		}
	}

	if cfg.Backup.Enabled {
		backupService := services.NewBackupService(db, cfg.ToBackupConfig())
		backupService.StartScheduler(context.Background(), cfg.Backup.BackupTime, cfg.Backup.RetentionDays)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(poolService, ingestService, standingsService, cfg.App.CurrentSeason)
	picksHandler := handlers.NewPicksHandler(poolService, cfg.App.CurrentSeason)
	resultsHandler := handlers.NewResultsHandler(poolService, standingsService, cfg.App.CurrentSeason)
	rosterHandler := handlers.NewRosterHandler(playerRepo)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Routes
	r := mux.NewRouter()
	r.Use(middleware.SecurityMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", authHandler.Login).Methods("POST")

	api.Handle("/picks/{week}", authMiddleware.RequirePlayer(http.HandlerFunc(picksHandler.SubmitPicks))).Methods("POST")
	api.Handle("/picks/{week}", authMiddleware.RequirePlayer(http.HandlerFunc(picksHandler.GetPicks))).Methods("GET")

	api.HandleFunc("/weeks", resultsHandler.GetWeeks).Methods("GET")
	api.HandleFunc("/players", rosterHandler.GetPlayers).Methods("GET")
	api.HandleFunc("/games/{week}", resultsHandler.GetGames).Methods("GET")
	api.HandleFunc("/results/{week}", resultsHandler.GetResults).Methods("GET")
	api.HandleFunc("/winners/{week}", resultsHandler.GetWinners).Methods("GET")
	api.HandleFunc("/report/{week}", resultsHandler.GetReport).Methods("GET")
	api.HandleFunc("/standings", resultsHandler.GetStandings).Methods("GET")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware.RequireAdmin)
	admin.HandleFunc("/spreads/{week}", adminHandler.UploadSpreads).Methods("POST")
	admin.HandleFunc("/scores/{week}", adminHandler.UploadScores).Methods("POST")
	admin.HandleFunc("/recalculate/{week}", adminHandler.Recalculate).Methods("POST")
	admin.HandleFunc("/standings/rebuild", adminHandler.RebuildStandings).Methods("POST")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler(r)

	addr := cfg.GetServerAddress()
	logging.Infof("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		logging.Fatalf("Server failed: %v", err)
	}
}
