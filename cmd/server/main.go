package main

import (
	"fmt"
	"net/http"

	"pathiram/config"
	"pathiram/db"
	"pathiram/db/mongo"
	"pathiram/db/postgres"
	"pathiram/handlers"
	"pathiram/repository"
	"pathiram/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var partyRepo repository.PartyRepository
	var locationRepo repository.LocationRepository
	var preparerRepo repository.PreparerRepository
	var draftRepo repository.DraftRepository
	var userRepo repository.UserRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		// Migrations only apply to the relational backend
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		partyRepo = repository.NewPostgresPartyRepo(pg.Conn)
		locationRepo = repository.NewPostgresLocationRepo(pg.Conn)
		preparerRepo = repository.NewPostgresPreparerRepo(pg.Conn)
		draftRepo = repository.NewPostgresDraftRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		partyRepo = repository.NewMongoPartyRepo(mg.Client)
		locationRepo = repository.NewMongoLocationRepo(mg.Client)
		preparerRepo = repository.NewMongoPreparerRepo(mg.Client)
		draftRepo = repository.NewMongoDraftRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)

	case db.Memory:
		// Single-office installs run without an external database
		store := repository.NewMemoryStore()
		partyRepo = store
		locationRepo = store
		preparerRepo = store
		draftRepo = store
		userRepo = store

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	partyHandler := &handlers.PartyHandler{Repo: partyRepo}
	locationHandler := &handlers.LocationHandler{Repo: locationRepo}
	preparerHandler := &handlers.PreparerHandler{Repo: preparerRepo}
	draftHandler := &handlers.DraftHandler{Repo: draftRepo}
	deedHandler := &handlers.DeedHandler{}
	pdfHandler := &handlers.PDFHandler{Repo: draftRepo, SavePath: cfg.PDFSavePath}

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, userHandler, partyHandler, locationHandler, preparerHandler, draftHandler, deedHandler, pdfHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		panic(err)
	}
}
