package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wikiflow-server/internal/config"
	"wikiflow-server/internal/genai"
	"wikiflow-server/internal/handler"
	"wikiflow-server/internal/middleware"
	"wikiflow-server/internal/render"
	"wikiflow-server/internal/repository"
	"wikiflow-server/internal/service"
	"wikiflow-server/internal/websocket"

	_ "github.com/go-kivik/kivik/v4/couchdb"

	"github.com/go-kivik/kivik/v4"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}
	if cfg.Server.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	couchURL := fmt.Sprintf("http://%s:%s@%s:%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
	)

	client, err := kivik.New("couch", couchURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to CouchDB")
	}

	exists, err := client.DBExists(context.Background(), cfg.Database.Name)
	if err != nil {
		log.WithError(err).Fatal("Failed to check database existence")
	}

	if !exists {
		if err := client.CreateDB(context.Background(), cfg.Database.Name); err != nil {
			log.WithError(err).Fatal("Failed to create database")
		}
		log.WithField("database", cfg.Database.Name).Info("Created database")
	}

	store := repository.NewCouchStore(client, cfg.Database.Name)
	documentRepo := repository.NewDocumentRepository(store)
	projectRepo := repository.NewProjectRepository(store)
	userRepo := repository.NewUserRepository(store)

	wsManager := websocket.NewManager(
		cfg.WebSocket.WriteWait,
		cfg.WebSocket.PongWait,
		cfg.WebSocket.PingPeriod,
		log,
	)
	go wsManager.Run()

	geminiClient := genai.NewClient(cfg.Gemini, nil)

	userService := service.NewUserService(userRepo)
	documentService := service.NewDocumentService(documentRepo, wsManager)
	projectService := service.NewProjectService(projectRepo, wsManager)
	assistantService := service.NewAssistantService(geminiClient, log)

	renderer := render.NewRenderer()

	documentHandler := handler.NewDocumentHandler(documentService, userService, renderer)
	projectHandler := handler.NewProjectHandler(projectService, userService)
	userHandler := handler.NewUserHandler(userService)
	assistantHandler := handler.NewAssistantHandler(assistantService, documentService)
	wsHandler := handler.NewWebSocketHandler(wsManager, cfg.WebSocket.ReadBufferSize, cfg.WebSocket.WriteBufferSize, log)

	r := mux.NewRouter()

	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORSMiddleware(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/documents", documentHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/documents", documentHandler.Save).Methods("POST", "OPTIONS")
	api.HandleFunc("/documents/{id}", documentHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/documents/{id}", documentHandler.Delete).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/documents/{id}/attachments", documentHandler.AddAttachment).Methods("POST", "OPTIONS")
	api.HandleFunc("/documents/{id}/rendered", documentHandler.Rendered).Methods("GET", "OPTIONS")

	api.HandleFunc("/projects", projectHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/projects", projectHandler.Save).Methods("POST", "OPTIONS")
	api.HandleFunc("/projects/{id}", projectHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/projects/{id}/tasks", projectHandler.AddTask).Methods("POST", "OPTIONS")
	api.HandleFunc("/projects/{id}/tasks/{taskId}/status", projectHandler.MoveTask).Methods("PUT", "OPTIONS")
	api.HandleFunc("/projects/{id}/tasks/{taskId}", projectHandler.DeleteTask).Methods("DELETE", "OPTIONS")

	api.HandleFunc("/users", userHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/users/current", userHandler.Current).Methods("GET", "OPTIONS")
	api.HandleFunc("/users/current", userHandler.Switch).Methods("PUT", "OPTIONS")

	api.HandleFunc("/assistant/metadata", assistantHandler.SuggestMetadata).Methods("POST", "OPTIONS")
	api.HandleFunc("/assistant/ask", assistantHandler.Ask).Methods("POST", "OPTIONS")

	r.HandleFunc("/ws", wsHandler.HandleConnection)
	r.HandleFunc("/health", healthHandler).Methods("GET")

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr": addr,
			"env":  cfg.Server.Env,
		}).Info("Starting WikiFlow server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server stopped gracefully")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"wikiflow-server"}`))
}
