package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantbroker/leads-api/internal/infra/database"
	"github.com/quantbroker/leads-api/internal/infra/http/handlers"
	"github.com/quantbroker/leads-api/internal/infra/http/middleware"
	"github.com/quantbroker/leads-api/internal/infra/integration/whatsapp"
	"github.com/quantbroker/leads-api/internal/infra/mail"
	"github.com/quantbroker/leads-api/internal/infra/queue"
	"github.com/quantbroker/leads-api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	userRepo := database.NewUserRepository(db)
	waitlistRepo := database.NewWaitlistRepository(db)
	consultationRepo := database.NewConsultationRepository(db)
	statusRepo := database.NewLeadStatusRepository(db)
	planRepo := database.NewPlanRepository(db)

	// 2. Gateways e Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
	)
	waClient := whatsapp.NewClient()
	opsNotifier := mail.NewWhatsAppSender(waClient)

	// 3. Worker (consome capturas e dispara email/WhatsApp)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, opsNotifier)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	aggregateUC := usecase.NewAggregateLeadsUseCase(userRepo, waitlistRepo, consultationRepo, statusRepo)
	statusUC := usecase.NewLeadStatusUseCase(statusRepo)
	waitlistUC := usecase.NewCaptureWaitlistUseCase(waitlistRepo, producer)
	consultationUC := usecase.NewCaptureConsultationUseCase(consultationRepo, producer)

	// 5. Handlers
	waitlistHandler := handlers.NewWaitlistHandler(waitlistUC)
	consultationHandler := handlers.NewConsultationHandler(consultationUC)
	leadAdminHandler := handlers.NewLeadAdminHandler(aggregateUC, statusUC)
	recommendationHandler := handlers.NewRecommendationHandler()
	planHandler := handlers.NewPlanHandler(planRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/waitlist", waitlistHandler.Handle)
	r.Post("/consultations", consultationHandler.Handle)
	r.Post("/portfolio/recommendation", recommendationHandler.Handle)
	r.Get("/plans", planHandler.HandleList)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/admin", func(r chi.Router) {
		r.Get("/leads", leadAdminHandler.HandleList)
		r.Put("/leads/{contactKey}/status", leadAdminHandler.HandleUpdateStatus)
		r.Post("/leads/{contactKey}/contact", leadAdminHandler.HandleContact)
	})

	port := ":8080"
	log.Printf("🔥 Server QuantBroker rodando na porta %s", port)
	http.ListenAndServe(port, r)
}
