package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/elysianestates/crm-api/internal/infra/database"
	"github.com/elysianestates/crm-api/internal/infra/http/handlers"
	"github.com/elysianestates/crm-api/internal/infra/http/middleware"
	"github.com/elysianestates/crm-api/internal/infra/integration/claude"
	"github.com/elysianestates/crm-api/internal/infra/mail"
	"github.com/elysianestates/crm-api/internal/infra/memory"
	"github.com/elysianestates/crm-api/internal/infra/queue"
	"github.com/elysianestates/crm-api/internal/session"
	"github.com/elysianestates/crm-api/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Storage: Postgres when DATABASE_URL is set, seeded memory otherwise.
	var (
		db           *sql.DB
		leadRepo     usecase.LeadRepositoryInterface
		propertyRepo usecase.PropertyRepositoryInterface
		activityRepo usecase.ActivityRepositoryInterface
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatalf("❌ database connection failed: %v", err)
		}
		defer db.Close()

		leadRepo = database.NewLeadRepository(db)
		propertyRepo = database.NewPropertyRepository(db)
		activityRepo = database.NewActivityRepository(db)
		log.Println("🗄️ storage: postgres")
	} else {
		leadRepo = memory.NewLeadRepository(memory.SeedLeads())
		propertyRepo = memory.NewPropertyRepository(memory.SeedProperties())
		activityRepo = memory.NewActivityRepository()
		log.Println("🗄️ storage: in-memory seed")
	}

	// 2. Outreach delivery: queue + SMTP worker, optional.
	var (
		rabbitConn *amqp.Connection
		producer   usecase.QueueProducerInterface
	)

	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(amqpURL)
		if err != nil {
			log.Fatalf("❌ rabbitmq setup failed: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if mailPort == 0 {
			mailPort = 587
		}
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender, activityRepo)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("📭 AMQP_URL not set, outreach delivery disabled")
	}

	// 3. AI gateway
	gateway := claude.NewClient(os.Getenv("ANTHROPIC_API_KEY"), os.Getenv("AI_MODEL"))

	// 4. Console session (single operator desk)
	sess := session.New()

	// 5. UseCases
	statusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo)
	createUC := usecase.NewCreateLeadUseCase(leadRepo)
	insightUC := usecase.NewLeadInsightUseCase(leadRepo, propertyRepo, gateway, sess)
	outreachUC := usecase.NewOutreachDraftUseCase(leadRepo, propertyRepo, gateway, sess)
	sendUC := usecase.NewSendOutreachUseCase(leadRepo, producer)

	// 6. Handlers
	sessionHandler := handlers.NewSessionHandler(sess)
	leadHandler := handlers.NewLeadHandler(leadRepo, activityRepo, statusUC, createUC, sess)
	propertyHandler := handlers.NewPropertyHandler(propertyRepo)
	dashboardHandler := handlers.NewDashboardHandler(leadRepo, sess)
	aiHandler := handlers.NewAIHandler(insightUC, outreachUC, sendUC, sess)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/session", sessionHandler.HandleGet)
	r.Post("/session/role", sessionHandler.HandleSwitchRole)
	r.Post("/session/view", sessionHandler.HandleSetView)

	r.Get("/leads", leadHandler.HandleList)
	r.Post("/leads", leadHandler.HandleCreate)
	r.Get("/leads/{id}", leadHandler.HandleGet)
	r.Post("/leads/{id}/select", leadHandler.HandleSelect)
	r.Post("/leads/{id}/advance", leadHandler.HandleAdvance)
	r.Post("/leads/{id}/status", leadHandler.HandleSetStatus)
	r.Get("/leads/{id}/activities", leadHandler.HandleActivities)

	r.Post("/leads/{id}/insight", aiHandler.HandleInsight)
	r.Post("/leads/{id}/outreach", aiHandler.HandleOutreachDraft)
	r.Post("/leads/{id}/outreach/send", aiHandler.HandleOutreachSend)

	r.Get("/properties", propertyHandler.HandleList)
	r.Get("/properties/{id}", propertyHandler.HandleGet)

	r.Get("/dashboard", dashboardHandler.Handle)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Elysian CRM API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
