package bootstrap

import (
	"context"
	"log"
	"time"

	"cpd-events-be/internal/config"
	"cpd-events-be/internal/controller"
	"cpd-events-be/internal/handler"
	"cpd-events-be/internal/pkg/logger"
	"cpd-events-be/internal/pkg/mailer"
	"cpd-events-be/internal/repository/implementation"
	"cpd-events-be/internal/repository/memory"
	"cpd-events-be/internal/repository/unitofwork"
	"cpd-events-be/internal/service"
	"cpd-events-be/internal/websocket"

	pktNats "cpd-events-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	EventController       controller.IEventController
	TemplateController    controller.ITemplateController
	EditorController      controller.IEditorController
	CertificateController controller.ICertificateController

	// Background Services (Exposed for main.go to run)
	IssuerService service.IIssuerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// In-memory editor session storage
	sessionRepo := memory.NewSessionRepository(
		time.Duration(cfg.Editor.SessionTTLMinutes)*time.Minute,
		time.Duration(cfg.Editor.SessionSweepMinute)*time.Minute,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.IssueTopic, pubSub)
	issuerService := service.NewIssuerService(
		pubSub,
		cfg.App.IssueTopic,
		uowFactory,
		emailService,
		natsPub,
		cfg.Storage.CertificateDir,
	)

	eventService := service.NewEventService(uowFactory)
	templateService := service.NewTemplateService(uowFactory)
	editorService := service.NewEditorService(
		uowFactory,
		sessionRepo,
		rdb,
		natsPub,
		time.Duration(cfg.Editor.PreviewTTLMinutes)*time.Minute,
		sysLogger,
	)
	certificateService := service.NewCertificateService(
		uowFactory,
		publisherService,
		natsPub,
		sysLogger,
	)

	// 3.5 Notification Domain
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler:   notifHandler,
		WebSocketHub:          wsHub,
		EventController:       controller.NewEventController(eventService),
		TemplateController:    controller.NewTemplateController(templateService),
		EditorController:      controller.NewEditorController(editorService),
		CertificateController: controller.NewCertificateController(certificateService),

		IssuerService: issuerService,
	}
}
