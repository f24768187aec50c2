package bootstrap

import (
	"context"
	"log"
	"time"

	"company-pulse-be/internal/cache"
	"company-pulse-be/internal/config"
	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/controller"
	"company-pulse-be/internal/pkg/logger"
	"company-pulse-be/internal/repository/implementation"
	"company-pulse-be/internal/service"
	pktNats "company-pulse-be/pkg/nats"
	"company-pulse-be/pkg/normalizer"
	"company-pulse-be/pkg/pulse"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PulseController      controller.IPulseController
	ConceptController    controller.IConceptController
	SignalTypeController controller.ISignalTypeController
	ActivityController   controller.IActivityController

	// Background Services (Exposed for main.go to run)
	ConsumerService      service.IConsumerService
	InvalidationListener *cache.InvalidationListener

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
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
		rdb = nil
	}

	// 4. Repositories
	conceptRepo := implementation.NewConceptRepository(db)
	signalTypeRepo := implementation.NewSignalTypeRepository(db)
	activityRepo := implementation.NewActivityRepository(db)
	pulseRepo := implementation.NewPulsePointRepository(db)

	// 5. Caches (one instance per kind, process lifetime)
	tagCache := cache.NewConceptCache(constant.ConceptKindTag, conceptRepo, sysLogger)
	themeCache := cache.NewConceptCache(constant.ConceptKindTheme, conceptRepo, sysLogger)
	signalTypeCache := cache.NewSignalTypeCache(
		signalTypeRepo,
		sysLogger,
		time.Duration(cfg.Pulse.SignalTypeTTLMinutes)*time.Minute,
	)
	invalidation := cache.NewInvalidationListener(rdb, tagCache, themeCache, signalTypeCache, sysLogger)

	// 6. Domain
	norm := normalizer.New(tagCache, themeCache, cfg.Pulse.SimilarityThreshold)
	assembler := pulse.NewAssembler(pulse.NewDefaultClassifier())

	// 7. Services
	conceptService := service.NewConceptService(
		conceptRepo,
		norm,
		tagCache,
		themeCache,
		invalidation,
		natsPub,
		cfg.Pulse.SimilarityThreshold,
		sysLogger,
	)
	pulseService := service.NewPulseService(
		activityRepo,
		pulseRepo,
		norm,
		assembler,
		pubSub,
		cfg.Pulse.CandidateTopicName,
		natsPub,
		sysLogger,
	)
	signalTypeService := service.NewSignalTypeService(signalTypeCache, invalidation)
	activityService := service.NewActivityService(activityRepo, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Pulse.CandidateTopicName, conceptService, sysLogger)

	return &Container{
		PulseController:      controller.NewPulseController(pulseService),
		ConceptController:    controller.NewConceptController(conceptService),
		SignalTypeController: controller.NewSignalTypeController(signalTypeService),
		ActivityController:   controller.NewActivityController(activityService),
		ConsumerService:      consumerService,
		InvalidationListener: invalidation,
		Logger:               sysLogger,
	}
}
