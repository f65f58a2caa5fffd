package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rleclezio/digital-twin/core/config"
	domainHealth "github.com/rleclezio/digital-twin/domains/health"
	domainSession "github.com/rleclezio/digital-twin/domains/session"
	"github.com/rleclezio/digital-twin/infrastructure/sessionstore"
	"github.com/rleclezio/digital-twin/infrastructure/valkey"
	"github.com/rleclezio/digital-twin/providers"
	"github.com/rleclezio/digital-twin/ui/rest"
	"github.com/rleclezio/digital-twin/ui/rest/middleware"
	"github.com/rleclezio/digital-twin/usecase"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the twin chat API over http",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	cfg := config.Global

	knowledgeUsecase := usecase.NewKnowledgeService(cfg.Knowledge.Dir)

	provider, err := providers.NewFromConfig(cfg)
	if err != nil {
		logrus.Fatalln(err)
	}

	var sessionStore domainSession.ISessionStore
	var storePinger domainHealth.Pinger
	if cfg.Session.Backend == "valkey" {
		vkClient, err := valkey.NewClient(valkey.Config{
			Address:   cfg.Session.ValkeyAddress,
			Password:  cfg.Session.ValkeyPassword,
			DB:        cfg.Session.ValkeyDB,
			KeyPrefix: cfg.Session.ValkeyKeyPrefix,
		})
		if err != nil {
			logrus.Fatalf("failed to connect to valkey: %v", err)
		}
		defer vkClient.Close()
		sessionStore = sessionstore.NewValkeyStore(vkClient)
		storePinger = vkClient
		logrus.Info("[REST] Session store: valkey")
	} else {
		sessionStore = sessionstore.NewMemoryStore()
		logrus.Info("[REST] Session store: in-memory")
	}

	chatUsecase := usecase.NewChatService(knowledgeUsecase, sessionStore, provider, cfg.AI)
	healthUsecase := usecase.NewHealthService(knowledgeUsecase, storePinger, cfg.AI.Provider, cfg.App.Version)

	fiberConfig := fiber.Config{
		Network:               "tcp",
		AppName:               "Digital Twin API",
		DisableStartupMessage: false,
		ServerHeader:          "Hidden",
	}
	if len(cfg.App.TrustedProxies) > 0 {
		fiberConfig.EnableTrustedProxyCheck = true
		fiberConfig.TrustedProxies = cfg.App.TrustedProxies
		fiberConfig.ProxyHeader = fiber.HeaderXForwardedFor
	}

	app := fiber.New(fiberConfig)

	// RequestID for log correlation
	app.Use(requestid.New())

	// The widget is served cross-origin from the website itself
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.App.CorsAllowedOrigins, ", "),
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(middleware.Recovery())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if cfg.App.Debug {
		app.Use(logger.New())
	}

	apiGroup := app.Group(cfg.App.BasePath + "/api")

	rest.InitRestChat(apiGroup, chatUsecase)
	rest.InitRestKnowledge(apiGroup, knowledgeUsecase)
	rest.InitRestHealth(apiGroup, healthUsecase)

	// 404 handler for the API group
	apiGroup.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "API Endpoint not found",
			"path":  c.Path(),
		})
	})

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Reception of termination signal, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
