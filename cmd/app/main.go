package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/hyerinam29-hash/my-face-landing/external/gemini"
	"github.com/hyerinam29-hash/my-face-landing/external/notion"
	"github.com/hyerinam29-hash/my-face-landing/external/supabase"
	"github.com/hyerinam29-hash/my-face-landing/external/tavily"
	"github.com/hyerinam29-hash/my-face-landing/external/toss"

	"github.com/hyerinam29-hash/my-face-landing/internal/config"
	"github.com/hyerinam29-hash/my-face-landing/internal/repository"
	"github.com/hyerinam29-hash/my-face-landing/internal/services"
)

func main() {
	// ======================
	// CONFIG
	// ======================
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// EXTERNALS
	// ======================
	store, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}

	gateway, err := toss.NewClient(cfg.TossSecretKey)
	if err != nil {
		log.Fatal(err)
	}

	// CRM, chat model and web search are optional: the commerce flow
	// runs without them.
	var crm *notion.Client
	if cfg.NotionAPIKey != "" && cfg.NotionDatabaseID != "" {
		crm, err = notion.NewClient(cfg.NotionAPIKey, cfg.NotionDatabaseID)
		if err != nil {
			log.Fatal(err)
		}
	}

	var chatModel services.ChatModel
	if cfg.GeminiAPIKey != "" {
		gm, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal(err)
		}
		chatModel = gm
	}

	var searcher services.WebSearcher
	if cfg.TavilyAPIKey != "" {
		tv, err := tavily.NewClient(cfg.TavilyAPIKey)
		if err != nil {
			log.Fatal(err)
		}
		searcher = tv
	}

	// ======================
	// REPOSITORIES
	// ======================
	cartRepo := repository.NewCartRepository(store)
	pendingRepo := repository.NewPendingOrderRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	leadRepo := repository.NewLeadRepository(store)

	// ======================
	// SERVICES
	// ======================
	cartSvc := services.NewCartService(cartRepo)
	checkoutSvc := services.NewCheckoutService(pendingRepo, orderRepo, cartRepo, gateway)
	orderSvc := services.NewOrderService(orderRepo)
	productSvc := services.NewProductService()

	var leadSink services.LeadSink
	var chatLogger services.ChatLogger
	if crm != nil {
		leadSink = crm
		chatLogger = crm
	}
	leadSvc := services.NewLeadService(leadRepo, leadSink)

	var chatSvc *services.ChatService
	if chatModel != nil {
		chatSvc = services.NewChatService(chatModel, searcher, chatLogger)
	}

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/face-calendar")

	secret := []byte(cfg.JWTSecret)

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerLeadRoutes(api, leadSvc)
	registerProductRoutes(api, productSvc)
	registerCartRoutes(api, cartSvc, secret)
	registerPaymentRoutes(api, checkoutSvc, secret)
	registerOrderRoutes(api, orderSvc, secret)
	if chatSvc != nil {
		registerChatRoutes(api, chatSvc, searcher)
	}

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
