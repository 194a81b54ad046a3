package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/imadityagolu/mct-5-amazone/cache"
	"github.com/imadityagolu/mct-5-amazone/catalog"
	"github.com/imadityagolu/mct-5-amazone/config"
	"github.com/imadityagolu/mct-5-amazone/controllers"
	"github.com/imadityagolu/mct-5-amazone/middleware"
	"github.com/imadityagolu/mct-5-amazone/repository"
	"github.com/imadityagolu/mct-5-amazone/routes"
	"github.com/imadityagolu/mct-5-amazone/services"
	"github.com/imadityagolu/mct-5-amazone/utils"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "amazone").Logger()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, proceeding with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if level, err := zerolog.ParseLevel(cfg.App.LogLevel); err == nil {
		log = log.Level(level)
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWT.Secret)

	// Load the bundled product catalog
	cat, err := catalog.New()
	if err != nil {
		log.Fatal().Err(err).Msg("loading catalog")
	}

	// Connect to MongoDB
	ctx := context.Background()
	client, err := repository.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Error().Err(err).Msg("disconnecting from mongodb")
		}
	}()
	db := client.Database(cfg.Mongo.Database)

	// Cart snapshot cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	cartCache := cache.NewRedisCache(redisClient)

	// External collaborators
	gateway := utils.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	emailService := utils.NewEmailService(cfg.Email.SendgridAPIKey, cfg.Email.SenderName, cfg.Email.Sender)

	// Services
	cartService := services.NewCartService(repository.NewMongoCartRepository(db), cartCache, log)
	wishlistService := services.NewWishlistService(repository.NewMongoWishlistRepository(db), log)
	profileService := services.NewProfileService(repository.NewMongoProfileRepository(db))
	authService := services.NewAuthService(repository.NewMongoUserRepository(db))
	orderService := services.NewOrderService(repository.NewMongoOrderRepository(db), cartService, gateway, emailService, log)

	// Controllers
	userController := controllers.NewUserController(authService, profileService, log)
	productController := controllers.NewProductController(cat, log)
	cartController := controllers.NewCartController(cartService, cat, log)
	wishlistController := controllers.NewWishlistController(wishlistService, cat, log)
	orderController := controllers.NewOrderController(orderService, log)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(log))
	routes.RegisterRoutes(router, userController, productController, cartController, wishlistController, orderController)

	log.Info().Str("port", cfg.App.Port).Msg("server is running")
	if err := http.ListenAndServe(":"+cfg.App.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
