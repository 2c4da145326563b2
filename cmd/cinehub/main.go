package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisClient "github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cinehub/internal/api/handlers"
	"cinehub/internal/api/middleware"
	"cinehub/internal/config"
	"cinehub/internal/infrastructure/mysql"
	"cinehub/internal/infrastructure/redis"
	"cinehub/internal/infrastructure/websocket"
	"cinehub/internal/services"
	"cinehub/internal/storage"
	"cinehub/pkg/logger"
)

func main() {
	log := logger.New()
	log.Info("Starting cinehub service")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize Redis
	rdb := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	log.Info("Connected to Redis", "address", cfg.Redis.Address)

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		log.Error("Failed to connect to MySQL", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.Error("Failed to close MySQL connection", "error", err)
		}
	}(db)

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		log.Error("Failed to ping MySQL", "error", err)
		os.Exit(1)
	}
	log.Info("Connected to MySQL")

	if err := mysql.InitSchema(ctx, db); err != nil {
		log.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := mysql.NewMySQLUserRepository(db)
	movieRepo := mysql.NewMySQLMovieRepository(db)
	reviewRepo := mysql.NewMySQLReviewRepository(db)
	likeRepo := mysql.NewMySQLReviewLikeRepository(db)
	reactionRepo := mysql.NewMySQLMovieReactionRepository(db)
	followRepo := mysql.NewMySQLFollowRepository(db)

	// Initialize Redis based components
	likeCountCache := redis.NewRedisLikeCountCache(rdb, 5*time.Minute)
	trendingCache := redis.NewRedisTrendingCache(rdb)

	// Initialize media storage
	media := storage.NewLocalStorage(cfg.Media.Dir)

	// Initialize notification core: one registry instance shared by the
	// websocket endpoint and the event triggers.
	registry := websocket.NewRegistry(log)
	notifier := websocket.NewNotifier(registry, log)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.Auth.Secret, cfg.Auth.TokenTTL, log)
	triggers := services.NewNotificationTriggers(userRepo, reviewRepo, notifier, log)
	userService := services.NewUserService(userRepo, authService, media, log)
	movieService := services.NewMovieService(movieRepo, trendingCache, media, log)
	reviewService := services.NewReviewService(reviewRepo, movieRepo, log)
	likeService := services.NewLikeService(likeRepo, reactionRepo, reviewRepo, movieRepo, likeCountCache, triggers, log)
	followService := services.NewFollowService(followRepo, userRepo, triggers, log)

	trendingJob := services.NewTrendingJob(movieRepo, trendingCache, cfg.Trending.Interval, cfg.Trending.Limit, log)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.LoggerWithConfig(echoMiddleware.LoggerConfig{
		Format: `{"time":"${time_rfc3339}","id":"${id}","remote_ip":"${remote_ip}","host":"${host}","method":"${method}","uri":"${uri}","user_agent":"${user_agent}","status":${status},"error":"${error}","latency":${latency},"latency_human":"${latency_human}","bytes_in":${bytes_in},"bytes_out":${bytes_out}}` + "\n",
	}))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, authService, log)
	movieHandler := handlers.NewMovieHandler(movieService, log)
	reviewHandler := handlers.NewReviewHandler(reviewService, log)
	likeHandler := handlers.NewLikeHandler(likeService, log)
	followHandler := handlers.NewFollowHandler(followService, log)
	wsHandler := websocket.NewHandler(registry, authService, log)

	authRequired := middleware.JWTAuth(authService)

	// User routes
	e.POST("/users", userHandler.CreateUser)
	e.POST("/users/login", userHandler.Login)
	e.GET("/users", userHandler.ListUsers)
	e.GET("/users/search", userHandler.SearchUsers)
	e.GET("/users/me", userHandler.Me, authRequired)
	e.PATCH("/users/me", userHandler.UpdateMe, authRequired)
	e.DELETE("/users/me", userHandler.DeleteMe, authRequired)
	e.POST("/users/me/profile-image", userHandler.UploadProfileImage, authRequired)
	e.GET("/users/me/followers", followHandler.Followers, authRequired)
	e.GET("/users/me/following", followHandler.Following, authRequired)
	e.POST("/users/:user_id/follow", followHandler.Follow, authRequired)
	e.POST("/users/:user_id/unfollow", followHandler.Unfollow, authRequired)

	// Movie routes
	e.POST("/movies", movieHandler.CreateMovie, authRequired)
	e.GET("/movies", movieHandler.ListMovies)
	e.GET("/movies/search", movieHandler.SearchMovies)
	e.GET("/movies/trending", movieHandler.Trending)
	e.GET("/movies/:movie_id", movieHandler.GetMovie)
	e.PATCH("/movies/:movie_id", movieHandler.UpdateMovie, authRequired)
	e.DELETE("/movies/:movie_id", movieHandler.DeleteMovie, authRequired)
	e.POST("/movies/:movie_id/poster", movieHandler.UploadPoster, authRequired)
	e.GET("/movies/:movie_id/reactions", likeHandler.MovieReactionCounts)
	e.POST("/movies/:movie_id/reviews", reviewHandler.CreateReview, authRequired)
	e.GET("/movies/:movie_id/reviews", reviewHandler.ListMovieReviews)

	// Review routes
	e.GET("/reviews/:review_id", reviewHandler.GetReview)
	e.PATCH("/reviews/:review_id", reviewHandler.UpdateReview, authRequired)
	e.DELETE("/reviews/:review_id", reviewHandler.DeleteReview, authRequired)
	e.GET("/reviews/:review_id/likes", likeHandler.ReviewLikeCount)

	// Like routes
	e.POST("/likes/reviews/:review_id/like", likeHandler.LikeReview, authRequired)
	e.POST("/likes/reviews/:review_id/unlike", likeHandler.UnlikeReview, authRequired)
	e.POST("/likes/movies/:movie_id/like", likeHandler.LikeMovie, authRequired)
	e.POST("/likes/movies/:movie_id/dislike", likeHandler.DislikeMovie, authRequired)
	e.DELETE("/likes/movies/:movie_id", likeHandler.RemoveMovieReaction, authRequired)

	// Notification websocket
	e.GET("/notifications", wsHandler.HandleConnection)

	// Uploaded media
	e.Static("/media", cfg.Media.Dir)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   "cinehub",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Start background services
	go func() {
		if err := trendingJob.Start(context.Background()); err != nil {
			log.Error("Failed to start trending job", "error", err)
		}
	}()

	// Start server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting HTTP server", "address", serverAddr)

	go func() {
		if err := e.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down cinehub service...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := trendingJob.Stop(); err != nil {
		log.Error("Failed to stop trending job", "error", err)
	}

	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("cinehub service stopped")
}
