package main

import (
  "context"
  "fmt"
  "os"

  "github.com/team-modeni/modeni-backend/internal/db"
  "github.com/team-modeni/modeni-backend/internal/handlers"
  "github.com/team-modeni/modeni-backend/internal/jobs"
  "github.com/team-modeni/modeni-backend/internal/logger"
  "github.com/team-modeni/modeni-backend/internal/middleware"
  "github.com/team-modeni/modeni-backend/internal/repos"
  "github.com/team-modeni/modeni-backend/internal/server"
  "github.com/team-modeni/modeni-backend/internal/services"
  "github.com/team-modeni/modeni-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  workerCount := utils.GetEnvAsInt("RECOMMEND_WORKERS", 4, log)
  queueSize := utils.GetEnvAsInt("RECOMMEND_QUEUE_SIZE", 64, log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  diaryRepo := repos.NewDiaryRepo(thePG, log)
  programRepo := repos.NewWelfareProgramRepo(thePG, log)
  recRepo := repos.NewWelfareRecommendationRepo(thePG, log)

  // Job pool
  log.Info("Setting up job pool from main...")
  pool := jobs.NewPool(log, workerCount, queueSize)
  pool.Start(context.Background())

  // Services
  log.Info("Setting up Services from main...")
  openaiClient, err := services.NewOpenAIClient(log)
  if err != nil {
    log.Error("Could not init OpenAIClient", "error", err)
    os.Exit(1)
  }
  cache, err := services.NewRedisRecommendationCache(log)
  if err != nil {
    log.Warn("Could not init recommendation cache, reads will hit the database", "error", err)
    cache = nil
  }
  emotionService := services.NewEmotionAnalysisService(log, openaiClient)
  recommendationService := services.NewWelfareRecommendationService(
    thePG,
    log,
    programRepo,
    recRepo,
    emotionService,
    openaiClient,
    pool,
    cache,
  )
  userService := services.NewUserService(thePG, log, userRepo)
  diaryService := services.NewDiaryService(thePG, log, diaryRepo, recommendationService)

  // Handlers
  log.Info("Setting up handlers from main...")
  userHandler := handlers.NewUserHandler(userService)
  diaryHandler := handlers.NewDiaryHandler(log, diaryService)
  welfareHandler := handlers.NewWelfareHandler(log, recommendationService)

  // Middleware
  log.Info("Setting up middleware from main...")
  identityMiddleware := middleware.NewIdentityMiddleware(log, userService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    IdentityMiddleware: identityMiddleware,
    UserHandler:        userHandler,
    DiaryHandler:       diaryHandler,
    WelfareHandler:     welfareHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
