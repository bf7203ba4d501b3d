package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/team-modeni/modeni-backend/internal/handlers"
  "github.com/team-modeni/modeni-backend/internal/middleware"
)

type RouterConfig struct {
  IdentityMiddleware *middleware.IdentityMiddleware
  UserHandler        *handlers.UserHandler
  DiaryHandler       *handlers.DiaryHandler
  WelfareHandler     *handlers.WelfareHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-User-ID"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.IdentityMiddleware.RequireUser())
  // User
  protected.GET("/users/me", cfg.UserHandler.GetMe)
  protected.GET("/users/family", cfg.UserHandler.GetFamilyMembers)
  // Diary
  protected.POST("/diaries", cfg.DiaryHandler.CreateDiary)
  protected.GET("/diaries", cfg.DiaryHandler.GetDiaries)
  // Welfare
  protected.POST("/welfare/analyze-emotion", cfg.WelfareHandler.AnalyzeEmotion)
  protected.POST("/welfare/recommend-by-buttons", cfg.WelfareHandler.RecommendByButtons)
  protected.GET("/welfare/recommendations", cfg.WelfareHandler.GetRecommendations)
  protected.GET("/welfare/recommendations/unread", cfg.WelfareHandler.GetUnreadRecommendations)
  protected.GET("/welfare/recommendations/:id", cfg.WelfareHandler.GetRecommendationDetail)

  return router
}
