package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/team-modeni/modeni-backend/internal/logger"
	"github.com/team-modeni/modeni-backend/internal/middleware"
	"github.com/team-modeni/modeni-backend/internal/services"
	"github.com/team-modeni/modeni-backend/internal/types"
)

type WelfareHandler struct {
	log    *logger.Logger
	recSvc services.WelfareRecommendationService
}

func NewWelfareHandler(log *logger.Logger, recSvc services.WelfareRecommendationService) *WelfareHandler {
	return &WelfareHandler{
		log:    log.With("handler", "WelfareHandler"),
		recSvc: recSvc,
	}
}

type analyzeEmotionRequest struct {
	Text string `json:"text"`
}

// POST /welfare/analyze-emotion
// Fires the free-text pipeline and acknowledges immediately; results
// become readable through the recommendations endpoints once written.
func (h *WelfareHandler) AnalyzeEmotion(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "no_user", errors.New("no user in request context"))
		return
	}

	var req analyzeEmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("text is required"))
		return
	}

	h.recSvc.ProcessEmotionAndRecommend(user, req.Text)

	RespondOK(c, gin.H{
		"message": "감정 분석 기반 추천이 접수되었습니다.",
	})
}

type recommendByButtonsRequest struct {
	Emotion        string `json:"emotion"`
	Activity       string `json:"activity"`
	GenerateReason bool   `json:"generate_reason"`
}

// POST /welfare/recommend-by-buttons
func (h *WelfareHandler) RecommendByButtons(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "no_user", errors.New("no user in request context"))
		return
	}

	var req recommendByButtonsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if strings.TrimSpace(req.Emotion) == "" {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("emotion is required"))
		return
	}

	recommendations, err := h.recSvc.RecommendByButtons(
		c.Request.Context(),
		user,
		types.EmotionKeyword(req.Emotion),
		types.WishActivity(req.Activity),
		req.GenerateReason,
	)
	if err != nil {
		h.log.Error("Button-based recommendation failed", "user_id", user.ID, "error", err)
		RespondError(c, http.StatusInternalServerError, "recommendation_failed", err)
		return
	}

	RespondOK(c, gin.H{
		"recommendations": recommendations,
		"totalCount":      len(recommendations),
	})
}

// GET /welfare/recommendations
func (h *WelfareHandler) GetRecommendations(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "no_user", errors.New("no user in request context"))
		return
	}

	recommendations, err := h.recSvc.GetUserRecommendations(c.Request.Context(), user.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}

	RespondOK(c, gin.H{
		"recommendations": recommendations,
		"totalCount":      len(recommendations),
	})
}

// GET /welfare/recommendations/unread
func (h *WelfareHandler) GetUnreadRecommendations(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "no_user", errors.New("no user in request context"))
		return
	}

	recommendations, err := h.recSvc.GetUnreadRecommendations(c.Request.Context(), user.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}

	RespondOK(c, gin.H{
		"unreadRecommendations": recommendations,
		"unreadCount":           len(recommendations),
	})
}

// GET /welfare/recommendations/:id
func (h *WelfareHandler) GetRecommendationDetail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "no_user", errors.New("no user in request context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("invalid recommendation id"))
		return
	}

	recommendation, err := h.recSvc.GetRecommendationDetail(c.Request.Context(), id, user.ID)
	if err != nil {
		RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}

	RespondOK(c, recommendation)
}
