package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/team-modeni/modeni-backend/internal/logger"
	"github.com/team-modeni/modeni-backend/internal/middleware"
	"github.com/team-modeni/modeni-backend/internal/services"
)

type DiaryHandler struct {
	log      *logger.Logger
	diarySvc services.DiaryService
}

func NewDiaryHandler(log *logger.Logger, diarySvc services.DiaryService) *DiaryHandler {
	return &DiaryHandler{
		log:      log.With("handler", "DiaryHandler"),
		diarySvc: diarySvc,
	}
}

type createDiaryRequest struct {
	Content        string  `json:"content"`
	EmotionKeyword *string `json:"emotion_keyword"`
	WishActivity   *string `json:"wish_activity"`
}

// POST /diaries
func (h *DiaryHandler) CreateDiary(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "no_user", errors.New("no user in request context"))
		return
	}

	var req createDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("content is required"))
		return
	}

	diary, err := h.diarySvc.CreateEntry(c.Request.Context(), user, req.Content, req.EmotionKeyword, req.WishActivity)
	if err != nil {
		h.log.Error("Diary creation failed", "user_id", user.ID, "error", err)
		RespondError(c, http.StatusInternalServerError, "diary_create_failed", err)
		return
	}

	RespondOK(c, diary)
}

// GET /diaries
func (h *DiaryHandler) GetDiaries(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "no_user", errors.New("no user in request context"))
		return
	}

	diaries, err := h.diarySvc.GetEntries(c.Request.Context(), user.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}

	RespondOK(c, gin.H{
		"diaries":    diaries,
		"totalCount": len(diaries),
	})
}
