package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/team-modeni/modeni-backend/internal/middleware"
  "github.com/team-modeni/modeni-backend/internal/services"
)

type UserHandler struct {
  userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

// GET /users/me
func (uh *UserHandler) GetMe(c *gin.Context) {
  user, ok := middleware.CurrentUser(c)
  if !ok {
    RespondError(c, http.StatusUnauthorized, "no_user", errors.New("no user in request context"))
    return
  }
  c.JSON(http.StatusOK, gin.H{"me": user})
}

// GET /users/family
func (uh *UserHandler) GetFamilyMembers(c *gin.Context) {
  user, ok := middleware.CurrentUser(c)
  if !ok {
    RespondError(c, http.StatusUnauthorized, "no_user", errors.New("no user in request context"))
    return
  }
  if user.FamilyID == nil {
    c.JSON(http.StatusOK, gin.H{"members": []any{}})
    return
  }
  members, err := uh.userService.GetFamilyMembers(c.Request.Context(), *user.FamilyID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"members": members})
}
