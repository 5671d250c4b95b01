package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trainingcentre/internal/application/usecase"
	"trainingcentre/internal/domain"
	"trainingcentre/internal/infrastructure/repository"
)

type UserHandler struct {
	sessions *usecase.SessionUseCase
	catalog  *repository.CourseCatalog
}

func NewUserHandler(sessions *usecase.SessionUseCase, catalog *repository.CourseCatalog) *UserHandler {
	return &UserHandler{sessions: sessions, catalog: catalog}
}

// GET /api/v1/user/dashboard
// The user record plus its enrolled course ids resolved to full records.
func (h *UserHandler) Dashboard(c *gin.Context) {
	user, err := h.sessions.Current(c, c.GetString("sessionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}

	enrolled := make([]domain.Course, 0, len(user.EnrolledCourses))
	for _, id := range user.EnrolledCourses {
		if course, ok := h.catalog.FindByID(id); ok {
			enrolled = append(enrolled, *course)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"enrolled": enrolled,
	})
}
