package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trainingcentre/internal/application/usecase"
	"trainingcentre/internal/domain"
)

// The two fixed fallback shapes. The client always receives one of three
// strings: generated content or one of these.
const (
	emptyFallback   = "Sorry, I couldn't generate a roadmap at this moment. Please try again."
	serviceFallback = "Error connecting to AI architect. Ensure your goal is clear and try again."
)

type RoadmapHandler struct {
	roadmaps *usecase.RoadmapUseCase
}

func NewRoadmapHandler(roadmaps *usecase.RoadmapUseCase) *RoadmapHandler {
	return &RoadmapHandler{roadmaps: roadmaps}
}

type roadmapReq struct {
	Goal string `json:"goal" binding:"required"`
}

// POST /api/v1/roadmap
func (h *RoadmapHandler) Generate(c *gin.Context) {
	var req roadmapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter your goal"})
		return
	}

	// Blank goals never reach the generator.
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter your goal"})
		return
	}

	result := h.roadmaps.Generate(c, goal)

	var text string
	switch result.Kind {
	case domain.RoadmapSuccess:
		text = result.Text
	case domain.RoadmapEmpty:
		text = emptyFallback
	default:
		text = serviceFallback
	}

	c.JSON(http.StatusOK, gin.H{
		"roadmap": text,
		"lines":   domain.ParseRoadmap(text),
	})
}
