package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trainingcentre/internal/application/usecase"
	"trainingcentre/internal/domain"
	"trainingcentre/internal/infrastructure/repository"
)

type CourseHandler struct {
	catalog *repository.CourseCatalog
	enroll  *usecase.EnrollUseCase
}

func NewCourseHandler(catalog *repository.CourseCatalog, enroll *usecase.EnrollUseCase) *CourseHandler {
	return &CourseHandler{catalog: catalog, enroll: enroll}
}

// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.All())
}

// GET /api/v1/courses/:id
func (h *CourseHandler) GetOne(c *gin.Context) {
	course, ok := h.catalog.FindByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// GET /api/v1/courses/:id/checkout
// Returns the simulated checkout breakdown for a paid course.
func (h *CourseHandler) Checkout(c *gin.Context) {
	course, ok := h.catalog.FindByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	if course.Free {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Course is free, no checkout required"})
		return
	}
	c.JSON(http.StatusOK, usecase.Quote(course))
}

// POST /api/v1/courses/:id/enroll
func (h *CourseHandler) Enroll(c *gin.Context) {
	user, err := h.enroll.Enroll(c, c.GetString("sessionId"), c.Param("id"))
	if err != nil {
		// Paid course: hand back the checkout quote so the client can run
		// the payment step and retry via /pay.
		if errors.Is(err, domain.ErrPaymentRequired) {
			course, _ := h.catalog.FindByID(c.Param("id"))
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":    "Payment required",
				"checkout": usecase.Quote(course),
			})
			return
		}
		h.enrollError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the path of Excellence! Enrollment successful.",
		"user":    user,
	})
}

// POST /api/v1/courses/:id/pay
// The "pay" action of the simulated checkout. No transaction happens.
func (h *CourseHandler) Pay(c *gin.Context) {
	user, err := h.enroll.Pay(c, c.GetString("sessionId"), c.Param("id"))
	if err != nil {
		h.enrollError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the path of Excellence! Enrollment successful.",
		"user":    user,
	})
}

func (h *CourseHandler) enrollError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to enroll"})
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		c.JSON(http.StatusConflict, gin.H{"error": "You are already enrolled in this path!"})
	case errors.Is(err, domain.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
