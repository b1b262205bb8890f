package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tutorials-be/internal/models"
	"tutorials-be/internal/repository"
	"tutorials-be/internal/service"

	"github.com/gin-gonic/gin"
)

type TutorialController struct {
	tutorialService service.TutorialService
}

func NewTutorialController(tutorialService service.TutorialService) *TutorialController {
	return &TutorialController{
		tutorialService: tutorialService,
	}
}

// RegisterRoutes mounts the tutorial endpoints on the given router group
func (tc *TutorialController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tutorials", tc.Create)
	rg.GET("/tutorials", tc.FindAll)
	rg.GET("/tutorials/published", tc.FindAllPublished)
	rg.GET("/tutorials/:id", tc.FindOne)
	rg.PUT("/tutorials/:id", tc.Update)
	rg.DELETE("/tutorials/:id", tc.Delete)
	rg.DELETE("/tutorials", tc.DeleteAll)
}

// Create handles POST /api/tutorials
func (tc *TutorialController) Create(c *gin.Context) {
	var req models.CreateTutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A missing or empty title is the only required-field failure.
		c.JSON(http.StatusBadRequest, models.MessageResponse{
			Message: "Content can not be empty!",
		})
		return
	}

	tutorial, err := tc.tutorialService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{
			Message: "Some error occurred while creating the Tutorial.",
		})
		return
	}

	c.JSON(http.StatusOK, tutorial)
}

// FindAll handles GET /api/tutorials with an optional ?title= filter
func (tc *TutorialController) FindAll(c *gin.Context) {
	title := c.Query("title")

	tutorials, err := tc.tutorialService.FindAll(c.Request.Context(), title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{
			Message: "Some error occurred while retrieving tutorials.",
		})
		return
	}

	c.JSON(http.StatusOK, tutorials)
}

// FindAllPublished handles GET /api/tutorials/published
func (tc *TutorialController) FindAllPublished(c *gin.Context) {
	tutorials, err := tc.tutorialService.FindPublished(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{
			Message: "Some error occurred while retrieving tutorials.",
		})
		return
	}

	c.JSON(http.StatusOK, tutorials)
}

// FindOne handles GET /api/tutorials/:id
func (tc *TutorialController) FindOne(c *gin.Context) {
	id := c.Param("id")

	tutorial, err := tc.tutorialService.FindByID(c.Request.Context(), id)
	if err != nil {
		// A malformed id is a retrieval error, not a missing record.
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{
				Message: fmt.Sprintf("Not found Tutorial with id %s.", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{
			Message: fmt.Sprintf("Error retrieving Tutorial with id=%s", id),
		})
		return
	}

	c.JSON(http.StatusOK, tutorial)
}

// Update handles PUT /api/tutorials/:id
func (tc *TutorialController) Update(c *gin.Context) {
	id := c.Param("id")

	// An empty object {} is a valid no-op update; only an absent or
	// literal null body is rejected. Gin's binder cannot tell the two
	// apart, so probe the raw body first.
	body, err := c.GetRawData()
	if err != nil || isEmptyBody(body) {
		c.JSON(http.StatusBadRequest, models.MessageResponse{
			Message: "Data to update can not be empty!",
		})
		return
	}

	var req models.UpdateTutorialRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{
			Message: "Invalid request body",
		})
		return
	}

	if err := tc.tutorialService.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{
				Message: fmt.Sprintf("Cannot update Tutorial with id=%s. Maybe Tutorial was not found!", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{
			Message: fmt.Sprintf("Error updating Tutorial with id=%s", id),
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Tutorial was updated successfully.",
	})
}

// Delete handles DELETE /api/tutorials/:id
func (tc *TutorialController) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := tc.tutorialService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{
				Message: fmt.Sprintf("Cannot delete Tutorial with id=%s. Maybe Tutorial was not found!", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{
			Message: fmt.Sprintf("Could not delete Tutorial with id=%s", id),
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Tutorial was deleted successfully!",
	})
}

// DeleteAll handles DELETE /api/tutorials
func (tc *TutorialController) DeleteAll(c *gin.Context) {
	count, err := tc.tutorialService.DeleteAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{
			Message: "Some error occurred while removing all tutorials.",
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("%d Tutorials were deleted successfully!", count),
	})
}

func isEmptyBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
