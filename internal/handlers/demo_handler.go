package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quickfixlabs/receptionist/internal/constants/prompts"
	"github.com/quickfixlabs/receptionist/internal/domains/persona"
	"github.com/quickfixlabs/receptionist/internal/domains/session"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

// DemoHandler provisions live demo sessions
type DemoHandler struct {
	sessions session.Service
	logger   *Logger.Logger
}

func NewDemoHandler(sessions session.Service, logger *Logger.Logger) *DemoHandler {
	return &DemoHandler{sessions: sessions, logger: logger}
}

// StartDemo provisions a voice demo session
// @Summary Start a demo call
// @Description Synthesize a caller persona from a complaint and provision a room the caller can join
// @Tags Demo
// @Accept json
// @Produce json
// @Param request body StartDemoRequest false "Optional complaint narrative override"
// @Success 200 {object} StartDemoResponse "Session ready to join"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 502 {object} ErrorResponse "Provisioning failed"
// @Router /start-demo [post]
func (h *DemoHandler) StartDemo(c *gin.Context) {
	var req StartDemoRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid request data",
				Details: err.Error(),
			})
			return
		}
	}

	complaint := strings.TrimSpace(req.Complaint)
	if complaint == "" {
		complaint = prompts.DefaultComplaint
	}

	handle, err := h.sessions.Provision(c.Request.Context(), complaint)
	if err != nil {
		switch {
		case errors.Is(err, persona.ErrEmptyNarrative):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Complaint narrative is empty"})
		default:
			h.logger.Errorf("start-demo error: %v", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Demo provisioning failed"})
		}
		return
	}

	c.JSON(http.StatusOK, StartDemoResponse{
		Room:      handle.Room,
		Token:     handle.Token,
		ServerURL: handle.ServerURL,
		Persona:   handle.Persona,
	})
}

// RegisterDemoRoutes registers demo routes
func (h *DemoHandler) RegisterDemoRoutes(r *gin.RouterGroup) {
	r.POST("/start-demo", h.StartDemo)
}
