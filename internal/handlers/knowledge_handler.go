package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickfixlabs/receptionist/internal/domains/knowledge"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

// KnowledgeHandler handles grounded company question requests
type KnowledgeHandler struct {
	responder knowledge.ResponderService
	store     *knowledge.Store
	business  string
	logger    *Logger.Logger
}

func NewKnowledgeHandler(responder knowledge.ResponderService, store *knowledge.Store, business string, logger *Logger.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		responder: responder,
		store:     store,
		business:  business,
		logger:    logger,
	}
}

// AskCompany answers a question from the company knowledge snapshot
// @Summary Ask the company a question
// @Description Answer a caller's question using only the company knowledge snapshot
// @Tags Knowledge
// @Accept json
// @Produce json
// @Param request body AskCompanyRequest true "The caller's question"
// @Success 200 {object} AskCompanyResponse "Grounded answer"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 502 {object} ErrorResponse "Generation backend failed"
// @Failure 504 {object} ErrorResponse "Generation backend timed out"
// @Router /ask-company [post]
func (h *KnowledgeHandler) AskCompany(c *gin.Context) {
	var req AskCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	answer, err := h.responder.Answer(c.Request.Context(), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, knowledge.ErrGenerationTimeout):
			c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Answer generation timed out"})
		default:
			h.logger.Errorf("ask-company error: %v", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Answer generation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, AskCompanyResponse{
		Answer: answer.Text,
		Source: answer.Source,
	})
}

// Health reports service status
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Router /health [get]
func (h *KnowledgeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "ok",
		Business:   h.business,
		Categories: h.store.Categories(),
	})
}

// RegisterKnowledgeRoutes registers knowledge routes
func (h *KnowledgeHandler) RegisterKnowledgeRoutes(r *gin.RouterGroup) {
	r.POST("/ask-company", h.AskCompany)
}
