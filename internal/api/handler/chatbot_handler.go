package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/medisys/hms-api/internal/api/metrics"
	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/ports"
)

type ChatbotHandler struct {
	chatbot ports.ChatbotService
}

func NewChatbotHandler(chatbot ports.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbot: chatbot}
}

type chatbotRequest struct {
	Query string `json:"query" validate:"required"`
}

type chatbotResponse struct {
	Response string `json:"response"`
}

// Query handles POST /chatbot/query. Once the caller is authorized the
// endpoint always answers 200 with text: an unrecognised query is a semantic
// miss encoded in the response body, not a transport error.
//
// @Summary      Ask the chatbot about patients or appointments
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatbotRequest  true  "Free-text query"
// @Success      200   {object}  chatbotResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /chatbot/query [post]
func (h *ChatbotHandler) Query(c echo.Context) error {
	var req chatbotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	intent := domain.ParseIntent(req.Query)
	metrics.ChatbotQueriesTotal.WithLabelValues(string(intent.Kind)).Inc()
	timer := prometheus.NewTimer(metrics.ChatbotQueryDuration.WithLabelValues(string(intent.Kind)))
	defer timer.ObserveDuration()

	answer := h.chatbot.Answer(c.Request().Context(), role, req.Query)
	return c.JSON(http.StatusOK, chatbotResponse{Response: answer})
}
