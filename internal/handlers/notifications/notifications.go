package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
	"github.com/atlanticleather/storefront/pkg/utils"
)

type Service interface {
	GetSettings(ctx context.Context) (*domain.NotificationSettings, error)
	UpdateSettings(ctx context.Context, req *dto.NotificationSettingsDTO) (*domain.NotificationSettings, error)
	ListLogs(ctx context.Context, limit int) ([]domain.NotificationLog, error)
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.notificationService.GetSettings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSettingsDTO(settings))
}

// UpdateSettings godoc
//
//	@Summary	Update notification settings
//	@Tags		Notifications
//	@Accept		json
//	@Produce	json
//	@Param		settings	body	dto.NotificationSettingsDTO	true	"Settings payload"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.NotificationSettingsDTO
//	@Failure	400	{object}	utils.Response	"Invalid payload"
//	@Router		/api/notifications/settings [put]
func (h *NotificationHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.NotificationSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := h.notificationService.UpdateSettings(r.Context(), &req)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSettingsDTO(settings))
}

func (h *NotificationHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.notificationService.ListLogs(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.NotificationLogResponseDTO, 0, len(logs))
	for _, log := range logs {
		response = append(response, dto.NotificationLogResponseDTO{
			ID:        log.ID,
			Channel:   log.Channel,
			Recipient: log.Recipient,
			Subject:   log.Subject,
			Status:    log.Status,
			Error:     log.Error,
			CreatedAt: log.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toSettingsDTO(settings *domain.NotificationSettings) dto.NotificationSettingsDTO {
	return dto.NotificationSettingsDTO{
		EmailEnabled:      settings.EmailEnabled,
		AdminEmail:        settings.AdminEmail,
		WebhookURL:        settings.WebhookURL,
		SlackWebhookURL:   settings.SlackWebhookURL,
		DiscordWebhookURL: settings.DiscordWebhookURL,
		LowStockThreshold: settings.LowStockThreshold,
	}
}
