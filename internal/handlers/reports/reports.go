package reports

import (
	"context"
	"net/http"

	"github.com/atlanticleather/storefront/internal/dto"
	"github.com/atlanticleather/storefront/pkg/utils"
)

type Service interface {
	GetReport(ctx context.Context) (*dto.ReportResponseDTO, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Get godoc
//
//	@Summary		Dashboard report
//	@Description	Order counts by status, total revenue, product and low stock counters, and the most recent orders.
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ReportResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/reports [get]
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.GetReport(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}
