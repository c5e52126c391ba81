package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/cafe_ledger/internal/core/ports/services"
	"github.com/SscSPs/cafe_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/summary", h.summary)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/income-statement", h.incomeStatement)
	}
}

// cutoff reads the optional inclusive "to" date shared by every report.
func cutoff(c *gin.Context) (*time.Time, error) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apperrors.NewValidationError("invalid query: %v", err)
	}
	return parseDateParam("to", params.To)
}

// trialBalance godoc
// @Summary Trial balance
// @Description One row per account with debit, credit and raw balance, plus column totals.
// @Tags reports
// @Produce json
// @Param to query string false "Inclusive cutoff date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=domain.TrialBalance}
// @Failure 400 {object} dto.APIResponse "Bad date"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	to, err := cutoff(c)
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := h.reportingService.TrialBalance(c.Request.Context(), to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, report)
}

// summary godoc
// @Summary Financial summary
// @Description Balance-sheet totals by account type and income-statement totals.
// @Tags reports
// @Produce json
// @Param to query string false "Inclusive cutoff date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=domain.FinancialSummary}
// @Failure 400 {object} dto.APIResponse "Bad date"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	to, err := cutoff(c)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := h.reportingService.FinancialSummary(c.Request.Context(), to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, summary)
}

// @Summary Balance-sheet totals
// @Tags reports
// @Produce json
// @Param to query string false "Inclusive cutoff date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]domain.TypeBalance}
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	to, err := cutoff(c)
	if err != nil {
		respondError(c, err)
		return
	}
	balances, err := h.reportingService.BalanceSheetTotals(c.Request.Context(), to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, balances)
}

// @Summary Income-statement totals
// @Tags reports
// @Produce json
// @Param to query string false "Inclusive cutoff date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=domain.IncomeStatementTotals}
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	to, err := cutoff(c)
	if err != nil {
		respondError(c, err)
		return
	}
	income, err := h.reportingService.IncomeStatementTotals(c.Request.Context(), to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, income)
}
