package handlers

import (
	"net/http"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// getLedger godoc
// @Summary Account ledger
// @Description Lists the account's lines ordered by entry date and insertion order, with a
// @Description running balance (debit minus credit) accumulated over the requested window.
// @Tags journal
// @Produce json
// @Param account_id query string true "Account ID"
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]domain.LedgerLine}
// @Failure 400 {object} dto.APIResponse "Missing account or bad date range"
// @Security BearerAuth
// @Router /ledger [get]
func (h *journalHandler) getLedger(c *gin.Context) {
	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	from, err := parseDateParam("from", params.From)
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := parseDateParam("to", params.To)
	if err != nil {
		respondError(c, err)
		return
	}

	seq, err := h.journalService.GetLedger(c.Request.Context(), domain.LedgerQuery{
		AccountID: params.AccountID,
		From:      from,
		To:        to,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	lines := []domain.LedgerLine{}
	for line, err := range seq {
		if err != nil {
			respondError(c, err)
			return
		}
		lines = append(lines, line)
	}
	respondOK(c, http.StatusOK, lines)
}
