package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cafe_ledger/internal/core/ports/services"
	"github.com/SscSPs/cafe_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalService}

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.recordJournalEntry)
		entries.GET("/:id", h.getJournalEntry)
	}
	rg.GET("/ledger", h.getLedger)
}

// recordJournalEntry godoc
// @Summary Record a journal entry
// @Description Persists a balanced entry and all its lines atomically. Every line must carry
// @Description either a debit or a credit and reference an active account.
// @Tags journal
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.APIResponse{data=domain.JournalEntry}
// @Failure 400 {object} dto.APIResponse "Validation error, e.g. unbalanced entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) recordJournalEntry(c *gin.Context) {
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.journalService.RecordJournalEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, entry)
}

// getJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journal
// @Produce json
// @Param id path string true "Journal entry ID"
// @Success 200 {object} dto.APIResponse{data=domain.JournalEntry}
// @Failure 404 {object} dto.APIResponse "Entry not found"
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, entry)
}
