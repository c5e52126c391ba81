package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cafe_ledger/internal/core/ports/services"
	"github.com/SscSPs/cafe_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService     portssvc.PaymentSvcFacade
	bankAccountService portssvc.BankAccountSvc
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, bankAccountService portssvc.BankAccountSvc) {
	h := &paymentHandler{paymentService: paymentService, bankAccountService: bankAccountService}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
	}

	banks := rg.Group("/bank-accounts")
	{
		banks.POST("", h.createBankAccount)
		banks.GET("", h.listBankAccounts)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Stores a receipt. When invoice_id is given, the invoice's payment status is
// @Description recomputed from all of its payments and returned.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.APIResponse{data=dto.RecordPaymentResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Invoice not found"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.paymentService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, resp)
}

// listPayments godoc
// @Summary List payments
// @Description Newest first. Pass the returned nextToken to fetch the following page.
// @Tags payments
// @Produce json
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.APIResponse{data=dto.ListPaymentsResponse}
// @Failure 400 {object} dto.APIResponse "Invalid parameters or token"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, resp)
}

// createBankAccount godoc
// @Summary Register a bank account
// @Tags payments
// @Accept json
// @Produce json
// @Param account body dto.CreateBankAccountRequest true "Bank account"
// @Success 201 {object} dto.APIResponse{data=domain.BankAccount}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Security BearerAuth
// @Router /bank-accounts [post]
func (h *paymentHandler) createBankAccount(c *gin.Context) {
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, account)
}

// @Summary List bank accounts
// @Tags payments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.BankAccount}
// @Security BearerAuth
// @Router /bank-accounts [get]
func (h *paymentHandler) listBankAccounts(c *gin.Context) {
	accounts, err := h.bankAccountService.ListBankAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, accounts)
}
