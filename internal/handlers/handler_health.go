package handlers

import (
	"net/http"

	"github.com/SscSPs/cafe_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: "ok"})
}
