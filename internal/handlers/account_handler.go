package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/autocontent-backend/internal/models"
)

// AccountHandler handles HTTP requests for platform accounts
type AccountHandler struct {
	accountService AccountManager
}

// NewAccountHandler creates a new AccountHandler instance
func NewAccountHandler(accountService AccountManager) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List godoc
// @Summary List platform accounts
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "accounts: []models.PlatformAccount"
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountService.List()
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// Connect godoc
// @Summary Connect a platform account
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param platform path string true "Platform" Enums(youtube, tiktok, facebook)
// @Param request body models.ConnectAccountRequest false "Optional platform API key"
// @Success 200 {object} map[string]interface{} "success: true, accounts: []models.PlatformAccount"
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/accounts/{platform}/connect [post]
func (h *AccountHandler) Connect(c *gin.Context) {
	var req models.ConnectAccountRequest
	// The body is optional
	_ = c.ShouldBindJSON(&req)

	if _, err := h.accountService.Connect(c.Param("platform"), req.APIKey); err != nil {
		respondError(c, err, "Failed to update account")
		return
	}

	h.respondAccounts(c)
}

// Disconnect godoc
// @Summary Disconnect a platform account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param platform path string true "Platform" Enums(youtube, tiktok, facebook)
// @Success 200 {object} map[string]interface{} "success: true, accounts: []models.PlatformAccount"
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/accounts/{platform}/disconnect [post]
func (h *AccountHandler) Disconnect(c *gin.Context) {
	if _, err := h.accountService.Disconnect(c.Param("platform")); err != nil {
		respondError(c, err, "Failed to update account")
		return
	}

	h.respondAccounts(c)
}

func (h *AccountHandler) respondAccounts(c *gin.Context) {
	accounts, err := h.accountService.List()
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "accounts": accounts})
}
