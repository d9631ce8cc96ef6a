package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-journal/internal/api/shared/dto"
	"github.com/feral-file/ff-journal/internal/api/shared/executor"
	"github.com/feral-file/ff-journal/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SponsorTransaction validates, budgets and co-signs a user transaction
	// POST /gas/sponsor
	SponsorTransaction(c *gin.Context)

	// ExecuteTransaction submits a transaction carrying the user and sponsor signatures
	// POST /gas/execute
	ExecuteTransaction(c *gin.Context)

	// GetGasUsage retrieves the lifetime sponsorship usage of an address
	// GET /api/v1/gas/usage/:address
	GetGasUsage(c *gin.Context)

	// ListSponsorshipRecords retrieves the gas grants of an address
	// GET /api/v1/gas/usage/:address/records?limit=<limit>&offset=<offset>
	ListSponsorshipRecords(c *gin.Context)

	// GetConstruct retrieves a construct by its object id
	// GET /api/v1/constructs/:id
	GetConstruct(c *gin.Context)

	// ListMemoryShards retrieves the shards of a construct
	// GET /api/v1/constructs/:id/shards?limit=<limit>&offset=<offset>
	ListMemoryShards(c *gin.Context)

	// GetGasStationStatus retrieves the sponsor's gas pool (requires authentication)
	// GET /api/v1/admin/gas/status
	GetGasStationStatus(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// SponsorTransaction validates, budgets and co-signs a user transaction
func (h *handler) SponsorTransaction(c *gin.Context) {
	var req dto.SponsorTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	txBytes, err := req.Validate()
	if err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.SponsorTransaction(c.Request.Context(), txBytes, req.Sender)
	if err != nil {
		respondError(c, err, "Failed to sponsor transaction")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ExecuteTransaction submits a transaction carrying the user and sponsor signatures
func (h *handler) ExecuteTransaction(c *gin.Context) {
	var req dto.ExecuteTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	txBytes, err := req.Validate()
	if err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.ExecuteTransaction(c.Request.Context(), txBytes, req.UserSignature, req.SponsorSignature)
	if err != nil {
		respondError(c, err, "Failed to execute transaction")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetGasUsage retrieves the lifetime sponsorship usage of an address
func (h *handler) GetGasUsage(c *gin.Context) {
	address := c.Param("address")
	if !domain.IsValidAddress(address) {
		respondBadRequest(c, "Invalid address")
		return
	}

	usage, err := h.executor.GetGasUsage(c.Request.Context(), address)
	if err != nil {
		respondError(c, err, "Failed to get gas usage")
		return
	}

	c.JSON(http.StatusOK, usage)
}

// ListSponsorshipRecords retrieves the gas grants of an address
func (h *handler) ListSponsorshipRecords(c *gin.Context) {
	address := c.Param("address")
	if !domain.IsValidAddress(address) {
		respondBadRequest(c, "Invalid address")
		return
	}

	queryParams, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetSponsorshipRecords(c.Request.Context(), address, &queryParams.Limit, &queryParams.Offset)
	if err != nil {
		respondError(c, err, "Failed to list sponsorship records")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetConstruct retrieves a construct by its object id
func (h *handler) GetConstruct(c *gin.Context) {
	id := c.Param("id")
	if !domain.IsValidAddress(id) {
		respondBadRequest(c, "Invalid construct id")
		return
	}

	construct, err := h.executor.GetConstruct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get construct")
		return
	}

	if construct == nil {
		respondNotFound(c, "Construct not found")
		return
	}

	c.JSON(http.StatusOK, construct)
}

// ListMemoryShards retrieves the shards of a construct
func (h *handler) ListMemoryShards(c *gin.Context) {
	id := c.Param("id")
	if !domain.IsValidAddress(id) {
		respondBadRequest(c, "Invalid construct id")
		return
	}

	queryParams, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetMemoryShards(c.Request.Context(), id, &queryParams.Limit, &queryParams.Offset)
	if err != nil {
		respondError(c, err, "Failed to list memory shards")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetGasStationStatus retrieves the sponsor's gas pool
func (h *handler) GetGasStationStatus(c *gin.Context) {
	status, err := h.executor.GetGasStationStatus(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get gas station status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "ff-journal-api",
	})
}
