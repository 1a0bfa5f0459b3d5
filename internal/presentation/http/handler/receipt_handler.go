package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/latand/receipts-api/internal/application/service"
	"github.com/latand/receipts-api/internal/domain/enum"
	"github.com/latand/receipts-api/internal/domain/pricing"
	"github.com/latand/receipts-api/internal/domain/repository"
	"github.com/latand/receipts-api/internal/presentation/http/dto/request"
	"github.com/latand/receipts-api/internal/presentation/http/dto/response"
	"github.com/latand/receipts-api/internal/presentation/http/middleware"
	"github.com/latand/receipts-api/pkg/pagination"
	"github.com/latand/receipts-api/pkg/slip"
	"github.com/shopspring/decimal"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Create handles receipt creation
// @Summary Create receipt
// @Description Price and persist a receipt for the authenticated user
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body request.CreateReceiptRequest true "Receipt data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}

	products := make([]pricing.ProductLine, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, pricing.ProductLine{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
			Comment:  p.Comment,
		})
	}

	receipt, err := h.receiptService.Create(c.Request.Context(), *userID, &service.CreateReceiptInput{
		Products: products,
		Payment: pricing.PaymentInput{
			Type:   req.Payment.Type,
			Amount: req.Payment.Amount,
		},
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.CountReceiptCreated()
	response.Created(c, "Receipt created", response.NewReceiptResponse(receipt))
}

// List handles listing the authenticated user's receipts with filters
// @Summary List receipts
// @Tags receipts
// @Produce json
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(pagination.DefaultLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(pagination.DefaultOffset)))

	params := &repository.ReceiptFilterParams{
		Pagination: &pagination.Params{Limit: limit, Offset: offset},
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		startDate, err := parseDate(startDateStr)
		if err != nil {
			response.UnprocessableEntity(c, "Invalid start_date")
			return
		}
		params.StartDate = &startDate
	}
	if endDateStr := c.Query("end_date"); endDateStr != "" {
		endDate, err := parseDate(endDateStr)
		if err != nil {
			response.UnprocessableEntity(c, "Invalid end_date")
			return
		}
		params.EndDate = &endDate
	}
	if minTotalStr := c.Query("min_total"); minTotalStr != "" {
		minTotal, err := decimal.NewFromString(minTotalStr)
		if err != nil {
			response.UnprocessableEntity(c, "Invalid min_total")
			return
		}
		params.MinTotal = &minTotal
	}
	if maxTotalStr := c.Query("max_total"); maxTotalStr != "" {
		maxTotal, err := decimal.NewFromString(maxTotalStr)
		if err != nil {
			response.UnprocessableEntity(c, "Invalid max_total")
			return
		}
		params.MaxTotal = &maxTotal
	}
	if paymentTypeStr := c.Query("payment_type"); paymentTypeStr != "" {
		paymentType, err := enum.ParsePaymentType(paymentTypeStr)
		if err != nil {
			response.UnprocessableEntity(c, "Invalid payment_type")
			return
		}
		params.PaymentType = &paymentType
	}

	result, err := h.receiptService.List(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	// An empty page is a valid result, not an error
	response.SuccessWithPagination(c, 200, "Receipts retrieved", &pagination.Result[response.ReceiptResponse]{
		Items:  response.NewReceiptListResponse(result.Items),
		Total:  result.Total,
		Limit:  result.Limit,
		Offset: result.Offset,
	})
}

// GetByID handles fetching one receipt
// @Summary Get receipt by ID
// @Tags receipts
// @Produce json
// @Router /receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetByID(c.Request.Context(), *userID, receiptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved", response.NewReceiptResponse(receipt))
}

// Show handles rendering one receipt as a plain-text slip
// @Summary Show receipt as text
// @Tags receipts
// @Produce plain
// @Router /receipts/show/{id} [get]
func (h *ReceiptHandler) Show(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	width := slip.DefaultWidth
	if widthStr := c.Query("max_characters"); widthStr != "" {
		width, err = strconv.Atoi(widthStr)
		if err != nil || width < slip.MinWidth {
			response.UnprocessableEntity(c, "max_characters must be an integer >= 20")
			return
		}
	}

	text, err := h.receiptService.Render(c.Request.Context(), *userID, receiptID, width)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/plain; charset=utf-8", []byte(text))
}

// parseDate accepts RFC 3339 timestamps and bare dates
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
