package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type FeeController struct {
	Service *services.FeeService
}

func NewFeeController(service *services.FeeService) *FeeController {
	return &FeeController{Service: service}
}

type cashPaymentPayload struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (ctl *FeeController) Create(c *gin.Context) {
	var input services.FeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "studentId, feeType and amount are required")
		return
	}

	fee, err := ctl.Service.CreateFee(middleware.TenantID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, fee)
}

func (ctl *FeeController) List(c *gin.Context) {
	fees, err := ctl.Service.ListFees(
		middleware.TenantID(c), queryUint(c, "studentId"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, fees)
}

func (ctl *FeeController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	fee, err := ctl.Service.GetFee(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, fee)
}

// RecordCashPayment handles POST /api/fees/:id/payments.
func (ctl *FeeController) RecordCashPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload cashPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "amount is required")
		return
	}
	payment, err := ctl.Service.RecordCashPayment(middleware.TenantID(c), id, payload.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payment)
}

// CreateOrder handles POST /api/fees/:id/order, opening a Razorpay order for
// the outstanding balance.
func (ctl *FeeController) CreateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := ctl.Service.CreateOnlineOrder(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

// ConfirmPayment handles POST /api/payments/confirm with the checkout
// callback fields.
func (ctl *FeeController) ConfirmPayment(c *gin.Context) {
	var input services.ConfirmPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "razorpay_order_id, razorpay_payment_id and razorpay_signature are required")
		return
	}
	payment, err := ctl.Service.ConfirmOnlinePayment(middleware.TenantID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}
