package services

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"hostel-backend/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeeService tracks fees and their payments. A fee's PaidAmount/Status roll
// forward in the same transaction as the payment row that changed them, the
// same ledger-and-counter discipline the allocation service uses.
type FeeService struct {
	DB      *gorm.DB
	Gateway PaymentGateway
	// Secret verifies gateway callback signatures.
	Secret string
}

func NewFeeService(db *gorm.DB, gateway PaymentGateway, secret string) *FeeService {
	return &FeeService{DB: db, Gateway: gateway, Secret: secret}
}

type FeeInput struct {
	StudentID uint      `json:"studentId" binding:"required"`
	FeeType   string    `json:"feeType" binding:"required"`
	Amount    float64   `json:"amount" binding:"required"`
	DueDate   time.Time `json:"dueDate"`
}

type PaymentOrder struct {
	Payment models.Payment `json:"payment"`
	OrderID string         `json:"orderId"`
}

type ConfirmPaymentInput struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

func validFeeType(t string) bool {
	switch t {
	case models.FeeTypeHostel, models.FeeTypeMess, models.FeeTypeSecurityDeposit, models.FeeTypeOther:
		return true
	}
	return false
}

func (s *FeeService) CreateFee(tenantID uint, input FeeInput) (models.Fee, error) {
	var fee models.Fee

	if !validFeeType(input.FeeType) {
		return fee, Invalidf("Invalid fee type %q", input.FeeType)
	}
	if input.Amount <= 0 {
		return fee, Invalidf("Fee amount must be greater than zero")
	}

	var student models.Student
	if err := s.DB.Where("id = ? AND tenant_id = ?", input.StudentID, tenantID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fee, NotFoundf("Student not found")
		}
		return fee, err
	}

	fee = models.Fee{
		TenantID:  tenantID,
		StudentID: student.ID,
		FeeType:   input.FeeType,
		Amount:    input.Amount,
		DueDate:   input.DueDate,
		Status:    models.FeeStatusPending,
	}
	err := s.DB.Create(&fee).Error
	return fee, err
}

func (s *FeeService) ListFees(tenantID uint, studentID uint, status string) ([]models.Fee, error) {
	var fees []models.Fee
	q := s.DB.Preload("Payments").Where("tenant_id = ?", tenantID)
	if studentID != 0 {
		q = q.Where("student_id = ?", studentID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("due_date").Find(&fees).Error
	return fees, err
}

func (s *FeeService) GetFee(tenantID, feeID uint) (models.Fee, error) {
	var fee models.Fee
	err := s.DB.Preload("Payments").
		Where("id = ? AND tenant_id = ?", feeID, tenantID).
		First(&fee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fee, NotFoundf("Fee not found")
	}
	return fee, err
}

// RecordCashPayment captures an offline payment and rolls the fee forward in
// one transaction.
func (s *FeeService) RecordCashPayment(tenantID, feeID uint, amount float64) (models.Payment, error) {
	var payment models.Payment

	if amount <= 0 {
		return payment, Invalidf("Payment amount must be greater than zero")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		fee, err := s.lockFee(tx, tenantID, feeID)
		if err != nil {
			return err
		}
		if err := checkPayable(fee, amount); err != nil {
			return err
		}

		now := time.Now().UTC()
		payment = models.Payment{
			TenantID:      tenantID,
			FeeID:         fee.ID,
			StudentID:     fee.StudentID,
			Amount:        amount,
			Method:        models.PaymentMethodCash,
			Status:        models.PaymentStatusCaptured,
			ReceiptNumber: uuid.NewString(),
			PaidAt:        &now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		return applyPayment(tx, fee, amount)
	})

	return payment, err
}

// CreateOnlineOrder opens a gateway order for the fee's outstanding balance
// and records a CREATED payment row awaiting confirmation.
func (s *FeeService) CreateOnlineOrder(tenantID, feeID uint) (PaymentOrder, error) {
	var order PaymentOrder

	fee, err := s.GetFee(tenantID, feeID)
	if err != nil {
		return order, err
	}
	outstanding := fee.Amount - fee.PaidAmount
	if err := checkPayable(&fee, outstanding); err != nil {
		return order, err
	}

	receipt := uuid.NewString()
	orderID, err := s.Gateway.CreateOrder(int64(math.Round(outstanding*100)), "INR", receipt, map[string]interface{}{
		"feeId":     fee.ID,
		"studentId": fee.StudentID,
	})
	if err != nil {
		return order, err
	}

	payment := models.Payment{
		TenantID:       tenantID,
		FeeID:          fee.ID,
		StudentID:      fee.StudentID,
		Amount:         outstanding,
		Method:         models.PaymentMethodOnline,
		Status:         models.PaymentStatusCreated,
		ReceiptNumber:  receipt,
		GatewayOrderID: orderID,
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return order, err
	}

	return PaymentOrder{Payment: payment, OrderID: orderID}, nil
}

// ConfirmOnlinePayment verifies the gateway signature and captures the
// pending payment, rolling the fee forward in the same transaction. A bad
// signature marks the payment FAILED; that mark commits on its own, outside
// the capture transaction, so returning the validation error cannot roll it
// back.
func (s *FeeService) ConfirmOnlinePayment(tenantID uint, input ConfirmPaymentInput) (models.Payment, error) {
	var payment models.Payment

	if err := s.DB.Where("gateway_order_id = ? AND tenant_id = ?", input.OrderID, tenantID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payment, NotFoundf("Payment not found")
		}
		return payment, err
	}
	if payment.Status == models.PaymentStatusCaptured {
		return payment, Conflictf("Payment is already captured")
	}

	if !VerifyPaymentSignature(input.OrderID, input.PaymentID, input.Signature, s.Secret) {
		if err := s.DB.Model(&payment).Update("status", models.PaymentStatusFailed).Error; err != nil {
			return payment, err
		}
		payment.Status = models.PaymentStatusFailed
		return payment, Invalidf("Payment signature verification failed")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("gateway_order_id = ? AND tenant_id = ?", input.OrderID, tenantID).
			First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Payment not found")
			}
			return err
		}
		if payment.Status == models.PaymentStatusCaptured {
			return Conflictf("Payment is already captured")
		}

		fee, err := s.lockFee(tx, tenantID, payment.FeeID)
		if err != nil {
			return err
		}
		if err := checkPayable(fee, payment.Amount); err != nil {
			return err
		}

		now := time.Now().UTC()
		payload, _ := json.Marshal(map[string]string{
			"razorpay_order_id":   input.OrderID,
			"razorpay_payment_id": input.PaymentID,
		})
		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"status":             models.PaymentStatusCaptured,
			"gateway_payment_id": input.PaymentID,
			"gateway_signature":  input.Signature,
			"gateway_payload":    datatypes.JSON(payload),
			"paid_at":            now,
		}).Error; err != nil {
			return err
		}
		payment.Status = models.PaymentStatusCaptured
		payment.GatewayPaymentID = input.PaymentID
		payment.PaidAt = &now

		return applyPayment(tx, fee, payment.Amount)
	})

	return payment, err
}

func (s *FeeService) lockFee(tx *gorm.DB, tenantID, feeID uint) (*models.Fee, error) {
	var fee models.Fee
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND tenant_id = ?", feeID, tenantID).
		First(&fee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("Fee not found")
		}
		return nil, err
	}
	return &fee, nil
}

func checkPayable(fee *models.Fee, amount float64) error {
	if fee.Status == models.FeeStatusCancelled {
		return Conflictf("Fee is cancelled and cannot be paid")
	}
	if fee.Status == models.FeeStatusPaid {
		return Conflictf("Fee is already fully paid")
	}
	if amount <= 0 {
		return Invalidf("Payment amount must be greater than zero")
	}
	if fee.PaidAmount+amount > fee.Amount {
		return Conflictf("Payment of %.2f exceeds the outstanding balance of %.2f",
			amount, fee.Amount-fee.PaidAmount)
	}
	return nil
}

// applyPayment rolls PaidAmount and Status; the fee row must be locked.
func applyPayment(tx *gorm.DB, fee *models.Fee, amount float64) error {
	paid := fee.PaidAmount + amount
	status := models.FeeStatusPartiallyPaid
	if paid >= fee.Amount {
		status = models.FeeStatusPaid
	}
	return tx.Model(&models.Fee{}).Where("id = ?", fee.ID).
		Updates(map[string]interface{}{"paid_amount": paid, "status": status}).Error
}
