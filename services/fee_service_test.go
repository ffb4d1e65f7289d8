package services

import (
	"fmt"
	"testing"
	"time"

	"hostel-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubGateway hands out deterministic order ids without talking to Razorpay.
type stubGateway struct {
	orders     int
	lastAmount int64
}

func (g *stubGateway) CreateOrder(amountPaise int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	g.orders++
	g.lastAmount = amountPaise
	return fmt.Sprintf("order_stub_%d", g.orders), nil
}

func newFeeService(f *fixture) *FeeService {
	return NewFeeService(f.db, &stubGateway{}, "test-webhook-secret")
}

func (f *fixture) newFee(t *testing.T, svc *FeeService, studentID uint, amount float64) models.Fee {
	t.Helper()
	fee, err := svc.CreateFee(f.tenant.ID, FeeInput{
		StudentID: studentID,
		FeeType:   models.FeeTypeHostel,
		Amount:    amount,
		DueDate:   time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	return fee
}

func TestCreateFeeValidation(t *testing.T) {
	f := newFixture(t)
	svc := newFeeService(f)
	student := f.newStudent(t, "Fee Payer")

	_, err := svc.CreateFee(f.tenant.ID, FeeInput{StudentID: student.ID, FeeType: "TUITION", Amount: 100})
	require.Equal(t, KindValidation, KindOf(err))

	_, err = svc.CreateFee(f.tenant.ID, FeeInput{StudentID: student.ID, FeeType: models.FeeTypeMess, Amount: 0})
	require.Equal(t, KindValidation, KindOf(err))

	_, err = svc.CreateFee(f.tenant.ID, FeeInput{StudentID: 999999, FeeType: models.FeeTypeMess, Amount: 100})
	require.Equal(t, KindNotFound, KindOf(err))
}

func TestCashPaymentRollsFeeForward(t *testing.T) {
	f := newFixture(t)
	svc := newFeeService(f)
	student := f.newStudent(t, "Cash Payer")
	fee := f.newFee(t, svc, student.ID, 5000)

	payment, err := svc.RecordCashPayment(f.tenant.ID, fee.ID, 2000)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusCaptured, payment.Status)
	require.Equal(t, models.PaymentMethodCash, payment.Method)
	require.NotNil(t, payment.PaidAt)

	got, err := svc.GetFee(f.tenant.ID, fee.ID)
	require.NoError(t, err)
	require.Equal(t, 2000.0, got.PaidAmount)
	require.Equal(t, models.FeeStatusPartiallyPaid, got.Status)

	// Overpayment of the remaining balance is refused.
	_, err = svc.RecordCashPayment(f.tenant.ID, fee.ID, 4000)
	require.Equal(t, KindConflict, KindOf(err))

	_, err = svc.RecordCashPayment(f.tenant.ID, fee.ID, 3000)
	require.NoError(t, err)

	got, err = svc.GetFee(f.tenant.ID, fee.ID)
	require.NoError(t, err)
	require.Equal(t, 5000.0, got.PaidAmount)
	require.Equal(t, models.FeeStatusPaid, got.Status)
	require.Len(t, got.Payments, 2)

	// A fully paid fee takes no further payments.
	_, err = svc.RecordCashPayment(f.tenant.ID, fee.ID, 1)
	require.Equal(t, KindConflict, KindOf(err))
}

func TestOnlinePaymentFlow(t *testing.T) {
	f := newFixture(t)
	svc := newFeeService(f)
	student := f.newStudent(t, "Online Payer")
	fee := f.newFee(t, svc, student.ID, 3000)

	order, err := svc.CreateOnlineOrder(f.tenant.ID, fee.ID)
	require.NoError(t, err)
	require.NotEmpty(t, order.OrderID)
	require.Equal(t, models.PaymentStatusCreated, order.Payment.Status)
	require.Equal(t, 3000.0, order.Payment.Amount)

	t.Run("bad signature marks the payment failed", func(t *testing.T) {
		rejected, err := svc.ConfirmOnlinePayment(f.tenant.ID, ConfirmPaymentInput{
			OrderID:   order.OrderID,
			PaymentID: "pay_test_1",
			Signature: "deadbeef",
		})
		require.Equal(t, KindValidation, KindOf(err))
		require.Equal(t, models.PaymentStatusFailed, rejected.Status)

		// The FAILED mark must be committed, not rolled back with the
		// rejection: a second session has to see it.
		var failed models.Payment
		require.NoError(t, f.db.Session(&gorm.Session{NewDB: true}).
			Where("gateway_order_id = ?", order.OrderID).First(&failed).Error)
		require.Equal(t, models.PaymentStatusFailed, failed.Status)

		got, err := svc.GetFee(f.tenant.ID, fee.ID)
		require.NoError(t, err)
		require.Equal(t, 0.0, got.PaidAmount)
	})

	t.Run("valid signature captures and settles the fee", func(t *testing.T) {
		sig := signOrder(order.OrderID, "pay_test_2", "test-webhook-secret")
		payment, err := svc.ConfirmOnlinePayment(f.tenant.ID, ConfirmPaymentInput{
			OrderID:   order.OrderID,
			PaymentID: "pay_test_2",
			Signature: sig,
		})
		require.NoError(t, err)
		require.Equal(t, models.PaymentStatusCaptured, payment.Status)
		require.Equal(t, "pay_test_2", payment.GatewayPaymentID)

		got, err := svc.GetFee(f.tenant.ID, fee.ID)
		require.NoError(t, err)
		require.Equal(t, models.FeeStatusPaid, got.Status)

		// Replaying the confirmation is refused.
		_, err = svc.ConfirmOnlinePayment(f.tenant.ID, ConfirmPaymentInput{
			OrderID:   order.OrderID,
			PaymentID: "pay_test_2",
			Signature: sig,
		})
		require.Equal(t, KindConflict, KindOf(err))
	})
}

// Paise conversion must round, not truncate: 10.05 rupees is 1005 paise
// even when the float product lands at 1004.9999....
func TestCreateOnlineOrderRoundsPaise(t *testing.T) {
	f := newFixture(t)
	gateway := &stubGateway{}
	svc := NewFeeService(f.db, gateway, "test-webhook-secret")
	student := f.newStudent(t, "Exact Change")
	fee := f.newFee(t, svc, student.ID, 10.05)

	_, err := svc.CreateOnlineOrder(f.tenant.ID, fee.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1005), gateway.lastAmount)
}

func TestConfirmOnlinePaymentUnknownOrder(t *testing.T) {
	f := newFixture(t)
	svc := newFeeService(f)

	_, err := svc.ConfirmOnlinePayment(f.tenant.ID, ConfirmPaymentInput{
		OrderID:   "order_missing",
		PaymentID: "pay_x",
		Signature: "sig",
	})
	require.Equal(t, KindNotFound, KindOf(err))
}
