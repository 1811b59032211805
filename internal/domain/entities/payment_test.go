package entities

import "testing"

func TestPaymentAwaitingCheckout(t *testing.T) {
	p := Payment{Status: PaymentStatusPending, StatusDetail: StatusDetailAwaitingCheckout}
	if !p.AwaitingCheckout() {
		t.Fatalf("expected awaiting-checkout state")
	}

	p.StatusDetail = "pending_waiting_transfer"
	if p.AwaitingCheckout() {
		t.Fatalf("pending pix must not count as awaiting checkout")
	}
}

func TestPaymentCanCapture(t *testing.T) {
	cases := []struct {
		status PaymentStatus
		detail string
		want   bool
	}{
		{PaymentStatusPending, "pending_waiting_payment", true},
		{PaymentStatusInProcess, "pending_review_manual", true},
		{PaymentStatusPending, StatusDetailAwaitingCheckout, false},
		{PaymentStatusApproved, "accredited", false},
		{PaymentStatusRejected, "cc_rejected_other_reason", false},
		{PaymentStatusCancelled, "", false},
	}
	for _, tc := range cases {
		p := Payment{Status: tc.status, StatusDetail: tc.detail}
		if got := p.CanCapture(); got != tc.want {
			t.Fatalf("CanCapture %s/%s = %v, want %v", tc.status, tc.detail, got, tc.want)
		}
	}
}

func TestPaymentCanCancel(t *testing.T) {
	for _, status := range []PaymentStatus{PaymentStatusPending, PaymentStatusInProcess, PaymentStatusApproved, PaymentStatusRejected} {
		if !(Payment{Status: status}).CanCancel() {
			t.Fatalf("expected %s to be cancellable", status)
		}
	}
	for _, status := range []PaymentStatus{PaymentStatusCancelled, PaymentStatusRefunded, PaymentStatusChargedBack} {
		if (Payment{Status: status}).CanCancel() {
			t.Fatalf("expected %s to be final for cancel", status)
		}
	}
}

func TestPaymentRefundableAmount(t *testing.T) {
	p := Payment{Status: PaymentStatusApproved, TransactionAmount: 100, RefundAmount: 40}
	if !p.CanRefund() {
		t.Fatalf("approved payment must be refundable")
	}
	if got := p.RemainingRefundable(); got != 60 {
		t.Fatalf("expected 60 remaining, got %.2f", got)
	}

	p.Status = PaymentStatusPending
	if p.CanRefund() {
		t.Fatalf("pending payment must not be refundable")
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range ValidPaymentMethods() {
		if !ValidPaymentMethod(m) {
			t.Fatalf("expected %q to be valid", m)
		}
	}
	if ValidPaymentMethod("cheque") {
		t.Fatalf("expected cheque to be invalid")
	}
}
