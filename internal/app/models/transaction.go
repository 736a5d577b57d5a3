package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionStatusPayment string

const (
	TransactionPending   TransactionStatusPayment = "pending"
	TransactionCompleted TransactionStatusPayment = "completed"
	TransactionFailed    TransactionStatusPayment = "failed"
	TransactionWaived    TransactionStatusPayment = "waived"
)

// Transaction records the monetary outcome of a confirmed booking. Waived
// transactions cover subscription-quota bookings, keeping the audit trail
// uniform whether or not money moved.
type Transaction struct {
	ID                    primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	SessionID             string                   `bson:"session_id" json:"sessionId"`
	UserID                string                   `bson:"user_id" json:"userId"`
	AppointmentID         string                   `bson:"appointment_id" json:"appointmentId"`
	DoctorID              string                   `bson:"doctor_id" json:"doctorId"`
	ClinicID              string                   `bson:"clinic_id" json:"clinicId"`
	AppointmentDate       string                   `bson:"appointment_date" json:"appointmentDate"`
	Amount                int64                    `bson:"amount" json:"amount"`
	Currency              string                   `bson:"currency" json:"currency"`
	PaymentMethod         string                   `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	PaymentID             string                   `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Status                TransactionStatusPayment `bson:"status" json:"status"`
	CoveredBySubscription bool                     `bson:"covered_by_subscription" json:"coveredBySubscription"`
	CreatedAt             time.Time                `bson:"created_at" json:"createdAt"`
	UpdatedAt             time.Time                `bson:"updated_at" json:"updatedAt"`
}
