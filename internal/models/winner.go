package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Winner is a snapshot of a drawn coupon plus the draw timestamp.
// Fields are copied, not referenced, so deleting the source coupon
// later does not corrupt winner history.
type Winner struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FullName     string             `bson:"nome" json:"fullName"`
	CPF          string             `bson:"cpf" json:"cpf"`
	PurchaseRef  string             `bson:"numeroCompra" json:"purchaseNumber"`
	CouponNumber string             `bson:"numeroCupom" json:"couponNumber"`
	DrawDate     time.Time          `bson:"drawDate" json:"drawDate"`
}

// NewWinnerFromCoupon copies the drawn coupon into a winner record.
func NewWinnerFromCoupon(c *Coupon, drawDate time.Time) *Winner {
	return &Winner{
		FullName:     c.FullName,
		CPF:          c.CPF,
		PurchaseRef:  c.PurchaseRef,
		CouponNumber: c.CouponNumber,
		DrawDate:     drawDate,
	}
}
