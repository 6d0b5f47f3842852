package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coupon represents one sequential raffle entry tied to a purchase.
// Coupons are written once by the registration flow and never mutated.
type Coupon struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FullName      string             `bson:"nome" json:"fullName"`
	CPF           string             `bson:"cpf" json:"cpf"`
	PurchaseRef   string             `bson:"numeroCompra" json:"purchaseNumber"`
	CouponNumber  string             `bson:"numeroCupom" json:"couponNumber"`
	PurchaseValue float64            `bson:"purchaseValue,omitempty" json:"purchaseValue,omitempty"`
	PurchaseDate  string             `bson:"purchaseDate,omitempty" json:"purchaseDate,omitempty"`
	RegisteredAt  time.Time          `bson:"dataCadastro" json:"registrationDate"`
}

// CouponGroup bundles the coupons issued for a single purchase,
// as shown on the public lookup page.
type CouponGroup struct {
	PurchaseRef string   `json:"purchaseNumber"`
	Codes       []string `json:"couponNumbers"`
}
