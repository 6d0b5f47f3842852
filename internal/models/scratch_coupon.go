package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScratchStatus represents the lifecycle state of a scratch coupon
type ScratchStatus string

const (
	ScratchStatusAvailable ScratchStatus = "disponivel"
	ScratchStatusScratched ScratchStatus = "raspado"
)

// ScratchCoupon is an admin-issued instant-win voucher. The status moves
// from disponivel to raspado exactly once, triggered by the owning
// customer's reveal action.
type ScratchCoupon struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CPF              string             `bson:"cpf" json:"cpf"`
	FullName         string             `bson:"fullName" json:"fullName"`
	Prize            string             `bson:"premio" json:"premio"`
	PurchaseValue    float64            `bson:"purchaseValue" json:"purchaseValue"`
	PurchaseDate     string             `bson:"purchaseDate" json:"purchaseDate"`
	PurchaseLocation string             `bson:"purchaseLocation" json:"purchaseLocation"`
	PurchasePhone    string             `bson:"purchasePhone" json:"purchasePhone"`
	CouponNumber     string             `bson:"couponNumber,omitempty" json:"couponNumber,omitempty"`
	Status           ScratchStatus      `bson:"status" json:"status"`
	IssuedAt         time.Time          `bson:"liberadoEm" json:"liberadoEm"`
	ScratchedAt      *time.Time         `bson:"raspadoEm,omitempty" json:"raspadoEm,omitempty"`
}

// ScratchTemplate carries the reusable fields of an existing scratch
// coupon, prefilled for a new issuance (operator convenience).
type ScratchTemplate struct {
	CPF              string  `json:"cpf"`
	FullName         string  `json:"fullName"`
	Prize            string  `json:"premio"`
	PurchaseValue    float64 `json:"purchaseValue"`
	PurchaseDate     string  `json:"purchaseDate"`
	PurchaseLocation string  `json:"purchaseLocation"`
	PurchasePhone    string  `json:"purchasePhone"`
}
