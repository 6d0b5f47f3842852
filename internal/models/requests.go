package models

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var cpfPattern = regexp.MustCompile(`^[0-9]{11}$`)

// RegisterCouponRequest is the public registration form payload
type RegisterCouponRequest struct {
	FullName      string  `json:"fullName"`
	CPF           string  `json:"cpf"`
	PurchaseRef   string  `json:"purchaseNumber"`
	PurchaseValue float64 `json:"purchaseValue"`
	PurchaseDate  string  `json:"purchaseDate"`
}

// Validate enforces the registration field rules
func (req *RegisterCouponRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.Required, validation.Length(2, 120)),
		validation.Field(&req.CPF, validation.Required, validation.Match(cpfPattern).Error("cpf must be exactly 11 digits")),
		validation.Field(&req.PurchaseRef, validation.Required),
		validation.Field(&req.PurchaseValue, validation.Min(0.0)),
	)
}

// IssueScratchCouponRequest is the admin scratch coupon issuance payload
type IssueScratchCouponRequest struct {
	CPF              string  `json:"cpf"`
	FullName         string  `json:"fullName"`
	Prize            string  `json:"premio"`
	PurchaseValue    float64 `json:"purchaseValue"`
	PurchaseDate     string  `json:"purchaseDate"`
	PurchaseLocation string  `json:"purchaseLocation"`
	PurchasePhone    string  `json:"purchasePhone"`
	CouponNumber     string  `json:"couponNumber"`
}

// Validate enforces the issuance field rules
func (req *IssueScratchCouponRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CPF, validation.Required, validation.Match(cpfPattern).Error("cpf must be exactly 11 digits")),
		validation.Field(&req.FullName, validation.Required, validation.Length(2, 120)),
		validation.Field(&req.Prize, validation.Required),
		validation.Field(&req.PurchaseValue, validation.Min(0.0)),
	)
}

// UpdateSettingsRequest is the admin campaign settings payload. Dates are
// RFC 3339 strings; empty clears the corresponding date.
type UpdateSettingsRequest struct {
	ValuePerCoupon    float64 `json:"valuePerCoupon"`
	CampaignStartDate string  `json:"campaignStartDate"`
	CampaignEndDate   string  `json:"campaignEndDate"`
}

// Validate enforces the settings field rules
func (req *UpdateSettingsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ValuePerCoupon, validation.Required, validation.Min(0.01)),
	)
}

// LoginRequest is the admin login payload
type LoginRequest struct {
	Password string `json:"password"`
}

// Validate enforces the login field rules
func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Password, validation.Required),
	)
}

// LookupResult bundles everything a cpf holds, shaped for the public
// lookup page. Both slices are empty, never nil, when nothing matches.
type LookupResult struct {
	Coupons        []CouponGroup    `json:"coupons"`
	ScratchCoupons []*ScratchCoupon `json:"scratchCoupons"`
}
