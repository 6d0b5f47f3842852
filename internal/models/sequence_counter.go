package models

// CouponCounterID is the fixed _id of the coupon sequence document in
// the counters collection.
const CouponCounterID = "cupons"

// SequenceCounter stores the last issued value of the coupon sequence.
// It is only ever mutated through the store's atomic $inc, so the value
// is monotonically non-decreasing.
type SequenceCounter struct {
	ID         string `bson:"_id" json:"id"`
	LastNumber int64  `bson:"lastNumber" json:"lastNumber"`
}
