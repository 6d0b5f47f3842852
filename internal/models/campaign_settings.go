package models

import "time"

// CampaignSettingsID is the fixed _id of the singleton settings document.
const CampaignSettingsID = "raffle"

// CampaignSettings is the singleton campaign configuration. Read by the
// public registration/countdown pages, written only by an administrator.
type CampaignSettings struct {
	ID                string     `bson:"_id" json:"id"`
	ValuePerCoupon    float64    `bson:"valuePerCoupon" json:"valuePerCoupon"`
	CampaignStartDate *time.Time `bson:"campaignStartDate,omitempty" json:"campaignStartDate,omitempty"`
	CampaignEndDate   *time.Time `bson:"campaignEndDate,omitempty" json:"campaignEndDate,omitempty"`
	Winner            string     `bson:"winner,omitempty" json:"winner,omitempty"`
	UpdatedAt         time.Time  `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy         string     `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}
