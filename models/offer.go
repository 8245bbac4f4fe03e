package models

import "time"

// Offer is a time-bounded discount on a room.
type Offer struct {
	ID                 string    `bson:"id" json:"id"`
	Title              string    `bson:"title" json:"title"`
	Description        string    `bson:"description,omitempty" json:"description,omitempty"`
	DiscountPercentage int       `bson:"discountPercentage" json:"discountPercentage"`
	StartDate          time.Time `bson:"startDate" json:"startDate"`
	EndDate            time.Time `bson:"endDate" json:"endDate"`
	RoomID             string    `bson:"roomId" json:"roomId"`
	CreatedBy          string    `bson:"createdBy" json:"createdBy"`
	IsActive           bool      `bson:"isActive" json:"isActive"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ActiveAt reports whether the offer window covers t and the flag is set.
func (o *Offer) ActiveAt(t time.Time) bool {
	return o.IsActive && !o.StartDate.After(t) && !o.EndDate.Before(t)
}
