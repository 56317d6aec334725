package models

import "time"

// IncludedService is one line of a package's contents as shown on the card.
type IncludedService struct {
	Name   string `bson:"name" json:"name"`
	Detail string `bson:"detail,omitempty" json:"detail,omitempty"`
}

// ServiceRecord represents one bookable package or atomic service in the catalog.
// Records are admin-managed; optional classification fields (tag, serviceCategory)
// may be empty and must be tolerated everywhere.
type ServiceRecord struct {
	ID              string `bson:"id" json:"id"`
	Category        string `bson:"category" json:"category"`                               // coarse vertical, e.g. "AC"
	ServiceCategory string `bson:"serviceCategory,omitempty" json:"serviceCategory"`       // fine-grained, admin-set
	Tag             string `bson:"tag,omitempty" json:"tag"`                               // free text
	PackageName     string `bson:"packageName" json:"packageName"`
	PriceAmount     int    `bson:"priceAmount" json:"priceAmount"`                         // whole rupees
	Discount        int    `bson:"discount,omitempty" json:"discount"`                     // percentage, 0 when absent
	EstimatedTime   string `bson:"estimatedTime,omitempty" json:"estimatedTime,omitempty"` // display string, e.g. "45 mins"
	PackageImage    string `bson:"packageImage,omitempty" json:"packageImage,omitempty"`
	IsPackage       bool   `bson:"isPackage" json:"isPackage"`

	IncludedServices []IncludedService `bson:"includedServices,omitempty" json:"includedServices,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
