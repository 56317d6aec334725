package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"gharseva/database"
	"gharseva/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the catalog and coupon collections with realistic development data.
func main() {
	database.InitDB()
	db := database.MongoClient.Database("gharseva")
	serviceColl := db.Collection("services")
	couponColl := db.Collection("coupons")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := serviceColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear services collection: %v", err)
	}
	if _, err := couponColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear coupons collection: %v", err)
	}

	now := time.Now()

	type seed struct {
		category        string
		serviceCategory string
		packageName     string
		tag             string
		price           int
		discount        int
		estimatedTime   string
		isPackage       bool
	}

	seeds := []seed{
		{"AC Service", "Split AC", "Split AC Deep Clean", "bestseller", 599, 10, "60 mins", false},
		{"AC Service", "Split AC", "Split AC Anti-Rust Service", "", 749, 0, "75 mins", false},
		{"AC Service", "Window AC", "Window AC Service", "", 499, 5, "45 mins", false},
		{"AC Service", "Installation", "Split AC Installation", "", 1299, 0, "90 mins", false},
		{"AC Service", "Installation", "AC Uninstallation", "", 699, 0, "45 mins", false},
		{"AC Service", "Repair", "AC Gas Refill", "popular", 2499, 15, "120 mins", false},
		{"AC Service", "Repair", "AC Not Cooling Repair", "", 299, 0, "30 mins", false},
		{"AC Service", "Accessories", "AC Stabilizer Supply", "", 1899, 0, "20 mins", false},

		{"Salon for Women", "Facial", "Fruit Facial", "trending", 899, 20, "60 mins", false},
		{"Salon for Women", "Waxing", "Full Arms & Legs Waxing", "", 649, 10, "45 mins", false},
		{"Salon for Women", "Bridal", "Bridal Makeup Trial", "", 2999, 0, "120 mins", false},
		{"Salon for Men", "Haircut", "Men's Haircut at Home", "popular", 249, 0, "30 mins", false},
		{"Salon for Men", "Beard Styling", "Beard Trim & Shape", "", 149, 0, "20 mins", false},

		{"Cleaning", "Bathroom Cleaning", "Classic Bathroom Cleaning", "bestseller", 449, 10, "60 mins", false},
		{"Cleaning", "Kitchen Cleaning", "Complete Kitchen Cleaning", "", 1199, 15, "150 mins", false},
		{"Cleaning", "Full Home Cleaning", "2 BHK Deep Clean", "", 3499, 20, "300 mins", true},
		{"Cleaning", "Sofa Cleaning", "5-Seater Sofa Shampoo", "", 799, 0, "90 mins", false},

		{"Electrician", "Fan", "Ceiling Fan Installation", "", 149, 0, "30 mins", false},
		{"Electrician", "Switch", "Switchboard Repair", "", 99, 0, "20 mins", false},
		{"Electrician", "Wiring", "House Wiring Inspection", "", 499, 0, "60 mins", false},

		{"Plumbing", "Tap", "Tap Leak Repair", "", 129, 0, "20 mins", false},
		{"Plumbing", "Geyser", "Geyser Installation", "popular", 449, 5, "45 mins", false},
		{"Plumbing", "RO", "RO Filter Replacement", "", 599, 0, "40 mins", false},

		{"Painting", "Interior Painting", "1 Room Repaint", "", 4999, 10, "2 days", true},
		{"Painting", "Waterproofing", "Bathroom Waterproofing", "", 6999, 0, "3 days", true},
	}

	var records []interface{}
	for _, s := range seeds {
		records = append(records, models.ServiceRecord{
			ID:              uuid.New().String(),
			Category:        s.category,
			ServiceCategory: s.serviceCategory,
			Tag:             s.tag,
			PackageName:     s.packageName,
			PriceAmount:     s.price,
			Discount:        s.discount,
			EstimatedTime:   s.estimatedTime,
			IsPackage:       s.isPackage,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	if _, err := serviceColl.InsertMany(ctx, records); err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}

	expiry := now.AddDate(0, 1, 0)
	coupons := []interface{}{
		models.Coupon{
			Code:          "WELCOME50",
			Description:   "Flat ₹50 off on your first order",
			DiscountType:  models.DiscountTypeFlat,
			DiscountValue: 50,
			MinOrderValue: 199,
			Active:        true,
			ExpiresAt:     &expiry,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		models.Coupon{
			Code:          "FESTIVE20",
			Description:   "20% off up to ₹200 on orders above ₹500",
			DiscountType:  models.DiscountTypePercentage,
			DiscountValue: 20,
			MinOrderValue: 500,
			MaxDiscount:   200,
			Active:        true,
			ExpiresAt:     &expiry,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		models.Coupon{
			Code:          "EXPIRED10",
			Description:   "Lapsed campaign kept for regression checks",
			DiscountType:  models.DiscountTypeFlat,
			DiscountValue: 10,
			Active:        true,
			ExpiresAt:     func() *time.Time { t := now.AddDate(0, -1, 0); return &t }(),
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	if _, err := couponColl.InsertMany(ctx, coupons); err != nil {
		log.Fatalf("Failed to seed coupons: %v", err)
	}

	fmt.Printf("Seeded %d services and %d coupons\n", len(records), len(coupons))
}
