package provider

import (
	"context"
	"fmt"

	"adminsearch/internal/domain"
)

// Demo catalog used by the local provider
var (
	seedProducts = []domain.Product{
		{ID: "1", Name: "iPhone 15 Pro", Status: domain.StatusActive},
		{ID: "2", Name: "Samsung Galaxy S24", Status: domain.StatusActive},
		{ID: "3", Name: "MacBook Pro M3", Status: domain.StatusActive},
		{ID: "4", Name: "iPad Air", Status: domain.StatusInactive},
		{ID: "5", Name: "AirPods Pro", Status: domain.StatusActive},
		{ID: "6", Name: "Sony WH-1000XM5", Status: domain.StatusActive},
		{ID: "7", Name: "Nintendo Switch", Status: domain.StatusDiscontinued},
		{ID: "8", Name: "PlayStation 5", Status: domain.StatusActive},
		{ID: "9", Name: "Xbox Series X", Status: domain.StatusInactive},
		{ID: "10", Name: "Dell XPS 13", Status: domain.StatusActive},
		{ID: "11", Name: "Surface Pro 9", Status: domain.StatusActive},
		{ID: "12", Name: "Google Pixel 8", Status: domain.StatusActive},
		{ID: "13", Name: "OnePlus 12", Status: domain.StatusInactive},
		{ID: "14", Name: "LG OLED TV", Status: domain.StatusActive},
		{ID: "15", Name: "Samsung QLED TV", Status: domain.StatusDiscontinued},
		{ID: "16", Name: "Apple Watch Series 9", Status: domain.StatusActive},
		{ID: "17", Name: "Garmin Fenix 7", Status: domain.StatusActive},
		{ID: "18", Name: "Fitbit Versa 4", Status: domain.StatusInactive},
		{ID: "19", Name: "Canon EOS R5", Status: domain.StatusActive},
		{ID: "20", Name: "Sony A7 IV", Status: domain.StatusActive},
		{ID: "21", Name: "Nike Air Max 270", Status: domain.StatusActive},
		{ID: "22", Name: "Adidas Ultraboost 22", Status: domain.StatusActive},
		{ID: "23", Name: "Jordan 1 Retro", Status: domain.StatusInactive},
		{ID: "24", Name: "Yeezy Boost 350", Status: domain.StatusDiscontinued},
		{ID: "25", Name: "Tesla Model 3", Status: domain.StatusActive},
		{ID: "26", Name: "BMW i4", Status: domain.StatusActive},
		{ID: "27", Name: "Mercedes EQS", Status: domain.StatusInactive},
		{ID: "28", Name: "Audi e-tron", Status: domain.StatusActive},
		{ID: "29", Name: "Dyson V15", Status: domain.StatusActive},
		{ID: "30", Name: "Roomba i7+", Status: domain.StatusActive},
		{ID: "31", Name: "KitchenAid Mixer", Status: domain.StatusActive},
		{ID: "32", Name: "Instant Pot", Status: domain.StatusInactive},
		{ID: "33", Name: "Vitamix A3500", Status: domain.StatusActive},
		{ID: "34", Name: "Breville Barista", Status: domain.StatusDiscontinued},
		{ID: "35", Name: "Nespresso Vertuo", Status: domain.StatusActive},
		{ID: "36", Name: "Herman Miller Chair", Status: domain.StatusActive},
		{ID: "37", Name: "Standing Desk", Status: domain.StatusActive},
		{ID: "38", Name: "Monitor 4K", Status: domain.StatusInactive},
		{ID: "39", Name: "Mechanical Keyboard", Status: domain.StatusActive},
		{ID: "40", Name: "Gaming Mouse", Status: domain.StatusActive},
		{ID: "41", Name: "Wireless Headphones", Status: domain.StatusActive},
		{ID: "42", Name: "Bluetooth Speaker", Status: domain.StatusActive},
		{ID: "43", Name: "Smart Watch", Status: domain.StatusInactive},
		{ID: "44", Name: "Fitness Tracker", Status: domain.StatusDiscontinued},
		{ID: "45", Name: "Tablet 10 inch", Status: domain.StatusActive},
		{ID: "46", Name: "Laptop Gaming", Status: domain.StatusActive},
		{ID: "47", Name: "Desktop PC", Status: domain.StatusActive},
		{ID: "48", Name: "Graphics Card RTX", Status: domain.StatusInactive},
		{ID: "49", Name: "RAM 32GB", Status: domain.StatusActive},
		{ID: "50", Name: "SSD 1TB", Status: domain.StatusActive},
	}

	seedCategories = []domain.Category{
		{ID: "cat1", Name: "Electronics", Status: domain.StatusActive, ProductCount: 25},
		{ID: "cat2", Name: "Smartphones", Status: domain.StatusActive, ProductCount: 8},
		{ID: "cat3", Name: "Laptops", Status: domain.StatusActive, ProductCount: 12},
		{ID: "cat4", Name: "Audio", Status: domain.StatusActive, ProductCount: 6},
		{ID: "cat5", Name: "Gaming", Status: domain.StatusActive, ProductCount: 15},
		{ID: "cat6", Name: "Cameras", Status: domain.StatusActive, ProductCount: 4},
		{ID: "cat7", Name: "Wearables", Status: domain.StatusActive, ProductCount: 7},
		{ID: "cat8", Name: "Home Appliances", Status: domain.StatusActive, ProductCount: 18},
		{ID: "cat9", Name: "Fashion", Status: domain.StatusActive, ProductCount: 22},
		{ID: "cat10", Name: "Shoes", Status: domain.StatusActive, ProductCount: 14},
		{ID: "cat11", Name: "Automotive", Status: domain.StatusActive, ProductCount: 5},
		{ID: "cat12", Name: "Sports", Status: domain.StatusActive, ProductCount: 9},
		{ID: "cat13", Name: "Books", Status: domain.StatusInactive, ProductCount: 0},
		{ID: "cat14", Name: "Toys", Status: domain.StatusDiscontinued, ProductCount: 0},
		{ID: "cat15", Name: "Furniture", Status: domain.StatusActive, ProductCount: 11},
		{ID: "cat16", Name: "Kitchen", Status: domain.StatusActive, ProductCount: 8},
		{ID: "cat17", Name: "Office", Status: domain.StatusActive, ProductCount: 13},
		{ID: "cat18", Name: "Health", Status: domain.StatusActive, ProductCount: 6},
		{ID: "cat19", Name: "Beauty", Status: domain.StatusInactive, ProductCount: 0},
		{ID: "cat20", Name: "Travel", Status: domain.StatusActive, ProductCount: 3},
	}

	seedMembers = []struct {
		category string
		products []string
	}{
		{"cat1", []string{"1", "2", "3", "4", "5", "6", "8", "10", "11", "12", "14", "16", "19", "38", "45", "47", "48", "49", "50"}},
		{"cat2", []string{"1", "2", "12", "13"}},
		{"cat3", []string{"3", "10", "11", "46"}},
		{"cat4", []string{"5", "6", "41", "42"}},
		{"cat5", []string{"7", "8", "9", "39", "40", "46", "48"}},
		{"cat6", []string{"19", "20"}},
		{"cat7", []string{"16", "17", "18", "43", "44"}},
		{"cat8", []string{"29", "30", "31", "32", "33", "34", "35"}},
		{"cat9", []string{"21", "22", "23", "24"}},
		{"cat10", []string{"21", "22", "23", "24"}},
		{"cat11", []string{"25", "26", "27", "28"}},
		{"cat12", []string{"17", "21", "22", "44"}},
		{"cat15", []string{"36", "37"}},
		{"cat16", []string{"31", "32", "33", "34", "35"}},
		{"cat17", []string{"36", "37", "38", "39", "40", "47"}},
		{"cat18", []string{"17", "18", "44"}},
		{"cat20", []string{"5", "41", "42"}},
	}
)

// Seed writes the demo catalog into w
func Seed(ctx context.Context, w CatalogWriter) error {
	for _, p := range seedProducts {
		if err := w.PutProduct(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}
	for _, c := range seedCategories {
		if err := w.PutCategory(ctx, c); err != nil {
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}
	}
	for _, m := range seedMembers {
		if err := w.Assign(ctx, m.category, m.products...); err != nil {
			return fmt.Errorf("seed category %s members: %w", m.category, err)
		}
	}
	return nil
}
