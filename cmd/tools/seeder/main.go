package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seedPriceList(db)
	seedModifiers(db)

	log.Println("Seeding completed successfully!")
}

func seedPriceList(db *sql.DB) {
	entries := []struct {
		Category   string
		Name       string
		Unit       string
		BasePrice  int64
		PriceBlack int64
		PriceColor int64
	}{
		{"CLOTHING", "Coat cleaning", "pcs", 15000, 0, 0},
		{"CLOTHING", "Suit cleaning (two-piece)", "pcs", 20000, 0, 0},
		{"CLOTHING", "Dress cleaning", "pcs", 8000, 0, 0},
		{"CLOTHING", "Trousers cleaning", "pcs", 6000, 0, 0},
		{"CLOTHING", "Winter jacket cleaning", "pcs", 18000, 0, 0},
		{"LAUNDRY", "Shirt wash and press", "pcs", 3000, 0, 0},
		{"LAUNDRY", "Bed linen set", "set", 9000, 0, 0},
		{"LAUNDRY", "Towel wash", "kg", 1500, 0, 0},
		{"IRONING", "Shirt ironing", "pcs", 1200, 0, 0},
		{"IRONING", "Trousers ironing", "pcs", 1500, 0, 0},
		{"DYEING", "Jacket dyeing", "pcs", 12000, 18000, 22000},
		{"DYEING", "Trousers dyeing", "pcs", 9000, 13000, 16000},
		{"LEATHER", "Leather jacket cleaning", "pcs", 35000, 0, 0},
		{"LEATHER", "Leather bag cleaning", "pcs", 25000, 0, 0},
		{"TEXTILE", "Curtain cleaning", "kg", 4000, 0, 0},
		{"TEXTILE", "Carpet cleaning", "sqm", 5500, 0, 0},
	}

	fmt.Println("Seeding price list...")
	for i, e := range entries {
		var priceBlack, priceColor sql.NullInt64
		if e.PriceBlack > 0 {
			priceBlack = sql.NullInt64{Int64: e.PriceBlack, Valid: true}
		}
		if e.PriceColor > 0 {
			priceColor = sql.NullInt64{Int64: e.PriceColor, Valid: true}
		}
		_, err := db.Exec(`
			INSERT INTO price_list_items (category_code, name, unit_of_measure, base_price, price_black, price_color, active, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, true, $7)
			ON CONFLICT (category_code, name) DO UPDATE SET
				base_price = EXCLUDED.base_price,
				price_black = EXCLUDED.price_black,
				price_color = EXCLUDED.price_color,
				unit_of_measure = EXCLUDED.unit_of_measure,
				sort_order = EXCLUDED.sort_order;
		`, e.Category, e.Name, e.Unit, e.BasePrice, priceBlack, priceColor, i)
		if err != nil {
			log.Printf("Failed to seed price list entry %s: %v", e.Name, err)
		}
	}
}

func seedModifiers(db *sql.DB) {
	modifiers := []struct {
		Code         string
		Name         string
		Description  string
		Type         string
		Value        int64
		Restrictions []string
	}{
		{"GENTLE_CLEAN", "Gentle cleaning", "Delicate programme for fragile fabrics", "PERCENTAGE", 1550, nil},
		{"HEAVY_SOILING", "Heavy soiling", "Extra treatment for heavily soiled items", "PERCENTAGE", 2500, nil},
		{"STAIN_REMOVAL", "Stain removal", "Targeted stain treatment", "PERCENTAGE", 2000, nil},
		{"HAND_FINISH", "Hand finishing", "Manual pressing and finishing", "PERCENTAGE", 1000, nil},
		{"BUTTON_FIX", "Button replacement", "Replace missing or broken buttons", "FIXED", 500, nil},
		{"MINOR_REPAIR", "Minor repair", "Small seam and lining repairs", "FIXED", 1500, nil},
		{"LEATHER_PREP", "Leather preparation", "Pre-treatment for leather surfaces", "PERCENTAGE", 2000, []string{"LEATHER"}},
		{"LEATHER_IMPREGNATION", "Leather impregnation", "Water-repellent finish for leather", "FIXED", 3000, []string{"LEATHER"}},
		{"CURTAIN_HOOKS", "Curtain hook removal", "Remove and refit curtain hooks", "FIXED", 800, []string{"TEXTILE"}},
	}

	fmt.Println("Seeding price modifiers...")
	for i, m := range modifiers {
		_, err := db.Exec(`
			INSERT INTO price_modifiers (code, name, description, type, value, active, sort_order, category_restrictions)
			VALUES ($1, $2, $3, $4, $5, true, $6, $7)
			ON CONFLICT (code) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				type = EXCLUDED.type,
				value = EXCLUDED.value,
				sort_order = EXCLUDED.sort_order,
				category_restrictions = EXCLUDED.category_restrictions;
		`, m.Code, m.Name, m.Description, m.Type, m.Value, i, pq.Array(m.Restrictions))
		if err != nil {
			log.Printf("Failed to seed modifier %s: %v", m.Code, err)
		}
	}
}
