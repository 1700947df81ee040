package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sinding/booking-api/internal/config"
	"github.com/sinding/booking-api/internal/domain/booking"
	"github.com/sinding/booking-api/internal/pkg/database"
	"github.com/sinding/booking-api/internal/pkg/password"
)

func main() {
	pwd := flag.String("password", "", "operator password to hash and check against ADMIN_PASSWORD_HASH")
	listBookings := flag.Bool("bookings", false, "print stored bookings")
	flag.Parse()

	cfg := config.Load()

	fmt.Println("--- Operator login ---")
	fmt.Printf("Admin email: %s\n", cfg.AdminEmail)
	if cfg.AdminPasswordHash == "" {
		fmt.Println("WARNING: ADMIN_PASSWORD_HASH is empty, login is disabled")
	}

	if *pwd != "" {
		generatedHash, err := password.Hash(*pwd)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		fmt.Printf("Generated hash: %s\n", generatedHash)

		if cfg.AdminPasswordHash != "" {
			match := password.Verify(*pwd, cfg.AdminPasswordHash)
			fmt.Printf("Verification against ADMIN_PASSWORD_HASH: %v\n", match)
			if !match {
				fmt.Println("HASH MISMATCH! Set ADMIN_PASSWORD_HASH to the generated hash above.")
			}
		}
	}
	fmt.Println("----------------------")

	if !*listBookings {
		return
	}

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	bookings, err := booking.NewRepository(db).ListAll(context.Background())
	if err != nil {
		log.Printf("Failed to list bookings: %v", err)
		os.Exit(1)
	}

	fmt.Println("--- Bookings ---")
	for _, b := range bookings {
		fmt.Printf("#%d | %s | %s | %s | %v | NOK %.2f | %s\n",
			b.ID, b.CreatedAt.In(cfg.Location()).Format("2006-01-02 15:04"), b.Name, b.BookingDate, b.SessionLabels, b.TotalPrice, b.Status)
	}
	fmt.Printf("Total bookings found: %d\n", len(bookings))
}
