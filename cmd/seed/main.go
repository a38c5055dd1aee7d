package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hotelreserve/internal/database"
	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/money"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelreserve.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Review{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@hotelreserve.test",
		PasswordHash: string(adminHash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@hotelreserve.test / admin123")

	managers := make([]domain.User, 0, 2)
	for i := 1; i <= 2; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
		m := domain.User{
			Email:        fmt.Sprintf("manager%d@hotelreserve.test", i),
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Manager %d", i),
			Role:         domain.RoleManager,
		}
		db.Create(&m)
		managers = append(managers, m)
	}

	customers := make([]domain.User, 0, 3)
	for i := 1; i <= 3; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		c := domain.User{
			Email:        fmt.Sprintf("customer%d@hotelreserve.test", i),
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Customer %d", i),
			Role:         domain.RoleCustomer,
		}
		db.Create(&c)
		customers = append(customers, c)
	}

	log.Println("Creating hotels and rooms...")

	hotelNames := []string{"Everest View", "Lakeside Palace", "City Garden"}
	locations := []string{"Kathmandu", "Pokhara", "Lalitpur"}
	rates := []string{"80.00", "120.50", "300.00", "45.00"}
	types := []domain.RoomType{domain.RoomSingle, domain.RoomDouble, domain.RoomSuite, domain.RoomDeluxe}

	hotels := make([]domain.Hotel, 0, len(hotelNames))
	for i, name := range hotelNames {
		h := domain.Hotel{
			OwnerID:     managers[i%len(managers)].ID,
			Name:        name,
			Description: "Comfortable rooms close to the city center",
			Location:    locations[i],
		}
		db.Create(&h)
		hotels = append(hotels, h)

		for j := 0; j < 4; j++ {
			rate, _ := money.Parse(rates[j])
			db.Create(&domain.Room{
				HotelID:       h.ID,
				RoomNumber:    101 + j,
				RoomType:      types[j],
				Capacity:      1 + j,
				PricePerNight: rate,
				IsAvailable:   true,
			})
		}
	}

	log.Println("Creating demo bookings...")

	var rooms []domain.Room
	db.Order("id ASC").Limit(3).Find(&rooms)

	stay := func(room domain.Room, customer domain.User, daysFromNow, nights int, status domain.BookingStatus) domain.Booking {
		checkin := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, daysFromNow)
		checkout := checkin.AddDate(0, 0, nights)
		b := domain.Booking{
			ID:             uuid.NewString(),
			RoomID:         room.ID,
			CustomerID:     customer.ID,
			Status:         status,
			CheckedInDate:  checkin,
			CheckedOutDate: checkout,
			Nights:         nights,
			TotalAmount:    room.PricePerNight.MulNights(nights),
		}
		db.Create(&b)
		return b
	}

	stay(rooms[0], customers[0], 7, 3, domain.BookingPending)
	stay(rooms[1], customers[1], -30, 2, domain.BookingCompleted)
	cancelled := stay(rooms[2], customers[2], 14, 1, domain.BookingPending)
	db.Model(&cancelled).Update("status", domain.BookingCancelled)

	log.Println("Creating a settled payment and a review...")

	completed := stay(rooms[0], customers[0], -60, 2, domain.BookingCompleted)
	txid := "seed-txn-0001"
	db.Create(&domain.Payment{
		ID:            uuid.NewString(),
		BookingID:     completed.ID,
		Amount:        completed.TotalAmount,
		Method:        domain.MethodCard,
		Status:        domain.PaymentCompleted,
		TransactionID: &txid,
	})

	db.Create(&domain.Review{
		HotelID: hotels[0].ID,
		UserID:  customers[0].ID,
		Rating:  5,
		Comment: "Great stay, would book again",
	})

	log.Println("Seed completed")
	log.Println("Test accounts:")
	log.Println("Admin:     admin@hotelreserve.test / admin123")
	log.Println("Managers:  manager1..2@hotelreserve.test / manager123")
	log.Println("Customers: customer1..3@hotelreserve.test / customer123")
}
