package main

import (
	"flag"
	"fmt"

	"github.com/manojgangula07/fee-receipt-manager1/app/config"
	"github.com/manojgangula07/fee-receipt-manager1/app/database"
	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" {
		fmt.Println("Usage: add_user -email <email> -password <password> -first-name <name> [-last-name <name>]")
		return
	}

	// Initialize database connection
	config.Load()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
