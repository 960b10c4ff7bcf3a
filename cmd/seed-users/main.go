// Command seed-users provisions accounts in the users collection from a
// JSON file of users with plaintext passwords, hashing each password with
// bcrypt. Existing usernames are updated in place.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
)

type seedUser struct {
	models.User
	Password string `json:"password"`
}

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var file string
	flag.StringVar(&file, "file", "seed_users.json", "path to the seed users JSON file")
	flag.Parse()

	config.InitStore()

	raw, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", file, err)
	}

	var seeds []seedUser
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	var users []models.User
	if err := config.Store.Load(datastore.CollectionUsers, &users); err != nil {
		log.Fatal("Failed to load users:", err)
	}

	for _, seed := range seeds {
		if seed.Username == "" {
			log.Println("Skipping entry without username")
			continue
		}

		hash := seed.PasswordHash
		switch {
		case seed.Password != "":
			hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Failed to hash password for user %s: %v\n", seed.Username, err)
				continue
			}
			hash = string(hashed)
		case strings.HasPrefix(hash, "$2"):
			// Already a bcrypt hash, keep as is.
		default:
			log.Printf("User %s has neither a password nor a bcrypt hash, skipping\n", seed.Username)
			continue
		}

		user := seed.User
		user.PasswordHash = hash

		updated := false
		for i := range users {
			if users[i].Username == user.Username {
				users[i] = user
				updated = true
				break
			}
		}
		if !updated {
			users = append(users, user)
		}

		log.Printf("Provisioned user %s (%s)\n", user.Username, user.Role)
	}

	if err := config.Store.Save(datastore.CollectionUsers, users); err != nil {
		log.Fatal("Failed to save users:", err)
	}

	log.Println("User seeding completed!")
}
