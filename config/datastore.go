package config

import (
	"log"
	"os"
	"strings"

	"compensation-request-api/datastore"
)

// Store is the shared document store handle. Collections live either in
// flat JSON files (default) or in MySQL when DATA_BACKEND=mysql.
var Store datastore.Store

// InitStore selects and initializes the document store backend.
func InitStore() {
	backend := strings.ToLower(os.Getenv("DATA_BACKEND"))

	if backend == "mysql" {
		InitDB()
		store, err := datastore.NewGormStore(DB)
		if err != nil {
			log.Fatal("Failed to initialize mysql document store:", err)
		}
		Store = store
		log.Println("Document store backend: mysql")
		return
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./data"
	}
	store, err := datastore.NewFileStore(dataPath)
	if err != nil {
		log.Fatal("Failed to initialize file document store:", err)
	}
	Store = store
	log.Printf("Document store backend: file (%s)", dataPath)
}
