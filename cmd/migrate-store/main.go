// Command migrate-store copies every collection between the file document
// store and the MySQL document store, in either direction. Used when a
// deployment switches DATA_BACKEND.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
)

var collections = []string{
	datastore.CollectionRequests,
	datastore.CollectionCriteria,
	datastore.CollectionTimeline,
	datastore.CollectionBatches,
	datastore.CollectionNotifications,
	datastore.CollectionUsers,
	datastore.CollectionWorkTypes,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var (
		direction string
		dataPath  string
	)
	flag.StringVar(&direction, "direction", "file-to-mysql", "migration direction: file-to-mysql or mysql-to-file")
	flag.StringVar(&dataPath, "data", "./data", "path of the file store")
	flag.Parse()

	fileStore, err := datastore.NewFileStore(dataPath)
	if err != nil {
		log.Fatal("Failed to open file store:", err)
	}

	config.InitDB()
	gormStore, err := datastore.NewGormStore(config.DB)
	if err != nil {
		log.Fatal("Failed to open mysql store:", err)
	}

	var src, dst datastore.Store
	switch direction {
	case "file-to-mysql":
		src, dst = fileStore, gormStore
	case "mysql-to-file":
		src, dst = gormStore, fileStore
	default:
		log.Printf("Unknown direction %q", direction)
		flag.Usage()
		os.Exit(2)
	}

	for _, collection := range collections {
		var docs []json.RawMessage
		if err := src.Load(collection, &docs); err != nil {
			log.Fatalf("Failed to load %s: %v", collection, err)
		}
		if err := dst.Save(collection, docs); err != nil {
			log.Fatalf("Failed to save %s: %v", collection, err)
		}
		log.Printf("Migrated %s (%d documents)", collection, len(docs))
	}

	log.Println("Store migration completed!")
}
