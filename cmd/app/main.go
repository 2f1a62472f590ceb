package main

import (
	"os"

	"farmsale/cmd"
	"farmsale/internal/adapters/out/sqlite"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	db, err := sqlite.OpenDatabase(configs.DBPath)
	if err != nil {
		log.Fatalf("opening database at %s: %v", configs.DBPath, err)
	}

	if _, err = cmd.NewCompositionRoot(configs, db); err != nil {
		log.Fatalf("wiring application: %v", err)
	}

	log.Infof("store ready at %s, schema up to date", configs.DBPath)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		DBPath:            goDotEnvVariable("DB_PATH"),
		InvoiceOutputDir:  goDotEnvVariable("INVOICE_OUTPUT_DIR"),
		InvoiceExportDir:  goDotEnvVariable("INVOICE_EXPORT_DIR"),
		SellerName:        goDotEnvVariable("SELLER_NAME"),
		SellerAddress:     goDotEnvVariable("SELLER_ADDRESS"),
		SellerContact:     goDotEnvVariable("SELLER_CONTACT"),
		SellerBankDetails: goDotEnvVariable("SELLER_BANK_DETAILS"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
