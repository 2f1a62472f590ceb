package cmd

// Config carries the runtime settings read from the environment.
type Config struct {
	DBPath           string
	InvoiceOutputDir string
	InvoiceExportDir string

	SellerName        string
	SellerAddress     string
	SellerContact     string
	SellerBankDetails string
}
