// Package document renders invoice documents as printable HTML files.
package document

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"farmsale/internal/core/domain/model/invoice"
)

// Seller is the business identity printed in the invoice header and footer.
type Seller struct {
	Name        string
	Address     string
	Contact     string
	BankDetails string
}

// HTMLInvoiceGenerator implements ports.DocumentGenerator. It renders one
// A4-styled HTML page per invoice into the output directory and returns the
// file path as the document location.
type HTMLInvoiceGenerator struct {
	outputDir string
	seller    Seller
	template  *template.Template
}

// NewHTMLInvoiceGenerator creates a generator writing into outputDir.
func NewHTMLInvoiceGenerator(outputDir string, seller Seller) (*HTMLInvoiceGenerator, error) {
	tmpl, err := template.New("invoice").Parse(invoiceTemplate)
	if err != nil {
		return nil, err
	}
	return &HTMLInvoiceGenerator{
		outputDir: outputDir,
		seller:    seller,
		template:  tmpl,
	}, nil
}

// Generate renders the invoice and returns the path of the written file.
func (g *HTMLInvoiceGenerator) Generate(_ context.Context, doc invoice.Document) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", err
	}

	productLabel := doc.Settings.ProductName
	quantity := "1"
	if doc.IsHalf {
		productLabel = fmt.Sprintf("%s (halbe)", doc.Settings.ProductName)
		quantity = "1/2"
	}

	data := templateData{
		Seller:       g.seller,
		CustomerName: doc.CustomerName,
		Date:         formatDateDE(doc.SaleDate.String()),
		Number:       doc.Number,
		Quantity:     quantity,
		ProductLabel: productLabel,
		Weight:       formatDecimal(doc.BillableWeight),
		PricePerKg:   formatDecimal(doc.PricePerKg.Float64()),
		Total:        formatDecimal(doc.Total),
		FooterNote:   doc.Settings.FooterNote,
		ClosingText:  doc.Settings.ClosingText,
		ThanksText:   doc.Settings.ThanksText,
	}

	path := filepath.Join(g.outputDir, fmt.Sprintf("rechnung_%s.html", doc.Number))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err = g.template.Execute(file, data); err != nil {
		return "", err
	}
	return path, nil
}

type templateData struct {
	Seller       Seller
	CustomerName string
	Date         string
	Number       string
	Quantity     string
	ProductLabel string
	Weight       string
	PricePerKg   string
	Total        string
	FooterNote   string
	ClosingText  string
	ThanksText   string
}

// formatDecimal renders a number with two decimals and a decimal comma, the
// convention German invoices use.
func formatDecimal(value float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.2f", value), ".", ",")
}

// formatDateDE turns YYYY-MM-DD into DD.MM.YYYY.
func formatDateDE(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    @page { margin: 0; size: A4; }
    body {
      font-family: 'Times New Roman', Times, Georgia, serif;
      margin: 0;
      padding: 50px 60px;
      color: #000;
      font-size: 14px;
      line-height: 1.4;
    }
    .header h1 { font-size: 26px; margin: 0; font-weight: bold; }
    .header p { margin: 2px 0; font-size: 13px; }
    .separator { border: none; border-top: 3px solid #B8860B; margin: 15px 0 30px 0; }
    .customer { font-size: 16px; margin-bottom: 30px; }
    .invoice-header h2 { font-size: 22px; margin: 0; font-weight: bold; }
    .invoice-meta { text-align: right; font-size: 13px; line-height: 1.6; }
    .invoice-meta span.label { display: inline-block; min-width: 100px; text-align: left; }
    table { width: 100%; border-collapse: collapse; margin-top: 10px; }
    th {
      border-top: 2px solid #000;
      border-bottom: 1px solid #000;
      padding: 8px 10px;
      text-align: left;
    }
    td { padding: 8px 10px; }
    .right { text-align: right; }
    .total-row td { border-top: 1px solid #000; font-weight: bold; }
    .footer { margin-top: 25px; font-style: italic; }
    .bottom-info {
      margin-top: 50px;
      font-size: 12px;
      border-top: 1px solid #999;
      padding-top: 10px;
      line-height: 1.6;
    }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Seller.Name}}</h1>
    <p>{{.Seller.Address}}</p>
    <p>{{.Seller.Contact}}</p>
  </div>

  <hr class="separator">

  <div class="customer">Fam. {{.CustomerName}}</div>

  <div class="invoice-header">
    <h2>Rechnung</h2>
    <div class="invoice-meta">
      <span class="label">Datum:</span> {{.Date}}<br>
      <span class="label">RechNr.:</span> {{.Number}}<br>
      <span class="label">Zahlungsart:</span> bar
    </div>
  </div>

  <table>
    <tr>
      <th>Menge</th>
      <th>Bezeichnung</th>
      <th class="right">Gewicht in kg</th>
      <th class="right">Preis pro kg in &euro;</th>
      <th class="right">Gesamt</th>
    </tr>
    <tr>
      <td>{{.Quantity}}</td>
      <td>{{.ProductLabel}}</td>
      <td class="right">{{.Weight}}</td>
      <td class="right">{{.PricePerKg}}</td>
      <td class="right">{{.Total}}</td>
    </tr>
    <tr class="total-row">
      <td colspan="4">Endbetrag</td>
      <td class="right">{{.Total}} &euro;</td>
    </tr>
  </table>

  <div class="footer">
    <p>{{.FooterNote}}</p>
    <p>{{.ClosingText}}</p>
    <p>{{.ThanksText}}</p>
  </div>

  <div class="bottom-info">
    <p>Preise inkl. 10% Mehrwertsteuer</p>
    <p>{{.Seller.BankDetails}}</p>
  </div>
</body>
</html>
`
