package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"stylishtype/internal/models/db_models"
	"stylishtype/pkg/utils"
)

type DocumentServiceInterface interface {
	InvoicePDF(ctx context.Context, accountID, orderID uuid.UUID) ([]byte, string, error)
	EulaPDF(ctx context.Context, accountID, orderID uuid.UUID) ([]byte, string, error)
}

// DocumentService renders the two per-order documents, invoice and license
// agreement, from the snapshots stored on the order items.
type DocumentService struct {
	orders OrderServiceInterface
}

func NewDocumentService(orders OrderServiceInterface) DocumentServiceInterface {
	return &DocumentService{orders: orders}
}

func (s *DocumentService) InvoicePDF(ctx context.Context, accountID, orderID uuid.UUID) ([]byte, string, error) {
	order, err := s.orders.GetOwned(ctx, accountID, orderID)
	if err != nil {
		return nil, "", err
	}

	pdf := newDocument("Invoice " + order.InvoiceNumber)
	writeHeading(pdf, "Invoice")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Invoice number: "+order.InvoiceNumber, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+time.Unix(order.CreatedAt, 0).Format("January 2, 2006"), "", 1, "L", false, 0, "")
	if order.Account.Name != "" {
		pdf.CellFormat(0, 6, "Billed to: "+order.Account.Name+" <"+order.Account.Email+">", "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "License", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i := range order.Items {
		item := &order.Items[i]
		pdf.CellFormat(90, 8, item.ProductName, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, item.LicenseName, "", 0, "L", false, 0, "")
		pdf.CellFormat(15, 8, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, "$"+utils.FormatAmount(item.UnitPrice*float64(item.Quantity)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(155, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "$"+utils.FormatAmount(order.Total), "T", 1, "R", false, 0, "")

	data, err := render(pdf)
	if err != nil {
		return nil, "", err
	}
	return data, "invoice-" + order.InvoiceNumber + ".pdf", nil
}

func (s *DocumentService) EulaPDF(ctx context.Context, accountID, orderID uuid.UUID) ([]byte, string, error) {
	order, err := s.orders.GetOwned(ctx, accountID, orderID)
	if err != nil {
		return nil, "", err
	}

	pdf := newDocument("License Agreement " + order.InvoiceNumber)
	writeHeading(pdf, "End User License Agreement")

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf(
		"This agreement covers the items purchased under invoice %s on %s. "+
			"The terms below were in effect at the time of purchase and remain "+
			"the terms granted for these items.",
		order.InvoiceNumber, time.Unix(order.CreatedAt, 0).Format("January 2, 2006")), "", "L", false)
	pdf.Ln(4)

	for i := range order.Items {
		item := &order.Items[i]
		writeLicenseSection(pdf, item)
	}

	data, err := render(pdf)
	if err != nil {
		return nil, "", err
	}
	return data, "eula-" + order.InvoiceNumber + ".pdf", nil
}

func writeLicenseSection(pdf *fpdf.Fpdf, item *db_models.OrderItem) {
	pdf.SetFont("Helvetica", "B", 11)
	title := item.ProductName
	if item.LicenseName != "" {
		title += " - " + item.LicenseName
	}
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if len(item.LicenseAllowedUses) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Permitted uses:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, use := range item.LicenseAllowedUses {
			pdf.MultiCell(0, 5, "  - "+use, "", "L", false)
		}
	}
	if len(item.LicenseDisallowedUses) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Not permitted:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, use := range item.LicenseDisallowedUses {
			pdf.MultiCell(0, 5, "  - "+use, "", "L", false)
		}
	}
	pdf.Ln(4)
}

func newDocument(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(12, 14, 12)
	pdf.AddPage()
	return pdf
}

func writeHeading(pdf *fpdf.Fpdf, heading string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, heading, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func render(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
