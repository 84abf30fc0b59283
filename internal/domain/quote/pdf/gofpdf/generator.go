package gofpdf

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"

	"quotedesk/go_backend/internal/domain/amount"
	"quotedesk/go_backend/internal/domain/quote"
)

type Generator struct {
	// Issuer is printed in the footer.
	Issuer string
	now    func() time.Time
}

func New(issuer string) *Generator { return &Generator{Issuer: issuer, now: time.Now} }

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Quote "+q.SequenceID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Quote "+q.SequenceID))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Date: %s", q.CreatedAt.Format("02/01/2006"))))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Client: "+q.ClientName))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Project: "+q.ProjectName))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(70, 7, "Item")
	pdf.Cell(20, 7, "Billing")
	pdf.Cell(12, 7, "Qty")
	pdf.Cell(25, 7, "Unit")
	pdf.Cell(25, 7, "Discount")
	pdf.Cell(28, 7, "Total")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	for _, l := range q.Lines {
		f := quote.LineFigures(l)
		pdf.Cell(70, 6, tr(trim(l.Name, 40)))
		pdf.Cell(20, 6, string(l.BillingType))
		pdf.Cell(12, 6, fmt.Sprintf("%d", l.Quantity))
		pdf.Cell(25, 6, tr(amount.Format(f.UnitPrice)))
		pdf.Cell(25, 6, tr(amount.Format(f.Discount)))
		pdf.Cell(28, 6, tr(amount.Format(f.Total)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, tr("One-time total: "+amount.Format(q.TotalOneTime)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr("Recurring total: "+amount.Format(q.TotalRecurring)))
	pdf.Ln(8)

	if q.Notes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(q.Notes), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 8)
	if g.Issuer != "" {
		pdf.Cell(0, 5, tr(g.Issuer))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", g.now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		slog.Error("quote pdf: output failed", "sequence_id", q.SequenceID, "error", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
