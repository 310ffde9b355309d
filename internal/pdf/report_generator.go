package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"chronos/internal/models"
	"chronos/internal/services"
)

// Generator is an interface so handlers can be tested with a stub.
type Generator interface {
	GenerateSummary(sum services.ReportSummary) (string, error)
}

// ReportGenerator renders a read-only projection of the snapshot; it
// never touches state.
type ReportGenerator struct {
	RootDir  string // e.g. "./files"
	fontName string
}

func NewReportGenerator(rootDir string) *ReportGenerator {
	return &ReportGenerator{
		RootDir:  filepath.Clean(rootDir),
		fontName: "Helvetica",
	}
}

func (g *ReportGenerator) GenerateSummary(sum services.ReportSummary) (string, error) {
	filename := fmt.Sprintf("summary_%s.pdf", sum.GeneratedAt.Format("20060102_150405"))
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Operations Summary", false)
	pdf.SetAuthor(sum.OrgName, false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Header
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "OPERATIONS SUMMARY", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("%s  -  %s", sum.OrgName, sum.GeneratedAt.Format("02.01.2006 15:04"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// ===== Tasks
	g.sectionTitle(pdf, "Tasks")
	g.kvLine(pdf, "Total", fmt.Sprintf("%d", sum.TasksTotal))
	g.kvLine(pdf, "Pending", fmt.Sprintf("%d", sum.TasksByStatus[models.StatusPending]))
	g.kvLine(pdf, "In Progress", fmt.Sprintf("%d", sum.TasksByStatus[models.StatusInProgress]))
	g.kvLine(pdf, "Completed", fmt.Sprintf("%d", sum.TasksByStatus[models.StatusCompleted]))
	g.kvLine(pdf, "Completion rate", fmt.Sprintf("%.0f%%", sum.CompletionRate*100))
	g.kvLine(pdf, "Estimated time", fmt.Sprintf("%.0f min", sum.EstimatedMinutes))
	g.kvLine(pdf, "Actual time", fmt.Sprintf("%.1f min", sum.ActualMinutes))
	pdf.Ln(2)
	g.hr(pdf)

	// ===== By category
	g.sectionTitle(pdf, "Tasks by category")
	for cat, n := range sum.TasksByCategory {
		g.kvLine(pdf, cat, fmt.Sprintf("%d", n))
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Utilities
	g.sectionTitle(pdf, "Utility bills")
	g.kvLine(pdf, "Total", fmt.Sprintf("%d", sum.BillsTotal))
	g.kvLine(pdf, "Paid", fmt.Sprintf("%d", sum.BillsPaid))
	g.kvLine(pdf, "Pending", fmt.Sprintf("%d", sum.BillsPending))
	g.kvLine(pdf, "Total amount", fmt.Sprintf("%.2f", sum.BillsTotalAmount))
	g.kvLine(pdf, "Outstanding", fmt.Sprintf("%.2f", sum.BillsPendingAmount))

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}
	return absPath, nil
}

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(g.RootDir, filepath.Base(filename)), nil
}

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(g.fontName, "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(60, 6, key, "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(left, y, pageW-right, y)
	pdf.SetXY(x, y+2)
}
