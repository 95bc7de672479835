package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"mentorlink/models"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// DejaVu Sans Condensed covers Latin, Greek and Cyrillic names. Text is written
// as UTF-16 with an identity ToUnicode map, so runes without a glyph are still
// kept in the text layer.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	regularFont []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	boldFont []byte
)

const (
	fontFamily        = "DejaVu"
	reportTitle       = "MentorLink Performance Report"
	unknownMentorName = "Unknown"
	dateLayout        = "2006-01-02 15:04 UTC"
)

// PDFCompiler lays out the report on A4 pages with an embedded UTF-8 font.
// It renders exactly what it is given: sessions are neither sorted nor capped.
type PDFCompiler struct {
	// Compress deflates page streams. Disable it to inspect the output as text.
	Compress bool
}

// NewPDFCompiler returns a compiler with stream compression set as requested.
func NewPDFCompiler(compress bool) *PDFCompiler {
	return &PDFCompiler{Compress: compress}
}

// Compile renders data. Output is byte-for-byte stable for equal input,
// GeneratedAt included; a zero GeneratedAt is replaced with the current time.
func (c *PDFCompiler) Compile(data models.ReportData) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, &RenderError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	generatedAt := data.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	generatedAt = generatedAt.UTC()

	mentorName := data.MentorName
	if mentorName == "" {
		mentorName = unknownMentorName
	}
	period := data.Period
	if period == "" {
		period = models.ReportPeriodAllTime
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(c.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(generatedAt)
	pdf.SetTitle(reportTitle, true)
	pdf.SetAuthor(mentorName, true)
	pdf.SetCreator("MentorLink", true)
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldFont)

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(0, 12, reportTitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "", 12)
	line(pdf, "Mentor: "+mentorName)
	line(pdf, "Period: "+period)
	line(pdf, "Generated: "+generatedAt.Format(dateLayout))
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "B", 14)
	line(pdf, "Summary")
	pdf.SetFont(fontFamily, "", 12)
	line(pdf, "Total Earnings: "+formatMoney(data.TotalEarnings))
	line(pdf, fmt.Sprintf("Total Sessions: %d", data.TotalSessions))
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "B", 14)
	line(pdf, "Recent Sessions")
	pdf.SetFont(fontFamily, "", 11)
	if len(data.RecentSessions) == 0 {
		line(pdf, "No completed sessions yet.")
	}
	for i, s := range data.RecentSessions {
		student := s.StudentName
		if student == "" {
			student = "Unknown student"
		}
		line(pdf, fmt.Sprintf("%d. %s  |  %s  |  %s",
			i+1, student, s.SessionDate.UTC().Format(dateLayout), formatMoney(s.Amount)))
	}

	if pdf.Err() {
		return nil, &RenderError{Err: pdf.Error()}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

func line(pdf *fpdf.Fpdf, text string) {
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
}

func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
