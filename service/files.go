package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"gitlab.com/digitory/partner_portal_api/model"
)

// ExportResellerPerformance renders the per-partner report as a downloadable
// file, either "csv" or "pdf"
func (service *Service) ExportResellerPerformance(format string) (*model.GeneratedFile, error) {
	reports, err := service.GetReports()
	if err != nil {
		return nil, err
	}
	data := performanceRows(reports.Resellers)

	switch format {
	case "pdf":
		widths := []int{60, 60, 30, 30, 45, 45, 45}
		bytes, err := PDFExport(data, widths, "Reseller Performance")
		if err != nil {
			return nil, err
		}
		return &model.GeneratedFile{Type: "pdf", DataType: "application/pdf", Data: bytes}, nil
	case "csv":
		bytes, err := CSVExport(data)
		if err != nil {
			return nil, err
		}
		return &model.GeneratedFile{Type: "csv", DataType: "text/csv", Data: bytes}, nil
	default:
		return nil, ErrInvalidInput
	}
}

func performanceRows(rows []ResellerPerformance) [][]string {
	data := [][]string{
		{"Partner", "Company", "Tier", "Referrals", "Commissions", "Paid", "Total Earnings"},
	}
	for _, row := range rows {
		data = append(data, []string{
			row.Name,
			row.CompanyName,
			row.Tier,
			strconv.FormatInt(row.Referrals, 10),
			fmt.Sprintf("%.2f", row.CommissionsSum),
			fmt.Sprintf("%.2f", row.PaidSum),
			fmt.Sprintf("%.2f", row.TotalEarnings),
		})
	}
	return data
}

// CSVExport renders tabular data as a CSV document
func CSVExport(data [][]string) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	for _, value := range data {
		if err := writer.Write(value); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// PDFExport renders tabular data as a landscape PDF table. The first data
// row is the header.
func PDFExport(data [][]string, columnWidths []int, name string) ([]byte, error) {
	buf := bytes.Buffer{}

	pdf := newReport(name)
	pdf = header(pdf, data[0], columnWidths)
	pdf = table(pdf, data[1:], columnWidths)

	err := pdf.Output(&buf)

	return buf.Bytes(), err
}

func newReport(name string) *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "Legal", "")
	pdf.AddPage()
	pdf.SetFont("Times", "B", 28)
	pdf.Cell(40, 10, name)
	pdf.Ln(12)
	pdf.SetFont("Times", "", 20)
	pdf.Cell(40, 10, time.Now().Format("2 Jan 2006 15:04:05"))
	pdf.Ln(20)
	return pdf
}

func header(pdf *gofpdf.Fpdf, hdr []string, widths []int) *gofpdf.Fpdf {
	pdf.SetFont("Times", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	for i, str := range hdr {
		pdf.CellFormat(float64(widths[i]), 7, str, "1", 0, "", true, 0, "")
	}
	pdf.Ln(-1)
	return pdf
}

func table(pdf *gofpdf.Fpdf, tbl [][]string, widths []int) *gofpdf.Fpdf {
	pdf.SetFont("Times", "", 12)
	pdf.SetFillColor(255, 255, 255)
	for _, line := range tbl {
		for i, str := range line {
			pdf.CellFormat(float64(widths[i]), 7, str, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf
}
