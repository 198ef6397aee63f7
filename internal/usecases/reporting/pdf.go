package reporting

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/signintech/gopdf"
	"github.com/vfg2006/analytico-api/internal/domain"
)

const (
	regularFont = "regular"
	boldFont    = "bold"

	pageMargin = 40.0
	rowHeight  = 20.0
)

var ErrFontUnavailable = errors.New("fonte TTF indisponível")

type Renderer interface {
	Render(summary domain.ReportSummary) ([]byte, error)
}

// PDFRenderer monta o relatório em A4 com o resumo e a tabela de produtos
type PDFRenderer struct {
	fontPath     string
	boldFontPath string
}

func NewPDFRenderer(fontPath, boldFontPath string) *PDFRenderer {
	return &PDFRenderer{fontPath: fontPath, boldFontPath: boldFontPath}
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func (r *PDFRenderer) loadFonts(pdf *gopdf.GoPdf) error {
	if !fileExists(r.fontPath) {
		return fmt.Errorf("%w: %s", ErrFontUnavailable, r.fontPath)
	}
	if err := pdf.AddTTFFont(regularFont, r.fontPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFontUnavailable, err)
	}

	// sem negrito usamos a regular para os títulos
	boldPath := r.boldFontPath
	if !fileExists(boldPath) {
		boldPath = r.fontPath
	}
	if err := pdf.AddTTFFont(boldFont, boldPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFontUnavailable, err)
	}
	return nil
}

func formatBRL(value float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", value), ".", ",", 1)
}

func (r *PDFRenderer) Render(summary domain.ReportSummary) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := r.loadFonts(pdf); err != nil {
		return nil, err
	}
	pdf.AddPage()

	if err := pdf.SetFont(boldFont, "", 16); err != nil {
		return nil, err
	}
	pdf.SetXY(pageMargin, pageMargin)
	if err := pdf.Cell(nil, "Relatório de Vendas - "+summary.CompanyName); err != nil {
		return nil, err
	}
	pdf.Br(24)

	if err := pdf.SetFont(regularFont, "", 11); err != nil {
		return nil, err
	}
	pdf.SetX(pageMargin)
	period := fmt.Sprintf("Período %s: %s a %s", summary.Period,
		summary.StartDate.Format("02/01/2006"), summary.EndDate.Format("02/01/2006"))
	if err := pdf.Cell(nil, period); err != nil {
		return nil, err
	}
	pdf.Br(28)

	resumo := [][]string{
		{"Total de vendas", formatBRL(summary.TotalSales)},
		{"Quantidade vendida", fmt.Sprintf("%d", summary.TotalQuantity)},
		{"Ticket médio", formatBRL(summary.AverageTicket)},
		{"Número de vendas", fmt.Sprintf("%d", summary.SalesCount)},
	}
	if err := drawTable(pdf, []string{"Indicador", "Valor"}, []float64{300, 215}, resumo); err != nil {
		return nil, err
	}
	pdf.Br(24)

	if err := pdf.SetFont(boldFont, "", 13); err != nil {
		return nil, err
	}
	pdf.SetX(pageMargin)
	if err := pdf.Cell(nil, "Produtos mais vendidos"); err != nil {
		return nil, err
	}
	pdf.Br(20)

	products := make([][]string, 0, len(summary.TopProducts))
	for _, p := range summary.TopProducts {
		products = append(products, []string{p.Name, fmt.Sprintf("%d", p.Quantity), formatBRL(p.Total)})
	}
	if len(products) == 0 {
		products = append(products, []string{"Nenhuma venda no período", "", ""})
	}
	if err := drawTable(pdf, []string{"Produto", "Quantidade", "Total"}, []float64{285, 100, 130}, products); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("erro ao serializar PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func drawTable(pdf *gopdf.GoPdf, headers []string, widths []float64, rows [][]string) error {
	if err := pdf.SetFont(boldFont, "", 10); err != nil {
		return err
	}
	pdf.SetFillColor(221, 235, 247)
	if err := drawRow(pdf, headers, widths, "FD"); err != nil {
		return err
	}

	if err := pdf.SetFont(regularFont, "", 10); err != nil {
		return err
	}
	pdf.SetFillColor(255, 255, 255)
	for _, row := range rows {
		if err := drawRow(pdf, row, widths, "D"); err != nil {
			return err
		}
	}
	return nil
}

func drawRow(pdf *gopdf.GoPdf, cells []string, widths []float64, style string) error {
	x := pageMargin
	y := pdf.GetY()
	for i, cell := range cells {
		pdf.Rectangle(x, y, x+widths[i], y+rowHeight, style, 0, 0)
		pdf.SetXY(x+4, y+6)
		if err := pdf.Cell(nil, cell); err != nil {
			return err
		}
		x += widths[i]
	}
	pdf.SetXY(pageMargin, y+rowHeight)
	return nil
}
