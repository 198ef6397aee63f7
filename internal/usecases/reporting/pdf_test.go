package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/analytico-api/internal/domain"
)

func TestPDFRenderer_MissingFont(t *testing.T) {
	renderer := NewPDFRenderer("/caminho/inexistente.ttf", "")

	_, err := renderer.Render(domain.ReportSummary{CompanyName: "Loja"})
	assert.ErrorIs(t, err, ErrFontUnavailable)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1234,50", formatBRL(1234.5))
	assert.Equal(t, "R$ 0,00", formatBRL(0))
}
