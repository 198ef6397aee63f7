package importing

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
	"github.com/vfg2006/analytico-api/internal/domain"
)

// Row é uma linha da planilha com cabeçalhos normalizados
type Row map[string]string

// decodeContent aceita base64 puro ou com prefixo data:<mime>;base64,
func decodeContent(content string) ([]byte, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "data:") {
		idx := strings.Index(content, ",")
		if idx < 0 {
			return nil, fmt.Errorf("prefixo data: sem separador")
		}
		content = content[idx+1:]
	}

	decoded, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, fmt.Errorf("base64 inválido: %w", err)
	}
	return decoded, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func parseRows(fileType string, data []byte) ([]Row, error) {
	switch fileType {
	case domain.FileTypeCSV:
		return parseCSV(data)
	case domain.FileTypeXLSX:
		return parseXLSX(data)
	}
	return nil, fmt.Errorf("tipo %q não suportado", fileType)
}

func parseCSV(data []byte) ([]Row, error) {
	// remove BOM de planilhas exportadas pelo Excel
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	records, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erro ao ler CSV: %w", err)
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row := make(Row, len(record))
		for k, v := range record {
			row[normalizeHeader(k)] = strings.TrimSpace(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseXLSX lê apenas a primeira aba
func parseXLSX(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler planilha: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = normalizeHeader(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// First devolve o primeiro valor não vazio entre as colunas informadas
func (r Row) First(keys ...string) string {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}

func (r Row) Empty() bool {
	for _, v := range r {
		if v != "" {
			return false
		}
	}
	return true
}

// parseNumber aceita "12.5", "12,5" e "1.234,56"
func parseNumber(value string) (float64, error) {
	value = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), "R$"))
	if strings.Contains(value, ",") {
		value = strings.ReplaceAll(value, ".", "")
		value = strings.ReplaceAll(value, ",", ".")
	}
	return cast.ToFloat64E(value)
}

func parseQuantity(value string) (int, error) {
	n, err := parseNumber(value)
	if err != nil {
		return 0, err
	}
	if n != float64(int(n)) {
		return 0, fmt.Errorf("quantidade %q não é inteira", value)
	}
	return int(n), nil
}

const brazilianDateLayout = "02/01/2006"

// parseDate tenta dd/mm/aaaa antes do dateparse, que assume mês primeiro
func parseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	if t, err := time.Parse(brazilianDateLayout, value); err == nil {
		return t, nil
	}
	return dateparse.ParseAny(value)
}
