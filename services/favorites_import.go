package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is returned after parsing and validating an uploaded
// favorites file. Favorites holds only the rows that passed validation.
type ImportResult struct {
	TotalRows int               `json:"total_rows"`
	ValidRows int               `json:"valid_rows"`
	ErrorRows int               `json:"error_rows"`
	Errors    []ValidationError `json:"errors"`
	Favorites Favorites         `json:"-"`
}

var favoriteColumns = []string{"category", "code", "price"}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// ParseFavoritesFile parses a .csv or .xlsx file with category, code and
// price columns. Rows with errors are reported and left out of Favorites.
func ParseFavoritesFile(file io.Reader, fileName string) (*ImportResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	colIndex := make(map[string]int, len(favoriteColumns))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(h), "*")))
		colIndex[norm] = i
	}
	for _, c := range favoriteColumns {
		if _, ok := colIndex[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	result := &ImportResult{TotalRows: len(dataRows), Favorites: NewFavorites()}
	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		value := func(col string) string {
			if i := colIndex[col]; i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}

		rowErrors := validateFavoriteRow(rowNum, value("category"), value("code"), value("price"))
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			result.ErrorRows++
			continue
		}
		result.Favorites.Add(FavoriteInput{
			Category: value("category"),
			Code:     value("code"),
			Price:    cast.ToFloat64(strings.ReplaceAll(value("price"), ",", "")),
		})
	}
	result.ValidRows = result.TotalRows - result.ErrorRows
	return result, nil
}

func validateFavoriteRow(rowNum int, category, code, price string) []ValidationError {
	var errs []ValidationError
	if !IsFavoriteCategory(category) {
		errs = append(errs, ValidationError{Row: rowNum, Field: "category", Message: fmt.Sprintf("unknown category %q", category)})
	}
	if code == "" {
		errs = append(errs, ValidationError{Row: rowNum, Field: "code", Message: "code is required"})
	}
	p, err := cast.ToFloat64E(strings.ReplaceAll(price, ",", ""))
	if price == "" || err != nil || p < 0 {
		errs = append(errs, ValidationError{Row: rowNum, Field: "price", Message: "price must be a number of zero or more"})
	}
	return errs
}

// GenerateFavoritesWorkbook writes favorites to an .xlsx file that can be
// edited and imported again. The category column carries a dropdown.
func GenerateFavoritesWorkbook(favs Favorites) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Favorites"
	f.SetSheetName(f.GetSheetName(0), sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})

	cols := columnLetters(len(favoriteColumns))
	for i, h := range favoriteColumns {
		cell := cols[i] + "1"
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		f.SetColWidth(sheetName, cols[i], cols[i], 20)
	}

	row := 2
	for _, category := range FavoriteCategories {
		for _, it := range favs[category] {
			r := fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "A"+r, category)
			f.SetCellValue(sheetName, "B"+r, sanitizeExcelCell(it.Code))
			f.SetCellValue(sheetName, "C"+r, it.Price)
			row++
		}
	}

	dv := excelize.NewDataValidation(true)
	dv.Sqref = "A2:A1048576"
	dv.SetDropList(FavoriteCategories)
	f.AddDataValidation(sheetName, dv)

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write favorites workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateErrorReport creates a downloadable .xlsx file from validation errors.
func GenerateErrorReport(errors []ValidationError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Field")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range errors {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, e.Field)
		f.SetCellValue(sheet, "C"+row, e.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}

// columnLetters returns Excel column letters for n columns: A, B, ... Z, AA, AB ...
func columnLetters(n int) []string {
	cols := make([]string, n)
	for i := 0; i < n; i++ {
		name, _ := excelize.ColumnNumberToName(i + 1)
		cols[i] = name
	}
	return cols
}
