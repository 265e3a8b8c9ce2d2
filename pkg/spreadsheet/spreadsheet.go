// Package spreadsheet renders report records to xlsx workbooks and reads
// filled-in workbooks back. Column layout is driven entirely by the kind
// descriptor, so every report kind shares one codec.
package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/campusworks/qpr-api/internal/models"
	"github.com/campusworks/qpr-api/internal/schema"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
)

const (
	// SheetData is the sheet name used for record rows in exports,
	// templates and imports.
	SheetData = "Data Entry"
	// SheetInstructions carries the per-field guidance in templates.
	SheetInstructions = "Instructions"

	// HeaderOwner and HeaderDepartment prefix every export, ahead of the
	// kind's own field labels. They are derived columns and never appear
	// in templates or imports.
	HeaderOwner      = "Owner Name"
	HeaderDepartment = "Department"

	headerFillColor = "4F81BD"

	// templateRows is how far down dropdowns and blank-cell highlighting
	// extend in a generated template.
	templateRows = 1000
)

// ImportHeaders returns the expected header row for templates and
// imports: the kind's field labels in catalog order.
func ImportHeaders(desc *schema.KindDescriptor) []string {
	headers := make([]string, 0, len(desc.Fields))
	for _, f := range desc.Fields {
		headers = append(headers, f.Label)
	}
	return headers
}

// ExportHeaders returns the header row for exports: owner and department
// columns followed by the kind's field labels.
func ExportHeaders(desc *schema.KindDescriptor) []string {
	return append([]string{HeaderOwner, HeaderDepartment}, ImportHeaders(desc)...)
}

// Row is one data row read from an imported workbook. Number is the
// 1-based spreadsheet row it came from, for error reporting.
type Row struct {
	Number int
	Values map[string]string
}

// BuildExport renders records into a styled workbook and returns the
// xlsx bytes.
func BuildExport(desc *schema.KindDescriptor, records []models.ReportRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := renameDefaultSheet(f, SheetData); err != nil {
		return nil, err
	}

	headers := ExportHeaders(desc)
	if err := writeHeaderRow(f, SheetData, headers); err != nil {
		return nil, err
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	for rowIdx, rec := range records {
		row := rowIdx + 2
		values := make([]interface{}, 0, len(headers))
		values = append(values, rec.OwnerName, rec.DepartmentName)
		for _, field := range desc.Fields {
			values = append(values, cellValue(field, rec.Fields[field.Name]))
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(SheetData, cell, v); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
			if n := len(fmt.Sprintf("%v", v)); n > widths[col] {
				widths[col] = n
			}
		}
	}

	if err := applyColumnWidths(f, SheetData, widths); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildTemplate renders an empty, fill-in workbook for the kind: an
// instructions sheet describing each column, and a data sheet with the
// header row, dropdowns for choice and yes/no columns, and required
// columns highlighted while blank.
func BuildTemplate(desc *schema.KindDescriptor) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := renameDefaultSheet(f, SheetInstructions); err != nil {
		return nil, err
	}
	if err := writeInstructions(f, desc); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetData); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	headers := ImportHeaders(desc)
	if err := writeHeaderRow(f, SheetData, headers); err != nil {
		return nil, err
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	if err := applyColumnWidths(f, SheetData, widths); err != nil {
		return nil, err
	}

	blankStyle, err := f.NewConditionalStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFF2CC"}},
	})
	if err != nil {
		return nil, fmt.Errorf("conditional style: %w", err)
	}

	for i, field := range desc.Fields {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		ref := fmt.Sprintf("%s2:%s%d", colName, colName, templateRows)

		if choices := dropListFor(field); len(choices) > 0 {
			dv := excelize.NewDataValidation(true)
			dv.Sqref = ref
			if err := dv.SetDropList(choices); err != nil {
				return nil, fmt.Errorf("drop list for %s: %w", field.Name, err)
			}
			if err := f.AddDataValidation(SheetData, dv); err != nil {
				return nil, fmt.Errorf("add validation for %s: %w", field.Name, err)
			}
		}

		if field.Required {
			err := f.SetConditionalFormat(SheetData, ref, []excelize.ConditionalFormatOptions{
				{Type: "blanks", Format: blankStyle},
			})
			if err != nil {
				return nil, fmt.Errorf("conditional format for %s: %w", field.Name, err)
			}
		}
	}

	if err := freezeHeader(f, SheetData); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseImport reads a filled-in workbook back into rows of raw string
// values keyed by field name. The header row must match the template
// exactly; blank rows are skipped.
func ParseImport(desc *schema.KindDescriptor, r io.Reader, maxRows int) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "file is not a valid xlsx workbook")
	}
	defer f.Close()

	sheet := SheetData
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "workbook has no header row")
	}

	expected := ImportHeaders(desc)
	if err := matchHeaders(expected, rows[0]); err != nil {
		return nil, err
	}

	out := make([]Row, 0, len(rows)-1)
	for i, raw := range rows[1:] {
		values := make(map[string]string, len(desc.Fields))
		blank := true
		for col, field := range desc.Fields {
			var v string
			if col < len(raw) {
				v = strings.TrimSpace(raw[col])
			}
			if v != "" {
				blank = false
			}
			values[field.Name] = v
		}
		if blank {
			continue
		}
		out = append(out, Row{Number: i + 2, Values: values})
		if maxRows > 0 && len(out) > maxRows {
			return nil, appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("workbook exceeds the %d row import limit", maxRows))
		}
	}

	return out, nil
}

func matchHeaders(expected, got []string) error {
	for i, want := range expected {
		var have string
		if i < len(got) {
			have = strings.TrimSpace(got[i])
		}
		if have != want {
			return appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("header mismatch in column %d: expected %q, got %q", i+1, want, have))
		}
	}
	for i := len(expected); i < len(got); i++ {
		if strings.TrimSpace(got[i]) != "" {
			return appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("unexpected extra column %q", strings.TrimSpace(got[i])))
		}
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("set header %q: %w", h, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("header style range: %w", err)
	}
	return nil
}

func writeInstructions(f *excelize.File, desc *schema.KindDescriptor) error {
	lines := [][]interface{}{
		{desc.Name},
		{fmt.Sprintf("Fill in one row per entry on the %q sheet. Do not modify the header row.", SheetData)},
		{},
		{"Column", "Required", "Notes", "Example"},
	}
	for _, field := range desc.Fields {
		required := "Optional"
		if field.Required {
			required = "Required"
		}
		lines = append(lines, []interface{}{field.Label, required, fieldNotes(field), fieldExample(field)})
	}

	for rowIdx, line := range lines {
		for col, v := range line {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(SheetInstructions, cell, v); err != nil {
				return fmt.Errorf("write instructions: %w", err)
			}
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("title style: %w", err)
	}
	if err := f.SetCellStyle(SheetInstructions, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("title style range: %w", err)
	}

	if err := f.SetColWidth(SheetInstructions, "A", "A", 40); err != nil {
		return fmt.Errorf("instructions width: %w", err)
	}
	if err := f.SetColWidth(SheetInstructions, "C", "C", 60); err != nil {
		return fmt.Errorf("instructions width: %w", err)
	}
	if err := f.SetColWidth(SheetInstructions, "D", "D", 30); err != nil {
		return fmt.Errorf("instructions width: %w", err)
	}
	return nil
}

func fieldNotes(field schema.FieldDescriptor) string {
	var notes []string
	if field.Help != "" {
		notes = append(notes, field.Help)
	}
	switch field.Type {
	case schema.TypeEnum:
		notes = append(notes, "one of: "+strings.Join(field.Choices, ", "))
	case schema.TypeBool:
		notes = append(notes, "Yes or No")
	case schema.TypeInt:
		notes = append(notes, "whole number")
	case schema.TypeDecimal:
		notes = append(notes, "number")
	case schema.TypeDate:
		notes = append(notes, "date in YYYY-MM-DD format")
	case schema.TypeURL:
		notes = append(notes, "http(s) link")
	}
	return strings.Join(notes, ". ")
}

// fieldExample gives the worked example shown next to each column's
// notes, one per semantic type.
func fieldExample(field schema.FieldDescriptor) string {
	switch field.Type {
	case schema.TypeEnum:
		if len(field.Choices) > 0 {
			return field.Choices[0]
		}
		return ""
	case schema.TypeBool:
		return "Yes"
	case schema.TypeInt:
		return "3"
	case schema.TypeDecimal:
		return "8.5"
	case schema.TypeDate:
		return "2026-01-15"
	case schema.TypeURL:
		return "https://example.edu/doc"
	case schema.TypeLongText:
		return "A short description of the activity"
	}
	return "Sample text"
}

func dropListFor(field schema.FieldDescriptor) []string {
	switch field.Type {
	case schema.TypeEnum:
		return field.Choices
	case schema.TypeBool:
		return []string{"Yes", "No"}
	}
	return nil
}

// cellValue converts a stored field value to what the cell should hold.
// Numbers stay numeric so spreadsheet formulas work on exports; booleans
// render as the same Yes/No the template dropdowns offer.
func cellValue(field schema.FieldDescriptor, v interface{}) interface{} {
	if v == nil {
		return ""
	}
	switch field.Type {
	case schema.TypeBool:
		if b, ok := v.(bool); ok {
			if b {
				return "Yes"
			}
			return "No"
		}
	case schema.TypeInt, schema.TypeDecimal:
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return n
		case string:
			if parsed, err := strconv.ParseFloat(n, 64); err == nil {
				return parsed
			}
		}
	}
	return fmt.Sprintf("%v", v)
}

func applyColumnWidths(f *excelize.File, sheet string, widths []int) error {
	for i, w := range widths {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		width := float64(w) + 4
		if width < 12 {
			width = 12
		}
		if width > 60 {
			width = 60
		}
		if err := f.SetColWidth(sheet, colName, colName, width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}
	return nil
}

func freezeHeader(f *excelize.File, sheet string) error {
	err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}
	return nil
}

func renameDefaultSheet(f *excelize.File, name string) error {
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	return nil
}
