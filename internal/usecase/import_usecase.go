package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"employee-profile-backend/internal/domain"
	"employee-profile-backend/pkg/apperror"
	"employee-profile-backend/pkg/logger"

	"github.com/xuri/excelize/v2"
)

const importSheet = "Profiles"

// importColumn maps one spreadsheet column onto a submission field.
type importColumn struct {
	key    string // JSON key, accepted as header too
	header string
	set    func(s *domain.ProfileSubmission, v string) error
}

var importColumns = []importColumn{
	{"firstName", "FIRST NAME", func(s *domain.ProfileSubmission, v string) error { s.FirstName = v; return nil }},
	{"lastName", "LAST NAME", func(s *domain.ProfileSubmission, v string) error { s.LastName = v; return nil }},
	{"industryName", "INDUSTRY NAME", func(s *domain.ProfileSubmission, v string) error { s.IndustryName = v; return nil }},
	{"designationName", "DESIGNATION NAME", func(s *domain.ProfileSubmission, v string) error { s.DesignationName = v; return nil }},
	{"contact", "CONTACT", func(s *domain.ProfileSubmission, v string) error { s.Contact = v; return nil }},
	{"location", "LOCATION", func(s *domain.ProfileSubmission, v string) error { s.Location = v; return nil }},
	{"requiredSkills", "REQUIRED SKILLS", func(s *domain.ProfileSubmission, v string) error { s.RequiredSkills = v; return nil }},
	{"verifiedSkills", "VERIFIED SKILLS", func(s *domain.ProfileSubmission, v string) error { s.VerifiedSkills = v; return nil }},
	{"certifications", "CERTIFICATIONS", func(s *domain.ProfileSubmission, v string) error { s.Certifications = v; return nil }},
	{"currentSalary", "CURRENT SALARY", func(s *domain.ProfileSubmission, v string) error {
		return parseFloatCell(v, "Current Salary", &s.CurrentSalary)
	}},
	{"minExpectedSalary", "MIN EXPECTED SALARY", func(s *domain.ProfileSubmission, v string) error {
		return parseFloatCell(v, "Min Expected Salary", &s.MinExpectedSalary)
	}},
	{"maxExpectedSalary", "MAX EXPECTED SALARY", func(s *domain.ProfileSubmission, v string) error {
		return parseFloatCell(v, "Max Expected Salary", &s.MaxExpectedSalary)
	}},
	{"salaryType", "SALARY TYPE", func(s *domain.ProfileSubmission, v string) error { s.SalaryType = v; return nil }},
	{"salaryCurrency", "SALARY CURRENCY", func(s *domain.ProfileSubmission, v string) error { s.SalaryCurrency = v; return nil }},
	{"dateOfBirth", "DATE OF BIRTH", func(s *domain.ProfileSubmission, v string) error { s.DateOfBirth = v; return nil }},
	{"seekingJobType", "SEEKING JOB TYPE", func(s *domain.ProfileSubmission, v string) error { s.SeekingJobType = v; return nil }},
	{"seekingRange", "SEEKING RANGE (KM)", func(s *domain.ProfileSubmission, v string) error {
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("Seeking Range (km) must be a whole number.")
		}
		s.SeekingRange = &n
		return nil
	}},
	{"isRadar", "RADAR MODE", func(s *domain.ProfileSubmission, v string) error {
		switch strings.ToLower(v) {
		case "", "no", "n", "false", "0":
			s.IsRadar = false
		case "yes", "y", "true", "1":
			s.IsRadar = true
		default:
			return errors.New("Enable Radar Mode must be yes or no.")
		}
		return nil
	}},
	{"gender", "GENDER", func(s *domain.ProfileSubmission, v string) error { s.Gender = v; return nil }},
	{"joiningTimeframe", "JOINING TIMEFRAME", func(s *domain.ProfileSubmission, v string) error { s.JoiningTimeframe = v; return nil }},
	{"about", "ABOUT", func(s *domain.ProfileSubmission, v string) error { s.About = v; return nil }},
	{"slogan", "SLOGAN", func(s *domain.ProfileSubmission, v string) error { s.Slogan = v; return nil }},
}

func parseFloatCell(v, label string, dst **float64) error {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s must be a number.", label)
	}
	*dst = &f
	return nil
}

type importUsecase struct {
	submissions domain.SubmissionUsecase
}

func NewImportUsecase(submissions domain.SubmissionUsecase) domain.ImportUsecase {
	return &importUsecase{submissions: submissions}
}

// Import submits every data row of the first sheet, one after another.
// A rejected or failed row is reported and the import continues.
func (u *importUsecase) Import(ctx context.Context, r io.Reader) (*domain.ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperror.BadRequest("File is not a valid .xlsx workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperror.BadRequest("Workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperror.BadRequest("Workbook could not be read")
	}
	if len(rows) == 0 {
		return nil, apperror.BadRequest("Workbook is empty")
	}

	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	report := &domain.ImportReport{Rows: []domain.ImportRow{}}
	for i, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		rowNum := i + 2
		row := u.importRow(ctx, rowNum, columns, cells)
		report.Rows = append(report.Rows, row)
		report.Total++
		switch row.State {
		case domain.StateCommitted:
			report.Committed++
		case domain.StateRejected:
			report.Rejected++
		default:
			report.Failed++
		}
	}

	logger.Log.Info("Workbook imported",
		"total", report.Total, "committed", report.Committed,
		"rejected", report.Rejected, "failed", report.Failed)
	return report, nil
}

func (u *importUsecase) importRow(ctx context.Context, rowNum int, columns []boundColumn, cells []string) domain.ImportRow {
	input := &domain.ProfileSubmission{}
	var cellErrs []string
	for _, bc := range columns {
		value := ""
		if bc.index < len(cells) {
			value = strings.TrimSpace(cells[bc.index])
		}
		if err := bc.column.set(input, value); err != nil {
			cellErrs = append(cellErrs, err.Error())
		}
	}
	// Unparsable cells stay unset so the row is still checked against every other rule.
	if len(cellErrs) > 0 {
		errs := append(cellErrs, u.submissions.Validate(input)...)
		return domain.ImportRow{Row: rowNum, State: domain.StateRejected, Errors: errs}
	}

	result, _ := u.submissions.Submit(ctx, input)
	if result == nil {
		return domain.ImportRow{Row: rowNum, State: domain.StateFailed}
	}
	row := domain.ImportRow{Row: rowNum, State: result.State, Errors: result.Errors, ProfileID: result.ProfileID}
	if result.State == domain.StateFailed && result.Reason != "" {
		row.Errors = []string{result.Reason}
	}
	return row
}

// boundColumn is an import column found at a given cell index of the header row.
type boundColumn struct {
	index  int
	column importColumn
}

// mapHeader matches header cells against column headers or JSON keys, ignoring case.
func mapHeader(header []string) ([]boundColumn, error) {
	lookup := make(map[string]importColumn, len(importColumns)*2)
	for _, col := range importColumns {
		lookup[strings.ToLower(col.header)] = col
		lookup[strings.ToLower(col.key)] = col
	}

	var columns []boundColumn
	var unknown []string
	for idx, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" {
			continue
		}
		col, ok := lookup[name]
		if !ok {
			unknown = append(unknown, cell)
			continue
		}
		columns = append(columns, boundColumn{index: idx, column: col})
	}

	if len(unknown) > 0 {
		return nil, apperror.BadRequest("Unknown columns: " + strings.Join(unknown, ", "))
	}
	if len(columns) == 0 {
		return nil, apperror.BadRequest("Header row has no known columns")
	}
	return columns, nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Template returns an empty workbook carrying the styled header row.
func (u *importUsecase) Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", importSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range importColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(importSheet, cell, col.header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(importColumns), 1)
	f.SetCellStyle(importSheet, "A1", endCell, headerStyle)

	for i := range importColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(importSheet, colName, colName, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
