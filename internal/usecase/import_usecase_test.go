package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"employee-profile-backend/internal/domain"
	"employee-profile-backend/internal/usecase"
	"employee-profile-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// workbook writes rows to the first sheet and returns the encoded file.
func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

var importHeader = []interface{}{
	"FIRST NAME", "LAST NAME", "INDUSTRY NAME", "DESIGNATION NAME", "CONTACT",
	"LOCATION", "REQUIRED SKILLS", "VERIFIED SKILLS", "CURRENT SALARY", "RADAR MODE",
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("Each row is submitted and reported", func(t *testing.T) {
		h := newHarness()
		h.employees.On("Insert", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewImportUsecase(h.submissions)

		file := workbook(t, [][]interface{}{
			importHeader,
			{"Ayesha", "Khan", "Tech", "Engineer", "0300", "Lahore", "Go, SQL", "Go", "50000", "yes"},
			{"", "Raza", "Tech", "Engineer", "0301", "Karachi", "Go", "Go", "", "no"},
			{},
			{"Bilal", "Ahmed", "Tech", "Analyst", "0302", "Lahore", "SQL", "SQL", "lots", "no"},
		})

		report, err := uc.Import(ctx, file)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 1, report.Committed)
		assert.Equal(t, 2, report.Rejected)

		require.Len(t, report.Rows, 3)
		assert.Equal(t, 2, report.Rows[0].Row)
		assert.Equal(t, domain.StateCommitted, report.Rows[0].State)
		assert.NotNil(t, report.Rows[0].ProfileID)

		assert.Equal(t, 3, report.Rows[1].Row)
		assert.Equal(t, []string{"First Name is required."}, report.Rows[1].Errors)

		assert.Equal(t, 5, report.Rows[2].Row)
		assert.Equal(t, []string{"Current Salary must be a number."}, report.Rows[2].Errors)

		assert.Equal(t, 1, h.refs.count(domain.KindIndustry))
	})

	t.Run("Unparsable cells are reported alongside every other violation", func(t *testing.T) {
		h := newHarness()
		uc := usecase.NewImportUsecase(h.submissions)

		file := workbook(t, [][]interface{}{
			importHeader,
			{"", "Raza", "Tech", "Engineer", "0301", "Karachi", "", "Go", "lots", "no"},
		})

		report, err := uc.Import(ctx, file)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Rejected)
		require.Len(t, report.Rows, 1)
		assert.ElementsMatch(t, []string{
			"Current Salary must be a number.",
			"First Name is required.",
			"At least one Required Skill is required.",
		}, report.Rows[0].Errors)
		h.employees.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		assert.Equal(t, 0, h.refs.count(domain.KindIndustry))
	})

	t.Run("Failed rows carry the opaque reason", func(t *testing.T) {
		h := newHarness()
		h.employees.On("Insert", mock.Anything, mock.Anything).Return(errors.New("timeout"))
		uc := usecase.NewImportUsecase(h.submissions)

		file := workbook(t, [][]interface{}{
			importHeader,
			{"Ayesha", "Khan", "Tech", "Engineer", "0300", "Lahore", "Go", "Go", "", ""},
		})
		report, err := uc.Import(ctx, file)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Failed)
		require.Len(t, report.Rows[0].Errors, 1)
		assert.NotContains(t, report.Rows[0].Errors[0], "timeout")
	})

	t.Run("JSON keys are accepted as headers", func(t *testing.T) {
		h := newHarness()
		h.employees.On("Insert", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewImportUsecase(h.submissions)

		file := workbook(t, [][]interface{}{
			{"firstName", "lastName", "industryName", "designationName", "contact", "location", "requiredSkills", "verifiedSkills"},
			{"Ayesha", "Khan", "Tech", "Engineer", "0300", "Lahore", "Go", "Go"},
		})
		report, err := uc.Import(ctx, file)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Committed)
	})

	t.Run("Unknown header columns are rejected", func(t *testing.T) {
		uc := usecase.NewImportUsecase(newHarness().submissions)
		file := workbook(t, [][]interface{}{{"FIRST NAME", "SHOE SIZE"}})

		_, err := uc.Import(ctx, file)
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "SHOE SIZE")
	})

	t.Run("Non workbook input is rejected", func(t *testing.T) {
		uc := usecase.NewImportUsecase(newHarness().submissions)
		_, err := uc.Import(ctx, bytes.NewBufferString("not a zip"))
		assert.Error(t, err)
	})
}

func TestImportTemplate(t *testing.T) {
	uc := usecase.NewImportUsecase(newHarness().submissions)

	data, err := uc.Template()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Profiles")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "FIRST NAME", rows[0][0])
	assert.Contains(t, rows[0], "JOINING TIMEFRAME")
}
