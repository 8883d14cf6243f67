package v1

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"employee-profile-backend/internal/delivery/http/response"
	"employee-profile-backend/internal/domain"
	"employee-profile-backend/pkg/apperror"
	"employee-profile-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	maxImportSize = 10 << 20
	xlsxMIME      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ImportHandler struct {
	importUC domain.ImportUsecase
}

func NewImportHandler(r *gin.RouterGroup, importUC domain.ImportUsecase, limit gin.HandlerFunc) {
	handler := &ImportHandler{importUC: importUC}

	imports := r.Group("/employees/import")
	{
		imports.POST("", limit, handler.Import)
		imports.GET("/template", handler.Template)
	}
}

// Import godoc
// @Summary      Bulk import profiles from a workbook
// @Description  Each data row of the first sheet is submitted as one profile
// @Tags         employees
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "xlsx workbook"
// @Success      200  {object}  response.Response{data=domain.ImportReport}
// @Failure      400  {object}  response.Response
// @Router       /employees/import [post]
func (h *ImportHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("file is required"))
		return
	}
	if fileHeader.Size > maxImportSize {
		c.Error(apperror.BadRequest(fmt.Sprintf("file exceeds %d MB", maxImportSize>>20)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("file could not be read"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize+1))
	if err != nil {
		c.Error(apperror.BadRequest("file could not be read"))
		return
	}
	if check := security.ValidateWorkbook(fileHeader.Filename, data); !check.Valid {
		c.Error(apperror.BadRequest("Invalid workbook: " + check.Error))
		return
	}

	report, err := h.importUC.Import(c, bytes.NewReader(data))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Workbook imported", report)
}

// Template godoc
// @Summary      Download the import template
// @Tags         employees
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /employees/import/template [get]
func (h *ImportHandler) Template(c *gin.Context) {
	data, err := h.importUC.Template()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	filename := fmt.Sprintf("employee_import_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxMIME, data)
}
