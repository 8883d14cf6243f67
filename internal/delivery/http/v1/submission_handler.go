package v1

import (
	"net/http"

	"employee-profile-backend/internal/delivery/http/response"
	"employee-profile-backend/internal/domain"
	"employee-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
}

func NewSubmissionHandler(r *gin.RouterGroup, submissionUC domain.SubmissionUsecase, limit gin.HandlerFunc) {
	handler := &SubmissionHandler{submissionUC: submissionUC}

	r.GET("/form/options", handler.FormOptions)

	employees := r.Group("/employees")
	{
		employees.POST("", limit, handler.Submit)
	}
}

// Submit godoc
// @Summary      Submit an employee profile
// @Description  Validates the raw fields, resolves reference values and stores a new profile
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request body domain.ProfileSubmission true "Raw profile fields"
// @Success      201  {object}  response.Response{data=domain.SubmissionResult}
// @Failure      422  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /employees [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var input domain.ProfileSubmission
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.submissionUC.Submit(c, &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile submitted successfully!", result)
}

// FormOptions godoc
// @Summary      Allowed values of enumerated fields
// @Tags         employees
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.FormOptions}
// @Router       /form/options [get]
func (h *SubmissionHandler) FormOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, "Form options", h.submissionUC.FormOptions())
}
