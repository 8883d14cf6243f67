package v1

import (
	"net/http"
	"strings"

	"employee-profile-backend/internal/delivery/http/response"
	"employee-profile-backend/internal/domain"
	"employee-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	referenceUC domain.ReferenceUsecase
}

type resolveRequest struct {
	Name string `json:"name" binding:"required"`
}

func NewReferenceHandler(r *gin.RouterGroup, referenceUC domain.ReferenceUsecase) {
	handler := &ReferenceHandler{referenceUC: referenceUC}

	references := r.Group("/references")
	{
		references.GET("/:kind", handler.List)
		references.POST("/:kind", handler.Resolve)
	}
}

// List godoc
// @Summary      Available values of a reference kind
// @Tags         references
// @Produce      json
// @Param        kind path string true "industries | designations | skills | certifications | locations"
// @Success      200  {object}  response.Response{data=[]string}
// @Failure      400  {object}  response.Response
// @Router       /references/{kind} [get]
func (h *ReferenceHandler) List(c *gin.Context) {
	kind := domain.ReferenceKind(c.Param("kind"))

	names, err := h.referenceUC.ListNames(c, kind)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reference values", names)
}

// Resolve godoc
// @Summary      Get or create a reference value
// @Tags         references
// @Accept       json
// @Produce      json
// @Param        kind path string true "Reference kind"
// @Param        request body resolveRequest true "Exact name"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /references/{kind} [post]
func (h *ReferenceHandler) Resolve(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("name is required"))
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.Error(apperror.BadRequest("name is required"))
		return
	}

	id, err := h.referenceUC.Resolve(c, domain.ReferenceKind(c.Param("kind")), name)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reference resolved", gin.H{"id": id, "name": name})
}
