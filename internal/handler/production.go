package handler

import (
	"net/http"

	"github.com/chobyoungjae/interface/internal/apierror"
	"github.com/chobyoungjae/interface/internal/dto"
	"github.com/chobyoungjae/interface/internal/model"
	"github.com/chobyoungjae/interface/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProductionHandler struct{ svc service.ProductionService }

func NewProductionHandler(svc service.ProductionService) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

// Products lists the aggregated BOM products. A store outage degrades to the
// built-in sample catalog so the form stays usable.
func (h *ProductionHandler) Products(c *gin.Context) {
	products, err := h.svc.Products(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("BOM read failed, serving sample catalog")
		c.JSON(http.StatusOK, service.SampleProducts)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductionHandler) Materials(c *gin.Context) {
	materials, err := h.svc.Materials(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("원재료 목록을 가져올 수 없습니다."))
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *ProductionHandler) Authors(c *gin.Context) {
	authors, err := h.svc.Authors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("작성자 목록을 가져올 수 없습니다."))
		return
	}
	c.JSON(http.StatusOK, authors)
}

func (h *ProductionHandler) SerialLots(c *gin.Context) {
	lots, err := h.svc.SerialLots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("시리얼로트 데이터를 불러올 수 없습니다."))
		return
	}
	c.JSON(http.StatusOK, lots)
}

func (h *ProductionHandler) SerialLotInfo(c *gin.Context) {
	info, err := h.svc.SerialLotInfo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("시리얼로트 시트 정보를 불러올 수 없습니다."))
		return
	}
	c.JSON(http.StatusOK, info)
}

// Calculate scales the selected product's materials to the requested weight.
// Validation failures come back as a 400 with the collected messages.
func (h *ProductionHandler) Calculate(c *gin.Context) {
	var req dto.CalculateRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, errs := h.svc.Calculate(c.Request.Context(), req)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Save validates and appends one production record.
func (h *ProductionHandler) Save(c *gin.Context) {
	var data model.ProductionData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("잘못된 요청 형식입니다."))
		return
	}

	resp, verrs, err := h.svc.Save(c.Request.Context(), data)
	if len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, apierror.NewValidation(verrs))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("데이터 저장 중 오류가 발생했습니다."))
		return
	}
	c.JSON(http.StatusOK, resp)
}
