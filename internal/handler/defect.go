package handler

import (
	"net/http"

	"github.com/chobyoungjae/interface/internal/apierror"
	"github.com/chobyoungjae/interface/internal/dto"
	"github.com/chobyoungjae/interface/internal/model"
	"github.com/chobyoungjae/interface/internal/service"

	"github.com/gin-gonic/gin"
)

type DefectHandler struct{ svc service.DefectService }

func NewDefectHandler(svc service.DefectService) *DefectHandler {
	return &DefectHandler{svc: svc}
}

func (h *DefectHandler) Workers(c *gin.Context) {
	workers, err := h.svc.Workers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("작업자 목록을 가져올 수 없습니다."))
		return
	}
	c.JSON(http.StatusOK, workers)
}

func (h *DefectHandler) Products(c *gin.Context) {
	products, err := h.svc.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("생산품 목록을 가져올 수 없습니다."))
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *DefectHandler) Packaging(c *gin.Context) {
	productCode := c.Query("productCode")
	if productCode == "" {
		c.JSON(http.StatusBadRequest, apierror.New("생산품 코드를 지정해주세요."))
		return
	}

	resp, err := h.svc.Packaging(c.Request.Context(), productCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("포장지/박스 정보를 불러올 수 없습니다."))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DefectHandler) SerialLots(c *gin.Context) {
	packagingCode := c.Query("packagingCode")
	if packagingCode == "" {
		c.JSON(http.StatusBadRequest, apierror.New("포장지 코드를 지정해주세요."))
		return
	}

	lots, err := h.svc.SerialLots(c.Request.Context(), packagingCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("시리얼로트 데이터를 불러올 수 없습니다."))
		return
	}
	c.JSON(http.StatusOK, lots)
}

func (h *DefectHandler) SheetInfo(c *gin.Context) {
	info, err := h.svc.SheetInfo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("포장지 시트 정보를 불러올 수 없습니다."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"info": info})
}

func (h *DefectHandler) Save(c *gin.Context) {
	var data model.DefectCheckData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("잘못된 요청 형식입니다."))
		return
	}

	verrs, err := h.svc.Save(c.Request.Context(), data)
	if len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, apierror.NewValidation(verrs))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("데이터 저장에 실패했습니다."))
		return
	}
	c.JSON(http.StatusOK, dto.DefectSaveResponse{Success: true, Message: "저장되었습니다."})
}
