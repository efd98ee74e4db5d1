package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (rs *RestfulServer) ListParts(c *gin.Context) {
	search := c.Query("search")
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	parts, total, err := rs.Fleet.Inventory.ListParts(search, limit, offset)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"parts": parts, "total": total})
}

func (rs *RestfulServer) ListPartsLowOnStock(c *gin.Context) {
	parts, err := rs.Fleet.Inventory.ListPartsLowOnStock()
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, parts)
}

func (rs *RestfulServer) GetPart(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	part, err := rs.Fleet.Inventory.GetPart(id)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

type PartRequest struct {
	Name        string  `json:"name"`
	Reference   string  `json:"reference"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	MinQuantity int     `json:"minQuantity"`
	Location    string  `json:"location"`
	UnitPrice   float64 `json:"unitPrice"`
	Supplier    string  `json:"supplier"`
}

var partRequestSchema = z.Struct(z.Shape{
	"Name":        z.String().Required(),
	"Reference":   z.String().Required(),
	"Description": z.String(),
	"Quantity":    z.Int(),
	"MinQuantity": z.Int().Default(5),
	"Location":    z.String(),
	"UnitPrice":   z.Float64(),
	"Supplier":    z.String(),
})

func (rs *RestfulServer) CreatePart(c *gin.Context) {
	var req PartRequest
	if err := partRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	part := models.Part{
		Name:        req.Name,
		Reference:   req.Reference,
		Description: req.Description,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Location:    req.Location,
		UnitPrice:   req.UnitPrice,
		Supplier:    req.Supplier,
	}

	if err := rs.Fleet.Inventory.CreatePart(&part); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, part)
}

type PartUpdateRequest struct {
	Name        *string  `json:"name"`
	Reference   *string  `json:"reference"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity"`
	MinQuantity *int     `json:"minQuantity"`
	Location    *string  `json:"location"`
	UnitPrice   *float64 `json:"unitPrice"`
	Supplier    *string  `json:"supplier"`
}

func (rs *RestfulServer) UpdatePart(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req PartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Reference != nil {
		updates["reference"] = *req.Reference
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.MinQuantity != nil {
		updates["min_quantity"] = *req.MinQuantity
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.UnitPrice != nil {
		updates["unit_price"] = *req.UnitPrice
	}
	if req.Supplier != nil {
		updates["supplier"] = *req.Supplier
	}

	part, err := rs.Fleet.Inventory.UpdatePart(id, updates)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

func (rs *RestfulServer) DeletePart(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := rs.Fleet.Inventory.DeletePart(id); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

var adjustStockRequestSchema = z.Struct(z.Shape{
	"Delta": z.Int().Required(),
})

func (rs *RestfulServer) AdjustPartStock(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req AdjustStockRequest
	if err := adjustStockRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	part, err := rs.Fleet.Inventory.AdjustStock(id, req.Delta)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

type PartUsedUpdateRequest struct {
	Quantity int `json:"quantity"`
}

var partUsedUpdateRequestSchema = z.Struct(z.Shape{
	"Quantity": z.Int().Required(),
})

func (rs *RestfulServer) UpdatePartUsed(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req PartUsedUpdateRequest
	if err := partUsedUpdateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	used, err := rs.Fleet.Inventory.UpdatePartUsed(id, req.Quantity)
	if err != nil {
		rs.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, used)
}

func (rs *RestfulServer) DetachPartUsed(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := rs.Fleet.Inventory.DetachPart(id); err != nil {
		rs.serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
