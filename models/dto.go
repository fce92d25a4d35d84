package models

// CreatePlantRequest carries the fields a client must supply when creating a
// plant. Price is a pointer so "price": 0 still passes the presence check.
type CreatePlantRequest struct {
	Name  string   `json:"name" form:"name" binding:"required"`
	Image string   `json:"image" form:"image" binding:"required"`
	Price *float64 `json:"price" form:"price" binding:"required"`
}

// UpdatePlantRequest carries the optional fields of a partial update. A nil
// IsInStock means the field was absent from the body and the record is
// written back unchanged.
type UpdatePlantRequest struct {
	IsInStock *bool `json:"is_in_stock" form:"is_in_stock"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
