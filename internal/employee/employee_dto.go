package employee

type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder *int   `json:"display_order"`
}

type UpdateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder *int   `json:"display_order"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}
