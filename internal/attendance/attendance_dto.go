package attendance

type SetStatusRequest struct {
	EmployeeName string  `json:"employee_name" binding:"required"`
	Year         int     `json:"year" binding:"required"`
	Month        int     `json:"month" binding:"required"`
	Day          int     `json:"day" binding:"required"`
	Status       string  `json:"status" binding:"required"`
	LateHours    float64 `json:"late_hours"`
}

type DayStatusResponse struct {
	EmployeeName string  `json:"employee_name"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Day          int     `json:"day"`
	Status       string  `json:"status"`
	LateHours    float64 `json:"late_hours"`
}
