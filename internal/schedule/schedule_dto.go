package schedule

type GenerateScheduleRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}

type SetLeaveRequest struct {
	// Nama karyawan yang libur; string kosong menghapus libur hari itu.
	EmployeeName string `json:"employee_name"`
}

type DayScheduleResponse struct {
	Day     int      `json:"day"`
	Date    string   `json:"date"`
	DayName string   `json:"day_name"`
	Leave   string   `json:"leave"`
	Pagi    []string `json:"pagi"`
	Malam   []string `json:"malam"`
	Note    string   `json:"note,omitempty"`
}

type ScheduleResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []DayScheduleResponse `json:"days"`

	// Stats ikut dikirim hanya setelah generate, untuk ditampilkan;
	// tidak pernah disimpan.
	Stats map[string]EmployeeStats `json:"stats,omitempty"`
}

func mapToResponse(s Schedule, stats Stats) ScheduleResponse {
	resp := ScheduleResponse{
		Year:  s.Year,
		Month: int(s.Month),
		Days:  make([]DayScheduleResponse, len(s.Days)),
	}
	for i, d := range s.Days {
		resp.Days[i] = DayScheduleResponse{
			Day:     d.Day,
			Date:    d.Date.Format("2006-01-02"),
			DayName: d.DayName,
			Leave:   d.Leave,
			Pagi:    d.Pagi,
			Malam:   d.Malam,
			Note:    d.Note,
		}
	}
	if stats != nil {
		resp.Stats = make(map[string]EmployeeStats, len(stats))
		for name, st := range stats {
			resp.Stats[name] = *st
		}
	}
	return resp
}
