package request

type LogHoursRequest struct {
	Hours float64 `json:"hours" binding:"required"`
	Note  string  `json:"note"`
}
