package v1

import (
	"github.com/simplebudget/backend/internal/report"
	ez_uuid "github.com/simplebudget/backend/internal/uuid"
)

type YearlyReportQuery struct {
	UserID   ez_uuid.UUID `form:"user"`     // ID of the user
	Year     int          `form:"year"`     // Year to report on
	YTDMonth int          `form:"ytdMonth"` // Last month included in the year-to-date figures
}

type MonthlyReportQuery struct {
	UserID ez_uuid.UUID `form:"user"`  // ID of the user
	Year   int          `form:"year"`  // Year of the month to report on
	Month  int          `form:"month"` // Month to report on
}

type YearlyReportResponse struct {
	// The yearly report
	Data *report.Yearly `json:"data"`
	// The error, if any occurred
	Error *string `json:"error" example:"the year query parameter must be set"`
}

type MonthlyReportResponse struct {
	// The monthly report
	Data *report.Monthly `json:"data"`
	// The error, if any occurred
	Error *string `json:"error" example:"the month query parameter must be set"`
}
