package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simplebudget/backend/internal/httputil"
	"github.com/simplebudget/backend/internal/models"
	"github.com/simplebudget/backend/internal/report"
	"golang.org/x/exp/slices"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/yearly", OptionsYearlyReport)
	r.GET("/yearly", GetYearlyReport)

	r.OPTIONS("/monthly", OptionsMonthlyReport)
	r.GET("/monthly", GetMonthlyReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/yearly [options]
func OptionsYearlyReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/monthly [options]
func OptionsMonthlyReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Yearly report
// @Description	Returns the spend-vs-budget report for a whole year, including year-to-date figures
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	YearlyReportResponse
// @Failure		400	{object}	YearlyReportResponse
// @Failure		404	{object}	YearlyReportResponse
// @Failure		500	{object}	YearlyReportResponse
// @Router			/v1/reports/yearly [get]
// @Param			user		query	string	true	"ID of the user"
// @Param			year		query	int		true	"Year to report on"
// @Param			ytdMonth	query	int		false	"Last month included in the year-to-date figures. Defaults to the current month for the current year and to December for other years."
func GetYearlyReport(c *gin.Context) {
	var filter YearlyReportQuery

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if !slices.Contains(setFields, "UserID") {
		s := errUserNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, YearlyReportResponse{Error: &s})
		return
	}

	if !slices.Contains(setFields, "Year") {
		s := errYearNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, YearlyReportResponse{Error: &s})
		return
	}

	ytdMonth := report.YTDMonth(filter.Year, time.Now())
	if slices.Contains(setFields, "YTDMonth") {
		if filter.YTDMonth < 1 || filter.YTDMonth > 12 {
			s := errMonthOutOfRange.Error()
			c.JSON(http.StatusBadRequest, YearlyReportResponse{Error: &s})
			return
		}
		ytdMonth = filter.YTDMonth
	}

	snapshot, err := models.YearlySnapshot(models.DB, filter.UserID.UUID, filter.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), YearlyReportResponse{Error: &s})
		return
	}

	data := report.ComputeYearly(snapshot, ytdMonth)
	c.JSON(http.StatusOK, YearlyReportResponse{Data: &data})
}

// @Summary		Monthly report
// @Description	Returns the spend-vs-budget report for a single month
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	MonthlyReportResponse
// @Failure		400	{object}	MonthlyReportResponse
// @Failure		404	{object}	MonthlyReportResponse
// @Failure		500	{object}	MonthlyReportResponse
// @Router			/v1/reports/monthly [get]
// @Param			user	query	string	true	"ID of the user"
// @Param			year	query	int		true	"Year of the month to report on"
// @Param			month	query	int		true	"Month to report on"
func GetMonthlyReport(c *gin.Context) {
	var filter MonthlyReportQuery

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if !slices.Contains(setFields, "UserID") {
		s := errUserNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{Error: &s})
		return
	}

	if !slices.Contains(setFields, "Year") {
		s := errYearNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{Error: &s})
		return
	}

	if !slices.Contains(setFields, "Month") {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{Error: &s})
		return
	}

	if filter.Month < 1 || filter.Month > 12 {
		s := errMonthOutOfRange.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{Error: &s})
		return
	}

	snapshot, err := models.MonthlySnapshot(models.DB, filter.UserID.UUID, filter.Year, filter.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyReportResponse{Error: &s})
		return
	}

	data := report.ComputeMonthly(snapshot, filter.Month)
	c.JSON(http.StatusOK, MonthlyReportResponse{Data: &data})
}
