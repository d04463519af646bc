package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/simplebudget/backend/internal/models"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Name string `json:"name" example:"jane" default:""`             // Name of the user
	Note string `json:"note" example:"Jane's own data" default:""`  // Notes about the user
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type UserLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/users/3b1ea324-d438-4419-882a-2fc91d71772f"`               // The user itself
	Budgets string `json:"budgets" example:"https://example.com/api/v1/budgets?user=3b1ea324-d438-4419-882a-2fc91d71772f"`     // Yearly budgets of this user
	Reports string `json:"reports" example:"https://example.com/api/v1/reports/yearly?user=3b1ea324-d438-4419-882a-2fc91d71772f"` // Yearly report for this user
}

type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: UserLinks{
			Self:    fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Budgets: fmt.Sprintf("%s/v1/budgets?user=%s", url, model.ID),
			Reports: fmt.Sprintf("%s/v1/reports/yearly?user=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of Users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Data  []UserResponse `json:"data"`                                                          // List of the created Users or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (u *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	u.Data = append(u.Data, UserResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the User
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first User returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Users to return. Defaults to 50.
}
