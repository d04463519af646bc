package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/simplebudget/backend/internal/models"
	ez_uuid "github.com/simplebudget/backend/internal/uuid"
)

// MatchRuleEditable represents all user configurable parameters
type MatchRuleEditable struct {
	UserID     uuid.UUID `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the user the match rule belongs to
	CategoryID uuid.UUID `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the rule assigns
	Priority   uint      `json:"priority" example:"3"`                                      // The priority of the match rule
	Match      string    `json:"match" example:"Bank*" default:""`                          // The matching applied to the item and source of purchases. Supports globbing.
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		UserID:     editable.UserID,
		CategoryID: editable.CategoryID,
		Priority:   editable.Priority,
		Match:      editable.Match,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/3b1ea324-d438-4419-882a-2fc91d71772f"` // The match rule itself
}

type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			UserID:     model.UserID,
			CategoryID: model.CategoryID,
			Priority:   model.Priority,
			Match:      model.Match,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of MatchRules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Data  []MatchRuleResponse `json:"data"`                                                          // List of the created MatchRules or their respective error
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, MatchRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`                                                          // Data for the MatchRule
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MatchRuleQueryFilter struct {
	UserID     ez_uuid.UUID `form:"user"`                       // By ID of the User
	CategoryID ez_uuid.UUID `form:"category"`                   // By ID of the category
	Match      string       `form:"match" filterField:"false"`  // By text in the match
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first MatchRule returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of MatchRules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		UserID:     f.UserID.UUID,
		CategoryID: f.CategoryID.UUID,
	}
}
