package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/simplebudget/backend/internal/controllers/v1"
	"github.com/simplebudget/backend/internal/models"
	"github.com/simplebudget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUsersOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestUsersOptions() {
	tests := []struct {
		name   string
		id     string // path at the users endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No user with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"User exists", createTestUser(suite.T(), v1.UserEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/users", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestUsersCreate() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Riley", Note: "Test user"})

	assert.Equal(suite.T(), "Riley", user.Data.Name)
	assert.Equal(suite.T(), "Test user", user.Data.Note)
	assert.NotEqual(suite.T(), uuid.Nil, user.Data.ID)
}

func (suite *TestSuiteStandard) TestUsersCreateDuplicateName() {
	_ = createTestUser(suite.T(), v1.UserEditable{Name: "Riley"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", []v1.UserEditable{{Name: "Riley"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.UserCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Equal(suite.T(), models.ErrUserNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestUsersGetList() {
	for i := 0; i < 3; i++ {
		_ = createTestUser(suite.T(), v1.UserEditable{Name: fmt.Sprintf("User %d", i)})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestUsersGetFilter() {
	_ = createTestUser(suite.T(), v1.UserEditable{Name: "Riley"})
	_ = createTestUser(suite.T(), v1.UserEditable{Name: "Sam"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users?name=Riley", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestUsersUpdate() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Riley"})

	r := test.Request(suite.T(), http.MethodPatch, user.Data.Links.Self, map[string]any{
		"note": "Updated note",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Riley", response.Data.Name)
	assert.Equal(suite.T(), "Updated note", response.Data.Note)
}

func (suite *TestSuiteStandard) TestUsersDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	r := test.Request(suite.T(), http.MethodDelete, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
