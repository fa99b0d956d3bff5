package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/akeren/waitlist-api/internal/models"
	"github.com/stretchr/testify/suite"
)

type WaitlistAPITestSuite struct {
	suite.Suite
	app     *testApplication
	baseURL string
}

func (suite *WaitlistAPITestSuite) SetupSuite() {
	app, err := newTestApplication("waitlist_public")
	suite.Require().NoError(err)

	suite.app = app
	suite.baseURL = app.server.URL
}

func (suite *WaitlistAPITestSuite) TearDownSuite() {
	suite.app.Close()
}

func (suite *WaitlistAPITestSuite) SetupTest() {
	suite.app.db.Exec("DELETE FROM waitlist_entries")
}

func (suite *WaitlistAPITestSuite) postSignup(body map[string]any) (*http.Response, map[string]any) {
	jsonBody, err := json.Marshal(body)
	suite.Require().NoError(err)

	resp, err := http.Post(suite.baseURL+"/v1/waitlist", "application/json", bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))

	return resp, response
}

func (suite *WaitlistAPITestSuite) TestHealthCheck() {
	resp, err := http.Get(suite.baseURL + "/health")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))

	suite.Equal(float64(200), response["code"])
	suite.Contains(response["message"], "health check completed")

	data := response["data"].(map[string]any)
	suite.Equal("ok", data["status"])
	suite.Contains(data, "uptime")

	database := data["database"].(map[string]any)
	suite.Equal(true, database["connected"])
}

func (suite *WaitlistAPITestSuite) TestSignup() {
	resp, response := suite.postSignup(map[string]any{
		"email":     "ada@example.com",
		"name":      "Ada Lovelace",
		"company":   "Analytical Engines",
		"role":      "engineer",
		"interests": "beta access",
	})

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(float64(200), response["code"])
	suite.Contains(response["message"], "created successfully")

	data := response["data"].(map[string]any)
	suite.Equal("ada@example.com", data["email"])
	suite.Equal("pending", data["status"])
	suite.Regexp(`^[A-Z0-9]{6}$`, data["referral_code"])
	suite.Contains(data, "id")
}

func (suite *WaitlistAPITestSuite) TestSignupWithoutEmail() {
	resp, response := suite.postSignup(map[string]any{})

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.Equal(float64(400), response["code"])
	suite.Contains(response["message"].(string), "email")
}

func (suite *WaitlistAPITestSuite) TestSignupWithMalformedEmail() {
	resp, response := suite.postSignup(map[string]any{"email": "not-an-email"})

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.Equal(float64(400), response["code"])
}

func (suite *WaitlistAPITestSuite) TestSignupDuplicateEmail() {
	resp, _ := suite.postSignup(map[string]any{"email": "dup@example.com"})
	suite.Equal(http.StatusOK, resp.StatusCode)

	resp, response := suite.postSignup(map[string]any{"email": "dup@example.com"})

	suite.Equal(http.StatusConflict, resp.StatusCode)
	suite.Equal(float64(409), response["code"])
	suite.Contains(response["message"], "already exists")
}

func (suite *WaitlistAPITestSuite) TestSignupRecordsReferralAttribution() {
	_, first := suite.postSignup(map[string]any{"email": "referrer@example.com"})
	referralCode := first["data"].(map[string]any)["referral_code"].(string)

	resp, _ := suite.postSignup(map[string]any{
		"email":        "referred@example.com",
		"referralCode": referralCode,
	})
	suite.Equal(http.StatusOK, resp.StatusCode)

	var referred models.WaitlistEntry
	err := suite.app.db.Where("email = ?", "referred@example.com").First(&referred).Error
	suite.Require().NoError(err)
	suite.Equal(referralCode, referred.ReferredBy)
	suite.NotEqual(referralCode, referred.ReferralCode)
}

func (suite *WaitlistAPITestSuite) TestSignupIgnoresUnknownReferralCode() {
	resp, _ := suite.postSignup(map[string]any{
		"email":        "hopeful@example.com",
		"referralCode": "ZZZZZZ",
	})
	suite.Equal(http.StatusOK, resp.StatusCode)

	var entry models.WaitlistEntry
	err := suite.app.db.Where("email = ?", "hopeful@example.com").First(&entry).Error
	suite.Require().NoError(err)
	suite.Empty(entry.ReferredBy)
}

func TestWaitlistAPISuite(t *testing.T) {
	// Skip integration tests unless explicitly requested
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}

	suite.Run(t, new(WaitlistAPITestSuite))
}
