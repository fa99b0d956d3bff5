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

type AnalyticsAPITestSuite struct {
	suite.Suite
	app     *testApplication
	baseURL string
}

func (suite *AnalyticsAPITestSuite) SetupSuite() {
	app, err := newTestApplication("waitlist_analytics")
	suite.Require().NoError(err)

	suite.app = app
	suite.baseURL = app.server.URL
}

func (suite *AnalyticsAPITestSuite) TearDownSuite() {
	suite.app.Close()
}

func (suite *AnalyticsAPITestSuite) SetupTest() {
	suite.app.db.Exec("DELETE FROM analytics_events")
	suite.app.db.Exec("DELETE FROM waitlist_entries")
}

func (suite *AnalyticsAPITestSuite) postEvent(body map[string]any) (*http.Response, map[string]any) {
	jsonBody, err := json.Marshal(body)
	suite.Require().NoError(err)

	resp, err := http.Post(suite.baseURL+"/v1/events", "application/json", bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))

	return resp, response
}

func (suite *AnalyticsAPITestSuite) getStats(query string) (*http.Response, map[string]any) {
	resp, err := http.Get(suite.baseURL + "/v1/stats" + query)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))

	return resp, response
}

func (suite *AnalyticsAPITestSuite) TestTrackEvent() {
	resp, response := suite.postEvent(map[string]any{
		"event":     "page_view",
		"sessionId": "sess-1",
		"page":      "/pricing",
		"referrer":  "https://news.ycombinator.com",
		"properties": map[string]any{
			"plan": "pro",
		},
	})

	suite.Equal(http.StatusCreated, resp.StatusCode)
	suite.Equal(float64(201), response["code"])

	var event models.AnalyticsEvent
	suite.Require().NoError(suite.app.db.First(&event).Error)
	suite.Equal("page_view", event.EventName)
	suite.Equal("sess-1", event.SessionID)
	suite.Equal("/pricing", event.PageURL)
	suite.JSONEq(`{"plan":"pro"}`, event.Properties)
}

func (suite *AnalyticsAPITestSuite) TestTrackEventRequiresName() {
	resp, _ := suite.postEvent(map[string]any{"page": "/pricing"})

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (suite *AnalyticsAPITestSuite) TestStats() {
	suite.Require().NoError(suite.app.db.Create(&models.WaitlistEntry{
		Email:        "ada@example.com",
		ReferralCode: "STATS1",
		Status:       models.WaitlistStatusPending,
	}).Error)

	// /pricing accumulates three events to /'s two, so the top page is
	// unambiguous.
	events := []map[string]any{
		{"event": "page_view", "sessionId": "s1", "page": "/"},
		{"event": "page_view", "sessionId": "s1", "page": "/pricing"},
		{"event": "page_view", "sessionId": "s2", "page": "/", "referrer": "https://twitter.com"},
		{"event": "page_view", "sessionId": "s3", "page": "/pricing"},
		{"event": "signup_click", "sessionId": "s2", "page": "/pricing"},
	}
	for _, event := range events {
		resp, _ := suite.postEvent(event)
		suite.Require().Equal(http.StatusCreated, resp.StatusCode)
	}

	resp, response := suite.getStats("")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(float64(200), response["code"])

	data := response["data"].(map[string]any)
	suite.Equal(float64(1), data["total"])
	suite.Equal("7d", data["time_range"])

	eventCounts := data["event_counts"].([]any)
	suite.NotEmpty(eventCounts)

	countsByEvent := map[string]float64{}
	for _, row := range eventCounts {
		entry := row.(map[string]any)
		countsByEvent[entry["event"].(string)] += entry["count"].(float64)
	}
	suite.Equal(float64(4), countsByEvent["page_view"])
	suite.Equal(float64(1), countsByEvent["signup_click"])

	topPages := data["top_pages"].([]any)
	suite.Require().NotEmpty(topPages)
	first := topPages[0].(map[string]any)
	suite.Equal("/pricing", first["page"])
	suite.Equal(float64(3), first["count"])

	referrers := data["referrer_breakdown"].([]any)
	referrerCounts := map[string]float64{}
	for _, row := range referrers {
		entry := row.(map[string]any)
		referrerCounts[entry["referrer"].(string)] = entry["count"].(float64)
	}
	suite.Equal(float64(4), referrerCounts["direct"])
	suite.Equal(float64(1), referrerCounts["https://twitter.com"])
}

func (suite *AnalyticsAPITestSuite) TestStatsExplicitRanges() {
	for _, timeRange := range []string{"24h", "7d", "30d", "all"} {
		resp, response := suite.getStats("?range=" + timeRange)

		suite.Equal(http.StatusOK, resp.StatusCode, timeRange)
		data := response["data"].(map[string]any)
		suite.Equal(timeRange, data["time_range"])
	}
}

func (suite *AnalyticsAPITestSuite) TestStatsRejectsUnknownRange() {
	resp, response := suite.getStats("?range=90d")

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.Equal(float64(400), response["code"])
}

func TestAnalyticsAPISuite(t *testing.T) {
	// Skip integration tests unless explicitly requested
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}

	suite.Run(t, new(AnalyticsAPITestSuite))
}
