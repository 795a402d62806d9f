// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/activity-log/backend/config"
	"github.com/activity-log/backend/internal/infra/dependency"
	"github.com/activity-log/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	db  *mock.Db
	cfg *config.Config

	// IDs of activities created via the API, by activity name.
	createdIDs map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			db:         mock.NewDb(),
			cfg:        config.Load(),
			createdIDs: make(map[string]string),
		}

		if err := tc.db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to reset redis: %w", err)
		}

		injector := dependency.NewInjector(tc.cfg, tc.db.DbConn, redisClient)
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^an activity named "([^"]*)" occurred at "([^"]*)"$`, anActivityNamedOccurredAt)
	ctx.Step(`^I delete the activity named "([^"]*)"$`, iDeleteTheActivityNamed)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should list (\d+) activities$`, theResponseShouldListActivities)
	ctx.Step(`^activity (\d+) in the response should be named "([^"]*)"$`, activityInTheResponseShouldBeNamed)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (tc *TestContext) doRequest(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, tc.server.URL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return GetTestContext(ctx).doRequest(method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	return GetTestContext(ctx).doRequest(method, path, bytes.NewBufferString(body.Content))
}

// anActivityNamedOccurredAt creates an activity through the API and remembers
// its ID so later steps can reference it by name.
func anActivityNamedOccurredAt(ctx context.Context, name, occurredAt string) error {
	tc := GetTestContext(ctx)

	payload := map[string]any{
		"name":        name,
		"quantity":    "1",
		"occurred_at": occurredAt,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := tc.doRequest(http.MethodPost, "/api/v1/activities", bytes.NewBuffer(encoded)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to create activity %q: status %d, body %s",
			name, tc.response.StatusCode, string(tc.responseBody))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return err
	}
	tc.createdIDs[name] = created.ID
	return nil
}

func iDeleteTheActivityNamed(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	id, ok := tc.createdIDs[name]
	if !ok {
		return fmt.Errorf("no activity named %q was created in this scenario", name)
	}
	return tc.doRequest(http.MethodDelete, "/api/v1/activities/"+id, nil)
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)",
			expected, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)

	var payload map[string]any
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return fmt.Errorf("response is not a JSON object: %w", err)
	}

	value, ok := payload[field]
	if !ok {
		return fmt.Errorf("field %q not present in response: %s", field, string(tc.responseBody))
	}
	if fmt.Sprintf("%v", value) != expected {
		return fmt.Errorf("field %q = %v, want %q", field, value, expected)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, substr string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), substr) {
		return fmt.Errorf("response %s does not contain %q", string(tc.responseBody), substr)
	}
	return nil
}

func (tc *TestContext) listedActivities() ([]map[string]any, error) {
	var payload struct {
		Activities []map[string]any `json:"activities"`
	}
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return nil, fmt.Errorf("response is not an activity list: %w", err)
	}
	return payload.Activities, nil
}

func theResponseShouldListActivities(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	activities, err := tc.listedActivities()
	if err != nil {
		return err
	}
	if len(activities) != expected {
		return fmt.Errorf("expected %d activities, got %d", expected, len(activities))
	}
	return nil
}

func activityInTheResponseShouldBeNamed(ctx context.Context, index int, name string) error {
	tc := GetTestContext(ctx)
	activities, err := tc.listedActivities()
	if err != nil {
		return err
	}
	if index >= len(activities) {
		return fmt.Errorf("response lists only %d activities, wanted index %d", len(activities), index)
	}
	if activities[index]["name"] != name {
		return fmt.Errorf("activity %d is named %v, want %q", index, activities[index]["name"], name)
	}
	return nil
}
