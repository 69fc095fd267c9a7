package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// registerEconomySteps registers the domain-level convenience steps. They
// drive the same HTTP API as the generic steps, but compress the common
// setup (register, create child, configure apps, run learning sessions)
// into single lines so feature files read like the workflows they test.
func registerEconomySteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a parent "([^"]*)" with password "([^"]*)" is registered$`, aParentIsRegistered)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, iLogInAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^a child named "([^"]*)" exists$`, aChildNamedExists)
	ctx.Step(`^a learning app "([^"]*)" earning (\d+) coinz per minute is configured$`, aLearningAppIsConfigured)
	ctx.Step(`^a reward app "([^"]*)" costing (\d+) coinz per minute with a daily limit of (\d+) minutes is configured$`, aRewardAppIsConfigured)
	ctx.Step(`^a learning session is active for "([^"]*)"$`, aLearningSessionIsActive)
	ctx.Step(`^the child completes (\d+) learning minutes in "([^"]*)"$`, theChildCompletesLearningMinutes)
}

// expectStatus fails with the response body attached, which is usually
// enough to diagnose a broken setup step without re-running.
func (tc *TestContext) expectStatus(expected int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func (tc *TestContext) postJSON(endpoint, body string) error {
	return tc.doRequest(http.MethodPost, endpoint, strings.NewReader(tc.substitute(body)))
}

func aParentIsRegistered(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"email": %q, "name": "Test Parent", "password": %q}`, email, password)
	if err := tc.postJSON("/api/v1/auth/register", body); err != nil {
		return ctx, err
	}
	if err := tc.expectStatus(http.StatusCreated); err != nil {
		return ctx, fmt.Errorf("registration failed: %w", err)
	}

	token, err := tc.lookupField("access_token")
	if err != nil {
		return ctx, err
	}
	tc.accessToken = fmt.Sprintf("%v", token)
	return SetTestContext(ctx, tc), nil
}

func iLogInAs(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	tc.accessToken = ""
	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
	if err := tc.postJSON("/api/v1/auth/login", body); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode == http.StatusOK {
		if token, err := tc.lookupField("access_token"); err == nil {
			tc.accessToken = fmt.Sprintf("%v", token)
		}
	}
	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return SetTestContext(ctx, tc), nil
}

func aChildNamedExists(ctx context.Context, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"name": %q}`, name)
	if err := tc.postJSON("/api/v1/children", body); err != nil {
		return ctx, err
	}
	if err := tc.expectStatus(http.StatusCreated); err != nil {
		return ctx, fmt.Errorf("child creation failed: %w", err)
	}

	childID, err := tc.lookupField("child.id")
	if err != nil {
		return ctx, err
	}
	tc.stored["childId"] = fmt.Sprintf("%v", childID)
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) configureApp(appID, category string, rate, dailyLimit int) error {
	request := map[string]interface{}{
		"app_id":       appID,
		"display_name": appID,
		"category":     category,
		"coinz_rate":   rate,
	}
	if dailyLimit > 0 {
		request["daily_time_limit"] = dailyLimit
	}
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}
	if err := tc.postJSON("/api/v1/apps", string(body)); err != nil {
		return err
	}
	if err := tc.expectStatus(http.StatusCreated); err != nil {
		return fmt.Errorf("app configuration failed: %w", err)
	}
	return nil
}

func aLearningAppIsConfigured(ctx context.Context, appID string, rate int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.configureApp(appID, "learning", rate, 0)
}

func aRewardAppIsConfigured(ctx context.Context, appID string, cost, dailyLimit int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.configureApp(appID, "reward", -cost, dailyLimit)
}

func aLearningSessionIsActive(ctx context.Context, appID string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"app_id": %q}`, appID)
	if err := tc.postJSON("/api/v1/children/{childId}/sessions", body); err != nil {
		return err
	}
	if err := tc.expectStatus(http.StatusCreated); err != nil {
		return fmt.Errorf("session start failed: %w", err)
	}
	return nil
}

func theChildCompletesLearningMinutes(ctx context.Context, minutes int, appID string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"app_id": %q}`, appID)
	if err := tc.postJSON("/api/v1/children/{childId}/sessions", body); err != nil {
		return err
	}
	if err := tc.expectStatus(http.StatusCreated); err != nil {
		return fmt.Errorf("session start failed: %w", err)
	}

	for i := 0; i < minutes; i++ {
		if err := tc.postJSON("/api/v1/children/{childId}/sessions/tick", body); err != nil {
			return err
		}
		if err := tc.expectStatus(http.StatusOK); err != nil {
			return fmt.Errorf("tick %d failed: %w", i+1, err)
		}
	}

	if err := tc.postJSON("/api/v1/children/{childId}/sessions/end", body); err != nil {
		return err
	}
	return tc.expectStatus(http.StatusOK)
}
