// Package steps provides step definitions for the BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/application/usecase/goal"
	"github.com/budgetwise/backend/internal/application/usecase/report"
	"github.com/budgetwise/backend/internal/application/usecase/transaction"
	"github.com/budgetwise/backend/internal/application/usecase/user"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/infra/server/router"
	"github.com/budgetwise/backend/internal/integration/adapters"
	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetwise/backend/internal/integration/persistence"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
	"github.com/budgetwise/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-integration-tests"

var serverOnce sync.Once
var testServer *httptest.Server
var testDB *mock.Db

// testContext holds the state of a single scenario.
type testContext struct {
	client  *http.Client
	headers map[string]string

	response *response

	accessToken  string
	refreshToken string

	currentUserID uuid.UUID
	lastCreatedID string
}

type response struct {
	status int
	body   any
	raw    []byte
}

// InitializeTestSuite sets up suite-wide resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		_ = os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.reset()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAsWithPassword)
	ctx.Given(`^the user has an? "([^"]*)" transaction of "([^"]*)" in category "([^"]*)" on "([^"]*)"$`, test.theUserHasATransaction)
	ctx.Given(`^the user has a budget of "([^"]*)" for category "([^"]*)" in "([^"]*)"$`, test.theUserHasABudget)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) entries$`, test.theResponseFieldShouldHaveEntries)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) rows in the "([^"]*)" table$`, test.theDbShouldContainRowsInTheTable)
}

func (t *testContext) reset() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.lastCreatedID = ""

	if testDB != nil {
		if err := testDB.Reset(); err != nil {
			panic(fmt.Sprintf("failed to reset test database: %v", err))
		}
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

// startServer wires the full application against the in-memory database and
// redis, once for the whole suite.
func startServer() {
	serverOnce.Do(func() {
		testDB = mock.NewDb([]any{
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.TransactionModel{},
			&model.BudgetModel{},
			&model.GoalModel{},
		})
		redisClient := mock.NewRedis()

		userRepo := persistence.NewUserRepository(testDB.DbConn)
		tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
		transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
		budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
		goalRepo := persistence.NewGoalRepository(testDB.DbConn)
		reportRepo := persistence.NewReportRepository(testDB.DbConn)

		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenRepo)

		healthController := controller.NewHealthController(
			func() bool { return testDB != nil && testDB.DbConn != nil },
			func() bool { return redisClient.Ping(context.Background()).Err() == nil },
		)
		authController := controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
			auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
			auth.NewRefreshTokenUseCase(tokenService),
			auth.NewLogoutUserUseCase(tokenService),
		)
		userController := controller.NewUserController(
			user.NewGetProfileUseCase(userRepo),
			user.NewUpdateProfileUseCase(userRepo, passwordService),
		)
		transactionController := controller.NewTransactionController(
			transaction.NewCreateTransactionUseCase(transactionRepo),
			transaction.NewListTransactionsUseCase(transactionRepo),
			transaction.NewUpdateTransactionUseCase(transactionRepo),
			transaction.NewDeleteTransactionUseCase(transactionRepo),
		)
		budgetController := controller.NewBudgetController(
			budget.NewCreateBudgetUseCase(budgetRepo),
			budget.NewListBudgetsUseCase(budgetRepo),
			budget.NewUpdateBudgetUseCase(budgetRepo),
			budget.NewDeleteBudgetUseCase(budgetRepo),
		)
		goalController := controller.NewGoalController(
			goal.NewCreateGoalUseCase(goalRepo),
			goal.NewListGoalsUseCase(goalRepo),
			goal.NewUpdateGoalUseCase(goalRepo),
			goal.NewDeleteGoalUseCase(goalRepo),
		)
		reportController := controller.NewReportController(
			report.NewBuildMonthlyReportUseCase(reportRepo),
			report.NewGetSummaryUseCase(reportRepo),
			report.NewGetTrendsUseCase(reportRepo),
		)

		loginRateLimiter := middleware.NewRateLimiter(redisClient)
		authMiddleware := middleware.NewAuthMiddleware(tokenService)

		r := router.NewRouter(
			healthController,
			authController,
			userController,
			transactionController,
			budgetController,
			goalController,
			reportController,
			loginRateLimiter,
			authMiddleware,
		)
		testServer = httptest.NewServer(r.Setup("test"))
	})
}

func (t *testContext) theAPIServerIsRunning() error {
	startServer()
	if testServer == nil {
		return fmt.Errorf("test server failed to start")
	}
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u := entity.NewUser(email, "Test User", string(hash))
	t.currentUserID = u.ID

	return testDB.DbConn.Create(model.UserFromEntity(u)).Error
}

func (t *testContext) iAmLoggedInAsWithPassword(email, password string) error {
	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %v", t.response.status, t.response.body)
	}

	data, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected login response: %v", t.response.body)
	}
	t.accessToken, _ = data["access_token"].(string)
	t.refreshToken, _ = data["refresh_token"].(string)
	return nil
}

func (t *testContext) theUserHasATransaction(transactionType, amount, category, date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	tx := entity.NewTransaction(
		t.currentUserID,
		entity.TransactionType(transactionType),
		category,
		decimal.RequireFromString(amount),
		"",
		day,
	)
	return testDB.DbConn.Create(model.TransactionFromEntity(tx)).Error
}

func (t *testContext) theUserHasABudget(amount, category, month string) error {
	b := entity.NewBudget(t.currentUserID, month, category, decimal.RequireFromString(amount), "")
	return testDB.DbConn.Create(model.BudgetFromEntity(b)).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastCreatedID)
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := testServer.URL + path

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: raw}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = parsed

	if id, ok := parsed["id"].(string); ok {
		t.lastCreatedID = id
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)",
			expectedStatus, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}

	actual := formatFieldValue(value)
	if actual != expected {
		return fmt.Errorf("field %q: expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

func (t *testContext) theResponseFieldShouldHaveEntries(field string, count int) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}

	entries, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not an array: %v", field, value)
	}
	if len(entries) != count {
		return fmt.Errorf("field %q: expected %d entries, got %d", field, count, len(entries))
	}
	return nil
}

func (t *testContext) theDbShouldContainRowsInTheTable(count int, table string) error {
	var rows int64
	if err := testDB.DbConn.Table(table).Count(&rows).Error; err != nil {
		return fmt.Errorf("failed to count rows in %q: %w", table, err)
	}
	if rows != int64(count) {
		return fmt.Errorf("expected %d rows in %q, got %d", count, table, rows)
	}
	return nil
}

// lookupField resolves a dotted path into the response body. Numeric path
// segments index into arrays, e.g. "budget_vs_actual.0.remaining".
func (t *testContext) lookupField(path string) (any, error) {
	if t.response == nil {
		return nil, fmt.Errorf("no response received")
	}

	var current any = t.response.body
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, string(t.response.raw))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q", path, segment)
		}
	}
	return current, nil
}

// formatFieldValue renders JSON values the way the feature files write them.
// Numbers keep their shortest decimal form.
func formatFieldValue(value any) string {
	if number, ok := value.(float64); ok {
		return strconv.FormatFloat(number, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}
