//go:build integration

package infrastructure

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sebuszqo/BudgetPlanner/internal/budget/application"
	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
	database "github.com/sebuszqo/BudgetPlanner/internal/db"
)

// setupTestDB starts a disposable PostgreSQL container, applies the embedded
// migrations and returns an open connection. The container is terminated via
// t.Cleanup.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func insertTestUser(t *testing.T, db *sql.DB, income int64) string {
	t.Helper()

	var userID string
	err := db.QueryRow(`
		INSERT INTO users (username, email, password_hash, monthly_income)
		VALUES ($1, $2, 'x', $3)
		RETURNING id
	`, "user_"+uuid.NewString()[:8], uuid.NewString()+"@example.com", income).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func TestIntegration_DatabaseHealth(t *testing.T) {
	db := setupTestDB(t)

	service := &database.DBService{DB: db}
	health := service.Health()
	assert.Equal(t, "up", health["status"])
	assert.NotEmpty(t, health["open_connections"])
}

func TestIntegration_RuleRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRuleRepository(db)

	for _, rule := range application.DefaultRules() {
		require.NoError(t, repo.Save(rule))
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	rule, err := repo.FindByID("50-30-20")
	require.NoError(t, err)
	assert.Equal(t, "50/30/20", rule.Name)
	assert.Equal(t, []int{50, 30, 20}, rule.DefaultBreakdown.Percentages())
	assert.False(t, rule.IsCustomizable)
	assert.Nil(t, rule.PriorityLimit)

	custom, err := repo.FindByID("custom")
	require.NoError(t, err)
	require.NotNil(t, custom.PriorityLimit)
	assert.Equal(t, 5, *custom.PriorityLimit)

	// Saving again must upsert, not duplicate.
	require.NoError(t, repo.Save(*rule))
	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = repo.FindByID("no-such-rule")
	assert.True(t, budgetErrors.IsNotFoundError(err))
}

func TestIntegration_ProfileRepository_SelectionRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)

	userID := insertTestUser(t, db, 60000)

	profile, err := repo.FindByUserID(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(60000), profile.MonthlyIncome)
	assert.Empty(t, profile.RuleID)
	assert.Nil(t, profile.Breakdown)

	profile.RuleID = "80-20"
	profile.Breakdown = domain.NewBreakdown([]string{"Essentials", "Savings"}, []int{80, 20})
	profile.IsCustom = true
	require.NoError(t, repo.SaveSelection(*profile))

	reloaded, err := repo.FindByUserID(userID)
	require.NoError(t, err)
	assert.Equal(t, "80-20", reloaded.RuleID)
	assert.True(t, reloaded.IsCustom)
	assert.Equal(t, []string{"Essentials", "Savings"}, reloaded.Breakdown.Labels())
	assert.Equal(t, []int{80, 20}, reloaded.Breakdown.Percentages())

	missing := *profile
	missing.UserID = uuid.NewString()
	err = repo.SaveSelection(missing)
	assert.True(t, budgetErrors.IsNotFoundError(err))
}

func TestIntegration_CategoryRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)

	userID := insertTestUser(t, db, 60000)

	category := domain.Category{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     "Rent",
		Priority: 1,
		Amount:   0,
		Limit:    25000,
	}
	require.NoError(t, repo.Save(category))

	found, err := repo.FindByID(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rent", found.Name)
	assert.Equal(t, int64(25000), found.Limit)

	require.NoError(t, repo.UpdateAmount(category.ID, 12000))
	found, err = repo.FindByID(category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), found.Amount)

	second := domain.Category{ID: uuid.NewString(), UserID: userID, Name: "Groceries", Priority: 1, Amount: 500, Limit: 3000}
	require.NoError(t, repo.Save(second))

	categories, err := repo.FindByUser(userID)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Rent", categories[0].Name)

	require.NoError(t, repo.ResetAmounts())
	categories, err = repo.FindByUser(userID)
	require.NoError(t, err)
	for _, c := range categories {
		assert.Zero(t, c.Amount)
	}

	require.NoError(t, repo.Delete(category.ID))
	err = repo.Delete(category.ID)
	assert.True(t, budgetErrors.IsNotFoundError(err))

	_, err = repo.FindByID(category.ID)
	assert.True(t, budgetErrors.IsNotFoundError(err))
}
