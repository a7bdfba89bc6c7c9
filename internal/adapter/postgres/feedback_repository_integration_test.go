package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/domain"
)

var (
	testPool        *pgxpool.Pool
	testDatabaseURL string
)

func TestMain(m *testing.M) {
	// Parse flags to check for -short
	flag.Parse()

	// Skip container setup if running in short mode
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()

	// Start PostgreSQL container once for all tests
	postgresContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start postgres container: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to terminate postgres container: %v\n", err)
		}
	}()

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get connection string: %v\n", err)
		os.Exit(1)
	}
	testDatabaseURL = connStr

	// Connect to database
	testPool, err = Connect(ctx, testDatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to test database: %v\n", err)
		os.Exit(1)
	}
	defer testPool.Close()

	// Run migrations
	if err := RunMigrationsWithLock(ctx, testPool); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	os.Exit(code)
}

// setupTestDB returns a pool and registers cleanup to truncate tables
func setupTestDB(t *testing.T) *pgxpool.Pool {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Cleanup(func() {
		ctx := context.Background()
		_, err := testPool.Exec(ctx, "TRUNCATE feedback")
		if err != nil {
			t.Logf("Failed to truncate tables: %v", err)
		}
	})

	return testPool
}

func sampleStoredFeedback() *domain.Feedback {
	return &domain.Feedback{
		ID:                  uuid.New(),
		ProductID:           "Rings",
		ProductName:         "Gold Band",
		Rating:              5,
		ReviewText:          "Love this ring! It's so elegant and shiny.",
		CreatedAt:           time.Now().UTC().Truncate(time.Microsecond),
		SentimentLabel:      "Positive",
		SentimentScore:      0.3,
		SentimentConfidence: 0.5,
		Themes:              []string{"Appearance"},
		Tokens:              []string{"love", "this", "ring"},
		Language:            "en",
		Meta:                map[string]string{"source": "test"},
	}
}

func TestConnect_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pool, err := Connect(ctx, testDatabaseURL)
	require.NoError(t, err)
	require.NotNil(t, pool)
	defer pool.Close()

	// Verify connection works
	err = pool.Ping(ctx)
	require.NoError(t, err)
}

func TestInsertAndGetByID(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewFeedbackRepo(pool)
	ctx := context.Background()

	inserted := sampleStoredFeedback()
	require.NoError(t, repo.Insert(ctx, inserted))

	got, err := repo.GetByID(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, got.ID)
	assert.Equal(t, inserted.ProductID, got.ProductID)
	assert.Equal(t, inserted.Rating, got.Rating)
	assert.Equal(t, inserted.ReviewText, got.ReviewText)
	assert.Equal(t, inserted.SentimentLabel, got.SentimentLabel)
	assert.InDelta(t, inserted.SentimentScore, got.SentimentScore, 1e-9)
	assert.Equal(t, inserted.Themes, got.Themes)
	assert.Equal(t, inserted.Tokens, got.Tokens)
	assert.Equal(t, inserted.Meta, got.Meta)
	assert.True(t, inserted.CreatedAt.Equal(got.CreatedAt))
}

func TestGetByID_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewFeedbackRepo(pool)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrFeedbackNotFound)
	assert.Nil(t, got)
}

func TestList_OrdersByCreatedAtDescending(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewFeedbackRepo(pool)
	ctx := context.Background()

	older := sampleStoredFeedback()
	older.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
	newer := sampleStoredFeedback()
	newer.ReviewText = "The clasp broke after a week."

	require.NoError(t, repo.Insert(ctx, older))
	require.NoError(t, repo.Insert(ctx, newer))

	feedbacks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, feedbacks, 2)
	assert.Equal(t, newer.ID, feedbacks[0].ID)
	assert.Equal(t, older.ID, feedbacks[1].ID)
}

func TestList_Empty(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewFeedbackRepo(pool)

	feedbacks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feedbacks)
}

func TestListByProduct_FiltersByProductID(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewFeedbackRepo(pool)
	ctx := context.Background()

	ring := sampleStoredFeedback()
	earring := sampleStoredFeedback()
	earring.ProductID = "Earrings"

	require.NoError(t, repo.Insert(ctx, ring))
	require.NoError(t, repo.Insert(ctx, earring))

	feedbacks, err := repo.ListByProduct(ctx, "Rings")
	require.NoError(t, err)
	require.Len(t, feedbacks, 1)
	assert.Equal(t, ring.ID, feedbacks[0].ID)
}

func TestExists(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewFeedbackRepo(pool)
	ctx := context.Background()

	feedback := sampleStoredFeedback()
	require.NoError(t, repo.Insert(ctx, feedback))

	exists, err := repo.Exists(ctx, feedback.ProductID, feedback.Rating, feedback.ReviewText)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, feedback.ProductID, 1, feedback.ReviewText)
	require.NoError(t, err)
	assert.False(t, exists)
}
