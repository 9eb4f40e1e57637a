package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"

	"Postboard/internal/core/posts"
	"Postboard/internal/core/users"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// testDSN is empty when neither TEST_DATABASE_URL nor Docker is available
var testDSN string

func TestMain(m *testing.M) {
	os.Exit(runTests(m))
}

func runTests(m *testing.M) int {
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		testDSN = dsn
		return m.Run()
	}

	ctx := context.Background()
	container, err := startPostgres(ctx)
	if err != nil {
		log.Printf("postgres container unavailable, integration tests will be skipped: %v", err)
		return m.Run()
	}
	defer func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			log.Printf("failed to terminate postgres container: %v", err)
		}
	}()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Printf("failed to read container connection string: %v", err)
		return 1
	}
	testDSN = dsn

	return m.Run()
}

func startPostgres(ctx context.Context) (container *tcpostgres.PostgresContainer, err error) {
	// testcontainers panics instead of erroring when no provider is reachable
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docker provider not available: %v", r)
		}
	}()

	return tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("postboard_test"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_password"),
		tcpostgres.BasicWaitStrategies(),
	)
}

// setupTestDB connects to the shared database, migrates it and empties every table
func setupTestDB(t *testing.T) (*sql.DB, *gorm.DB) {
	t.Helper()
	if testDSN == "" {
		t.Skip("no test database: set TEST_DATABASE_URL or run Docker")
	}

	db, err := Connect(context.Background(), testDSN)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db), "Failed to run migrations")

	_, err = db.Exec("TRUNCATE votes, posts, users RESTART IDENTITY CASCADE")
	require.NoError(t, err, "Failed to reset tables")

	gdb, err := NewGormDB(db)
	require.NoError(t, err)

	return db, gdb
}

// createTestUser inserts a user through the user repository
func createTestUser(t *testing.T, db *sql.DB, first, last string) *users.User {
	t.Helper()
	user := &users.User{
		Email:     first + "." + last + "@example.com",
		Password:  "not-a-real-hash",
		FirstName: first,
		LastName:  last,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

// createTestPost inserts a post through the post repository
func createTestPost(t *testing.T, gdb *gorm.DB, authorID int64, title string) *posts.Post {
	t.Helper()
	post := &posts.Post{
		Title:     title,
		Content:   "content of " + title,
		Published: true,
		AuthorID:  authorID,
	}
	require.NoError(t, NewPostRepository(gdb).Create(context.Background(), post))
	return post
}
