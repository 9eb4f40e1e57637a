package postgres

import (
	"database/sql"
	"strings"
	"testing"

	"Postboard/internal/core/posts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// dryRunDB returns a gorm handle that renders SQL without ever dialing the server
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("postgres", "postgres://nobody@127.0.0.1:1/none?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := NewGormDB(sqlDB)
	require.NoError(t, err)
	return gdb
}

func renderPostViewQuery(t *testing.T, f PostFilter) string {
	return renderPostViewQueryFrom(t, f, func(tx *gorm.DB) *gorm.DB { return tx })
}

// renderPostViewQueryFrom lets a test hand the builder a handle that already carries conditions
func renderPostViewQueryFrom(t *testing.T, f PostFilter, prepare func(*gorm.DB) *gorm.DB) string {
	t.Helper()
	gdb := dryRunDB(t)
	return gdb.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var views []*posts.PostView
		return BuildPostViewQuery(prepare(tx), f).Find(&views)
	})
}

// wantPostViewSQL assembles the expected statement around the inner query's conditions and paging
func wantPostViewSQL(where, paging string) string {
	inner := `SELECT posts.*, COUNT(votes.post_id) AS votes FROM "posts" LEFT JOIN votes ON votes.post_id = posts.id`
	if where != "" {
		inner += " WHERE " + where
	}
	inner += ` GROUP BY "posts"."id" ORDER BY posts.id ASC`
	if paging != "" {
		inner += " " + paging
	}
	return "SELECT p.*, CONCAT(users.first_name, ' ', users.last_name) AS author_name FROM (" + inner +
		") AS p JOIN users ON users.id = p.author_id ORDER BY p.id ASC"
}

func intPtr(v int) *int { return &v }

func TestBuildPostViewQuery_Shape(t *testing.T) {
	query := renderPostViewQuery(t, PostFilter{})

	assert.Equal(t, wantPostViewSQL("", ""), query)
}

func TestBuildPostViewQuery_SearchAndPagination(t *testing.T) {
	query := renderPostViewQuery(t, PostFilter{Search: "Hello", Limit: intPtr(10), Offset: 5})

	assert.Equal(t, wantPostViewSQL("strpos(posts.title, 'Hello') > 0", "LIMIT 10 OFFSET 5"), query)
}

func TestBuildPostViewQuery_SinglePost(t *testing.T) {
	id := int64(7)
	query := renderPostViewQuery(t, PostFilter{PostID: &id})

	assert.Equal(t, wantPostViewSQL("posts.id = 7", ""), query)
}

func TestBuildPostViewQuery_ZeroLimit(t *testing.T) {
	query := renderPostViewQuery(t, PostFilter{Limit: intPtr(0)})

	assert.Equal(t, wantPostViewSQL("", "LIMIT 0"), query)
}

func TestBuildPostViewQuery_IgnoresChainedConditions(t *testing.T) {
	query := renderPostViewQueryFrom(t, PostFilter{Search: "Hello"}, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("1 = 1")
	})

	assert.Equal(t, wantPostViewSQL("strpos(posts.title, 'Hello') > 0", ""), query)
	assert.Equal(t, 1, strings.Count(query, "FROM (SELECT"))
}
