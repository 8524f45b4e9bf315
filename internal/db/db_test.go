package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastra-labs/wastra/internal/models"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) *DB {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := New(Config{
		Path:        dbPath,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	})
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "wastra.db")

	db, err := New(DefaultConfig(dbPath))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.Equal(t, dbPath, db.Path())
	assert.FileExists(t, dbPath)
}

func TestUpsertCourses_ReplaceByPrimaryKey(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.UpsertCourses([]models.Course{
		{ID: 1, Title: "Batik Basics", AuthorName: "Sari"},
		{ID: 2, Title: "Wood Carving", AuthorName: "Budi"},
	}))

	// Second batch overwrites id 1 and adds id 3.
	require.NoError(t, db.UpsertCourses([]models.Course{
		{ID: 1, Title: "Batik Basics (2nd ed)", AuthorName: "Sari"},
		{ID: 3, Title: "Weaving", AuthorName: "Ayu"},
	}))

	courses, err := db.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 3)

	updated, err := db.GetCourse(1)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Batik Basics (2nd ed)", updated.Title)
}

func TestUpsertCourses_OmittedRowsRemain(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.UpsertCourses([]models.Course{
		{ID: 1, Title: "Batik Basics"},
		{ID: 2, Title: "Wood Carving"},
	}))

	// A later sync that omits course 2 must leave it cached.
	require.NoError(t, db.UpsertCourses([]models.Course{
		{ID: 1, Title: "Batik Basics"},
	}))

	course, err := db.GetCourse(2)
	require.NoError(t, err)
	assert.NotNil(t, course)
}

func TestUpsertCourses_EmptyBatchIsNoop(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.UpsertCourses(nil))

	courses, err := db.ListCourses()
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestGetCourse_AbsentReturnsNil(t *testing.T) {
	db := testDB(t)

	course, err := db.GetCourse(42)
	require.NoError(t, err)
	assert.Nil(t, course)
}

func TestListCourses_NewestFirst(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.UpsertCourses([]models.Course{
		{ID: 1, Title: "first"},
		{ID: 3, Title: "third"},
		{ID: 2, Title: "second"},
	}))

	courses, err := db.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, 3, courses[0].ID)
	assert.Equal(t, 1, courses[2].ID)
}

func TestDeleteCourse(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.UpsertCourse(&models.Course{ID: 7, Title: "Pottery"}))
	require.NoError(t, db.DeleteCourse(7))

	course, err := db.GetCourse(7)
	require.NoError(t, err)
	assert.Nil(t, course)
}

func TestClearCourses(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.UpsertCourses([]models.Course{{ID: 1}, {ID: 2}}))
	require.NoError(t, db.ClearCourses())

	courses, err := db.ListCourses()
	require.NoError(t, err)
	assert.Empty(t, courses)
}
