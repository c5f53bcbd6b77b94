package database_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutri-app/nutri/backend/config"
	"github.com/nutri-app/nutri/backend/internal/database"
	"github.com/nutri-app/nutri/backend/internal/testhelpers"
)

func sqliteHandle(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:migrator%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func writeMigrations(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count)
	require.NoError(t, err)
	return count > 0
}

func TestMigratorUpAndRollback(t *testing.T) {
	db := sqliteHandle(t)
	dir := writeMigrations(t, map[string]string{
		"001_create_alpha.sql":          "CREATE TABLE alpha (id INTEGER PRIMARY KEY);",
		"001_create_alpha_rollback.sql": "DROP TABLE alpha;",
		"002_create_beta.sql":           "CREATE TABLE beta (id INTEGER PRIMARY KEY);",
		"002_create_beta_rollback.sql":  "DROP TABLE beta;",
		"README.md":                     "not a migration",
	})
	ctx := context.Background()
	m := database.NewMigrator(db, dir)

	applied, err := m.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_alpha.sql", "002_create_beta.sql"}, applied)
	assert.True(t, tableExists(t, db, "alpha"))
	assert.True(t, tableExists(t, db, "beta"))

	applied, err = m.Up(ctx)
	require.NoError(t, err)
	assert.Empty(t, applied)

	name, err := m.Rollback(ctx)
	require.NoError(t, err)
	assert.Equal(t, "002_create_beta.sql", name)
	assert.False(t, tableExists(t, db, "beta"))
	assert.True(t, tableExists(t, db, "alpha"))

	name, err = m.Rollback(ctx)
	require.NoError(t, err)
	assert.Equal(t, "001_create_alpha.sql", name)

	_, err = m.Rollback(ctx)
	assert.ErrorIs(t, err, database.ErrNoMigrations)
}

func TestMigratorStopsOnBrokenMigration(t *testing.T) {
	db := sqliteHandle(t)
	dir := writeMigrations(t, map[string]string{
		"001_ok.sql":     "CREATE TABLE ok_table (id INTEGER);",
		"002_broken.sql": "CREATE TABLE ???;",
		"003_never.sql":  "CREATE TABLE never_table (id INTEGER);",
	})

	applied, err := database.NewMigrator(db, dir).Up(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_broken.sql")
	assert.Equal(t, []string{"001_ok.sql"}, applied)
	assert.False(t, tableExists(t, db, "never_table"))
}

func TestMigratorMissingRollbackFile(t *testing.T) {
	db := sqliteHandle(t)
	dir := writeMigrations(t, map[string]string{
		"001_only_up.sql": "CREATE TABLE only_up (id INTEGER);",
	})
	m := database.NewMigrator(db, dir)
	_, err := m.Up(context.Background())
	require.NoError(t, err)

	_, err = m.Rollback(context.Background())
	require.Error(t, err)
	assert.True(t, tableExists(t, db, "only_up"))
}

func TestMigratorMissingDirectory(t *testing.T) {
	_, err := database.NewMigrator(sqliteHandle(t), filepath.Join(t.TempDir(), "missing")).Up(context.Background())
	assert.Error(t, err)
}

func TestOpenSQLiteAndAutoMigrate(t *testing.T) {
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBName:   fmt.Sprintf("file:open%d?mode=memory&cache=shared", time.Now().UnixNano()),
	}
	gdb, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, database.RunMigrations(context.Background(), gdb, ""))
	for _, table := range []string{"users", "user_profiles", "progress_entries", "recommendations", "bookmarks", "meals"} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}
	assert.NoError(t, database.Ping(context.Background(), gdb))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestPostgresMigrations(t *testing.T) {
	gdb := testhelpers.SetupPostgresDatabase(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	for _, table := range []string{"users", "user_profiles", "progress_entries", "recommendations", "bookmarks", "meals"} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}
	assert.True(t, gdb.Migrator().HasColumn("bookmarks", "embedding"))

	m := database.NewMigrator(sqlDB, testhelpers.MigrationsDir(t))
	name, err := m.Rollback(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "001_init.sql", name)
	assert.False(t, gdb.Migrator().HasTable("meals"))

	applied, err := m.Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql"}, applied)
	assert.True(t, gdb.Migrator().HasTable("meals"))
}
