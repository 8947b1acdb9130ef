package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		email TEXT PRIMARY KEY,
		role TEXT NOT NULL DEFAULT 'user',
		created_at DATETIME,
		last_log_in DATETIME
	);`)
}

func createParcelTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE parcels (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		sender_region TEXT NOT NULL,
		receiver_region TEXT NOT NULL,
		created_by_email TEXT,
		payment_status TEXT NOT NULL DEFAULT 'unpaid',
		delivery_status TEXT NOT NULL DEFAULT 'not_collected',
		creation_date TEXT NOT NULL,
		assigned_rider_id TEXT,
		assigned_rider TEXT,
		rider_contact TEXT,
		assigned_at DATETIME
	);`)
}

func createRiderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE riders (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		age INTEGER,
		region TEXT NOT NULL,
		district TEXT NOT NULL,
		phone TEXT NOT NULL,
		national_id TEXT NOT NULL,
		bike_brand TEXT,
		bike_registration TEXT,
		note TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		submitted_at DATETIME
	);`)
}

func createPaymentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		parcel_id TEXT NOT NULL UNIQUE,
		amount INTEGER NOT NULL,
		transaction_id TEXT NOT NULL,
		payment_method TEXT,
		status TEXT NOT NULL DEFAULT 'paid',
		paid_at DATETIME
	);`)
}
