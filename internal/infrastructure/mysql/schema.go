package mysql

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the application tables if they do not exist yet.
// Records are never dropped here; History is pruned only through the
// cleanup endpoint.
func EnsureSchema(db *sql.DB) error {
	statements := []struct {
		name  string
		query string
	}{
		{"Websites", createWebsitesTable},
		{"Referrals", createReferralsTable},
		{"PaymentSessions", createPaymentSessionsTable},
		{"ConciergeOrders", createConciergeOrdersTable},
		{"History", createHistoryTable},
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt.query); err != nil {
			return fmt.Errorf("creating table %s: %w", stmt.name, err)
		}
	}

	return nil
}

const createWebsitesTable = `
CREATE TABLE IF NOT EXISTS Websites (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	description TEXT,
	siteType VARCHAR(20) NOT NULL,
	businessName VARCHAR(150) NOT NULL,
	primaryColor VARCHAR(20) NOT NULL DEFAULT '#3B82F6',
	htmlContent MEDIUMTEXT,
	cssContent MEDIUMTEXT,
	jsContent MEDIUMTEXT,
	price DECIMAL(10,2) NOT NULL,
	referralCode VARCHAR(64),
	paid TINYINT(1) NOT NULL DEFAULT 0,
	createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	INDEX idx_paid (paid)
)`

const createReferralsTable = `
CREATE TABLE IF NOT EXISTS Referrals (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	code VARCHAR(64) NOT NULL UNIQUE,
	userId VARCHAR(36) NOT NULL,
	createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	expiresAt DATETIME NOT NULL,
	used TINYINT(1) NOT NULL DEFAULT 0,
	INDEX idx_code (code)
)`

const createPaymentSessionsTable = `
CREATE TABLE IF NOT EXISTS PaymentSessions (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	websiteId VARCHAR(36) NOT NULL,
	amount DECIMAL(10,2) NOT NULL,
	referralCode VARCHAR(64),
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	INDEX idx_website (websiteId)
)`

const createConciergeOrdersTable = `
CREATE TABLE IF NOT EXISTS ConciergeOrders (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	websiteId VARCHAR(36) NOT NULL,
	contactEmail VARCHAR(150) NOT NULL,
	domain VARCHAR(255) NOT NULL,
	urgency VARCHAR(10) NOT NULL DEFAULT 'normal',
	status VARCHAR(30) NOT NULL DEFAULT 'pending',
	price DECIMAL(10,2) NOT NULL,
	paymentLink TEXT,
	alternatives JSON,
	liveUrl VARCHAR(255),
	errorDetail TEXT,
	createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	paidAt DATETIME,
	completedAt DATETIME,
	INDEX idx_website (websiteId),
	INDEX idx_status (status)
)`

const createHistoryTable = `
CREATE TABLE IF NOT EXISTS History (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	action VARCHAR(50) NOT NULL,
	websiteId VARCHAR(36),
	orderId VARCHAR(36),
	userSession VARCHAR(64) NOT NULL DEFAULT '',
	details JSON,
	createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	INDEX idx_action (action),
	INDEX idx_session (userSession),
	INDEX idx_created (createdAt)
)`
