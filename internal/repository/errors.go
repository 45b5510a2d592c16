// Package repository contains the MySQL data access layer.  Each
// entity has its own repository with context-aware queries; operations
// that must be atomic run their own transaction.  Repositories return
// the sentinel errors declared by the scheduling package so services
// can translate them without knowing about SQL.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry is the server error number MySQL reports when an
// insert or update violates a unique key.
const mysqlDuplicateEntry = 1062

// isDuplicateKey reports whether err is a unique-key violation.  The
// unique keys on centers.owner_id and exam_date_subjects are what turn
// check-then-insert races into clean conflicts.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
