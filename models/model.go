package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Lock returns a query handle that takes row-level FOR UPDATE locks, so a
// matching walk holds every resting order it touches until commit.
func Lock(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
