// Package orm is a thin chainable wrapper over gorm used by the
// repositories. It carries an explicit *gorm.DB handle instead of a package
// global and records query durations in the prometheus registry.
package orm

import (
	"time"

	"github.com/shashiranjanraj/stockpile/pkg/metrics"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

// New wraps an injected database handle.
func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

// Select restricts the columns touched by a subsequent Updates call.
// With gorm, selecting columns explicitly forces zero values to be
// written too, which is what a wholesale update needs.
func (q *Query) Select(columns ...interface{}) *Query {
	if len(columns) == 0 {
		return q
	}
	first := columns[0]
	rest := columns[1:]
	return &Query{db: q.db.Select(first, rest...)}
}

// Find loads every matching row into dest. No rows is not an error.
func (q *Query) Find(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

// First loads the first matching row into dest.
// Returns gorm.ErrRecordNotFound when no row matches.
func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

// Create inserts v and backfills its generated primary key.
func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

// Updates applies v to the matching rows and returns how many were
// affected. Zero affected rows is not an error.
func (q *Query) Updates(v interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())
	tx := q.db.Updates(v)
	return tx.RowsAffected, tx.Error
}

// Delete removes the matching rows and returns how many were affected.
// Zero affected rows is not an error.
func (q *Query) Delete(v interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("delete", time.Now())
	tx := q.db.Delete(v)
	return tx.RowsAffected, tx.Error
}
