package database

import (
	"context"
	"time"

	"investreports/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type Repo struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func New(db *sqlx.DB, log *logrus.Logger) *Repo {
	return &Repo{db: db, log: log}
}

// Run executes a literal query on a connection of its own and returns every row
// in the order the database produced them. The connection goes back to the pool
// on every path; a failure to release it is not reported.
func (r *Repo) Run(ctx context.Context, query string) ([]models.Row, error) {
	start := time.Now()
	conn, err := r.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			r.log.Debugf("release connection: %v", err)
		}
	}()

	rows, err := conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	dbTypes := make(map[string]string, len(types))
	for _, ct := range types {
		dbTypes[ct.Name()] = ct.DatabaseTypeName()
	}

	res := []models.Row{}
	for rows.Next() {
		m := map[string]interface{}{}
		if err := rows.MapScan(m); err != nil {
			return nil, err
		}
		res = append(res, normalizeRow(m, dbTypes))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.log.WithFields(logrus.Fields{
		"rows":    len(res),
		"elapsed": time.Since(start).String(),
	}).Debug("query executed")
	return res, nil
}
