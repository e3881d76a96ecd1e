// Package migrations carries the investmentmanagement schema and a demo data set.
package migrations

import _ "embed"

//go:embed 0001_init.up.sql
var Schema string

//go:embed demo_data.sql
var DemoData string
