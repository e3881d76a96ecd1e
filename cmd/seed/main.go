package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"investreports/internal/config"
	"investreports/internal/database"
	"investreports/migrations"

	"github.com/shopspring/decimal"
)

func main() {
	schemaOnly := flag.Bool("schema-only", false, "create the schema without inserting demo rows")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := cfg.NewLogger()

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Ping(ctx, db); err != nil {
		logger.Fatalf("failed to connect to db: %v", err)
	}

	fmt.Printf("Applying schema to %s@%s/%s...\n", cfg.User, cfg.Host, cfg.Name)
	if _, err := db.ExecContext(ctx, migrations.Schema); err != nil {
		logger.Fatalf("apply schema: %v", err)
	}
	if *schemaOnly {
		fmt.Println("Schema ready.")
		return
	}

	if _, err := db.ExecContext(ctx, migrations.DemoData); err != nil {
		logger.Fatalf("insert demo data: %v", err)
	}

	// quick sanity summary of what the reports will see
	var holdings struct {
		Stocks decimal.Decimal `db:"stocks"`
		Bonds  decimal.Decimal `db:"bonds"`
		Funds  decimal.Decimal `db:"funds"`
	}
	err = db.GetContext(ctx, &holdings, `
		SELECT
			(SELECT COALESCE(SUM(sh.quantity * si.currentprice), 0) FROM investmentmanagement.stockholdings sh JOIN investmentmanagement.stockinformation si ON sh.symbol = si.symbol) AS stocks,
			(SELECT COALESCE(SUM(bh.quantity * bi.bondprice), 0) FROM investmentmanagement.bondholdings bh JOIN investmentmanagement.bondinformation bi ON bh.bondid = bi.bondid) AS bonds,
			(SELECT COALESCE(SUM(mh.quantity * f.nav), 0) FROM investmentmanagement.mutualfundholdings mh JOIN investmentmanagement.fund f ON mh.fundid = f.fundid) AS funds`)
	if err != nil {
		logger.Warnf("summary query failed: %v", err)
		return
	}
	total := holdings.Stocks.Add(holdings.Bonds).Add(holdings.Funds)
	fmt.Printf("Seeded holdings: stocks %s, bonds %s, funds %s (total %s)\n",
		holdings.Stocks.StringFixed(2), holdings.Bonds.StringFixed(2), holdings.Funds.StringFixed(2), total.StringFixed(2))
}
