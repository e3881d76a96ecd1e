package service

import (
	"context"
	"errors"
	"time"

	"investreports/internal/database"
	"investreports/internal/models"

	"github.com/sirupsen/logrus"
)

var ErrUnknownReport = errors.New("unknown report")

// Runner executes a literal query and returns its rows in order.
type Runner interface {
	Run(ctx context.Context, query string) ([]models.Row, error)
}

var catalog = []models.Report{
	{
		Name:        "stocks_above_avg",
		Route:       "/stocks/above_avg",
		Description: "Held stocks priced above their trailing 6-day average",
		Columns:     []string{"symbol", "companyname", "currentprice"},
		Query:       database.QueryStocksAboveAverage,
	},
	{
		Name:        "bond_heavy",
		Route:       "/investors/bond_heavy",
		Description: "Investors with more than 20% in bonds and an experienced, below-average-fee advisor",
		Columns:     []string{"investorid", "firstname", "lastname"},
		Query:       database.QueryBondHeavyInvestors,
	},
	{
		Name:        "portfolio",
		Route:       "/investors/portfolio",
		Description: "Per-investor totals and percentage split across stocks, bonds and mutual funds",
		Columns: []string{
			"investorid", "firstname", "lastname",
			"total_stock_investment", "total_bond_investment", "total_mutual_fund_investment",
			"stock_percentage", "bond_percentage", "mutual_fund_percentage",
		},
		Query: database.QueryPortfolioComposition,
	},
	{
		Name:        "top_volume",
		Route:       "/market/top_volume",
		Description: "Highest-volume market data rows for each date",
		Columns:     []string{"date", "assetid", "price", "volume"},
		Query:       database.QueryTopVolume,
	},
	{
		Name:        "low_yield_bonds",
		Route:       "/investors/low_yield_bonds",
		Description: "Bond holdings with a coupon rate below the average over all bonds",
		Columns: []string{
			"investorid", "firstname", "lastname", "bondname",
			"quantity", "total_bond_value", "bond_yield",
		},
		Query: database.QueryLowYieldBonds,
	},
}

type ReportService struct {
	runner Runner
	log    *logrus.Logger
}

func NewReportService(r Runner, log *logrus.Logger) *ReportService {
	return &ReportService{runner: r, log: log}
}

// Reports returns a copy of the catalog in route order.
func (s *ReportService) Reports() []models.Report {
	out := make([]models.Report, len(catalog))
	copy(out, catalog)
	return out
}

func (s *ReportService) Lookup(name string) (models.Report, error) {
	for _, r := range catalog {
		if r.Name == name {
			return r, nil
		}
	}
	return models.Report{}, ErrUnknownReport
}

func (s *ReportService) Run(ctx context.Context, name string) ([]models.Row, error) {
	rep, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := s.runner.Run(ctx, rep.Query)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.Row{}
	}
	s.log.WithFields(logrus.Fields{
		"report":  rep.Name,
		"rows":    len(rows),
		"elapsed": time.Since(start).String(),
	}).Debug("report served")
	return rows, nil
}
