package report

import (
	"cmp"
	"embed"
	"io"
	"iter"
	"math"
	"path"
	"slices"
	"text/template"
	"time"

	"github.com/GustavoCaso/ledger/internal/store"
	"github.com/GustavoCaso/ledger/internal/transaction"
	"github.com/GustavoCaso/ledger/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

const percentageOfTotal = 100

type Category struct {
	Name              string
	Type              transaction.Type
	Amount            int64
	Count             int
	PercentageOfTotal float64
}

type Report struct {
	Title                 string
	Currency              string
	Income                int64
	Expense               int64
	Balance               int64
	SavingsPercentage     float64
	AverageSpendingPerDay int64
	Categories            []Category
}

// Monthly builds the report for the calendar month containing asOf.
func Monthly(asOf time.Time, transactions iter.Seq[transaction.Transaction], currency string) Report {
	summary := store.Summarize(transactions, asOf)

	report := Report{
		Title:                 util.MonthTitle(asOf),
		Currency:              currency,
		Income:                summary.Income,
		Expense:               summary.Expense,
		Balance:               summary.Balance,
		AverageSpendingPerDay: summary.Expense / int64(util.DaysInMonth(asOf)),
		Categories:            categories(store.InMonth(transactions, asOf), summary),
	}

	savingsPercentage := float64(summary.Balance*percentageOfTotal) / float64(summary.Income)
	if !math.IsNaN(savingsPercentage) && !math.IsInf(savingsPercentage, 0) {
		report.SavingsPercentage = savingsPercentage
	}

	return report
}

type categoryKey struct {
	name string
	kind transaction.Type
}

func categories(transactions iter.Seq[transaction.Transaction], summary store.Summary) []Category {
	byKey := map[categoryKey]*Category{}
	var ordered []*Category

	for t := range transactions {
		key := categoryKey{name: t.Category(), kind: t.Type()}
		c, ok := byKey[key]
		if !ok {
			c = &Category{Name: t.Category(), Type: t.Type()}
			byKey[key] = c
			ordered = append(ordered, c)
		}
		c.Amount += t.Amount()
		c.Count++
	}

	result := make([]Category, 0, len(ordered))
	for _, c := range ordered {
		total := summary.Expense
		if c.Type == transaction.IncomeType {
			total = summary.Income
		}
		if total != 0 {
			c.PercentageOfTotal = float64(c.Amount*percentageOfTotal) / float64(total)
		}
		result = append(result, *c)
	}

	// income first, then the biggest amounts
	slices.SortStableFunc(result, func(a, b Category) int {
		if a.Type != b.Type {
			return cmp.Compare(b.Type, a.Type)
		}
		return cmp.Compare(b.Amount, a.Amount)
	})

	return result
}

var templateFuncs = template.FuncMap{
	"formatMoney": util.FormatMoney,
	"colorMoney":  util.ColorMoney,
}

func Render(out io.Writer, report Report) error {
	return renderTemplate(out, "summary.tmpl", report)
}

func renderTemplate(out io.Writer, templateName string, value interface{}) error {
	tmpl, err := content.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return err
	}
	t, err := template.New(templateName).Funcs(templateFuncs).Parse(string(tmpl))
	if err != nil {
		return err
	}

	return t.Execute(out, value)
}
