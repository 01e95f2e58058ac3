package report

import (
	"io"
	"iter"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/GustavoCaso/ledger/internal/transaction"
	"github.com/GustavoCaso/ledger/internal/util"
)

// RenderTable writes every transaction in the order given and returns how
// many rows were written.
func RenderTable(out io.Writer, transactions iter.Seq[transaction.Transaction], currency string) int {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Date", "Category", "Type", "Amount"})
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	count := 0
	for t := range transactions {
		count++
		table.Append([]string{
			strconv.Itoa(count),
			t.Date().Format(transaction.DateLayout),
			t.Category(),
			t.Type().String(),
			util.FormatMoney(t.Amount(), currency),
		})
	}

	table.SetFooter([]string{"", "", "", "Entries", strconv.Itoa(count)})
	table.Render()

	return count
}
