package chart

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/analytics"
)

// Chart slot names. One live renderer per slot.
const (
	SlotCashflow   = "cashflow"
	SlotCategories = "categories"
	SlotBreakEven  = "breakeven"
)

const barWidth = 30

var errClosed = errors.New("chart is closed")

var (
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	capitalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	labelStyle   = lipgloss.NewStyle().Faint(true)
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

// Formatter renders an amount for display.
type Formatter func(decimal.Decimal) string

func barLen(amount, max decimal.Decimal) int {
	if max.Sign() <= 0 || amount.Sign() <= 0 {
		return 0
	}
	ratio, _ := amount.Div(max).Float64()
	n := int(ratio * barWidth)
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return n
}

// CashflowChart draws the 6-month income/expense bar chart.
type CashflowChart struct {
	Data   analytics.Cashflow
	Format Formatter
	closed bool
}

func (c *CashflowChart) Render(w io.Writer) error {
	if c.closed {
		return errClosed
	}

	max := decimal.Zero
	for i := 0; i < analytics.Buckets; i++ {
		if c.Data.Income[i].GreaterThan(max) {
			max = c.Data.Income[i]
		}
		if c.Data.Expense[i].GreaterThan(max) {
			max = c.Data.Expense[i]
		}
	}

	for i := 0; i < analytics.Buckets; i++ {
		fmt.Fprintln(w, labelStyle.Render(c.Data.Labels[i]))
		fmt.Fprintf(w, "  %s %s\n",
			incomeStyle.Render(strings.Repeat("█", barLen(c.Data.Income[i], max))+"▏"),
			c.Format(c.Data.Income[i]))
		fmt.Fprintf(w, "  %s %s\n",
			expenseStyle.Render(strings.Repeat("█", barLen(c.Data.Expense[i], max))+"▏"),
			c.Format(c.Data.Expense[i]))
	}
	fmt.Fprintf(w, "%s pemasukan  %s pengeluaran\n",
		incomeStyle.Render("█"), expenseStyle.Render("█"))
	return nil
}

func (c *CashflowChart) Close() error {
	c.closed = true
	return nil
}

// CategoryChart draws expense totals per category as proportion bars,
// largest first.
type CategoryChart struct {
	Totals map[string]decimal.Decimal
	Format Formatter
	closed bool
}

func (c *CategoryChart) Render(w io.Writer) error {
	if c.closed {
		return errClosed
	}

	names := make([]string, 0, len(c.Totals))
	max := decimal.Zero
	width := 0
	for name, amount := range c.Totals {
		names = append(names, name)
		if amount.GreaterThan(max) {
			max = amount
		}
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := c.Totals[names[i]], c.Totals[names[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		amount := c.Totals[name]
		fmt.Fprintf(w, "%-*s %s %s\n", width, name,
			expenseStyle.Render(strings.Repeat("█", barLen(amount, max))+"▏"),
			c.Format(amount))
	}
	return nil
}

func (c *CategoryChart) Close() error {
	c.closed = true
	return nil
}

// ProjectionChart draws the break-even projection: cumulative profit
// against the flat capital line, with the break-even month marked. The net
// series is carried but only printed when ShowNet is set.
type ProjectionChart struct {
	Projection *analytics.Projection
	Format     Formatter
	ShowNet    bool
	closed     bool
}

func (c *ProjectionChart) Render(w io.Writer) error {
	if c.closed {
		return errClosed
	}

	p := c.Projection
	max := p.Capital[0]
	if last := p.CumulativeProfit[p.Horizon()-1]; last.GreaterThan(max) {
		max = last
	}

	for i := 0; i < p.Horizon(); i++ {
		month := i + 1
		line := fmt.Sprintf("%s %s %s",
			labelStyle.Render(fmt.Sprintf("Bulan %2d", month)),
			incomeStyle.Render(strings.Repeat("█", barLen(p.CumulativeProfit[i], max))+"▏"),
			c.Format(p.CumulativeProfit[i]))
		if c.ShowNet {
			line += fmt.Sprintf("  (net %s)", c.Format(p.Net[i]))
		}
		if month == p.BreakEvenMonth {
			line += " " + markerStyle.Render("◀ balik modal")
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%s modal awal: %s\n", capitalStyle.Render("─"), c.Format(p.Capital[0]))
	return nil
}

func (c *ProjectionChart) Close() error {
	c.closed = true
	return nil
}
