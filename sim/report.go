package sim

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteReport renders a replay report as plain text tables.
func WriteReport(w io.Writer, rep Report) error {
	fmt.Fprintln(w, "=== Statement ===")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Time\tSymbol\tSide\tVolume\tPrice\tAmount\tEnd Line Available")
	for _, e := range rep.Statement {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\t%.2f\t%.2f\n",
			e.Time.Format("2006-01-02 15:04:05"),
			e.Symbol, e.Side, e.Volume, e.Price, e.Amount, e.CashAfter)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Portfolio ===")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Symbol\tVolume\tAvg Cost\tMarket Price\tAmount Cost\tMarket Value\tUnrealized P/L\tUnrealized %")
	for _, r := range rep.Portfolio {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Symbol, r.Volume, r.AvgCost, r.MarketPrice,
			r.AmountCost, r.MarketValue, r.UnrealizedPL, r.UnrealizedPLPct)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := rep.Summary
	fmt.Fprintln(w, "\n=== Summary ===")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "NAV\t%.2f\n", s.NAV)
	fmt.Fprintf(tw, "Portfolio value\t%.2f\n", s.PortfolioValue)
	fmt.Fprintf(tw, "Start Line available\t%.2f\n", s.StartLine)
	fmt.Fprintf(tw, "End Line available\t%.2f\n", s.EndLine)
	fmt.Fprintf(tw, "Maximum End Line\t%.2f\n", s.MaxEndLine)
	fmt.Fprintf(tw, "Minimum End Line\t%.2f\n", s.MinEndLine)
	fmt.Fprintf(tw, "Number of transactions\t%d\n", s.Transactions)
	fmt.Fprintf(tw, "Net amount\t%.2f\n", s.NetAmount)
	fmt.Fprintf(tw, "Unrealized P/L\t%.2f\n", s.UnrealizedPL)
	fmt.Fprintf(tw, "Unrealized %% P/L\t%.2f\n", s.UnrealizedPct)
	fmt.Fprintf(tw, "Realized P/L\t%.2f\n", s.RealizedPL)
	fmt.Fprintf(tw, "Win rate\t%.2f\n", s.WinRate)
	fmt.Fprintf(tw, "Matched trades\t%d/%d\n", s.Wins, s.MatchedTrades)
	fmt.Fprintf(tw, "Return\t%.2f%%\n", s.ReturnPct)
	fmt.Fprintf(tw, "Calmar ratio\t%.2f\n", s.CalmarRatio)
	fmt.Fprintf(tw, "Relative drawdown\t%.2f\n", s.RelativeDrawdown)
	fmt.Fprintf(tw, "Maximum drawdown\t%.2f\n", s.MaxDrawdown)

	if rep.TicksSkipped > 0 {
		fmt.Fprintf(tw, "Skipped ticks\t%d/%d\n", rep.TicksSkipped, rep.TicksSeen)
	}
	return tw.Flush()
}
