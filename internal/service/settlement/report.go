package settlement

import (
	"context"
	"fmt"
	"math"
	"strings"

	"pokerhost/pkg/utils/clock"
)

// Report renders the shareable plain-text settlement report: game header,
// totals block, expense line items, and the transfer instructions.
func (s *Service) Report(ctx context.Context, gameID int64) (string, error) {
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return "", err
	}
	result, err := s.Settle(ctx, gameID)
	if err != nil {
		return "", err
	}
	sum := result.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "牌局結算報告：%s\n", game.Name)
	startedAt := game.StartedAt
	fmt.Fprintf(&b, "開始 %s  結束 %s\n", clock.FormatTime(&startedAt), clock.FormatTime(game.EndedAt))
	b.WriteString("----------------\n")

	fmt.Fprintf(&b, "總買入 $%s\n", money(sum.TotalBuyIn))
	fmt.Fprintf(&b, "總兌出 $%s\n", money(sum.TotalCashOut))
	if game.Mode == "no_rake" {
		fmt.Fprintf(&b, "總入場費 $%s\n", money(sum.TotalEntryFee))
		if sum.PendingEntryFees > 0 {
			fmt.Fprintf(&b, "（%d 位玩家入場費未結算）\n", sum.PendingEntryFees)
		}
	} else {
		fmt.Fprintf(&b, "總抽水 $%s\n", money(sum.TotalRake))
	}
	fmt.Fprintf(&b, "小費 $%s\n", money(sum.TotalTips))
	fmt.Fprintf(&b, "支出 $%s\n", money(sum.TotalExpenses))
	fmt.Fprintf(&b, "荷官薪資 $%s\n", money(sum.TotalDealerSalary))
	fmt.Fprintf(&b, "保險損益 $%s\n", money(sum.InsuranceProfit))
	fmt.Fprintf(&b, "淨收入 $%s\n", money(sum.NetIncome))
	fmt.Fprintf(&b, "實收 $%s\n", money(sum.ActualReceipts))
	if sum.Balanced {
		b.WriteString("帳目平衡 ✓\n")
	} else {
		fmt.Fprintf(&b, "帳目差額 $%s ⚠\n", money(sum.Difference))
	}

	if len(game.Expenses) > 0 {
		b.WriteString("----------------\n支出明細：\n")
		for _, e := range game.Expenses {
			line := e.Category
			if e.Description != "" {
				line += " " + e.Description
			}
			if e.Host != "" {
				line += "（" + e.Host + "）"
			}
			fmt.Fprintf(&b, "- %s $%s\n", line, money(e.Amount))
		}
	}

	if len(result.Transfers) > 0 {
		b.WriteString("----------------\n轉帳指示：\n")
		for _, tr := range result.Transfers {
			fmt.Fprintf(&b, "%s → %s 轉帳 $%s\n", tr.From, tr.To, money(tr.Amount))
		}
	}
	if len(result.InsuranceTransfers) > 0 {
		b.WriteString("----------------\n保險結算：\n")
		for _, tr := range result.InsuranceTransfers {
			fmt.Fprintf(&b, "%s → %s 轉帳 $%s\n", tr.From, tr.To, money(tr.Amount))
		}
	}

	return b.String(), nil
}

func money(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
