package salarycap

import (
	"context"
	"strings"
	"testing"

	"github.com/pucklab/rinkside/internal/salary"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{88_000_000, "$88,000,000"},
		{8_500_000, "$8,500,000"},
		{950_000, "$950,000"},
		{500, "$500"},
		{0, "$0"},
		{-1_250_000, "-$1,250,000"},
	}
	for _, tc := range cases {
		if got := formatMoney(tc.in); got != tc.want {
			t.Fatalf("formatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCapTable_ErrorState(t *testing.T) {
	var b strings.Builder
	component := CapTable(CapPageData{TeamName: "Calgary Flames", LoadFailed: true})
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := b.String()
	if !strings.Contains(out, "Failed to load salary data") {
		t.Fatalf("missing error state: %s", out)
	}
	if strings.Contains(out, "<table>") {
		t.Fatal("error state should not render the contracts table")
	}
}

func TestCapTable_RendersContracts(t *testing.T) {
	contracts := []salary.PlayerContract{
		{
			Player:         salary.Player{FullName: "Test Player", Position: "C"},
			CapHit:         8_500_000,
			YearsRemaining: 3,
			ExpiryStatus:   "UFA",
			TradeClause:    salary.TradeClause{Type: salary.ClauseNMC},
		},
	}
	var b strings.Builder
	component := CapTable(CapPageData{
		TeamName:  "Calgary Flames",
		Summary:   salary.TeamCapSummary{SalaryCap: salary.CurrentSalaryCap, TotalCapHit: 8_500_000},
		Contracts: contracts,
	})
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := b.String()
	for _, want := range []string{"Test Player", "$8,500,000", "NMC", "Calgary Flames Cap Sheet"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q: %s", want, out)
		}
	}
}
