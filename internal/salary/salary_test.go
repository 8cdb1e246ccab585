package salary

import (
	"context"
	"errors"
	"testing"
)

func TestContractsDeterministicPerTeam(t *testing.T) {
	source := NewFixtureSource()
	ctx := context.Background()

	first, err := source.Contracts(ctx, "CGY")
	if err != nil {
		t.Fatalf("Contracts: %v", err)
	}
	second, err := source.Contracts(ctx, "CGY")
	if err != nil {
		t.Fatalf("Contracts: %v", err)
	}
	if len(first) != len(second) || len(first) == 0 {
		t.Fatalf("contract counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Player.ID != second[i].Player.ID || first[i].CapHit != second[i].CapHit {
			t.Fatalf("contract %d differs between calls", i)
		}
		if first[i].TeamAbbrev != "CGY" {
			t.Fatalf("contract %d attributed to %q", i, first[i].TeamAbbrev)
		}
	}
}

func TestCapSummaryArithmetic(t *testing.T) {
	source := NewFixtureSource()
	ctx := context.Background()

	contracts, err := source.Contracts(ctx, "BOS")
	if err != nil {
		t.Fatalf("Contracts: %v", err)
	}
	summary, err := source.CapSummary(ctx, "BOS")
	if err != nil {
		t.Fatalf("CapSummary: %v", err)
	}

	var total float64
	for _, c := range contracts {
		total += c.CapHit
	}
	if summary.TotalCapHit != total {
		t.Fatalf("totalCapHit = %v, want %v", summary.TotalCapHit, total)
	}
	if summary.CapSpace != CurrentSalaryCap-total {
		t.Fatalf("capSpace = %v, want %v", summary.CapSpace, CurrentSalaryCap-total)
	}
	if summary.ContractsCount != len(contracts) {
		t.Fatalf("contractsCount = %d, want %d", summary.ContractsCount, len(contracts))
	}
}

func TestContractsHonorCancellation(t *testing.T) {
	source := NewFixtureSource()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.Contracts(ctx, "CGY"); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if _, err := source.CapSummary(ctx, "CGY"); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestContractYearConsistency(t *testing.T) {
	source := NewFixtureSource()
	contracts, err := source.Contracts(context.Background(), "EDM")
	if err != nil {
		t.Fatalf("Contracts: %v", err)
	}
	for _, c := range contracts {
		if len(c.ContractYears) != c.YearsRemaining {
			t.Fatalf("%s: %d contract years, want %d", c.Player.FullName, len(c.ContractYears), c.YearsRemaining)
		}
		if c.TotalValue != c.CapHit*float64(c.YearsRemaining) {
			t.Fatalf("%s: totalValue %v, want %v", c.Player.FullName, c.TotalValue, c.CapHit*float64(c.YearsRemaining))
		}
		switch c.TradeClause.Type {
		case ClauseNMC, ClauseNTC, ClauseModNTC, ClauseNone:
		default:
			t.Fatalf("%s: unknown clause type %q", c.Player.FullName, c.TradeClause.Type)
		}
	}
}
