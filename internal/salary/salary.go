// internal/salary/salary.go

// Package salary is the cap-data adapter. It currently serves fixture
// contracts shaped like the live sources (PuckPedia et al.); swap the
// Source implementation to connect a real provider.
package salary

import (
	"context"
	"fmt"
)

// CurrentSalaryCap is the league salary-cap ceiling for the active season.
const CurrentSalaryCap = 88_000_000

// TradeClauseType enumerates contractual trade protection.
type TradeClauseType string

const (
	ClauseNMC    TradeClauseType = "NMC"
	ClauseNTC    TradeClauseType = "NTC"
	ClauseModNTC TradeClauseType = "M-NTC"
	ClauseNone   TradeClauseType = "none"
)

const noProtection = "No trade protection"

// TradeClause restricts a player being traded without consent, optionally
// limited to a team list.
type TradeClause struct {
	Type         TradeClauseType `json:"type"`
	Details      string          `json:"details"`
	AllowedTeams []string        `json:"allowedTeams,omitempty"`
}

// Player identity as rendered in the contracts table.
type Player struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	FullName     string `json:"fullName"`
	Position     string `json:"position"`
	JerseyNumber string `json:"jerseyNumber"`
	Headshot     string `json:"headshot"`
}

// ContractYear is one season's breakdown of a contract.
type ContractYear struct {
	Season       string  `json:"season"`
	BaseSalary   float64 `json:"baseSalary"`
	SigningBonus float64 `json:"signingBonus"`
	CapHit       float64 `json:"capHit"`
	TotalSalary  float64 `json:"totalSalary"`
}

// PlayerContract is one player's deal against a team's cap.
type PlayerContract struct {
	Player         Player         `json:"player"`
	TeamAbbrev     string         `json:"teamAbbrev"`
	CapHit         float64        `json:"capHit"`
	AAV            float64        `json:"aav"`
	TotalValue     float64        `json:"totalValue"`
	YearsRemaining int            `json:"yearsRemaining"`
	ContractYears  []ContractYear `json:"contractYears"`
	ExpiryStatus   string         `json:"expiryStatus"`
	SigningDate    string         `json:"signingDate"`
	TradeClause    TradeClause    `json:"tradeClause"`
}

// TeamCapSummary aggregates a team's position against the cap ceiling.
type TeamCapSummary struct {
	TeamAbbrev     string  `json:"teamAbbrev"`
	SalaryCap      float64 `json:"salaryCap"`
	TotalCapHit    float64 `json:"totalCapHit"`
	CapSpace       float64 `json:"capSpace"`
	ActiveRoster   int     `json:"activeRoster"`
	DeadCap        float64 `json:"deadCap"`
	LtirPool       float64 `json:"ltirPool"`
	ContractsCount int     `json:"contractsCount"`
}

// Source provides contract and cap data for a team. The fixture source
// below is the only implementation today.
type Source interface {
	Contracts(ctx context.Context, teamAbbrev string) ([]PlayerContract, error)
	CapSummary(ctx context.Context, teamAbbrev string) (TeamCapSummary, error)
}

// FixtureSource serves a deterministic roster per team.
type FixtureSource struct{}

// NewFixtureSource returns the fixture-backed source.
func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

type fixturePlayer struct {
	name   string
	pos    string
	num    string
	capHit float64
	years  int
	clause TradeClause
}

var fixtureRoster = []fixturePlayer{
	{name: "Star Forward", pos: "C", num: "97", capHit: 12_500_000, years: 5,
		clause: TradeClause{Type: ClauseNMC, Details: "Full no-movement clause", AllowedTeams: []string{}}},
	{name: "Top Winger", pos: "LW", num: "29", capHit: 9_500_000, years: 4,
		clause: TradeClause{Type: ClauseModNTC, Details: "Modified no-trade clause, 10-team list",
			AllowedTeams: []string{"TOR", "MTL", "VAN", "EDM", "CGY", "OTT", "WPG", "NYR", "BOS", "CHI"}}},
	{name: "Elite Defenseman", pos: "D", num: "44", capHit: 8_200_000, years: 6,
		clause: TradeClause{Type: ClauseNTC, Details: "Full no-trade clause"}},
	{name: "Second Line Center", pos: "C", num: "18", capHit: 6_000_000, years: 3,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Scoring Winger", pos: "RW", num: "88", capHit: 5_750_000, years: 2,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Shutdown Defenseman", pos: "D", num: "5", capHit: 5_500_000, years: 4,
		clause: TradeClause{Type: ClauseModNTC, Details: "Modified NTC, 8-team no-trade list",
			AllowedTeams: []string{"FLA", "TBL", "CAR", "NSH", "DAL", "COL", "VGK", "LAK"}}},
	{name: "Starting Goalie", pos: "G", num: "35", capHit: 5_000_000, years: 3,
		clause: TradeClause{Type: ClauseNTC, Details: "Full no-trade clause"}},
	{name: "Third Line Winger", pos: "LW", num: "11", capHit: 3_500_000, years: 2,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Third Line Center", pos: "C", num: "15", capHit: 3_000_000, years: 1,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Bottom Six Forward", pos: "RW", num: "23", capHit: 2_000_000, years: 2,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Third Pair D", pos: "D", num: "6", capHit: 1_800_000, years: 1,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Fourth Line Center", pos: "C", num: "22", capHit: 1_200_000, years: 1,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Depth Winger", pos: "LW", num: "42", capHit: 900_000, years: 2,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Bottom Pair D", pos: "D", num: "3", capHit: 850_000, years: 1,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Backup Goalie", pos: "G", num: "40", capHit: 1_500_000, years: 2,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Energy Forward", pos: "RW", num: "17", capHit: 1_100_000, years: 1,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Seventh Defenseman", pos: "D", num: "53", capHit: 775_000, years: 2,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
	{name: "Extra Forward", pos: "C", num: "62", capHit: 775_000, years: 1,
		clause: TradeClause{Type: ClauseNone, Details: noProtection}},
}

// Contracts returns the fixture roster attributed to teamAbbrev. The result
// is deterministic per team. Honors ctx cancellation so an abandoned view
// never applies a late result.
func (f *FixtureSource) Contracts(ctx context.Context, teamAbbrev string) ([]PlayerContract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contracts := make([]PlayerContract, 0, len(fixtureRoster))
	for idx, p := range fixtureRoster {
		first, last := splitName(p.name)
		years := make([]ContractYear, p.years)
		for i := range years {
			years[i] = ContractYear{
				Season:       fmt.Sprintf("%d-%d", 2024+i, 2025+i),
				BaseSalary:   p.capHit * 0.8,
				SigningBonus: p.capHit * 0.2,
				CapHit:       p.capHit,
				TotalSalary:  p.capHit,
			}
		}
		expiry := "RFA"
		if p.years <= 2 {
			expiry = "UFA"
		}
		contracts = append(contracts, PlayerContract{
			Player: Player{
				ID:           8_470_000 + idx + int(teamAbbrev[0])*100,
				FirstName:    first,
				LastName:     last,
				FullName:     p.name,
				Position:     p.pos,
				JerseyNumber: p.num,
				Headshot:     "https://assets.nhle.com/mugs/nhl/default-skater.png",
			},
			TeamAbbrev:     teamAbbrev,
			CapHit:         p.capHit,
			AAV:            p.capHit,
			TotalValue:     p.capHit * float64(p.years),
			YearsRemaining: p.years,
			ContractYears:  years,
			ExpiryStatus:   expiry,
			SigningDate:    "2023-07-01",
			TradeClause:    p.clause,
		})
	}
	return contracts, nil
}

// CapSummary aggregates the fixture contracts against the cap ceiling.
func (f *FixtureSource) CapSummary(ctx context.Context, teamAbbrev string) (TeamCapSummary, error) {
	contracts, err := f.Contracts(ctx, teamAbbrev)
	if err != nil {
		return TeamCapSummary{}, err
	}

	var total float64
	for _, c := range contracts {
		total += c.CapHit
	}
	return TeamCapSummary{
		TeamAbbrev:     teamAbbrev,
		SalaryCap:      CurrentSalaryCap,
		TotalCapHit:    total,
		CapSpace:       CurrentSalaryCap - total,
		ActiveRoster:   len(contracts),
		ContractsCount: len(contracts),
	}, nil
}

func splitName(full string) (string, string) {
	for i := 0; i < len(full); i++ {
		if full[i] == ' ' {
			return full[:i], full[i+1:]
		}
	}
	return full, ""
}
