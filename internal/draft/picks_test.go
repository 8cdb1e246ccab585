package draft

import (
	"reflect"
	"testing"
)

func TestPicksDeterministicPerTeamYear(t *testing.T) {
	first := Picks("CGY", 2025)
	second := Picks("CGY", 2025)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("picks differ between calls for the same team and year")
	}

	other := Picks("BOS", 2025)
	if reflect.DeepEqual(first, other) {
		t.Fatal("different teams produced identical pick sets")
	}
}

func TestPicksShape(t *testing.T) {
	for _, team := range []string{"CGY", "BOS", "EDM", "SEA"} {
		for _, year := range []int{2025, 2026, 2027} {
			picks := Picks(team, year)
			if len(picks) == 0 {
				t.Fatalf("%s %d: no picks", team, year)
			}
			if picks[0].Round != 1 {
				t.Fatalf("%s %d: first pick is round %d, want 1", team, year, picks[0].Round)
			}
			lastRound := 0
			for _, pick := range picks {
				if pick.Round < 1 || pick.Round > totalRounds {
					t.Fatalf("%s %d: round %d out of range", team, year, pick.Round)
				}
				if pick.Round <= lastRound {
					t.Fatalf("%s %d: rounds not strictly increasing", team, year)
				}
				lastRound = pick.Round

				if year <= lastKnownDraftYear {
					if pick.OverallPick == nil {
						t.Fatalf("%s %d round %d: overall pick undetermined for known year", team, year, pick.Round)
					}
				} else if pick.OverallPick != nil {
					t.Fatalf("%s %d round %d: future year has determined slot %d", team, year, pick.Round, *pick.OverallPick)
				}

				if pick.IsOwnPick && pick.OriginalTeamAbbrev != pick.TeamAbbrev {
					t.Fatalf("%s %d round %d: own pick attributed to %s", team, year, pick.Round, pick.OriginalTeamAbbrev)
				}
				if !pick.IsOwnPick && pick.OriginalTeamAbbrev == pick.TeamAbbrev {
					t.Fatalf("%s %d round %d: traded pick attributed to owner", team, year, pick.Round)
				}
			}
		}
	}
}

func TestProjectionsOnlyOnKnownFirstRoundSlots(t *testing.T) {
	for _, team := range []string{"CGY", "BOS", "EDM", "TOR", "VAN", "SEA", "NYR", "PIT"} {
		for _, pick := range Picks(team, 2025) {
			if pick.Projection == nil {
				continue
			}
			if pick.Round != 1 {
				t.Fatalf("%s: projection attached to round %d", team, pick.Round)
			}
			if pick.OverallPick == nil {
				t.Fatalf("%s: projection on undetermined slot", team)
			}
			if _, ok := projectionsBySlot[*pick.OverallPick]; !ok {
				t.Fatalf("%s: projection for slot %d not in table", team, *pick.OverallPick)
			}
		}
	}
}
