package draftpicks

import "github.com/pucklab/rinkside/internal/draft"

type PicksPageData struct {
	TeamName string
	Year     int
	Picks    []draft.Pick
}
