package app

import (
	"context"
	"fmt"
)

// Page names the client's screens.
type Page string

const (
	PageDashboard       Page = "dashboard"
	PageManagement      Page = "management"
	PageAnalysis        Page = "analysis"
	PagePredictions     Page = "predictions"
	PageRecommendations Page = "recommendations"
	PageCommunity       Page = "community"
	PageProfile         Page = "profile"
)

// Pages lists every page in display order.
var Pages = []Page{
	PageDashboard,
	PageManagement,
	PageAnalysis,
	PagePredictions,
	PageRecommendations,
	PageCommunity,
	PageProfile,
}

// ValidPage resolves a page name.
func ValidPage(name string) (Page, bool) {
	for _, p := range Pages {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// Nav is the page state machine. Transitions happen only on explicit Go
// calls; entering a page runs its data refresh and persists the page name
// so the next session can restore it.
type Nav struct {
	app       *App
	community *Community
	current   Page
}

// NewNav creates a Nav sharing the app's community controller.
func NewNav(app *App, community *Community) *Nav {
	return &Nav{app: app, community: community}
}

// Current returns the active page, or "" before the first transition.
func (n *Nav) Current() Page {
	return n.current
}

// Go transitions to the named page and triggers its refresh.
func (n *Nav) Go(ctx context.Context, page Page) error {
	if _, ok := ValidPage(string(page)); !ok {
		return fmt.Errorf("halaman %q tidak dikenal", page)
	}

	n.current = page
	if err := n.app.Store.SetLastPage(string(page)); err != nil {
		return err
	}

	switch page {
	case PageDashboard:
		if err := n.app.RefreshTransactions(ctx); err != nil {
			return err
		}
		return n.app.RenderDashboard(ctx)
	case PageManagement:
		if err := n.app.RefreshTransactions(ctx); err != nil {
			return err
		}
		n.app.RenderTransactions()
		return nil
	case PageCommunity:
		return n.community.Refresh(ctx, "")
	case PageProfile:
		return n.app.RenderProfile(ctx)
	}
	// Analysis, predictions and recommendations load nothing on entry.
	return nil
}
