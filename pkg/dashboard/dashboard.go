package dashboard

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/tgsurvey/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store provides read access to survey responses
type Store interface {
	Count(ctx context.Context) (int, error)
	SelectRange(ctx context.Context, from, to int) ([]domain.SurveyResponse, error)
}

// NoticeLoadFailed is shown when results can't be loaded
const NoticeLoadFailed = "Failed to load survey results. Please try again."

// State of the dashboard, one of Idle, Loading, Ready or Failed
type State interface {
	state()
}

// Idle is the state before the first load
type Idle struct{}

// Loading is the state while a page is being fetched
type Loading struct{}

// Ready is the state after a successful fetch
type Ready struct {
	Snapshot Snapshot
}

// Failed is the state after a failed fetch, the previous snapshot stays displayed
type Failed struct {
	Reason string
	Err    error
}

func (Idle) state()    {}
func (Loading) state() {}
func (Ready) state()   {}
func (Failed) state()  {}

// Snapshot is the data currently displayed
type Snapshot struct {
	Page      int
	Total     int
	Responses []domain.SurveyResponse
}

// TotalPages returns the number of pages for the known total
func (s Snapshot) TotalPages() int {
	return TotalPages(s.Total)
}

// Empty is true if there are no responses at all
func (s Snapshot) Empty() bool {
	return s.Total == 0
}

// Charts derives chart series from the responses of this page
func (s Snapshot) Charts() domain.Charts {
	return BuildCharts(s.Responses)
}

// Dashboard keeps the results page state: current page, displayed data and load state
type Dashboard struct {
	store    Store
	page     int
	snapshot Snapshot
	state    State
}

// New makes an idle dashboard positioned on the first page
func New(store Store) *Dashboard {
	return &Dashboard{store: store, page: 1, snapshot: Snapshot{Page: 1}, state: Idle{}}
}

// Restore makes a dashboard with the page and total already known by a rendered results page
func Restore(store Store, page, total int) *Dashboard {
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}
	return &Dashboard{store: store, page: page, snapshot: Snapshot{Page: page, Total: total}, state: Idle{}}
}

// Mount loads the first page
func (d *Dashboard) Mount(ctx context.Context) State {
	d.page = 1
	start, end := PageRange(1)
	return d.fetch(ctx, start, end)
}

// SetPage switches to another page and loads it. Pages outside of [1, TotalPages] and the
// current page are ignored, returns false in this case. After a failed load the same page
// can be requested again.
func (d *Dashboard) SetPage(ctx context.Context, page int) bool {
	if page < 1 || page > d.snapshot.TotalPages() {
		return false
	}
	if _, failed := d.state.(Failed); page == d.page && !failed {
		return false
	}
	d.page = page
	start, end := PageRange(page)
	// total is known here, the range never asks past the last record
	end = min(end, d.snapshot.Total-1)
	d.fetch(ctx, start, end)
	return true
}

// Page returns the current 1-based page
func (d *Dashboard) Page() int { return d.page }

// State returns the current load state
func (d *Dashboard) State() State { return d.state }

// Snapshot returns the data currently displayed
func (d *Dashboard) Snapshot() Snapshot { return d.snapshot }

// fetch requests the total count and the current page range together. Each successful result
// is applied on its own, any failure moves the dashboard to Failed.
func (d *Dashboard) fetch(ctx context.Context, start, end int) State {
	d.state = Loading{}

	var (
		total     int
		responses []domain.SurveyResponse
		countErr  error
		rangeErr  error
	)

	var g errgroup.Group
	g.Go(func() error {
		total, countErr = d.store.Count(ctx)
		return countErr
	})
	g.Go(func() error {
		responses, rangeErr = d.store.SelectRange(ctx, start, end)
		return rangeErr
	})
	err := g.Wait()

	if countErr == nil {
		d.snapshot.Total = total
	}
	if rangeErr == nil {
		d.snapshot.Page = d.page
		d.snapshot.Responses = responses
	}

	if err != nil {
		log.Printf("[WARN] failed to load results page %d: %v", d.page, err)
		d.state = Failed{Reason: NoticeLoadFailed, Err: err}
		return d.state
	}

	d.state = Ready{Snapshot: d.snapshot}
	return d.state
}
