// Package browsertest provides scripted browser pages for tests.
package browsertest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/fortuna/athena/internal/ingest/browser"
)

// Page is a scripted browser.Page. Nil hooks succeed.
type Page struct {
	NavigateFn func(url string) error
	WaitFn     func(selector string) error
	EvaluateFn func(script string, out any) error

	mu        sync.Mutex
	navigated []string
	waited    []string
	evaluated int
	closed    int
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	p.mu.Lock()
	p.navigated = append(p.navigated, url)
	p.mu.Unlock()
	if p.NavigateFn != nil {
		return p.NavigateFn(url)
	}
	return nil
}

func (p *Page) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	p.mu.Lock()
	p.waited = append(p.waited, selector)
	p.mu.Unlock()
	if p.WaitFn != nil {
		return p.WaitFn(selector)
	}
	return nil
}

func (p *Page) Evaluate(ctx context.Context, script string, out any) error {
	p.mu.Lock()
	p.evaluated++
	p.mu.Unlock()
	if p.EvaluateFn != nil {
		return p.EvaluateFn(script, out)
	}
	return nil
}

func (p *Page) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed++
	return nil
}

// Navigated returns the URLs visited so far.
func (p *Page) Navigated() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.navigated...)
}

// Waited returns the selectors waited on so far.
func (p *Page) Waited() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.waited...)
}

// Evaluations returns how many scripts were evaluated.
func (p *Page) Evaluations() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evaluated
}

// Closed returns how many times Close was called.
func (p *Page) Closed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Opener hands out fresh pages prepared by Configure.
type Opener struct {
	Configure func(p *Page)
	OpenErr   error

	mu    sync.Mutex
	pages []*Page
}

func (o *Opener) NewPage(ctx context.Context) (browser.Page, error) {
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	p := &Page{}
	if o.Configure != nil {
		o.Configure(p)
	}
	o.mu.Lock()
	o.pages = append(o.pages, p)
	o.mu.Unlock()
	return p, nil
}

// Pages returns every page opened so far.
func (o *Opener) Pages() []*Page {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*Page(nil), o.pages...)
}

// Closed sums Close calls over all opened pages.
func (o *Opener) Closed() int {
	n := 0
	for _, p := range o.Pages() {
		n += p.Closed()
	}
	return n
}

// Assign copies v into out the way the browser returns evaluation
// results, through a JSON round trip.
func Assign(out any, v any) error {
	if out == nil {
		return errors.New("nil evaluation target")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
