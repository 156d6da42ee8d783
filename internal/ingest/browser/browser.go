// Package browser owns the headless Chrome process shared by the
// stats-site scrapers.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/fortuna/athena/internal/metrics"
)

const (
	// UserAgent is sent by every page the browser opens
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36"

	// NavigateTimeout bounds a single page load
	NavigateTimeout = 45 * time.Second
)

// ErrLaunch wraps any failure to start the browser process.
var ErrLaunch = errors.New("browser launch failed")

// Page is one browser tab. A Page is owned by a single goroutine.
type Page interface {
	Navigate(ctx context.Context, url string) error
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	Evaluate(ctx context.Context, script string, out any) error
	Close() error
}

// PageOpener opens new tabs in a running browser.
type PageOpener interface {
	NewPage(ctx context.Context) (Page, error)
}

// Config controls how Chrome is started.
type Config struct {
	ExecPath  string
	UserAgent string
}

// DefaultConfig returns the default launch settings.
func DefaultConfig() Config {
	return Config{UserAgent: UserAgent}
}

// Manager launches browsers on demand.
type Manager struct {
	config Config
	logger *log.Logger
}

// NewManager creates a browser manager.
func NewManager(config Config, logger *log.Logger) *Manager {
	if config.UserAgent == "" {
		config.UserAgent = UserAgent
	}
	if logger == nil {
		logger = log.New(log.Writer(), "[browser] ", log.LstdFlags)
	}
	return &Manager{config: config, logger: logger}
}

// Acquire launches one headless browser when needed is true. It returns a
// nil handle when no browser is needed. The process is started before
// Acquire returns so launch failures surface here.
func (m *Manager) Acquire(ctx context.Context, needed bool) (*Handle, error) {
	if !needed {
		return nil, nil
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(m.config.UserAgent),
	)
	if m.config.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(m.config.ExecPath))
	}

	// the browser outlives the request that launched it; Release ends it
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.WithoutCancel(ctx), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	m.logger.Println("✓ Headless browser started")

	opener := &chromeOpener{browserCtx: browserCtx}
	return NewHandle(opener, func() {
		browserCancel()
		allocCancel()
		m.logger.Println("Headless browser closed")
	}), nil
}

// Handle is a running browser shared by many concurrent tasks. Only the
// code that acquired a handle releases it.
type Handle struct {
	opener  PageOpener
	release func()
	once    sync.Once
}

// NewHandle wraps an opener and its release function.
func NewHandle(opener PageOpener, release func()) *Handle {
	return &Handle{opener: opener, release: release}
}

// NewPage opens a new tab.
func (h *Handle) NewPage(ctx context.Context) (Page, error) {
	if h == nil || h.opener == nil {
		return nil, errors.New("browser handle is not available")
	}
	return h.opener.NewPage(ctx)
}

// Release shuts the browser down. Safe to call more than once.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		if h.release != nil {
			h.release()
		}
	})
}

type chromeOpener struct {
	browserCtx context.Context
}

func (o *chromeOpener) NewPage(ctx context.Context) (Page, error) {
	tabCtx, cancel := chromedp.NewContext(o.browserCtx)

	// first Run on the undecorated context allocates the tab
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}

	metrics.PagesOpened.Inc()
	metrics.OpenPages.Inc()

	return &chromePage{tabCtx: tabCtx, cancel: cancel}, nil
}

type chromePage struct {
	tabCtx context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// run executes actions on the tab bounded by timeout and by the caller's ctx.
func (p *chromePage) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(p.tabCtx, timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	if err := p.run(ctx, NavigateTimeout, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (p *chromePage) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	if err := p.run(ctx, timeout, chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("wait for %s: %w", selector, err)
	}
	return nil
}

func (p *chromePage) Evaluate(ctx context.Context, script string, out any) error {
	if err := p.run(ctx, NavigateTimeout, chromedp.Evaluate(script, out)); err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	return nil
}

func (p *chromePage) Close() error {
	p.once.Do(func() {
		p.cancel()
		metrics.OpenPages.Dec()
	})
	return nil
}
