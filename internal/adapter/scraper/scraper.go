// Package scraper observes the ads a business is running in the public ads
// library. It drives a stealth Chrome page through rod, extracts the ad
// cards from the rendered HTML and downloads and fingerprints the creative
// images.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"adwatch/internal/adapter/phash"
	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
)

// DefaultURLTemplate lists the active image ads of one page. %s is the
// page id.
const DefaultURLTemplate = "https://www.facebook.com/ads/library/?active_status=active&ad_type=all&country=ALL&is_targeted_country=false&media_type=image_and_meme&search_type=page&view_all_page_id=%s"

const cookieButtonText = "/allow all|accept all|дозволити/i"

type Config struct {
	// RemoteURL is the DevTools websocket of a running Chrome. Empty means
	// launch a local one.
	RemoteURL       string
	Headless        bool
	NavTimeout      time.Duration
	CookieWait      time.Duration
	Scrolls         int
	ScrollPause     time.Duration
	Settle          time.Duration
	DownloadTimeout time.Duration
	ImagesDir       string
	URLTemplate     string
}

func (c *Config) defaults() {
	if c.NavTimeout <= 0 {
		c.NavTimeout = 30 * time.Second
	}
	if c.CookieWait <= 0 {
		c.CookieWait = 7 * time.Second
	}
	if c.DownloadTimeout <= 0 {
		c.DownloadTimeout = 15 * time.Second
	}
	if c.ImagesDir == "" {
		c.ImagesDir = "images"
	}
	if c.URLTemplate == "" {
		c.URLTemplate = DefaultURLTemplate
	}
}

// Scraper implements port.SnapshotSource.
type Scraper struct {
	cfg     Config
	browser *rod.Browser
	known   port.KnownCreatives
	client  *http.Client
	logger  *slog.Logger
}

// New connects to Chrome, launching it when cfg.RemoteURL is empty. The
// returned func closes the browser. Images of ads that known already holds
// are neither downloaded nor fingerprinted; known may be nil.
func New(cfg Config, known port.KnownCreatives, logger *slog.Logger) (*Scraper, func(), error) {
	cfg.defaults()
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create images dir: %w", err)
	}

	var (
		controlURL = cfg.RemoteURL
		lnch       *launcher.Launcher
	)
	if controlURL == "" {
		lnch = launcher.New().
			Headless(cfg.Headless).
			Set("disable-blink-features", "AutomationControlled")
		u, err := lnch.Launch()
		if err != nil {
			return nil, nil, fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = u
		logger.Info("launched local chrome", "url", controlURL, "headless", cfg.Headless)
	} else {
		logger.Info("connecting to remote chrome", "url", controlURL)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		if lnch != nil {
			lnch.Cleanup()
		}
		return nil, nil, fmt.Errorf("connect chrome: %w", err)
	}

	s := newScraper(cfg, browser, known, logger)
	closeFn := func() {
		if err := browser.Close(); err != nil {
			logger.Warn("close chrome", "error", err)
		}
		if lnch != nil {
			lnch.Cleanup()
		}
	}
	return s, closeFn, nil
}

func newScraper(cfg Config, browser *rod.Browser, known port.KnownCreatives, logger *slog.Logger) *Scraper {
	cfg.defaults()
	return &Scraper{
		cfg:     cfg,
		browser: browser,
		known:   known,
		client:  &http.Client{Timeout: cfg.DownloadTimeout},
		logger:  logger,
	}
}

// Snapshot implements port.SnapshotSource.
func (s *Scraper) Snapshot(ctx context.Context, b domain.Business) (domain.Snapshot, error) {
	url := fmt.Sprintf(s.cfg.URLTemplate, b.PageID)
	log := s.logger.With("business", b.PageID)

	page, err := stealth.Page(s.browser)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()
	page = page.Context(ctx)

	log.Debug("loading ads library", "url", url)
	if err = page.Timeout(s.cfg.NavTimeout).Navigate(url); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", url, err)
	}
	if err = page.Timeout(s.cfg.NavTimeout).WaitLoad(); err != nil {
		log.Warn("page load did not finish", "error", err)
	}

	s.dismissCookies(ctx, page, log)

	for i := 0; i < s.cfg.Scrolls; i++ {
		if _, err = page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`); err != nil {
			return nil, fmt.Errorf("scroll: %w", err)
		}
		if err = sleep(ctx, s.cfg.ScrollPause); err != nil {
			return nil, err
		}
	}
	if err = sleep(ctx, s.cfg.Settle); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("read page html: %w", err)
	}
	return s.observe(ctx, log, html)
}

func (s *Scraper) dismissCookies(ctx context.Context, page *rod.Page, log *slog.Logger) {
	btn, err := page.Timeout(s.cfg.CookieWait).ElementR("button", cookieButtonText)
	if err != nil {
		log.Debug("no cookie banner")
		return
	}
	if err = btn.Click(proto.InputMouseButtonLeft, 1); err != nil {
		log.Warn("cookie banner click failed", "error", err)
		return
	}
	_ = sleep(ctx, 2*time.Second)
}

// observe turns a rendered ads library page into a snapshot. Image
// problems only cost the observation its fingerprint.
func (s *Scraper) observe(ctx context.Context, log *slog.Logger, html string) (domain.Snapshot, error) {
	cards, err := ExtractCards(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	log.Info("ads found", "count", len(cards))
	known := s.knownAdIDs(ctx, log, cards)

	snap := make(domain.Snapshot, 0, len(cards))
	for _, c := range cards {
		o := domain.Observation{
			AdID:           c.AdID,
			RawStartText:   c.Text,
			ImageURL:       c.ImageURL,
			SimilarityHint: domain.ParseSimilarityHint(c.Text),
		}
		if c.ImageURL == "" {
			log.Debug("ad has no creative image", "ad_id", c.AdID)
			snap = append(snap, o)
			continue
		}
		if known[c.AdID] {
			snap = append(snap, o)
			continue
		}

		path, err := s.download(ctx, c.AdID, c.ImageURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warn("image download failed", "ad_id", c.AdID, "error", err)
			snap = append(snap, o)
			continue
		}
		o.LocalPath = path

		f, err := phash.FromFile(path)
		if err != nil {
			log.Warn("fingerprint failed", "ad_id", c.AdID, "path", path, "error", err)
		} else {
			o.Fingerprint = &f
		}
		snap = append(snap, o)
	}
	return snap, nil
}

// knownAdIDs looks up which cards are already stored. A failed lookup only
// means every image is processed.
func (s *Scraper) knownAdIDs(ctx context.Context, log *slog.Logger, cards []Card) map[string]bool {
	if s.known == nil || len(cards) == 0 {
		return nil
	}
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.AdID)
	}
	known, err := s.known.KnownAdIDs(ctx, ids)
	if err != nil {
		log.Warn("known ads lookup failed", "error", err)
		return nil
	}
	return known
}

// download stores the image as <ImagesDir>/<adID>.jpg. An image already on
// disk is reused.
func (s *Scraper) download(ctx context.Context, adID, url string) (string, error) {
	path := filepath.Join(s.cfg.ImagesDir, adID+".jpg")
	if st, err := os.Stat(path); err == nil && st.Size() > 0 {
		return path, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp(s.cfg.ImagesDir, adID+"-*.part")
	if err != nil {
		return "", err
	}
	_, err = io.Copy(tmp, resp.Body)
	err = errors.Join(err, tmp.Close())
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return path, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
