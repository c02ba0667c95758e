package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"reqforge-ai-be/internal/pkg/apperror"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

const (
	MaxTextRunes = 5000
	MaxHeadings  = 10

	DefaultTimeout  = 30 * time.Second
	DefaultMaxBytes = 2 * 1024 * 1024

	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Result is the visible content of a single page.
type Result struct {
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	Text            string   `json:"text"`
	MetaDescription string   `json:"meta_description"`
	Headings        []string `json:"headings"`
}

type IScraper interface {
	Scrape(ctx context.Context, rawURL string) (*Result, error)
}

type Scraper struct {
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
}

func NewScraper(timeout time.Duration, maxBytes int64) *Scraper {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Scraper{
		client:   &http.Client{},
		timeout:  timeout,
		maxBytes: maxBytes,
	}
}

// ValidateURL accepts absolute http(s) URLs only.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperror.Validation(fmt.Sprintf("invalid url %q: must be an absolute http(s) URL", rawURL))
	}
	return nil
}

// Scrape fetches one page and extracts its visible text. No links are followed.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*Result, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}
	rawURL = strings.TrimSpace(rawURL)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := s.fetch(ctx, rawURL)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apperror.Scrape(err, fmt.Sprintf("timed out scraping %s", rawURL))
		}
		return nil, apperror.Scrape(err, fmt.Sprintf("failed to scrape %s", rawURL))
	}

	res, err := Extract(rawURL, body)
	if err != nil {
		return nil, apperror.Scrape(err, fmt.Sprintf("failed to parse %s", rawURL))
	}
	return res, nil
}

func (s *Scraper) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "get page")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, eris.Errorf("unexpected status %d", resp.StatusCode)
	}

	limited := io.LimitedReader{R: resp.Body, N: s.maxBytes}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return nil, eris.Wrap(err, "read page")
	}
	return b, nil
}

// Extract turns an HTML document into a Result.
func Extract(pageURL string, html []byte) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, eris.Wrap(err, "parse html")
	}

	doc.Find("script, style, noscript").Remove()

	res := &Result{
		URL:      pageURL,
		Title:    collapse(doc.Find("title").First().Text()),
		Headings: []string{},
	}
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		res.MetaDescription = strings.TrimSpace(content)
	}

	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(res.Headings) >= MaxHeadings {
			return false
		}
		res.Headings = append(res.Headings, collapse(sel.Text()))
		return true
	})

	res.Text = truncateRunes(collapse(doc.Text()), MaxTextRunes)
	return res, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
