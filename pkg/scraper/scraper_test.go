package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reqforge-ai-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html>
<head>
  <title> Acme   Pricing </title>
  <meta name="description" content="Plans for every team">
  <style>.secret-style { color: red }</style>
  <script>var secretScript = 1;</script>
</head>
<body>
  <h1>Pricing</h1>
  <p>Starter   plan
     costs $10.</p>
  <noscript>enable javascript</noscript>
  <h2>Enterprise</h2>
  <script>trackVisitor()</script>
</body>
</html>`

func TestExtract(t *testing.T) {
	res, err := Extract("https://acme.test", []byte(page))
	require.NoError(t, err)

	assert.Equal(t, "Acme Pricing", res.Title)
	assert.Equal(t, "Plans for every team", res.MetaDescription)
	assert.Equal(t, []string{"Pricing", "Enterprise"}, res.Headings)
	assert.Contains(t, res.Text, "Starter plan costs $10.")
	assert.NotContains(t, res.Text, "secret")
	assert.NotContains(t, res.Text, "trackVisitor")
	assert.NotContains(t, res.Text, "enable javascript")
	assert.NotContains(t, res.Text, "  ")
}

func TestExtract_Limits(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&sb, "<h2>Heading %d</h2>", i)
	}
	sb.WriteString("<p>" + strings.Repeat("é", 6000) + "</p></body></html>")

	res, err := Extract("https://acme.test", []byte(sb.String()))
	require.NoError(t, err)

	assert.Len(t, res.Headings, MaxHeadings)
	assert.Equal(t, "Heading 0", res.Headings[0])
	assert.LessOrEqual(t, len([]rune(res.Text)), MaxTextRunes)
}

func TestScrape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	s := NewScraper(time.Second, 0)

	t.Run("ok", func(t *testing.T) {
		res, err := s.Scrape(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, server.URL, res.URL)
		assert.Equal(t, "Acme Pricing", res.Title)
	})

	t.Run("non 2xx", func(t *testing.T) {
		_, err := s.Scrape(context.Background(), server.URL+"/missing")
		require.Error(t, err)
		assert.Equal(t, apperror.KindScrape, apperror.KindOf(err))
	})
}

func TestScrape_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	_, err := NewScraper(20*time.Millisecond, 0).Scrape(context.Background(), server.URL)

	require.Error(t, err)
	assert.Equal(t, apperror.KindScrape, apperror.KindOf(err))
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://competitor.com", true},
		{"http://localhost:8080/pricing", true},
		{"ftp://competitor.com", false},
		{"competitor.com", false},
		{"", false},
		{"javascript:alert(1)", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}
