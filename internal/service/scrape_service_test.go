package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/apperror"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/events"
	"reqforge-ai-be/pkg/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeService(t *testing.T) {
	page := &scraper.Result{
		URL:  "https://rival.test",
		Text: strings.Repeat("p", 1200),
	}

	t.Run("structured analysis", func(t *testing.T) {
		provider := &fakeProvider{replies: []string{
			`{"insights":{"feature_gaps":["SSO"]},"suggestions":[{"text":"Add SSO","type":"requirement","section":"functional_requirements"}]}`,
		}}
		pub := &recordingPublisher{}
		svc := NewScrapeService(&fakeScraper{result: page}, newFakeClient(provider), pub, logger.NewNopLogger())

		res, err := svc.Scrape(context.Background(), &dto.ScrapeRequest{URL: "https://rival.test", ProjectID: "p1"})

		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"feature_gaps": []interface{}{"SSO"}}, res.Insights)
		require.Len(t, res.Suggestions, 1)

		prompt := provider.prompts[0]
		assert.Contains(t, prompt, "Title: Unknown")
		assert.Contains(t, prompt, "Content Preview: "+strings.Repeat("p", 1000)+"\n")
		assert.NotContains(t, prompt, strings.Repeat("p", 1001))
		assert.Equal(t, []string{events.TypeSiteScraped}, pub.types())
	})

	t.Run("unparseable analysis", func(t *testing.T) {
		provider := &fakeProvider{replies: []string{"They are cheaper."}}
		svc := NewScrapeService(&fakeScraper{result: page}, newFakeClient(provider), &recordingPublisher{}, logger.NewNopLogger())

		res, err := svc.Scrape(context.Background(), &dto.ScrapeRequest{URL: "https://rival.test", ProjectID: "p1"})

		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"raw": "They are cheaper."}, res.Insights)
		assert.NotNil(t, res.Suggestions)
		assert.Empty(t, res.Suggestions)
	})

	t.Run("scrape failure skips the model", func(t *testing.T) {
		provider := &fakeProvider{}
		fail := &fakeScraper{err: apperror.Scrape(errors.New("boom"), "failed to scrape")}
		pub := &recordingPublisher{}
		svc := NewScrapeService(fail, newFakeClient(provider), pub, logger.NewNopLogger())

		_, err := svc.Scrape(context.Background(), &dto.ScrapeRequest{URL: "https://rival.test", ProjectID: "p1"})

		assert.Equal(t, apperror.KindScrape, apperror.KindOf(err))
		assert.Zero(t, provider.calls())
		assert.Empty(t, pub.types())
	})
}
