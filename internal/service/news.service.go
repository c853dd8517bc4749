package service

import (
	"context"
	"fmt"
	"time"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/repository"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

// default macro feeds. overridable at construction for tests.
var DefaultFeeds = map[string]string{
	"fed":         "https://www.federalreserve.gov/feeds/press_all.xml",
	"bls":         "https://www.bls.gov/feed/news_release/cpi.rss",
	"marketwatch": "https://feeds.content.dowjones.io/public/rss/mw_topstories",
}

type NewsService interface {
	FetchFeeds(ctx context.Context) (int, error)
	SummarizePending(ctx context.Context, limit int) (int, error)
}

func NewNewsService(
	newsRepository repository.NewsArticleRepository,
	gptRepository repository.GptRepository,
	feeds map[string]string,
	log *zap.SugaredLogger,
) NewsService {
	if feeds == nil {
		feeds = DefaultFeeds
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return newsServiceHandler{
		NewsRepository: newsRepository,
		GptRepository:  gptRepository,
		Parser:         gofeed.NewParser(),
		Feeds:          feeds,
		Log:            log,
	}
}

type newsServiceHandler struct {
	NewsRepository repository.NewsArticleRepository
	GptRepository  repository.GptRepository
	Parser         *gofeed.Parser
	Feeds          map[string]string
	Log            *zap.SugaredLogger
}

// FetchFeeds pulls every configured feed and stores new articles.
// Duplicate links are ignored by the repository, so re-running is safe.
func (h newsServiceHandler) FetchFeeds(ctx context.Context) (int, error) {
	total := 0
	errors := []error{}

	for source, url := range h.Feeds {
		feed, err := h.Parser.ParseURLWithContext(url, ctx)
		if err != nil {
			errors = append(errors, fmt.Errorf("failed to parse feed %s: %w", source, err))
			continue
		}

		for _, item := range feed.Items {
			if item.Link == "" {
				continue
			}
			err = h.NewsRepository.Add(model.NewsArticle{
				ID:          uuid.New(),
				Title:       item.Title,
				Link:        item.Link,
				Source:      source,
				PublishedAt: item.PublishedParsed,
				FetchedAt:   time.Now().UTC(),
			})
			if err != nil {
				errors = append(errors, err)
				continue
			}
			total++
		}
		h.Log.Infow("fetched feed", "source", source, "items", len(feed.Items))
	}

	if len(errors) > 0 {
		return total, fmt.Errorf("failed to fetch %d feeds/articles. first err: %w", len(errors), errors[0])
	}

	return total, nil
}

// SummarizePending asks the llm for a short macro summary of each
// un-summarized article, newest first.
func (h newsServiceHandler) SummarizePending(ctx context.Context, limit int) (int, error) {
	if h.GptRepository == nil {
		return 0, nil
	}

	articles, err := h.NewsRepository.ListUnsummarized(limit)
	if err != nil {
		return 0, err
	}

	summarized := 0
	for _, article := range articles {
		summary, err := h.GptRepository.SummarizeArticle(ctx, article.Title, article.Link)
		if err != nil {
			h.Log.Warnw("failed to summarize article", "link", article.Link, "err", err)
			continue
		}
		err = h.NewsRepository.UpdateSummary(article.ID, summary)
		if err != nil {
			return summarized, err
		}
		summarized++
	}

	return summarized, nil
}
