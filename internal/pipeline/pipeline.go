package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/scout-cli/internal/config"
	"github.com/sells-group/scout-cli/internal/extract"
	"github.com/sells-group/scout-cli/internal/feed"
	"github.com/sells-group/scout-cli/internal/fetch"
	"github.com/sells-group/scout-cli/internal/model"
	"github.com/sells-group/scout-cli/internal/output"
	"github.com/sells-group/scout-cli/internal/scoring"
	"github.com/sells-group/scout-cli/internal/store"
	"github.com/sells-group/scout-cli/pkg/llm"
)

const itemTypeArticle = "article"

// Pipeline runs the full discovery sequence: feed ingestion, dedup, article
// extraction, relevance filtering, company and person extraction, vetting,
// gating, and output.
type Pipeline struct {
	cfg       *config.Config
	store     store.Store
	ingester  *feed.Ingester
	dedupe    *DedupeFilter
	fetcher   *fetch.Fetcher
	throttle  *fetch.Throttle
	relevance *extract.RelevanceFilter
	companies *extract.CompanyExtractor
	engine    *extract.Engine
	vetter    *extract.Vetter
	scorer    *scoring.Scorer
	writer    output.Writer
}

// New wires a Pipeline from configuration. The store and oracle client are
// injected so callers control their lifecycle.
func New(cfg *config.Config, st store.Store, client llm.Client, writer output.Writer) *Pipeline {
	throttle := fetch.NewThrottle(time.Duration(cfg.Fetch.PolitenessDelayMS) * time.Millisecond)
	fetcher := fetch.NewFetcher(time.Duration(cfg.Fetch.TimeoutSecs)*time.Second, cfg.Fetch.UserAgent)
	people := extract.NewPeopleExtractor(client, fetcher, throttle)
	teamURLs := extract.NewTeamURLFinder(client, fetcher, throttle)

	return &Pipeline{
		cfg:       cfg,
		store:     st,
		ingester:  feed.NewIngester(cfg.Limits.MaxArticlesPerFeed, cfg.Fetch.UserAgent),
		dedupe:    NewDedupeFilter(st),
		fetcher:   fetcher,
		throttle:  throttle,
		relevance: extract.NewRelevanceFilter(client, cfg.Keywords, throttle),
		companies: extract.NewCompanyExtractor(client, throttle, cfg.Limits.MaxCompaniesPerArticle),
		engine:    extract.NewEngine(people, teamURLs, cfg.Limits.MaxPeoplePerCompany),
		vetter:    extract.NewVetter(client, cfg.Preferences, throttle),
		scorer:    scoring.NewScorer(cfg.Weights, cfg.Preferences),
		writer:    writer,
	}
}

// Run executes one full pipeline pass and returns its stats. The run record
// is persisted with final stats even when no candidates are accepted; an
// empty result is a successful run.
func (p *Pipeline) Run(ctx context.Context) (*model.RunStats, error) {
	run, err := p.store.CreateRun(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: create run")
	}
	zap.L().Info("pipeline: run started", zap.String("run_id", run.ID))

	stats := &model.RunStats{}

	items := p.ingester.FetchAll(ctx, p.cfg.Feeds)
	stats.FeedItems = len(items)
	if len(items) == 0 {
		zap.L().Warn("pipeline: no feed items fetched, stopping")
		return p.finish(ctx, run.ID, stats)
	}

	fresh, err := p.dedupe.FilterNew(ctx, items)
	if err != nil {
		return stats, err
	}
	stats.NewItems = len(fresh)
	zap.L().Info("pipeline: feed items ingested",
		zap.Int("total", stats.FeedItems),
		zap.Int("new", stats.NewItems),
	)
	if len(fresh) == 0 {
		zap.L().Info("pipeline: no new items, stopping")
		return p.finish(ctx, run.ID, stats)
	}

	var accepted []model.ScoredPerson
	for _, item := range fresh {
		people, err := p.processItem(ctx, item, stats)
		if err != nil {
			return stats, err
		}
		accepted = append(accepted, people...)
	}
	stats.Accepted = len(accepted)

	switch {
	case stats.Articles == 0:
		zap.L().Warn("pipeline: no articles extracted, stopping")
	case stats.RelevantArticles == 0:
		zap.L().Info("pipeline: no relevant articles, stopping")
	case len(accepted) == 0:
		zap.L().Warn("pipeline: no candidates accepted")
		zap.L().Info("pipeline: consider lowering limits.min_score_threshold or limits.min_response_threshold, adding feeds, or broadening keywords and preferences")
	default:
		if err := p.writer.Write(accepted); err != nil {
			return stats, err
		}
	}

	return p.finish(ctx, run.ID, stats)
}

// finish persists final run stats and logs the terminal summary.
func (p *Pipeline) finish(ctx context.Context, runID string, stats *model.RunStats) (*model.RunStats, error) {
	if err := p.store.FinishRun(ctx, runID, stats); err != nil {
		return stats, eris.Wrap(err, "pipeline: finish run")
	}
	zap.L().Info("pipeline: run finished",
		zap.String("run_id", runID),
		zap.Int("accepted", stats.Accepted),
	)
	return stats, nil
}

// processItem handles one unseen feed item end to end. It returns an error
// only for store write failures; everything else is logged and absorbed so
// one bad article cannot sink the run.
func (p *Pipeline) processItem(ctx context.Context, item model.FeedItem, stats *model.RunStats) ([]model.ScoredPerson, error) {
	if err := p.throttle.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "pipeline: throttle wait")
	}

	article, fetchErr := p.fetcher.Article(ctx, item.Link, item.Title)

	// Mark the item seen regardless of the fetch outcome: a URL that failed
	// once is not retried on later runs.
	if err := p.store.MarkSeen(ctx, item.DedupKey(), itemTypeArticle); err != nil {
		return nil, eris.Wrap(err, "pipeline: mark seen")
	}

	if fetchErr != nil {
		zap.L().Warn("pipeline: article fetch failed",
			zap.String("url", item.Link),
			zap.Error(fetchErr),
		)
		return nil, nil
	}
	stats.Articles++

	if !p.relevance.IsRelevant(ctx, *article) {
		zap.L().Debug("pipeline: article not relevant", zap.String("url", article.URL))
		return nil, nil
	}
	stats.RelevantArticles++

	companies := p.companies.Extract(ctx, *article)
	stats.Companies += len(companies)

	var accepted []model.ScoredPerson
	for _, company := range companies {
		candidates := p.engine.People(ctx, *article, company)
		for _, c := range candidates {
			if c.InNews {
				stats.ArticlePeople++
			} else {
				stats.TeamPeople++
			}
		}
		accepted = append(accepted, p.vetAndScore(ctx, candidates, stats)...)
	}
	return accepted, nil
}

// vetAndScore runs the vetting oracle and both score gates over candidates.
func (p *Pipeline) vetAndScore(ctx context.Context, candidates []model.Candidate, stats *model.RunStats) []model.ScoredPerson {
	var accepted []model.ScoredPerson
	for _, candidate := range candidates {
		vetting, err := p.vetter.Vet(ctx, candidate.Person)
		if err != nil {
			stats.FailedVetting++
			zap.L().Warn("pipeline: vetting failed",
				zap.String("person", candidate.Person.FullName),
				zap.Error(err),
			)
			continue
		}
		stats.PeopleVetted++

		if !vetting.MatchesCriteria && !p.cfg.DebugKeepNonmatching {
			zap.L().Debug("pipeline: person does not match criteria",
				zap.String("person", candidate.Person.FullName),
				zap.String("reasoning", vetting.Reasoning),
			)
			continue
		}

		person := p.scorer.Score(candidate, *vetting)
		if person.ResponseScore < p.cfg.Limits.MinResponseThreshold {
			stats.FailedResponseGate++
			zap.L().Debug("pipeline: below response threshold",
				zap.String("person", person.FullName),
				zap.Float64("response_score", person.ResponseScore),
			)
			continue
		}
		if person.TotalScore < p.cfg.Limits.MinScoreThreshold {
			stats.FailedScoreThreshold++
			zap.L().Debug("pipeline: below score threshold",
				zap.String("person", person.FullName),
				zap.Float64("total_score", person.TotalScore),
			)
			continue
		}

		zap.L().Info("pipeline: candidate accepted",
			zap.String("person", person.FullName),
			zap.String("company", person.CompanyName),
			zap.Float64("total_score", person.TotalScore),
		)
		accepted = append(accepted, person)
	}
	return accepted
}
