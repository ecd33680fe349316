package main

import (
	"context"
	"os"
	"time"

	"bookgen/internal/book"
	"bookgen/internal/generator"
	"bookgen/internal/logging"
	"bookgen/internal/session"
	"bookgen/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	loadEnvFiles()
	logging.Init(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: os.Getenv("LOG_FORMAT")})

	opts, err := parseFlags(os.Args[1:], time.Now())
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid flags")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, opts.DSN)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	gen := generator.NewGenerator(generator.NewSynthesizer(), opts.Workers)
	records, err := generate(ctx, book.NewService(gen), opts)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to generate books")
	}

	logging.Info().Int("records", len(records)).Str("key", opts.Key).Msg("saving snapshot")
	snapshots := store.NewSnapshotPG(pool)
	if err := snapshots.Save(ctx, opts.Key, records); err != nil {
		logging.Fatal().Err(err).Msg("failed to save snapshot")
	}

	total, err := snapshots.Count(ctx, opts.Key)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to count snapshot")
	}
	logging.Info().Int("total", total).Str("key", opts.Key).Msg("snapshot saved")
}

// generate pages through a session the way a scrolling client would.
func generate(ctx context.Context, loader session.Loader, opts options) ([]book.Record, error) {
	sess := session.New(loader,
		session.WithRegion(opts.Region),
		session.WithSeed(opts.Seed),
		session.WithLikes(opts.Likes),
		session.WithReviews(opts.Reviews),
		session.WithPageSize(opts.Limit),
		session.WithAsOf(opts.AsOf),
	)
	for i := 0; i < opts.Pages; i++ {
		if err := sess.LoadNext(ctx); err != nil {
			return nil, err
		}
		logging.Info().Int("page", i+1).Int("of", opts.Pages).Msg("generated page")
	}
	return sess.Books(), nil
}
