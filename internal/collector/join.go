package collector

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kurihiro0119/github-user-finder/internal/domain"
)

// Join runs fa and fb concurrently and returns both results, or the first
// error. The first failure cancels the context handed to the other
// operation and its outcome is discarded.
func Join[A, B any](ctx context.Context, fa func(context.Context) (A, error), fb func(context.Context) (B, error)) (A, B, error) {
	var (
		a     A
		b     B
		zeroA A
		zeroB B
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := fa(gctx)
		if err != nil {
			return err
		}
		a = v
		return nil
	})
	g.Go(func() error {
		v, err := fb(gctx)
		if err != nil {
			return err
		}
		b = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return zeroA, zeroB, err
	}
	return a, b, nil
}

// FetchLookup fetches the profile and the recent repositories of q
// concurrently. It succeeds only when both fetches succeed.
func FetchLookup(ctx context.Context, c Collector, q domain.Query) (*domain.Lookup, error) {
	profile, repos, err := Join(ctx,
		func(ctx context.Context) (*domain.UserProfile, error) { return c.GetUser(ctx, q) },
		func(ctx context.Context) (domain.RepositoryList, error) { return c.GetRecentRepositories(ctx, q) },
	)
	if err != nil {
		return nil, err
	}

	return &domain.Lookup{
		Query:        q,
		Profile:      profile,
		Repositories: repos,
	}, nil
}
