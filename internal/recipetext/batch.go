package recipetext

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hammamikhairi/recipekit/internal/domain"
)

// ParseBatch parses every text independently, at most p.concurrency at a
// time. Results are in input order. The first failure stops the remaining
// work and is returned with the index of the offending text.
func (p *Parser) ParseBatch(ctx context.Context, raws []string) ([]*domain.Recipe, error) {
	out := make([]*domain.Recipe, len(raws))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, raw := range raws {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := p.Parse(raw)
			if err != nil {
				return fmt.Errorf("recipe %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	p.log.Info("parsed %d recipes", len(out))
	return out, nil
}
