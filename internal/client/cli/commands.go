package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/uuidfeed/internal/client/display"
	"github.com/dmitrijs2005/uuidfeed/internal/common"
)

func (a *App) Generate(ctx context.Context) error {
	return a.generate(ctx, false)
}

func (a *App) Gift(ctx context.Context) error {
	return a.generate(ctx, true)
}

func (a *App) generate(ctx context.Context, isGift bool) error {
	res, err := a.api.Generate(ctx, a.sessionID, isGift)
	if err != nil {
		a.logger.Error(ctx, "generate failed", "error", err)
		printlnFn("Failed to generate UUID:", err)
		return err
	}

	defer a.refreshStats(ctx)

	if res.Collision {
		printlnFn("Collision detected:", res.UUID)
		return nil
	}

	if res.Record != nil {
		a.stream.Add(*res.Record)
	}
	printlnFn("Generated:", res.UUID)
	return nil
}

// Bulk requests arg UUIDs at once; the server clamps the count.
func (a *App) Bulk(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		printlnFn("Usage: bulk <n>")
		return common.ErrInvalidRequest
	}

	uuids, err := a.api.BulkGenerate(ctx, a.sessionID, n)
	if errors.Is(err, common.ErrCollision) {
		a.refreshStats(ctx)
		printlnFn("Collision detected during bulk generation")
		return nil
	}
	if err != nil {
		a.logger.Error(ctx, "bulk generate failed", "error", err)
		printlnFn("Failed to generate UUIDs:", err)
		return err
	}

	a.refreshStats(ctx)
	printlnFn(fmt.Sprintf("Generated %d UUIDs", len(uuids)))
	for _, u := range uuids {
		printlnFn("  " + u)
	}
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	st, err := a.api.Stats(ctx)
	if err != nil {
		a.logger.Error(ctx, "stats failed", "error", err)
		printlnFn("Stats unavailable:", err)
		return err
	}
	a.setStats(st)

	printlnFn(fmt.Sprintf("Total generated:       %d", st.TotalGenerated))
	printlnFn(fmt.Sprintf("Collisions:            %d", st.Collisions))
	printlnFn(fmt.Sprintf("Collision probability: %s", display.FormatProbability(st.TotalGenerated, a.compact())))
	return nil
}

func (a *App) List(ctx context.Context) error {
	entries := a.stream.Entries()
	if len(entries) == 0 {
		printlnFn("No UUIDs yet")
		return nil
	}
	for _, rec := range entries {
		printlnFn(a.formatRecord(rec))
	}
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	printlnFn("Client ID:", a.sessionID)
	return nil
}
