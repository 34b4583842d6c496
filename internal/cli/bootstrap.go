package cli

import (
	gocontext "context"
	"fmt"

	"github.com/example/bg3planner/internal/config"
	"github.com/example/bg3planner/internal/ctxutil"
	"github.com/example/bg3planner/internal/wire"
)

// Bootstrap resolves configuration for this invocation and builds the
// services. It should be called from the root command's PersistentPreRunE.
func Bootstrap(dataDirFlag string) error {
	cfg, err := config.Load(dataDirFlag)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return wire.Init(cfg)
}

// NewContext creates a context carrying the local actor, so audit entries
// record who made each change.
func NewContext() gocontext.Context {
	ctx := gocontext.Background()
	if actor := ctxutil.LocalActor(); actor != "" {
		return ctxutil.WithActorID(ctx, actor)
	}
	return ctx
}
