package cli

import (
	"context"
	"log/slog"
	"time"

	"startrek/internal/universe"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// NewRootCommand wires every command against registry, which lives for the
// whole process.
func NewRootCommand(registry *universe.Registry, logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "startrek",
		Short: "Send the Enterprise from Earth to Vulcan",
		Long: `startrek places Earth, Vulcan and the Enterprise in the universe and
sends the Enterprise to Vulcan, writing one captain's log entry to stdout.

Arguments and unknown flags are accepted and ignored.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			info := commandContext{
				correlationID: uuid.New(),
				startedAt:     time.Now(),
			}
			cmd.SetContext(context.WithValue(cmd.Context(), commandContextKey{}, info))
			logger.Debug("command start",
				"command", cmd.CommandPath(),
				"correlation_id", info.correlationID.String(),
			)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
			if !ok {
				return
			}
			logger.Debug("command end",
				"command", cmd.CommandPath(),
				"correlation_id", info.correlationID.String(),
				"duration_ms", time.Since(info.startedAt).Milliseconds(),
			)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				logger.Debug("Ignoring arguments", "args", args)
			}
			return runVoyage(registry)
		},
	}

	rootCmd.AddCommand(
		newUniverseCommand(registry),
		newSnapshotCommand(registry),
	)

	return rootCmd
}
