package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/questgame/internal/handler"
	"github.com/osse101/questgame/internal/logger"
)

func newRootCmd() *cobra.Command {
	var home string

	rootCmd := &cobra.Command{
		Use:           "questgame",
		Short:         "QuestGame – 1 quest por dia, progresso visivel.",
		Long:          "QuestGame turns the daily work on your side projects into quests, XP, loot and streaks.",
		Version:       handler.CurrentVersion().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			logger.Debug("Command finished", logger.AttrKeyCommand, cmd.Name())
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&home, "home", "", "Data directory (default $QUESTGAME_HOME or .)")

	opts := &appOptions{home: &home}
	rootCmd.AddCommand(
		newInitCmd(opts),
		newAddCmd(opts),
		newStatusCmd(opts),
		newTriageCmd(opts),
		newPlanCmd(opts),
		newDoneCmd(opts),
		newEventCmd(opts),
		newSyncCmd(opts),
		newServeCmd(opts),
		newBackupCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}
