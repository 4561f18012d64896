package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/questgame/internal/game"
	"github.com/osse101/questgame/internal/store"
	"github.com/osse101/questgame/internal/ui"
)

const (
	backupDirName    = "backups"
	backupNameLayout = "2006-01-02_15-04-05"
	backupFilePerm   = 0o644
	backupDirPerm    = 0o755
)

func newBackupCmd(opts *appOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Salva um snapshot comprimido dos arquivos do jogo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}

			now := time.Now()
			if outPath == "" {
				outPath = defaultBackupPath(a.cfg.Home, now)
			}
			if err := os.MkdirAll(filepath.Dir(outPath), backupDirPerm); err != nil {
				return fmt.Errorf("failed to create backup dir: %w", err)
			}

			f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, backupFilePerm)
			if err != nil {
				return fmt.Errorf("failed to create backup file: %w", err)
			}
			snap, err := a.store.Backup(context.Background(), f, now.UTC().Format(game.TimestampLayout))
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				os.Remove(outPath)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ui.Good.Render(fmt.Sprintf("%s Backup salvo em %s", ui.IconDone, outPath)))
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ui.Muted.Render(fmt.Sprintf("%d documentos, %d linhas de log", len(snap.Documents), len(snap.LogLines))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Archive path (default <home>/backups/questgame-<ts>.qgb)")
	return cmd
}

func defaultBackupPath(home string, now time.Time) string {
	return filepath.Join(home, backupDirName, "questgame-"+now.Format(backupNameLayout)+store.BackupExt)
}
