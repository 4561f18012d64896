package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/handler"
	"github.com/osse101/questgame/internal/progression"
	"github.com/osse101/questgame/internal/server"
	"github.com/osse101/questgame/internal/ui"
)

func newInitCmd(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Inicializa arquivos do jogo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			results, err := a.store.Init()
			if err != nil {
				return err
			}
			for _, r := range results {
				if r.Created {
					fmt.Fprintf(out, "  criado %s\n", r.Name)
				} else {
					fmt.Fprintf(out, "  %s\n", ui.Muted.Render("ja existe "+r.Name))
				}
			}

			if err := os.MkdirAll(filepath.Join(a.cfg.Home, server.UIDirName), 0o755); err != nil {
				return fmt.Errorf("failed to create ui dir: %w", err)
			}
			fmt.Fprintln(out, "  pasta ui/ ok")
			fmt.Fprintln(out, "\n"+ui.Good.Render(ui.IconDone+" QuestGame inicializado!"))
			return nil
		},
	}
}

func newAddCmd(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <texto>",
		Short: "Adiciona ideia ao inbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			text, err := a.svc.AddToInbox(context.Background(), strings.Join(args, " "))
			if err != nil {
				return hint(cmd.OutOrStdout(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  adicionado ao inbox: %s\n", text)
			return nil
		},
	}
}

func newStatusCmd(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Mostra status atual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			status, err := a.svc.Status(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			p := status.State.Player

			fmt.Fprintln(out, "\n  "+ui.Heading("QuestGame Status"))
			fmt.Fprintln(out, "  "+ui.LabelValue("Player", p.Name))
			fmt.Fprintf(out, "  %s   %s\n", ui.LabelValue("Level", p.Level), ui.LabelValue("XP", p.XP))
			fmt.Fprintln(out, "  "+ui.LabelValue("Streak", fmt.Sprintf("%d dias", p.Streak)))
			fmt.Fprintln(out)

			for _, c := range domain.Categories {
				t := *status.State.Tables.Get(c)
				needed := progression.Needed(t)
				fmt.Fprintf(out, "  Mesa %s  Lv %d  [%s] %d/%d\n",
					ui.CategoryLabel(c), t.Level, ui.ProgressBar(t.Progress, needed, ui.DefaultBarWidth), t.Progress, needed)
			}
			fmt.Fprintln(out)

			if q := status.Today.Quest(); q != nil {
				fmt.Fprintln(out, "  "+ui.LabelValue("Quest do dia", q.Title))
				fmt.Fprintln(out, "  "+ui.LabelValue("Categoria", strings.ToUpper(string(q.Category))))
				fmt.Fprintln(out, "  "+ui.LabelValue("Tempo", fmt.Sprintf("~%d min", q.EffortMinutes)))
				for i, step := range q.Steps {
					fmt.Fprintln(out, "    "+ui.StepLine(i, step))
				}
			} else {
				fmt.Fprintln(out, "  "+domain.ErrMsgNoActiveQuest+". Use: plan")
			}

			if len(status.RecentLoot) > 0 {
				fmt.Fprintf(out, "\n  %s\n", ui.LabelValue("Loot recente", strings.Join(status.RecentLoot, ", ")))
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

func newTriageCmd(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "triage",
		Short: "Transforma inbox em backlog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			res, err := a.svc.Triage(context.Background())
			if err != nil {
				return hint(out, err)
			}
			for _, item := range res.Items {
				fmt.Fprintf(out, "  [%s] %s → %s\n", item.ID, ui.CategoryLabel(item.Category), item.Title)
			}
			fmt.Fprintf(out, "\n  %s\n", ui.Good.Render(fmt.Sprintf("%s %d item(ns) movidos para o backlog. Inbox limpo.", ui.IconDone, res.Added)))
			return nil
		},
	}
}

func newPlanCmd(opts *appOptions) *cobra.Command {
	var backlogID string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Escolhe quest do dia",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			res, err := a.svc.Plan(context.Background(), backlogID)
			if err != nil {
				return hint(out, err)
			}
			if res.ForcedShipReach {
				fmt.Fprintln(out, "  "+ui.Warn.Render(ui.IconEvent+" Regra de ouro: priorizando SHIP/REACH (3+ dias so em BUILD)"))
			}

			q := res.Quest
			fmt.Fprintln(out, "\n  "+ui.Heading("Quest do Dia"))
			fmt.Fprintln(out, "  "+ui.H2.Render(q.Title))
			fmt.Fprintf(out, "  Categoria: %s  |  ~%d min\n\n", strings.ToUpper(string(q.Category)), q.EffortMinutes)
			for i, step := range q.Steps {
				fmt.Fprintln(out, "    "+ui.StepLine(i, step))
			}
			fmt.Fprintln(out, "\n  Boa quest! Quando terminar: done")
			return nil
		},
	}

	cmd.Flags().StringVar(&backlogID, "id", "", "Backlog item to play instead of the best scored one")
	return cmd
}

func newDoneCmd(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Finaliza quest do dia",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			res, err := a.svc.Complete(context.Background())
			if err != nil {
				return hint(out, err)
			}
			st := a.store.State(context.Background())

			rule := ui.Gold.Render(strings.Repeat("═", 30))
			fmt.Fprintln(out, "\n  "+rule)
			fmt.Fprintln(out, "  "+ui.Good.Render(ui.IconDone+" Quest concluida!"))
			fmt.Fprintln(out, "  "+res.Title)
			fmt.Fprintf(out, "  +%d XP   Streak: %d dias\n", res.XP, res.Streak)
			loot := "  Loot: " + strings.Join(res.Loot, ", ")
			if label := ui.RarityLabel(res.Loot); label != "" {
				loot += "  " + label
			}
			fmt.Fprintln(out, loot)
			fmt.Fprintf(out, "  Level: %d   XP total: %d\n", res.Level, st.Player.XP)
			if res.LeveledUp {
				fmt.Fprintln(out, "  "+ui.Gold.Render("LEVEL UP!"))
			}
			fmt.Fprintln(out, "  "+rule+"\n")
			return nil
		},
	}
}

func newEventCmd(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "event <tipo> [nota]",
		Short: "Registra evento rapido (blog, tiktok, store, revenue)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			note := strings.Join(args[1:], " ")
			res, err := a.svc.RecordEvent(context.Background(), args[0], note)
			if err != nil {
				return hint(out, err)
			}
			st := a.store.State(context.Background())

			fmt.Fprintf(out, "\n  %s\n", ui.Warn.Render(ui.IconEvent+" Evento registrado: "+res.Event))
			if note != "" {
				fmt.Fprintf(out, "  Nota: %s\n", note)
			}
			fmt.Fprintf(out, "  +%d XP   Loot: %s\n", res.XP, strings.Join(res.Loot, ", "))
			fmt.Fprintf(out, "  Level: %d   XP total: %d\n\n", res.Level, st.Player.XP)
			return nil
		},
	}
}

func newSyncCmd(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sincroniza com git",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ctx := context.Background()
			res, err := a.svc.Sync(ctx)
			if err != nil {
				return hint(out, err)
			}
			if len(res.Tags) > 0 {
				tagXP := a.store.GameConfig(ctx).Git.TagXP
				fmt.Fprintln(out, "  "+ui.Gold.Render(fmt.Sprintf("%s Tag de release detectada! +%d XP", ui.IconStar, tagXP)))
			}
			st := a.store.State(ctx)

			fmt.Fprintf(out, "\n  %s\n", ui.Good.Render(fmt.Sprintf("%s Sync: %d commit(s)", ui.IconDone, len(res.Commits))))
			fmt.Fprintf(out, "  +%d XP   Loot: %s\n", res.XP, strings.Join(res.Loot, ", "))
			fmt.Fprintf(out, "  Level: %d   XP total: %d\n\n", res.Level, st.Player.XP)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versao",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := handler.CurrentVersion()
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("questgame", v.Version))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%s  commit %s  built %s", v.GoVersion, v.GitCommit, v.BuildTime)))
			return nil
		},
	}
}
