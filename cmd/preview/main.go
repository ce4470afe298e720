// Command preview plays the portfolio in a terminal: the staged loading
// screen, then the page with its effects.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/audio"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/loader"
	"github.com/Zachkp/portfolio/internal/terminal"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	run := newRunCmd()
	root := &cobra.Command{
		Use:           "preview",
		Short:         "Terminal preview of the portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run.RunE,
	}
	root.AddCommand(run)
	root.AddCommand(newContactCmd())
	root.AddCommand(newStagesCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Play the loading sequence, then browse the page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			stages, labels, err := cfg.Loader.Schedule()
			if err != nil {
				return err
			}
			beeper := audio.NewBeeper(audio.Probe(cfg))

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return terminal.Run(ctx, screen, cfg.FrameInterval(loader.DefaultFrameInterval), terminal.Options{
				Stages:    stages,
				Labels:    labels,
				Sequencer: append(beeper.Options(), loader.WithSettleDelay(cfg.Loader.SettleDelay())),
			})
		},
	}
}

func newContactCmd() *cobra.Command {
	var form contact.Form
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Check a contact form submission and show the resulting notification",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := contact.Submit(form)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), RenderNotification(n))
			return contact.Validate(form)
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "sender name")
	cmd.Flags().StringVar(&form.Email, "email", "", "sender email")
	cmd.Flags().StringVar(&form.Subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&form.Message, "message", "", "message body")
	return cmd
}

func newStagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "Print the effective loading schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			stages, labels, err := cfg.Loader.Schedule()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), RenderSchedule(stages, labels, cfg.Loader.SettleDelay()))
			return nil
		},
	}
}
