package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"leadscout-engine/internal/scraper"
	"leadscout-engine/internal/secrets"
)

func newRunCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one scrape in the foreground and wait for it to finish",
		Long: `Runs a single scraping job without the HTTP server. Credentials come
from --email plus the OS keychain, or from LINKEDIN_EMAIL and
LINKEDIN_PASSWORD (a .env file in the working directory is honored).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(email)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "LinkedIn account email")
	return cmd
}

func runOnce(email string) error {
	_ = godotenv.Load()

	creds, err := resolveCredentials(email)
	if err != nil {
		return err
	}

	eng, err := bootstrap()
	if err != nil {
		return err
	}
	defer eng.close()

	ctrl := eng.controller(nil)
	if err := ctrl.Start(creds); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		eng.log.Info("interrupt, stopping job")
		_ = ctrl.Stop()
	}()

	lastMsg := ""
	for {
		st := ctrl.Snapshot()
		if st.Message != lastMsg {
			lastMsg = st.Message
			fmt.Printf("[%5.1f%%] %s (found %d)\n", st.Progress, st.Message, st.FoundProfiles)
		}
		if !st.Running {
			if st.Error != nil {
				return eris.New(*st.Error)
			}
			cfg := eng.config()
			eng.log.Info("run finished",
				zap.Int("profiles", st.TotalProfiles),
				zap.String("csv", cfg.CSVPath()),
				zap.String("summary", cfg.SummaryPath()))
			return nil
		}
		time.Sleep(time.Second)
	}
}

func resolveCredentials(email string) (scraper.Credentials, error) {
	if email == "" {
		email = os.Getenv("LINKEDIN_EMAIL")
	}
	if strings.TrimSpace(email) == "" {
		return scraper.Credentials{}, eris.New("email required: pass --email or set LINKEDIN_EMAIL")
	}

	password := os.Getenv("LINKEDIN_PASSWORD")
	if password == "" {
		pw, err := secrets.GetLinkedInPassword(email)
		if err != nil {
			return scraper.Credentials{}, eris.Wrap(err, "no password: set LINKEDIN_PASSWORD or store one in the keychain")
		}
		password = pw
	}

	return scraper.Credentials{Email: email, Password: password}, nil
}
