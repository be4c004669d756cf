package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/kapral18/ghthread/internal/config"
	"github.com/kapral18/ghthread/internal/git"
	"github.com/kapral18/ghthread/internal/logging"
	"github.com/kapral18/ghthread/internal/ui"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	var (
		repoFlag   string
		shaFlag    string
		configPath string
		logLevel   string
		logFile    string
	)

	app := &cli.Command{
		Name:      "ghthread",
		Usage:     "Browse and write commit comment threads on GitHub",
		UsageText: "ghthread [options]",
		Description: `Opens the comment thread of a commit as an editable document.

The commit is rendered with its comments; the tail of the document is a
compose area. Without flags the repository and commit are detected from
the current directory's git checkout.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"r"},
				Usage:       "repository in owner/name form (defaults to the origin remote)",
				Sources:     cli.EnvVars("GHTHREAD_REPO"),
				Destination: &repoFlag,
			},
			&cli.StringFlag{
				Name:        "sha",
				Aliases:     []string{"s"},
				Usage:       "commit SHA (defaults to HEAD of the current checkout)",
				Destination: &shaFlag,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("GHTHREAD_CONFIG"),
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal)",
				Sources:     cli.EnvVars("GHTHREAD_LOG_LEVEL"),
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("GHTHREAD_LOG_FILE"),
				Destination: &logFile,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}

			closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return fmt.Errorf("setup logger: %w", err)
			}
			defer closer()

			owner, repo, sha, err := resolveTarget(repoFlag, shaFlag)
			if err != nil {
				return err
			}
			log.Info().Str("owner", owner).Str("repo", repo).Str("sha", sha).Msg("opening thread")

			p := tea.NewProgram(ui.NewApp(cfg, owner, repo, sha), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run UI: %w", err)
			}
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveTarget fills in owner, repo and sha from flags, falling back to
// the git checkout in the working directory.
func resolveTarget(repoFlag, shaFlag string) (owner, repo, sha string, err error) {
	if repoFlag != "" {
		parts := splitRepo(repoFlag)
		if parts == nil {
			return "", "", "", fmt.Errorf("invalid --repo %q, expected owner/name", repoFlag)
		}
		owner, repo = parts[0], parts[1]
	} else {
		owner, repo, err = git.DetectRepo(".")
		if err != nil {
			return "", "", "", fmt.Errorf("no --repo given and %w", err)
		}
	}

	sha = shaFlag
	if sha == "" {
		sha, err = git.HeadSHA(".")
		if err != nil {
			return "", "", "", fmt.Errorf("no --sha given and %w", err)
		}
	}
	return owner, repo, sha, nil
}

func splitRepo(s string) []string {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			if i == 0 || i == len(s)-1 {
				return nil
			}
			return []string{s[:i], s[i+1:]}
		}
	}
	return nil
}
