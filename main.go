package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mdp/qrterminal/v3"
	"github.com/muesli/coral"

	"deckgen/internal/config"
	"deckgen/internal/deck"
	"deckgen/internal/preview"
	"deckgen/styles"
)

var (
	output        string
	configPath    string
	screenshotDir string
	showQR        bool
	verbose       bool
)

var rootCmd = &coral.Command{
	Use:   "deckgen",
	Short: "Generate a pitch deck as a .pptx file",
	Long: "deckgen builds a fixed-structure pitch deck (title, problem, scale,\n" +
		"solution, demo, proof, roadmap, ask) from a YAML description and writes\n" +
		"it as a PowerPoint file with speaker notes on every slide.",
	Args:         coral.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *coral.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		prs, err := deck.Build(cfg)
		if err != nil {
			return err
		}
		if err := prs.WriteFile(output); err != nil {
			return err
		}
		log.Debug("deck written", "slides", prs.SlideCount(), "path", output)

		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Generated %s (%d slides)", output, prs.SlideCount())))
		fmt.Println(styles.Hint.Render(fmt.Sprintf("  speaker notes attached · screenshots resolved from %s/", cfg.Screenshots)))

		if showQR {
			printShareQR(cfg)
		}
		return nil
	},
}

var previewCmd = &coral.Command{
	Use:   "preview",
	Short: "Page through the deck's content in the terminal",
	Args:  coral.NoArgs,
	RunE: func(cmd *coral.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return preview.Run(cfg)
	},
}

func loadConfig() (config.Config, error) {
	log.SetLevel(log.WarnLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		log.Debug("config loaded", "path", configPath)
	}
	if screenshotDir != "" {
		cfg.Screenshots = screenshotDir
	}
	return cfg, nil
}

// printShareQR renders the share URL as a terminal QR code so the
// audience can scan it straight off the presenter's screen.
func printShareQR(cfg config.Config) {
	url := cfg.Ask.ShareURL
	if url == "" {
		log.Warn("no ask.share_url configured, skipping QR code")
		return
	}
	qrterminal.GenerateWithConfig(url, qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         os.Stdout,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      1,
	})
	fmt.Println(styles.Hint.Render(url))
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "deck.pptx", "output file path")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML deck description (defaults used when omitted)")
	rootCmd.PersistentFlags().StringVarP(&screenshotDir, "screenshots", "s", "", "directory to resolve screenshots from")
	rootCmd.Flags().BoolVar(&showQR, "qr", false, "print a QR code of the share URL after generating")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
