package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/spoilersweep/game"
	"gopkg.in/yaml.v2"
)

var log = logrus.New()

type options struct {
	gameConfig game.GameConfig

	configPath  string
	seedPhrase  string
	snapshotOut string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &options{gameConfig: game.NewGameConfig()}

	rootCmd := &cobra.Command{
		Use:   "spoilersweep",
		Short: "Generate a Minesweeper board hidden behind Discord spoiler tags",
		Long: `spoilersweep generates a random Minesweeper board and prints it as
Discord spoiler-tagged emotes, ready to paste into a message.

Generate the classic 9x9 board with 10 mines
	spoilersweep

Reveal a starting region, and share the board under a memorable name
	spoilersweep --reveal --seed-phrase "friday night"
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	flags := rootCmd.Flags()
	flags.IntVarP(&opts.gameConfig.Rows, "height", "h", game.DefaultRows, "Number of rows in the mine field")
	flags.IntVarP(&opts.gameConfig.Columns, "width", "w", game.DefaultColumns, "Number of columns in the mine field")
	flags.IntVarP(&opts.gameConfig.Mines, "mines", "m", game.DefaultMines, "Number of mines to place in the mine field")
	flags.StringVarP(&opts.gameConfig.Emote, "emote", "e", game.DefaultEmote, "Emote used for mines")
	flags.BoolVarP(&opts.gameConfig.RevealFirstCell, "reveal", "r", false, "Reveal a random safe cell, like the first click of a regular game")
	flags.BoolVar(&opts.gameConfig.ExpandZeros, "expand-zeros", true, "Reveal the whole region around a first cell without neighbouring mines")
	flags.BoolVar(&opts.gameConfig.Spaces, "spaces", true, "Surround emotes with spaces")
	flags.Var(newReturnTypeValue(game.Text, &opts.gameConfig.ReturnType), "output", `Output format:
text: spoiler-tagged emotes, one row per line
code: the same text inside a code block
matrix: the grid of rendered cells, as YAML`)
	flags.Int64Var(&opts.gameConfig.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&opts.seedPhrase, "seed-phrase", "", "Derive the RNG seed from a phrase")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVar(&opts.snapshotOut, "snapshot-out", "", "Write a YAML snapshot of the generated board to this path")
	flags.StringVar(&opts.logLevel, "log-level", "warning", "Log level (trace, debug, info, warning, error)")

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	game.Log.SetLevel(level)

	gameConfig, err := resolveGameConfig(cmd, opts)
	if err != nil {
		return err
	}

	generator := game.NewGenerator(gameConfig)
	result, err := generator.Start()
	if err != nil {
		return fmt.Errorf("cannot place %d mines on a %dx%d board: %w",
			gameConfig.Mines, gameConfig.Rows, gameConfig.Columns, err)
	}

	log.WithFields(logrus.Fields{
		"seed":     result.Seed,
		"revealed": result.Revealed,
	}).Info("generated board")

	if err := writeResult(cmd.OutOrStdout(), result); err != nil {
		return err
	}

	if opts.snapshotOut != "" {
		return saveSnapshot(opts.snapshotOut, generator.Snapshot())
	}
	return nil
}

// resolveGameConfig layers the config file under any flags given explicitly
func resolveGameConfig(cmd *cobra.Command, opts *options) (game.GameConfig, error) {
	gameConfig, err := LoadGameConfig(opts.configPath)
	if err != nil {
		return gameConfig, err
	}

	flags := cmd.Flags()
	overrides := map[string]func(){
		"height":       func() { gameConfig.Rows = opts.gameConfig.Rows },
		"width":        func() { gameConfig.Columns = opts.gameConfig.Columns },
		"mines":        func() { gameConfig.Mines = opts.gameConfig.Mines },
		"emote":        func() { gameConfig.Emote = opts.gameConfig.Emote },
		"reveal":       func() { gameConfig.RevealFirstCell = opts.gameConfig.RevealFirstCell },
		"expand-zeros": func() { gameConfig.ExpandZeros = opts.gameConfig.ExpandZeros },
		"spaces":       func() { gameConfig.Spaces = opts.gameConfig.Spaces },
		"output":       func() { gameConfig.ReturnType = opts.gameConfig.ReturnType },
		"seed":         func() { gameConfig.Seed = opts.gameConfig.Seed },
	}
	for name, override := range overrides {
		if flags.Changed(name) {
			override()
		}
	}

	if opts.seedPhrase != "" {
		gameConfig.Seed = game.SeedFromPhrase(opts.seedPhrase)
	}

	return gameConfig, nil
}

func writeResult(out io.Writer, result *game.Result) error {
	if result.ReturnType != game.Matrix {
		_, err := fmt.Fprintln(out, result.Text)
		return err
	}

	matrix, err := yaml.Marshal(result.Matrix)
	if err != nil {
		return fmt.Errorf("unable to encode matrix: %w", err)
	}
	_, err = out.Write(matrix)
	return err
}

func saveSnapshot(path string, snapshot *game.BoardSnapshot) error {
	serialized, err := snapshot.Serialize()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(serialized), 0o644); err != nil {
		return fmt.Errorf("unable to write snapshot %s: %w", path, err)
	}

	log.WithField("path", path).Info("saved board snapshot")
	return nil
}

type returnTypeValue game.ReturnType

func newReturnTypeValue(val game.ReturnType, p *game.ReturnType) *returnTypeValue {
	*p = val
	return (*returnTypeValue)(p)
}

func (value *returnTypeValue) String() string {
	return game.ReturnType(*value).String()
}

func (value *returnTypeValue) Set(name string) error {
	returnType, err := game.ParseReturnType(name)
	if err != nil {
		return err
	}
	*value = returnTypeValue(returnType)
	return nil
}

func (value *returnTypeValue) Type() string {
	return "game.ReturnType"
}
