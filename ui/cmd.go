package ui

import (
	"canvaschess/src"
	"canvaschess/src/autoplay"
	"canvaschess/src/autoplay/uci"
	"canvaschess/src/base"
	"canvaschess/src/logx"
	"canvaschess/src/render/record"
	clic "canvaschess/ui/cli"
	"canvaschess/ui/gui"
	"canvaschess/ui/gui/gbase/gconf"
	"canvaschess/ui/gui/gdraw"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func configPath(c *cli.Command) string {
	if path := c.String("config"); path != "" {
		return path
	}
	return gconf.DefaultFile
}

// loadConfig reads the config file and lets flags given on the command line
// override it
func loadConfig(c *cli.Command) (*gconf.Config, error) {
	cfg, err := gconf.Load(configPath(c))
	if err != nil {
		return nil, err
	}
	override := func(flag string, dst *string) {
		if c.IsSet(flag) {
			*dst = c.String(flag)
		}
	}
	override("fen", &cfg.Position)
	override("rules", &cfg.Rules)
	override("orientation", &cfg.Orientation)
	override("can-play", &cfg.CanPlay)
	override("engine", &cfg.Engine)
	override("engine-side", &cfg.EngineSide)
	override("pieces", &cfg.PiecesSheet)
	override("theme", &cfg.Theme)
	if c.IsSet("strength") {
		cfg.Level = int(c.Int("strength"))
	}
	return cfg, nil
}

func gameOptions(cfg *gconf.Config) (src.Options, error) {
	opts := src.Options{Rules: cfg.Rules, Position: cfg.Position, Seed: uint64(time.Now().UnixNano())}
	var err error
	if opts.Orientation, err = base.ColorFromString(cfg.Orientation); err != nil {
		return opts, err
	}
	if opts.CanPlay, err = src.ParseCanPlay(cfg.CanPlay); err != nil {
		return opts, err
	}
	return opts, nil
}

// newOpponent builds the autoplay side: empty for none, "random" for random
// moves, anything else is the path of a UCI engine
func newOpponent(ctx context.Context, cfg *gconf.Config, logger logx.Logger) (autoplay.Player, base.Color, error) {
	side, err := base.ColorFromString(cfg.EngineSide)
	if err != nil {
		return nil, side, err
	}
	switch strings.ToLower(cfg.Engine) {
	case "", "none":
		return nil, side, nil
	case autoplay.RandomName:
		return autoplay.NewRandom(uint64(time.Now().UnixNano())), side, nil
	}
	e := uci.New(logger, autoplay.Level(cfg.Level), cfg.Engine)
	startCtx, cancel := context.WithTimeout(ctx, autoplay.HandshakeTimeout*5)
	defer cancel()
	if err := e.Start(startCtx); err != nil {
		return nil, side, fmt.Errorf("start engine %s: %w", cfg.Engine, err)
	}
	logger.Infof("opponent %s plays %s", e.Name(), side)
	return e, side, nil
}

func RunGUI(ctx context.Context, c *cli.Command) error {
	file, err := logx.OpenLogfile()
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	opts, err := gameOptions(cfg)
	if err != nil {
		return err
	}
	surface := gdraw.NewBoardSurface()
	game, err := src.NewGame(surface, opts, logger)
	if err != nil {
		return err
	}
	g, err := gui.NewGUI(game, surface, cfg, logger)
	if err != nil {
		return err
	}
	g.SetConfigFile(configPath(c))

	opponent, side, err := newOpponent(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if opponent != nil {
		defer opponent.Close()
		g.SetOpponent(opponent, side)
	}
	return g.Run()
}

func RunCLI(ctx context.Context, c *cli.Command) error {
	file, err := logx.OpenLogfile()
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	opts, err := gameOptions(cfg)
	if err != nil {
		return err
	}
	surface := record.NewUntraced()
	game, err := src.NewGame(surface, opts, logger)
	if err != nil {
		return err
	}
	if err := game.Start(); err != nil {
		return err
	}

	clic.EnableANSI()
	cl := clic.NewCLI(game, surface, logger)
	opponent, side, err := newOpponent(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if opponent != nil {
		defer opponent.Close()
		cl.SetOpponent(opponent, side)
	}
	return cl.Run(ctx)
}

func RunSVG(ctx context.Context, c *cli.Command) error {
	logger := logx.NewNop()
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	opts, err := gameOptions(cfg)
	if err != nil {
		return err
	}
	opts.Side = float64(c.Int("side"))

	out := os.Stdout
	if path := c.String("out"); path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return ExportSVG(out, SVGOptions{
		Game:   opts,
		Theme:  cfg.Palette(),
		Moves:  c.StringSlice("move"),
		Select: c.String("select"),
	}, logger)
}

func RunCanvasChess() error {
	configF := &cli.StringFlag{
		Name:  "config",
		Value: gconf.DefaultFile,
		Usage: "path to JSON config",
	}
	fenF := &cli.StringFlag{
		Name:  "fen",
		Usage: "start position in FEN",
	}
	rulesF := &cli.StringFlag{
		Name:  "rules",
		Usage: "rules backend: notnil or dragontooth",
	}
	orientF := &cli.StringFlag{
		Name:    "orientation",
		Aliases: []string{"o"},
		Usage:   "color at the bottom: white or black",
	}
	canPlayF := &cli.StringFlag{
		Name:  "can-play",
		Usage: "who may move with the pointer: both, white, black or none",
	}
	engineF := &cli.StringFlag{
		Name:    "engine",
		Aliases: []string{"e"},
		Usage:   "opponent: random or path to a UCI engine",
	}
	engineSideF := &cli.StringFlag{
		Name:  "engine-side",
		Usage: "color played by the opponent",
	}
	strengthF := &cli.IntFlag{
		Name:  "strength",
		Usage: "UCI engine level 1..10",
	}
	piecesF := &cli.StringFlag{
		Name:  "pieces",
		Usage: "pieces sprite sheet, 6x2 frames: K Q B N R P, white row first",
	}
	themeF := &cli.StringFlag{
		Name:  "theme",
		Usage: "light or dark",
	}
	devF := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "development logger encoding",
	}
	levelF := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "logger level",
	}
	consoleF := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "log to stdout with console encoding",
	}
	outF := &cli.StringFlag{
		Name:  "out",
		Usage: "SVG output file, stdout when empty",
	}
	sideF := &cli.IntFlag{
		Name:  "side",
		Value: 480,
		Usage: "SVG board side in pixels",
	}
	moveF := &cli.StringSliceFlag{
		Name:  "move",
		Usage: "UCI move played before the snapshot, repeatable",
	}
	selectF := &cli.StringFlag{
		Name:  "select",
		Usage: "square to select in the snapshot",
	}

	gameff := []cli.Flag{configF, fenF, rulesF, orientF, canPlayF, devF, levelF, consoleF}
	playff := append(append([]cli.Flag{}, gameff...), engineF, engineSideF, strengthF)
	guiff := append(append([]cli.Flag{}, playff...), piecesF, themeF)
	svgff := append(append([]cli.Flag{}, gameff...), themeF, outF, sideF, moveF, selectF)

	return (&cli.Command{
		Name:  "canvaschess",
		Usage: "interactive chessboard",
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Usage:  "play in a window (default)",
				Flags:  guiff,
				Action: runReporting("GUI", RunGUI),
			},
			{
				Name:   "cli",
				Usage:  "play in the terminal by typing squares",
				Flags:  playff,
				Action: runReporting("CLI", RunCLI),
			},
			{
				Name:   "svg",
				Usage:  "write a board snapshot as SVG",
				Flags:  svgff,
				Action: runReporting("SVG", RunSVG),
			},
		},
		Action: runReporting("GUI", RunGUI),
	}).Run(context.Background(), os.Args)
}

func runReporting(what string, run cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if err := run(ctx, c); err != nil {
			fmt.Fprintf(os.Stderr, "error %s: %v\n", what, err)
			return cli.Exit("", 1)
		}
		return nil
	}
}
