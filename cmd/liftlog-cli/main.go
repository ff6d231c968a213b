package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/claude/liftlog/internal/api"
	"github.com/claude/liftlog/internal/timer"
	"github.com/claude/liftlog/internal/ui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// bellBeeper sounds the rest-timer cue with the terminal bell.
type bellBeeper struct{}

func (bellBeeper) Beep() error {
	_, err := fmt.Fprint(os.Stdout, "\a")
	return err
}

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "LiftLog server URL")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftlog-cli", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Open preferences database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	prefs, err := ui.OpenPrefs(filepath.Join(homeDir, ".liftlog"))
	if err != nil {
		log.Error("failed to open preferences", "error", err)
		os.Exit(1)
	}
	defer func() { _ = prefs.Close() }()

	tm := timer.New(timer.DefaultDurationSec, timer.DefaultPlannedSets, bellBeeper{}, log)
	app := ui.New(api.New(*serverURL), tm, prefs, log)

	// Live countdown line while the timer runs; full views are printed on
	// demand via the show command.
	app.SetOnRender(func(v ui.View) {
		if v.Timer.Running {
			fmt.Printf("\r  %s  set %s ", v.Timer.Display, v.Timer.SetProgress)
		}
	})

	ctx := context.Background()
	app.Load(ctx)
	printView(ui.Render(app.Snapshot()))

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}
		if line != "" {
			dispatch(ctx, app, line)
		}
		fmt.Print("> ")
	}
}

func dispatch(ctx context.Context, app *ui.App, line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		printHelp()
	case "show":
		printView(ui.Render(app.Snapshot()))
	case "lang":
		if len(args) != 1 {
			fmt.Println("usage: lang <es|en>")
			return
		}
		app.SwitchLanguage(args[0])
		printView(ui.Render(app.Snapshot()))
	case "log":
		logEntry(ctx, app, args)
	case "add":
		addExercise(ctx, app, strings.Join(args, " "))
	case "del":
		if len(args) != 1 {
			fmt.Println("usage: del <entry-id>")
			return
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("usage: del <entry-id>")
			return
		}
		app.DeleteEntry(ctx, id)
		printStatus(app)
	case "start":
		app.StartTimer(optArg(args))
	case "pause":
		app.PauseTimer()
		fmt.Println("paused at", ui.Render(app.Snapshot()).Timer.Display)
	case "reset":
		app.ResetTimer(optArg(args))
		fmt.Println("reset to", ui.Render(app.Snapshot()).Timer.Display)
	case "preset":
		if len(args) != 1 {
			fmt.Println("usage: preset <seconds>, one of", timer.Presets)
			return
		}
		secs, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("usage: preset <seconds>, one of", timer.Presets)
			return
		}
		app.ApplyPreset(secs)
		fmt.Println("timer set to", ui.Render(app.Snapshot()).Timer.Display)
	case "sets":
		if len(args) != 1 {
			fmt.Println("usage: sets <n>")
			return
		}
		app.SetPlannedSets(args[0])
	default:
		fmt.Printf("unknown command %q, try help\n", cmd)
	}
}

// logEntry handles: log <exercise-id> <weight> <reps> <sets> [rpe] [notes...]
func logEntry(ctx context.Context, app *ui.App, args []string) {
	if len(args) < 4 {
		fmt.Println("usage: log <exercise-id> <weight-kg> <reps> <sets> [rpe] [notes...]")
		return
	}

	snap := app.Snapshot()
	form := snap.EntryForm
	form.ExerciseID = args[0]
	form.Weight = args[1]
	form.Reps = args[2]
	form.Sets = args[3]
	form.RPE = ""
	if len(args) > 4 {
		form.RPE = args[4]
	}
	form.Notes = ""
	if len(args) > 5 {
		form.Notes = strings.Join(args[5:], " ")
	}

	app.UpdateEntryForm(form)
	app.SubmitEntry(ctx)
	printStatus(app)
}

// addExercise handles: add <name es> | <name en> [| category]
func addExercise(ctx context.Context, app *ui.App, arg string) {
	parts := strings.Split(arg, "|")
	if len(parts) < 2 {
		fmt.Println("usage: add <spanish name> | <english name> [| category]")
		return
	}

	form := ui.ExerciseForm{
		NameES: strings.TrimSpace(parts[0]),
		NameEN: strings.TrimSpace(parts[1]),
	}
	if len(parts) > 2 {
		form.Category = strings.TrimSpace(parts[2])
	}

	app.UpdateExerciseForm(form)
	app.SubmitExercise(ctx)
	printStatus(app)
}

func optArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func printStatus(app *ui.App) {
	if v := ui.Render(app.Snapshot()); v.Status != "" {
		fmt.Println(v.Status)
	}
}

func printView(v ui.View) {
	fmt.Println()
	fmt.Printf("=== %s | %s ===\n", v.Title, v.Subtitle)
	if v.Status != "" {
		fmt.Println(v.Status)
	}
	fmt.Printf("timer %s  set %s\n", v.Timer.Display, v.Timer.SetProgress)

	fmt.Println()
	fmt.Println("exercises:")
	for _, opt := range v.ExerciseOptions {
		fmt.Printf("  %3d  %s\n", opt.ID, opt.Label)
	}

	fmt.Println()
	fmt.Println(strings.Join(v.EntryHeaders, "  |  "))
	for _, row := range v.Entries {
		fmt.Printf("  #%d  %s  %s  %s kg  %s  rpe %s  %s\n",
			row.ID, row.Date, row.Exercise, row.Weight, row.SetsReps, row.RPE, row.Notes)
	}
	fmt.Println()
}

func printHelp() {
	fmt.Print(`commands:
  show                                       redraw the current view
  lang <es|en>                               switch language
  log <id> <kg> <reps> <sets> [rpe] [notes]  log a lift
  add <es name> | <en name> [| category]     add a catalog exercise
  del <entry-id>                             delete an entry
  start [seconds]                            start the rest timer
  pause                                      pause the rest timer
  reset [seconds]                            reset the rest timer
  preset <seconds>                           pick a preset duration
  sets <n>                                   set planned sets
  quit                                       exit
`)
}
