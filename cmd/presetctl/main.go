package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/mod-preset-manager/internal/config"
	presetdomain "github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/logger"
	"github.com/KirkDiggler/mod-preset-manager/internal/services"
)

const usage = `Usage: presetctl <command> [args]

Commands:
  list                     list presets in order
  show <name>              show the entries of a preset
  create <name>            create a preset from the currently enabled mods
  duplicate <name> <new>   copy a preset under a new name
  rename <old> <new>       rename a preset
  delete <name>            delete a preset
  lock <name>              mark a preset read only
  unlock <name>            clear the read only flag
  reorder name=index ...   assign a new order to every preset
  reconcile                heal presets against the mods directory
  apply <name>             enable the mods of a preset
  objects                  list characters and custom mods
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(os.Stderr, "presetctl", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providerCfg := &services.ProviderConfig{
		Config: cfg,
		Logger: appLogger,
	}

	if cfg.Presets.Backend == config.BackendRedis {
		opts, err := redis.ParseURL(cfg.Presets.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		providerCfg.RedisClient = redisClient
	}

	provider, err := services.NewProvider(providerCfg)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}
	defer provider.Close()

	if err := provider.Load(ctx); err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}

	if err := run(ctx, provider, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if meta := apperr.GetMeta(err); len(meta) > 0 {
			fmt.Fprintf(os.Stderr, "  code: %s %v\n", apperr.GetCode(err), meta)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, p *services.Provider, args []string) error {
	cmd, rest := args[0], args[1:]

	need := func(n int) error {
		if len(rest) != n {
			return apperr.InvalidArgumentf("%s expects %d argument(s), got %d", cmd, n, len(rest))
		}
		return nil
	}

	switch cmd {
	case "list":
		printPresets(p.Presets.List())
		return nil

	case "show":
		if err := need(1); err != nil {
			return err
		}
		mp, err := p.Presets.Get(rest[0])
		if err != nil {
			return err
		}
		printEntries(mp)
		return nil

	case "create":
		if err := need(1); err != nil {
			return err
		}
		mp, err := p.Presets.CreatePresetFromEnabled(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Printf("created '%s' with %d mod(s)\n", mp.Name, len(mp.Entries))
		return nil

	case "duplicate":
		if err := need(2); err != nil {
			return err
		}
		mp, err := p.Presets.DuplicatePreset(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("created '%s'\n", mp.Name)
		return nil

	case "rename":
		if err := need(2); err != nil {
			return err
		}
		mp, err := p.Presets.RenamePreset(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("renamed to '%s'\n", mp.Name)
		return nil

	case "delete":
		if err := need(1); err != nil {
			return err
		}
		return p.Presets.DeletePreset(ctx, rest[0])

	case "lock", "unlock":
		if err := need(1); err != nil {
			return err
		}
		_, err := p.Presets.SetReadOnly(ctx, rest[0], cmd == "lock")
		return err

	case "reorder":
		order, err := parseOrder(rest)
		if err != nil {
			return err
		}
		if err := p.Presets.ReorderPresets(ctx, order); err != nil {
			return err
		}
		printPresets(p.Presets.List())
		return nil

	case "reconcile":
		summaries, err := p.Presets.Reconcile(ctx)
		if err != nil {
			return err
		}
		for _, s := range summaries {
			fmt.Printf("%s: %d entries, %d missing, %d healed\n", s.PresetName, s.Entries, s.Missing, s.Healed)
			for _, a := range s.Ambiguities {
				fmt.Printf("  ambiguous path %s: chose %s of %v\n", a.FullPath, a.ChosenID, a.Candidates)
			}
		}
		return nil

	case "apply":
		if err := need(1); err != nil {
			return err
		}
		report, err := p.Presets.ApplyPreset(ctx, rest[0])
		if err != nil {
			return err
		}
		printReport(report)
		return nil

	case "objects":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tNAME\tDISPLAY\tCUSTOM")
		for _, c := range p.Registry.Characters() {
			fmt.Fprintf(w, "character\t%s\t%s\t%t\n", c.InternalName, c.DisplayName, c.IsCustom)
		}
		for _, m := range p.Registry.CustomMods() {
			fmt.Fprintf(w, "custom_mod\t%s\t%s\t%t\n", m.InternalName, m.DisplayName, true)
		}
		return w.Flush()

	default:
		flag.Usage()
		return apperr.InvalidArgumentf("unknown command '%s'", cmd)
	}
}

func parseOrder(args []string) (map[string]int, error) {
	order := make(map[string]int, len(args))
	for _, arg := range args {
		name, idx, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, apperr.InvalidArgumentf("expected name=index, got '%s'", arg)
		}
		i, err := strconv.Atoi(idx)
		if err != nil {
			return nil, apperr.InvalidArgumentf("invalid index in '%s'", arg)
		}
		order[name] = i
	}
	return order, nil
}

func printPresets(presets []*presetdomain.ModPreset) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tMODS\tMISSING\tREAD ONLY\tCREATED")
	for _, mp := range presets {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%t\t%s\n",
			mp.Index, mp.Name, len(mp.Entries), mp.MissingCount(), mp.IsReadOnly, mp.Created.Format(time.DateTime))
	}
	_ = w.Flush()
}

func printEntries(mp *presetdomain.ModPreset) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MOD ID\tPATH\tMISSING")
	for _, e := range mp.Entries {
		fmt.Fprintf(w, "%s\t%s\t%t\n", e.ModID, e.FullPath, e.IsMissing)
	}
	_ = w.Flush()
}

func printReport(r *presetdomain.ApplyReport) {
	fmt.Printf("applied '%s': %d enabled, %d disabled\n", r.PresetName, len(r.Applied), len(r.Disabled))
	for _, e := range r.SkippedMissing {
		fmt.Printf("  missing: %s (%s)\n", e.ModID, e.FullPath)
	}
	for _, c := range r.Conflicts {
		fmt.Printf("  conflict on %s: %s overridden by %s\n", c.Character, c.OverriddenID, c.WinnerID)
	}
	for _, f := range r.Failed {
		fmt.Printf("  failed: %s (%s): %v\n", f.ModID, f.Character, f.Err)
	}
	if !r.Complete() {
		fmt.Println("preset was applied partially")
	}
}
