// Package main provides the caos binary: a terminal companion for
// Tabuleiro do Caos character sheets that computes derived stats and
// rolls skill tests, damage, and free-form dice against a sheet file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/caosrpg/tabuleiro/internal/config"
	"github.com/caosrpg/tabuleiro/internal/game/character"
	"github.com/caosrpg/tabuleiro/internal/game/combat"
	"github.com/caosrpg/tabuleiro/internal/game/dice"
	"github.com/caosrpg/tabuleiro/internal/game/inventory"
	"github.com/caosrpg/tabuleiro/internal/game/skill"
	"github.com/caosrpg/tabuleiro/internal/observability"
)

const usage = `usage: caos [-config FILE] -sheet FILE <command> [args]

commands:
  stats                         derived values for the sheet
  roll <skill> [-use USE] [-mod N] [-save TYPE] [-times N]
                                roll a skill test
  damage <NdX[+M]> [-crit] [-times N]
                                roll damage dice
  custom <NdX> [-times N]       roll an uncapped free-form pool
  export                        print the sheet as JSON backup
`

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = defaults + CAOS_ env")
	sheetPath := flag.String("sheet", "", "path to the character sheet YAML (bare names resolve under sheets.dir)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if *sheetPath == "" || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	path := *sheetPath
	if !strings.ContainsRune(path, os.PathSeparator) && filepath.Ext(path) == "" {
		path = filepath.Join(cfg.Sheets.Dir, path+".yaml")
	}

	char, err := character.LoadSheet(path)
	if err != nil {
		logger.Fatal("loading sheet", zap.Error(err))
	}
	logger.Debug("sheet loaded", zap.String("name", char.Name), zap.Int("level", char.Level))

	history := dice.NewHistory(cfg.History.Capacity)
	roller := dice.NewRoller(dice.NewCryptoSource(), logger, history)

	command, args := flag.Arg(0), flag.Args()[1:]
	switch command {
	case "stats":
		runStats(char)
	case "roll":
		runRoll(char, roller, args)
	case "damage":
		runDamage(roller, args)
	case "custom":
		runCustom(roller, args)
	case "export":
		runExport(char)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}

	if history.Len() > 1 {
		fmt.Println("\nhistory (newest first):")
		for _, e := range history.Entries() {
			fmt.Printf("  %s: %s\n", e.Label, e.Result.Summary())
		}
	}
}

func runStats(char *character.Character) {
	defense := combat.Defense(combat.DefenseInput{
		Agility:     char.Attributes.Agilidade,
		AgilityCap:  char.Armor.AgilityCap,
		Size:        char.Size,
		ArmorBonus:  char.Armor.Bonus,
		ShieldBonus: char.ShieldBonus,
		Modifiers:   char.DefenseMods,
	})
	capacity := inventory.CarryingCapacity(char.Attributes.Forca, char.Size, char.Items, char.Currency, nil)
	ppRound := character.PPPerRound(char.Level, char.Attributes.Presenca, nil)

	fmt.Printf("%s (nivel %d, %s)\n", char.Name, char.Level, char.Size)
	fmt.Printf("  defesa:      %d\n", defense)
	fmt.Printf("  PV:          %d/%d (+%d temp)\n", char.PV.Current, char.PV.Max, char.PV.Temporary)
	fmt.Printf("  PP:          %d/%d, limite %d por rodada\n", char.PP.Current, char.PP.Max, ppRound)
	fmt.Printf("  carga:       %.1f / %.1f (%s)\n", capacity.Load, capacity.Total, capacity.State)
	fmt.Printf("  empurrar:    %.1f, erguer: %.1f\n", capacity.PushLimit, capacity.LiftLimit)
}

func runRoll(char *character.Character, roller *dice.Roller, args []string) {
	fs := flag.NewFlagSet("roll", flag.ExitOnError)
	use := fs.String("use", "", "skill use to apply (e.g. \"Resistir\")")
	mod := fs.Int("mod", 0, "extra dice modifier for this roll")
	save := fs.String("save", "", "accumulate a combat penalty against this save type before rolling")
	times := fs.Int("times", 1, "number of rolls")
	if len(args) == 0 {
		log.Fatal("roll: missing skill name")
	}
	name := args[0]
	_ = fs.Parse(args[1:])

	s, ok := char.SkillByName(name)
	if !ok {
		log.Fatalf("roll: sheet has no skill %q", name)
	}

	penalties := combat.NewPenalties()
	penalty := 0
	if *save != "" {
		penalties.Add(combat.SaveType(*save), 1)
		penalty = penalties.DicePenalty(combat.SaveType(*save))
	}

	check := skill.Resolve(s, char.Attributes.Value(s.Attribute), char.Level, *use, penalty)
	check.ModifierDice += *mod

	for i := 0; i < max(1, *times); i++ {
		result := roller.SkillTest(name, check.AttributeDice, check.Size, check.DiceModifier())
		fmt.Println(dice.PoolOutcome(result).Summary())
	}
}

func runDamage(roller *dice.Roller, args []string) {
	fs := flag.NewFlagSet("damage", flag.ExitOnError)
	crit := fs.Bool("crit", false, "maximize every die (critical hit)")
	times := fs.Int("times", 1, "number of rolls")
	if len(args) == 0 {
		log.Fatal("damage: missing dice expression")
	}
	expr := args[0]
	_ = fs.Parse(args[1:])

	count, sides, modifier, err := parseExpr(expr)
	if err != nil {
		log.Fatalf("damage: %v", err)
	}

	for i := 0; i < max(1, *times); i++ {
		result := roller.Damage(expr, count, sides, modifier, *crit)
		fmt.Println(dice.DamageOutcome(result).Summary())
	}
}

func runCustom(roller *dice.Roller, args []string) {
	fs := flag.NewFlagSet("custom", flag.ExitOnError)
	times := fs.Int("times", 1, "number of rolls")
	if len(args) == 0 {
		log.Fatal("custom: missing dice expression")
	}
	expr := args[0]
	_ = fs.Parse(args[1:])

	count, sides, modifier, err := parseExpr(expr)
	if err != nil {
		log.Fatalf("custom: %v", err)
	}
	if modifier != 0 {
		log.Fatalf("custom: modifiers are not supported in free-form rolls, got %q", expr)
	}

	for i := 0; i < max(1, *times); i++ {
		result := roller.Custom(expr, count, sides)
		fmt.Println(dice.CustomOutcome(result).Summary())
	}
}

func runExport(char *character.Character) {
	data, err := character.ExportJSON(char)
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	fmt.Println(string(data))
}

// parseExpr parses a "NdX", "NdX+M", or "NdX-M" dice expression.
func parseExpr(expr string) (count, sides, modifier int, err error) {
	s := strings.ToLower(strings.TrimSpace(expr))

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		return 0, 0, 0, fmt.Errorf("missing 'd' in expression %q", expr)
	}

	count = 1
	if dIdx > 0 {
		count, err = strconv.Atoi(s[:dIdx])
		if err != nil || count < 1 {
			return 0, 0, 0, fmt.Errorf("invalid die count in %q", expr)
		}
	}

	rest := s[dIdx+1:]
	modStr := ""
	for i := 1; i < len(rest); i++ {
		if rest[i] == '+' || rest[i] == '-' {
			modStr = rest[i:]
			rest = rest[:i]
			break
		}
	}

	sides, err = strconv.Atoi(rest)
	if err != nil || sides < 2 {
		return 0, 0, 0, fmt.Errorf("invalid die sides in %q", expr)
	}

	if modStr != "" {
		modifier, err = strconv.Atoi(modStr)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid modifier in %q", expr)
		}
	}

	return count, sides, modifier, nil
}
