// Command keyrelay reads a newline-delimited list of numeric codes and
// reports their total complexity at one or more indirection depths.
//
// Usage:
//
//	keyrelay -input codes.txt -depths 2,25 [-workers 4]
//	keyrelay -config keyrelay.yaml
//
// Flags override config-file values when both are given. All computation
// lives in the library packages; this command only parses, sequences, and
// prints.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/keyrelay/complexity"
	"github.com/katalvlaran/keyrelay/keypad"
)

// Config mirrors the optional YAML configuration file.
type Config struct {
	Input   string `yaml:"input"`   // path to the codes file
	Depths  []int  `yaml:"depths"`  // indirection depths to report
	Workers int    `yaml:"workers"` // per-code evaluation fan-out
}

func main() {
	var (
		configFile = flag.String("config", "", "YAML configuration file")
		input      = flag.String("input", "codes.txt", "newline-delimited codes file")
		depths     = flag.String("depths", "2,25", "comma-separated indirection depths")
		workers    = flag.Int("workers", 1, "concurrent per-code evaluations")
	)
	flag.Parse()

	cfg := Config{Input: *input, Workers: *workers}
	var err error
	if cfg.Depths, err = parseDepths(*depths); err != nil {
		log.Fatalf("invalid -depths: %v", err)
	}

	if *configFile != "" {
		fileCfg, loadErr := loadConfig(*configFile)
		if loadErr != nil {
			log.Fatalf("failed to load config: %v", loadErr)
		}
		cfg = merge(cfg, fileCfg, flagsSet())
	}

	if cfg.Workers < 1 {
		log.Fatalf("workers must be at least 1, got %d", cfg.Workers)
	}

	codes, err := loadCodes(cfg.Input)
	if err != nil {
		log.Fatalf("failed to load codes: %v", err)
	}
	log.Printf("loaded %d codes from %s", len(codes), cfg.Input)

	for _, depth := range cfg.Depths {
		total, totalErr := complexity.Total(codes, depth, complexity.WithWorkers(cfg.Workers))
		if totalErr != nil {
			log.Fatalf("total at depth %d: %v", depth, totalErr)
		}
		fmt.Printf("total complexity at depth %d: %d\n", depth, total)
	}
}

// flagsSet reports which flags the user passed explicitly.
func flagsSet() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return set
}

// merge overlays file-config values under explicitly passed flags.
func merge(flags, file Config, set map[string]bool) Config {
	out := flags
	if !set["input"] && file.Input != "" {
		out.Input = file.Input
	}
	if !set["depths"] && len(file.Depths) > 0 {
		out.Depths = file.Depths
	}
	if !set["workers"] && file.Workers > 0 {
		out.Workers = file.Workers
	}

	return out
}

func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadCodes reads a newline-delimited codes file, skipping blank lines.
func loadCodes(path string) ([]complexity.Code, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var codes []complexity.Code
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		buttons, parseErr := keypad.ParseCode(line)
		if parseErr != nil {
			return nil, parseErr
		}
		codes = append(codes, complexity.Code(buttons))
	}

	return codes, nil
}

func parseDepths(s string) ([]int, error) {
	var depths []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("depth %q: %w", part, err)
		}
		depths = append(depths, d)
	}
	if len(depths) == 0 {
		return nil, fmt.Errorf("no depths given")
	}

	return depths, nil
}
