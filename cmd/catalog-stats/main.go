// Command catalog-stats prints a coverage and distribution report over
// the configured snapshot files, for eyeballing a fresh scrape before
// the server picks it up.
//
// Usage:
//
//	catalog-stats [-config console-catalog.json] [snapshot.json ...]
//
// Explicit snapshot paths override the configured sources.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/consoletracker/console-catalog/internal/catalog"
	"github.com/consoletracker/console-catalog/internal/config"
	"github.com/consoletracker/console-catalog/internal/pkg/strutil"
)

func main() {
	configFile := flag.String("config", config.DefaultFilename, "path to the configuration file")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		appConfig, err := config.LoadWithFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load the configuration: %v\n", err)
			os.Exit(1)
		}
		paths = appConfig.Catalog.SourcePaths()
	}

	records, err := catalog.LoadFiles(paths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load the snapshot files: %v\n", err)
		os.Exit(1)
	}

	printReport(catalog.ComputeStats(records), paths)
}

func printReport(stats catalog.Stats, paths []string) {
	fmt.Println("===== CATALOG STATISTICS =====")
	for _, path := range paths {
		fmt.Printf("source: %s\n", path)
	}
	fmt.Println()

	printCounter("Total records", stats.Total)
	printCounter("With price", stats.WithPrice)
	printCounter("With image", stats.WithImage)
	printCounter("With disk reader", stats.WithDiskReader)
	printCounter("Without disk reader", stats.WithoutDiskReader)
	printCounter("With controllers", stats.WithControllers)
	printCounter("With bundled games", stats.WithGames)

	if stats.WithPrice > 0 {
		fmt.Printf("\nPrice range: R$ %.2f - R$ %.2f\n", stats.PriceMin, stats.PriceMax)
	}

	printDistribution("Per site", stats.PerSite)
	printDistribution("Per model", stats.PerModel)
	printDistribution("Per console type", stats.PerConsoleType)
	printDistribution("Per brand", stats.PerBrand)
	printDistribution("Colors", stats.Colors)
	printDistribution("Storage", stats.Storage)
}

func printCounter(label string, count int) {
	fmt.Printf("%s %s\n", pad(label+":", 24), strutil.FormatCommas(count))
}

// printDistribution prints a section sorted by count descending, ties
// by name. Empty sections are skipped, matching how sparse fields like
// color behave in real snapshots.
func printDistribution(title string, dist map[string]int) {
	if len(dist) == 0 {
		return
	}

	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if dist[keys[i]] != dist[keys[j]] {
			return dist[keys[i]] > dist[keys[j]]
		}
		return keys[i] < keys[j]
	})

	fmt.Printf("\n%s:\n", title)
	for _, k := range keys {
		fmt.Printf("  %s %s\n", pad(k+":", 28), strutil.FormatCommas(dist[k]))
	}
}

// pad right-pads to the given display width. The data carries accented
// Portuguese text, so padding goes by rendered width, not byte length.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	for gap > 0 {
		s += " "
		gap--
	}
	return s
}
