// Command rankfast ranks a list of items by asking the user pairwise
// questions, using as few questions as possible.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/excoffierleonard/rankfast"
)

var (
	verbose  bool
	itemFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rankfast [items...]",
	Short: "Rank items interactively with as few questions as possible",
	Long: `rankfast produces a full ranking of the given items by asking you
pairwise questions. It sorts with the Ford-Johnson merge-insertion
algorithm, so the number of questions stays close to the
information-theoretic minimum, and no question is ever asked twice.

Items are taken from the command line, or one per line from --file.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runRanking,
}

var estimateCmd = &cobra.Command{
	Use:   "estimate [n]",
	Short: "Print the worst-case number of questions for n items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid item count %q", args[0])
		}
		fmt.Printf("%d\n", rankfast.EstimateComparisons(n))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&itemFile, "file", "f", "", "read items from file, one per line")
	rootCmd.AddCommand(estimateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadItems merges command-line items with the --file contents.
func loadItems(args []string) ([]string, error) {
	items := make([]string, 0, len(args))
	items = append(items, args...)
	if itemFile == "" {
		return items, nil
	}

	data, err := os.ReadFile(itemFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read item file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items, nil
}

func runRanking(cmd *cobra.Command, args []string) error {
	items, err := loadItems(args)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return errors.New("nothing to rank: provide items as arguments or with --file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := rankfast.NewSession(ctx, items, nil)
	if err != nil {
		return err
	}
	defer session.Close()

	fmt.Printf("Ranking %d items, at most %d questions.\n\n", len(items), rankfast.EstimateComparisons(len(items)))

	in := bufio.NewScanner(os.Stdin)
	for {
		q, ok := session.Next()
		if !ok {
			break
		}
		pref, err := prompt(in, q)
		if err != nil {
			return err
		}
		if err := session.Answer(pref); err != nil {
			return err
		}
		logger.Debug("comparison resolved",
			zap.String("a", q.A),
			zap.String("b", q.B),
			zap.Stringer("answer", pref),
			zap.Int("comparisons", session.Comparisons()))
	}

	result, err := session.Result()
	if err != nil {
		return err
	}

	fmt.Printf("\nFinal ranking (%d questions):\n", result.Comparisons)
	for i, item := range result.Ranking {
		fmt.Printf("%2d. %s\n", i+1, item)
	}
	return nil
}

// prompt asks one question on stdout and reads an a/b answer from stdin,
// retrying until the input is valid.
func prompt(in *bufio.Scanner, q rankfast.Question[string]) (rankfast.Preference, error) {
	for {
		fmt.Printf("Which comes first? [a] %s  [b] %s: ", q.A, q.B)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read answer: %w", err)
			}
			return 0, errors.New("input closed before ranking finished")
		}
		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "a":
			return rankfast.PreferA, nil
		case "b":
			return rankfast.PreferB, nil
		}
		fmt.Println("Please type a or b")
	}
}
