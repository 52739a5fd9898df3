package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xiles84/wordtrie"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	os.Exit(run(logger, os.Args[1:]))
}

// run executes the CLI and returns the process exit code. Every failure is
// reported through the logger exactly once.
func run(logger *zap.Logger, args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		logger.Error("Error running command", zap.Error(err))
		return 1
	}
	return 0
}

// newLogger builds a console logger for diagnostics. Query results go to
// stdout, not through the logger.
func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return config.Build()
}

// newRootCmd wires up the CLI. Each subcommand loads the word list into a
// trie and runs one query against it. Errors are returned to the caller,
// which owns reporting them.
func newRootCmd() *cobra.Command {
	var fileName string
	var jsonInput bool

	root := &cobra.Command{
		Use:           "wordtrie",
		Short:         "Query a word list through an in-memory prefix tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&fileName, "file", "f", "words.txt", "word list file name")
	root.PersistentFlags().BoolVar(&jsonInput, "json", false, "treat the word list as a JSON array of strings")

	root.AddCommand(&cobra.Command{
		Use:   "prefix <prefix>",
		Short: "Report whether any stored word starts with the given prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trie, err := loadTrie(fileName, jsonInput)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), trie.HasPrefix(args[0]))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "suffix <pattern>",
		Short: "Count stored words ending with the given pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trie, err := loadTrie(fileName, jsonInput)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), trie.CountWordsWithSuffix(args[0]))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "contains <word>",
		Short: "Report whether the exact word is stored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trie, err := loadTrie(fileName, jsonInput)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), trie.Contains(args[0]))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "add <word>...",
		Short: "Insert words into the list and save it back",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonInput {
				return errors.New("add only supports the line-oriented word list format")
			}
			// The line format drops blank lines and surrounding whitespace
			// on load, so words it cannot represent are rejected up front
			// instead of silently disappearing on the next load.
			for _, word := range args {
				if word == "" || word != strings.TrimSpace(word) || strings.ContainsAny(word, "\n\r") {
					return fmt.Errorf("cannot save %q in the line-oriented word list format", word)
				}
			}
			trie, err := loadTrie(fileName, jsonInput)
			if err != nil {
				return err
			}
			for _, word := range args {
				trie.Insert(word)
			}
			words := trie.Words()
			sort.Strings(words)
			if err := wordtrie.SaveWords(fileName, words); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d words saved to %s\n", len(words), fileName)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "words",
		Short: "List the stored words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trie, err := loadTrie(fileName, jsonInput)
			if err != nil {
				return err
			}
			words := trie.Words()
			// The trie does not define an order; sort for stable output.
			sort.Strings(words)
			for _, word := range words {
				fmt.Fprintln(cmd.OutOrStdout(), word)
			}
			return nil
		},
	})

	return root
}

// loadTrie reads the word list and inserts every word into a fresh trie.
func loadTrie(fileName string, jsonInput bool) (*wordtrie.Trie, error) {
	var words []string
	var err error
	if jsonInput {
		var file *os.File
		file, err = os.Open(fileName)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		words, err = wordtrie.DecodeWords(file)
		if err != nil {
			return nil, fmt.Errorf("decoding word list %s: %w", fileName, err)
		}
	} else {
		words, err = wordtrie.LoadWords(fileName)
		if err != nil {
			return nil, err
		}
	}

	trie := wordtrie.NewTrie()
	for _, word := range words {
		trie.Insert(word)
	}
	return trie, nil
}
