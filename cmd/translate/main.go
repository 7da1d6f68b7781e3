package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"wordswap/internal/dictionary"
	"wordswap/internal/domain"
	"wordswap/internal/service"
	"wordswap/internal/translate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	langPair    string
	reorderMode string
	listPairs   bool
)

var rootCmd = &cobra.Command{
	Use:   "translate [sentence]",
	Short: "Word-for-word English translator",
	Long: `translate substitutes every word of an English sentence through a
static dictionary (Tamil or Hindi) and prints the result.

Without a sentence argument every line of standard input is translated.

Example:
  translate --pair en_hi "I love dogs"
  echo "the good dogs" | translate --mode tagged`,
	RunE:         runCommand,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&langPair, "pair", "p", string(domain.PairEnglishTamil), "language pair (en_ta, en_hi)")
	rootCmd.Flags().StringVarP(&reorderMode, "mode", "m", string(domain.ReorderLiteral), "reorder mode (literal, tagged)")
	rootCmd.Flags().BoolVarP(&listPairs, "list", "l", false, "list supported language pairs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	mode := domain.ReorderMode(reorderMode)
	if mode != domain.ReorderLiteral && mode != domain.ReorderTagged {
		return fmt.Errorf("unknown reorder mode %q", reorderMode)
	}

	svc := service.NewTranslationService(
		translate.New(dictionary.Dictionaries(), mode),
		domain.PairEnglishTamil,
		zap.NewNop(),
	)
	out := cmd.OutOrStdout()

	if listPairs {
		for _, pair := range svc.Pairs() {
			fmt.Fprintln(out, pair)
		}
		return nil
	}

	pair := domain.LanguagePair(langPair)

	if len(args) > 0 {
		translated, err := svc.Translate(strings.Join(args, " "), pair)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, translated)
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(out)
			continue
		}
		translated, err := svc.Translate(line, pair)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, translated)
	}
	return scanner.Err()
}
