package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"skype-to-docx/archive"
	"skype-to-docx/model"
	"skype-to-docx/normalize"
	"skype-to-docx/stats"
)

var (
	reportDir string
	topN      int
)

// ArchiveStatsCmd analyses an exported archive and prints statistics about
// its conversations, senders, and message quality.
func ArchiveStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive-stats [archive file]",
		Short: "Analyse the exported archive and show statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  runArchiveStats,
	}

	cmd.Flags().StringVarP(&reportDir, "output", "o", ".", "Output directory for CSV reports")
	cmd.Flags().IntVarP(&topN, "top", "t", 10, "Number of top items to display in statistics")

	return cmd
}

func runArchiveStats(cmd *cobra.Command, args []string) error {
	archivePath := args[0]

	pterm.Info.Printf("Analyzing archive: %s\n", archivePath)

	a, err := archive.Load(archivePath)
	if err != nil {
		return fmt.Errorf("load archive: %w", err)
	}

	senders := make(map[string]int)
	conversations := make(map[string]int)
	messageCount := 0
	markupCount := 0
	badTimestamps := 0

	_ = archive.Walk(a, func(convo model.Conversation, msg model.Message) error {
		messageCount++
		senders[msg.Sender()]++
		conversations[convo.ID]++
		if strings.Contains(msg.Content, "<e_m") {
			markupCount++
		}
		if !normalize.ParseTimestamp(msg.OriginalArrivalTime).HasInstant {
			badTimestamps++
		}
		return nil
	})

	pterm.DefaultSection.Println("Archive statistics")
	pterm.Info.Printf("Conversations: %d\n", len(a.Conversations))
	pterm.Info.Printf("Messages: %d\n", messageCount)
	pterm.Info.Printf("Messages with edit markup: %d\n", markupCount)
	pterm.Info.Printf("Messages with unparseable timestamps: %d\n", badTimestamps)

	fmt.Printf("\nTop %d senders:\n", topN)
	stats.PrettyPrintTop(senders, topN)
	fmt.Printf("\nTop %d conversations by message count:\n", topN)
	stats.PrettyPrintTop(conversations, topN)

	reports := []report{
		{"senders", senders},
		{"conversations", conversations},
	}
	if err := saveCSVReports(reports, reportDir, 1000); err != nil {
		return fmt.Errorf("error saving CSV reports: %w", err)
	}

	fmt.Printf("\nReports saved to directory: %s\n", reportDir)

	return nil
}

type report struct {
	name   string
	counts map[string]int
}

func saveCSVReports(reports []report, dir string, limit int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, report := range reports {
		filename := fmt.Sprintf("report_%s.csv", report.name)
		filePath := filepath.Join(dir, filename)

		file, err := os.Create(filePath)
		if err != nil {
			return err
		}

		writer := csv.NewWriter(file)

		if err := writer.Write([]string{"Value", "Count"}); err != nil {
			file.Close()
			return err
		}

		// Sort by count descending
		type pair struct {
			Key   string
			Value int
		}
		var pairs []pair
		for k, v := range report.counts {
			pairs = append(pairs, pair{k, v})
		}
		sort.Slice(pairs, func(i, j int) bool {
			return pairs[i].Value > pairs[j].Value
		})

		for i := 0; i < limit && i < len(pairs); i++ {
			record := []string{
				pairs[i].Key,
				strconv.Itoa(pairs[i].Value),
			}
			if err := writer.Write(record); err != nil {
				file.Close()
				return err
			}
		}

		writer.Flush()
		file.Close()

		if err := writer.Error(); err != nil {
			return err
		}
	}

	return nil
}
