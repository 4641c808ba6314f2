package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/durandtibo/votingsys/election"
	"github.com/durandtibo/votingsys/table"
	"github.com/durandtibo/votingsys/vote"
)

// loadBallot reads the ballot file selected by the persistent flags,
// using countCol as the count column name for ranked ballots.
func loadBallot(countCol string) (election.Ballot, error) {
	if ranked {
		return loadRanked(ballotsPath, countCol)
	}
	return loadSingleMark(ballotsPath)
}

// loadSingleMark reads single-mark ballots, one candidate mark per
// line. Empty fields are ignored.
func loadSingleMark(path string) (*vote.SingleMarkVote, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	var marks []string
	for _, record := range records {
		for _, field := range record {
			if mark := strings.TrimSpace(field); mark != "" {
				marks = append(marks, mark)
			}
		}
	}
	return vote.SingleMarkVoteFromSequence(marks)
}

// loadRanked reads ranked ballots: a header row of candidate names
// followed by one row of rank positions per voter. When the header
// carries the count column the rows are treated as pre-counted ranking
// patterns.
func loadRanked(path, countCol string) (*vote.RankedVote, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ballot file %q is empty", path)
	}
	header := make([]string, len(records[0]))
	counted := false
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
		if header[i] == countCol {
			counted = true
		}
	}
	rows := make([][]int64, 0, len(records)-1)
	for r, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, expected %d", r+1, len(record), len(header))
		}
		row := make([]int64, len(record))
		for i, field := range record {
			v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", r+1, header[i], err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	t, err := table.FromRows(header, rows)
	if err != nil {
		return nil, err
	}
	if counted {
		return vote.RankedVoteFromCountedTable(t, countCol)
	}
	return vote.RankedVoteFromTable(t, countCol)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

// printResult writes the winners and the per-candidate totals.
func printResult(cmd *cobra.Command, res election.Result) {
	cmd.Printf("winners: %s\n", strings.Join(res.Winners, ", "))
	cmd.Printf("voters: %d\n", res.NumVoters)
	candidates := make([]string, 0, len(res.Counts))
	for candidate := range res.Counts {
		candidates = append(candidates, candidate)
	}
	sort.Strings(candidates)
	for _, candidate := range candidates {
		cmd.Printf("  %s: %d\n", candidate, res.Counts[candidate])
	}
}
