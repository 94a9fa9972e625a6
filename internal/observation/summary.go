package observation

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/nbluto/wolfvue-go/internal/classifier"
)

// Summary aggregates the verdicts of one analysis run.
type Summary struct {
	TotalVideos int
	ByCategory  map[string]int
}

// SpeciesRank is one row of the cross-video species ranking: how many videos
// a species verdict won, and its share of all videos.
type SpeciesRank struct {
	Species string
	Videos  int
	Share   float64
}

// Summarize counts records per verdict category.
func Summarize(records []Record) Summary {
	summary := Summary{
		TotalVideos: len(records),
		ByCategory:  make(map[string]int),
	}
	for i := range records {
		summary.ByCategory[records[i].Category]++
	}
	return summary
}

// RankSpecies ranks species verdicts by video count, descending, ties broken
// alphabetically. Unsorted and No_Animal verdicts are not species and are
// excluded.
func RankSpecies(records []Record) []SpeciesRank {
	counts := make(map[string]int)
	for i := range records {
		category := records[i].Category
		if category == classifier.CategoryUnsorted || category == classifier.CategoryNoAnimal {
			continue
		}
		counts[category]++
	}

	ranks := make([]SpeciesRank, 0, len(counts))
	for species, videos := range counts {
		share := 0.0
		if len(records) > 0 {
			share = float64(videos) / float64(len(records))
		}
		ranks = append(ranks, SpeciesRank{Species: species, Videos: videos, Share: share})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Videos != ranks[j].Videos {
			return ranks[i].Videos > ranks[j].Videos
		}
		return ranks[i].Species < ranks[j].Species
	})
	return ranks
}

// WriteSummary renders the per-category summary and the species ranking as
// text tables.
func WriteSummary(w io.Writer, records []Record) error {
	summary := Summarize(records)

	categories := make([]string, 0, len(summary.ByCategory))
	for category := range summary.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	rows := make([][]string, 0, len(categories))
	for _, category := range categories {
		count := summary.ByCategory[category]
		rows = append(rows, []string{
			category,
			strconv.Itoa(count),
			fmt.Sprintf("%.1f%%", float64(count)/float64(summary.TotalVideos)*100),
		})
	}

	if _, err := fmt.Fprintf(w, "%d videos classified\n", summary.TotalVideos); err != nil {
		return err
	}
	if len(rows) > 0 {
		if _, err := fmt.Fprintln(w, renderTable([]string{"Verdict", "Videos", "Share"}, rows, 1, 2)); err != nil {
			return err
		}
	}

	ranks := RankSpecies(records)
	if len(ranks) == 0 {
		return nil
	}
	rankRows := make([][]string, 0, len(ranks))
	for i, rank := range ranks {
		rankRows = append(rankRows, []string{
			strconv.Itoa(i + 1),
			rank.Species,
			strconv.Itoa(rank.Videos),
			fmt.Sprintf("%.1f%%", rank.Share*100),
		})
	}
	_, err := fmt.Fprintln(w, renderTable([]string{"Rank", "Species", "Videos", "Share"}, rankRows, 0, 2, 3))
	return err
}
