package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/holdings"
	md "github.com/nao1215/markdown"
)

func AssetsMarkdown(r *holdings.AssetsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Assets")
	doc.PlainText(AssetsText(r) + ", sorted by " + r.Sort.String() + ".")
	doc.Table(tableSet(r.Table(), 2))

	return doc.String()
}

func UniqueMarkdown(r *holdings.UniqueReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Unique Assets")
	doc.PlainText(UniqueText(r))
	doc.Table(tableSet(r.Table(), 2))

	return doc.String()
}

func OverlapMarkdown(r *holdings.OverlapReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Overlapping Assets")
	doc.PlainText(OverlapText(r) + ", sorted by " + r.Sort.String() + ".")
	doc.Table(tableSet(r.Table(), 2, 3))

	return doc.String()
}

func MappingMarkdown(r *holdings.MappingReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Asset to ETF Mapping")
	doc.PlainText(fmt.Sprintf("Found %d assets across %d ETFs, sorted by %s.", len(r.Rows), r.Funds, r.Sort))

	doc.H2("Distribution by ETF count")
	dist := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight},
		Header:    []string{"ETF Count", "Assets"},
		Rows:      [][]string{},
	}
	for _, h := range r.Histogram {
		dist.Rows = append(dist.Rows, []string{strconv.Itoa(h.FundCount), strconv.Itoa(h.Assets)})
	}
	doc.Table(dist)

	doc.H2("Mapping")
	doc.Table(tableSet(r.Table(), 2))

	return doc.String()
}

// CompareMarkdown renders the weights side by side, every fund column right
// aligned.
func CompareMarkdown(r *holdings.CompareReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("ETF Comparison")
	doc.PlainText(CompareText(r))

	right := make([]int, len(r.Funds))
	for i := range right {
		right[i] = i + 1
	}
	doc.Table(tableSet(r.Table(), right...))

	return doc.String()
}
