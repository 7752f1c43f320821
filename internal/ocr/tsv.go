package ocr

import (
	"strconv"
	"strings"
)

// tesseract TSV columns:
// level page_num block_num par_num line_num word_num left top width height conf text
const tsvColumns = 12

type lineKey struct {
	page, block, par, line int
}

// parseTSVLines groups TSV word rows into ordered text lines, unioning the
// word boxes and averaging word confidences. Rows with conf -1 are layout
// markers, not words, and are skipped.
func parseTSVLines(tsv string) []Line {
	var (
		order []lineKey
		words = map[lineKey][]string{}
		boxes = map[lineKey]Box{}
		confs = map[lineKey][]float64{}
	)

	rows := strings.Split(tsv, "\n")
	for i, row := range rows {
		if i == 0 || row == "" {
			continue // header
		}
		cols := strings.Split(row, "\t")
		if len(cols) < tsvColumns {
			continue
		}

		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}

		key := lineKey{
			page:  atoiOr(cols[1], 0),
			block: atoiOr(cols[2], 0),
			par:   atoiOr(cols[3], 0),
			line:  atoiOr(cols[4], 0),
		}
		box := Box{
			Left:   atoiOr(cols[6], 0),
			Top:    atoiOr(cols[7], 0),
			Width:  atoiOr(cols[8], 0),
			Height: atoiOr(cols[9], 0),
		}

		if _, seen := words[key]; !seen {
			order = append(order, key)
			boxes[key] = box
		} else {
			boxes[key] = unionBox(boxes[key], box)
		}
		words[key] = append(words[key], text)
		confs[key] = append(confs[key], conf)
	}

	lines := make([]Line, 0, len(order))
	for _, key := range order {
		var sum float64
		for _, c := range confs[key] {
			sum += c
		}
		mean := sum / float64(len(confs[key])) // 0..100

		lines = append(lines, Line{
			Text:       strings.Join(words[key], " "),
			Box:        boxes[key],
			Confidence: float32(mean / 100.0),
		})
	}
	return lines
}

func unionBox(a, b Box) Box {
	left := min(a.Left, b.Left)
	top := min(a.Top, b.Top)
	right := max(a.Left+a.Width, b.Left+b.Width)
	bottom := max(a.Top+a.Height, b.Top+b.Height)
	return Box{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

func joinLines(texts []string) string {
	return strings.Join(texts, "\n")
}
