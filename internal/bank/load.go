package bank

import (
	"strconv"
	"strings"

	"github.com/abhisek/quizdeck/internal/tabular"
)

// choiceSlots lists the header aliases for each choice slot, in priority order.
var choiceSlots = [][]string{
	{"choicea", "optiona", "a"},
	{"choiceb", "optionb", "b"},
	{"choicec", "optionc", "c"},
	{"choiced", "optiond", "d"},
}

// columns holds resolved header positions; -1 means absent.
type columns struct {
	id, question, answer, explanation int
	choices                           []int
}

// LoadText parses delimited text and loads it as a bank.
func LoadText(text string) (Bank, error) {
	return Load(tabular.Parse(text))
}

// Load maps parsed rows to questions. The first row is the header.
func Load(rows [][]string) (Bank, error) {
	if len(rows) <= 1 {
		return nil, ErrParseEmpty
	}

	cols := resolveColumns(rows[0])

	var loaded Bank
	for i := 1; i < len(rows); i++ {
		r := rows[i]
		text := cell(r, cols.question)
		if text == "" {
			continue
		}

		q := Question{
			Text:         text,
			Choices:      rowChoices(r, cols),
			CorrectIndex: parseAnswer(cell(r, cols.answer)),
			Explanation:  cell(r, cols.explanation),
		}
		if cols.id >= 0 {
			q.ID = cell(r, cols.id)
		} else {
			q.ID = strconv.Itoa(i)
		}
		loaded = append(loaded, q)
	}

	if len(loaded) == 0 {
		return nil, ErrNoValidRows
	}
	return loaded, nil
}

func resolveColumns(header []string) columns {
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = strings.ToLower(strings.TrimSpace(h))
	}

	cols := columns{
		id:          indexOf(norm, "id"),
		question:    indexOf(norm, "question"),
		answer:      indexOf(norm, "answer"),
		explanation: indexOf(norm, "explanation"),
	}
	for _, aliases := range choiceSlots {
		if idx := firstIndex(norm, aliases); idx >= 0 {
			cols.choices = append(cols.choices, idx)
		}
	}
	return cols
}

// rowChoices reads the named choice columns, or falls back to every
// non-empty cell between the question and answer columns.
func rowChoices(r []string, cols columns) []string {
	if len(cols.choices) > 0 {
		choices := make([]string, 0, len(cols.choices))
		for _, idx := range cols.choices {
			choices = append(choices, cell(r, idx))
		}
		return choices
	}

	end := len(r)
	if cols.answer >= 0 && cols.answer < end {
		end = cols.answer
	}
	var choices []string
	for k := cols.question + 1; k < end; k++ {
		if v := cell(r, k); v != "" {
			choices = append(choices, v)
		}
	}
	return choices
}

// parseAnswer accepts a letter A-D (any case) or a leading integer.
// Anything else resolves to 0.
func parseAnswer(raw string) int {
	val := strings.TrimSpace(raw)
	if len(val) == 1 {
		switch c := val[0] | 0x20; c {
		case 'a', 'b', 'c', 'd':
			return int(c - 'a')
		}
	}
	return leadingInt(val)
}

// leadingInt parses an optional sign followed by digits, ignoring any
// trailing text ("2)" reads as 2).
func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func cell(r []string, idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return r[idx]
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func firstIndex(header []string, aliases []string) int {
	for _, a := range aliases {
		if idx := indexOf(header, a); idx >= 0 {
			return idx
		}
	}
	return -1
}
