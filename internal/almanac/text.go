package almanac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = "map:"
)

// ParseTextFile reads a text almanac from path.
func ParseTextFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open almanac %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ParseText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// ParseText reads the text almanac format. Blank lines separate blocks but
// are otherwise insignificant; a mapping line before any header is an error.
func ParseText(r io.Reader) (*Document, error) {
	doc := &Document{Version: "1"}
	sc := bufio.NewScanner(r)

	var (
		lineNo   int
		sawSeeds bool
		current  *StageDef
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "":
			current = nil

		case strings.HasPrefix(line, seedsPrefix):
			if sawSeeds {
				return nil, fmt.Errorf("line %d: duplicate seeds line", lineNo)
			}

			seeds, err := parseNumbers(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				return nil, fmt.Errorf("line %d: seeds: %w", lineNo, err)
			}

			doc.Seeds = seeds
			sawSeeds = true

		case strings.HasSuffix(line, headerSuffix):
			name := strings.TrimSpace(strings.TrimSuffix(line, headerSuffix))
			if name == "" {
				return nil, fmt.Errorf("line %d: stage header without a name", lineNo)
			}

			doc.Stages = append(doc.Stages, StageDef{Name: name, Line: lineNo})
			current = &doc.Stages[len(doc.Stages)-1]

		default:
			if current == nil {
				return nil, fmt.Errorf("line %d: mapping %q outside of a stage block", lineNo, line)
			}

			nums, err := parseNumbers(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

			if len(nums) != 3 {
				return nil, fmt.Errorf("line %d: mapping needs 3 numbers (dest source length), got %d", lineNo, len(nums))
			}

			current.Mappings = append(current.Mappings, mappingOf(nums))
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read almanac: %w", err)
	}

	if !sawSeeds {
		return nil, fmt.Errorf("missing %q line", seedsPrefix)
	}

	return doc, nil
}

// WriteText renders d in the text almanac format.
func WriteText(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(seedsPrefix)
	for _, s := range d.Seeds {
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatUint(s, 10))
	}

	bw.WriteByte('\n')

	for _, st := range d.Stages {
		fmt.Fprintf(bw, "\n%s %s\n", st.Name, headerSuffix)

		for _, m := range st.Mappings {
			fmt.Fprintf(bw, "%d %d %d\n", m.DestStart, m.SourceStart, m.Length)
		}
	}

	return bw.Flush()
}

func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))

	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}

		out = append(out, n)
	}

	return out, nil
}
