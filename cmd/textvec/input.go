package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single document in line mode.
const maxLineSize = 16 * 1024 * 1024

// openInput returns the reader for path; "" and "-" select stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// readCorpus decodes documents from r.
// In lines mode every line is one document with its line terminator removed;
// in json mode r holds a JSON array of strings.
func readCorpus(r io.Reader, format string, skipBlank bool) ([]string, error) {
	var corpus []string

	switch format {
	case InputJSON:
		if err := json.NewDecoder(r).Decode(&corpus); err != nil {
			return nil, fmt.Errorf("failed to decode corpus: %w", err)
		}
	case InputLines:
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			corpus = append(corpus, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read corpus: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}

	if corpus == nil {
		corpus = []string{}
	}
	if skipBlank {
		kept := corpus[:0]
		for _, doc := range corpus {
			if doc != "" {
				kept = append(kept, doc)
			}
		}
		corpus = kept
	}
	return corpus, nil
}
