package search

// Span is a piece of text tagged as matching the query or not.
type Span struct {
	Text  string
	Match bool
}

// Highlight splits text on every case-insensitive occurrence of query,
// left to right and non-overlapping. Original casing and all unmatched
// characters are preserved. An empty query yields one literal span.
func Highlight(text, query string) []Span {
	if query == "" || text == "" {
		return []Span{{Text: text}}
	}

	var spans []Span
	rest := text
	for rest != "" {
		start, end := indexFold(rest, query)
		if start < 0 {
			spans = append(spans, Span{Text: rest})
			break
		}
		if start > 0 {
			spans = append(spans, Span{Text: rest[:start]})
		}
		spans = append(spans, Span{Text: rest[start:end], Match: true})
		rest = rest[end:]
	}
	return spans
}

// Join concatenates span texts.
func Join(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
