package utils

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 100

	// How far back from a chunk end we look for a sentence boundary.
	sentenceWindow = 100
)

// ChunkText splits text into chunks of at most chunkSize runes with overlap
// runes shared between neighbours. A chunk that would cut mid-text is pulled
// back to the last '.' within its final 100 runes. Concatenating the chunks
// minus their overlaps reproduces the input.
func ChunkText(text string, chunkSize int, overlap int) []string {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}

	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= chunkSize {
		return []string{text}
	}

	var chunks []string
	for start := 0; start < totalLen; {
		end := start + chunkSize
		if end >= totalLen {
			chunks = append(chunks, string(runes[start:]))
			break
		}

		if window := end - sentenceWindow; window > start+overlap {
			for i := end - 1; i >= window; i-- {
				if runes[i] == '.' {
					end = i + 1
					break
				}
			}
		}

		chunks = append(chunks, string(runes[start:end]))

		start = end - overlap
	}

	return chunks
}
