// Package transcriptfile loads meeting transcripts from plain text and WebVTT files.
package transcriptfile

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Format is a supported transcript file format.
type Format string

const (
	FormatText Format = "txt"
	FormatVTT  Format = "vtt"
)

var ErrUnsupportedFormat = errors.New("unsupported transcript format")

var (
	// 00:00:05.579 --> 00:00:06.858, hours optional, cue settings allowed after the end time
	cueTimingRe = regexp.MustCompile(`^(?:\d{2,}:)?\d{2}:\d{2}\.\d{3}\s+-->\s+(?:\d{2,}:)?\d{2}:\d{2}\.\d{3}`)

	// 1 "Speaker Name" (123) cue identifiers written by some meeting tools
	speakerIDRe = regexp.MustCompile(`^\d+\s+"([^"]*)"(?:\s+\(\d+\))?$`)

	// <v Speaker Name>, <v.loud Speaker>
	voiceTagRe = regexp.MustCompile(`^<v(?:\.[^\s>]+)*\s+([^>]+)>`)

	anyTagRe = regexp.MustCompile(`<[^>]*>`)
)

// DetectFormat picks the format from the file extension. Unknown extensions are plain text.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".vtt") {
		return FormatVTT
	}
	return FormatText
}

// Load reads the transcript at path and returns its text ready for extraction.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	return Read(f, DetectFormat(path))
}

// Read returns the transcript text of r in the given format.
func Read(r io.Reader, format Format) (string, error) {
	switch format {
	case FormatText:
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read transcript: %w", err)
		}
		return string(data), nil
	case FormatVTT:
		return ParseVTT(r)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

type cue struct {
	speaker string
	text    string
}

// ParseVTT flattens a WebVTT file into one line per speaker turn. Timings, NOTE/STYLE/REGION
// blocks and markup are dropped; a voice tag or a quoted speaker identifier becomes a
// "Speaker: " prefix, and consecutive cues from the same speaker are joined.
func ParseVTT(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		cues  []cue
		block []string
	)
	flush := func() {
		if c, ok := parseBlock(block); ok {
			cues = append(cues, c)
		}
		block = block[:0]
	}

	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if line == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read vtt: %w", err)
	}
	flush()

	return joinTurns(cues), nil
}

func parseBlock(lines []string) (cue, bool) {
	if len(lines) == 0 {
		return cue{}, false
	}
	switch first := lines[0]; {
	case strings.HasPrefix(first, "WEBVTT"),
		strings.HasPrefix(first, "NOTE"),
		strings.HasPrefix(first, "STYLE"),
		strings.HasPrefix(first, "REGION"):
		return cue{}, false
	}

	timing := -1
	for i, line := range lines {
		if cueTimingRe.MatchString(line) {
			timing = i
			break
		}
	}
	if timing < 0 || timing == len(lines)-1 {
		return cue{}, false
	}

	var c cue
	if timing > 0 {
		if m := speakerIDRe.FindStringSubmatch(lines[timing-1]); m != nil {
			c.speaker = strings.TrimSpace(m[1])
		}
	}

	texts := make([]string, 0, len(lines)-timing-1)
	for _, line := range lines[timing+1:] {
		if m := voiceTagRe.FindStringSubmatch(line); m != nil {
			c.speaker = strings.TrimSpace(m[1])
		}
		text := strings.TrimSpace(html.UnescapeString(anyTagRe.ReplaceAllString(line, "")))
		if text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) == 0 {
		return cue{}, false
	}
	c.text = strings.Join(texts, " ")
	return c, true
}

func joinTurns(cues []cue) string {
	var (
		sb   strings.Builder
		prev *cue
	)
	for i := range cues {
		c := &cues[i]
		if prev != nil && prev.speaker == c.speaker {
			sb.WriteString(" ")
			sb.WriteString(c.text)
			continue
		}
		if prev != nil {
			sb.WriteString("\n")
		}
		if c.speaker != "" {
			sb.WriteString(c.speaker)
			sb.WriteString(": ")
		}
		sb.WriteString(c.text)
		prev = c
	}
	return sb.String()
}
