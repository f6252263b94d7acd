package service

import (
	"regexp"
	"strings"

	"medscanapi/internal/inference"
)

// ChatSource is one cited document in a chat answer.
type ChatSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

const maxChatSources = 5

var (
	separatorRe     = regexp.MustCompile(`\n*-{3,}\n*`)
	answerLabelRe   = regexp.MustCompile(`(?i)^answer\s*:\s*`)
	multiSpaceRe    = regexp.MustCompile(`\s+`)
	multiNewlineRe  = regexp.MustCompile(`\n{3,}`)
	leadingNumberRe = regexp.MustCompile(`^\d+\.\s*`)
	markdownLinkRe  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	titleSegmentRe  = regexp.MustCompile(`-(\w+)-(\w+)`)
)

// cleanChatAnswer strips the boilerplate the upstream generator appends
// (limitations, reference lists, disclaimers) and deduplicates repeated
// paragraphs and sentences. Answers that end mid-sentence are truncated at
// the last complete one.
func cleanChatAnswer(raw string) string {
	if raw == "" {
		return ""
	}

	answer := cutBefore(raw, "Limitations:", "Limitation:")
	answer = cutBefore(answer, "**References:**", "References:")
	answer = strings.TrimSpace(separatorRe.ReplaceAllString(answer, ""))
	answer = cutBefore(answer, "**Important:**", "Important:")
	answer = strings.TrimSpace(answerLabelRe.ReplaceAllString(answer, ""))

	answer = dedupeParagraphs(answer)
	answer = dedupeSentences(answer)

	// Drop a trailing incomplete sentence.
	if answer != "" && !strings.ContainsRune(".!?", rune(answer[len(answer)-1])) {
		if cut := strings.LastIndexAny(answer, ".!?"); cut > 0 {
			answer = strings.TrimSpace(answer[:cut+1])
		}
	}

	answer = multiSpaceRe.ReplaceAllString(answer, " ")
	answer = multiNewlineRe.ReplaceAllString(answer, "\n\n")
	return strings.TrimSpace(answer)
}

// cutBefore truncates s at the first occurrence of either marker.
func cutBefore(s string, markers ...string) string {
	for _, m := range markers {
		if before, _, found := strings.Cut(s, m); found {
			return strings.TrimSpace(before)
		}
	}
	return s
}

func dedupeParagraphs(s string) string {
	paragraphs := strings.Split(s, "\n\n")
	seen := make(map[string]struct{}, len(paragraphs))
	unique := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		key := strings.Join(strings.Fields(strings.ToLower(p)), " ")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, p)
	}
	return strings.Join(unique, "\n\n")
}

func dedupeSentences(s string) string {
	sentences := splitSentences(s)
	seen := make(map[string]struct{}, len(sentences))
	unique := make([]string, 0, len(sentences))
	for _, sent := range sentences {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}
		key := strings.Join(strings.Fields(strings.ToLower(sent)), " ")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, sent)
	}
	return strings.Join(unique, " ")
}

// splitSentences breaks text at sentence-ending punctuation followed by
// whitespace, keeping the punctuation with the sentence.
func splitSentences(s string) []string {
	var out []string
	start := 0
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) &&
			(runes[i+1] == ' ' || runes[i+1] == '\t' || runes[i+1] == '\n') {
			out = append(out, string(runes[start:i+1]))
			for i+1 < len(runes) && (runes[i+1] == ' ' || runes[i+1] == '\t' || runes[i+1] == '\n') {
				i++
			}
			start = i + 1
		}
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

// extractChatSources pulls up to five cited documents from the structured
// stats block, falling back to markdown links in the raw answer when the
// stats carry none.
func extractChatSources(pred *inference.RAGPrediction) []ChatSource {
	sources := make([]ChatSource, 0, maxChatSources)

	for _, src := range pred.Stats.Sources {
		if len(sources) == maxChatSources {
			break
		}
		title := strings.TrimSpace(src.Title)
		link := strings.TrimSpace(src.Link)
		if title == "" || !strings.HasPrefix(link, "http") {
			continue
		}
		sources = append(sources, ChatSource{Title: cleanSourceTitle(title), URL: link})
	}
	if len(sources) > 0 {
		return sources
	}

	seen := make(map[string]struct{})
	for _, m := range markdownLinkRe.FindAllStringSubmatch(pred.Answer, -1) {
		if len(sources) == maxChatSources {
			break
		}
		title, url := m[1], strings.TrimSpace(m[2])
		if !strings.HasPrefix(url, "http") {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		sources = append(sources, ChatSource{Title: cleanSourceTitle(title), URL: url})
	}
	return sources
}

// cleanSourceTitle strips list numbering, underscores and stuttered
// "-Word-Word" segments the retriever sometimes emits.
func cleanSourceTitle(title string) string {
	title = strings.TrimSpace(strings.ReplaceAll(title, "__", ""))
	title = leadingNumberRe.ReplaceAllString(title, "")
	return titleSegmentRe.ReplaceAllStringFunc(title, func(m string) string {
		parts := titleSegmentRe.FindStringSubmatch(m)
		if len(parts) == 3 && parts[1] == parts[2] {
			return "-" + parts[1]
		}
		return m
	})
}
