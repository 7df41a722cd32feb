package summarizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
)

const (
	docxFont      = "Calibri"
	docxBodySize  = 11
	docxTitleSize = 18
	docxColor     = "000000"
	docxMetaColor = "595959"
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*+]\s+(.+)$`)
)

// WriteDocx renders a markdown summary, headed by the clip metadata, into a
// .docx file at outputPath.
func WriteDocx(meta models.VideoMetadata, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	title := meta.Title
	if title == "" {
		title = models.UnknownTitle
	}
	addRun(doc.AddParagraph(""), title, true, docxTitleSize, docxColor)

	if line := metaLine(meta); line != "" {
		addRun(doc.AddParagraph(""), line, false, docxBodySize, docxMetaColor)
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "" || trimmed == "---":
			continue
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			addRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])), docxColor)
		case reBullet.MatchString(trimmed):
			m := reBullet.FindStringSubmatch(trimmed)
			addRichText(doc.AddParagraph(""), "• "+m[1])
		default:
			addRichText(doc.AddParagraph(""), trimmed)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func metaLine(meta models.VideoMetadata) string {
	var parts []string
	if meta.Uploader != "" {
		parts = append(parts, meta.Uploader)
	}
	if meta.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.0fs", meta.Duration))
	}
	return strings.Join(parts, " · ")
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 12
	default:
		return docxBodySize
	}
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64, color string) {
	run := p.AddText(cleanInline(text)).Font(docxFont).Size(size).Color(color)
	if bold {
		run.Bold(true)
	}
}

// addRichText splits on **bold** spans and emits alternating runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			addRun(p, part, false, docxBodySize, docxColor)
		}
		if i < len(matches) {
			addRun(p, matches[i][1], true, docxBodySize, docxColor)
		}
	}
}

func cleanInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
