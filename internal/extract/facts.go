// Package extract pulls structured building facts out of raw listing pages.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/jptext"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

// Extraction patterns. All of them run against normalized text (NFKC-folded,
// half-width digits, colon variants folded to ':'), first match wins.
var (
	stationWalkRe = regexp.MustCompile(`(?:([^\s「『(（、。]{1,12})線)?[「『]([^」』]{1,20})[」』]駅?(?:から|より)?徒歩約?([0-9]{1,2})分`)
	unitCountRe   = regexp.MustCompile(`総戸数[^0-9]{0,4}([0-9]{1,4})戸`)
	floorCountRe  = regexp.MustCompile(`地上([0-9]{1,3})階`)
	builtDateRe   = regexp.MustCompile(`(?:19[5-9][0-9]|20[0-4][0-9])年(?:[0-9]{1,2}月)?(?:築|建築|新築)`)

	srcStructRe = regexp.MustCompile(`鉄骨鉄筋コンクリート|SRC`)
	rcStructRe  = regexp.MustCompile(`鉄筋コンクリート|(?:^|[^S])RC`)

	companyValue = `((?:株式会社|\(株\))?[^\s、。，,:]{1,40})`
	developerRe  = regexp.MustCompile(`分譲会社\s*:?\s*` + companyValue)
	builderRe    = regexp.MustCompile(`施工会社\s*:?\s*` + companyValue)
	managerRe    = regexp.MustCompile(`管理会社\s*:?\s*` + companyValue)
)

// FactExtractor extracts building facts from raw HTML or plain text
type FactExtractor struct{}

// NewFactExtractor creates a new fact extractor
func NewFactExtractor() *FactExtractor {
	return &FactExtractor{}
}

// Extract pulls every fact it can find out of the content. HTML markup is
// stripped first; entities are decoded by the parser. A field that fails to
// match is simply absent; no field is ever defaulted to a guessed value, and
// extraction never fails, not even on empty input.
func (e *FactExtractor) Extract(content string) model.Facts {
	text := jptext.Normalize(StripHTML(content))

	var facts model.Facts

	if m := stationWalkRe.FindStringSubmatch(text); m != nil {
		facts.Line = m[1]
		facts.Station = m[2]
		if minutes, err := strconv.Atoi(m[3]); err == nil {
			facts.WalkMinutes = &minutes
		}
	}

	if m := unitCountRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			facts.UnitCount = &n
		}
	}

	// Steel-reinforced takes priority if both structure terms appear.
	switch {
	case srcStructRe.MatchString(text):
		facts.Structure = model.StructureSRC
	case rcStructRe.MatchString(text):
		facts.Structure = model.StructureRC
	}

	if m := floorCountRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			facts.FloorCount = &n
		}
	}

	if m := builtDateRe.FindString(text); m != "" {
		facts.BuiltDate = m
	}

	if m := developerRe.FindStringSubmatch(text); m != nil {
		facts.Developer = m[1]
	}
	if m := builderRe.FindStringSubmatch(text); m != nil {
		facts.Builder = m[1]
	}
	if m := managerRe.FindStringSubmatch(text); m != nil {
		facts.Manager = m[1]
	}

	return facts
}

// StripHTML extracts visible text from HTML, skipping script/style blocks and
// decoding entities. Plain text passes through with whitespace collapsed; the
// parser accepts arbitrary input, so this never fails.
func StripHTML(content string) string {
	if content == "" {
		return ""
	}
	if !strings.ContainsRune(content, '<') {
		return content
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return content
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String())
}
