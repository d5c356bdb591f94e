// Package html extracts comment text from the HTML layout of review
// notification emails. The selectors mirror the nesting the platform's
// templates produce and must not be loosened.
package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	commentSelector        = "div > div > p"
	inlineCommentSelector  = "div > strong + div > div > div > div"
	staleCommentStyleToken = "color"
)

func newDocument(body string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}

// ExtractComment returns the text of the container holding the first
// paragraph nested two containers deep, or nil if there is none or it is empty.
func ExtractComment(body string) *string {
	doc, err := newDocument(body)
	if err != nil {
		return nil
	}

	paragraph := doc.Find(commentSelector).First()
	if paragraph.Length() == 0 {
		return nil
	}

	text := paragraph.Parent().Text()
	if len(text) == 0 {
		return nil
	}

	return &text
}

// ExtractInlineComments collects the paragraphs of every inline comment
// container. Paragraphs whose container is styled with a color are quoted
// earlier comments and are skipped.
func ExtractInlineComments(body string) []string {
	comments := []string{}

	doc, err := newDocument(body)
	if err != nil {
		return comments
	}

	doc.Find(inlineCommentSelector).Each(func(_ int, container *goquery.Selection) {
		container.Find("p").Each(func(_ int, paragraph *goquery.Selection) {
			style, _ := paragraph.Parent().Attr("style")
			if strings.Contains(style, staleCommentStyleToken) {
				return
			}

			comments = append(comments, paragraph.Text())
		})
	})

	return comments
}
