package notemeta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/jbeshir/reading-queue/internal/domain"
)

const (
	maxHashtags = 10

	// Characters read per minute, and the estimate used when a page has neither
	// body text nor a description.
	charsPerMinute   = 500
	defaultWordCount = 1000
	// A description is roughly an eighth of the article it summarises.
	excerptMultiplier = 8

	bodySelector = ".note-common-styles__textnote-body"
)

// ParsePage extracts article metadata from a fetched page. pageURL is the
// address the page was fetched from and is used to resolve relative links.
func ParsePage(page []byte, pageURL *url.URL) (domain.ArticleMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return domain.ArticleMetadata{}, fmt.Errorf("parsing page: %w", err)
	}

	meta := domain.ArticleMetadata{
		Title:         firstNonEmpty(metaContent(doc, "og:title"), strings.TrimSpace(doc.Find("title").First().Text())),
		Excerpt:       firstNonEmpty(metaContent(doc, "og:description"), metaContent(doc, "description")),
		CoverImageURL: metaContent(doc, "og:image"),
		Hashtags:      hashtags(doc, pageURL),
		IsPaid:        isPaid(page),
	}

	urlName, _, _ := domain.ParseNoteURL(pageURL.String())
	author := authorFromJSONLD(doc)
	user := userFromNextData(doc)

	meta.CreatorURLName = firstNonEmpty(urlName, user.URLName)
	meta.CreatorNickname = firstNonEmpty(
		author.Name,
		user.Nickname,
		metaContent(doc, "note:creator"),
		metaContent(doc, "twitter:creator"),
		meta.CreatorURLName,
	)
	meta.CreatorProfileImage = firstNonEmpty(author.Image, user.ProfileImagePath)

	body := compactText(doc.Find(bodySelector).Text())

	var readableText string
	if meta.Title == "" || (body == "" && meta.Excerpt == "") {
		article, err := readability.FromReader(bytes.NewReader(page), pageURL)
		if err == nil {
			meta.Title = firstNonEmpty(meta.Title, strings.TrimSpace(article.Title))
			readableText = compactText(article.TextContent)
		}
	}
	meta.Title = firstNonEmpty(meta.Title, strings.TrimSpace(doc.Find("h1").First().Text()))

	switch {
	case body != "":
		meta.WordCount = utf8.RuneCountInString(body)
	case meta.Excerpt != "":
		meta.WordCount = utf8.RuneCountInString(meta.Excerpt) * excerptMultiplier
	case readableText != "":
		meta.WordCount = utf8.RuneCountInString(readableText)
	default:
		meta.WordCount = defaultWordCount
	}
	meta.ReadingTime = ReadingTimeMinutes(meta.WordCount)

	return meta, nil
}

// ReadingTimeMinutes estimates minutes to read wordCount characters, at least one.
func ReadingTimeMinutes(wordCount int) int {
	return max(1, int(math.Round(float64(wordCount)/charsPerMinute)))
}

func metaContent(doc *goquery.Document, key string) string {
	sel := doc.Find(fmt.Sprintf("meta[property=%q], meta[name=%q]", key, key)).First()
	content, _ := sel.Attr("content")
	return strings.TrimSpace(content)
}

// hashtags collects note.com hashtag links in document order, decoded and
// without duplicates.
func hashtags(doc *goquery.Document, pageURL *url.URL) []string {
	tags := []string{}
	seen := map[string]bool{}

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		link, err := pageURL.Parse(href)
		if err != nil {
			return true
		}
		if link.Hostname() != "note.com" && link.Hostname() != pageURL.Hostname() {
			return true
		}

		tag, ok := strings.CutPrefix(link.Path, "/hashtag/")
		tag = strings.Trim(tag, "/")
		if !ok || tag == "" || seen[tag] {
			return true
		}

		seen[tag] = true
		tags = append(tags, tag)
		return len(tags) < maxHashtags
	})

	return tags
}

func isPaid(page []byte) bool {
	return bytes.Contains(page, []byte(`"is_limited":true`)) ||
		bytes.Contains(page, []byte("有料")) ||
		bytes.Contains(page, []byte("note-premium"))
}

type ldAuthor struct {
	Name  string
	Image string
}

// authorFromJSONLD reads the author of the first JSON-LD block. The author may
// be an object or a list of objects, and its image a URL or an ImageObject.
func authorFromJSONLD(doc *goquery.Document) ldAuthor {
	raw := doc.Find(`script[type="application/ld+json"]`).First().Text()
	if raw == "" {
		return ldAuthor{}
	}

	var ld struct {
		Author json.RawMessage `json:"author"`
	}
	if err := json.Unmarshal([]byte(raw), &ld); err != nil || len(ld.Author) == 0 {
		return ldAuthor{}
	}

	type author struct {
		Name  string          `json:"name"`
		Image json.RawMessage `json:"image"`
	}
	var a author
	if err := json.Unmarshal(ld.Author, &a); err != nil {
		var list []author
		if err := json.Unmarshal(ld.Author, &list); err != nil || len(list) == 0 {
			return ldAuthor{}
		}
		a = list[0]
	}

	result := ldAuthor{Name: strings.TrimSpace(a.Name)}
	if len(a.Image) > 0 {
		var image string
		if err := json.Unmarshal(a.Image, &image); err == nil {
			result.Image = image
		} else {
			var imageObject struct {
				URL string `json:"url"`
			}
			if err := json.Unmarshal(a.Image, &imageObject); err == nil {
				result.Image = imageObject.URL
			}
		}
	}
	return result
}

type noteUser struct {
	Nickname         string `json:"nickname"`
	URLName          string `json:"urlname"`
	ProfileImagePath string `json:"userProfileImagePath"`
}

func userFromNextData(doc *goquery.Document) noteUser {
	raw := doc.Find("script#__NEXT_DATA__").First().Text()
	if raw == "" {
		return noteUser{}
	}

	type note struct {
		User *noteUser `json:"user"`
	}
	var data struct {
		Props struct {
			PageProps struct {
				Note     *note `json:"note"`
				NoteBody *note `json:"noteBody"`
			} `json:"pageProps"`
		} `json:"props"`
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return noteUser{}
	}

	n := data.Props.PageProps.Note
	if n == nil {
		n = data.Props.PageProps.NoteBody
	}
	if n == nil || n.User == nil {
		return noteUser{}
	}
	return *n.User
}

func compactText(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
