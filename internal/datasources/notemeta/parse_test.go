package notemeta

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notePage = `<!DOCTYPE html>
<html>
<head>
<title>Fallback title | note</title>
<meta property="og:title" content="Reading more slowly">
<meta property="og:description" content="0123456789">
<meta property="og:image" content="https://assets.note.com/cover.png">
<meta name="twitter:creator" content="@alice_tw">
<script type="application/ld+json">
{"@type":"Article","author":{"@type":"Person","name":"Alice A.","image":{"@type":"ImageObject","url":"https://assets.note.com/alice.png"}}}
</script>
</head>
<body>
<a href="https://note.com/hashtag/%E8%AA%AD%E6%9B%B8">#読書</a>
<a href="https://note.com/hashtag/go?ref=tag">#go</a>
<a href="https://note.com/hashtag/go">#go again</a>
<a href="https://example.com/hashtag/elsewhere">not note</a>
<a href="https://note.com/bob">profile</a>
</body>
</html>`

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestParsePage_NotePage(t *testing.T) {
	meta, err := ParsePage([]byte(notePage), mustURL(t, "https://note.com/alice/n/nabc123"))
	require.NoError(t, err)

	assert.Equal(t, "Reading more slowly", meta.Title)
	assert.Equal(t, "0123456789", meta.Excerpt)
	assert.Equal(t, "https://assets.note.com/cover.png", meta.CoverImageURL)
	assert.Equal(t, "alice", meta.CreatorURLName)
	assert.Equal(t, "Alice A.", meta.CreatorNickname)
	assert.Equal(t, "https://assets.note.com/alice.png", meta.CreatorProfileImage)
	assert.Equal(t, []string{"読書", "go"}, meta.Hashtags)
	assert.False(t, meta.IsPaid)
	// Ten characters of description estimate eighty characters of body.
	assert.Equal(t, 80, meta.WordCount)
	assert.Equal(t, 1, meta.ReadingTime)
}

func TestParsePage_CreatorFallbacks(t *testing.T) {
	cases := []struct {
		name         string
		head         string
		url          string
		wantNickname string
		wantURLName  string
		wantImage    string
	}{
		{
			name: "next_data_user",
			head: `<script id="__NEXT_DATA__" type="application/json">
{"props":{"pageProps":{"note":{"user":{"nickname":"Bobby","urlname":"bob","userProfileImagePath":"https://assets.note.com/bob.png"}}}}}
</script>`,
			url:          "https://example.com/post",
			wantNickname: "Bobby",
			wantURLName:  "bob",
			wantImage:    "https://assets.note.com/bob.png",
		},
		{
			name: "note_body_user",
			head: `<script id="__NEXT_DATA__" type="application/json">
{"props":{"pageProps":{"noteBody":{"user":{"nickname":"Carol","urlname":"carol"}}}}}
</script>`,
			url:          "https://note.com/carol/n/n1",
			wantNickname: "Carol",
			wantURLName:  "carol",
		},
		{
			name: "json_ld_author_list",
			head: `<script type="application/ld+json">
{"author":[{"name":"Dana","image":"https://assets.note.com/dana.png"}]}
</script>`,
			url:          "https://note.com/dana/n/n1",
			wantNickname: "Dana",
			wantURLName:  "dana",
			wantImage:    "https://assets.note.com/dana.png",
		},
		{
			name:         "note_creator_meta",
			head:         `<meta name="note:creator" content="Erin"><meta name="twitter:creator" content="@erin">`,
			url:          "https://note.com/erin/n/n1",
			wantNickname: "Erin",
			wantURLName:  "erin",
		},
		{
			name:         "twitter_creator_meta",
			head:         `<meta name="twitter:creator" content="@frank">`,
			url:          "https://note.com/frank/n/n1",
			wantNickname: "@frank",
			wantURLName:  "frank",
		},
		{
			name:         "urlname_only",
			head:         ``,
			url:          "https://note.com/gina/n/n1",
			wantNickname: "gina",
			wantURLName:  "gina",
		},
		{
			name:         "broken_json_is_ignored",
			head:         `<script type="application/ld+json">{not json</script>`,
			url:          "https://note.com/hal/n/n1",
			wantNickname: "hal",
			wantURLName:  "hal",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := `<html><head><meta property="og:title" content="T">` +
				`<meta name="description" content="Some description">` + tc.head + `</head><body></body></html>`

			meta, err := ParsePage([]byte(page), mustURL(t, tc.url))
			require.NoError(t, err)

			assert.Equal(t, tc.wantNickname, meta.CreatorNickname)
			assert.Equal(t, tc.wantURLName, meta.CreatorURLName)
			assert.Equal(t, tc.wantImage, meta.CreatorProfileImage)
			assert.Equal(t, "Some description", meta.Excerpt)
		})
	}
}

func TestParsePage_BodyTextWordCount(t *testing.T) {
	body := strings.Repeat("あ", 1300)
	page := `<html><head><title>Long read</title><meta property="og:description" content="short"></head><body>
<div class="note-common-styles__textnote-body"><p>` + body + `</p>
<p>  </p></div></body></html>`

	meta, err := ParsePage([]byte(page), mustURL(t, "https://note.com/alice/n/n1"))
	require.NoError(t, err)

	assert.Equal(t, "Long read", meta.Title)
	assert.Equal(t, 1300, meta.WordCount)
	assert.Equal(t, 3, meta.ReadingTime)
}

func TestParsePage_Paid(t *testing.T) {
	cases := []struct {
		name string
		page string
		want bool
	}{
		{name: "limited_flag", page: `<html><head><title>x</title><script>{"is_limited":true}</script></head></html>`, want: true},
		{name: "premium_marker", page: `<html><head><title>x</title></head><body class="note-premium"></body></html>`, want: true},
		{name: "paid_label", page: `<html><head><title>x</title></head><body><span>有料</span></body></html>`, want: true},
		{name: "free", page: `<html><head><title>x</title><script>{"is_limited":false}</script></head></html>`, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta, err := ParsePage([]byte(tc.page), mustURL(t, "https://note.com/alice/n/n1"))
			require.NoError(t, err)
			assert.Equal(t, tc.want, meta.IsPaid)
		})
	}
}

func TestParsePage_HashtagLimit(t *testing.T) {
	var links strings.Builder
	for i := 0; i < 15; i++ {
		links.WriteString(`<a href="/hashtag/tag` + string(rune('a'+i)) + `">t</a>`)
	}
	page := `<html><head><title>x</title></head><body>` + links.String() + `</body></html>`

	meta, err := ParsePage([]byte(page), mustURL(t, "https://note.com/alice/n/n1"))
	require.NoError(t, err)

	require.Len(t, meta.Hashtags, maxHashtags)
	assert.Equal(t, "taga", meta.Hashtags[0])
	assert.Equal(t, "tagj", meta.Hashtags[9])
}

func TestReadingTimeMinutes(t *testing.T) {
	cases := []struct {
		name      string
		wordCount int
		want      int
	}{
		{name: "zero_is_one_minute", wordCount: 0, want: 1},
		{name: "under_half", wordCount: 200, want: 1},
		{name: "default_estimate", wordCount: 1000, want: 2},
		{name: "rounds_half_up", wordCount: 1250, want: 3},
		{name: "long", wordCount: 10000, want: 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReadingTimeMinutes(tc.wordCount))
		})
	}
}
