package github

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadComments(t *testing.T) {
	input := `[
		{"id": 1, "user": {"login": "alice", "type": "User"}, "body": "hi",
		 "created_at": "2024-07-22T10:23:00Z", "author_association": "NONE",
		 "reactions": {"total_count": 3, "+1": 2, "heart": 1, "-1": 0}},
		{"id": 2, "user": null, "body": "ghost"}
	]`
	comments, err := LoadComments(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "alice", comments[0].Login())
	assert.Equal(t, map[string]int{"+1": 2, "heart": 1}, comments[0].Reactions.Counts())
	assert.Equal(t, "", comments[1].Login())
	assert.Nil(t, comments[1].Reactions.Counts())
}

func TestLoadCommentsInvalid(t *testing.T) {
	_, err := LoadComments(strings.NewReader(`{"not": "an array"}`))
	assert.ErrorContains(t, err, "decode comments")
}

func TestIsBot(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{"bot type", &User{Login: "helper", Type: "Bot"}, true},
		{"github actions", &User{Login: "github-actions[bot]", Type: "User"}, true},
		{"dependabot", &User{Login: "Dependabot", Type: "User"}, true},
		{"renovate", &User{Login: "renovate-app", Type: "User"}, true},
		{"human", &User{Login: "alice", Type: "User"}, false},
		{"no user", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBot(Comment{User: tt.user}))
		})
	}
}

func TestIsOwner(t *testing.T) {
	assert.True(t, IsOwner(Comment{User: &User{Login: "x"}, AuthorAssociation: "OWNER"}, "octo"))
	assert.True(t, IsOwner(Comment{User: &User{Login: "Octo"}, AuthorAssociation: "NONE"}, "octo"))
	assert.False(t, IsOwner(Comment{User: &User{Login: "alice"}, AuthorAssociation: "CONTRIBUTOR"}, "octo"))
	assert.False(t, IsOwner(Comment{User: &User{Login: ""}}, ""))
}

func TestToMessages(t *testing.T) {
	comments := []Comment{
		{User: &User{Login: "alice"}, Body: "  first  ", CreatedAt: "2024-07-22T10:00:00Z"},
		{User: nil, Body: "no author"},
		{User: &User{Login: "dependabot[bot]", Type: "Bot"}, Body: "bump"},
		{User: &User{Login: "octo"}, Body: "second", AuthorAssociation: "OWNER",
			Reactions: &Reactions{TotalCount: 1, Rocket: 1}},
		{User: &User{Login: "bob"}, Body: "third"},
	}

	t.Run("filters and annotates", func(t *testing.T) {
		msgs := ToMessages(comments, ConvertOptions{RepoOwner: "octo", FilterBots: true})
		require.Len(t, msgs, 3)
		assert.Equal(t, "alice", msgs[0].Author)
		assert.Equal(t, "first", msgs[0].Body)
		assert.Equal(t, "2024-07-22T10:00:00Z", msgs[0].Timestamp)
		assert.False(t, msgs[0].IsOwner)
		assert.True(t, msgs[1].IsOwner)
		assert.Equal(t, map[string]int{"rocket": 1}, msgs[1].Reactions)
	})

	t.Run("keeps bots when not filtering", func(t *testing.T) {
		msgs := ToMessages(comments, ConvertOptions{RepoOwner: "octo"})
		assert.Len(t, msgs, 4)
	})

	t.Run("keeps most recent", func(t *testing.T) {
		msgs := ToMessages(comments, ConvertOptions{FilterBots: true, MaxMessages: 2})
		require.Len(t, msgs, 2)
		assert.Equal(t, "octo", msgs[0].Author)
		assert.Equal(t, "bob", msgs[1].Author)
	})
}

func TestSanitizeBody(t *testing.T) {
	long := strings.Repeat("日", maxBodyRunes+50)
	got := sanitizeBody(long)
	assert.Equal(t, maxBodyRunes, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))

	assert.Equal(t, "short", sanitizeBody("\n short \t"))
	assert.Equal(t, "", sanitizeBody("   "))
}

func TestSampleComments(t *testing.T) {
	msgs := ToMessages(SampleComments("octo"), ConvertOptions{RepoOwner: "octo", FilterBots: true})
	require.Len(t, msgs, 5)
	assert.True(t, msgs[1].IsOwner)
	assert.Equal(t, "octo", msgs[1].Author)
}

func TestReactionsCountsWithoutTotal(t *testing.T) {
	comments, err := LoadComments(strings.NewReader(`[
		{"id": 1, "user": {"login": "alice"}, "reactions": {"rocket": 2, "eyes": 1}},
		{"id": 2, "user": {"login": "bob"}, "reactions": {"total_count": 0}}
	]`))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"rocket": 2, "eyes": 1}, comments[0].Reactions.Counts())
	assert.Nil(t, comments[1].Reactions.Counts())
}
