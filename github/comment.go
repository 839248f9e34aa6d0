// Package github reads issue comments from the GitHub REST API or from a
// JSON export and converts them into canvas messages.
package github

import (
	"encoding/json"
	"fmt"
	"io"
)

// User is the author of a comment.
type User struct {
	Login string `json:"login"`
	Type  string `json:"type"`
}

// Reactions holds the per-kind counts GitHub attaches to a comment.
type Reactions struct {
	TotalCount int `json:"total_count"`
	PlusOne    int `json:"+1"`
	MinusOne   int `json:"-1"`
	Laugh      int `json:"laugh"`
	Hooray     int `json:"hooray"`
	Confused   int `json:"confused"`
	Heart      int `json:"heart"`
	Rocket     int `json:"rocket"`
	Eyes       int `json:"eyes"`
}

// Counts returns the non-zero counts keyed by reaction kind, or nil when
// there are none. TotalCount is ignored; exports often omit it.
func (r *Reactions) Counts() map[string]int {
	if r == nil {
		return nil
	}
	all := map[string]int{
		"+1":       r.PlusOne,
		"-1":       r.MinusOne,
		"laugh":    r.Laugh,
		"hooray":   r.Hooray,
		"confused": r.Confused,
		"heart":    r.Heart,
		"rocket":   r.Rocket,
		"eyes":     r.Eyes,
	}
	out := make(map[string]int)
	for k, n := range all {
		if n > 0 {
			out[k] = n
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Comment is an issue comment as returned by the REST API.
type Comment struct {
	ID                int64      `json:"id"`
	User              *User      `json:"user"`
	Body              string     `json:"body"`
	CreatedAt         string     `json:"created_at"`
	AuthorAssociation string     `json:"author_association"`
	Reactions         *Reactions `json:"reactions,omitempty"`
}

// Login returns the author's login, or "" for comments without a user.
func (c Comment) Login() string {
	if c.User == nil {
		return ""
	}
	return c.User.Login
}

// LoadComments decodes a JSON array of comments, such as the output of
// `gh api repos/{owner}/{repo}/issues/{n}/comments`.
func LoadComments(r io.Reader) ([]Comment, error) {
	var comments []Comment
	if err := json.NewDecoder(r).Decode(&comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

// SampleComments is a small thread used when no token is configured.
func SampleComments(owner string) []Comment {
	return []Comment{
		{
			ID:                1,
			User:              &User{Login: "alice_dev", Type: "User"},
			Body:              "Hey! Love your LookbackAI project. How's the AI model performing?",
			CreatedAt:         "2024-07-22T10:23:00Z",
			AuthorAssociation: "NONE",
			Reactions:         &Reactions{TotalCount: 2, PlusOne: 2},
		},
		{
			ID:                2,
			User:              &User{Login: owner, Type: "User"},
			Body:              "Thanks! The facial recognition is hitting 94% accuracy now. Still tuning the vocal cues...",
			CreatedAt:         "2024-07-22T11:47:00Z",
			AuthorAssociation: "OWNER",
		},
		{
			ID:                3,
			User:              &User{Login: "bob_sec", Type: "User"},
			Body:              "Any plans for CISSP study groups? 🛡️",
			CreatedAt:         "2024-07-22T12:15:00Z",
			AuthorAssociation: "NONE",
		},
		{
			ID:                4,
			User:              &User{Login: "charlie_ml", Type: "User"},
			Body:              "This is absolutely fascinating! I've been diving deep into your LookbackAI project and the technical implementation is genuinely impressive. I'm particularly curious about how you're handling edge cases with varying lighting conditions and different facial angles.",
			CreatedAt:         "2024-07-22T14:32:00Z",
			AuthorAssociation: "NONE",
			Reactions:         &Reactions{TotalCount: 2, Heart: 1, Rocket: 1},
		},
		{
			ID:                5,
			User:              &User{Login: "david_devops", Type: "User"},
			Body:              "Quick question about deployment! Looking at Docker + Kubernetes for production. Any thoughts on scaling strategies?",
			CreatedAt:         "2024-07-22T15:45:00Z",
			AuthorAssociation: "NONE",
		},
	}
}
