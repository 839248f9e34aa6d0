package canvas

import "time"

// fixedNow is the render time used by every test so output is reproducible.
var fixedNow = time.Date(2024, 7, 22, 16, 0, 0, 0, time.UTC)

// testConfig returns a 50-column config with a fixed clock.
// Functional options let callers override individual fields.
func testConfig(opts ...func(*Config)) Config {
	cfg := Config{
		Width:    50,
		ThreadID: "2",
		RepoPath: "octo/profile",
		Now:      func() time.Time { return fixedNow },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// guestMsg builds a non-owner message with a valid timestamp.
func guestMsg(author, body string) Message {
	return Message{
		Author:    author,
		Body:      body,
		Timestamp: "2024-07-22T10:23:00Z",
	}
}

// ownerMsg builds an owner message with a valid timestamp.
func ownerMsg(author, body string) Message {
	return Message{
		Author:    author,
		Body:      body,
		Timestamp: "2024-07-22T11:47:00Z",
		IsOwner:   true,
	}
}

// sampleThread mixes owners, guests, wide text, empty bodies and bad
// timestamps.
func sampleThread() []Message {
	return []Message{
		guestMsg("alice_dev", "Hey! Love your LookbackAI project. How's the AI model performing?"),
		ownerMsg("octo", "Thanks! The facial recognition is hitting 94% accuracy now. Still tuning the vocal cues..."),
		guestMsg("bob_sec", "Any plans for CISSP study groups? 🛡️"),
		guestMsg("kenji", "日本語のテストメッセージです。とても長いメッセージなので折り返しが必要です。"),
		{Author: "charlie_ml", Body: "", Timestamp: "not a time"},
		{Author: "dana", Body: "line one\n\nline three\nline four\nline five\nline six", Timestamp: ""},
		ownerMsg("octo", "a-very-long-token-without-any-spaces-that-must-be-hard-broken-somewhere"),
		guestMsg("eve", "combining marks: éé and a tab\there"),
	}
}
