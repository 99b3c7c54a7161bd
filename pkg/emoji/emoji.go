// Package emoji is the catalogue the picker offers.
package emoji

import "github.com/samber/lo"

type Emoji struct {
	Glyph string
	Name  string
}

type Category struct {
	Name   string
	Emojis []Emoji
}

var Categories = []Category{
	{
		Name: "Smileys",
		Emojis: []Emoji{
			{"😀", "grinning"},
			{"😄", "smile"},
			{"😂", "joy"},
			{"🙂", "slightly smiling"},
			{"😉", "wink"},
			{"😊", "blush"},
			{"😍", "heart eyes"},
			{"😎", "sunglasses"},
			{"🤔", "thinking"},
			{"😐", "neutral"},
			{"😴", "sleeping"},
			{"😢", "cry"},
			{"😡", "angry"},
			{"😱", "scream"},
		},
	},
	{
		Name: "Gestures",
		Emojis: []Emoji{
			{"👍", "thumbs up"},
			{"👎", "thumbs down"},
			{"👌", "ok hand"},
			{"👏", "clap"},
			{"🙏", "pray"},
			{"👋", "wave"},
			{"💪", "muscle"},
			{"🤝", "handshake"},
		},
	},
	{
		Name: "Hearts",
		Emojis: []Emoji{
			{"❤️", "red heart"},
			{"💙", "blue heart"},
			{"💚", "green heart"},
			{"💛", "yellow heart"},
			{"💔", "broken heart"},
		},
	},
	{
		Name: "Objects",
		Emojis: []Emoji{
			{"🎉", "party"},
			{"🔥", "fire"},
			{"⭐", "star"},
			{"✅", "check"},
			{"❌", "cross"},
			{"⚠️", "warning"},
			{"💡", "idea"},
			{"📌", "pin"},
			{"📎", "paperclip"},
			{"🚀", "rocket"},
			{"☕", "coffee"},
			{"🐛", "bug"},
		},
	},
}

// All returns every emoji in catalogue order.
func All() []Emoji {
	return lo.FlatMap(Categories, func(c Category, _ int) []Emoji {
		return c.Emojis
	})
}

// Lookup finds the catalogue entry for a glyph.
func Lookup(glyph string) (Emoji, bool) {
	return lo.Find(All(), func(e Emoji) bool {
		return e.Glyph == glyph
	})
}
