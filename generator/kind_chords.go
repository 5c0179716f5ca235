package generator

import (
	"fmt"
	"strings"
)

func chordsKind() *KindConfig {
	return &KindConfig{
		Kind:  KindChords,
		Label: "Chord Progression",
		SystemPrompt: "You are a harmony coach. Create chord-progression exercises that are playable in one sitting. Each exercise should:\n" +
			"1. Give the progression in roman numerals and in one concrete key\n" +
			"2. Say what makes the progression work\n" +
			"3. Suggest one variation to try",
		UserPrompt: func(categories []string, anchor string) string {
			var sb strings.Builder
			fmt.Fprintf(&sb, "Create a chord progression exercise in these styles: %s\n\n", strings.Join(categories, ", "))
			if anchor != "" {
				fmt.Fprintf(&sb, "Lean on harmonic language associated with %s.\n", anchor)
			}
			sb.WriteString("Keep it to 4-8 chords.\n")
			sb.WriteString("Start with a short title as a markdown heading, and end with a **Tips:** section of three bullet points.")
			return sb.String()
		},
		Pools: map[string][]string{
			"Jazz":  {"Bill Evans", "Duke Ellington", "Herbie Hancock", "Thelonious Monk", "Wayne Shorter"},
			"Pop":   {"The Beatles", "ABBA", "Stevie Wonder", "Carole King", "Max Martin"},
			"Blues": {"Robert Johnson", "B.B. King", "Muddy Waters", "T-Bone Walker"},
			"Lo-fi": {"Nujabes", "J Dilla", "Tomppabeats", "Idealism"},
			"Folk":  {"Nick Drake", "Joni Mitchell", "John Fahey", "Bert Jansch"},
		},
		Templates: map[string][]Template{
			"Jazz": {{
				Title: "Turnaround Workshop",
				Text:  "Play {progression} in {key} at a slow ballad tempo. Voice every chord {voicing}, then {variation}. Notice how {focus} pulls the ear home.",
				Slots: map[string][]string{
					"progression": {"I-vi-ii-V", "iii-VI7-ii-V", "I-bIII7-ii-V"},
					"key":         {"C major", "F major", "Bb major", "Eb major"},
					"voicing":     {"rootless in the left hand", "in drop-2 on the middle strings", "as shell voicings only"},
					"variation":   {"substitute a tritone sub for the V", "add a #11 to every dominant", "walk a bass line under it"},
					"focus":       {"the ii-V motion", "the chromatic inner voice", "the dominant tension"},
				},
			}},
			"Pop": {{
				Title: "Four Chords, New Colors",
				Text:  "Loop {progression} in {key}. Keep the chords but change {change} every four bars, and finish by {finish}.",
				Slots: map[string][]string{
					"progression": {"I-V-vi-IV", "vi-IV-I-V", "I-iii-IV-iv"},
					"key":         {"G major", "D major", "A major", "E major"},
					"change":      {"the rhythm of the strum or comp", "which chord tone sits on top", "the bass inversion"},
					"finish":      {"swapping the IV for a ii", "borrowing iv from the parallel minor", "holding the V an extra bar"},
				},
			}},
			"Blues": {{
				Title: "Twelve Bars, One Twist",
				Text:  "Play a 12-bar blues in {key} using {chords}. In chorus two, {twist}. Keep your {hand} locked to the shuffle.",
				Slots: map[string][]string{
					"key":    {"A", "E", "G", "C"},
					"chords": {"dominant 7ths throughout", "9th chords on the IV", "a quick-change bar 2"},
					"twist":  {"substitute a diminished chord in bar 6", "walk up to the IV chromatically", "end on a tritone sub turnaround"},
					"hand":   {"right hand", "strumming hand", "comping pattern"},
				},
			}},
			"Lo-fi": {{
				Title: "Dusty Loop Harmony",
				Text:  "Build a two-bar loop on {progression} in {key}, voiced with {voicing}. Add {color} to one chord only, and let the loop run while you {listen}.",
				Slots: map[string][]string{
					"progression": {"ii9-V13-Imaj9-vi9", "Imaj7-iii7-IVmaj7-iv7", "vi9-ii9-V7-Imaj9"},
					"key":         {"D minor", "F major", "Ab major"},
					"voicing":     {"close voicings around middle C", "spread voicings with a 10th in the bass", "quartal stacks"},
					"color":       {"a suspended 4th that never resolves", "an added 9th", "a flat 13"},
					"listen":      {"hum counter-melodies", "tap a half-time pulse", "write down what the loop makes you picture"},
				},
			}},
		},
		DefaultTemplate: Template{
			Title: "Borrowed Color Study",
			Text:  "Take the progression {progression} in {key}. Play it straight, then replace the {target} chord with {substitute}. Describe out loud how the color changes.",
			Slots: map[string][]string{
				"progression": {"I-IV-V-I", "I-vi-IV-V", "i-VI-III-VII"},
				"key":         {"C major", "A minor", "G major"},
				"target":      {"second", "third", "final"},
				"substitute":  {"its parallel-minor version", "a secondary dominant", "a sus4 voicing"},
			},
		},
		Tips: map[string]string{
			"Jazz":  "Voice-lead: move each finger as little as possible between chords.",
			"Pop":   "Melody first - a progression serves the top line, not the reverse.",
			"Blues": "The groove forgives wrong notes; the wrong groove forgives nothing.",
			"Lo-fi": "Imperfection is texture - loose timing and soft attacks sell the mood.",
			"Folk":  "Let open strings ring through position changes for a wider sound.",
		},
		GenericTips: []string{
			"Sing the root movement before you play it.",
			"Practice the transition between the two hardest chords in isolation.",
			"Record every session - progressions reveal themselves on playback.",
		},
	}
}
