package generator

import (
	"fmt"
	"strings"
)

func soundKind() *KindConfig {
	return &KindConfig{
		Kind:  KindSound,
		Label: "Sound Design Drill",
		SystemPrompt: "You are a sound design instructor. Create focused, achievable sound-design drills that build synthesis and processing technique. Each drill should:\n" +
			"1. Name the source material or synthesis method\n" +
			"2. Specify a concrete processing chain\n" +
			"3. Impose one creative constraint\n" +
			"4. End with a clear deliverable",
		UserPrompt: func(categories []string, anchor string) string {
			var sb strings.Builder
			fmt.Fprintf(&sb, "Create a sound-design drill in these styles: %s\n\n", strings.Join(categories, ", "))
			if anchor != "" {
				fmt.Fprintf(&sb, "Anchor the drill on the sonic palette of %s.\n", anchor)
			}
			sb.WriteString("Keep it to one session of practice.\n")
			sb.WriteString("Start with a short title as a markdown heading, and end with a **Tips:** section of three bullet points.")
			return sb.String()
		},
		Pools: map[string][]string{
			"Ambient":   {"Brian Eno", "Stars of the Lid", "Tim Hecker", "Hiroshi Yoshimura", "Grouper"},
			"Techno":    {"Jeff Mills", "Robert Hood", "Blawan", "Rrose", "Surgeon"},
			"Cinematic": {"Hans Zimmer", "Ben Burtt", "Hildur Guðnadóttir", "Trent Reznor", "Jóhann Jóhannsson"},
			"Glitch":    {"Autechre", "Ryoji Ikeda", "Alva Noto", "Oval", "Fennesz"},
			"House":     {"Larry Heard", "Moodymann", "Kerri Chandler", "Floating Points", "Four Tet"},
		},
		Templates: map[string][]Template{
			"Ambient": {{
				Title: "Still Air Study",
				Text:  "Record {source} and stretch it into a {duration} drone. Process it only with {processing}, then add movement using {modulation}. Constraint: {constraint}.",
				Slots: map[string][]string{
					"source":     {"a single piano note", "your refrigerator's hum", "a bowed wine glass", "rain against a window"},
					"duration":   {"three-minute", "five-minute", "ten-minute"},
					"processing": {"convolution reverb and EQ", "granular freezing", "tape-style saturation and chorus"},
					"modulation": {"slow filter sweeps", "volume swells drawn by hand", "randomized pan drift"},
					"constraint": {"no more than two plugin instances", "everything must stay below 2 kHz", "no presets anywhere in the chain"},
				},
			}},
			"Techno": {{
				Title: "One Oscillator Workout",
				Text:  "Design a {target} using a single {oscillator} voice. Shape it with {shaping}, then sequence a {length} loop where only {automation} changes. Constraint: {constraint}.",
				Slots: map[string][]string{
					"target":     {"rumble kick", "hypnotic stab", "metallic percussion kit"},
					"oscillator": {"sine", "square", "FM operator pair"},
					"shaping":    {"transient shaping and distortion", "a resonant filter and drive", "wavefolding"},
					"length":     {"2-bar", "4-bar", "16-step"},
					"automation": {"filter cutoff", "decay time", "send level to one delay"},
					"constraint": {"no samples", "mono until the master bus", "one effect maximum"},
				},
			}},
			"Cinematic": {{
				Title: "Tension Cue Sketch",
				Text:  "Build a {length} riser for {scene} from {source}. Layer at most {layers} elements and automate {automation} to shape the arc. Constraint: {constraint}.",
				Slots: map[string][]string{
					"length":     {"15-second", "30-second", "one-minute"},
					"scene":      {"a door slowly opening", "a chase through a stairwell", "a signal arriving from deep space"},
					"source":     {"recorded metal scrapes", "an orchestral string patch", "your own breath"},
					"layers":     {"two", "three", "four"},
					"automation": {"pitch", "reverb size", "low-pass cutoff"},
					"constraint": {"no percussion", "crescendo must cut to silence", "everything derived from one recording"},
				},
			}},
		},
		DefaultTemplate: Template{
			Title: "Found Sound Session",
			Text:  "Capture {source} with whatever microphone you have. Turn it into {goal} using {processing}. Deliver {deliverable} before you stop for the day.",
			Slots: map[string][]string{
				"source":      {"three household object hits", "a minute of street noise", "running water"},
				"goal":        {"a playable drum kit", "a melodic instrument", "an evolving texture"},
				"processing":  {"pitch-shifting and layering", "heavy resampling", "reverb and reversal"},
				"deliverable": {"an eight-bar loop", "a one-minute sketch", "a sampler patch"},
			},
		},
		Tips: map[string]string{
			"Ambient":   "Let sounds breathe - silence and space are part of the texture.",
			"Techno":    "Commit to audio early; resampling forces decisions.",
			"Cinematic": "Design to picture, even an imagined one - intent sharpens choices.",
			"Glitch":    "Automate the mistakes: clicks and dropouts become rhythm when repeated.",
			"House":     "Groove lives in what you leave out - mute layers until it moves.",
		},
		GenericTips: []string{
			"Reference your sound against a track you admire at matched volume.",
			"Take listening breaks - ears fatigue faster than you notice.",
			"Save versions as you go so bold moves stay reversible.",
		},
	}
}
