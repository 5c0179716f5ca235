package generator

import (
	"fmt"
	"math/rand"
	"strings"
)

// Word-count targets and the difficulty label each implies.
var writingWordCounts = []struct {
	Words      int
	Difficulty string
}{
	{250, "Very Easy"},
	{500, "Easy"},
	{750, "Medium"},
	{1000, "Hard"},
}

func writingKind() *KindConfig {
	return &KindConfig{
		Kind:  KindWriting,
		Label: "Writing Prompt",
		SystemPrompt: "You are a creative writing prompt generator. Create engaging, detailed writing prompts that inspire writers. Each prompt should:\n" +
			"1. Set up an intriguing scenario\n" +
			"2. Introduce a compelling conflict or mystery\n" +
			"3. Hint at stakes or consequences\n" +
			"4. Leave room for creative interpretation\n" +
			"5. Be suitable for the specified genres",
		UserPrompt: func(categories []string, anchor string) string {
			var sb strings.Builder
			fmt.Fprintf(&sb, "Create a writing prompt that combines these genres: %s\n\n", strings.Join(categories, ", "))
			if anchor != "" {
				fmt.Fprintf(&sb, "Draw loose inspiration from %q without retelling it.\n", anchor)
			}
			sb.WriteString("The prompt should be 2-3 sentences long and spark creativity.\n")
			sb.WriteString("Start with a compelling story title as a markdown heading, and end with a **Tips:** section of three bullet points.")
			return sb.String()
		},
		Pools: map[string][]string{
			"Fantasy":         {"The Name of the Wind", "A Wizard of Earthsea", "The Fifth Season", "Jonathan Strange & Mr Norrell", "Mistborn"},
			"Science Fiction": {"The Left Hand of Darkness", "Hyperion", "Blindsight", "A Fire Upon the Deep", "The Dispossessed"},
			"Mystery":         {"The Big Sleep", "And Then There Were None", "The Name of the Rose", "In the Woods", "Gone Girl"},
			"Horror":          {"The Haunting of Hill House", "House of Leaves", "Pet Sematary", "The Fisherman", "Annihilation"},
			"Romance":         {"Pride and Prejudice", "Persuasion", "The Remains of the Day", "Normal People", "Outlander"},
		},
		Templates: map[string][]Template{
			"Fantasy": {{
				Title: "The Last Dragon's Secret",
				Text:  "In a world where dragons were thought extinct, {character} discovers {discovery} hidden in {location}. As {conflict} threatens the realm, they must {challenge} before {deadline}.",
				Slots: map[string][]string{
					"character": {"a young apprentice mage", "an exiled knight", "a street thief with unusual talents"},
					"discovery": {"a dragon egg", "an ancient prophecy", "a map to the dragon sanctuary"},
					"location":  {"the royal library's forbidden section", "an abandoned tower", "beneath the city sewers"},
					"conflict":  {"a dark sorcerer's army", "a plague of shadows", "civil war"},
					"challenge": {"master forbidden magic", "unite warring kingdoms", "awaken the sleeping dragon"},
					"deadline":  {"the blood moon rises", "winter's first snow", "the king's coronation"},
				},
			}},
			"Science Fiction": {{
				Title: "Colony Ship Paradox",
				Text:  "The generation ship {ship_name} has been traveling for {duration}, but {character} discovers {revelation}. With {resource} running low and {threat} approaching, they must decide whether to {choice}.",
				Slots: map[string][]string{
					"ship_name":  {"Horizon's Hope", "New Eden", "Stellar Ark"},
					"duration":   {"300 years", "50 generations", "longer than recorded history"},
					"character":  {"the ship's AI maintenance tech", "a historian studying old Earth", "the youngest council member"},
					"revelation": {"they've been traveling in circles", "Earth still exists", "the ship is actually a prison"},
					"resource":   {"oxygen", "genetic diversity", "hope"},
					"threat":     {"an alien armada", "system-wide cascade failure", "a mutiny"},
					"choice":     {"wake the frozen founders", "change course to an unknown planet", "reveal the truth to everyone"},
				},
			}},
			"Mystery": {{
				Title: "The Vanishing Gallery",
				Text:  "{character} arrives at {location} to investigate {mystery}. The only clue is {clue}, but {complication} makes everyone a suspect. The truth involves {twist}.",
				Slots: map[string][]string{
					"character":    {"a retired detective", "an insurance investigator", "an art student"},
					"location":     {"a private island museum", "an underground auction house", "a restored Victorian mansion"},
					"mystery":      {"the disappearance of priceless paintings", "a murder during a locked-room auction", "forged masterpieces appearing worldwide"},
					"clue":         {"a half-burned photograph", "a coded message in the victim's notebook", "paint that shouldn't exist yet"},
					"complication": {"everyone has an alibi", "the security footage has been edited", "the victim is still alive"},
					"twist":        {"time travel", "identical twins nobody knew about", "the detective is the criminal"},
				},
			}},
			"Horror": {{
				Title: "The Inheritance",
				Text:  "{character} inherits {inheritance} from {relative}, but discovers {horror} lurking within. As {event} approaches, they realize {revelation} and must {action} to survive.",
				Slots: map[string][]string{
					"character":   {"a struggling artist", "a medical student", "a single parent"},
					"inheritance": {"a Victorian mansion", "an antique shop", "a storage unit full of artifacts"},
					"relative":    {"an uncle they never knew existed", "their recently deceased grandmother", "a distant cousin"},
					"horror":      {"the previous owners never left", "a portal to somewhere else", "a curse that transfers to the new owner"},
					"event":       {"the anniversary of a tragedy", "a lunar eclipse", "their first night alone"},
					"revelation":  {"they were chosen for a reason", "their family has kept this secret for generations", "escaping makes it worse"},
					"action":      {"perform an ancient ritual", "burn everything", "make a terrible sacrifice"},
				},
			}},
			"Romance": {{
				Title: "Second Chances",
				Text:  "{character1} and {character2} meet again after {time_period} at {location}. Despite {obstacle}, they discover {connection}, but {conflict} threatens to {consequence}.",
				Slots: map[string][]string{
					"character1":  {"a successful CEO", "a small-town teacher", "a traveling musician"},
					"character2":  {"their college sweetheart", "their former rival", "their best friend's sibling"},
					"time_period": {"ten years", "a lifetime", "one unforgettable summer"},
					"location":    {"a destination wedding", "their hometown reunion", "an unexpected flight delay"},
					"obstacle":    {"they're both engaged to others", "a bitter misunderstanding", "completely different lives now"},
					"connection":  {"they still finish each other's sentences", "a shared dream they never forgot", "letters never sent"},
					"conflict":    {"a job opportunity abroad", "family disapproval", "a secret from the past"},
					"consequence": {"separate them forever", "change everything", "break other hearts"},
				},
			}},
		},
		DefaultTemplate: Template{
			Title: "The Unexpected Journey",
			Text:  "Your protagonist discovers {discovery} that changes everything they believed about {belief}. They must {action} before {deadline}.",
			Slots: map[string][]string{
				"discovery": {"a hidden letter", "a secret door", "an old photograph"},
				"belief":    {"their family history", "their own identity", "the nature of reality"},
				"action":    {"uncover the truth", "make an impossible choice", "confront their fears"},
				"deadline":  {"it's too late", "someone else finds out", "the opportunity disappears"},
			},
		},
		Tips: map[string]string{
			"Fantasy":            "Build a consistent magic system with clear rules and limitations.",
			"Science Fiction":    "Ground your technology in real scientific concepts, even if extrapolated.",
			"Mystery":            "Plant clues fairly throughout the story - readers should be able to solve it.",
			"Horror":             "Build tension through atmosphere and pacing, not just jump scares.",
			"Romance":            "Develop both characters fully - they should be interesting apart and together.",
			"Thriller":           "Keep the pacing tight and end chapters with hooks.",
			"Historical Fiction": "Research the period thoroughly but don't let facts overwhelm the story.",
			"Literary Fiction":   "Focus on character development and thematic depth.",
			"Young Adult":        "Address serious themes while maintaining an authentic teen voice.",
			"Crime":              "Make your detective's process logical and methodical.",
			"Adventure":          "Balance action sequences with character moments.",
			"Dystopian":          "Create a believable path from our world to yours.",
			"Magical Realism":    "Treat magical elements as mundane parts of the world.",
			"Western":            "Focus on themes of justice, freedom, and survival.",
		},
		GenericTips: []string{
			"Start with a strong opening line that immediately engages the reader.",
			"Show character growth through actions and decisions, not just description.",
			"Read your draft aloud to catch rhythm problems early.",
		},
		ExtraMetadata: func(rng *rand.Rand) map[string]any {
			pick := writingWordCounts[rng.Intn(len(writingWordCounts))]
			return map[string]any{
				"wordCount":  pick.Words,
				"difficulty": pick.Difficulty,
			}
		},
	}
}
