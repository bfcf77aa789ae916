package catalog

import "github.com/ersonp/story-core/internal/domain/entities"

func englishBundle() *Bundle {
	return &Bundle{
		Templates: []TemplatePair{
			{
				Title: "{category} Tale: {characters} in {setting}",
				Body: "In the {setting_adjective} realm of {setting}, {characters} stumbled into {category} territory, and it promised to be {category_adjective}. " +
					"First {pronoun} found {element1}, and soon after {pronoun} came face to face with {element2}. " +
					"Whatever happened next, the journey changed {pronoun_object} forever.",
			},
			{
				Title: "{characters} and the {category_adjective} {category} of {setting}",
				Body: "Nobody expected {characters} to change the fate of {setting}. " +
					"It began with {element1}, an omen of {category_adjective} things to come. " +
					"By nightfall {pronoun} stood before {element2}, and the whole town held its breath for {pronoun_object}.",
			},
			{
				Title: "The {category} Story of {characters}",
				Body: "{characters} never planned to stay long in {setting}, where everything felt {setting_adjective}. " +
					"But {element1} changed everything, and this {category_adjective} {category} tale was only beginning. " +
					"Before the end, {pronoun} would meet {element2}, and {setting} would never forget {pronoun_object}.",
			},
		},
		SettingAdjectives: []string{"ancient", "mysterious", "bustling", "forgotten", "shimmering"},
		CategoryAdjectives: map[entities.Category]string{
			entities.CategoryAdventure: "thrilling",
			entities.CategoryRomance:   "heartwarming",
			entities.CategoryMystery:   "puzzling",
			entities.CategoryFantasy:   "magical",
			entities.CategorySciFi:     "futuristic",
			entities.CategoryHumor:     "hilarious",
			entities.CategoryFairyTale: "enchanting",
		},
		Vocabulary: map[entities.Category]VocabularySet{
			entities.CategoryAdventure: {
				ElementsA: []string{"a weathered treasure map 🗺️", "a rickety rope bridge 🌉", "a compass that points toward danger 🧭"},
				ElementsB: []string{"a hidden cave full of echoes 🕳️", "a storm rolling over the horizon ⛈️", "a rival explorer with a grudge 🏴‍☠️"},
			},
			entities.CategoryRomance: {
				ElementsA: []string{"a love letter never sent 💌", "a dance beneath paper lanterns 🏮", "a shared umbrella in the rain ☔"},
				ElementsB: []string{"a rose garden in full bloom 🌹", "a promise made at sunset 🌅", "a secret glance across the room 💞"},
			},
			entities.CategoryMystery: {
				ElementsA: []string{"a cryptic note 📝", "a locked drawer 🗝️", "fresh footprints in the dust 👣"},
				ElementsB: []string{"a missing heirloom 💎", "a candle that would not stay lit 🕯️", "a stranger in a grey coat 🕵️"},
			},
			entities.CategoryFantasy: {
				ElementsA: []string{"a talking raven 🐦", "a rune that glowed at midnight ✨", "a dragon's egg still warm 🥚"},
				ElementsB: []string{"an enchanted forest 🌲", "a sorcerer's crooked tower 🏰", "a portal woven from starlight 🌌"},
			},
			entities.CategorySciFi: {
				ElementsA: []string{"a malfunctioning android 🤖", "a signal from deep space 📡", "a prototype starship 🚀"},
				ElementsB: []string{"a rift in time ⏳", "a colony under a red sky 🪐", "an alien artifact humming softly 👽"},
			},
			entities.CategoryHumor: {
				ElementsA: []string{"a very confused goat 🐐", "a cream pie with perfect aim 🥧", "a banana peel in the wrong place 🍌"},
				ElementsB: []string{"a runaway shopping cart 🛒", "a talent show gone wrong 🎤", "a sneezing contest 🤧"},
			},
			entities.CategoryFairyTale: {
				ElementsA: []string{"a glass slipper 👠", "a wishing well 🪙", "a kind old woman with a basket 🧺"},
				ElementsB: []string{"a cursed spinning wheel 🧵", "a frog who claimed to be a prince 🐸", "a cottage made of gingerbread 🏡"},
			},
		},
		Pronouns: PronounPair{Plural: "they", PluralObject: "them"},
	}
}
