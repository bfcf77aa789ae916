package catalog

import "github.com/ersonp/story-core/internal/domain/entities"

func germanBundle() *Bundle {
	return &Bundle{
		Templates: []TemplatePair{
			{
				Title: "Eine {category}-Geschichte: {characters} in {setting}",
				Body: "In {setting}, {setting_adjective} und still, gerieten {characters} in eine {category_adjective}e {category}-Geschichte. " +
					"Zuerst fanden {pronoun} {element1}, und bald darauf standen {pronoun} {element2} gegenüber. " +
					"Was auch immer danach geschah, diese Reise veränderte {pronoun_object} für immer.",
			},
			{
				Title: "{characters} und das {category}-Rätsel von {setting}",
				Body: "Niemand hätte gedacht, dass {characters} das Schicksal von {setting} verändern würden. " +
					"Alles begann mit {element1}, einem Vorzeichen für {category_adjective}e Zeiten. " +
					"Bei Einbruch der Nacht standen {pronoun} vor {element2}, und die ganze Stadt hielt den Atem an.",
			},
			{
				Title: "{setting}: Eine {category}-Erzählung",
				Body: "{characters} wollten nicht lange in {setting} bleiben, einem Ort, {setting_adjective} und seltsam. " +
					"Doch {element1} veränderte alles, und diese {category_adjective}e {category}-Erzählung begann gerade erst. " +
					"Vor dem Ende würden {pronoun} {element2} begegnen, und {setting} würde {pronoun_object} nie vergessen.",
			},
		},
		SettingAdjectives: []string{"uralt", "geheimnisvoll", "belebt", "vergessen", "schimmernd"},
		CategoryAdjectives: map[entities.Category]string{
			entities.CategoryAdventure: "spannend",
			entities.CategoryRomance:   "herzerwärmend",
			entities.CategoryMystery:   "rätselhaft",
			entities.CategoryFantasy:   "magisch",
			entities.CategorySciFi:     "futuristisch",
			entities.CategoryHumor:     "urkomisch",
			entities.CategoryFairyTale: "zauberhaft",
		},
		Vocabulary: map[entities.Category]VocabularySet{
			entities.CategoryAdventure: {
				ElementsA: []string{"eine abgegriffene Schatzkarte 🗺️", "eine wackelige Hängebrücke 🌉", "ein Kompass, der auf Gefahr zeigt 🧭"},
				ElementsB: []string{"eine verborgene Höhle voller Echos 🕳️", "ein Sturm am Horizont ⛈️", "ein rachsüchtiger Rivale 🏴‍☠️"},
			},
			entities.CategoryRomance: {
				ElementsA: []string{"ein nie abgeschickter Liebesbrief 💌", "ein Tanz unter Papierlaternen 🏮", "ein geteilter Regenschirm ☔"},
				ElementsB: []string{"ein blühender Rosengarten 🌹", "ein Versprechen bei Sonnenuntergang 🌅", "ein heimlicher Blick quer durch den Saal 💞"},
			},
			entities.CategoryMystery: {
				ElementsA: []string{"eine rätselhafte Notiz 📝", "eine verschlossene Schublade 🗝️", "frische Fußspuren im Staub 👣"},
				ElementsB: []string{"ein verschwundenes Erbstück 💎", "eine Kerze, die immer wieder erlosch 🕯️", "ein Fremder im grauen Mantel 🕵️"},
			},
			entities.CategoryFantasy: {
				ElementsA: []string{"ein sprechender Rabe 🐦", "eine Rune, die um Mitternacht glühte ✨", "ein noch warmes Drachenei 🥚"},
				ElementsB: []string{"ein verzauberter Wald 🌲", "der schiefe Turm eines Zauberers 🏰", "ein Portal aus Sternenlicht 🌌"},
			},
			entities.CategorySciFi: {
				ElementsA: []string{"ein defekter Android 🤖", "ein Signal aus dem tiefen All 📡", "ein Prototyp-Raumschiff 🚀"},
				ElementsB: []string{"ein Riss in der Zeit ⏳", "eine Kolonie unter rotem Himmel 🪐", "ein leise summendes Alien-Artefakt 👽"},
			},
			entities.CategoryHumor: {
				ElementsA: []string{"eine sehr verwirrte Ziege 🐐", "eine treffsichere Sahnetorte 🥧", "eine Bananenschale am falschen Ort 🍌"},
				ElementsB: []string{"ein außer Kontrolle geratener Einkaufswagen 🛒", "eine missglückte Talentshow 🎤", "ein Niesturnier 🤧"},
			},
			entities.CategoryFairyTale: {
				ElementsA: []string{"ein gläserner Schuh 👠", "ein Wunschbrunnen 🪙", "eine freundliche alte Frau mit einem Korb 🧺"},
				ElementsB: []string{"ein verfluchtes Spinnrad 🧵", "ein Frosch, der ein Prinz sein wollte 🐸", "ein Lebkuchenhäuschen 🏡"},
			},
		},
		Pronouns: PronounPair{Plural: "sie", PluralObject: "sie"},
	}
}
