package catalog

import "github.com/ersonp/story-core/internal/domain/entities"

func frenchBundle() *Bundle {
	return &Bundle{
		Templates: []TemplatePair{
			{
				Title: "Un conte de {category} : {characters} à {setting}",
				Body: "Dans le royaume {setting_adjective} de {setting}, {characters} se retrouvèrent au cœur d'une histoire {category_adjective} de {category}. " +
					"D'abord {pronoun} trouvèrent {element1}, puis {pronoun} firent face à {element2}. " +
					"Quoi qu'il arrive ensuite, ce voyage {pronoun_object} transforma pour toujours.",
			},
			{
				Title: "{characters} et le {category} {category_adjective} de {setting}",
				Body: "Personne ne s'attendait à ce que {characters} changent le destin de {setting}. " +
					"Tout commença avec {element1}, présage de choses {category_adjective}s. " +
					"À la tombée de la nuit, {pronoun} se tenaient devant {element2}, et la ville entière retint son souffle.",
			},
			{
				Title: "{setting}, lieu {setting_adjective} : une histoire de {category}",
				Body: "{characters} ne comptaient pas rester longtemps à {setting}, un lieu {setting_adjective}. " +
					"Mais {element1} changea tout, et ce récit {category_adjective} de {category} ne faisait que commencer. " +
					"Avant la fin, {pronoun} rencontreraient {element2}, et {setting} ne {pronoun_object} oublierait jamais.",
			},
		},
		SettingAdjectives: []string{"ancien", "mystérieux", "animé", "oublié", "scintillant"},
		CategoryAdjectives: map[entities.Category]string{
			entities.CategoryAdventure: "palpitant",
			entities.CategoryRomance:   "touchant",
			entities.CategoryMystery:   "énigmatique",
			entities.CategoryFantasy:   "magique",
			entities.CategorySciFi:     "futuriste",
			entities.CategoryHumor:     "hilarant",
			entities.CategoryFairyTale: "enchanteur",
		},
		Vocabulary: map[entities.Category]VocabularySet{
			entities.CategoryAdventure: {
				ElementsA: []string{"une vieille carte au trésor 🗺️", "un pont de corde branlant 🌉", "une boussole qui indique le danger 🧭"},
				ElementsB: []string{"une grotte cachée pleine d'échos 🕳️", "un orage à l'horizon ⛈️", "un explorateur rival rancunier 🏴‍☠️"},
			},
			entities.CategoryRomance: {
				ElementsA: []string{"une lettre d'amour jamais envoyée 💌", "une danse sous les lanternes 🏮", "un parapluie partagé sous la pluie ☔"},
				ElementsB: []string{"une roseraie en fleurs 🌹", "une promesse faite au coucher du soleil 🌅", "un regard secret à travers la salle 💞"},
			},
			entities.CategoryMystery: {
				ElementsA: []string{"un message énigmatique 📝", "un tiroir fermé à clé 🗝️", "des empreintes fraîches dans la poussière 👣"},
				ElementsB: []string{"un bijou de famille disparu 💎", "une bougie qui refusait de rester allumée 🕯️", "un inconnu en manteau gris 🕵️"},
			},
			entities.CategoryFantasy: {
				ElementsA: []string{"un corbeau qui parlait 🐦", "une rune luisant à minuit ✨", "un œuf de dragon encore tiède 🥚"},
				ElementsB: []string{"une forêt enchantée 🌲", "la tour tordue d'un sorcier 🏰", "un portail tissé de lumière d'étoiles 🌌"},
			},
			entities.CategorySciFi: {
				ElementsA: []string{"un androïde défaillant 🤖", "un signal venu de l'espace lointain 📡", "un vaisseau prototype 🚀"},
				ElementsB: []string{"une faille temporelle ⏳", "une colonie sous un ciel rouge 🪐", "un artefact extraterrestre bourdonnant 👽"},
			},
			entities.CategoryHumor: {
				ElementsA: []string{"une chèvre très perplexe 🐐", "une tarte à la crème bien visée 🥧", "une peau de banane mal placée 🍌"},
				ElementsB: []string{"un caddie fou 🛒", "un spectacle de talents catastrophique 🎤", "un concours d'éternuements 🤧"},
			},
			entities.CategoryFairyTale: {
				ElementsA: []string{"une pantoufle de verre 👠", "un puits à souhaits 🪙", "une vieille dame bienveillante avec un panier 🧺"},
				ElementsB: []string{"un rouet maudit 🧵", "une grenouille qui se disait prince 🐸", "une maison en pain d'épices 🏡"},
			},
		},
		Pronouns: PronounPair{Plural: "ils", PluralObject: "les"},
	}
}
