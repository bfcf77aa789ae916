package catalog

import "github.com/ersonp/story-core/internal/domain/entities"

func italianBundle() *Bundle {
	return &Bundle{
		Templates: []TemplatePair{
			{
				Title: "Un racconto di {category}: {characters} a {setting}",
				Body: "Nel regno {setting_adjective} di {setting}, {characters} si ritrovarono in una storia {category_adjective} di {category}. " +
					"Prima trovarono {element1}, e poco dopo {pronoun} si trovarono davanti a {element2}. " +
					"Qualunque cosa accadde poi, quel viaggio {pronoun_object} cambiò per sempre.",
			},
			{
				Title: "{characters} e il {category} {category_adjective} di {setting}",
				Body: "Nessuno si aspettava che {characters} cambiassero il destino di {setting}. " +
					"Tutto iniziò con {element1}, presagio di qualcosa di {category_adjective}. " +
					"Al calar della notte {pronoun} erano davanti a {element2}, e l'intero paese trattenne il respiro.",
			},
			{
				Title: "{setting}, luogo {setting_adjective}: una storia di {category}",
				Body: "{characters} non pensavano di restare a lungo a {setting}, un luogo {setting_adjective}. " +
					"Ma {element1} cambiò tutto, e questo racconto {category_adjective} di {category} era appena cominciato. " +
					"Prima della fine, {pronoun} avrebbero incontrato {element2}, e {setting} non {pronoun_object} avrebbe mai dimenticati.",
			},
		},
		SettingAdjectives: []string{"antico", "misterioso", "vivace", "dimenticato", "scintillante"},
		CategoryAdjectives: map[entities.Category]string{
			entities.CategoryAdventure: "avvincente",
			entities.CategoryRomance:   "commovente",
			entities.CategoryMystery:   "enigmatico",
			entities.CategoryFantasy:   "magico",
			entities.CategorySciFi:     "futuristico",
			entities.CategoryHumor:     "esilarante",
			entities.CategoryFairyTale: "incantevole",
		},
		Vocabulary: map[entities.Category]VocabularySet{
			entities.CategoryAdventure: {
				ElementsA: []string{"una vecchia mappa del tesoro 🗺️", "un ponte di corda traballante 🌉", "una bussola che indica il pericolo 🧭"},
				ElementsB: []string{"una grotta nascosta piena di echi 🕳️", "una tempesta all'orizzonte ⛈️", "un esploratore rivale e rancoroso 🏴‍☠️"},
			},
			entities.CategoryRomance: {
				ElementsA: []string{"una lettera d'amore mai spedita 💌", "un ballo sotto le lanterne di carta 🏮", "un ombrello condiviso sotto la pioggia ☔"},
				ElementsB: []string{"un roseto in piena fioritura 🌹", "una promessa fatta al tramonto 🌅", "uno sguardo segreto attraverso la sala 💞"},
			},
			entities.CategoryMystery: {
				ElementsA: []string{"un biglietto criptico 📝", "un cassetto chiuso a chiave 🗝️", "impronte fresche nella polvere 👣"},
				ElementsB: []string{"un cimelio scomparso 💎", "una candela che non restava accesa 🕯️", "uno sconosciuto con il cappotto grigio 🕵️"},
			},
			entities.CategoryFantasy: {
				ElementsA: []string{"un corvo parlante 🐦", "una runa che brillava a mezzanotte ✨", "un uovo di drago ancora caldo 🥚"},
				ElementsB: []string{"una foresta incantata 🌲", "la torre storta di uno stregone 🏰", "un portale tessuto di luce stellare 🌌"},
			},
			entities.CategorySciFi: {
				ElementsA: []string{"un androide difettoso 🤖", "un segnale dallo spazio profondo 📡", "un'astronave prototipo 🚀"},
				ElementsB: []string{"una frattura nel tempo ⏳", "una colonia sotto un cielo rosso 🪐", "un manufatto alieno che ronzava 👽"},
			},
			entities.CategoryHumor: {
				ElementsA: []string{"una capra molto confusa 🐐", "una torta alla crema dalla mira perfetta 🥧", "una buccia di banana nel posto sbagliato 🍌"},
				ElementsB: []string{"un carrello della spesa impazzito 🛒", "uno spettacolo di talenti disastroso 🎤", "una gara di starnuti 🤧"},
			},
			entities.CategoryFairyTale: {
				ElementsA: []string{"una scarpetta di cristallo 👠", "un pozzo dei desideri 🪙", "una vecchina gentile con un cestino 🧺"},
				ElementsB: []string{"un arcolaio maledetto 🧵", "una rana che diceva di essere un principe 🐸", "una casetta di pan di zenzero 🏡"},
			},
		},
		Pronouns: PronounPair{Plural: "loro", PluralObject: "li"},
	}
}
