package catalog

import "github.com/ersonp/story-core/internal/domain/entities"

func spanishBundle() *Bundle {
	return &Bundle{
		Templates: []TemplatePair{
			{
				Title: "Un cuento de {category}: {characters} en {setting}",
				Body: "En el {setting_adjective} reino de {setting}, {characters} se vieron envueltos en una historia {category_adjective} de {category}. " +
					"Primero encontraron {element1} y poco después {pronoun} se toparon con {element2}. " +
					"Pasara lo que pasara, aquel viaje {pronoun_object} cambió para siempre.",
			},
			{
				Title: "{characters} y el {category} {category_adjective} de {setting}",
				Body: "Nadie esperaba que {characters} cambiaran el destino de {setting}. " +
					"Todo empezó con {element1}, presagio de algo {category_adjective}. " +
					"Al caer la noche {pronoun} estaban frente a {element2}, y el pueblo entero contuvo el aliento.",
			},
			{
				Title: "{setting}, el lugar {setting_adjective}: una historia de {category}",
				Body: "{characters} nunca pensaron quedarse mucho tiempo en {setting}, un lugar {setting_adjective}. " +
					"Pero {element1} lo cambió todo, y este relato {category_adjective} de {category} apenas comenzaba. " +
					"Antes del final, {pronoun} conocerían {element2}, y {setting} jamás {pronoun_object} olvidaría.",
			},
		},
		SettingAdjectives: []string{"antiguo", "misterioso", "bullicioso", "olvidado", "resplandeciente"},
		CategoryAdjectives: map[entities.Category]string{
			entities.CategoryAdventure: "emocionante",
			entities.CategoryRomance:   "conmovedora",
			entities.CategoryMystery:   "enigmática",
			entities.CategoryFantasy:   "mágica",
			entities.CategorySciFi:     "futurista",
			entities.CategoryHumor:     "divertidísima",
			entities.CategoryFairyTale: "encantadora",
		},
		Vocabulary: map[entities.Category]VocabularySet{
			entities.CategoryAdventure: {
				ElementsA: []string{"un mapa del tesoro gastado 🗺️", "un puente colgante desvencijado 🌉", "una brújula que señala el peligro 🧭"},
				ElementsB: []string{"una cueva oculta llena de ecos 🕳️", "una tormenta en el horizonte ⛈️", "un explorador rival con cuentas pendientes 🏴‍☠️"},
			},
			entities.CategoryRomance: {
				ElementsA: []string{"una carta de amor nunca enviada 💌", "un baile bajo farolillos de papel 🏮", "un paraguas compartido bajo la lluvia ☔"},
				ElementsB: []string{"un jardín de rosas en flor 🌹", "una promesa hecha al atardecer 🌅", "una mirada secreta al otro lado de la sala 💞"},
			},
			entities.CategoryMystery: {
				ElementsA: []string{"una nota críptica 📝", "un cajón cerrado con llave 🗝️", "huellas recientes en el polvo 👣"},
				ElementsB: []string{"una reliquia desaparecida 💎", "una vela que no se mantenía encendida 🕯️", "un desconocido con abrigo gris 🕵️"},
			},
			entities.CategoryFantasy: {
				ElementsA: []string{"un cuervo que hablaba 🐦", "una runa que brillaba a medianoche ✨", "un huevo de dragón aún tibio 🥚"},
				ElementsB: []string{"un bosque encantado 🌲", "la torre torcida de un hechicero 🏰", "un portal tejido con luz de estrellas 🌌"},
			},
			entities.CategorySciFi: {
				ElementsA: []string{"un androide averiado 🤖", "una señal del espacio profundo 📡", "una nave prototipo 🚀"},
				ElementsB: []string{"una grieta en el tiempo ⏳", "una colonia bajo un cielo rojo 🪐", "un artefacto alienígena que zumbaba 👽"},
			},
			entities.CategoryHumor: {
				ElementsA: []string{"una cabra muy confundida 🐐", "una tarta de crema con una puntería perfecta 🥧", "una cáscara de plátano en el peor sitio 🍌"},
				ElementsB: []string{"un carrito de supermercado desbocado 🛒", "un concurso de talentos desastroso 🎤", "un campeonato de estornudos 🤧"},
			},
			entities.CategoryFairyTale: {
				ElementsA: []string{"un zapato de cristal 👠", "un pozo de los deseos 🪙", "una anciana amable con una cesta 🧺"},
				ElementsB: []string{"una rueca maldita 🧵", "una rana que decía ser príncipe 🐸", "una casita de jengibre 🏡"},
			},
		},
		Pronouns: PronounPair{Plural: "ellos", PluralObject: "los"},
	}
}
